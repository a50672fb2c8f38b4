package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbx/ir"
)

func obj(isa, name string) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "isa", Val: ir.FromString(isa)},
		{Key: "name", Val: ir.FromString(name)},
	})
}

func TestObjects(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{
		{Key: "B", Val: obj("PBXGroup", "b")},
		{Key: "A", Val: obj("PBXGroup", "a")},
		{Key: "C", Val: obj("PBXGroup", "c")},
	})
	to := ir.FromKeyVals([]ir.KeyVal{
		{Key: "A", Val: obj("PBXGroup", "a")},
		{Key: "C", Val: obj("PBXGroup", "c2")},
		{Key: "D", Val: obj("PBXFileReference", "d")},
	})
	var got []string
	for _, c := range Objects(from, to) {
		got = append(got, c.Kind.String()+c.GUID)
	}
	want := []string{"-B", "~C", "+D"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestObjectsEqual(t *testing.T) {
	a := ir.FromKeyVals([]ir.KeyVal{{Key: "A", Val: obj("PBXGroup", "a")}})
	if changes := Objects(a, a.Clone()); len(changes) != 0 {
		t.Errorf("got %v", changes)
	}
	if changes := Objects(nil, a); len(changes) != 1 || changes[0].Kind != Added {
		t.Errorf("got %v", changes)
	}
}
