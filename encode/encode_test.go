package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/pbx/encode"
	"github.com/signadot/pbx/ir"
	"github.com/signadot/pbx/parse"
)

func render(t *testing.T, n *ir.Node, opts ...encode.EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeLayout(t *testing.T) {
	node, err := parse.Parse([]byte(`{
		rootObject = P;
		archiveVersion = 1;
		objects = {
			F = {isa = PBXFileReference; path = "a b.m"; sourceTree = "<group>"; };
			P = {isa = PBXProject; targets = (T, ); };
			B = {isa = PBXBuildFile; fileRef = F; };
		};
	}`))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"// !$*UTF8*$!",
		"{",
		"\tarchiveVersion = 1;",
		"\tobjects = {",
		"\t\tB = {fileRef=F;isa=PBXBuildFile;};",
		"\t\tF = {isa=PBXFileReference;path=\"a b.m\";sourceTree=\"<group>\";};",
		"\t\tP = {",
		"\t\t\tisa = PBXProject;",
		"\t\t\ttargets = (",
		"\t\t\t\tT,",
		"\t\t\t);",
		"\t\t};",
		"\t};",
		"\trootObject = P;",
		"}",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeSortsObjectTableByISA(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "A", Val: ir.FromMap(map[string]*ir.Node{"isa": ir.FromString("PBXProject")})},
		{Key: "B", Val: ir.FromMap(map[string]*ir.Node{"isa": ir.FromString("PBXGroup")})},
		{Key: "C", Val: ir.FromMap(map[string]*ir.Node{"isa": ir.FromString("PBXGroup")})},
	})
	got := render(t, node, encode.Header(false))
	b := strings.Index(got, "B =")
	c := strings.Index(got, "C =")
	a := strings.Index(got, "A =")
	if !(b < c && c < a) {
		t.Errorf("order B=%d C=%d A=%d\n%s", b, c, a, got)
	}
}

func TestEncodeMixedTableSortsByKey(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromMap(map[string]*ir.Node{"isa": ir.FromString("A")})},
		{Key: "a", Val: ir.FromString("x")},
	})
	got := render(t, node, encode.Header(false))
	if strings.Index(got, "a =") > strings.Index(got, "b =") {
		t.Errorf("not sorted by key:\n%s", got)
	}
}

func TestEncodeQuoting(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"abc", "abc"},
		{"A.framework", "A.framework"},
		{"foo_bar.1", "foo_bar.1"},
		{"", `""`},
		{"<group>", `"<group>"`},
		{"a/b", `"a/b"`},
		{"com.apple.product-type.library.static", `"com.apple.product-type.library.static"`},
		{"$(SRCROOT)", `"$(SRCROOT)"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\\b\nc", `"a\\b\nc"`},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := encode.MustString(ir.FromString(tc.in))
			if got != tc.out {
				t.Errorf("got %s want %s", got, tc.out)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`{a = (); b = {}; c = "";}`,
		`{objects = {X = {isa = PBXBuildFile; fileRef = Y; settings = {ATTRIBUTES = (Weak, ); }; }; }; }`,
		`{s = "line\nnext \"q\" \\ end"; p = "$(inherited)"; l = (a, "b c", (d, {e = f;}), );}`,
	}
	for _, d := range docs {
		first, err := parse.Parse([]byte(d))
		if err != nil {
			t.Fatal(err)
		}
		text := render(t, first)
		second, err := parse.Parse([]byte(text))
		if err != nil {
			t.Fatalf("reparse of\n%s\n: %v", text, err)
		}
		if !ir.Equal(first, second) {
			t.Errorf("round trip changed\n%s", text)
		}
		if again := render(t, second); again != text {
			t.Errorf("writer not stable:\n%s\n%s", text, again)
		}
	}
}

func TestEncodeColorsRoundTripText(t *testing.T) {
	c := encode.NewColors()
	node := ir.FromMap(map[string]*ir.Node{"isa": ir.FromString("PBXGroup")})
	got := render(t, node, encode.EncodeColors(c))
	if !strings.Contains(got, "PBXGroup") {
		t.Errorf("missing value in %q", got)
	}
}
