package libdiff

import (
	"slices"

	"github.com/signadot/pbx/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "~"
	}
}

// Change describes one object whose presence or contents differ between
// two object tables.  From is nil for an added object and To is nil for a
// removed one.
type Change struct {
	Kind     ChangeKind
	GUID     string
	From, To *ir.Node
}

// Objects compares two object tables by GUID and returns the changes in
// GUID order.
func Objects(from, to *ir.Node) []Change {
	fromKeys, toKeys := sortedKeys(from), sortedKeys(to)
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, fromKeys)
	toRunes := mapKeysTo(keyMap, runeMap, toKeys)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			g := runeMap[r]
			switch diff.Type {
			case diffpatch.DiffDelete:
				res = append(res, Change{Kind: Removed, GUID: g, From: from.Get(g)})
			case diffpatch.DiffInsert:
				res = append(res, Change{Kind: Added, GUID: g, To: to.Get(g)})
			case diffpatch.DiffEqual:
				f, t := from.Get(g), to.Get(g)
				if !ir.Equal(f, t) {
					res = append(res, Change{Kind: Changed, GUID: g, From: f, To: t})
				}
			}
		}
	}
	slices.SortStableFunc(res, func(a, b Change) int {
		switch {
		case a.GUID < b.GUID:
			return -1
		case a.GUID > b.GUID:
			return 1
		}
		return 0
	})
	return res
}

func sortedKeys(node *ir.Node) []string {
	keys := node.Keys()
	slices.Sort(keys)
	return keys
}

// mapKeysTo assigns each distinct key a rune so that key sequences can be
// diffed as text.  Runes start above the surrogate range.
func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(0xE000 + len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}
