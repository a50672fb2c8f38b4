package project

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/pbx/ir"
)

type Group struct {
	object
}

// VariantGroup holds localized variants of one file.
type VariantGroup struct {
	Group
}

// VersionGroup holds the versions of a data model.
type VersionGroup struct {
	Group
}

func asGroup(o Object) *Group {
	switch v := o.(type) {
	case *Group:
		return v
	case *VariantGroup:
		return &v.Group
	case *VersionGroup:
		return &v.Group
	}
	return nil
}

func (d *Document) newGroup(name string) *Group {
	fields := []ir.KeyVal{
		{Key: "isa", Val: ir.FromString(ISAGroup)},
		{Key: "children", Val: ir.FromSlice(nil)},
	}
	if name != "" {
		fields = append(fields, ir.KeyVal{Key: "name", Val: ir.FromString(name)})
	}
	fields = append(fields, ir.KeyVal{Key: "sourceTree", Val: ir.FromString(SourceTreeGroup)})
	return objectAs[*Group](d, d.insert(fields...))
}

func (g *Group) Name() string       { return g.GetString("name") }
func (g *Group) Path() string       { return g.GetString("path") }
func (g *Group) SourceTree() string { return g.GetString("sourceTree") }

// Label is the name the group is displayed under.
func (g *Group) Label() string {
	if n := g.Name(); n != "" {
		return n
	}
	return g.Path()
}

func (g *Group) Children() []Object {
	var res []Object
	for _, c := range g.guids("children") {
		if o := g.doc.Object(c); o != nil {
			res = append(res, o)
		}
	}
	return res
}

func (g *Group) Subgroups() []*Group {
	var res []*Group
	for _, c := range g.Children() {
		if sg := asGroup(c); sg != nil {
			res = append(res, sg)
		}
	}
	return res
}

func (g *Group) Files() []*FileReference {
	return listAs[*FileReference](&g.object, "children")
}

// Parent returns the group listing g as a child, or nil for the main group.
func (g *Group) Parent() *Group {
	return g.doc.parentGroup(g.guid)
}

func (d *Document) parentGroup(guid string) *Group {
	objs := d.Objects()
	for i, n := range objs.Values {
		if isGroupISA(n.GetString("isa")) && n.Get("children").ContainsString(guid) {
			return asGroup(d.Object(objs.Fields[i]))
		}
	}
	return nil
}

// AbsPath resolves the group's location on disk by joining the paths of
// the group and its ancestors to the project's root directory.
func (g *Group) AbsPath() string {
	var parts []string
	base := g.doc.RootDir()
	seen := map[string]bool{}
	for cur := g; cur != nil && !seen[cur.guid]; cur = cur.Parent() {
		seen[cur.guid] = true
		p := cur.Path()
		if p == "" {
			continue
		}
		parts = append(parts, p)
		if filepath.IsAbs(p) || cur.SourceTree() == SourceTreeAbsolute {
			base = ""
			break
		}
		if cur.SourceTree() == SourceTreeRoot {
			break
		}
	}
	slices.Reverse(parts)
	return filepath.Join(append([]string{base}, parts...)...)
}

// AddFileReference lists f as a child of g.  An absolute path on f is
// rewritten relative to the group's location.
func (g *Group) AddFileReference(f *FileReference) bool {
	if p := f.Path(); filepath.IsAbs(p) && f.SourceTree() == SourceTreeGroup {
		if rel, err := filepath.Rel(g.AbsPath(), p); err == nil {
			f.SetString("path", rel)
		}
	}
	return g.appendGUID("children", f.GUID())
}

func (g *Group) AddGroup(child *Group) bool {
	return g.appendGUID("children", child.GUID())
}

func (g *Group) RemoveChild(guid string) bool {
	return g.removeGUID("children", guid)
}

// child returns the direct subgroup whose name or path is seg.
func (g *Group) child(seg string) *Group {
	for _, sg := range g.Subgroups() {
		if sg.Name() == seg || sg.Path() == seg {
			return sg
		}
	}
	return nil
}

func splitGroupPath(path string) []string {
	var res []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// GroupFromPath resolves a '/' separated path of subgroup names below g.
func (g *Group) GroupFromPath(path string) *Group {
	cur := g
	for _, seg := range splitGroupPath(path) {
		if cur = cur.child(seg); cur == nil {
			return nil
		}
	}
	return cur
}

// AddGroupFromPath resolves path below g, creating missing groups.
func (g *Group) AddGroupFromPath(path string) *Group {
	cur := g
	for _, seg := range splitGroupPath(path) {
		next := cur.child(seg)
		if next == nil {
			next = g.doc.newGroup(seg)
			cur.AddGroup(next)
		}
		cur = next
	}
	return cur
}

// Group resolves a group path.  A path beginning with '/' is resolved from
// the main group.  Otherwise its first segment may name any group in the
// document and the rest is resolved below it.  Segments match a group's
// name or path.
func (d *Document) Group(path string) *Group {
	main := d.MainGroup()
	if main == nil {
		return nil
	}
	segs := splitGroupPath(path)
	if strings.HasPrefix(path, "/") || len(segs) == 0 {
		return main.GroupFromPath(path)
	}
	rest := strings.Join(segs[1:], "/")
	objs := d.Objects()
	for i, n := range objs.Values {
		if !isGroupISA(n.GetString("isa")) {
			continue
		}
		if n.GetString("name") != segs[0] && n.GetString("path") != segs[0] {
			continue
		}
		if g := asGroup(d.Object(objs.Fields[i])).GroupFromPath(rest); g != nil {
			return g
		}
	}
	return nil
}

// AddGroup resolves path as Group does, creating the groups missing below
// the longest existing prefix.  Without an existing prefix, groups are
// created below the main group.
func (d *Document) AddGroup(path string) (*Group, error) {
	if g := d.Group(path); g != nil {
		return g, nil
	}
	main, err := d.ensureMainGroup()
	if err != nil {
		return nil, err
	}
	segs := splitGroupPath(path)
	lead := ""
	if strings.HasPrefix(path, "/") {
		lead = "/"
	}
	parent, i := main, 0
	for n := len(segs) - 1; n > 0; n-- {
		if g := d.Group(lead + strings.Join(segs[:n], "/")); g != nil {
			parent, i = g, n
			break
		}
	}
	g := parent.AddGroupFromPath(strings.Join(segs[i:], "/"))
	d.log().Debug("added group", "path", path, "guid", g.GUID())
	return g, nil
}
