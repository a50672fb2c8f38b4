package project

import (
	"github.com/signadot/pbx/debug"
	"github.com/signadot/pbx/ir"
)

// plan collects the deletions and list edits of a composite removal so that
// every referrer is checked before the table is touched.
type plan struct {
	doc     *Document
	deletes []string
	deleted map[string]bool
	unlinks []unlink
}

type unlink struct {
	obj   Object
	field string
	value *ir.Node
}

func newPlan(d *Document) *plan {
	return &plan{doc: d, deleted: map[string]bool{}}
}

func (p *plan) del(guid string) {
	if guid == "" || p.deleted[guid] {
		return
	}
	p.deleted[guid] = true
	p.deletes = append(p.deletes, guid)
}

func (p *plan) unlink(o Object, field string, value *ir.Node) {
	p.unlinks = append(p.unlinks, unlink{obj: o, field: field, value: value})
}

func (p *plan) unlinkGUID(o Object, field, guid string) {
	p.unlink(o, field, ir.FromString(guid))
}

// referrers returns the referrers of guid not already planned for deletion.
func (p *plan) referrers(guid string) []Object {
	var res []Object
	for _, o := range p.doc.Referrers(guid) {
		if !p.deleted[o.GUID()] {
			res = append(res, o)
		}
	}
	return res
}

func (p *plan) apply() {
	for _, u := range p.unlinks {
		if p.deleted[u.obj.GUID()] {
			continue
		}
		u.obj.RemoveFromList(u.field, u.value)
		if u.field == "projectReferences" && u.obj.Get(u.field).Len() == 0 {
			u.obj.Node().Delete(u.field)
		}
	}
	objs := p.doc.Objects()
	for _, g := range p.deletes {
		if debug.Sweep() {
			debug.Logf("delete %s %v\n", g, objs.Get(g))
		}
		objs.Delete(g)
	}
	p.doc.log().Debug("applied removal", "deleted", len(p.deletes), "unlinked", len(p.unlinks))
}

// unlinkFile plans the removal of the build files wrapping ref and, when
// deleteRef is set, of ref itself.  Build files may only be listed by
// build phases and ref only by groups.
func (p *plan) unlinkFile(ref Object, deleteRef bool) error {
	d := p.doc
	buildFiles := findAllAs[*BuildFile](d, Criteria{"isa": ISABuildFile, "fileRef": ref.GUID()})
	for _, b := range buildFiles {
		p.del(b.GUID())
	}
	if deleteRef {
		p.del(ref.GUID())
		for _, o := range p.referrers(ref.GUID()) {
			if asGroup(o) == nil {
				return unsupportedErr(o, "removing "+ref.GUID())
			}
			p.unlinkGUID(o, "children", ref.GUID())
		}
	}
	for _, b := range buildFiles {
		for _, o := range p.referrers(b.GUID()) {
			if _, ok := o.(*BuildPhase); !ok {
				return unsupportedErr(o, "removing build file "+b.GUID())
			}
			p.unlinkGUID(o, "files", b.GUID())
		}
	}
	return nil
}
