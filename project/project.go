package project

import (
	"github.com/signadot/pbx/ir"
)

// Project is the root object of a document.
type Project struct {
	object
}

// ProjectReference links a referenced .xcodeproj file to the group listing
// its products.
type ProjectReference struct {
	ProductGroup string
	ProjectRef   string

	node *ir.Node
}

func (p *Project) MainGroup() *Group {
	return asGroup(p.doc.Object(p.GetString("mainGroup")))
}

func (p *Project) ProductRefGroup() *Group {
	return asGroup(p.doc.Object(p.GetString("productRefGroup")))
}

func (p *Project) Targets() []*NativeTarget {
	return listAs[*NativeTarget](&p.object, "targets")
}

func (p *Project) ConfigurationList() *ConfigurationList {
	return refAs[*ConfigurationList](&p.object, "buildConfigurationList")
}

func (p *Project) ProjectReferences() []ProjectReference {
	prs := p.Get("projectReferences")
	if !prs.IsArray() {
		return nil
	}
	var res []ProjectReference
	for _, n := range prs.Values {
		res = append(res, ProjectReference{
			ProductGroup: n.GetString("ProductGroup"),
			ProjectRef:   n.GetString("ProjectRef"),
			node:         n,
		})
	}
	return res
}

func (p *Project) addProjectReference(productGroup, projectRef string) {
	p.AppendToList("projectReferences", ir.FromKeyVals([]ir.KeyVal{
		{Key: "ProductGroup", Val: ir.FromString(productGroup)},
		{Key: "ProjectRef", Val: ir.FromString(projectRef)},
	}))
}

// MainGroup returns the root of the group hierarchy, or nil.
func (d *Document) MainGroup() *Group {
	p := d.RootObject()
	if p == nil {
		return nil
	}
	return p.MainGroup()
}

// ensureMainGroup returns the main group, creating it when the project
// has none.
func (d *Document) ensureMainGroup() (*Group, error) {
	p := d.RootObject()
	if p == nil {
		return nil, referenceErr("rootObject does not name a %s", ISAProject)
	}
	if g := p.MainGroup(); g != nil {
		return g, nil
	}
	g := d.newGroup("")
	p.SetString("mainGroup", g.GUID())
	return g, nil
}

// NativeTargets returns every native target in table order.
func (d *Document) NativeTargets() []*NativeTarget {
	return findAllAs[*NativeTarget](d, Criteria{"isa": ISANativeTarget})
}

// Targets returns the targets listed by the project.
func (d *Document) Targets() []*NativeTarget {
	p := d.RootObject()
	if p == nil {
		return nil
	}
	return p.Targets()
}

func (d *Document) Target(name string) *NativeTarget {
	for _, t := range d.NativeTargets() {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// DefaultTarget is the first target listed by the project, or failing
// that the first native target of the table.
func (d *Document) DefaultTarget() *NativeTarget {
	if ts := d.Targets(); len(ts) > 0 {
		return ts[0]
	}
	if ts := d.NativeTargets(); len(ts) > 0 {
		return ts[0]
	}
	return nil
}
