package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/pbx/debug"
)

const fileTypeProject = "wrapper.pb-project"

type product struct {
	target   *NativeTarget
	path     string
	fileType string
}

// products lists the products built by the native targets of sub.
func products(sub *Document) ([]product, error) {
	var res []product
	for _, t := range sub.NativeTargets() {
		ref := t.ProductReference()
		if ref == nil {
			continue
		}
		ft := ref.FileType()
		if ft == "" {
			var err error
			if ft, err = FileType(ref.Path()); err != nil {
				return nil, err
			}
		}
		res = append(res, product{target: t, path: ref.Path(), fileType: ft})
	}
	return res, nil
}

// AddProject references the project at path from d.  Its products are
// listed in a new Products group and, unless disabled with Dependency or
// Link, the default target of d depends on and links each static library
// the project builds.  The project file is listed in /Libraries unless
// ToGroup or ToGroupPath says otherwise.
//
// Every precondition is checked before d is modified.  AddProject reports
// false without error when the project is already referenced.
func (d *Document) AddProject(path string, opts ...AddOption) (bool, error) {
	o := newAddOpts(LibrariesGroup, opts)
	if d.RootObject() == nil {
		return false, referenceErr("rootObject does not name a %s", ISAProject)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, ioErr(path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, preconditionErr("%s does not exist", abs)
		}
		return false, ioErr(abs, err)
	}
	if f := d.FileReferenceFor(path); f != nil {
		d.log().Debug("project already referenced", "path", abs, "guid", f.GUID())
		return false, nil
	}
	sub, err := d.cache.Load(abs)
	if err != nil {
		return false, err
	}
	if sub == d {
		return false, preconditionErr("%s cannot reference itself", d.Path())
	}
	prods, err := products(sub)
	if err != nil {
		return false, err
	}
	var (
		libs   []product
		target *NativeTarget
	)
	for _, p := range prods {
		if p.target.IsLibrary() {
			libs = append(libs, p)
		}
	}
	if len(libs) > 0 && (o.dependency || o.link) {
		if target = d.DefaultTarget(); target == nil {
			return false, preconditionErr("%s has no target to link %s into", d.Path(), sub.Name())
		}
	}

	g, err := o.resolveGroup(d)
	if err != nil {
		return false, err
	}
	ref := d.newFileReference(filepath.Base(abs), abs, fileTypeProject, SourceTreeGroup)
	g.AddFileReference(ref)
	productGroup := d.newGroup("Products")
	for _, p := range prods {
		remote := d.newContainerProxy(ref.GUID(), ProxyTypeReference, p.target.ProductReference().GUID(), p.target.Name())
		rp := d.newReferenceProxy(p.fileType, p.path, remote.GUID())
		productGroup.appendGUID("children", rp.GUID())
	}
	d.RootObject().addProjectReference(productGroup.GUID(), ref.GUID())
	d.log().Debug("added project", "path", abs, "products", len(prods), "group", g.Label())

	for _, p := range libs {
		if o.dependency {
			if _, err := target.AddTargetDependency(p.path); err != nil {
				return true, err
			}
		}
		if o.link {
			if _, err := target.AddLibrary(p.path); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

// RemoveProject removes the reference to the project at path and everything
// reached from it, sweeping outward one reference at a time:
//
//  1. groups listing the project file lose it; its container proxies and
//     the project reference with its Products group are deleted.
//  2. reference proxies and target dependencies naming those proxies are
//     deleted.
//  3. targets lose those dependencies; build files wrapping the reference
//     proxies are deleted and groups listing the proxies lose them.
//  4. build phases lose the deleted build files.
//
// Any other kind of referrer fails with ErrUnsupportedTopology before d is
// modified.  RemoveProject reports false without error when path is not
// referenced.
//
// Groups that list a removed reference proxy only lose that child; the
// groups themselves are kept, not deleted.
func (d *Document) RemoveProject(path string) (bool, error) {
	ref := d.FileReferenceFor(path)
	if ref == nil {
		return false, nil
	}
	during := "removing project " + path
	p := newPlan(d)
	p.del(ref.GUID())

	var proxies []string
	for _, o := range p.referrers(ref.GUID()) {
		switch v := o.(type) {
		case *Group, *VariantGroup, *VersionGroup:
			p.unlinkGUID(o, "children", ref.GUID())
		case *Project:
			for _, pr := range v.ProjectReferences() {
				if pr.ProjectRef == ref.GUID() {
					p.unlink(v, "projectReferences", pr.node)
					p.del(pr.ProductGroup)
				}
			}
		case *ContainerItemProxy:
			p.del(v.GUID())
			proxies = append(proxies, v.GUID())
		default:
			return false, unsupportedErr(o, during)
		}
	}
	sweepTrace(1, p)

	var refProxies, deps []string
	for _, g := range proxies {
		for _, o := range p.referrers(g) {
			switch o.(type) {
			case *ReferenceProxy:
				refProxies = append(refProxies, o.GUID())
			case *TargetDependency:
				deps = append(deps, o.GUID())
			default:
				return false, unsupportedErr(o, during)
			}
			p.del(o.GUID())
		}
	}
	sweepTrace(2, p)

	var buildFiles []string
	for _, g := range deps {
		for _, o := range p.referrers(g) {
			if _, ok := o.(*NativeTarget); !ok {
				return false, unsupportedErr(o, during)
			}
			p.unlinkGUID(o, "dependencies", g)
		}
	}
	for _, g := range refProxies {
		for _, o := range p.referrers(g) {
			switch {
			case o.ISA() == ISABuildFile:
				p.del(o.GUID())
				buildFiles = append(buildFiles, o.GUID())
			case asGroup(o) != nil:
				p.unlinkGUID(o, "children", g)
			default:
				return false, unsupportedErr(o, during)
			}
		}
	}
	sweepTrace(3, p)

	for _, g := range buildFiles {
		for _, o := range p.referrers(g) {
			if _, ok := o.(*BuildPhase); !ok {
				return false, unsupportedErr(o, during)
			}
			p.unlinkGUID(o, "files", g)
		}
	}
	sweepTrace(4, p)

	p.apply()
	d.log().Debug("removed project", "path", path, "deleted", len(p.deletes))
	return true, nil
}

func sweepTrace(level int, p *plan) {
	if debug.Sweep() {
		debug.Logf("sweep level %d: %d deletions, %d unlinks planned\n", level, len(p.deletes), len(p.unlinks))
	}
}
