package project

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const fileTypeFramework = "wrapper.framework"

// NativeTarget is a target built from the files of its build phases.
type NativeTarget struct {
	object
}

func (t *NativeTarget) Name() string        { return t.GetString("name") }
func (t *NativeTarget) ProductName() string { return t.GetString("productName") }
func (t *NativeTarget) ProductType() string { return t.GetString("productType") }

func (t *NativeTarget) IsLibrary() bool {
	return t.ProductType() == ProductTypeStaticLibrary
}

func (t *NativeTarget) ProductReference() *FileReference {
	return refAs[*FileReference](&t.object, "productReference")
}

// ProductFileName is the path of the target's product, or "".
func (t *NativeTarget) ProductFileName() string {
	if r := t.ProductReference(); r != nil {
		return r.Path()
	}
	return ""
}

func (t *NativeTarget) BuildPhases() []*BuildPhase {
	return listAs[*BuildPhase](&t.object, "buildPhases")
}

// Phase returns the target's build phase of the given kind, or nil.
func (t *NativeTarget) Phase(isa string) *BuildPhase {
	for _, p := range t.BuildPhases() {
		if p.Kind() == isa {
			return p
		}
	}
	return nil
}

func (t *NativeTarget) ensurePhase(isa string) *BuildPhase {
	if p := t.Phase(isa); p != nil {
		return p
	}
	p := t.doc.newBuildPhase(isa)
	t.appendGUID("buildPhases", p.GUID())
	t.doc.log().Debug("added build phase", "target", t.Name(), "kind", isa)
	return p
}

func (t *NativeTarget) Dependencies() []*TargetDependency {
	return listAs[*TargetDependency](&t.object, "dependencies")
}

func (t *NativeTarget) ConfigurationList() *ConfigurationList {
	return refAs[*ConfigurationList](&t.object, "buildConfigurationList")
}

func (t *NativeTarget) phasePaths(isa string, keep func(string) bool) []string {
	p := t.Phase(isa)
	if p == nil {
		return nil
	}
	var res []string
	for _, b := range p.Files() {
		if fp := b.Path(); fp != "" && keep(fp) {
			res = append(res, fp)
		}
	}
	return res
}

func allPaths(string) bool { return true }

func isFramework(p string) bool { return strings.HasSuffix(p, ".framework") }

// Frameworks returns the paths of the frameworks the target links.
func (t *NativeTarget) Frameworks() []string {
	return t.phasePaths(ISAFrameworksPhase, isFramework)
}

// Libraries returns the paths of everything else the target links.
func (t *NativeTarget) Libraries() []string {
	return t.phasePaths(ISAFrameworksPhase, func(p string) bool { return !isFramework(p) })
}

func (t *NativeTarget) BuildSources() []string   { return t.phasePaths(ISASourcesPhase, allPaths) }
func (t *NativeTarget) BuildHeaders() []string   { return t.phasePaths(ISAHeadersPhase, allPaths) }
func (t *NativeTarget) BuildResources() []string { return t.phasePaths(ISAResourcesPhase, allPaths) }

// link places ref in the target's phase of kind isa through a build file,
// reusing the build file already wrapping ref.
func (t *NativeTarget) link(isa, ref string) bool {
	b, created := t.doc.buildFileFor(ref)
	added := t.ensurePhase(isa).AddFile(b)
	return added || created
}

type framework struct {
	name, path, sourceTree string
}

// frameworkFor maps a framework name to its file reference fields.  A name
// with a path separator is a framework in the source tree; any other name
// is an SDK framework.
func frameworkFor(name string) (framework, error) {
	if !strings.Contains(name, "/") {
		return framework{name: name, path: path.Join(sdkFrameworksDir, name), sourceTree: SourceTreeSDK}, nil
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return framework{}, ioErr(name, err)
	}
	return framework{name: filepath.Base(name), path: abs, sourceTree: SourceTreeGroup}, nil
}

func (d *Document) frameworkReference(name string) *FileReference {
	fw, err := frameworkFor(name)
	if err != nil {
		return nil
	}
	if fw.sourceTree == SourceTreeGroup {
		return d.FileReferenceFor(name)
	}
	for _, c := range []Criteria{
		{"isa": ISAFileReference, "path": fw.path},
		{"isa": ISAFileReference, "lastKnownFileType": fileTypeFramework, "path": name},
		{"isa": ISAFileReference, "lastKnownFileType": fileTypeFramework, "name": name},
	} {
		if f := findFirstAs[*FileReference](d, c); f != nil {
			return f
		}
	}
	return nil
}

// AddFramework links the framework name into t.  New file references are
// listed in the Frameworks group unless ToGroup or ToGroupPath says
// otherwise.
func (t *NativeTarget) AddFramework(name string, opts ...AddOption) (bool, error) {
	d := t.doc
	ref := d.frameworkReference(name)
	created := false
	if ref == nil {
		fw, err := frameworkFor(name)
		if err != nil {
			return false, err
		}
		g, err := newAddOpts(FrameworksGroup, opts).resolveGroup(d)
		if err != nil {
			return false, err
		}
		ref = d.newFileReference(fw.name, fw.path, fileTypeFramework, fw.sourceTree)
		g.AddFileReference(ref)
		created = true
	}
	changed := t.link(ISAFrameworksPhase, ref.GUID()) || created
	if changed {
		d.log().Debug("added framework", "target", t.Name(), "framework", name)
	}
	return changed, nil
}

// RemoveFramework deletes the framework's file reference together with its
// build files, phase entries and group membership.
func (t *NativeTarget) RemoveFramework(name string) (bool, error) {
	ref := t.doc.frameworkReference(name)
	if ref == nil {
		return false, nil
	}
	if err := t.doc.removeFile(ref); err != nil {
		return false, err
	}
	t.doc.log().Debug("removed framework", "target", t.Name(), "framework", name)
	return true, nil
}

func (d *Document) removeFile(ref Object) error {
	p := newPlan(d)
	if err := p.unlinkFile(ref, true); err != nil {
		return err
	}
	p.apply()
	return nil
}

// productProxy returns the reference proxy for a product of a referenced
// project, or nil when name is a path.
func (d *Document) productProxy(name string) *ReferenceProxy {
	if filepath.Base(name) != name {
		return nil
	}
	return findFirstAs[*ReferenceProxy](d, Criteria{"isa": ISAReferenceProxy, "path": name})
}

// AddLibrary links a library into t.  name is either the path of a library
// file or the product name of a referenced project.
func (t *NativeTarget) AddLibrary(name string, opts ...AddOption) (bool, error) {
	d := t.doc
	if rp := d.productProxy(name); rp != nil {
		changed := t.link(ISAFrameworksPhase, rp.GUID())
		if changed {
			d.log().Debug("linked product", "target", t.Name(), "product", name)
		}
		return changed, nil
	}
	ref, created, err := d.fileReferenceOrCreate(name, newAddOpts("", opts))
	if err != nil {
		return false, err
	}
	changed := t.link(ISAFrameworksPhase, ref.GUID()) || created
	if changed {
		d.log().Debug("added library", "target", t.Name(), "library", name)
	}
	return changed, nil
}

// RemoveLibrary undoes AddLibrary.  For a product of a referenced project
// only the build files are removed; the reference proxy stays with the
// project reference.
func (t *NativeTarget) RemoveLibrary(name string) (bool, error) {
	d := t.doc
	var (
		ref      Object
		fileRefs bool
	)
	if rp := d.productProxy(name); rp != nil {
		ref = rp
	} else if f := d.FileReferenceFor(name); f != nil {
		ref, fileRefs = f, true
	} else {
		return false, nil
	}
	if !fileRefs && findFirstAs[*BuildFile](d, Criteria{"isa": ISABuildFile, "fileRef": ref.GUID()}) == nil {
		return false, nil
	}
	p := newPlan(d)
	if err := p.unlinkFile(ref, fileRefs); err != nil {
		return false, err
	}
	p.apply()
	d.log().Debug("removed library", "target", t.Name(), "library", name)
	return true, nil
}

// fileReferenceOrCreate finds the file reference for path, or creates one
// for an existing file and lists it in the group chosen by o.
func (d *Document) fileReferenceOrCreate(p string, o *addOpts) (*FileReference, bool, error) {
	if f := d.FileReferenceFor(p); f != nil {
		return f, false, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, false, ioErr(p, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, preconditionErr("%s does not exist", abs)
		}
		return nil, false, ioErr(abs, err)
	}
	ft, err := FileType(abs)
	if err != nil {
		return nil, false, err
	}
	g, err := o.resolveGroup(d)
	if err != nil {
		return nil, false, err
	}
	f := d.newFileReference(filepath.Base(abs), abs, ft, SourceTreeGroup)
	g.AddFileReference(f)
	return f, true, nil
}

func (t *NativeTarget) addFile(isa, p string, g *Group) (bool, error) {
	ref, created, err := t.doc.fileReferenceOrCreate(p, &addOpts{group: g})
	if err != nil {
		return false, err
	}
	changed := t.link(isa, ref.GUID()) || created
	if changed {
		t.doc.log().Debug("added file", "target", t.Name(), "phase", isa, "path", p)
	}
	return changed, nil
}

// AddSource compiles the file at path in t.  A new file reference is listed
// in g, or in the main group when g is nil.
func (t *NativeTarget) AddSource(path string, g *Group) (bool, error) {
	return t.addFile(ISASourcesPhase, path, g)
}

// AddHeader adds the header at path to t's headers phase.
func (t *NativeTarget) AddHeader(path string, g *Group) (bool, error) {
	return t.addFile(ISAHeadersPhase, path, g)
}

// AddResource copies the file at path into t's product.
func (t *NativeTarget) AddResource(path string, g *Group) (bool, error) {
	return t.addFile(ISAResourcesPhase, path, g)
}
