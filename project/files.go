package project

import (
	"path/filepath"

	"github.com/signadot/pbx/ir"
)

type FileReference struct {
	object
}

func (f *FileReference) Name() string       { return f.GetString("name") }
func (f *FileReference) Path() string       { return f.GetString("path") }
func (f *FileReference) SourceTree() string { return f.GetString("sourceTree") }

// FileType returns the explicit file type, or the last known one.
func (f *FileReference) FileType() string {
	if t := f.GetString("explicitFileType"); t != "" {
		return t
	}
	return f.GetString("lastKnownFileType")
}

// Group returns the group listing f, or nil.
func (f *FileReference) Group() *Group {
	return f.doc.parentGroup(f.guid)
}

// AbsPath resolves the file's location on disk.  Paths relative to a build
// time location such as SDKROOT are returned unchanged.
func (f *FileReference) AbsPath() string {
	p := f.Path()
	switch st := f.SourceTree(); {
	case filepath.IsAbs(p) || st == SourceTreeAbsolute:
		return filepath.Clean(p)
	case st == SourceTreeRoot:
		return filepath.Join(f.doc.RootDir(), p)
	case st == SourceTreeGroup || st == "":
		if g := f.Group(); g != nil {
			return filepath.Join(g.AbsPath(), p)
		}
		return filepath.Join(f.doc.RootDir(), p)
	default:
		return p
	}
}

func (d *Document) newFileReference(name, path, fileType, sourceTree string) *FileReference {
	return objectAs[*FileReference](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISAFileReference)},
		ir.KeyVal{Key: "lastKnownFileType", Val: ir.FromString(fileType)},
		ir.KeyVal{Key: "name", Val: ir.FromString(name)},
		ir.KeyVal{Key: "path", Val: ir.FromString(path)},
		ir.KeyVal{Key: "sourceTree", Val: ir.FromString(sourceTree)},
	))
}

// FileReferenceFor finds the file reference for path, first by its stored
// path and then by comparing resolved absolute paths.
func (d *Document) FileReferenceFor(path string) *FileReference {
	if f := findFirstAs[*FileReference](d, Criteria{"isa": ISAFileReference, "path": path}); f != nil {
		return f
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	for _, f := range findAllAs[*FileReference](d, Criteria{"isa": ISAFileReference}) {
		if f.AbsPath() == abs {
			return f
		}
	}
	return nil
}

// BuildFile places a file reference or reference proxy in a build phase.
type BuildFile struct {
	object
}

func (b *BuildFile) FileRef() string { return b.GetString("fileRef") }

// Reference returns the object named by fileRef.
func (b *BuildFile) Reference() Object {
	return b.doc.Object(b.FileRef())
}

// Path returns the path of the referenced file.
func (b *BuildFile) Path() string {
	switch r := b.Reference().(type) {
	case *FileReference:
		return r.Path()
	case *ReferenceProxy:
		return r.Path()
	}
	return ""
}

// buildFileFor returns a build file for ref, creating one when none
// exists.
func (d *Document) buildFileFor(ref string) (*BuildFile, bool) {
	if b := findFirstAs[*BuildFile](d, Criteria{"isa": ISABuildFile, "fileRef": ref}); b != nil {
		return b, false
	}
	return objectAs[*BuildFile](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISABuildFile)},
		ir.KeyVal{Key: "fileRef", Val: ir.FromString(ref)},
	)), true
}

// ReferenceProxy stands for a product built by another project.
type ReferenceProxy struct {
	object
}

func (r *ReferenceProxy) Path() string     { return r.GetString("path") }
func (r *ReferenceProxy) FileType() string { return r.GetString("fileType") }

func (r *ReferenceProxy) RemoteRef() *ContainerItemProxy {
	return refAs[*ContainerItemProxy](&r.object, "remoteRef")
}

func (d *Document) newReferenceProxy(fileType, path, remoteRef string) *ReferenceProxy {
	return objectAs[*ReferenceProxy](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISAReferenceProxy)},
		ir.KeyVal{Key: "fileType", Val: ir.FromString(fileType)},
		ir.KeyVal{Key: "path", Val: ir.FromString(path)},
		ir.KeyVal{Key: "remoteRef", Val: ir.FromString(remoteRef)},
		ir.KeyVal{Key: "sourceTree", Val: ir.FromString(SourceTreeProducts)},
	))
}

// ContainerItemProxy names an object in another project.  containerPortal
// is the local file reference of that project; remoteGlobalIDString is a
// GUID in the other project's table.
type ContainerItemProxy struct {
	object
}

func (c *ContainerItemProxy) ContainerPortal() string { return c.GetString("containerPortal") }
func (c *ContainerItemProxy) ProxyType() string       { return c.GetString("proxyType") }
func (c *ContainerItemProxy) RemoteGlobalID() string  { return c.GetString("remoteGlobalIDString") }
func (c *ContainerItemProxy) RemoteInfo() string      { return c.GetString("remoteInfo") }

// Portal returns the file reference of the other project.
func (c *ContainerItemProxy) Portal() *FileReference {
	return refAs[*FileReference](&c.object, "containerPortal")
}

func (d *Document) newContainerProxy(portal, proxyType, remote, info string) *ContainerItemProxy {
	return objectAs[*ContainerItemProxy](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISAContainerItemProxy)},
		ir.KeyVal{Key: "containerPortal", Val: ir.FromString(portal)},
		ir.KeyVal{Key: "proxyType", Val: ir.FromString(proxyType)},
		ir.KeyVal{Key: "remoteGlobalIDString", Val: ir.FromString(remote)},
		ir.KeyVal{Key: "remoteInfo", Val: ir.FromString(info)},
	))
}

type TargetDependency struct {
	object
}

func (t *TargetDependency) Name() string { return t.GetString("name") }

func (t *TargetDependency) TargetProxy() *ContainerItemProxy {
	return refAs[*ContainerItemProxy](&t.object, "targetProxy")
}

func (d *Document) newTargetDependency(name, proxy string) *TargetDependency {
	return objectAs[*TargetDependency](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISATargetDependency)},
		ir.KeyVal{Key: "name", Val: ir.FromString(name)},
		ir.KeyVal{Key: "targetProxy", Val: ir.FromString(proxy)},
	))
}
