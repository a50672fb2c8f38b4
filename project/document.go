package project

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/signadot/pbx/encode"
	"github.com/signadot/pbx/ir"
)

// Document is a parsed project.pbxproj.  All cross references between
// objects are GUID strings looked up in the object table; views returned
// by a Document never hold pointers into it.
type Document struct {
	path  string
	tree  *ir.Node
	cache *Cache
}

// Load reads the document at path with a new cache.
func Load(path string) (*Document, error) {
	return NewCache().Load(path)
}

// CreateDefault creates a skeleton document for path with a new cache.
func CreateDefault(path string) (*Document, error) {
	return NewCache().Create(path)
}

func newDocument(c *Cache, path string, tree *ir.Node) (*Document, error) {
	if !tree.Get("objects").IsObject() {
		return nil, referenceErr("%s: no object table", path)
	}
	return &Document{path: path, tree: tree, cache: c}, nil
}

func skeleton(d *Document) *ir.Node {
	tree := ir.FromKeyVals([]ir.KeyVal{
		{Key: "archiveVersion", Val: ir.FromString("1")},
		{Key: "classes", Val: ir.NewObject()},
		{Key: "objectVersion", Val: ir.FromString("46")},
		{Key: "objects", Val: ir.NewObject()},
		{Key: "rootObject", Val: ir.FromString("")},
	})
	d.tree = tree
	list := d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISAConfigurationList)},
		ir.KeyVal{Key: "buildConfigurations", Val: ir.FromSlice(nil)},
		ir.KeyVal{Key: "defaultConfigurationIsVisible", Val: ir.FromString("0")},
		ir.KeyVal{Key: "defaultConfigurationName", Val: ir.FromString("")},
	)
	root := d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISAProject)},
		ir.KeyVal{Key: "buildConfigurationList", Val: ir.FromString(list)},
		ir.KeyVal{Key: "compatibilityVersion", Val: ir.FromString("Xcode 3.2")},
		ir.KeyVal{Key: "developmentRegion", Val: ir.FromString("English")},
		ir.KeyVal{Key: "hasScannedForEncodings", Val: ir.FromString("0")},
		ir.KeyVal{Key: "knownRegions", Val: ir.FromStrings([]string{"en"})},
		ir.KeyVal{Key: "mainGroup", Val: ir.FromString("")},
		ir.KeyVal{Key: "productRefGroup", Val: ir.FromString("")},
		ir.KeyVal{Key: "projectDirPath", Val: ir.FromString("")},
		ir.KeyVal{Key: "projectRoot", Val: ir.FromString("")},
		ir.KeyVal{Key: "targets", Val: ir.FromSlice(nil)},
	)
	tree.Set("rootObject", ir.FromString(root))
	return tree
}

// Path is the absolute path of the project.pbxproj file.
func (d *Document) Path() string { return d.path }

// ProjectDir is the .xcodeproj directory holding the document.
func (d *Document) ProjectDir() string { return filepath.Dir(d.path) }

// RootDir is the directory containing the .xcodeproj directory, against
// which group paths are resolved.
func (d *Document) RootDir() string { return filepath.Dir(d.ProjectDir()) }

// Name is the project name, the .xcodeproj directory name without its
// extension.
func (d *Document) Name() string {
	b := filepath.Base(d.ProjectDir())
	return strings.TrimSuffix(b, filepath.Ext(b))
}

func (d *Document) Cache() *Cache { return d.cache }

// Tree returns the whole document.
func (d *Document) Tree() *ir.Node { return d.tree }

// Objects returns the object table.
func (d *Document) Objects() *ir.Node { return d.tree.Get("objects") }

func (d *Document) Node(guid string) *ir.Node {
	return d.Objects().Get(guid)
}

func (d *Document) Has(guid string) bool {
	return d.Objects().Has(guid)
}

// Object returns the view of guid, or nil when there is no such object.
func (d *Document) Object(guid string) Object {
	n := d.Node(guid)
	if n == nil {
		return nil
	}
	o := object{doc: d, guid: guid}
	if mk := kinds[n.GetString("isa")]; mk != nil {
		return mk(o)
	}
	return &Generic{o}
}

// All returns views of every object in table order.
func (d *Document) All() []Object {
	objs := d.Objects()
	res := make([]Object, 0, objs.Len())
	for _, g := range objs.Fields {
		res = append(res, d.Object(g))
	}
	return res
}

func (d *Document) RootObject() *Project {
	return objectAs[*Project](d, d.tree.GetString("rootObject"))
}

func (d *Document) log() *log.Logger {
	return d.cache.log
}

// insert adds an object built from fields under a fresh GUID.
func (d *Document) insert(fields ...ir.KeyVal) string {
	g := d.NewGUID()
	d.Objects().Set(g, ir.FromKeyVals(fields))
	return g
}

func (d *Document) Write(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.tree, w, opts...)
}

// Bytes returns the serialized document.
func (d *Document) Bytes(opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := d.Write(buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document back to its path.
func (d *Document) Save(opts ...encode.EncodeOption) error {
	return d.SaveAs(d.path, opts...)
}

// SaveAs writes the document to path, which may name an .xcodeproj
// directory.  The file is replaced atomically.
func (d *Document) SaveAs(path string, opts ...encode.EncodeOption) error {
	p, err := CanonicalPath(path)
	if err != nil {
		return err
	}
	data, err := d.Bytes(opts...)
	if err != nil {
		return err
	}
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioErr(dir, err)
	}
	f, err := os.CreateTemp(dir, ".pbxproj-*")
	if err != nil {
		return ioErr(dir, err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return ioErr(f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return ioErr(f.Name(), err)
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return ioErr(f.Name(), err)
	}
	if err := os.Rename(f.Name(), p); err != nil {
		return ioErr(p, err)
	}
	d.log().Debug("saved project", "path", p, "bytes", len(data))
	return nil
}
