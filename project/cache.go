package project

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/signadot/pbx/debug"
	"github.com/signadot/pbx/parse"
)

// PBXFile is the name of the document inside an .xcodeproj directory.
const PBXFile = "project.pbxproj"

// Cache holds loaded documents keyed by the canonical absolute path of
// their project.pbxproj.  Documents loaded through a cache resolve other
// projects through the same cache, so a sub-project is parsed once however
// many times it is referenced.  A Cache is not safe for concurrent use.
type Cache struct {
	docs    map[string]*Document
	log     *log.Logger
	newGUID func() string
}

type CacheOption func(*Cache)

// WithLogger sets the logger for documents of the cache.  By default
// nothing is logged.
func WithLogger(l *log.Logger) CacheOption {
	return func(c *Cache) { c.log = l }
}

// WithGUIDSource replaces the random GUID generator.  Generated GUIDs are
// still checked for collisions and regenerated as needed.
func WithGUIDSource(f func() string) CacheOption {
	return func(c *Cache) { c.newGUID = f }
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		docs:    map[string]*Document{},
		newGUID: randomGUID,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	return c
}

// Load returns the document at path, reading and parsing it unless it is
// already cached.  path may name a project.pbxproj file or the .xcodeproj
// directory containing it.
func (c *Cache) Load(path string) (*Document, error) {
	p, err := CanonicalPath(path)
	if err != nil {
		return nil, err
	}
	if d, ok := c.docs[p]; ok {
		if debug.Cache() {
			debug.Logf("cache hit %s\n", p)
		}
		return d, nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, ioErr(p, err)
	}
	d, err := c.parse(p, data)
	if err != nil {
		return nil, err
	}
	c.log.Debug("loaded project", "path", p, "objects", d.Objects().Len())
	return d, nil
}

// Parse parses data as the document stored at path and caches it,
// replacing any document cached for that path.
func (c *Cache) Parse(path string, data []byte) (*Document, error) {
	p, err := CanonicalPath(path)
	if err != nil {
		return nil, err
	}
	return c.parse(p, data)
}

func (c *Cache) parse(p string, data []byte) (*Document, error) {
	tree, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	d, err := newDocument(c, p, tree)
	if err != nil {
		return nil, err
	}
	c.docs[p] = d
	if debug.Cache() {
		debug.Logf("cached %s (%d documents)\n", p, len(c.docs))
	}
	return d, nil
}

// Create makes a new document from the default skeleton for path and caches
// it.  Nothing is written until the document is saved.
func (c *Cache) Create(path string) (*Document, error) {
	p, err := CanonicalPath(path)
	if err != nil {
		return nil, err
	}
	d := &Document{path: p, cache: c}
	d.tree = skeleton(d)
	c.docs[p] = d
	c.log.Debug("created project", "path", p)
	return d, nil
}

func (c *Cache) Lookup(path string) (*Document, bool) {
	p, err := CanonicalPath(path)
	if err != nil {
		return nil, false
	}
	d, ok := c.docs[p]
	return d, ok
}

// Evict drops the document cached for path.  Documents already handed out
// remain usable but are no longer shared.
func (c *Cache) Evict(path string) bool {
	p, err := CanonicalPath(path)
	if err != nil {
		return false
	}
	if _, ok := c.docs[p]; !ok {
		return false
	}
	delete(c.docs, p)
	return true
}

func (c *Cache) Len() int {
	return len(c.docs)
}

// CanonicalPath resolves path to the absolute path of a project.pbxproj
// file.  A leading ~ is expanded; a directory, or a path ending in
// .xcodeproj, is taken to contain the file.
func CanonicalPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", ioErr(path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	p, err := filepath.Abs(path)
	if err != nil {
		return "", ioErr(path, err)
	}
	fi, err := os.Stat(p)
	switch {
	case err == nil && fi.IsDir():
		p = filepath.Join(p, PBXFile)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", ioErr(p, err)
	case err != nil && filepath.Ext(p) == ".xcodeproj":
		p = filepath.Join(p, PBXFile)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(p)); err == nil {
		p = filepath.Join(dir, filepath.Base(p))
	}
	return p, nil
}
