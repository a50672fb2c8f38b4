package project

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/pbx/ir"
)

const (
	appProject   = "A00000000000000000000001"
	appMainGroup = "A00000000000000000000002"
	appSources   = "A00000000000000000000003"
	appFramework = "A00000000000000000000004"
	appMainM     = "A00000000000000000000010"
	appUIKit     = "A00000000000000000000011"
	appTarget    = "A00000000000000000000040"

	uikitPath = "System/Library/Frameworks/UIKit.framework"
)

// fixture copies testdata into a temporary directory and returns it.
func fixture(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.CopyFS(dir, os.DirFS("testdata")); err != nil {
		t.Fatal(err)
	}
	return dir
}

func loadApp(t *testing.T, opts ...CacheOption) (*Document, string) {
	t.Helper()
	dir := fixture(t)
	d, err := NewCache(opts...).Load(filepath.Join(dir, "App", "App.xcodeproj"))
	if err != nil {
		t.Fatal(err)
	}
	return d, dir
}

func appTargetOf(t *testing.T, d *Document) *NativeTarget {
	t.Helper()
	tg := d.Target("App")
	if tg == nil {
		t.Fatal("no target App")
	}
	return tg
}

// sequence returns a GUID source yielding the given GUIDs, then numbered
// ones.
func sequence(guids ...string) func() string {
	n := 0
	return func() string {
		if n < len(guids) {
			n++
			return guids[n-1]
		}
		n++
		return fmt.Sprintf("F%023X", n)
	}
}

func countISA(d *Document, isa string) int {
	return len(d.FindAll(Criteria{"isa": isa}))
}

func mustBool(t *testing.T, want bool) func(bool, error) {
	t.Helper()
	return func(got bool, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func snapshot(d *Document) *ir.Node {
	return d.Objects().Clone()
}

func checkValid(t *testing.T, d *Document) {
	t.Helper()
	for _, err := range d.Validate() {
		t.Error(err)
	}
}
