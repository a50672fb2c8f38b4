package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbx/format"
)

func write(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"pbx.toml", "target = \"App\"\nlibraries-group = \"/Vendor\"\ncolor = \"never\"\ndump-format = \"yaml\"\n"},
		{"pbx.yaml", "target: App\nlibraries-group: /Vendor\ncolor: never\ndump-format: y\n"},
	}
	want := Default()
	want.Target = "App"
	want.LibrariesGroup = "/Vendor"
	want.Color = ColorNever
	want.DumpFormat = format.YAMLFormat
	for _, tt := range tests {
		p := filepath.Join(dir, tt.name)
		write(t, p, tt.data)
		got, err := Load(p)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: %s", tt.name, diff)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pbx.json")
	write(t, p, "{}")
	if _, err := Load(p); !errors.Is(err, ErrFormat) {
		t.Errorf("got %v", err)
	}
	p = filepath.Join(dir, "pbx.toml")
	write(t, p, "color = \"sometimes\"\n")
	if _, err := Load(p); !errors.Is(err, ErrColor) {
		t.Errorf("got %v", err)
	}
	write(t, p, "dump-format = \"xml\"\n")
	if _, err := Load(p); err == nil {
		t.Error("expected an unknown format error")
	}
	write(t, p, "target = \n")
	if _, err := Load(p); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "App.xcodeproj")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, p, err := Find(deep)
	if err != nil {
		t.Fatal(err)
	}
	if p != "" {
		t.Skipf("found %s above the temporary directory", p)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Error(diff)
	}

	write(t, filepath.Join(root, "a", "pbx.yaml"), "frameworks-group: /Frameworks\n")
	cfg, p, err = Find(deep)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "a", "pbx.yaml"); p != want {
		t.Errorf("found %q, want %q", p, want)
	}
	if cfg.FrameworksGroup != "/Frameworks" || cfg.Indent != "\t" {
		t.Errorf("got %+v", cfg)
	}
}
