package project

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbx/ir"
)

func TestAddFramework(t *testing.T) {
	d, _ := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(tg.AddFramework("QuartzCore.framework"))
	want := []string{uikitPath, "System/Library/Frameworks/QuartzCore.framework"}
	if diff := cmp.Diff(want, tg.Frameworks()); diff != "" {
		t.Errorf("frameworks: %s", diff)
	}
	f := d.FileReferenceFor("System/Library/Frameworks/QuartzCore.framework")
	if f == nil {
		t.Fatal("no file reference")
	}
	if f.SourceTree() != SourceTreeSDK || f.FileType() != "wrapper.framework" || f.Name() != "QuartzCore.framework" {
		t.Errorf("file reference %v", f.Node().ToAny())
	}
	if g := f.Group(); g == nil || g.GUID() != appFramework {
		t.Errorf("listed in %v", g)
	}
	checkValid(t, d)
}

func TestAddFrameworkTwice(t *testing.T) {
	d, _ := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(tg.AddFramework("QuartzCore.framework"))
	mustBool(t, false)(tg.AddFramework("QuartzCore.framework"))
	mustBool(t, false)(tg.AddFramework("UIKit.framework"))

	refs := d.FindAll(Criteria{"isa": ISAFileReference, "name": "QuartzCore.framework"})
	if len(refs) != 1 {
		t.Fatalf("%d file references", len(refs))
	}
	if n := len(d.FindAll(Criteria{"isa": ISABuildFile, "fileRef": refs[0].GUID()})); n != 1 {
		t.Errorf("%d build files", n)
	}
	n := 0
	for _, p := range tg.Frameworks() {
		if p == "System/Library/Frameworks/QuartzCore.framework" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("listed %d times in the frameworks phase", n)
	}
}

func TestRemoveFramework(t *testing.T) {
	d, _ := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(tg.AddFramework("A.framework"))
	mustBool(t, true)(tg.AddFramework("B.framework"))
	mustBool(t, true)(tg.RemoveFramework("A.framework"))
	want := []string{uikitPath, "System/Library/Frameworks/B.framework"}
	if diff := cmp.Diff(want, tg.Frameworks()); diff != "" {
		t.Errorf("frameworks: %s", diff)
	}
	if f := d.FindFirst(Criteria{"isa": ISAFileReference, "name": "A.framework"}); f != nil {
		t.Errorf("file reference %s left", f.GUID())
	}
	mustBool(t, false)(tg.RemoveFramework("A.framework"))
	checkValid(t, d)
}

func TestAddRemoveFrameworkInverse(t *testing.T) {
	d, _ := loadApp(t)
	tg := appTargetOf(t, d)
	before := snapshot(d)
	frameworks := tg.Frameworks()
	mustBool(t, true)(tg.AddFramework("X.framework"))
	mustBool(t, true)(tg.RemoveFramework("X.framework"))
	if !ir.Equal(before, d.Objects()) {
		t.Error("object table changed")
	}
	if diff := cmp.Diff(frameworks, tg.Frameworks()); diff != "" {
		t.Errorf("frameworks: %s", diff)
	}
}

func TestRemoveExistingFramework(t *testing.T) {
	d, _ := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(tg.RemoveFramework("UIKit.framework"))
	if len(tg.Frameworks()) != 0 {
		t.Errorf("frameworks %v", tg.Frameworks())
	}
	if d.Has(appUIKit) || d.Node(appFramework).Get("children").Len() != 0 {
		t.Error("file reference left behind")
	}
	checkValid(t, d)
}

func TestAddLocalFramework(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	fw := filepath.Join(dir, "App", "Vendor", "Local.framework")
	mustBool(t, true)(tg.AddFramework(fw))
	if !slices.Contains(tg.Frameworks(), "Vendor/Local.framework") {
		t.Errorf("frameworks %v", tg.Frameworks())
	}
	f := d.FileReferenceFor(fw)
	if f == nil || f.SourceTree() != SourceTreeGroup || f.AbsPath() != fw {
		t.Fatalf("file reference %v", f)
	}
	mustBool(t, false)(tg.AddFramework(fw))
	mustBool(t, true)(tg.RemoveFramework(fw))
	checkValid(t, d)
}

func TestAddFiles(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	src := filepath.Join(dir, "App", "Sources")

	mustBool(t, true)(tg.AddSource(filepath.Join(src, "extra.m"), d.Group("/Sources")))
	mustBool(t, false)(tg.AddSource(filepath.Join(src, "extra.m"), d.Group("/Sources")))
	mustBool(t, false)(tg.AddSource(filepath.Join(src, "main.m"), nil))
	if diff := cmp.Diff([]string{"main.m", "extra.m"}, tg.BuildSources()); diff != "" {
		t.Errorf("sources: %s", diff)
	}

	mustBool(t, true)(tg.AddHeader(filepath.Join(src, "extra.h"), nil))
	if tg.Phase(ISAHeadersPhase) == nil {
		t.Fatal("no headers phase")
	}
	if diff := cmp.Diff([]string{"Sources/extra.h"}, tg.BuildHeaders()); diff != "" {
		t.Errorf("headers: %s", diff)
	}
	h := d.FileReferenceFor(filepath.Join(src, "extra.h"))
	if h == nil || h.Group().GUID() != appMainGroup || h.FileType() != "sourcecode.c.h" {
		t.Errorf("header reference %v", h)
	}

	mustBool(t, true)(tg.AddResource(filepath.Join(src, "data.json"), d.Group("Sources")))
	if diff := cmp.Diff([]string{"data.json"}, tg.BuildResources()); diff != "" {
		t.Errorf("resources: %s", diff)
	}
	checkValid(t, d)
}

func TestAddFileFailures(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	before := snapshot(d)
	_, err := tg.AddSource(filepath.Join(dir, "App", "Sources", "missing.m"), nil)
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("missing file: %v", err)
	}
	_, err = tg.AddResource(filepath.Join(dir, "App", "Sources", "notes.xyz"), nil)
	if !errors.Is(err, ErrUnknownFileType) {
		t.Errorf("unknown type: %v", err)
	}
	if !ir.Equal(before, d.Objects()) {
		t.Error("failed adds changed the document")
	}
}

func TestAddRemoveLibrary(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	lib := filepath.Join(dir, "App", "Vendor", "libvendor.a")
	before := snapshot(d)
	mustBool(t, true)(tg.AddLibrary(lib))
	mustBool(t, false)(tg.AddLibrary(lib))
	if diff := cmp.Diff([]string{"Vendor/libvendor.a"}, tg.Libraries()); diff != "" {
		t.Errorf("libraries: %s", diff)
	}
	if f := d.FileReferenceFor(lib); f == nil || f.FileType() != "archive.ar" {
		t.Errorf("file reference %v", f)
	}
	mustBool(t, true)(tg.RemoveLibrary(lib))
	mustBool(t, false)(tg.RemoveLibrary(lib))
	if !ir.Equal(before, d.Objects()) {
		t.Error("object table changed")
	}
}

func TestRemoveUnsupportedReferrer(t *testing.T) {
	d, _ := loadApp(t)
	tg := appTargetOf(t, d)
	d.Objects().Set("C00000000000000000000001", ir.FromKeyVals([]ir.KeyVal{
		{Key: "isa", Val: ir.FromString("PBXLegacyTarget")},
		{Key: "extra", Val: ir.FromString(appUIKit)},
	}))
	before := snapshot(d)
	_, err := tg.RemoveFramework("UIKit.framework")
	if !errors.Is(err, ErrUnsupportedTopology) {
		t.Fatalf("got %v", err)
	}
	if !ir.Equal(before, d.Objects()) {
		t.Error("failed removal changed the document")
	}
}
