package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbx/ir"
)

func subPath(dir string) string {
	return filepath.Join(dir, "Sub", "Sub.xcodeproj")
}

func TestAddProject(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(d.AddProject(subPath(dir)))

	ref := d.FileReferenceFor(subPath(dir))
	if ref == nil {
		t.Fatal("no file reference for the project")
	}
	if ref.FileType() != "wrapper.pb-project" || ref.Path() != "../Sub/Sub.xcodeproj" {
		t.Errorf("file reference %v", ref.Node().ToAny())
	}
	libs := d.Group("/Libraries")
	if libs == nil || ref.Group().GUID() != libs.GUID() {
		t.Errorf("project listed in %v", ref.Group())
	}

	prs := d.RootObject().ProjectReferences()
	if len(prs) != 1 || prs[0].ProjectRef != ref.GUID() {
		t.Fatalf("project references %v", prs)
	}
	pg := objectAs[*Group](d, prs[0].ProductGroup)
	if pg == nil || pg.Name() != "Products" {
		t.Fatalf("product group %v", pg)
	}
	var products []string
	for _, c := range pg.Children() {
		rp, ok := c.(*ReferenceProxy)
		if !ok {
			t.Fatalf("product group child %T", c)
		}
		products = append(products, rp.Path()+" "+rp.FileType())
		remote := rp.RemoteRef()
		if remote == nil || remote.ProxyType() != ProxyTypeReference || remote.ContainerPortal() != ref.GUID() {
			t.Errorf("remote ref %v", remote)
		}
	}
	want := []string{"libSub.a archive.ar", "SubTests.xctest wrapper.cfbundle"}
	if diff := cmp.Diff(want, products); diff != "" {
		t.Errorf("products: %s", diff)
	}

	deps := tg.Dependencies()
	if len(deps) != 1 || deps[0].Name() != "Sub" {
		t.Fatalf("dependencies %v", deps)
	}
	if p := deps[0].TargetProxy(); p == nil || p.ProxyType() != ProxyTypeTarget || p.RemoteGlobalID() != "B00000000000000000000040" {
		t.Errorf("target proxy %v", p)
	}
	if diff := cmp.Diff([]string{"libSub.a"}, tg.Libraries()); diff != "" {
		t.Errorf("libraries: %s", diff)
	}
	if _, ok := d.Cache().Lookup(subPath(dir)); !ok {
		t.Error("sub-project not cached")
	}
	checkValid(t, d)

	mustBool(t, false)(d.AddProject(subPath(dir)))
	if n := countISA(d, ISAReferenceProxy); n != 2 {
		t.Errorf("%d reference proxies after a second add", n)
	}
}

func TestAddProjectOptions(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(d.AddProject(subPath(dir), ToGroupPath("/Vendor/Projects"), Dependency(false), Link(false)))
	if len(tg.Dependencies()) != 0 || len(tg.Libraries()) != 0 {
		t.Errorf("dependencies %d, libraries %v", len(tg.Dependencies()), tg.Libraries())
	}
	g := d.Group("/Vendor/Projects")
	if g == nil || len(g.Files()) != 1 {
		t.Fatalf("group %v", g)
	}
	if countISA(d, ISAContainerItemProxy) != 2 {
		t.Errorf("%d container proxies", countISA(d, ISAContainerItemProxy))
	}
}

func TestAddProjectPreconditions(t *testing.T) {
	d, dir := loadApp(t)
	before := snapshot(d)
	_, err := d.AddProject(filepath.Join(dir, "Missing", "Missing.xcodeproj"))
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("missing project: %v", err)
	}
	_, err = d.AddProject(d.ProjectDir())
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("self reference: %v", err)
	}
	if !ir.Equal(before, d.Objects()) {
		t.Error("failed adds changed the document")
	}
}

func TestRemoveProject(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	before := snapshot(d)
	mustBool(t, true)(d.AddProject(subPath(dir)))
	libs := d.Group("/Libraries").GUID()

	mustBool(t, true)(d.RemoveProject(subPath(dir)))
	for _, isa := range []string{ISAContainerItemProxy, ISAReferenceProxy, ISATargetDependency} {
		if n := countISA(d, isa); n != 0 {
			t.Errorf("%d %s left", n, isa)
		}
	}
	if len(tg.Dependencies()) != 0 || len(tg.Libraries()) != 0 {
		t.Errorf("dependencies %d, libraries %v", len(tg.Dependencies()), tg.Libraries())
	}
	checkValid(t, d)
	if g := d.Group("/Libraries"); g == nil || len(g.Children()) != 0 {
		t.Errorf("Libraries group should stay, unlinked from the proxy: %v", g)
	}

	after := snapshot(d)
	after.Delete(libs)
	after.Get(appMainGroup).Get("children").Remove(ir.FromString(libs))
	if !ir.Equal(before, after) {
		t.Error("object table differs beyond the Libraries group")
	}
	mustBool(t, false)(d.RemoveProject(subPath(dir)))
}

func TestRemoveProjectNotReferenced(t *testing.T) {
	d, dir := loadApp(t)
	before := snapshot(d)
	mustBool(t, false)(d.RemoveProject(subPath(dir)))
	if !ir.Equal(before, d.Objects()) {
		t.Error("object table changed")
	}
}

func TestRemoveProjectUnsupportedTopology(t *testing.T) {
	d, dir := loadApp(t)
	mustBool(t, true)(d.AddProject(subPath(dir)))
	ref := d.FileReferenceFor(subPath(dir))
	d.Objects().Set("C00000000000000000000001", ir.FromKeyVals([]ir.KeyVal{
		{Key: "isa", Val: ir.FromString("PBXAggregateTarget")},
		{Key: "portal", Val: ir.FromString(ref.GUID())},
	}))
	before := snapshot(d)
	_, err := d.RemoveProject(subPath(dir))
	if !errors.Is(err, ErrUnsupportedTopology) || !errors.Is(err, ErrReference) {
		t.Fatalf("got %v", err)
	}
	if !ir.Equal(before, d.Objects()) {
		t.Error("failed removal changed the document")
	}
}

func TestTargetDependency(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(d.AddProject(subPath(dir), Dependency(false)))
	before := snapshot(d)

	mustBool(t, true)(tg.AddTargetDependency("libSub.a"))
	mustBool(t, false)(tg.AddTargetDependency("libSub.a"))
	if deps := tg.Dependencies(); len(deps) != 1 || deps[0].Name() != "Sub" {
		t.Fatalf("dependencies %v", deps)
	}
	mustBool(t, true)(tg.RemoveTargetDependency("libSub.a"))
	mustBool(t, false)(tg.RemoveTargetDependency("libSub.a"))
	if !ir.Equal(before, d.Objects()) {
		t.Error("object table changed")
	}

	mustBool(t, true)(tg.AddTargetDependency("libSub.a"))
	mustBool(t, true)(tg.RemoveTargetDependency("Sub"))

	_, err := tg.AddTargetDependency("libMissing.a")
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("got %v", err)
	}
}

func TestRemoveProductLibrary(t *testing.T) {
	d, dir := loadApp(t)
	tg := appTargetOf(t, d)
	mustBool(t, true)(d.AddProject(subPath(dir)))
	mustBool(t, true)(tg.RemoveLibrary("libSub.a"))
	mustBool(t, false)(tg.RemoveLibrary("libSub.a"))
	if len(tg.Libraries()) != 0 {
		t.Errorf("libraries %v", tg.Libraries())
	}
	if d.productProxy("libSub.a") == nil {
		t.Error("reference proxy removed")
	}
	mustBool(t, true)(tg.AddLibrary("libSub.a"))
	checkValid(t, d)
}
