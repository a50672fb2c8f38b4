package project

import (
	"github.com/signadot/pbx/ir"
)

// BuildPhase is a step of a target's build; its kind is its isa.
type BuildPhase struct {
	object
}

func (p *BuildPhase) Kind() string { return p.ISA() }

func (p *BuildPhase) Files() []*BuildFile {
	return listAs[*BuildFile](&p.object, "files")
}

func (p *BuildPhase) Contains(b *BuildFile) bool {
	return p.Get("files").ContainsString(b.GUID())
}

func (p *BuildPhase) AddFile(b *BuildFile) bool {
	return p.appendGUID("files", b.GUID())
}

func (p *BuildPhase) RemoveFile(b *BuildFile) bool {
	return p.removeGUID("files", b.GUID())
}

func (d *Document) newBuildPhase(isa string) *BuildPhase {
	return objectAs[*BuildPhase](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(isa)},
		ir.KeyVal{Key: "buildActionMask", Val: ir.FromString(buildActionMask)},
		ir.KeyVal{Key: "files", Val: ir.FromSlice(nil)},
		ir.KeyVal{Key: "runOnlyForDeploymentPostprocessing", Val: ir.FromString("0")},
	))
}
