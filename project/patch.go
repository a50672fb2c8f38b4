package project

import (
	"encoding/json"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/pbx/ir"
)

// ApplyJSONPatch applies an RFC 6902 patch to the JSON form of the whole
// document.  When the patched document fails Validate, d is left unchanged
// and the violations are returned.
func (d *Document) ApplyJSONPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	doc, err := json.Marshal(d.tree)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	tree := &ir.Node{}
	if err := json.Unmarshal(out, tree); err != nil {
		return err
	}
	if !tree.Get("objects").IsObject() {
		return referenceErr("patched document has no object table")
	}
	old := d.tree
	d.tree = tree
	if errs := d.Validate(); len(errs) > 0 {
		d.tree = old
		return errors.Join(errs...)
	}
	d.log().Debug("applied json patch", "ops", len(ops))
	return nil
}
