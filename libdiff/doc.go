// Package libdiff compares project documents.
//
// # Usage
//
//	// unified style line diff of two serialisations
//	text := libdiff.Lines(before, after, 3)
//
//	// objects added, removed or changed between two object tables
//	changes := libdiff.Objects(oldDoc.Objects(), newDoc.Objects())
//
// # Related Packages
//
//   - github.com/signadot/pbx/encode - produces the text compared by Lines
//   - github.com/signadot/pbx/ir - IR representation
package libdiff
