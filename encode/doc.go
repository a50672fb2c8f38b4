// Package encode writes IR nodes as project.pbxproj text.
//
// Output begins with the `// !$*UTF8*$!` marker line and indents with one
// tab per nesting level.  Dictionary keys are written in sorted order,
// except that a dictionary whose values are all objects carrying an `isa`
// is sorted by `isa`, which groups the object table by kind.  PBXBuildFile
// and PBXFileReference objects are written on a single line.
//
// # Usage
//
//	err := encode.Encode(node, w)
//
//	// for a terminal
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/pbx/ir - IR representation
//   - github.com/signadot/pbx/parse - Parse text to IR
package encode
