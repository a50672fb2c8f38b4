// Package format names the notations a project document can be read from
// and written to.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f, err = format.FromPath("patch.yaml")
//	err = format.Marshal(node, f, os.Stdout)
//	node, err = format.Unmarshal(data, f)
//
// The pbx format is the project.pbxproj notation itself.  JSON and YAML
// carry the same tree with every scalar as a string.
//
// # Related Packages
//
//   - github.com/signadot/pbx/parse - Parse text to IR
//   - github.com/signadot/pbx/encode - Encode IR to text
package format
