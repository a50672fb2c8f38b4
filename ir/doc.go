// Package ir provides the value tree of a project.pbxproj document.
//
// A value is a string, an object (string keys to values, keys kept in
// insertion order) or an array.  Objects keep their keys and values in the
// parallel slices Fields and Values.
//
// Strings hold text exactly as it appeared between quotes in the source,
// escape sequences included, so that writing a parsed document reproduces
// them unchanged.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "isa":  ir.FromString("PBXGroup"),
//	    "name": ir.FromString("Frameworks"),
//	})
//	node.Set("children", ir.FromStrings(nil))
//	node.Get("children").Append(ir.FromString(guid))
//
// # Related Packages
//
//   - github.com/signadot/pbx/parse - text to IR
//   - github.com/signadot/pbx/encode - IR to text
package ir
