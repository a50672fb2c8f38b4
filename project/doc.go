// Package project models an Xcode project.pbxproj document and edits it
// while keeping references between its objects consistent.
//
// A Document owns the parsed tree.  Every object lives in the object table
// under its GUID and all references between objects are GUIDs.  Views such
// as *Group or *NativeTarget hold the document and a GUID and read through
// to the table, so they stay valid while the object is edited.  An object
// whose isa has no view is returned as a *Generic.
//
// Operations which edit the document return (bool, error): true when the
// document changed, false with a nil error when there was nothing to do,
// and an error otherwise.  Preconditions are checked before the first edit.
//
// # Usage
//
//	cache := project.NewCache(project.WithLogger(logger))
//	doc, err := cache.Load("App.xcodeproj")
//	if err != nil {
//	    return err
//	}
//	target := doc.DefaultTarget()
//	if _, err := target.AddFramework("QuartzCore.framework"); err != nil {
//	    return err
//	}
//	if _, err := doc.AddProject("../Sub/Sub.xcodeproj"); err != nil {
//	    return err
//	}
//	return doc.Save()
//
// Documents referenced from one another are loaded through the same Cache,
// so a project referenced several times is parsed once.  Neither documents
// nor caches are safe for concurrent use.
//
// # Errors
//
// Errors wrap ErrReference for dangling or unexpected references (including
// ErrUnsupportedTopology), ErrPrecondition for missing inputs (including
// ErrUnknownFileType) and ErrIO for file system failures.  Syntax errors are
// returned as they come from the parse package.
//
// # Related Packages
//
//   - github.com/signadot/pbx/parse - reads documents
//   - github.com/signadot/pbx/encode - writes documents
//   - github.com/signadot/pbx/ir - the document tree
package project
