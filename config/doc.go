// Package config loads the optional pbx tool configuration.
//
// A configuration file named pbx.toml or pbx.yaml may sit next to a project
// or in any directory above it.  Fields left out keep their defaults.
//
//	# pbx.toml
//	target = "App"
//	libraries-group = "/Vendor"
//	frameworks-group = "Frameworks"
//	indent = "  "
//	color = "auto"
//
// # Usage
//
//	cfg, path, err := config.Find(projectDir)
//	if err != nil {
//		return err
//	}
//	if path == "" {
//		// no file found, cfg holds the defaults
//	}
//
// # Related Packages
//
//   - github.com/signadot/pbx/project - consumes the group names
//   - github.com/signadot/pbx/encode - consumes Indent
package config
