package project

import (
	"github.com/signadot/pbx/ir"
)

const headerSearchPaths = "HEADER_SEARCH_PATHS"

type BuildConfiguration struct {
	object
}

func (c *BuildConfiguration) Name() string { return c.GetString("name") }

func (c *BuildConfiguration) BuildSettings() *ir.Node {
	return c.Get("buildSettings")
}

// Setting returns the build setting key, or nil.
func (c *BuildConfiguration) Setting(key string) *ir.Node {
	return c.BuildSettings().Get(key)
}

func (c *BuildConfiguration) SetSetting(key string, v *ir.Node) {
	s := c.BuildSettings()
	if !s.IsObject() {
		s = ir.NewObject()
		c.Set("buildSettings", s)
	}
	s.Set(key, v)
}

// appendSetting appends paths missing from the list setting key, turning a
// scalar value into a one element list first.
func (c *BuildConfiguration) appendSetting(key string, paths []string) bool {
	cur := c.Setting(key)
	switch {
	case cur == nil:
		cur = ir.FromSlice(nil)
	case cur.IsString():
		cur = ir.FromStrings([]string{cur.String})
	case !cur.IsArray():
		return false
	}
	changed := false
	for _, p := range paths {
		if !cur.ContainsString(p) {
			cur.Append(ir.FromString(p))
			changed = true
		}
	}
	if changed {
		c.SetSetting(key, cur)
	}
	return changed
}

type ConfigurationList struct {
	object
}

func (l *ConfigurationList) Configurations() []*BuildConfiguration {
	return listAs[*BuildConfiguration](&l.object, "buildConfigurations")
}

// Configuration returns the listed configuration called name, or nil.
func (l *ConfigurationList) Configuration(name string) *BuildConfiguration {
	for _, c := range l.Configurations() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (l *ConfigurationList) AddConfiguration(c *BuildConfiguration) bool {
	return l.appendGUID("buildConfigurations", c.GUID())
}

func (l *ConfigurationList) RemoveConfiguration(c *BuildConfiguration) bool {
	return l.removeGUID("buildConfigurations", c.GUID())
}

func (l *ConfigurationList) DefaultConfigurationName() string {
	return l.GetString("defaultConfigurationName")
}

func (l *ConfigurationList) Visible() bool {
	return l.GetString("defaultConfigurationIsVisible") == "1"
}

// NewBuildConfiguration creates a configuration called name.  A nil
// settings starts it with no build settings.
func (d *Document) NewBuildConfiguration(name string, settings *ir.Node) *BuildConfiguration {
	if settings == nil {
		settings = ir.NewObject()
	}
	return objectAs[*BuildConfiguration](d, d.insert(
		ir.KeyVal{Key: "isa", Val: ir.FromString(ISABuildConfiguration)},
		ir.KeyVal{Key: "buildSettings", Val: settings},
		ir.KeyVal{Key: "name", Val: ir.FromString(name)},
	))
}

// SetHeaderSearchPaths adds paths to HEADER_SEARCH_PATHS of every build
// configuration called configName.
func (d *Document) SetHeaderSearchPaths(configName string, paths ...string) (bool, error) {
	confs := findAllAs[*BuildConfiguration](d, Criteria{"isa": ISABuildConfiguration, "name": configName})
	if len(confs) == 0 {
		return false, preconditionErr("no build configuration %q", configName)
	}
	changed := false
	for _, c := range confs {
		if c.appendSetting(headerSearchPaths, paths) {
			changed = true
		}
	}
	if changed {
		d.log().Debug("set header search paths", "configuration", configName, "paths", paths, "configurations", len(confs))
	}
	return changed, nil
}
