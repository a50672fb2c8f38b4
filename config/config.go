package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/pbx/format"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Names lists the file names Find looks for, in order of preference.
var Names = []string{"pbx.toml", "pbx.yaml", "pbx.yml"}

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	// Target names the target edits apply to when none is given.  Empty
	// means the first native target.
	Target          string    `toml:"target" yaml:"target"`
	LibrariesGroup  string    `toml:"libraries-group" yaml:"libraries-group"`
	FrameworksGroup string    `toml:"frameworks-group" yaml:"frameworks-group"`
	Indent          string    `toml:"indent" yaml:"indent"`
	Color           ColorMode `toml:"color" yaml:"color"`

	// DumpFormat is the format dump writes when neither -O nor the output
	// file suffix names one.
	DumpFormat format.Format `toml:"dump-format" yaml:"dump-format"`
}

func Default() *Config {
	return &Config{
		LibrariesGroup:  "/Libraries",
		FrameworksGroup: "Frameworks",
		Indent:          "\t",
		Color:           ColorAuto,
		DumpFormat:      format.JSONFormat,
	}
}

// Load reads the configuration at path over the defaults.  The file
// extension selects the syntax.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find looks for a configuration file in dir and then in each parent
// directory.  It returns the defaults and an empty path when there is none.
func Find(dir string) (*Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	for {
		for _, name := range Names {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err != nil {
				continue
			}
			cfg, err := Load(p)
			if err != nil {
				return nil, "", err
			}
			return cfg, p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), "", nil
		}
		dir = parent
	}
}

func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	case "":
		c.Color = ColorAuto
		return nil
	}
	return fmt.Errorf("%w %q", ErrColor, c.Color)
}
