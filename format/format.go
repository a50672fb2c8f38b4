package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

type Format int

const (
	PBXFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	names    []string
	suffixes []string
}

// formats is indexed by Format; the first name is the canonical one.
var formats = [...]formatInfo{
	PBXFormat:  {names: []string{"pbx", "p"}, suffixes: []string{".pbxproj"}},
	JSONFormat: {names: []string{"json", "j"}, suffixes: []string{".json"}},
	YAMLFormat: {names: []string{"yaml", "y", "yml"}, suffixes: []string{".yaml", ".yml"}},
}

func ParseFormat(v string) (Format, error) {
	for f, fi := range formats {
		if slices.Contains(fi.names, v) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath returns the format named by the suffix of path.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for f, fi := range formats {
		if slices.Contains(fi.suffixes, ext) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: no format for %q", ErrBadFormat, path)
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formats) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].names[0]
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
