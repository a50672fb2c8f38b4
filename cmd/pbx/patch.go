package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/pbx/format"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := parseSub(cfg.Patch, cc, args, 1)
	if err != nil {
		return err
	}
	data, err := readPatch(cc, args[0])
	if err != nil {
		return err
	}
	return cfg.edit(cc, func(s *session) (bool, error) {
		if err := s.doc.ApplyJSONPatch(data); err != nil {
			return false, err
		}
		return true, nil
	})
}

// readPatch reads a JSON patch from file, or from stdin for "-".  A YAML
// file is converted to JSON first.
func readPatch(cc *cli.Context, file string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cc.In)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", file, err)
	}
	f, err := format.FromPath(file)
	if err != nil || f == format.JSONFormat {
		return data, nil
	}
	if f != format.YAMLFormat {
		return nil, fmt.Errorf("%w: patch %s must be JSON or YAML", cli.ErrUsage, file)
	}
	node, err := format.Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", file, err)
	}
	return json.Marshal(node)
}
