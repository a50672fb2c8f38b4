package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/pbx/encode"
	"github.com/signadot/pbx/ir"
	"github.com/signadot/pbx/parse"
)

// Marshal writes node to w in format f.  Options apply to the pbx format
// only.
func Marshal(node *ir.Node, f Format, w io.Writer, opts ...encode.EncodeOption) error {
	switch f {
	case PBXFormat:
		return encode.Encode(node, w, opts...)
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	case YAMLFormat:
		d, err := yaml.Marshal(toYAML(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
}

// Unmarshal reads a node from data in format f.
func Unmarshal(data []byte, f Format) (*ir.Node, error) {
	switch f {
	case PBXFormat:
		return parse.Parse(data)
	case JSONFormat:
		node := &ir.Node{}
		if err := json.Unmarshal(data, node); err != nil {
			return nil, err
		}
		return node, nil
	case YAMLFormat:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
}

// toYAML converts node keeping the key order of dictionaries.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, k := range node.Fields {
			res[i] = yaml.MapItem{Key: k, Value: toYAML(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	default:
		return node.String
	}
}
