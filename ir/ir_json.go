package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var _ json.Marshaler = (*Node)(nil)

// ToAny converts y to plain Go values: string, []any and map[string]any.
func (y *Node) ToAny() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, k := range y.Fields {
			res[k] = y.Values[i].ToAny()
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values back to a node.  Scalars which are not
// strings are stored in their textual form.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case string:
		return FromString(x), nil
	case json.Number:
		return FromString(x.String()), nil
	case bool, int, int64, uint64, float64:
		return FromString(fmt.Sprint(x)), nil
	case []any:
		res := FromSlice(make([]*Node, 0, len(x)))
		for _, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrType, v)
	}
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.ToAny())
}

func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	n, err := FromAny(v)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}
