package ir

import "strings"

// Equal reports whether a and b hold the same value.  Objects compare as
// mappings, so key order does not matter; array order does.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, k := range a.Fields {
			if !Equal(a.Values[i], b.Get(k)) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare orders values: strings before arrays before objects, strings
// lexically, arrays and objects element by element.
func Compare(a, b *Node) int {
	if a.Type != b.Type {
		return int(a.Type) - int(b.Type)
	}
	switch a.Type {
	case StringType:
		return strings.Compare(a.String, b.String)
	case ObjectType:
		for i := range min(len(a.Fields), len(b.Fields)) {
			if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
				return c
			}
		}
	}
	for i := range min(len(a.Values), len(b.Values)) {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return len(a.Values) - len(b.Values)
}
