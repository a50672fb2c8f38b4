package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node
	String string
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromString(s string) *Node {
	return &Node{Type: StringType, String: s}
}

func FromStrings(ss []string) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(ss))}
	for i, s := range ss {
		res.Values[i] = FromString(s)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap creates an object with the keys of m in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, m[k])
	}
	return res
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func NewObject() *Node {
	return &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
}

func (y *Node) IsString() bool { return y != nil && y.Type == StringType }
func (y *Node) IsObject() bool { return y != nil && y.Type == ObjectType }
func (y *Node) IsArray() bool  { return y != nil && y.Type == ArrayType }

func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

// Index returns the position of key in an object, or -1.
func (y *Node) Index(key string) int {
	if !y.IsObject() {
		return -1
	}
	return slices.Index(y.Fields, key)
}

func (y *Node) Has(key string) bool {
	return y.Index(key) != -1
}

// Get returns the value of key, or nil when y is not an object or has no
// such key.
func (y *Node) Get(key string) *Node {
	i := y.Index(key)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// GetString returns the string value of key, or "" when it is absent or
// not a string.
func (y *Node) GetString(key string) string {
	v := y.Get(key)
	if !v.IsString() {
		return ""
	}
	return v.String
}

// Set sets key to v, replacing any existing value in place.
func (y *Node) Set(key string, v *Node) {
	if i := y.Index(key); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

func (y *Node) Delete(key string) bool {
	i := y.Index(key)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) Keys() []string {
	if !y.IsObject() {
		return nil
	}
	return slices.Clone(y.Fields)
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Contains(v *Node) bool {
	if !y.IsArray() {
		return false
	}
	return slices.ContainsFunc(y.Values, func(e *Node) bool { return Equal(e, v) })
}

// ContainsString reports whether an array holds the string s.
func (y *Node) ContainsString(s string) bool {
	if !y.IsArray() {
		return false
	}
	return slices.ContainsFunc(y.Values, func(e *Node) bool { return e.IsString() && e.String == s })
}

// Remove deletes every element of an array equal to v and reports whether
// any was found.
func (y *Node) Remove(v *Node) bool {
	if !y.IsArray() {
		return false
	}
	n := len(y.Values)
	y.Values = slices.DeleteFunc(y.Values, func(e *Node) bool { return Equal(e, v) })
	return len(y.Values) != n
}

// Strings returns the string elements of an array.
func (y *Node) Strings() []string {
	if !y.IsArray() {
		return nil
	}
	res := make([]string, 0, len(y.Values))
	for _, v := range y.Values {
		if v.IsString() {
			res = append(res, v.String)
		}
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{Type: y.Type, String: y.String}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}
