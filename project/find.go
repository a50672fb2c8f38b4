package project

import (
	"github.com/signadot/pbx/ir"
)

// Criteria selects objects by field value.  A scalar field matches when it
// equals the criterion; a list field matches when it contains it.  Every
// criterion must match.
type Criteria map[string]string

func (c Criteria) Match(n *ir.Node) bool {
	if n == nil {
		return false
	}
	for k, want := range c {
		v := n.Get(k)
		switch {
		case v.IsString():
			if v.String != want {
				return false
			}
		case v.IsArray():
			if !v.ContainsString(want) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// FindAll returns the objects matching c in table order.
func (d *Document) FindAll(c Criteria) []Object {
	var res []Object
	objs := d.Objects()
	for i, g := range objs.Fields {
		if c.Match(objs.Values[i]) {
			res = append(res, d.Object(g))
		}
	}
	return res
}

// FindFirst returns the first object matching c in table order, or nil.
func (d *Document) FindFirst(c Criteria) Object {
	objs := d.Objects()
	for i, g := range objs.Fields {
		if c.Match(objs.Values[i]) {
			return d.Object(g)
		}
	}
	return nil
}

func findAllAs[T Object](d *Document, c Criteria) []T {
	var res []T
	for _, o := range d.FindAll(c) {
		if v, ok := o.(T); ok {
			res = append(res, v)
		}
	}
	return res
}

func findFirstAs[T Object](d *Document, c Criteria) T {
	for _, o := range d.FindAll(c) {
		if v, ok := o.(T); ok {
			return v
		}
	}
	var zero T
	return zero
}

// Referrers returns every other object having guid anywhere among its
// field values, list elements, or the keys and values of nested
// dictionaries.
func (d *Document) Referrers(guid string) []Object {
	var res []Object
	objs := d.Objects()
	for i, g := range objs.Fields {
		if g == guid {
			continue
		}
		if mentions(objs.Values[i], guid) {
			res = append(res, d.Object(g))
		}
	}
	return res
}

func mentions(n *ir.Node, guid string) bool {
	switch n.Type {
	case ir.StringType:
		return n.String == guid
	case ir.ObjectType:
		for i, k := range n.Fields {
			if k == guid || mentions(n.Values[i], guid) {
				return true
			}
		}
	case ir.ArrayType:
		for _, v := range n.Values {
			if mentions(v, guid) {
				return true
			}
		}
	}
	return false
}
