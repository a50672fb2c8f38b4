package project

import (
	"github.com/signadot/pbx/ir"
)

// Object is a view of one entry of a document's object table.  Views hold
// only the document and the GUID, so they remain valid while the object is
// mutated in place.
type Object interface {
	GUID() string
	ISA() string
	Document() *Document
	// Node returns the object's mapping, or nil once it has been deleted.
	Node() *ir.Node

	Get(field string) *ir.Node
	GetString(field string) string
	Set(field string, v *ir.Node)
	SetString(field, v string)
	// AppendToList appends v to the list field, creating the list when
	// absent.  It reports false when v was already present.
	AppendToList(field string, v *ir.Node) bool
	// RemoveFromList removes every occurrence of v and reports whether
	// there was one.
	RemoveFromList(field string, v *ir.Node) bool
	Delete()

	base() *object
}

type object struct {
	doc  *Document
	guid string
}

// Generic is the view of objects of a kind without a dedicated view.
type Generic struct {
	object
}

func (o *object) base() *object       { return o }
func (o *object) GUID() string        { return o.guid }
func (o *object) Document() *Document { return o.doc }

func (o *object) Node() *ir.Node {
	return o.doc.Node(o.guid)
}

func (o *object) ISA() string {
	return o.GetString("isa")
}

func (o *object) Get(field string) *ir.Node {
	return o.Node().Get(field)
}

func (o *object) GetString(field string) string {
	return o.Node().GetString(field)
}

func (o *object) Set(field string, v *ir.Node) {
	if n := o.Node(); n != nil {
		n.Set(field, v)
	}
}

func (o *object) SetString(field, v string) {
	o.Set(field, ir.FromString(v))
}

func (o *object) AppendToList(field string, v *ir.Node) bool {
	n := o.Node()
	if n == nil {
		return false
	}
	list := n.Get(field)
	if !list.IsArray() {
		list = ir.FromSlice(nil)
		n.Set(field, list)
	}
	if list.Contains(v) {
		return false
	}
	list.Append(v)
	return true
}

func (o *object) RemoveFromList(field string, v *ir.Node) bool {
	return o.Get(field).Remove(v)
}

func (o *object) Delete() {
	o.doc.Objects().Delete(o.guid)
}

func (o *object) appendGUID(field, guid string) bool {
	return o.AppendToList(field, ir.FromString(guid))
}

func (o *object) removeGUID(field, guid string) bool {
	return o.RemoveFromList(field, ir.FromString(guid))
}

// guids returns the string elements of a list field.
func (o *object) guids(field string) []string {
	return o.Get(field).Strings()
}

// ref returns the object named by the GUID in field, or nil.
func (o *object) ref(field string) Object {
	g := o.GetString(field)
	if g == "" {
		return nil
	}
	return o.doc.Object(g)
}

// objectAs returns the object with the given GUID when its view has type T.
func objectAs[T Object](d *Document, guid string) T {
	o, _ := d.Object(guid).(T)
	return o
}

func refAs[T Object](o *object, field string) T {
	return objectAs[T](o.doc, o.GetString(field))
}

func listAs[T Object](o *object, field string) []T {
	var res []T
	for _, g := range o.guids(field) {
		if v, ok := o.doc.Object(g).(T); ok {
			res = append(res, v)
		}
	}
	return res
}
