package encode

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/signadot/pbx/ir"
	"github.com/signadot/pbx/token"
)

// Marker is the first line of every project.pbxproj file.
const Marker = "// !$*UTF8*$!"

type EncState struct {
	depth  int
	indent string
	header bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
		header: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if es.header {
		writeString(bw, es.color(ir.StringType, CommentColor, Marker))
		writeString(bw, "\n")
	}
	if err := encode(node, bw, es, false); err != nil {
		return err
	}
	writeString(bw, "\n")
	return bw.Flush()
}

func encode(node *ir.Node, w *bufio.Writer, es *EncState, oneLine bool) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.StringType:
		encodeString(node.String, w, es, ValueColor)
		return nil
	case ir.ArrayType:
		return encodeArray(node, w, es, oneLine)
	case ir.ObjectType:
		return encodeObject(node, w, es, oneLine || isOneLine(node))
	default:
		return fmt.Errorf("%w: unknown node type %v", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w *bufio.Writer, es *EncState, oneLine bool) error {
	writeString(w, es.color(ir.ObjectType, SepColor, "{"))
	es.depth++
	for _, i := range sortedFields(node) {
		if !oneLine {
			writeNL(w, es)
		}
		encodeString(node.Fields[i], w, es, FieldColor)
		if oneLine {
			writeString(w, es.color(ir.ObjectType, SepColor, "="))
		} else {
			writeString(w, " "+es.color(ir.ObjectType, SepColor, "=")+" ")
		}
		attr := ValueColor
		if node.Fields[i] == "isa" {
			attr = ISAColor
		}
		v := node.Values[i]
		if v.IsString() {
			encodeString(v.String, w, es, attr)
		} else if err := encode(v, w, es, oneLine); err != nil {
			return err
		}
		writeString(w, es.color(ir.ObjectType, SepColor, ";"))
	}
	es.depth--
	if !oneLine {
		writeNL(w, es)
	}
	writeString(w, es.color(ir.ObjectType, SepColor, "}"))
	return nil
}

func encodeArray(node *ir.Node, w *bufio.Writer, es *EncState, oneLine bool) error {
	writeString(w, es.color(ir.ArrayType, SepColor, "("))
	es.depth++
	for _, v := range node.Values {
		if !oneLine {
			writeNL(w, es)
		}
		if err := encode(v, w, es, oneLine); err != nil {
			return err
		}
		writeString(w, es.color(ir.ArrayType, SepColor, ","))
	}
	es.depth--
	if !oneLine {
		writeNL(w, es)
	}
	writeString(w, es.color(ir.ArrayType, SepColor, ")"))
	return nil
}

func encodeString(s string, w *bufio.Writer, es *EncState, attr ColorAttr) {
	if attr == ValueColor && IsGUID(s) {
		attr = RefColor
	}
	if !isBare(s) {
		s = token.Quote(s)
	}
	writeString(w, es.color(ir.StringType, attr, s))
}

// isOneLine reports whether an object is written on a single line.
func isOneLine(node *ir.Node) bool {
	switch node.GetString("isa") {
	case "PBXBuildFile", "PBXFileReference":
		return true
	}
	return false
}

// sortedFields returns the indices of node's fields in output order.
func sortedFields(node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	byISA := len(node.Fields) > 0
	for i := range idx {
		idx[i] = i
		if byISA && node.Values[i].GetString("isa") == "" {
			byISA = false
		}
	}
	slices.SortFunc(idx, func(a, b int) int {
		if byISA {
			if c := cmp.Compare(node.Values[a].GetString("isa"), node.Values[b].GetString("isa")); c != 0 {
				return c
			}
		}
		return cmp.Compare(node.Fields[a], node.Fields[b])
	})
	return idx
}

func isBare(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '.', c == '_':
		default:
			return false
		}
	}
	return true
}

// IsGUID reports whether s has the shape of an object identifier: 24
// upper case hexadecimal digits.
func IsGUID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func writeNL(w *bufio.Writer, es *EncState) {
	writeString(w, "\n")
	for range es.depth {
		writeString(w, es.indent)
	}
}

// writeString buffers s; write errors surface from Flush.
func writeString(w *bufio.Writer, s string) {
	w.WriteString(s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
