package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbx/ir"
	"github.com/signadot/pbx/token"
)

func TestParseDocument(t *testing.T) {
	in := `// !$*UTF8*$!
{
	archiveVersion = 1;
	objects = {
		ABC = {isa = PBXGroup; children = (X, Y, ); };
	};
	rootObject = ABC;
}
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "archiveVersion", Val: ir.FromString("1")},
		{Key: "objects", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "ABC", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "isa", Val: ir.FromString("PBXGroup")},
				{Key: "children", Val: ir.FromStrings([]string{"X", "Y"})},
			})},
		})},
		{Key: "rootObject", Val: ir.FromString("ABC")},
	})
	if !ir.Equal(want, node) {
		t.Errorf("got %v", node.ToAny())
	}
	if diff := cmp.Diff([]string{"archiveVersion", "objects", "rootObject"}, node.Keys()); diff != "" {
		t.Errorf("key order: %s", diff)
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  any
	}{
		{"empty dict", "{}", map[string]any{}},
		{"empty list", "{a = ();}", map[string]any{"a": []any{}}},
		{"no trailing semicolon", "{a = b}", map[string]any{"a": "b"}},
		{"no trailing comma", "{a = (x, y);}", map[string]any{"a": []any{"x", "y"}}},
		{"duplicate keys", "{a = 1; a = 2;}", map[string]any{"a": "2"}},
		{"quoted key", `{"a b" = "<group>";}`, map[string]any{"a b": "<group>"}},
		{"nested", "{a = {b = (c, {d = e;});};}", map[string]any{
			"a": map[string]any{"b": []any{"c", map[string]any{"d": "e"}}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.out, node.ToAny()); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseAnyValue(t *testing.T) {
	node, err := Parse([]byte("(a, b)"), AnyValue())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, node.Strings()); diff != "" {
		t.Error(diff)
	}
	if _, err := Parse([]byte("(a, b)")); !errors.Is(err, ErrParse) {
		t.Errorf("top level list accepted: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		at   string
	}{
		{"missing value", "{a = ;}", ";"},
		{"double separator", "{a = b;; c = d;}", ";"},
		{"unclosed", "{a = b;", ""},
		{"missing equals", "{a b;}", "b"},
		{"trailing", "{a = b;} x", "x"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if node != nil {
				t.Errorf("partial tree returned")
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("got %v", err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v is not ErrParse", err)
			}
			got := ""
			if pe.Token != nil {
				got = pe.Token.Text
			}
			if got != tc.at {
				t.Errorf("reported at %q, want %q", got, tc.at)
			}
		})
	}
}

func TestParseLexError(t *testing.T) {
	_, err := Parse([]byte("{a = b-c;}"))
	var le *token.LexError
	if !errors.As(err, &le) {
		t.Fatalf("got %v", err)
	}
	if le.Char != '-' {
		t.Errorf("char %q", le.Char)
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := "{a = " + strings.Repeat("(", 40) + strings.Repeat(")", 40) + ";}"
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("default depth: %v", err)
	}
	_, err := Parse([]byte(in), MaxDepth(10))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("too deep is not a parse error")
	}
}
