package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tt struct {
	Text   string
	Tag    Tag
	Quoted bool
}

func simplify(toks []Token) []tt {
	res := make([]tt, len(toks))
	for i := range toks {
		res[i] = tt{Text: toks[i].Text, Tag: toks[i].Tag, Quoted: toks[i].Quoted}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []tt
	}{
		{
			name: "empty",
			in:   "",
			out:  []tt{},
		},
		{
			name: "header and dict",
			in:   "// !$*UTF8*$!\n{a = b;}",
			out: []tt{
				{"{", Reserved, false},
				{"a", String, false},
				{"=", Reserved, false},
				{"b", String, false},
				{";", Reserved, false},
				{"}", Reserved, false},
			},
		},
		{
			name: "block comments",
			in:   "( /* Begin */ A.framework /* in\nFrameworks */, )",
			out: []tt{
				{"(", Reserved, false},
				{"A.framework", String, false},
				{",", Reserved, false},
				{")", Reserved, false},
			},
		},
		{
			name: "bareword characters",
			in:   "<group> System/Library/Frameworks/UIKit.framework _x9",
			out: []tt{
				{"<group>", String, false},
				{"System/Library/Frameworks/UIKit.framework", String, false},
				{"_x9", String, false},
			},
		},
		{
			name: "quoted keeps escapes",
			in:   `"a b" "" "say \"hi\"\n"`,
			out: []tt{
				{"a b", String, true},
				{"", String, true},
				{`say \"hi\"\n`, String, true},
			},
		},
		{
			name: "line comment at end",
			in:   "x // trailing",
			out: []tt{
				{"x", String, false},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.out, simplify(toks)); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		char rune
		line int
	}{
		{"illegal", "{ a = b-c; }", ErrIllegalChar, '-', 0},
		{"illegal second line", "{\n  a = @;\n}", ErrIllegalChar, '@', 1},
		{"unterminated quote", `{ a = "abc`, ErrUnterminated, '"', 0},
		{"newline in quote", "{ a = \"ab\nc\"; }", ErrUnterminated, '"', 0},
		{"unterminated comment", "{ /* a = b; }", ErrUnterminated, '/', 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize([]byte(tc.in))
			if !errors.Is(err, tc.err) {
				t.Fatalf("got %v want %v", err, tc.err)
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("%T is not a *LexError", err)
			}
			if lexErr.Char != tc.char {
				t.Errorf("char %q want %q", lexErr.Char, tc.char)
			}
			if lexErr.Pos.Line() != tc.line {
				t.Errorf("line %d want %d", lexErr.Pos.Line(), tc.line)
			}
			if lexErr.Context == "" {
				t.Errorf("empty context")
			}
		})
	}
}

func TestLexErrorContext(t *testing.T) {
	in := "0123456789abcdefghij#klmnopqrstuvwxyz"
	_, err := Tokenize([]byte(in))
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
	if lexErr.Context != "abcdefghij#klmnopqrs" {
		t.Errorf("context %q", lexErr.Context)
	}
	if lexErr.Pos.I != 20 {
		t.Errorf("offset %d", lexErr.Pos.I)
	}
}
