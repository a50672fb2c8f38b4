package comb

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pbx/token"
)

func toks(t *testing.T, s string) []token.Token {
	t.Helper()
	res, err := token.Tokenize([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func appendStrings(a, b []string) []string { return append(a, b...) }

func stringList() Parser[[]string] {
	item := Map(AnyString(), func(s string) []string { return []string{s} })
	comma := Map(Reserved(","), func(string) func([]string, []string) []string {
		return appendStrings
	})
	body := Left(Repeat(item, comma), Optional(Reserved(",")))
	empty := Map(Concat(Reserved("("), Reserved(")")), func(Pair[string, string]) []string {
		return []string{}
	})
	full := Right(Reserved("("), Left(body, Reserved(")")))
	return Alternate(empty, full)
}

func TestRepeatList(t *testing.T) {
	tests := []struct {
		in  string
		out []string
	}{
		{"()", []string{}},
		{"(a)", []string{"a"}},
		{"(a,)", []string{"a"}},
		{"(a, b, \"c d\")", []string{"a", "b", "c d"}},
		{"(a, b, c,)", []string{"a", "b", "c"}},
	}
	p := Phrase(stringList())
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			res, err := Run(p, toks(t, tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.out, res); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestRepeatFoldsLeft(t *testing.T) {
	item := Map(AnyString(), func(s string) string { return s })
	minus := Map(Reserved("="), func(string) func(string, string) string {
		return func(a, b string) string { return "(" + a + "-" + b + ")" }
	})
	res, err := Run(Phrase(Repeat(item, minus)), toks(t, "a = b = c"))
	if err != nil {
		t.Fatal(err)
	}
	if res != "((a-b)-c)" {
		t.Errorf("got %s", res)
	}
}

func TestPhraseRejectsTrailing(t *testing.T) {
	_, err := Run(Phrase(stringList()), toks(t, "(a) b"))
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal(err)
	}
	if e.Pos != 3 || e.Token == nil || e.Token.Text != "b" {
		t.Errorf("reported at %d %v", e.Pos, e.Token)
	}
}

func TestFurthestFailure(t *testing.T) {
	_, err := Run(Phrase(stringList()), toks(t, "(a, b ; )"))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal(err)
	}
	if e.Token == nil || e.Token.Text != ";" {
		t.Errorf("expected failure at ';', got %v", e)
	}
}

func TestOptional(t *testing.T) {
	p := Concat(Optional(Reserved(";")), AnyString())
	res, err := Run(Phrase(p), toks(t, "x"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Left != "" || res.Right != "x" {
		t.Errorf("got %+v", res)
	}
}

type nest struct {
	kids []nest
}

func nested() Parser[nest] {
	var p Parser[nest]
	p = Lazy(func() Parser[nest] {
		empty := Map(Concat(Reserved("("), Reserved(")")), func(Pair[string, string]) nest { return nest{} })
		one := Map(Right(Reserved("("), Left(p, Reserved(")"))), func(n nest) nest {
			return nest{kids: []nest{n}}
		})
		return Limit(Alternate(empty, one), 8)
	})
	return p
}

func depth(n nest) int {
	if len(n.kids) == 0 {
		return 1
	}
	return 1 + depth(n.kids[0])
}

func TestLazyRecursion(t *testing.T) {
	res, err := Run(Phrase(nested()), toks(t, "((()))"))
	if err != nil {
		t.Fatal(err)
	}
	if depth(res) != 3 {
		t.Errorf("depth %d", depth(res))
	}
}

func TestLimit(t *testing.T) {
	in := strings.Repeat("(", 20) + strings.Repeat(")", 20)
	_, err := Run(Phrase(nested()), toks(t, in))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("got %v", err)
	}
}
