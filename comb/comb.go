package comb

import (
	"errors"
	"fmt"

	"github.com/signadot/pbx/token"
)

var (
	ErrNoMatch  = errors.New("no match")
	ErrTooDeep  = errors.New("nesting too deep")
	ErrTrailing = errors.New("unconsumed input")
)

// Parser tries to match at pos.  On success it returns the result and the
// position just past what it consumed.  On failure the returned position
// is unspecified and ok is false.
type Parser[T any] func(s *Stream, pos int) (res T, next int, ok bool)

type Stream struct {
	Toks []token.Token

	far   int
	err   error
	depth int
}

func NewStream(toks []token.Token) *Stream {
	return &Stream{Toks: toks}
}

// Furthest returns the furthest position at which a primitive parser
// failed.  It is where a syntax error is reported.
func (s *Stream) Furthest() int {
	return s.far
}

// Err returns a fatal condition recorded while parsing, such as ErrTooDeep.
func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) fail(pos int) {
	if pos > s.far {
		s.far = pos
	}
}

// At returns the token at pos, or nil at the end of the stream.
func (s *Stream) At(pos int) *token.Token {
	if pos < 0 || pos >= len(s.Toks) {
		return nil
	}
	return &s.Toks[pos]
}

type Pair[A, B any] struct {
	Left  A
	Right B
}

// Error describes a failed Run.
type Error struct {
	Err   error
	Pos   int
	Token *token.Token
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%s at end of input", e.Err)
	}
	return fmt.Sprintf("%s at token %d %q (%s)", e.Err, e.Pos, e.Token.String(), e.Token.Pos.String())
}

// Run applies p to toks from position 0.
func Run[T any](p Parser[T], toks []token.Token) (T, error) {
	s := NewStream(toks)
	res, _, ok := p(s, 0)
	if s.err != nil {
		var zero T
		return zero, &Error{Err: s.err, Pos: s.far, Token: s.At(s.far)}
	}
	if !ok {
		var zero T
		return zero, &Error{Err: ErrNoMatch, Pos: s.far, Token: s.At(s.far)}
	}
	return res, nil
}
