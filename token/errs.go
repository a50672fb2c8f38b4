package token

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	ErrIllegalChar  = errors.New("illegal character")
	ErrUnterminated = errors.New("unterminated")
)

// contextWidth is the number of bytes shown on each side of a lexing failure.
const contextWidth = 10

type LexError struct {
	Err     error
	Char    rune
	Context string
	Pos     Pos
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	line, col := e.Pos.LineCol()
	return fmt.Sprintf("%s %s at line %d col %d near %s",
		e.Err.Error(), strconv.QuoteRune(e.Char), line+1, col+1, strconv.Quote(e.Context))
}

func newLexError(err error, d *PosDoc, off int) *LexError {
	var c rune
	if off < len(d.d) {
		c, _ = utf8.DecodeRune(d.d[off:])
	}
	return &LexError{
		Err:     err,
		Char:    c,
		Context: d.Context(off, contextWidth),
		Pos:     *d.Pos(off),
	}
}
