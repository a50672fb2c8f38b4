package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/pbx/token"
)

var (
	ErrParse   = errors.New("parse error")
	ErrTooDeep = fmt.Errorf("%w: document nested too deeply", ErrParse)
)

type Error struct {
	Err error
	// Token is where parsing could not continue, nil at end of input.
	Token *token.Token
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%s: unexpected end of input", e.Err)
	}
	return fmt.Sprintf("%s: unexpected %s at %s", e.Err, e.Token.String(), e.Token.Pos.String())
}
