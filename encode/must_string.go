package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/pbx/ir"
)

// MustString renders node without the marker line, panicking on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Header(false)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
