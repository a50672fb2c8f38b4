package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/pbx/encode"
	"github.com/signadot/pbx/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments as pbxproj text.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf, encode.Header(false)); err != nil {
			args[i] = fmt.Sprintf("[raw *ir.Node] %v", x.ToAny())
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
