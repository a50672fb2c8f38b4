package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Unquote decodes the escape sequences of the text between the quotes of
// a literal.  `\Uxxxx` is a UTF-16 code unit in hex.  An unknown escape
// keeps its backslash.
func Unquote(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	buf := &strings.Builder{}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 == len(raw) {
			buf.WriteByte(c)
			continue
		}
		i++
		switch e := raw[i]; e {
		case 'n':
			buf.WriteByte('\n')
		case 't':
			buf.WriteByte('\t')
		case 'r':
			buf.WriteByte('\r')
		case '"', '\\', '\'':
			buf.WriteByte(e)
		case 'U':
			if i+5 <= len(raw) {
				if v, err := strconv.ParseUint(raw[i+1:i+5], 16, 16); err == nil {
					buf.WriteRune(rune(v))
					i += 4
					continue
				}
			}
			buf.WriteString(`\U`)
		default:
			buf.WriteByte('\\')
			buf.WriteByte(e)
		}
	}
	return buf.String()
}

// Quote returns s as a double-quoted literal which Unquote maps back to s.
func Quote(s string) string {
	buf := &strings.Builder{}
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(buf, `\U%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
