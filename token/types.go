package token

import "fmt"

type Tag int

const (
	Reserved Tag = iota
	String
)

func (t Tag) String() string {
	switch t {
	case Reserved:
		return "RESERVED"
	case String:
		return "STRING"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

type Token struct {
	Text string
	Tag  Tag
	// Quoted reports whether a String token came from a double-quoted literal.
	Quoted bool
	Pos    *Pos
}

func (t Token) String() string {
	if t.Quoted {
		return Quote(t.Text)
	}
	return t.Text
}

// Is reports whether t is the reserved token text.
func (t Token) Is(text string) bool {
	return t.Tag == Reserved && t.Text == text
}

func isReserved(c byte) bool {
	switch c {
	case '{', '}', '(', ')', ',', ';', '=':
		return true
	}
	return false
}

func isWordChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '.', '<', '>', '/', '_':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
