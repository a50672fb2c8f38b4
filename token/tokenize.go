package token

import "bytes"

// Tokenize splits d into tokens, discarding comments and whitespace.
//
// At each offset the rules are tried in order: line comment, block comment,
// whitespace, reserved character, bareword, quoted string.  An offset at
// which no rule applies produces a *LexError.
func Tokenize(d []byte) ([]Token, error) {
	pd := NewPosDoc(d)
	res := make([]Token, 0, len(d)/8)
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch {
		case c == '/' && i+1 < n && d[i+1] == '/':
			j := bytes.IndexAny(d[i:], "\r\n")
			if j == -1 {
				i = n
				continue
			}
			i += j
		case c == '/' && i+1 < n && d[i+1] == '*':
			j := bytes.Index(d[i+2:], []byte("*/"))
			if j == -1 {
				return nil, newLexError(ErrUnterminated, pd, i)
			}
			i += j + 4
		case isSpace(c):
			i++
		case isReserved(c):
			res = append(res, Token{Text: string(c), Tag: Reserved, Pos: pd.Pos(i)})
			i++
		case isWordChar(c):
			j := i + 1
			for j < n && isWordChar(d[j]) {
				j++
			}
			res = append(res, Token{Text: string(d[i:j]), Tag: String, Pos: pd.Pos(i)})
			i = j
		case c == '"':
			j, err := quotedEnd(d, i)
			if err != nil {
				return nil, newLexError(err, pd, i)
			}
			res = append(res, Token{Text: Unquote(string(d[i+1 : j])), Tag: String, Quoted: true, Pos: pd.Pos(i)})
			i = j + 1
		default:
			return nil, newLexError(ErrIllegalChar, pd, i)
		}
	}
	return res, nil
}

// quotedEnd returns the offset of the closing quote of the literal
// starting at d[i].  Escapes are skipped here and decoded by Unquote; a raw line
// break inside the literal terminates it unsuccessfully.
func quotedEnd(d []byte, i int) (int, error) {
	n := len(d)
	for j := i + 1; j < n; j++ {
		switch d[j] {
		case '"':
			return j, nil
		case '\\':
			if j+1 >= n || d[j+1] == '\n' || d[j+1] == '\r' {
				return 0, ErrUnterminated
			}
			j++
		case '\n', '\r':
			return 0, ErrUnterminated
		}
	}
	return 0, ErrUnterminated
}
