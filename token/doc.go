// Package token splits project.pbxproj text into tokens.
//
// Comments and whitespace are discarded. What remains is a flat sequence
// of [Token] values tagged either [Reserved] (one of `{ } ( ) , ; =`) or
// [String] (a bareword, or the contents of a double-quoted literal with its
// escape sequences decoded by [Unquote]; [Quote] is the inverse).
//
// # Usage
//
//	toks, err := token.Tokenize(data)
//	if err != nil {
//	    var lexErr *token.LexError
//	    if errors.As(err, &lexErr) {
//	        fmt.Println(lexErr.Char, lexErr.Pos.String())
//	    }
//	}
//
// # Related Packages
//
//   - github.com/signadot/pbx/comb - combinators consuming tokens
//   - github.com/signadot/pbx/parse - the project.pbxproj grammar
package token
