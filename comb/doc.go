// Package comb is a small generic parser combinator library over token
// streams.
//
// A [Parser] is a function from a stream position to a result and a new
// position.  Parsers never mutate the token sequence; the only state they
// share through a [Stream] is diagnostic: the furthest position at which a
// primitive failed, and the current nesting depth when [Limit] is used.
//
// # Usage
//
//	var value comb.Parser[*ir.Node]
//	list := comb.Right(comb.Reserved("("),
//	    comb.Left(comb.Repeat(item, comma), comb.Reserved(")")))
//	value = comb.Alternate(str, list)
//	res, err := comb.Run(comb.Phrase(value), toks)
//
// # Related Packages
//
//   - github.com/signadot/pbx/token - the tokens parsers consume
//   - github.com/signadot/pbx/parse - the project.pbxproj grammar
package comb
