// Package parse parses project.pbxproj text into IR.
//
// The grammar is:
//
//	Value    := String | Dict | List
//	Dict     := '{' '}' | '{' (String '=' Value)+(';') [';'] '}'
//	List     := '(' ')' | '(' Value+(',') [','] ')'
//	Document := Dict, consuming all input
//
// A key repeated within one Dict keeps its last value.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if errors.Is(err, parse.ErrParse) {
//	    // syntax error, see *parse.Error
//	}
//
// # Related Packages
//
//   - github.com/signadot/pbx/token - tokenizer
//   - github.com/signadot/pbx/comb - combinators the grammar is built from
//   - github.com/signadot/pbx/ir - the resulting tree
package parse
