package parse

import (
	"errors"

	"github.com/signadot/pbx/comb"
	"github.com/signadot/pbx/debug"
	"github.com/signadot/pbx/ir"
	"github.com/signadot/pbx/token"
)

// Parse parses a complete project.pbxproj document.  On failure no partial
// tree is returned; the error is a *token.LexError or a *Error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(po)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	if debug.Lex() {
		debug.Logf("tokenized %d bytes into %d tokens\n", len(d), len(toks))
	}
	doc, val := grammar(po.maxDepth)
	p := doc
	if po.anyValue {
		p = comb.Phrase(val)
	}
	node, err := comb.Run(p, toks)
	if err != nil {
		return nil, convertErr(err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s with %d keys\n", node.Type, node.Len())
	}
	return node, nil
}

func convertErr(err error) error {
	var ce *comb.Error
	if !errors.As(err, &ce) {
		return err
	}
	res := &Error{Err: ErrParse, Token: ce.Token}
	if errors.Is(ce.Err, comb.ErrTooDeep) {
		res.Err = ErrTooDeep
	}
	return res
}

func grammar(maxDepth int) (document, value comb.Parser[*ir.Node]) {
	value = comb.Lazy(func() comb.Parser[*ir.Node] {
		str := comb.Map(comb.AnyString(), ir.FromString)
		return comb.Alternate(str, dict(value, maxDepth), list(value, maxDepth))
	})
	document = comb.Phrase(dict(value, maxDepth))
	return document, value
}

func appendKeyVals(a, b []ir.KeyVal) []ir.KeyVal { return append(a, b...) }
func appendNodes(a, b []*ir.Node) []*ir.Node     { return append(a, b...) }

func dict(value comb.Parser[*ir.Node], maxDepth int) comb.Parser[*ir.Node] {
	key := comb.Left(comb.AnyString(), comb.Reserved("="))
	pair := comb.Map(comb.Concat(key, value), func(p comb.Pair[string, *ir.Node]) []ir.KeyVal {
		return []ir.KeyVal{{Key: p.Left, Val: p.Right}}
	})
	semi := comb.Map(comb.Reserved(";"), func(string) func(a, b []ir.KeyVal) []ir.KeyVal {
		return appendKeyVals
	})
	body := comb.Left(comb.Repeat(pair, semi), comb.Optional(comb.Reserved(";")))

	empty := comb.Map(comb.Concat(comb.Reserved("{"), comb.Reserved("}")),
		func(comb.Pair[string, string]) *ir.Node { return ir.NewObject() })
	full := comb.Map(comb.Right(comb.Reserved("{"), comb.Left(body, comb.Reserved("}"))), ir.FromKeyVals)
	return comb.Limit(comb.Alternate(empty, full), maxDepth)
}

func list(value comb.Parser[*ir.Node], maxDepth int) comb.Parser[*ir.Node] {
	item := comb.Map(value, func(v *ir.Node) []*ir.Node { return []*ir.Node{v} })
	comma := comb.Map(comb.Reserved(","), func(string) func(a, b []*ir.Node) []*ir.Node {
		return appendNodes
	})
	body := comb.Left(comb.Repeat(item, comma), comb.Optional(comb.Reserved(",")))

	empty := comb.Map(comb.Concat(comb.Reserved("("), comb.Reserved(")")),
		func(comb.Pair[string, string]) *ir.Node { return ir.FromSlice(nil) })
	full := comb.Map(comb.Right(comb.Reserved("("), comb.Left(body, comb.Reserved(")"))), ir.FromSlice)
	return comb.Limit(comb.Alternate(empty, full), maxDepth)
}
