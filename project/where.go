package project

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

func (d *Document) whereOpts() []expr.Option {
	return []expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.Function("referrers", func(params ...any) (any, error) {
			g, _ := params[0].(string)
			return len(d.Referrers(g)), nil
		},
			new(func(string) int)),
		expr.Function("exists", func(params ...any) (any, error) {
			g, _ := params[0].(string)
			return d.Has(g), nil
		},
			new(func(string) bool)),
	}
}

// Where returns the objects for which the boolean expression src holds, in
// table order.  The expression sees the object's fields as variables, with
// lists as arrays and dictionaries as maps, and its GUID as guid.  The
// functions referrers(guid) and exists(guid) query the document.
//
//	isa == "PBXFileReference" && referrers(guid) == 0
func (d *Document) Where(src string) ([]Object, error) {
	prg, err := expr.Compile(src, d.whereOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	var res []Object
	for _, o := range d.All() {
		ok, err := d.match(prg, o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.GUID(), err)
		}
		if ok {
			res = append(res, o)
		}
	}
	return res, nil
}

func (d *Document) match(prg *vm.Program, o Object) (bool, error) {
	env, _ := o.Node().ToAny().(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	env["guid"] = o.GUID()
	v, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}
