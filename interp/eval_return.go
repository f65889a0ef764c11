package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalReturn evaluates the payload (Unit for a bare `ret`) and wraps it
// to signal early exit out of the enclosing block chain (spec.md §4.5
// "Return").
func (ip *Interp) evalReturn(n *ast.Return) (value.Value, *zerr.Error) {
	if n.Value == nil {
		return value.Return{V: value.Unit{}}, nil
	}
	v, err := ip.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	return value.Return{V: v}, nil
}
