package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalDeclare evaluates the RHS, binds it in the current frame, and
// yields the value (spec.md §4.5 "Declare").
func (ip *Interp) evalDeclare(n *ast.Declare) (value.Value, *zerr.Error) {
	v, err := ip.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	ip.Tab.Declare(n.Name, v, n.HasFlag(token.FlagConst))
	return v, nil
}
