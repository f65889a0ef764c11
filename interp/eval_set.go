package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalSet evaluates the RHS and overwrites the bound entry in the
// nearest frame that contains the target name (spec.md §4.5 "Set"); the
// type checker has already ruled out an undeclared or const target by
// the time the interpreter runs.
func (ip *Interp) evalSet(n *ast.Set) (value.Value, *zerr.Error) {
	ident, ok := n.Target.(*ast.Ident)
	if !ok {
		return nil, zerr.I001("set", []string{"non-ident target"})
	}
	v, err := ip.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	if !ip.Tab.Set(ident.Name, v) {
		return nil, zerr.I001("set", []string{ident.Name})
	}
	return v, nil
}
