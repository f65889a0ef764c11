package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalProcedure returns a value.Proc carrying the captured body, the
// parameter names, and the is-fn flag (spec.md §4.5 "Procedure"); the
// body is not executed until the Proc is called.
func (ip *Interp) evalProcedure(n *ast.Procedure) (value.Value, *zerr.Error) {
	names := make([]string, len(n.Params))
	for i, p := range n.Params {
		names[i] = p.Name
	}
	return value.Proc{Params: names, IsFn: n.IsFn, Body: n.Body}, nil
}
