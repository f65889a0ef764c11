package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalIf evaluates conditions in order; for the first whose condition is
// absent (a trailing else) or true, interprets that branch's block and
// returns its value; if none matches, returns Unit (spec.md §4.5 "If").
func (ip *Interp) evalIf(n *ast.If) (value.Value, *zerr.Error) {
	for _, br := range n.Branches {
		if br.Cond != nil {
			cv, err := ip.Eval(br.Cond)
			if err != nil {
				return nil, err
			}
			b, ok := cv.(value.Bool)
			if !ok || !b.V {
				continue
			}
		}
		return ip.evalBlock(br.Body)
	}
	return value.Unit{}, nil
}
