package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalBlock pushes a frame, interprets statements in order, stopping (and
// propagating) as soon as one produces a value.Return, then runs the
// frame's deferred expressions in LIFO order — discarding their values —
// before popping (spec.md §4.5 "Block"). Unwrapping a propagated Return
// at a function boundary is the caller's job (package interp's `invoke`),
// since a Return inside a nested, non-function block must keep
// propagating rather than unwrap early.
func (ip *Interp) evalBlock(n *ast.Block) (value.Value, *zerr.Error) {
	ip.Tab.Push(symtable.Normal)
	var result value.Value = value.Unit{}
	for _, stmt := range n.Statements {
		v, err := ip.Eval(stmt)
		if err != nil {
			ip.runDefers()
			ip.Tab.Pop()
			return nil, err
		}
		result = v
		if _, ok := v.(value.Return); ok {
			break
		}
	}
	if err := ip.runDefers(); err != nil {
		ip.Tab.Pop()
		return nil, err
	}
	ip.Tab.Pop()
	return result, nil
}

// runDefers executes the innermost frame's deferred expressions in LIFO
// order, discarding their values (spec.md §4.5 "Block").
func (ip *Interp) runDefers() *zerr.Error {
	frame := ip.Tab.Innermost()
	for _, d := range symtable.ReverseDefers(frame.Defers) {
		if _, err := ip.Eval(d); err != nil {
			return err
		}
	}
	return nil
}
