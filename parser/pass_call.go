package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passCall is pass 13, the last pass (spec.md §4.2): any two adjacent
// already-folded values with nothing between them are an unparenthesised
// call, the first being the callee and everything from the second to the
// end of the segment its comma-separated argument list (reusing splitArgs
// from pass 6, which every parenthesised call argument list already goes
// through).
func passCall(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf)-1; i++ {
		if buf[i].IsToken() || buf[i+1].IsToken() {
			continue
		}
		callee := buf[i].Node
		args, err := splitArgs(buf[i+1:])
		if err != nil {
			return nil, err
		}
		sp := mergeSpans(buf[i], buf[len(buf)-1])
		call := &ast.Call{Base: ast.Base{Span: sp}, Callee: callee, Args: args}
		var nb Buffer
		nb, i = buf.splice(i, len(buf), nodeItem(call))
		buf = nb
	}
	return buf, nil
}
