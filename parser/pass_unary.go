package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passUnary is pass 12 (spec.md §4.2): fold `!operand` into UnaryOpr. "+"/"-"
// used as a prefix sign are already folded by pass 11 (see pass_binary.go);
// this pass only ever sees the unambiguous KindUnaryOp token ("!"), but is
// kept as its own pass since that is the shape spec.md names, and because a
// future unary operator that isn't also a binary symbol belongs here rather
// than in pass 11's sign-disambiguation logic.
func passUnary(buf Buffer) (Buffer, *zerr.Error) {
	for {
		idx := -1
		for i := len(buf) - 1; i >= 0; i-- {
			it := buf[i]
			if it.IsToken() && it.Tok.Kind == token.KindUnaryOp && i+1 < len(buf) && !buf[i+1].IsToken() {
				idx = i
				break
			}
		}
		if idx == -1 {
			break
		}
		operand := buf[idx+1].Node
		sp := mergeSpans(buf[idx], buf[idx+1])
		node := &ast.UnaryOpr{Base: ast.Base{Span: sp}, Operator: buf[idx].Tok.Value, Operand: operand}
		var nb Buffer
		nb, _ = buf.splice(idx, idx+2, nodeItem(node))
		buf = nb
	}
	for _, it := range buf {
		if it.IsToken() && it.Tok.Kind == token.KindUnaryOp {
			sp := it.Span()
			return nil, zerr.P005BadOperatorPosition(&sp)
		}
	}
	return buf, nil
}
