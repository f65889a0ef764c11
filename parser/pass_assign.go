package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passAssign is pass 10 (spec.md §4.2): fold `var = expr` into Set, and
// `var ⊕= expr` into Set whose value is `var ⊕ expr` (token.AssignOperators
// names the embedded base operator).
func passAssign(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || it.Tok.Kind != token.KindAssignOp {
			continue
		}
		opText := it.Tok.Value
		if i == 0 {
			sp := it.Tok.Span
			return nil, zerr.P004Malformed("assignment missing target", &sp)
		}
		target, ok := buf[i-1].Node.(*ast.Ident)
		if !ok {
			sp := buf[i-1].Span()
			return nil, zerr.P005BadOperatorPosition(&sp)
		}
		if i+1 >= len(buf) {
			sp := it.Tok.Span
			return nil, zerr.P004Malformed("assignment missing value", &sp)
		}
		rhs, err := parseSegment(buf[i+1:])
		if err != nil {
			return nil, err
		}

		value := rhs
		if base, ok := token.AssignOperators[opText]; ok {
			value = &ast.BinaryOpr{
				Base: ast.Base{Span: mergeSpans(buf[i-1], buf[len(buf)-1])}, Operator: base, Left: target, Right: rhs,
			}
		}

		sp := mergeSpans(buf[i-1], buf[len(buf)-1])
		set := &ast.Set{Base: ast.Base{Span: sp}, Target: target, Value: value}
		var nb Buffer
		nb, i = buf.splice(i-1, len(buf), nodeItem(set))
		buf = nb
	}
	return buf, nil
}
