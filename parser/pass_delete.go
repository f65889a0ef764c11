package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passDelete is pass 7 (spec.md §4.2): `del a, b, c` → Delete. By this
// point every name has already been folded into an *ast.Ident by pass 6,
// so this pass just collects the comma-separated idents following `del`.
func passDelete(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || !it.Tok.IsKeyword(token.KwDel) {
			continue
		}
		start := i
		pos := i + 1
		var names []string
		for {
			ident, ok := buf[pos].Node.(*ast.Ident)
			if !ok {
				sp := buf[pos].Span()
				return nil, zerr.P004Malformed("del target", &sp)
			}
			names = append(names, ident.Name)
			pos++
			if pos < len(buf) && buf[pos].IsToken() && buf[pos].Tok.Kind == token.KindComma {
				pos++
				continue
			}
			break
		}
		sp := mergeSpans(buf[start], buf[pos-1])
		del := &ast.Delete{Base: ast.Base{Span: sp}, Names: names}
		var nb Buffer
		nb, i = buf.splice(start, pos, nodeItem(del))
		buf = nb
	}
	return buf, nil
}
