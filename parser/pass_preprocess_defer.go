package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passPreprocessDefer is pass 5 (spec.md §4.2): recognise `pre`/`defer`
// followed either by an already-folded block (pass 1 runs first) or a
// bare expression extending to the end of the statement. The bare-
// expression case recurses into the full pipeline on the remaining
// sub-buffer, the same way pass 1 recurses into a parenthesised
// sub-expression — a nested recursive parse is valid mid-pass because it
// starts its own fixed-point over an independent sub-buffer.
func passPreprocessDefer(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || (!it.Tok.IsKeyword(token.KwPre) && !it.Tok.IsKeyword(token.KwDefer)) {
			continue
		}
		isPre := it.Tok.IsKeyword(token.KwPre)
		start := i

		if i+1 >= len(buf) {
			sp := it.Tok.Span
			return nil, zerr.P004Malformed("pre/defer missing body", &sp)
		}

		var body ast.Node
		end := i + 1
		if b, ok := buf[i+1].Node.(*ast.Block); ok {
			body = b
		} else {
			rest, err := parseSegment(buf[i+1:])
			if err != nil {
				return nil, err
			}
			body = rest
			end = len(buf) - 1
		}

		sp := mergeSpans(buf[start], buf[end])
		var node ast.Node
		if isPre {
			node = &ast.Preprocess{Base: ast.Base{Span: sp}, Body: body}
		} else {
			node = &ast.Defer{Base: ast.Base{Span: sp}, Body: body}
		}
		var nb Buffer
		nb, i = buf.splice(start, end+1, nodeItem(node))
		buf = nb
	}
	return buf, nil
}
