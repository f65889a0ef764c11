package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passReturn is pass 8 (spec.md §4.2): `ret expr?` → Return. A bare `ret`
// at the end of a statement has no payload; otherwise the remainder of
// the segment is recursively parsed as the return value, the same way
// pass 5 handles a bare-expression `pre`/`defer` body.
func passReturn(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || !it.Tok.IsKeyword(token.KwRet) {
			continue
		}
		start := i
		var value ast.Node
		end := i
		if i+1 < len(buf) {
			rest, err := parseSegment(buf[i+1:])
			if err != nil {
				return nil, err
			}
			value = rest
			end = len(buf) - 1
		}
		sp := mergeSpans(buf[start], buf[end])
		ret := &ast.Return{Base: ast.Base{Span: sp}, Value: value}
		var nb Buffer
		nb, i = buf.splice(start, end+1, nodeItem(ret))
		buf = nb
	}
	return buf, nil
}
