package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passProcedure is pass 4 (spec.md §4.2): recognise `proc`/`fn`, an
// optional `| args |` parameter list, an optional `: return-type`
// annotation, and a mandatory body block.
func passProcedure(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || (!it.Tok.IsKeyword(token.KwProc) && !it.Tok.IsKeyword(token.KwFn)) {
			continue
		}
		isFn := it.Tok.IsKeyword(token.KwFn)
		start := i
		pos := i + 1

		params, next, _, err := consumeParamList(buf, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		var returnType ast.Node
		if pos < len(buf) && buf[pos].IsToken() && buf[pos].Tok.Value == ":" {
			typeEnd := pos + 1
			for typeEnd < len(buf) {
				if _, ok := buf[typeEnd].Node.(*ast.Block); ok {
					break
				}
				typeEnd++
			}
			if typeEnd == pos+1 {
				sp := buf[pos].Span()
				return nil, zerr.P004Malformed("procedure return type", &sp)
			}
			rt, rerr := parseSegment(buf[pos+1 : typeEnd])
			if rerr != nil {
				return nil, rerr
			}
			returnType = rt
			pos = typeEnd
		}

		if pos >= len(buf) {
			sp := buf[start].Span()
			return nil, zerr.P004Malformed("procedure missing body", &sp)
		}
		body, ok := buf[pos].Node.(*ast.Block)
		if !ok {
			sp := buf[pos].Span()
			return nil, zerr.P004Malformed("procedure missing body", &sp)
		}

		sp := mergeSpans(buf[start], buf[pos])
		proc := &ast.Procedure{
			Base: ast.Base{Span: sp}, IsFn: isFn, Params: params, ReturnType: returnType, Body: body,
		}
		var nb Buffer
		nb, i = buf.splice(start, pos+1, nodeItem(proc))
		buf = nb
	}
	return buf, nil
}
