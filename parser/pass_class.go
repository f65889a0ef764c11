package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passClass is pass 3 (spec.md §4.2): recognise `class`/`struct` with an
// optional `| args |` parameter list and a mandatory `{ body }`. Whether a
// struct may declare `_new`, or a class may combine an argument list with
// one, is a type-check structural rule (T018/T019, spec.md §4.4) — this
// pass only captures the shape.
func passClass(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || (!it.Tok.IsKeyword(token.KwClass) && !it.Tok.IsKeyword(token.KwStruct)) {
			continue
		}
		isStruct := it.Tok.IsKeyword(token.KwStruct)
		start := i
		pos := i + 1

		var name string
		if pos < len(buf) && buf[pos].IsToken() && buf[pos].Tok.Kind == token.KindIdent {
			name = buf[pos].Tok.Value
			pos++
		}

		params, next, _, err := consumeParamList(buf, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		if pos >= len(buf) {
			sp := buf[start].Span()
			return nil, zerr.P004Malformed("class/struct missing body", &sp)
		}
		body, ok := buf[pos].Node.(*ast.Block)
		if !ok {
			sp := buf[pos].Span()
			return nil, zerr.P004Malformed("class/struct missing body", &sp)
		}

		sp := mergeSpans(buf[start], buf[pos])
		classNode := &ast.Class{
			Base: ast.Base{Span: sp}, Name: name, IsStruct: isStruct, Params: params, Body: body,
		}
		var nb Buffer
		nb, i = buf.splice(start, pos+1, nodeItem(classNode))
		buf = nb
	}
	return buf, nil
}
