package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// consumeParamList recognises an optional `| name [: Type], ... |` list
// starting at pos (shared by pass 3's class/struct header and pass 4's
// procedure/function header). Returns the parsed params, the index just
// past the closing `|`, and whether a param list was present at all.
func consumeParamList(buf Buffer, pos int) ([]ast.Param, int, bool, *zerr.Error) {
	if pos >= len(buf) || !buf[pos].IsToken() || buf[pos].Tok.Kind != token.KindBar {
		return nil, pos, false, nil
	}
	end := -1
	for j := pos + 1; j < len(buf); j++ {
		if buf[j].IsToken() && buf[j].Tok.Kind == token.KindBar {
			end = j
			break
		}
	}
	if end == -1 {
		sp := buf[pos].Span()
		return nil, 0, false, zerr.P006BadArgumentList(&sp)
	}
	var params []ast.Param
	start := pos + 1
	for start <= end {
		next := start
		for next < end && !(buf[next].IsToken() && buf[next].Tok.Kind == token.KindComma) {
			next++
		}
		if next > start {
			p, perr := parseParam(buf[start:next])
			if perr != nil {
				return nil, 0, false, perr
			}
			params = append(params, p)
		}
		start = next + 1
	}
	return params, end + 1, true, nil
}

func parseParam(items Buffer) (ast.Param, *zerr.Error) {
	if len(items) == 0 {
		return ast.Param{}, zerr.P004Malformed("parameter", nil)
	}
	if !items[0].IsToken() || items[0].Tok.Kind != token.KindIdent {
		sp := items[0].Span()
		return ast.Param{}, zerr.P004Malformed("parameter", &sp)
	}
	name := items[0].Tok.Value
	if len(items) == 1 {
		return ast.Param{Name: name}, nil
	}
	if !items[1].IsToken() || items[1].Tok.Value != ":" {
		sp := items[1].Span()
		return ast.Param{}, zerr.P004Malformed("parameter type annotation", &sp)
	}
	typeNode, err := parseSegment(items[2:])
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name, TypeAnnotation: typeNode}, nil
}
