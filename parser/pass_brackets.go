package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passBrackets is pass 1 (spec.md §4.2): find matching `(`/`)` and
// `{`/`}` pairs and recursively parse their contents, replacing the whole
// range with one item. An opening `(` immediately following a
// value-ending item is left untouched — that shape is a call's argument
// list, folded later by pass 6 (parenthesised call) rather than here.
func passBrackets(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() {
			continue
		}
		switch it.Tok.Kind {
		case token.KindOpenParen:
			if i > 0 && isValueEnding(buf[i-1]) {
				j, err := matchBracket(buf, i, token.KindOpenParen, token.KindCloseParen)
				if err != nil {
					return nil, err
				}
				i = j
				continue // call argument list; pass 6's job
			}
			j, err := matchBracket(buf, i, token.KindOpenParen, token.KindCloseParen)
			if err != nil {
				return nil, err
			}
			inner := innerTokens(buf[i+1 : j])
			node, perr := parseSegment(itemsFromTokens(inner))
			if perr != nil {
				return nil, perr
			}
			if node == nil {
				sp := mergeSpans(buf[i], buf[j])
				node = &ast.Literal{Base: ast.Base{Span: sp}, Value: value.Unit{}}
			}
			var replaced Buffer
			replaced, i = buf.splice(i, j+1, nodeItem(node))
			buf = replaced
		case token.KindOpenCurly:
			j, err := matchBracket(buf, i, token.KindOpenCurly, token.KindCloseCurly)
			if err != nil {
				return nil, err
			}
			inner := innerTokens(buf[i+1 : j])
			stmts, perr := parseStatements(inner)
			if perr != nil {
				return nil, perr
			}
			sp := mergeSpans(buf[i], buf[j])
			block := &ast.Block{Base: ast.Base{Span: sp}, Statements: stmts}
			var replaced Buffer
			replaced, i = buf.splice(i, j+1, nodeItem(block))
			buf = replaced
		case token.KindCloseParen, token.KindCloseCurly:
			sp := it.Tok.Span
			return nil, zerr.P001Unmatched(it.Tok.Value, &sp)
		}
	}
	return buf, nil
}

// matchBracket finds the index of the item closing the bracket opened at
// buf[open], accounting for nesting of the same bracket family.
func matchBracket(buf Buffer, open int, openKind, closeKind token.Kind) (int, *zerr.Error) {
	depth := 0
	for i := open; i < len(buf); i++ {
		if !buf[i].IsToken() {
			continue
		}
		switch buf[i].Tok.Kind {
		case openKind:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	sp := buf[open].Span()
	return 0, zerr.P001Unmatched(buf[open].Tok.Value, &sp)
}

// innerTokens extracts the raw tokens of a bracket-interior sub-buffer.
// Items already folded (e.g. nested brackets resolved by an inner
// recursive call) never occur here since passBrackets processes from the
// outermost call inward, but defensively skipping non-tokens keeps this
// total rather than panicking.
func innerTokens(buf Buffer) []token.Token {
	out := make([]token.Token, 0, len(buf))
	for _, it := range buf {
		if it.IsToken() {
			out = append(out, *it.Tok)
		}
	}
	return out
}

func isValueEnding(it Item) bool {
	if !it.IsToken() {
		return true
	}
	switch it.Tok.Kind {
	case token.KindIdent, token.KindNumber, token.KindString, token.KindMisc,
		token.KindCloseParen, token.KindCloseCurly:
		return true
	default:
		return false
	}
}
