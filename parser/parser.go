package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// ParseProgram splits toks into top-level statements and parses each one,
// returning the program as an ordered list of AST nodes — the same shape
// a Block's body takes, since a program is parsed exactly like a block's
// contents (spec.md §4.2).
func ParseProgram(toks []token.Token) ([]ast.Node, *zerr.Error) {
	return parseStatements(toks)
}

// parseStatements segments toks into statements at top-level stmt-end
// tokens (bracket-depth zero — a newline or `;` inside an unfolded
// `(...)`/`{...}` does not yet terminate a statement) and parses each
// segment through the full thirteen-pass pipeline.
func parseStatements(toks []token.Token) ([]ast.Node, *zerr.Error) {
	segments, err := splitStatements(toks)
	if err != nil {
		return nil, err
	}
	var out []ast.Node
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		node, err := parseSegment(itemsFromTokens(seg))
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
	}
	return out, nil
}

func splitStatements(toks []token.Token) ([][]token.Token, *zerr.Error) {
	var segments [][]token.Token
	var cur []token.Token
	depth := 0
	for _, t := range toks {
		switch t.Kind {
		case token.KindOpenParen, token.KindOpenCurly:
			depth++
		case token.KindCloseParen, token.KindCloseCurly:
			depth--
			if depth < 0 {
				sp := t.Span
				return nil, zerr.P001Unmatched(t.Value, &sp)
			}
		}
		if t.Kind == token.KindStmtEnd && depth == 0 {
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if depth != 0 {
		return nil, zerr.P001Unmatched("(", nil)
	}
	if len(cur) > 0 {
		segments = append(segments, cur)
	}
	return segments, nil
}

// parseSegment runs the fixed thirteen-pass sequence over one statement's
// item buffer and returns the single AST node that should remain.
func parseSegment(buf Buffer) (ast.Node, *zerr.Error) {
	buf, comments := extractComments(buf)
	if len(buf) == 0 {
		if len(comments) > 0 {
			return comments[0], nil
		}
		return nil, nil
	}

	passes := []func(Buffer) (Buffer, *zerr.Error){
		passBrackets,
		passIfElse,
		passClass,
		passProcedure,
		passPreprocessDefer,
		passPrimary,
		passDelete,
		passReturn,
		passDeclare,
		passAssign,
		passBinary,
		passUnary,
		passCall,
	}
	var err *zerr.Error
	for _, pass := range passes {
		buf, err = pass(buf)
		if err != nil {
			return nil, err
		}
	}

	switch len(buf) {
	case 0:
		return nil, nil
	case 1:
		if buf[0].IsToken() {
			sp := buf[0].Span()
			return nil, zerr.P003StrayToken(buf[0].Tok.Value, &sp)
		}
		return buf[0].Node, nil
	default:
		sp := buf[1].Span()
		return nil, zerr.P002Dangling(&sp)
	}
}

// extractComments pulls every KindCommentOpen token out of buf entirely
// (rather than leaving it in place as a folded node) and returns the
// comment-free buffer alongside the extracted ast.Comments, so a trailing
// or leading comment never sits in the buffer as a spurious second item
// for the later passes (in particular passCall's adjacent-folded-values
// rule, which would otherwise misread a `<expr> <comment>` buffer as an
// implicit call of the expression) or for parseSegment's own final length
// check. A segment that is nothing but comment(s) still needs to produce
// a node (so a comment-only statement still yields something to walk as
// the no-op spec.md §4.4 describes), so the first one is returned by the
// caller when buf ends up empty; comments never combine with anything
// else so there is no dedicated numbered pass for them.
func extractComments(buf Buffer) (Buffer, []*ast.Comment) {
	out := make(Buffer, 0, len(buf))
	var comments []*ast.Comment
	for _, it := range buf {
		if it.IsToken() && it.Tok.Kind == token.KindCommentOpen {
			sp := it.Tok.Span
			comments = append(comments, &ast.Comment{Base: ast.Base{Span: &sp}, Text: it.Tok.Value})
			continue
		}
		out = append(out, it)
	}
	return out, comments
}
