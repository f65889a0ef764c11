package parser

import (
	"math/big"
	"strings"

	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/lexer"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passPrimary is pass 6 (spec.md §4.2): fold identifier/literal atoms,
// then greedily extend each atom into a chain of member accesses
// (`.`, `::`, `:.`) and parenthesised call argument lists. A `(` reaching
// this pass is always a call's argument list — pass 1 already folded
// every grouping paren and left call parens untouched specifically for
// this pass to consume.
func passPrimary(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		base, ok, err := atomize(buf[i])
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		buf[i] = base
		for {
			newItem, consumed, extended, err := tryExtendChain(buf, i)
			if err != nil {
				return nil, err
			}
			if !extended {
				break
			}
			var nb Buffer
			nb, i = buf.splice(i, i+1+consumed, newItem)
			buf = nb
		}
	}
	return buf, nil
}

// atomize converts an eligible base item (a literal/ident token, or an
// already-folded Node from an earlier pass) into the Item a chain can
// extend from.
func atomize(it Item) (Item, bool, *zerr.Error) {
	if !it.IsToken() {
		return it, true, nil
	}
	t := it.Tok
	sp := t.Span
	switch t.Kind {
	case token.KindIdent:
		return nodeItem(&ast.Ident{Base: ast.Base{Span: &sp}, Name: t.Value}), true, nil
	case token.KindNumber:
		lit, err := numberLiteral(*t)
		if err != nil {
			return Item{}, false, err
		}
		return nodeItem(&ast.Literal{Base: ast.Base{Span: &sp}, Value: lit}), true, nil
	case token.KindString:
		s := lexer.Unescape(t.Value)
		return nodeItem(&ast.Literal{Base: ast.Base{Span: &sp}, Value: value.Str{V: s}}), true, nil
	case token.KindMisc:
		return nodeItem(&ast.Literal{Base: ast.Base{Span: &sp}, Value: value.Bool{V: t.Value == "true"}}), true, nil
	default:
		return Item{}, false, nil
	}
}

// numberLiteral parses a number token's literal text into a default-width
// value: i32 for an integer literal that fits, f64 for any literal
// containing a decimal point. Width can subsequently be narrowed/widened
// by an explicit `::` typecast (spec.md §4.6) — the lexer/parser layer
// makes no attempt to infer a tighter width from context.
func numberLiteral(t token.Token) (value.Value, *zerr.Error) {
	if strings.Contains(t.Value, ".") {
		f, ok := new(big.Float).SetString(t.Value)
		if !ok {
			sp := t.Span
			return nil, zerr.P004Malformed("number literal", &sp)
		}
		out, _ := f.Float64()
		return value.Float{Width: value.F64, V: out}, nil
	}
	n, ok := new(big.Int).SetString(t.Value, 10)
	if !ok {
		sp := t.Span
		return nil, zerr.P004Malformed("number literal", &sp)
	}
	if value.InRange(value.I32, n) {
		return value.NewInt(value.I32, n), nil
	}
	return value.NewInt(value.IBig, n), nil
}

// tryExtendChain looks one step past buf[pos] for a member-access or
// call-argument-list continuation of the chain rooted there.
func tryExtendChain(buf Buffer, pos int) (Item, int, bool, *zerr.Error) {
	if pos+1 >= len(buf) || !buf[pos+1].IsToken() {
		return Item{}, 0, false, nil
	}
	next := buf[pos+1].Tok

	if next.Kind == token.KindAccessOp {
		if pos+2 >= len(buf) || !buf[pos+2].IsToken() || buf[pos+2].Tok.Kind != token.KindIdent {
			sp := next.Span
			return Item{}, 0, false, zerr.P004Malformed("member access", &sp)
		}
		name := buf[pos+2].Tok.Value
		sp := mergeSpans(buf[pos], buf[pos+2])
		member := &ast.Member{
			Base: ast.Base{Span: sp}, Parent: buf[pos].Node, Name: name, Access: accessKindFor(next.Value),
		}
		return nodeItem(member), 2, true, nil
	}

	if next.Kind == token.KindOpenParen {
		closeIdx, err := matchBracket(buf, pos+1, token.KindOpenParen, token.KindCloseParen)
		if err != nil {
			return Item{}, 0, false, err
		}
		argItems := buf[pos+2 : closeIdx]
		args, aerr := splitArgs(argItems)
		if aerr != nil {
			return Item{}, 0, false, aerr
		}
		sp := mergeSpans(buf[pos], buf[closeIdx])
		call := &ast.Call{Base: ast.Base{Span: sp}, Callee: buf[pos].Node, Args: args}
		return nodeItem(call), closeIdx - pos, true, nil
	}

	return Item{}, 0, false, nil
}

func accessKindFor(op string) ast.AccessKind {
	switch op {
	case "::":
		return ast.AccessNamespace
	case ":.":
		return ast.AccessMethod
	default:
		return ast.AccessField
	}
}

// splitArgs splits a call's argument-list items on top-level commas
// (respecting nested, still-unfolded bracket depth) and parses each
// comma-separated group as its own sub-expression.
func splitArgs(items Buffer) ([]ast.Node, *zerr.Error) {
	if len(items) == 0 {
		return nil, nil
	}
	var args []ast.Node
	depth := 0
	start := 0
	flush := func(end int) *zerr.Error {
		if end <= start {
			sp := items[start].Span()
			return zerr.P006BadArgumentList(&sp)
		}
		node, err := parseSegment(items[start:end])
		if err != nil {
			return err
		}
		args = append(args, node)
		return nil
	}
	for j := 0; j < len(items); j++ {
		if items[j].IsToken() {
			switch items[j].Tok.Kind {
			case token.KindOpenParen, token.KindOpenCurly:
				depth++
			case token.KindCloseParen, token.KindCloseCurly:
				depth--
			case token.KindComma:
				if depth == 0 {
					if err := flush(j); err != nil {
						return nil, err
					}
					start = j + 1
				}
			}
		}
	}
	if err := flush(len(items)); err != nil {
		return nil, err
	}
	return args, nil
}
