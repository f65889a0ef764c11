package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passBinary is pass 11 (spec.md §4.2): repeatedly fold the highest-
// precedence binary operator sitting between two already-folded values,
// left-to-right on ties, until none remain. A "+" or "-" token with no
// value to its left is a prefix use rather than a binary one (lexer_symbol.go
// classifies both the same way); this pass reclassifies and folds those in
// the same loop, since leaving them for pass 12 alone would starve later
// binary folds of an operand (e.g. `3 + -4` never gets its "+" folded if
// unary resolution runs as a separate, later pass over a static buffer).
func passBinary(buf Buffer) (Buffer, *zerr.Error) {
	for {
		if idx, ok := bestBinaryCandidate(buf); ok {
			left, right := buf[idx-1].Node, buf[idx+1].Node
			sp := mergeSpans(buf[idx-1], buf[idx+1])
			node := &ast.BinaryOpr{Base: ast.Base{Span: sp}, Operator: buf[idx].Tok.Value, Left: left, Right: right}
			var nb Buffer
			nb, _ = buf.splice(idx-1, idx+2, nodeItem(node))
			buf = nb
			continue
		}
		if idx, ok := rightmostPrefixSign(buf); ok {
			operand := buf[idx+1].Node
			sp := mergeSpans(buf[idx], buf[idx+1])
			node := &ast.UnaryOpr{Base: ast.Base{Span: sp}, Operator: buf[idx].Tok.Value, Operand: operand}
			var nb Buffer
			nb, _ = buf.splice(idx, idx+2, nodeItem(node))
			buf = nb
			continue
		}
		break
	}
	return buf, nil
}

// bestBinaryCandidate finds the binary-operator token with the numerically
// largest precedence that sits strictly between two already-folded values,
// first occurrence winning ties (so same-precedence chains fold
// left-associatively: folding the leftmost pair first leaves the
// right-hand side of the earlier fold to combine with what follows).
func bestBinaryCandidate(buf Buffer) (int, bool) {
	best, bestPrec := -1, -1
	for i, it := range buf {
		if !it.IsToken() || it.Tok.Kind != token.KindBinaryOp {
			continue
		}
		if i == 0 || i == len(buf)-1 || buf[i-1].IsToken() || buf[i+1].IsToken() {
			continue
		}
		if p := token.BinaryPrecedence(it.Tok.Value); p > bestPrec {
			bestPrec, best = p, i
		}
	}
	return best, best != -1
}

// rightmostPrefixSign finds a "+"/"-" token with a folded value immediately
// to its right and nothing value-shaped to its left — a prefix sign rather
// than a binary operator. Scanning right-to-left picks the sign nearest the
// operand first, which is the correct fold order for a chain like `- -x`.
func rightmostPrefixSign(buf Buffer) (int, bool) {
	for i := len(buf) - 1; i >= 0; i-- {
		it := buf[i]
		if !it.IsToken() || it.Tok.Kind != token.KindBinaryOp {
			continue
		}
		if it.Tok.Value != "+" && it.Tok.Value != "-" {
			continue
		}
		if i > 0 && !buf[i-1].IsToken() {
			continue
		}
		if i+1 >= len(buf) || buf[i+1].IsToken() {
			continue
		}
		return i, true
	}
	return -1, false
}
