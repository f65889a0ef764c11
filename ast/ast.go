// Package ast defines Zyxt's closed set of seventeen AST node variants
// (spec.md §3) and the Node interface every variant implements.
//
// Unlike the teacher's parser package — which gives each node kind its own
// concrete Accept(Visitor) method wired into a hand-written visitor
// interface (parser/node.go, main/print_visitor.go) — Zyxt's three walks
// over the AST (desugar, type-check, interpret) live in three separate
// packages that type-switch over Node, the same "uniform contract
// polymorphic over N variants" spec.md §4 describes. This keeps the
// closed union genuinely closed (the compiler enforces exhaustiveness via
// the type switch, the same way the teacher's switch_evaluator.go and
// enum_evaluator.go type-switch over a closed set of case kinds) without
// forcing every future walk to implement all seventeen Visit methods.
package ast

import (
	"github.com/zyxt-lang/zyxt/span"
)

// Node is implemented by every AST variant. GetSpan returns the node's
// optional source span (nil for nodes synthesized without position
// information, e.g. desugared operator calls).
type Node interface {
	GetSpan() *span.Span
	Kind() string
}

// Base is embedded by every concrete node to provide the Span field and
// its accessor.
type Base struct {
	Span *span.Span
}

// GetSpan implements Node.
func (b Base) GetSpan() *span.Span { return b.Span }

// IsPattern reports whether a node is currently legal on the left-hand
// side of a Set (spec.md §4.4 "Pattern"). Only Ident qualifies today; the
// Glossary notes this is "reserved for future destructuring".
func IsPattern(n Node) bool {
	_, ok := n.(*Ident)
	return ok
}
