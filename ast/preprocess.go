package ast

// Preprocess is `pre { ... }` or `pre expr` (parser pass 5). It is
// entirely consumed during desugaring: its contents are desugared,
// type-checked in a fresh type symbol table, and interpreted in a fresh
// value symbol table, and the produced value replaces the Preprocess node
// as a Literal (spec.md §4.3). By the time the type checker and
// interpreter run over the desugared tree, no Preprocess node remains.
type Preprocess struct {
	Base
	Body Node
}

func (*Preprocess) Kind() string { return "Preprocess" }
