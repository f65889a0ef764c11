package ast

// Set is `pattern = expr` (parser pass 10). Compound assignment
// (`var ⊕= expr`) is lowered to this shape by the same pass, with Value
// rewritten to a BinaryOpr of the original Value against the target
// (spec.md §4.2 pass 10).
type Set struct {
	Base
	Target Node
	Value  Node
}

func (*Set) Kind() string { return "Set" }
