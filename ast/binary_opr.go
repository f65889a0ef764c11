package ast

// BinaryOpr is a binary operator application, folded by parser pass 11
// (highest-precedence split point first). The desugarer lowers every
// BinaryOpr except "::" into a Call of a Member using the operator's
// canonical method name (token.CanonicalMethod), e.g. "+" -> "_add". "::"
// (type-cast) is preserved as a BinaryOpr through desugaring and becomes a
// Call of "_typecast" (spec.md §4.3).
type BinaryOpr struct {
	Base
	Operator string
	Left     Node
	Right    Node
}

func (*BinaryOpr) Kind() string { return "BinaryOpr" }
