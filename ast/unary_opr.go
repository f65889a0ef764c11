package ast

// UnaryOpr is a prefix unary operator applied to an operand (parser pass
// 12). The desugarer lowers it to a Call of a Member on the operand using
// the operator's canonical method name from token.UnaryCanonicalMethod
// (spec.md §4.3): "!" -> "_not", unary "+" -> "_un_plus", unary "-" ->
// "_un_minus".
type UnaryOpr struct {
	Base
	Operator string
	Operand  Node
}

func (*UnaryOpr) Kind() string { return "UnaryOpr" }
