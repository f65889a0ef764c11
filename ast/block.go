package ast

// Block is a brace-delimited statement sequence (parser pass 1). Entering
// a Block pushes a new symbol-table frame in both the type-check and
// interpret walks; leaving it pops that frame after running any deferred
// expressions registered in it, in LIFO order (spec.md §3, §5 "Scoped
// resource").
type Block struct {
	Base
	Statements []Node
}

func (*Block) Kind() string { return "Block" }
