package ast

// IfBranch is one `cond { body }` / `elif cond { body }` / `else { body }`
// arm. Cond is nil for the trailing else arm (spec.md §4.5 "If": "for the
// first whose condition is absent or evaluates to true").
type IfBranch struct {
	Cond Node
	Body *Block
}

// If folds an entire if/elif*/else? chain into one node (parser pass 2).
type If struct {
	Base
	Branches []IfBranch
}

func (*If) Kind() string { return "If" }
