package ast

// Return is `ret expr?` (parser pass 8). The type checker gives the node
// its payload's type (unit for a bare `ret`), not Unit, and an enclosing
// Block uses that type for its Return-agreement check. The payload's type
// is checked against the enclosing Function frame's declared return type,
// and using it outside a Function frame is T017 (spec.md §4.4 "Return").
type Return struct {
	Base
	Value Node // nil for a bare `ret`
}

func (*Return) Kind() string { return "Return" }
