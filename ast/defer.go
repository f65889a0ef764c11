package ast

// Defer is `defer expr` (parser pass 5). It registers Body into the
// current symbol-table frame's defer list rather than evaluating it in
// place; the frame runs its deferred expressions in LIFO order when it is
// popped (spec.md §3, §4.4/§4.5 "Defer").
type Defer struct {
	Base
	Body Node
}

func (*Defer) Kind() string { return "Defer" }
