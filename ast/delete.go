package ast

// Delete is `del a, b, c` (parser pass 7): removes the named symbols from
// the innermost symbol-table frame, in both the type-check and interpret
// walks (spec.md §4.4/§4.5 "Delete").
type Delete struct {
	Base
	Names []string
}

func (*Delete) Kind() string { return "Delete" }
