package ast

// Class is `class`/`struct`, optional `| args |`, and a `{ body }`
// (parser pass 3). IsStruct distinguishes the two: a struct may not
// define `_new` (T018) and may take an argument list; a class may have an
// argument list or a `_new` declaration but not both (T019). Every body
// statement must be a Declare (spec.md §4.4 "Class", T013).
type Class struct {
	Base
	Name     string
	IsStruct bool
	Params   []Param
	Body     *Block
}

func (*Class) Kind() string { return "Class" }
