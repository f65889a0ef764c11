package ast

// Param is one `name [: type]` entry of a procedure's `| args |` list.
type Param struct {
	Name           string
	TypeAnnotation Node // nil when untyped
}

// Procedure is `proc`/`fn`, optional `| args |`, optional `: return-type`,
// and a body block (parser pass 4). IsFn records which keyword was used;
// `proc` and `fn` bodies both run in a function frame, so Return is legal
// in either (spec.md §3, §4.4 "Procedure").
type Procedure struct {
	Base
	IsFn           bool
	Params         []Param
	ReturnType     Node // nil when inferred
	Body           *Block
}

func (*Procedure) Kind() string { return "Procedure" }
