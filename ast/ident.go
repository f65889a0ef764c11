package ast

// Ident is a bare name reference, looked up in the enclosing symbol table
// chain (spec.md §4.4/§4.5 "Ident"). It is also the only shape IsPattern
// currently accepts.
type Ident struct {
	Base
	Name string
}

func (*Ident) Kind() string { return "Ident" }
