package ast

import "github.com/zyxt-lang/zyxt/token"

// Declare is `[flag*] name [: type] := expr` (parser pass 9). A `const`
// flag marks the bound symbol immutable (spec.md §3 invariants, §4.4
// "Declare"); the remaining flags (hoi/pub/inst/priv/prot) are only
// meaningful inside a Class/Struct body, where they set member visibility
// and instance-vs-class binding (SPEC_FULL.md "SUPPLEMENTED FEATURES").
type Declare struct {
	Base
	Flags          []token.Flag
	Name           string
	TypeAnnotation Node // nil when the type is to be inferred
	Value          Node
}

func (*Declare) Kind() string { return "Declare" }

// HasFlag reports whether f is present on the declaration.
func (d *Declare) HasFlag(f token.Flag) bool {
	for _, got := range d.Flags {
		if got == f {
			return true
		}
	}
	return false
}
