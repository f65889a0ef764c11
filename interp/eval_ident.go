package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalIdent looks the name up from the innermost frame outward. A miss
// here means a tree reached the interpreter without passing type-check
// (T002 is the type-check phase's job for this), so I001 stands in as the
// generic interpreter-failure code spec.md §7 names for conditions with
// no dedicated code of their own.
func (ip *Interp) evalIdent(n *ast.Ident) (value.Value, *zerr.Error) {
	entry, ok := ip.Tab.Lookup(n.Name)
	if !ok {
		return nil, zerr.I001("ident", []string{n.Name})
	}
	return entry.Value, nil
}
