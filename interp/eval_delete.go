package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalDelete removes the named symbols from the innermost frame
// (spec.md §4.5 "Delete").
func (ip *Interp) evalDelete(n *ast.Delete) (value.Value, *zerr.Error) {
	for _, name := range n.Names {
		ip.Tab.Delete(name)
	}
	return value.Unit{}, nil
}
