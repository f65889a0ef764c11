package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkIdent looks the name up from the innermost frame outward, T002 if
// undefined anywhere (spec.md §4.4 "Ident").
func (c *Checker) checkIdent(n *ast.Ident) (*ztype.Type, *zerr.Error) {
	entry, ok := c.Tab.Lookup(n.Name)
	if !ok {
		return nil, zerr.T002(n.Name)
	}
	return entry.Value, nil
}
