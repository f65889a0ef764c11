package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkDelete removes the named symbols from the innermost frame
// (spec.md §4.4 "Delete").
func (c *Checker) checkDelete(n *ast.Delete) (*ztype.Type, *zerr.Error) {
	for _, name := range n.Names {
		c.Tab.Delete(name)
	}
	return c.Reg.CheckType("unit"), nil
}
