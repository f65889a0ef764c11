package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/primitive"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkLiteral returns the primitive Type matching the literal's runtime
// value (spec.md §4.4 "Literal").
func (c *Checker) checkLiteral(n *ast.Literal) (*ztype.Type, *zerr.Error) {
	name := primitive.TypeNameOf(n.Value)
	if ty := c.Reg.CheckType(name); ty != nil {
		return ty, nil
	}
	return ztype.AnyType, nil
}
