package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkIf checks every branch's condition (when present) and body, and
// yields the branches' common body type when they all agree, Any when any
// two disagree, and unit when there are no branches (spec.md §4.4 "If").
func (c *Checker) checkIf(n *ast.If) (*ztype.Type, *zerr.Error) {
	var result *ztype.Type
	for _, br := range n.Branches {
		if br.Cond != nil {
			if _, err := c.Check(br.Cond); err != nil {
				return nil, err
			}
		}
		ty, err := c.checkBlock(br.Body)
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = ty
		} else if !ztype.Equal(result, ty) {
			result = ztype.AnyType
		}
	}
	if result == nil {
		return c.Reg.CheckType("unit"), nil
	}
	return result, nil
}
