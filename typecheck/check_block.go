package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkBlock pushes a frame, checks statements in order, and yields the
// final statement's type — unless an earlier Return was reached, in which
// case the block's result is the type every Return agreed on (T003 on
// disagreement, spec.md §4.4 "Block").
func (c *Checker) checkBlock(n *ast.Block) (*ztype.Type, *zerr.Error) {
	c.Tab.Push(symtable.Normal)
	defer c.Tab.Pop()

	last := c.Reg.CheckType("unit")
	var returnType *ztype.Type
	for _, stmt := range n.Statements {
		ty, err := c.Check(stmt)
		if err != nil {
			return nil, err
		}
		last = ty
		if _, ok := stmt.(*ast.Return); ok {
			if returnType == nil {
				returnType = ty
			} else if !ztype.Equal(returnType, ty) {
				return nil, zerr.T003(returnType, ty)
			}
		}
	}
	if returnType != nil {
		return returnType, nil
	}
	return last, nil
}
