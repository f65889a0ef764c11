package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkTypecast handles `left :: right`, the one BinaryOpr the desugarer
// leaves untouched instead of lowering into a Call (spec.md §4.3):
// checking Right (an Ident naming a primitive or class) yields that
// target's own Type, the same way checking any other type-name reference
// does, so the cast's static result type is simply whatever Right checks
// to. Left must expose a `_typecast` member, T005 otherwise.
func (c *Checker) checkTypecast(n *ast.BinaryOpr) (*ztype.Type, *zerr.Error) {
	leftTy, err := c.Check(n.Left)
	if err != nil {
		return nil, err
	}
	targetTy, err := c.Check(n.Right)
	if err != nil {
		return nil, err
	}
	if _, ok := leftTy.LookupNamespace("_typecast"); !ok {
		return nil, zerr.T005(leftTy, "_typecast")
	}
	return targetTy, nil
}
