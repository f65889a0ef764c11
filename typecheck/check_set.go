package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkSet verifies the target is a pattern (today, only Ident), checks
// the RHS against the symbol's bound type, and rejects both undeclared and
// const targets (spec.md §4.4 "Set").
func (c *Checker) checkSet(n *ast.Set) (*ztype.Type, *zerr.Error) {
	ident, ok := n.Target.(*ast.Ident)
	if !ok {
		return nil, zerr.T008()
	}
	rhsType, err := c.Check(n.Value)
	if err != nil {
		return nil, err
	}
	entry, ok := c.Tab.Lookup(ident.Name)
	if !ok {
		return nil, zerr.T002(ident.Name)
	}
	if entry.Const {
		return nil, zerr.T001()
	}
	if !ztype.Equal(entry.Value, rhsType) {
		return nil, zerr.T010(entry.Value, rhsType)
	}
	c.Tab.Set(ident.Name, rhsType)
	return rhsType, nil
}
