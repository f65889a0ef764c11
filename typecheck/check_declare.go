package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkDeclare checks the RHS, verifies it against an explicit type
// annotation if present, binds the name in the current frame, and records
// the inferred type otherwise (spec.md §4.4 "Declare"). The `const` flag
// marks the binding immutable.
func (c *Checker) checkDeclare(n *ast.Declare) (*ztype.Type, *zerr.Error) {
	rhsType, err := c.Check(n.Value)
	if err != nil {
		return nil, err
	}

	declType := rhsType
	if n.TypeAnnotation != nil {
		annType, aerr := c.Check(n.TypeAnnotation)
		if aerr != nil {
			return nil, aerr
		}
		if !ztype.Equal(annType, rhsType) {
			return nil, zerr.T010(annType, rhsType)
		}
		declType = annType
	}

	c.Tab.Declare(n.Name, declType, n.HasFlag(token.FlagConst))
	return declType, nil
}
