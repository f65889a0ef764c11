package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkMember recurses on the parent and looks the attribute up in its
// Fields (field access, `.`) or Namespace (namespace/method access, `::`
// and `:.` — a method call's receiver is bound at interpret time, but its
// declared type still lives in the same namespace a plain `::` lookup
// would consult), T005 if absent (spec.md §4.4 "Member").
func (c *Checker) checkMember(n *ast.Member) (*ztype.Type, *zerr.Error) {
	parentType, err := c.Check(n.Parent)
	if err != nil {
		return nil, err
	}
	if n.Access == ast.AccessField {
		if ty, ok := parentType.LookupField(n.Name); ok {
			return ty, nil
		}
		return nil, zerr.T005(parentType, n.Name)
	}
	if ty, ok := parentType.LookupNamespace(n.Name); ok {
		return ty, nil
	}
	return nil, zerr.T005(parentType, n.Name)
}
