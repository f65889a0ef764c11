package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkDefer type-checks the body where the defer appears and records it
// into the type-check frame's defer list, which nothing reads after the
// frame is popped; the interpreter keeps its own defer list and runs it in
// LIFO order when its frame is popped (spec.md §3, §4.4 "Defer").
func (c *Checker) checkDefer(n *ast.Defer) (*ztype.Type, *zerr.Error) {
	if _, err := c.Check(n.Body); err != nil {
		return nil, err
	}
	c.Tab.Defer(ast.Node(n.Body))
	return c.Reg.CheckType("unit"), nil
}
