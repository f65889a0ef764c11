package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkPreprocess is a pass-through: by the time the type checker runs,
// desugaring has already reduced every Preprocess node to a Literal
// carrying its evaluated result (spec.md §4.3). Encountering one here
// means it is being checked ahead of desugaring, so the body is checked
// in place rather than left unexamined.
func (c *Checker) checkPreprocess(n *ast.Preprocess) (*ztype.Type, *zerr.Error) {
	return c.Check(n.Body)
}
