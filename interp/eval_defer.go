package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalDefer records the body into the current frame's defer list without
// evaluating it, and returns Unit (spec.md §4.5 "Defer").
func (ip *Interp) evalDefer(n *ast.Defer) (value.Value, *zerr.Error) {
	ip.Tab.Defer(n.Body)
	return value.Unit{}, nil
}
