package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkReturn requires an enclosing Function frame (T017), checks the
// payload against its declared return type when one was annotated (T009),
// and yields the payload's own type so an enclosing Block can use it for
// its Return-agreement check (spec.md §4.4 "Return"); a bare `ret` carries
// unit.
func (c *Checker) checkReturn(n *ast.Return) (*ztype.Type, *zerr.Error) {
	fn := c.Tab.EnclosingFunction()
	if fn == nil {
		return nil, zerr.T017()
	}

	payload := c.Reg.CheckType("unit")
	if n.Value != nil {
		pt, err := c.Check(n.Value)
		if err != nil {
			return nil, err
		}
		payload = pt
	}

	if fn.ReturnTyp != nil && *fn.ReturnTyp != nil {
		if !ztype.Equal(*fn.ReturnTyp, payload) {
			return nil, zerr.T009(*fn.ReturnTyp, payload)
		}
	}
	return payload, nil
}
