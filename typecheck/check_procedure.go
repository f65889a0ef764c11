package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkProcedure pushes a Function frame carrying the declared return
// type (nil when inferred), declares each parameter, checks the body, and
// yields a proc/fn type parameterised by the parameter and return types
// (spec.md §4.4 "Procedure").
func (c *Checker) checkProcedure(n *ast.Procedure) (*ztype.Type, *zerr.Error) {
	paramNames := make([]string, len(n.Params))
	paramTypes := make([]*ztype.Type, len(n.Params))
	for i, p := range n.Params {
		paramNames[i] = p.Name
		if p.TypeAnnotation == nil {
			paramTypes[i] = ztype.AnyType
			continue
		}
		pt, err := c.Check(p.TypeAnnotation)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = pt
	}

	var declaredReturn *ztype.Type
	if n.ReturnType != nil {
		rt, err := c.Check(n.ReturnType)
		if err != nil {
			return nil, err
		}
		declaredReturn = rt
	}

	frame := c.Tab.Push(symtable.Function)
	if declaredReturn != nil {
		frame.ReturnTyp = &declaredReturn
	}
	for i, p := range n.Params {
		c.Tab.Declare(p.Name, paramTypes[i], false)
	}

	bodyType, err := c.checkBlock(n.Body)
	c.Tab.Pop()
	if err != nil {
		return nil, err
	}

	retType := declaredReturn
	if retType == nil {
		retType = bodyType
	}
	return ztype.NewProcType(ztype.ProcSignature{
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		ReturnType: retType,
		IsFn:       n.IsFn,
	}), nil
}
