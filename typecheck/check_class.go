package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkClass validates the structural rules around constructors before
// checking the body: a struct may not define `_new` (T018); a class may
// not have both an argument list and a `_new` declaration (T019); every
// body statement must be a Declare (T013, spec.md §4.4 "Class"). The
// class name is then bound, const, to a constructor signature — spec.md
// §4.5 is silent on class instantiation (a supplemented feature, see
// DESIGN.md), so the constructor's parameter list is either the explicit
// `_new` procedure's, the class header's own `| args |` list, or empty.
func (c *Checker) checkClass(n *ast.Class) (*ztype.Type, *zerr.Error) {
	hasNew := false
	var newProc *ast.Procedure
	fields := map[string]*ztype.Type{}
	c.Tab.Push(symtable.Normal)
	for _, stmt := range n.Body.Statements {
		decl, ok := stmt.(*ast.Declare)
		if !ok {
			c.Tab.Pop()
			return nil, zerr.T013()
		}
		if decl.Name == "_new" {
			hasNew = true
			if proc, ok := decl.Value.(*ast.Procedure); ok {
				newProc = proc
			}
		}
		ty, err := c.checkDeclare(decl)
		if err != nil {
			c.Tab.Pop()
			return nil, err
		}
		fields[decl.Name] = ty
	}
	c.Tab.Pop()

	if n.IsStruct && hasNew {
		return nil, zerr.T018()
	}
	if !n.IsStruct && len(n.Params) > 0 && hasNew {
		return nil, zerr.T019()
	}

	classTy := &ztype.Type{Name: n.Name, Namespace: map[string]*ztype.Type{}, Fields: fields}

	var paramNames []string
	var paramTypes []*ztype.Type
	switch {
	case newProc != nil:
		for _, p := range newProc.Params {
			paramNames = append(paramNames, p.Name)
			if p.TypeAnnotation != nil {
				pt, err := c.Check(p.TypeAnnotation)
				if err != nil {
					return nil, err
				}
				paramTypes = append(paramTypes, pt)
			} else {
				paramTypes = append(paramTypes, ztype.AnyType)
			}
		}
	case len(n.Params) > 0:
		for _, p := range n.Params {
			paramNames = append(paramNames, p.Name)
			if ty, ok := fields[p.Name]; ok {
				paramTypes = append(paramTypes, ty)
			} else {
				paramTypes = append(paramTypes, ztype.AnyType)
			}
		}
	}

	ctorTy := ztype.NewProcType(ztype.ProcSignature{
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		ReturnType: classTy,
		IsFn:       true,
	})
	c.Tab.Declare(n.Name, ctorTy, true)
	return ctorTy, nil
}
