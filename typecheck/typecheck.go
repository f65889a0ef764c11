// Package typecheck implements the type-check walk (spec.md §4.4): a
// uniform `type_check(node, symtab) -> Type | error` contract, dispatched
// here and fanned out one file per AST variant — check_literal.go,
// check_ident.go, ... — mirroring the teacher's eval/eval_*.go split
// applied to the type-check walk instead of the interpret walk.
package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/primitive"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// Table is the type-check phase's symbol table: ztype.Type entries, with
// each frame's deferred expressions recorded as ast.Node.
type Table = symtable.Table[*ztype.Type, ast.Node]

// Checker carries the primitive registry and the symbol table threaded
// through one type-check walk, the same stateful-struct shape the
// teacher's Evaluator uses for the interpret walk.
type Checker struct {
	Reg *primitive.Registry
	Tab *Table
}

// NewChecker builds a Checker with a fresh outermost frame pre-populated
// with every primitive type binding (spec.md §3 invariant: "Outermost
// frame is pre-populated with primitive type bindings").
func NewChecker() *Checker {
	reg := primitive.Global()
	tab := symtable.New[*ztype.Type, ast.Node]()
	for name, ty := range reg.CheckSymbols() {
		tab.Declare(name, ty, true)
	}
	return &Checker{Reg: reg, Tab: tab}
}

// Check dispatches node to its variant's type-check rule. Nodes with no
// declared semantics (spec.md §4.4's "Default for nodes lacking
// semantics") fall through to ztype.AnyType.
func (c *Checker) Check(node ast.Node) (*ztype.Type, *zerr.Error) {
	switch n := node.(type) {
	case *ast.Literal:
		return c.checkLiteral(n)
	case *ast.Ident:
		return c.checkIdent(n)
	case *ast.Declare:
		return c.checkDeclare(n)
	case *ast.Set:
		return c.checkSet(n)
	case *ast.Member:
		return c.checkMember(n)
	case *ast.BinaryOpr:
		if n.Operator == "::" {
			return c.checkTypecast(n)
		}
		return ztype.AnyType, nil
	case *ast.Call:
		return c.checkCall(n)
	case *ast.Block:
		return c.checkBlock(n)
	case *ast.If:
		return c.checkIf(n)
	case *ast.Procedure:
		return c.checkProcedure(n)
	case *ast.Return:
		return c.checkReturn(n)
	case *ast.Defer:
		return c.checkDefer(n)
	case *ast.Preprocess:
		return c.checkPreprocess(n)
	case *ast.Delete:
		return c.checkDelete(n)
	case *ast.Class:
		return c.checkClass(n)
	case *ast.Comment:
		return ztype.AnyType, nil
	default:
		return ztype.AnyType, nil
	}
}

// CheckAll type-checks a sequence of statements in order, returning the
// last statement's type (spec.md §4.4 "Block": "result type is the type
// of its final expression").
func (c *Checker) CheckAll(nodes []ast.Node) (*ztype.Type, *zerr.Error) {
	result := ztype.AnyType
	for _, n := range nodes {
		ty, err := c.Check(n)
		if err != nil {
			return nil, err
		}
		result = ty
	}
	return result, nil
}
