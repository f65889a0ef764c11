// Package interp implements the interpret walk (spec.md §4.5): the same
// generic symbol table as package typecheck, specialised to
// E = value.Value, D = ast.Node, driven by a stateful `Interp{Reg, Tab}`
// dispatching on a type switch to one `eval_*.go` file per AST variant —
// the interpret-phase counterpart of typecheck.Checker, mirroring the
// teacher's eval.Evaluator carrying *scope.Scope.
package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/primitive"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

type Table = symtable.Table[value.Value, ast.Node]

type Interp struct {
	Reg *primitive.Registry
	Tab *Table
}

// New builds an Interp with the outermost frame pre-populated with
// primitive value bindings (spec.md §3, "outermost frame is
// pre-populated with primitive type bindings" — the interpret phase's
// counterpart binds primitive names to their Value::Type).
func New() *Interp {
	reg := primitive.Global()
	tab := symtable.New[value.Value, ast.Node]()
	for name, v := range reg.ValueSymbols() {
		tab.Declare(name, v, true)
	}
	return &Interp{Reg: reg, Tab: tab}
}

func (ip *Interp) Eval(node ast.Node) (value.Value, *zerr.Error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil
	case *ast.Ident:
		return ip.evalIdent(n)
	case *ast.Declare:
		return ip.evalDeclare(n)
	case *ast.Set:
		return ip.evalSet(n)
	case *ast.Member:
		return ip.evalMember(n)
	case *ast.BinaryOpr:
		if n.Operator == "::" {
			return ip.evalTypecast(n)
		}
		return value.Unit{}, nil
	case *ast.Call:
		return ip.evalCall(n)
	case *ast.Block:
		return ip.evalBlock(n)
	case *ast.If:
		return ip.evalIf(n)
	case *ast.Procedure:
		return ip.evalProcedure(n)
	case *ast.Return:
		return ip.evalReturn(n)
	case *ast.Defer:
		return ip.evalDefer(n)
	case *ast.Delete:
		return ip.evalDelete(n)
	case *ast.Preprocess:
		return ip.Eval(n.Body)
	case *ast.Class:
		return ip.evalClass(n)
	case *ast.Comment:
		return value.Unit{}, nil
	default:
		return value.Unit{}, nil
	}
}

// EvalAll runs every top-level node in order and returns the last one's
// value, unwrapping a top-level Return the way a function body would
// (spec.md §4.5 "Block").
func (ip *Interp) EvalAll(nodes []ast.Node) (value.Value, *zerr.Error) {
	var last value.Value = value.Unit{}
	for _, n := range nodes {
		v, err := ip.Eval(n)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return value.Unwrap(last), nil
}
