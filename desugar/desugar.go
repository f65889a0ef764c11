// Package desugar implements the pure AST-to-AST lowering pass between
// parsing and type-check (spec.md §4.3): UnaryOpr/BinaryOpr become Calls
// of a Member using the operator's canonical method name, and a
// Preprocess block is evaluated on the spot and replaced by the Literal
// its value becomes. Everything else recurses into its children unchanged.
//
// This has no teacher equivalent (GoMix interprets its AST directly, with
// no separate lowering stage), so it is grounded on spec.md §4.3 itself
// and shaped like typecheck.Checker/interp.Interp: a stateful struct
// (`Desugarer`, here holding nothing but the method set, since desugaring
// needs no running state across nodes) with one method per node kind that
// needs real work, and a plain recursive default for everything else.
package desugar

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/interp"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/typecheck"
	"github.com/zyxt-lang/zyxt/zerr"
)

type Desugarer struct{}

func New() *Desugarer { return &Desugarer{} }

// Desugar rewrites node and returns the lowered tree.
func (d *Desugarer) Desugar(node ast.Node) (ast.Node, *zerr.Error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case *ast.UnaryOpr:
		return d.desugarUnary(n)
	case *ast.BinaryOpr:
		return d.desugarBinary(n)
	case *ast.Preprocess:
		return d.desugarPreprocess(n)
	case *ast.Call:
		return d.desugarCall(n)
	case *ast.Member:
		return d.desugarMember(n)
	case *ast.Declare:
		return d.desugarDeclare(n)
	case *ast.Set:
		return d.desugarSet(n)
	case *ast.Block:
		return d.desugarBlock(n)
	case *ast.If:
		return d.desugarIf(n)
	case *ast.Procedure:
		return d.desugarProcedure(n)
	case *ast.Return:
		return d.desugarReturn(n)
	case *ast.Defer:
		return d.desugarDefer(n)
	case *ast.Class:
		return d.desugarClass(n)
	default:
		// Literal, Ident, Delete, Comment have no children to rewrite.
		return node, nil
	}
}

// DesugarAll lowers every node of a parsed program in place.
func (d *Desugarer) DesugarAll(nodes []ast.Node) ([]ast.Node, *zerr.Error) {
	out := make([]ast.Node, len(nodes))
	for i, n := range nodes {
		ln, err := d.Desugar(n)
		if err != nil {
			return nil, err
		}
		out[i] = ln
	}
	return out, nil
}

// desugarUnary lowers `!a`/`+a`/`-a` to a Call of a Member on the
// (already-desugared) operand using the operator's canonical method name
// (spec.md §4.3).
func (d *Desugarer) desugarUnary(n *ast.UnaryOpr) (ast.Node, *zerr.Error) {
	operand, err := d.Desugar(n.Operand)
	if err != nil {
		return nil, err
	}
	method, ok := token.UnaryCanonicalMethod[n.Operator]
	if !ok {
		return nil, zerr.P005BadOperatorPosition(n.Span)
	}
	member := &ast.Member{Base: ast.Base{Span: n.Span}, Parent: operand, Name: method, Access: ast.AccessMethod}
	return &ast.Call{Base: ast.Base{Span: n.Span}, Callee: member}, nil
}

// desugarBinary lowers every binary operator except `::` to a Call of a
// Member using the operator's canonical method name; `::` (type-cast) is
// preserved as a BinaryOpr (spec.md §4.3) — the type checker and
// interpreter special-case it as an implicit call to `_typecast` instead
// of restructuring the tree, since its right-hand side is a type
// reference rather than an ordinary value-producing operand.
func (d *Desugarer) desugarBinary(n *ast.BinaryOpr) (ast.Node, *zerr.Error) {
	left, err := d.Desugar(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator == "::" {
		right, rerr := d.Desugar(n.Right)
		if rerr != nil {
			return nil, rerr
		}
		return &ast.BinaryOpr{Base: ast.Base{Span: n.Span}, Operator: "::", Left: left, Right: right}, nil
	}
	right, err := d.Desugar(n.Right)
	if err != nil {
		return nil, err
	}
	method, ok := token.CanonicalMethod[n.Operator]
	if !ok {
		return nil, zerr.P005BadOperatorPosition(n.Span)
	}
	member := &ast.Member{Base: ast.Base{Span: n.Span}, Parent: left, Name: method, Access: ast.AccessMethod}
	return &ast.Call{Base: ast.Base{Span: n.Span}, Callee: member, Args: []ast.Node{right}}, nil
}

// desugarPreprocess evaluates the body at desugar time: the body is
// itself desugared, type-checked in a fresh type symbol table, and
// interpreted in a fresh value symbol table; the resulting value replaces
// the Preprocess node as a Literal (spec.md §4.3). Fresh tables are used
// rather than this desugarer's own caller's tables (there are none passed
// in — each invocation of Desugar is stateless) since a compile-time
// block's evaluation is necessarily self-contained: it runs before the
// surrounding program's own symbol tables exist.
func (d *Desugarer) desugarPreprocess(n *ast.Preprocess) (ast.Node, *zerr.Error) {
	body, err := d.Desugar(n.Body)
	if err != nil {
		return nil, err
	}
	checker := typecheck.NewChecker()
	if _, terr := checker.Check(body); terr != nil {
		return nil, terr
	}
	interpreter := interp.New()
	v, ierr := interpreter.Eval(body)
	if ierr != nil {
		return nil, ierr
	}
	return &ast.Literal{Base: ast.Base{Span: n.Span}, Value: v}, nil
}

func (d *Desugarer) desugarCall(n *ast.Call) (ast.Node, *zerr.Error) {
	callee, err := d.Desugar(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]ast.Node, len(n.Args))
	for i, a := range n.Args {
		da, aerr := d.Desugar(a)
		if aerr != nil {
			return nil, aerr
		}
		args[i] = da
	}
	return &ast.Call{Base: n.Base, Callee: callee, Args: args}, nil
}

func (d *Desugarer) desugarMember(n *ast.Member) (ast.Node, *zerr.Error) {
	parent, err := d.Desugar(n.Parent)
	if err != nil {
		return nil, err
	}
	return &ast.Member{Base: n.Base, Parent: parent, Name: n.Name, Access: n.Access}, nil
}

func (d *Desugarer) desugarDeclare(n *ast.Declare) (ast.Node, *zerr.Error) {
	value, err := d.Desugar(n.Value)
	if err != nil {
		return nil, err
	}
	typeAnn := n.TypeAnnotation
	if typeAnn != nil {
		ta, terr := d.Desugar(typeAnn)
		if terr != nil {
			return nil, terr
		}
		typeAnn = ta
	}
	return &ast.Declare{Base: n.Base, Flags: n.Flags, Name: n.Name, TypeAnnotation: typeAnn, Value: value}, nil
}

func (d *Desugarer) desugarSet(n *ast.Set) (ast.Node, *zerr.Error) {
	target, err := d.Desugar(n.Target)
	if err != nil {
		return nil, err
	}
	value, err := d.Desugar(n.Value)
	if err != nil {
		return nil, err
	}
	return &ast.Set{Base: n.Base, Target: target, Value: value}, nil
}

func (d *Desugarer) desugarBlock(n *ast.Block) (ast.Node, *zerr.Error) {
	stmts := make([]ast.Node, len(n.Statements))
	for i, s := range n.Statements {
		ds, err := d.Desugar(s)
		if err != nil {
			return nil, err
		}
		stmts[i] = ds
	}
	return &ast.Block{Base: n.Base, Statements: stmts}, nil
}

func (d *Desugarer) desugarIf(n *ast.If) (ast.Node, *zerr.Error) {
	branches := make([]ast.IfBranch, len(n.Branches))
	for i, br := range n.Branches {
		cond := br.Cond
		if cond != nil {
			dc, err := d.Desugar(cond)
			if err != nil {
				return nil, err
			}
			cond = dc
		}
		body, err := d.desugarBlock(br.Body)
		if err != nil {
			return nil, err
		}
		branches[i] = ast.IfBranch{Cond: cond, Body: body.(*ast.Block)}
	}
	return &ast.If{Base: n.Base, Branches: branches}, nil
}

func (d *Desugarer) desugarProcedure(n *ast.Procedure) (ast.Node, *zerr.Error) {
	params, err := d.desugarParams(n.Params)
	if err != nil {
		return nil, err
	}
	returnType := n.ReturnType
	if returnType != nil {
		rt, rerr := d.Desugar(returnType)
		if rerr != nil {
			return nil, rerr
		}
		returnType = rt
	}
	body, err := d.desugarBlock(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Procedure{Base: n.Base, IsFn: n.IsFn, Params: params, ReturnType: returnType, Body: body.(*ast.Block)}, nil
}

func (d *Desugarer) desugarParams(params []ast.Param) ([]ast.Param, *zerr.Error) {
	out := make([]ast.Param, len(params))
	for i, p := range params {
		ann := p.TypeAnnotation
		if ann != nil {
			da, err := d.Desugar(ann)
			if err != nil {
				return nil, err
			}
			ann = da
		}
		out[i] = ast.Param{Name: p.Name, TypeAnnotation: ann}
	}
	return out, nil
}

func (d *Desugarer) desugarReturn(n *ast.Return) (ast.Node, *zerr.Error) {
	if n.Value == nil {
		return n, nil
	}
	value, err := d.Desugar(n.Value)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Base: n.Base, Value: value}, nil
}

func (d *Desugarer) desugarDefer(n *ast.Defer) (ast.Node, *zerr.Error) {
	body, err := d.Desugar(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Defer{Base: n.Base, Body: body}, nil
}

func (d *Desugarer) desugarClass(n *ast.Class) (ast.Node, *zerr.Error) {
	params, err := d.desugarParams(n.Params)
	if err != nil {
		return nil, err
	}
	body, err := d.desugarBlock(n.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Class{Base: n.Base, Name: n.Name, IsStruct: n.IsStruct, Params: params, Body: body.(*ast.Block)}, nil
}
