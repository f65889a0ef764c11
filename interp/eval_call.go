package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalCall evaluates the callee then the arguments, left to right, each
// exactly once. A Method-access callee (`recv:.method`, and every
// desugared operator Call) evaluates its receiver once more here and
// prepends it to the argument vector (DESIGN.md, "Desugared operator
// Call's implicit receiver") before resolving and invoking the callable
// the same way an ordinary callee would be (spec.md §4.5 "Call").
func (ip *Interp) evalCall(n *ast.Call) (value.Value, *zerr.Error) {
	var args []value.Value
	if member, ok := n.Callee.(*ast.Member); ok && member.Access == ast.AccessMethod {
		recv, err := ip.Eval(member.Parent)
		if err != nil {
			return nil, err
		}
		args = append(args, recv)
	}

	callee, err := ip.Eval(n.Callee)
	if err != nil {
		return nil, err
	}

	for _, a := range n.Args {
		av, aerr := ip.Eval(a)
		if aerr != nil {
			return nil, aerr
		}
		args = append(args, av)
	}

	proc, ok := callee.(value.Proc)
	if !ok {
		return nil, zerr.I001("call", []string{callee.String()})
	}
	return ip.invoke(proc, args)
}

// invoke runs a Proc value: a built-in calls its Go closure directly; a
// defined Proc pushes a new Function frame, binds parameters positionally,
// interprets the body with function semantics (a Return unwraps instead of
// propagating), pops, and returns the body's value (spec.md §4.5 "Call").
func (ip *Interp) invoke(proc value.Proc, args []value.Value) (value.Value, *zerr.Error) {
	if proc.Builtin != nil {
		v, err := proc.Builtin(args)
		if err != nil {
			if zerrErr, ok := err.(*zerr.Error); ok {
				return nil, zerrErr
			}
			return nil, zerr.I001(proc.Name, argStrings(args))
		}
		if v == nil {
			return nil, zerr.I001(proc.Name, argStrings(args))
		}
		return v, nil
	}

	body, ok := proc.Body.(*ast.Block)
	if !ok {
		return nil, zerr.I001(proc.Name, argStrings(args))
	}

	ip.Tab.Push(symtable.Function)
	for i, pname := range proc.Params {
		var av value.Value = value.Unit{}
		if i < len(args) {
			av = args[i]
		}
		ip.Tab.Declare(pname, av, false)
	}
	v, berr := ip.evalBlock(body)
	ip.Tab.Pop()
	if berr != nil {
		return nil, berr
	}
	return value.Unwrap(v), nil
}

func argStrings(args []value.Value) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.String()
	}
	return out
}
