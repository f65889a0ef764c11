package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalTypecast handles `left :: right`, the one BinaryOpr the desugarer
// leaves untouched instead of lowering into a Call (spec.md §4.3): Right
// evaluates to the target's value.Type (primitive/class names are bound
// to their own Value::Type in the outermost frame), and the cast is an
// ordinary call to `_typecast` in Left's runtime namespace with
// args = [left, target] — the same args[0]=self, args[1]=target
// convention every primitive's own _typecast Builtin already follows.
func (ip *Interp) evalTypecast(n *ast.BinaryOpr) (value.Value, *zerr.Error) {
	left, err := ip.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ip.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	target, ok := right.(value.Type)
	if !ok {
		return nil, zerr.I001("_typecast", []string{left.String(), right.String()})
	}
	ns := runtimeNamespace(ip, left)
	if ns == nil {
		return nil, zerr.I001("_typecast", []string{left.String(), target.String()})
	}
	member, ok := ns["_typecast"]
	if !ok {
		return nil, zerr.I001("_typecast", []string{left.String(), target.String()})
	}
	proc, ok := member.(value.Proc)
	if !ok {
		return nil, zerr.I001("_typecast", []string{left.String(), target.String()})
	}
	return ip.invoke(proc, []value.Value{left, target})
}
