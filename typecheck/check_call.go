package typecheck

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// checkCall recurses on the callee, resolves its Proc signature, verifies
// arity and argument types, and yields the signature's return type
// (spec.md §4.4 "Call"). A Method-access callee (`recv:.method`, and every
// desugared operator Call) resolves its signature through a Namespace
// lookup keyed on the receiver's own type (checkMember), so the receiver
// is already known compatible by construction; every primitive Namespace
// signature (binaryProcType, unary, typecast) declares ParamTypes for the
// explicit argument(s) only, with no leading "self" entry, so the
// receiver is not counted again here — only n.Args is matched against
// sig.ParamTypes. The interpreter's evalCall mirrors the receiver at the
// value level instead (DESIGN.md, "Desugared operator Call's implicit
// receiver"), since its Builtin closures do expect args[0] to be self.
func (c *Checker) checkCall(n *ast.Call) (*ztype.Type, *zerr.Error) {
	calleeType, err := c.Check(n.Callee)
	if err != nil {
		return nil, err
	}
	sig, ok := calleeType.Signature()
	if !ok {
		return ztype.AnyType, nil
	}

	argTypes := make([]*ztype.Type, 0, len(n.Args))
	for _, arg := range n.Args {
		argType, aerr := c.Check(arg)
		if aerr != nil {
			return nil, aerr
		}
		argTypes = append(argTypes, argType)
	}

	name := calleeName(n.Callee)
	if len(argTypes) < len(sig.ParamTypes) {
		return nil, zerr.T011(name)
	}
	if len(argTypes) > len(sig.ParamTypes) {
		return nil, zerr.T012(name)
	}
	for i, at := range argTypes {
		if !ztype.Equal(sig.ParamTypes[i], at) {
			return nil, zerr.T004(sig.ParamTypes[i], at)
		}
	}
	return sig.ReturnType, nil
}

func calleeName(n ast.Node) string {
	switch callee := n.(type) {
	case *ast.Ident:
		return callee.Name
	case *ast.Member:
		return callee.Name
	default:
		return "<call>"
	}
}
