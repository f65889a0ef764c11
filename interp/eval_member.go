package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/primitive"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalMember evaluates the parent and resolves the attribute: `.` (field
// access) reads a class-instance field; `::`/`:.` (namespace/method
// access) read the attribute from the parent value's runtime-type
// namespace (spec.md §4.5 "Member (namespace)"; field access on a
// primitive value has no namespace to resolve against and always yields
// I001). The receiver itself is NOT prepended here for method access —
// evalCall does that once it knows this Member is being invoked
// (DESIGN.md, "Desugared operator Call's implicit receiver").
func (ip *Interp) evalMember(n *ast.Member) (value.Value, *zerr.Error) {
	parent, err := ip.Eval(n.Parent)
	if err != nil {
		return nil, err
	}

	if n.Access == ast.AccessField {
		inst, ok := parent.(value.Instance)
		if !ok {
			return nil, zerr.I001("field access", []string{parent.String(), n.Name})
		}
		fv, ok := inst.Fields[n.Name]
		if !ok {
			return nil, zerr.I001("field access", []string{inst.ClassName, n.Name})
		}
		return fv, nil
	}

	if inst, ok := parent.(value.Instance); ok {
		fv, ok := inst.Fields[n.Name]
		if !ok {
			return nil, zerr.I001("method access", []string{inst.ClassName, n.Name})
		}
		return fv, nil
	}

	ns := runtimeNamespace(ip, parent)
	if ns == nil {
		return nil, zerr.I001("namespace access", []string{parent.String(), n.Name})
	}
	member, ok := ns[n.Name]
	if !ok {
		return nil, zerr.I001("namespace access", []string{parent.String(), n.Name})
	}
	return member, nil
}

// runtimeNamespace returns the namespace map of v's runtime type: either
// v itself when it is already a reference to a type object, or the
// registered primitive namespace for v's concrete value shape.
func runtimeNamespace(ip *Interp, v value.Value) map[string]value.Value {
	if t, ok := v.(value.Type); ok {
		return t.Namespace
	}
	name := primitive.TypeNameOf(v)
	if name == "" {
		return nil
	}
	vt := ip.Reg.ValueType(name)
	if vt == nil {
		return nil
	}
	return vt.Namespace
}
