// Package ztype implements the type-check-phase Type union (spec.md §3):
// Any, the named Type shape (optional name, a namespace of member types,
// a field map, and type-argument slots), and Generic (a base type bound to
// concrete type arguments). This is the type-valued counterpart of
// package value's Type — the type checker never materialises a runtime
// Value and the interpreter never re-runs type-check, so the two stay
// structurally parallel but live in separate packages (spec.md §3,
// "Conversions exist between them but type-check never materialises
// values and interpretation never re-runs type-check").
package ztype

import "strings"

// Type is the closed union the type checker works over.
type Type struct {
	// Any, when true, makes this the universal "Any" shape; every other
	// field is ignored.
	Any bool

	// Name is the primitive/class name, e.g. "i32", "str", or a
	// user-defined class name. Absent for structural/anonymous types.
	Name string

	// Namespace maps member names (including operator methods like
	// "_add") to their declared Type, populated for every primitive at
	// registry construction (spec.md §4.6) and for class/struct bodies
	// during type-check.
	Namespace map[string]*Type

	// Fields maps instance-field names to their declared Type.
	Fields map[string]*Type

	// TypeArgs holds the ordered (name, Type) pairs of a parameterised
	// type's own argument slots, e.g. the element type slot of a generic
	// container.
	TypeArgs []TypeArg

	// Generic, when non-nil, makes this a Generic{base, bound type args}
	// shape: Base names the unparameterised type and BoundArgs supplies
	// the concrete arguments it is instantiated with.
	Generic *GenericBinding
}

// TypeArg is one (name, Type) slot of a parameterised type's own
// definition.
type TypeArg struct {
	Name string
	Type *Type
}

// GenericBinding records that a Type is a concrete instantiation of a
// parameterised base type.
type GenericBinding struct {
	Base      *Type
	BoundArgs []TypeArg
}

// AnyType is the universal supertype every value is assignable to absent
// more specific checking (spec.md §4.4, "Default for nodes lacking
// semantics: Any").
var AnyType = &Type{Any: true}

// New creates a named Type shape with empty namespace/fields/type-args,
// ready for the two-phase primitive initialisation spec.md §9 recommends:
// callers build the skeleton first (this constructor) across every
// primitive, then install operator bindings into Namespace second, so
// mutually-referencing primitive namespaces never need forward
// declarations.
func New(name string) *Type {
	return &Type{
		Name:      name,
		Namespace: map[string]*Type{},
		Fields:    map[string]*Type{},
	}
}

// Equal reports structural equality between two types. Two primitive
// types compare equal when their names match — primitive type objects are
// invariantly pointer-identical (spec.md §3 invariants) but user code may
// still construct an equivalent Type by name, e.g. across two independent
// symbol tables in tests.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Any || b.Any {
		return a.Any && b.Any
	}
	if a.Generic != nil || b.Generic != nil {
		if a.Generic == nil || b.Generic == nil {
			return false
		}
		if !Equal(a.Generic.Base, b.Generic.Base) || len(a.Generic.BoundArgs) != len(b.Generic.BoundArgs) {
			return false
		}
		for i := range a.Generic.BoundArgs {
			if a.Generic.BoundArgs[i].Name != b.Generic.BoundArgs[i].Name ||
				!Equal(a.Generic.BoundArgs[i].Type, b.Generic.BoundArgs[i].Type) {
				return false
			}
		}
		return true
	}
	return a.Name == b.Name
}

// String renders a Type for diagnostics, e.g. "i32" or "cpx<i32>" for a
// generic instantiation.
func (t *Type) String() string {
	if t == nil || t.Any {
		return "#any"
	}
	if t.Generic != nil {
		args := make([]string, len(t.Generic.BoundArgs))
		for i, a := range t.Generic.BoundArgs {
			args[i] = a.Type.String()
		}
		return t.Generic.Base.String() + "<" + strings.Join(args, ", ") + ">"
	}
	if t.Name != "" {
		return t.Name
	}
	return "#anonymous"
}

// LookupNamespace resolves a namespace member by name, returning (nil,
// false) if absent; Fields are not searched, LookupField does that
// (spec.md §4.4 "Member" rule: `::` consults Namespace, `.` consults Fields).
func (t *Type) LookupNamespace(name string) (*Type, bool) {
	if t == nil {
		return nil, false
	}
	m, ok := t.Namespace[name]
	return m, ok
}

// LookupField resolves an instance field by name.
func (t *Type) LookupField(name string) (*Type, bool) {
	if t == nil {
		return nil, false
	}
	f, ok := t.Fields[name]
	return f, ok
}

// ProcSignature describes a procedure type's parameters and return type,
// stashed in a Type's Generic.BoundArgs so Call type-checking can recover arity and
// per-parameter types without a separate ProcType shape.
type ProcSignature struct {
	ParamNames []string
	ParamTypes []*Type
	ReturnType *Type
	IsFn       bool
}

// NewProcType builds the Type a Procedure node type-checks to: a Type
// named "proc" or "fn" whose Generic binding carries the signature.
func NewProcType(sig ProcSignature) *Type {
	name := "proc"
	if sig.IsFn {
		name = "fn"
	}
	base := New(name)
	args := make([]TypeArg, 0, len(sig.ParamTypes)+1)
	for i, pt := range sig.ParamTypes {
		args = append(args, TypeArg{Name: sig.ParamNames[i], Type: pt})
	}
	args = append(args, TypeArg{Name: "#return", Type: sig.ReturnType})
	return &Type{
		Name: name,
		Generic: &GenericBinding{
			Base:      base,
			BoundArgs: args,
		},
	}
}

// Signature extracts the ProcSignature a NewProcType-built Type carries,
// if t is shaped that way.
func (t *Type) Signature() (ProcSignature, bool) {
	if t == nil || t.Generic == nil || len(t.Generic.BoundArgs) == 0 {
		return ProcSignature{}, false
	}
	args := t.Generic.BoundArgs
	ret := args[len(args)-1]
	if ret.Name != "#return" {
		return ProcSignature{}, false
	}
	sig := ProcSignature{ReturnType: ret.Type, IsFn: t.Name == "fn"}
	for _, a := range args[:len(args)-1] {
		sig.ParamNames = append(sig.ParamNames, a.Name)
		sig.ParamTypes = append(sig.ParamTypes, a.Type)
	}
	return sig, true
}
