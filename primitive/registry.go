// Package primitive implements the compile-time registry of Zyxt's
// built-in types (spec.md §4.6): the twelve fixed-width integer widths,
// two arbitrary-precision integer types, three float widths, bool, str,
// type, unit, and proc. Every registered type carries a namespace of
// operator methods (_add, _sub, ..., _typecast) the desugarer's
// Call-of-Member lowering dispatches through — spec.md §9 calls this out
// as the point of the whole design: "adding a new operator for a user type
// means populating a namespace entry, not changing the interpreter."
//
// Construction follows the two-phase scheme spec.md §9 recommends to
// avoid cyclic construction (a type's namespace can reference other
// primitive types, e.g. i32's _typecast table mentions all eleven other
// integer widths): build first makes an empty-namespace skeleton for every
// type name, then a second pass installs the operator/typecast bindings,
// so no primitive's construction ever needs another primitive that isn't
// built yet.
//
// This mirrors, at the package-fan-out level, the teacher's std/ package
// (one file per standard-library concern: std/math.go, std/strings.go,
// std/arrays.go, ...) and objects/math.go: one file per primitive family
// here (primitive_int.go, primitive_float.go, primitive_bool.go, ...)
// rather than one monolithic registry file.
package primitive

import (
	"sync"

	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/ztype"
)

var initOnce sync.Once

// Registry holds both phases' views of every primitive type, keyed by
// name.
type Registry struct {
	checkTypes map[string]*ztype.Type
	valueTypes map[string]*value.Type
}

var global *Registry

// Global returns the process-wide Registry, building it on first access
// (spec.md §5, "Primitive type objects are created once on first access
// and are immutable thereafter... Implementers may use lazy one-time
// initialisation"). Go's package-level sync.Once below makes this safe
// under concurrent access even though spec.md §5 notes the interpreter
// itself is single-threaded; this repository's REPL has no server mode
// and runs on one goroutine.
func Global() *Registry {
	initOnce.Do(func() {
		global = build()
	})
	return global
}

func build() *Registry {
	r := &Registry{
		checkTypes: map[string]*ztype.Type{},
		valueTypes: map[string]*value.Type{},
	}
	for _, name := range allNames {
		r.checkTypes[name] = ztype.New(name)
		r.valueTypes[name] = &value.Type{Name: name, Namespace: map[string]value.Value{}, Fields: map[string]*ztype.Type{}}
	}
	for _, install := range installers {
		install(r)
	}
	return r
}

// allNames lists every primitive type name; populated by each family's
// init-time append (see primitive_int.go, primitive_float.go, ...).
var allNames []string

// installers runs once per family in the second construction phase.
var installers []func(*Registry)

func registerNames(names ...string) {
	allNames = append(allNames, names...)
}

func registerInstaller(f func(*Registry)) {
	installers = append(installers, f)
}

// CheckType returns the type-check-phase Type for a primitive name.
func (r *Registry) CheckType(name string) *ztype.Type { return r.checkTypes[name] }

// ValueType returns the interpret-phase Type (namespace of Values) for a
// primitive name.
func (r *Registry) ValueType(name string) *value.Type { return r.valueTypes[name] }

// CheckSymbols returns every primitive name bound to its type-check Type,
// for pre-populating the outermost type-check symbol-table frame (spec.md
// §3 invariant: "Outermost frame is pre-populated with primitive type
// bindings").
func (r *Registry) CheckSymbols() map[string]*ztype.Type {
	out := make(map[string]*ztype.Type, len(r.checkTypes))
	for k, v := range r.checkTypes {
		out[k] = v
	}
	return out
}

// ValueSymbols returns every primitive name bound to a value.Value naming
// that type, for pre-populating the outermost interpret symbol-table
// frame. Referencing the primitive name as an expression (e.g. `i32` in
// `x::i32`) evaluates to this Value::Type.
func (r *Registry) ValueSymbols() map[string]value.Value {
	out := make(map[string]value.Value, len(r.valueTypes))
	for k, v := range r.valueTypes {
		out[k] = *v
	}
	return out
}

// TypeNameOf returns the primitive type name a runtime Value belongs to,
// used to resolve method-style member access (`recv:.method`, and every
// desugared operator Call) against the right namespace.
func TypeNameOf(v value.Value) string {
	switch val := v.(type) {
	case value.Unit:
		return "unit"
	case value.Bool:
		return "bool"
	case value.Int:
		return string(val.Width)
	case value.Float:
		return string(val.Width)
	case value.Str:
		return "str"
	case value.Type:
		return "type"
	case value.Proc:
		return "proc"
	default:
		return ""
	}
}
