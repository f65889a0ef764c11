package primitive

import (
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

func init() {
	registerNames("type")
	registerInstaller(installType)
}

// installType wires the "type" primitive itself — the type of every
// primitive/class Value::Type reference (spec.md §3, a Value can itself
// denote a type, e.g. the `i32` in `x::i32`). Its only namespace members
// are equality (by name) and a _typecast to str.
func installType(r *Registry) {
	ct := r.CheckType("type")
	vt := r.ValueType("type")
	ct.Namespace = map[string]*ztype.Type{}

	typeTy := ct
	boolTy := r.CheckType("bool")
	anyTy := ztype.AnyType

	ct.Namespace["_eq"] = binaryProcType(typeTy, boolTy)
	ct.Namespace["_ne"] = binaryProcType(typeTy, boolTy)
	ct.Namespace["_typecast"] = typecastProcType(typeTy, anyTy)

	vt.Namespace["_eq"] = value.Proc{Name: "type._eq", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Type)
			other, ok2 := args[1].(value.Type)
			if !ok1 || !ok2 {
				return nil, zerr.I001("_eq", []string{args[0].String(), args[1].String()})
			}
			return value.Bool{V: self.Name == other.Name}, nil
		}}
	vt.Namespace["_ne"] = value.Proc{Name: "type._ne", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Type)
			other, ok2 := args[1].(value.Type)
			if !ok1 || !ok2 {
				return nil, zerr.I001("_ne", []string{args[0].String(), args[1].String()})
			}
			return value.Bool{V: self.Name != other.Name}, nil
		}}
	vt.Namespace["_typecast"] = value.Proc{Name: "type._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[0].String()})
			}
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			if target.Name == "str" {
				return value.Str{V: self.Name}, nil
			}
			return nil, zerr.I004BadTypecast("type", target.Name)
		}}
}
