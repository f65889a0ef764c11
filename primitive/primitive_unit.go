package primitive

import (
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

func init() {
	registerNames("unit")
	registerInstaller(installUnit)
}

// installUnit wires unit's namespace: equality against another unit (always
// true/false trivially) and a _typecast to str ("()").
func installUnit(r *Registry) {
	ct := r.CheckType("unit")
	vt := r.ValueType("unit")
	ct.Namespace = map[string]*ztype.Type{}

	unitTy := ct
	boolTy := r.CheckType("bool")
	anyTy := ztype.AnyType
	typeTy := r.CheckType("type")

	ct.Namespace["_eq"] = binaryProcType(unitTy, boolTy)
	ct.Namespace["_ne"] = binaryProcType(unitTy, boolTy)
	ct.Namespace["_typecast"] = typecastProcType(typeTy, anyTy)

	vt.Namespace["_eq"] = value.Proc{Name: "unit._eq", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			_, ok1 := args[0].(value.Unit)
			_, ok2 := args[1].(value.Unit)
			return value.Bool{V: ok1 && ok2}, nil
		}}
	vt.Namespace["_ne"] = value.Proc{Name: "unit._ne", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			_, ok1 := args[0].(value.Unit)
			_, ok2 := args[1].(value.Unit)
			return value.Bool{V: !(ok1 && ok2)}, nil
		}}
	vt.Namespace["_typecast"] = value.Proc{Name: "unit._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			if target.Name == "str" {
				return value.Str{V: "()"}, nil
			}
			return nil, zerr.I004BadTypecast("unit", target.Name)
		}}
}
