package primitive

import (
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

func init() {
	registerNames("bool")
	registerInstaller(installBool)
}

func installBool(r *Registry) {
	ct := r.CheckType("bool")
	vt := r.ValueType("bool")
	ct.Namespace = map[string]*ztype.Type{}

	boolTy := ct
	anyTy := ztype.AnyType
	typeTy := r.CheckType("type")

	ct.Namespace["_eq"] = binaryProcType(boolTy, boolTy)
	ct.Namespace["_ne"] = binaryProcType(boolTy, boolTy)
	ct.Namespace["_not"] = unaryProcType(boolTy)
	ct.Namespace["_typecast"] = typecastProcType(typeTy, anyTy)

	vt.Namespace["_eq"] = boolBuiltin("_eq", func(a, b bool) bool { return a == b })
	vt.Namespace["_ne"] = boolBuiltin("_ne", func(a, b bool) bool { return a != b })
	vt.Namespace["_not"] = value.Proc{Name: "bool._not", Params: []string{"self"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Bool)
			if !ok {
				return nil, zerr.I001("_not", []string{args[0].String()})
			}
			return value.Bool{V: !self.V}, nil
		}}
	vt.Namespace["_typecast"] = value.Proc{Name: "bool._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Bool)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[0].String()})
			}
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			switch {
			case target.Name == "str":
				return value.Str{V: self.String()}, nil
			case isIntWidth(value.Width(target.Name)):
				n := int64(0)
				if self.V {
					n = 1
				}
				return value.IntFromInt64(value.Width(target.Name), n), nil
			default:
				return nil, zerr.I004BadTypecast("bool", target.Name)
			}
		}}
}

func boolBuiltin(name string, f func(a, b bool) bool) value.Proc {
	return value.Proc{Name: "bool" + name, Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Bool)
			other, ok2 := args[1].(value.Bool)
			if !ok1 || !ok2 {
				return nil, zerr.I001(name, []string{args[0].String(), args[1].String()})
			}
			return value.Bool{V: f(self.V, other.V)}, nil
		}}
}
