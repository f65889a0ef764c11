package primitive

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

func init() {
	registerNames("str")
	registerInstaller(installStr)
}

// installStr wires str's namespace: concatenation via `..` (_concat),
// repetition via `*` against an integer count (spec.md §4.6, "string
// multiplication by an integer: repeat; negative signed count is an
// error"), lexicographic comparison, and typecasts to every numeric width
// plus bool.
func installStr(r *Registry) {
	ct := r.CheckType("str")
	vt := r.ValueType("str")
	ct.Namespace = map[string]*ztype.Type{}

	strTy := ct
	boolTy := r.CheckType("bool")
	anyTy := ztype.AnyType
	typeTy := r.CheckType("type")

	ct.Namespace["_concat"] = binaryProcType(strTy, strTy)
	ct.Namespace["_eq"] = binaryProcType(strTy, boolTy)
	ct.Namespace["_ne"] = binaryProcType(strTy, boolTy)
	ct.Namespace["_gt"] = binaryProcType(strTy, boolTy)
	ct.Namespace["_ge"] = binaryProcType(strTy, boolTy)
	ct.Namespace["_lt"] = binaryProcType(strTy, boolTy)
	ct.Namespace["_le"] = binaryProcType(strTy, boolTy)
	ct.Namespace["_typecast"] = typecastProcType(typeTy, anyTy)
	// _mul's other operand is any integer width; typed Any here since the
	// type checker has no single integer "other" type to name.
	ct.Namespace["_mul"] = binaryProcType(anyTy, strTy)

	vt.Namespace["_concat"] = value.Proc{Name: "str._concat", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Str)
			other, ok2 := args[1].(value.Str)
			if !ok1 || !ok2 {
				return nil, zerr.I001("_concat", []string{args[0].String(), args[1].String()})
			}
			return value.Str{V: self.V + other.V}, nil
		}}

	vt.Namespace["_mul"] = value.Proc{Name: "str._mul", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Str)
			n, ok2 := args[1].(value.Int)
			if !ok1 || !ok2 {
				return nil, zerr.I001("_mul", []string{args[0].String(), args[1].String()})
			}
			if n.Width.Signed() && n.V.Sign() < 0 {
				return nil, zerr.I001("_mul", []string{self.V, n.String()})
			}
			return value.Str{V: strings.Repeat(self.V, int(n.V.Int64()))}, nil
		}}

	vt.Namespace["_eq"] = strCompare(func(c int) bool { return c == 0 })
	vt.Namespace["_ne"] = strCompare(func(c int) bool { return c != 0 })
	vt.Namespace["_gt"] = strCompare(func(c int) bool { return c > 0 })
	vt.Namespace["_ge"] = strCompare(func(c int) bool { return c >= 0 })
	vt.Namespace["_lt"] = strCompare(func(c int) bool { return c < 0 })
	vt.Namespace["_le"] = strCompare(func(c int) bool { return c <= 0 })

	vt.Namespace["_typecast"] = value.Proc{Name: "str._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Str)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[0].String()})
			}
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			switch {
			case target.Name == "str":
				return self, nil
			case target.Name == "bool":
				return value.Bool{V: self.V == "true"}, nil
			case isIntWidth(value.Width(target.Name)):
				n, ok := new(big.Int).SetString(strings.TrimSpace(self.V), 10)
				if !ok {
					return nil, zerr.I004BadTypecast("str", target.Name)
				}
				if !value.InRange(value.Width(target.Name), n) {
					return nil, zerr.I002Overflow(target.Name, n.String())
				}
				return value.NewInt(value.Width(target.Name), n), nil
			case target.Name == "f16" || target.Name == "f32" || target.Name == "f64":
				f, err := strconv.ParseFloat(strings.TrimSpace(self.V), 64)
				if err != nil {
					return nil, zerr.I004BadTypecast("str", target.Name)
				}
				return value.Float{Width: value.Width(target.Name), V: roundFor(value.Width(target.Name))(f)}, nil
			default:
				return nil, zerr.I004BadTypecast("str", target.Name)
			}
		}}
}

func strCompare(pred func(cmp int) bool) value.Proc {
	return value.Proc{Name: "str._cmp", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Str)
			other, ok2 := args[1].(value.Str)
			if !ok1 || !ok2 {
				return nil, zerr.I001("_cmp", []string{args[0].String(), args[1].String()})
			}
			return value.Bool{V: pred(strings.Compare(self.V, other.V))}, nil
		}}
}
