package primitive

import (
	"math/big"

	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

// intWidths lists every integer primitive, fixed-width first (in
// declaration order, matching spec.md §4.6's table) then the two
// arbitrary-precision widths.
var intWidths = []value.Width{
	value.I8, value.I16, value.I32, value.I64, value.I128, value.ISize,
	value.U8, value.U16, value.U32, value.U64, value.U128, value.USize,
	value.IBig, value.UBig,
}

func init() {
	names := make([]string, len(intWidths))
	for i, w := range intWidths {
		names[i] = string(w)
	}
	registerNames(names...)
	registerInstaller(installInts)
}

// installInts builds every integer primitive's namespace. One function
// builds all fourteen widths rather than one function per width — the
// per-width difference is entirely data (the Width value and whether
// overflow-checking applies), not control flow, so spec.md §9's
// anti-duplication note applies here exactly as it does to value.Int's
// representation.
func installInts(r *Registry) {
	for _, w := range intWidths {
		installInt(r, w)
	}
}

func installInt(r *Registry, w value.Width) {
	ct := r.CheckType(string(w))
	vt := r.ValueType(string(w))
	ct.Namespace = map[string]*ztype.Type{}

	selfTy := ct
	boolTy := r.CheckType("bool")
	anyTy := ztype.AnyType
	typeTy := r.CheckType("type")

	binArith := binaryProcType(selfTy, selfTy)
	binCompare := binaryProcType(selfTy, boolTy)
	unary := unaryProcType(selfTy)
	typecast := typecastProcType(typeTy, anyTy)

	ct.Namespace["_add"] = binArith
	ct.Namespace["_sub"] = binArith
	ct.Namespace["_mul"] = binArith
	ct.Namespace["_div"] = binArith
	ct.Namespace["_rem"] = binArith
	ct.Namespace["_eq"] = binCompare
	ct.Namespace["_ne"] = binCompare
	ct.Namespace["_gt"] = binCompare
	ct.Namespace["_ge"] = binCompare
	ct.Namespace["_lt"] = binCompare
	ct.Namespace["_le"] = binCompare
	ct.Namespace["_un_plus"] = unary
	ct.Namespace["_un_minus"] = unary
	ct.Namespace["_typecast"] = typecast

	checked := func(n *big.Int) (value.Value, error) {
		if !value.InRange(w, n) {
			return nil, zerr.I002Overflow(string(w), n.String())
		}
		return value.NewInt(w, n), nil
	}

	vt.Namespace["_add"] = intBuiltin(w, "_add", func(a, b *big.Int) (value.Value, error) {
		return checked(new(big.Int).Add(a, b))
	})
	vt.Namespace["_sub"] = intBuiltin(w, "_sub", func(a, b *big.Int) (value.Value, error) {
		return checked(new(big.Int).Sub(a, b))
	})
	vt.Namespace["_mul"] = intBuiltin(w, "_mul", func(a, b *big.Int) (value.Value, error) {
		return checked(new(big.Int).Mul(a, b))
	})
	vt.Namespace["_div"] = intBuiltin(w, "_div", func(a, b *big.Int) (value.Value, error) {
		if b.Sign() == 0 {
			return nil, zerr.I003DivByZero()
		}
		q, _ := new(big.Int).QuoRem(a, b, new(big.Int))
		return checked(q)
	})
	vt.Namespace["_rem"] = intBuiltin(w, "_rem", func(a, b *big.Int) (value.Value, error) {
		if b.Sign() == 0 {
			return nil, zerr.I003DivByZero()
		}
		_, rem := new(big.Int).QuoRem(a, b, new(big.Int))
		return checked(rem)
	})
	vt.Namespace["_eq"] = intCompare(w, func(c int) bool { return c == 0 })
	vt.Namespace["_ne"] = intCompare(w, func(c int) bool { return c != 0 })
	vt.Namespace["_gt"] = intCompare(w, func(c int) bool { return c > 0 })
	vt.Namespace["_ge"] = intCompare(w, func(c int) bool { return c >= 0 })
	vt.Namespace["_lt"] = intCompare(w, func(c int) bool { return c < 0 })
	vt.Namespace["_le"] = intCompare(w, func(c int) bool { return c <= 0 })

	vt.Namespace["_un_plus"] = value.Proc{Name: string(w) + "._un_plus", Params: []string{"self"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Int)
			if !ok {
				return nil, zerr.I001("_un_plus", []string{args[0].String()})
			}
			return self, nil
		}}

	vt.Namespace["_un_minus"] = value.Proc{Name: string(w) + "._un_minus", Params: []string{"self"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Int)
			if !ok {
				return nil, zerr.I001("_un_minus", []string{args[0].String()})
			}
			if !w.Signed() {
				return nil, zerr.I001("_un_minus", []string{self.String()})
			}
			return checked(new(big.Int).Neg(self.V))
		}}

	vt.Namespace["_typecast"] = intTypecast(w)
}

// intBuiltin adapts a two-operand *big.Int arithmetic closure into a
// value.Proc whose Builtin unwraps the receiver (args[0]) and the other
// operand (args[1]) from their value.Int wrappers — the Member evaluation
// in package interp prepends the receiver, so every operator builtin sees
// it at args[0], matching _examples/original_source/src/types/value's
// `x[0]`/`x[1]` convention for its arith_opr_num! macro expansions.
func intBuiltin(w value.Width, name string, f func(a, b *big.Int) (value.Value, error)) value.Proc {
	return value.Proc{Name: string(w) + name, Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Int)
			other, ok2 := args[1].(value.Int)
			if !ok1 || !ok2 {
				return nil, zerr.I001(name, []string{args[0].String(), args[1].String()})
			}
			return f(self.V, other.V)
		}}
}

func intCompare(w value.Width, pred func(cmp int) bool) value.Proc {
	return value.Proc{Name: string(w) + "._cmp", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok1 := args[0].(value.Int)
			other, ok2 := args[1].(value.Int)
			if !ok1 || !ok2 {
				return nil, zerr.I001("_cmp", []string{args[0].String(), args[1].String()})
			}
			return value.Bool{V: pred(self.V.Cmp(other.V))}, nil
		}}
}

// intTypecast converts self to the runtime Value::Type named by args[1],
// per spec.md §4.6's typecast table: any integer width casts to any other
// integer width (range-checked), to a float width, to bool (nonzero), or
// to str (decimal rendering).
func intTypecast(w value.Width) value.Proc {
	return value.Proc{Name: string(w) + "._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Int)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[0].String()})
			}
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			switch target.Name {
			case "bool":
				return value.Bool{V: self.V.Sign() != 0}, nil
			case "str":
				return value.Str{V: self.V.String()}, nil
			case "f16", "f32", "f64":
				f := new(big.Float).SetInt(self.V)
				out, _ := f.Float64()
				return value.Float{Width: value.Width(target.Name), V: out}, nil
			default:
				if tw := value.Width(target.Name); isIntWidth(tw) {
					if !value.InRange(tw, self.V) {
						return nil, zerr.I002Overflow(target.Name, self.V.String())
					}
					return value.NewInt(tw, self.V), nil
				}
				return nil, zerr.I004BadTypecast(string(w), target.Name)
			}
		}}
}

func isIntWidth(w value.Width) bool {
	for _, iw := range intWidths {
		if iw == w {
			return true
		}
	}
	return false
}

func binaryProcType(otherTy, returnTy *ztype.Type) *ztype.Type {
	return ztype.NewProcType(ztype.ProcSignature{
		ParamNames: []string{"other"}, ParamTypes: []*ztype.Type{otherTy}, ReturnType: returnTy, IsFn: true,
	})
}

func unaryProcType(returnTy *ztype.Type) *ztype.Type {
	return ztype.NewProcType(ztype.ProcSignature{
		ParamNames: nil, ParamTypes: nil, ReturnType: returnTy, IsFn: true,
	})
}

func typecastProcType(targetTy, returnTy *ztype.Type) *ztype.Type {
	return ztype.NewProcType(ztype.ProcSignature{
		ParamNames: []string{"target"}, ParamTypes: []*ztype.Type{targetTy}, ReturnType: returnTy, IsFn: true,
	})
}
