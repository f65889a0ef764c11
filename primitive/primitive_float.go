package primitive

import (
	"math"
	"math/big"

	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

var floatWidths = []value.Width{value.F16, value.F32, value.F64}

func init() {
	names := make([]string, len(floatWidths))
	for i, w := range floatWidths {
		names[i] = string(w)
	}
	registerNames(names...)
	registerInstaller(installFloats)
}

func installFloats(r *Registry) {
	for _, w := range floatWidths {
		installFloat(r, w)
	}
}

func installFloat(r *Registry, w value.Width) {
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

	round := roundFor(w)

	vt.Namespace["_add"] = floatBuiltin(w, "_add", func(a, b float64) float64 { return round(a + b) })
	vt.Namespace["_sub"] = floatBuiltin(w, "_sub", func(a, b float64) float64 { return round(a - b) })
	vt.Namespace["_mul"] = floatBuiltin(w, "_mul", func(a, b float64) float64 { return round(a * b) })
	vt.Namespace["_div"] = value.Proc{Name: string(w) + "._div", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, other, ok := floatOperands(args)
			if !ok {
				return nil, zerr.I001("_div", []string{args[0].String(), args[1].String()})
			}
			if other.V == 0 {
				return nil, zerr.I003DivByZero()
			}
			return value.Float{Width: w, V: round(self.V / other.V)}, nil
		}}
	vt.Namespace["_rem"] = value.Proc{Name: string(w) + "._rem", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, other, ok := floatOperands(args)
			if !ok {
				return nil, zerr.I001("_rem", []string{args[0].String(), args[1].String()})
			}
			if other.V == 0 {
				return nil, zerr.I003DivByZero()
			}
			return value.Float{Width: w, V: round(math.Mod(self.V, other.V))}, nil
		}}

	vt.Namespace["_eq"] = floatCompare(w, func(c int) bool { return c == 0 })
	vt.Namespace["_ne"] = floatCompare(w, func(c int) bool { return c != 0 })
	vt.Namespace["_gt"] = floatCompare(w, func(c int) bool { return c > 0 })
	vt.Namespace["_ge"] = floatCompare(w, func(c int) bool { return c >= 0 })
	vt.Namespace["_lt"] = floatCompare(w, func(c int) bool { return c < 0 })
	vt.Namespace["_le"] = floatCompare(w, func(c int) bool { return c <= 0 })

	vt.Namespace["_un_plus"] = value.Proc{Name: string(w) + "._un_plus", Params: []string{"self"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Float)
			if !ok {
				return nil, zerr.I001("_un_plus", []string{args[0].String()})
			}
			return self, nil
		}}
	vt.Namespace["_un_minus"] = value.Proc{Name: string(w) + "._un_minus", Params: []string{"self"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Float)
			if !ok {
				return nil, zerr.I001("_un_minus", []string{args[0].String()})
			}
			return value.Float{Width: w, V: round(-self.V)}, nil
		}}

	vt.Namespace["_typecast"] = floatTypecast(w, round)
}

// roundFor returns the rounding function that projects an f64 computation
// back onto width w's representable precision. F32 rounds through Go's
// native float32; F16 has no native Go type, so it rounds through the
// binary16 bit pattern package float16.go implements.
func roundFor(w value.Width) func(float64) float64 {
	switch w {
	case value.F32:
		return func(f float64) float64 { return float64(float32(f)) }
	case value.F16:
		return roundFloat16
	default:
		return func(f float64) float64 { return f }
	}
}

func floatOperands(args []value.Value) (value.Float, value.Float, bool) {
	self, ok1 := args[0].(value.Float)
	other, ok2 := args[1].(value.Float)
	return self, other, ok1 && ok2
}

func floatBuiltin(w value.Width, name string, f func(a, b float64) float64) value.Proc {
	return value.Proc{Name: string(w) + name, Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, other, ok := floatOperands(args)
			if !ok {
				return nil, zerr.I001(name, []string{args[0].String(), args[1].String()})
			}
			return value.Float{Width: w, V: f(self.V, other.V)}, nil
		}}
}

func floatCompare(w value.Width, pred func(cmp int) bool) value.Proc {
	return value.Proc{Name: string(w) + "._cmp", Params: []string{"self", "other"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, other, ok := floatOperands(args)
			if !ok {
				return nil, zerr.I001("_cmp", []string{args[0].String(), args[1].String()})
			}
			c := 0
			switch {
			case self.V < other.V:
				c = -1
			case self.V > other.V:
				c = 1
			}
			return value.Bool{V: pred(c)}, nil
		}}
}

func floatTypecast(w value.Width, round func(float64) float64) value.Proc {
	return value.Proc{Name: string(w) + "._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Float)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[0].String()})
			}
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			switch target.Name {
			case "bool":
				return value.Bool{V: self.V != 0}, nil
			case "str":
				return value.Str{V: self.String()}, nil
			case "f16", "f32", "f64":
				return value.Float{Width: value.Width(target.Name), V: roundFor(value.Width(target.Name))(self.V)}, nil
			default:
				if tw := value.Width(target.Name); isIntWidth(tw) {
					n, _ := big.NewFloat(self.V).Int(nil)
					if !value.InRange(tw, n) {
						return nil, zerr.I002Overflow(target.Name, n.String())
					}
					return value.NewInt(tw, n), nil
				}
				return nil, zerr.I004BadTypecast(string(w), target.Name)
			}
		}}
}
