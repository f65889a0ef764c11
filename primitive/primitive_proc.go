package primitive

import (
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

func init() {
	registerNames("proc")
	registerInstaller(installProc)
}

// installProc wires the "proc" primitive — the type every Procedure/fn
// value belongs to. Only a _typecast to str (rendering as "<proc name>")
// is defined; procs are not otherwise comparable (spec.md is silent on
// proc equality, so it is left unimplemented rather than guessed at).
func installProc(r *Registry) {
	ct := r.CheckType("proc")
	vt := r.ValueType("proc")
	ct.Namespace = map[string]*ztype.Type{}

	typeTy := r.CheckType("type")
	anyTy := ztype.AnyType
	ct.Namespace["_typecast"] = typecastProcType(typeTy, anyTy)

	vt.Namespace["_typecast"] = value.Proc{Name: "proc._typecast", Params: []string{"self", "target"}, IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			self, ok := args[0].(value.Proc)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[0].String()})
			}
			target, ok := args[1].(value.Type)
			if !ok {
				return nil, zerr.I001("_typecast", []string{args[1].String()})
			}
			if target.Name == "str" {
				return value.Str{V: self.String()}, nil
			}
			return nil, zerr.I004BadTypecast("proc", target.Name)
		}}
}
