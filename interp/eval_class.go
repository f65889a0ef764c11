package interp

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/symtable"
	"github.com/zyxt-lang/zyxt/value"
	"github.com/zyxt-lang/zyxt/zerr"
)

// evalClass builds a constructor for n and binds it, const, to the class
// name in the current frame (spec.md §4.4 "Class" only covers structural
// validation; instantiation itself is a supplemented feature — see
// DESIGN.md). Every body statement is a field declaration (T013 already
// enforced this at type-check time); a `_new` field holding a Procedure
// becomes the custom constructor body, run in a frame pre-seeded with the
// other fields' default values so it can override them by name with
// ordinary Set statements. Without `_new`, the class header's own
// `| args |` list overrides same-named field defaults positionally.
func (ip *Interp) evalClass(n *ast.Class) (value.Value, *zerr.Error) {
	var fieldDecls []*ast.Declare
	var newProc *ast.Procedure
	for _, stmt := range n.Body.Statements {
		decl, ok := stmt.(*ast.Declare)
		if !ok {
			continue
		}
		if decl.Name == "_new" {
			if proc, ok := decl.Value.(*ast.Procedure); ok {
				newProc = proc
			}
			continue
		}
		fieldDecls = append(fieldDecls, decl)
	}

	className := n.Name
	params := n.Params
	ctor := value.Proc{
		Name: className,
		IsFn: true,
		Builtin: func(args []value.Value) (value.Value, error) {
			ip.Tab.Push(symtable.Normal)
			defer ip.Tab.Pop()

			fields := map[string]value.Value{}
			for _, decl := range fieldDecls {
				v, err := ip.Eval(decl.Value)
				if err != nil {
					return nil, err
				}
				ip.Tab.Declare(decl.Name, v, false)
				fields[decl.Name] = v
			}

			switch {
			case newProc != nil:
				ip.Tab.Push(symtable.Function)
				for i, p := range newProc.Params {
					var av value.Value = value.Unit{}
					if i < len(args) {
						av = args[i]
					}
					ip.Tab.Declare(p.Name, av, false)
				}
				if _, err := ip.evalBlock(newProc.Body); err != nil {
					ip.Tab.Pop()
					return nil, err
				}
				ip.Tab.Pop()
				for name := range fields {
					if entry, ok := ip.Tab.Lookup(name); ok {
						fields[name] = entry.Value
					}
				}
			case len(params) > 0:
				for i, p := range params {
					if i < len(args) {
						fields[p.Name] = args[i]
					}
				}
			}

			return value.Instance{ClassName: className, Fields: fields}, nil
		},
	}

	ip.Tab.Declare(className, ctor, true)
	return ctor, nil
}
