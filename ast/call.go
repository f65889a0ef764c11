package ast

// Call is a procedure invocation, either written with parentheses
// ("f(a, b)", parser pass 6) or as an unparenthesised call ("f a, b",
// parser pass 13). Desugaring lowers every UnaryOpr/BinaryOpr into a Call
// of a Member (spec.md §4.3), so by the time the type checker and
// interpreter run, operators are ordinary Calls too.
type Call struct {
	Base
	Callee Node
	Args   []Node
}

func (*Call) Kind() string { return "Call" }

// AccessKind distinguishes the three member-access operators spec.md §3
// lists: "." (field access), "::" (namespace access), ":." (method access
// bound to the instance, i.e. `recv:.method(args)` is sugar for
// `recv::method(recv, args)`).
type AccessKind int

const (
	AccessField AccessKind = iota
	AccessNamespace
	AccessMethod
)

// Member is `parent.name`, `parent::name`, or `parent:.name` (spec.md
// §4.2 pass 6, §4.4 "Member"). It is the callee half of a method call
// once parser pass 13 folds on a trailing argument list.
type Member struct {
	Base
	Parent Node
	Name   string
	Access AccessKind
}

func (*Member) Kind() string { return "Member" }
