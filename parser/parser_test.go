package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/lexer"
	"github.com/zyxt-lang/zyxt/token"
)

func parseOne(t *testing.T, src string) ast.Node {
	t.Helper()
	toks, lerr := lexer.Tokenize("test.zx", src)
	require.Nil(t, lerr)
	nodes, perr := ParseProgram(toks)
	require.Nil(t, perr)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestParserArithmeticPrecedence(t *testing.T) {
	node := parseOne(t, "2 + 3 * 4")
	bin, ok := node.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)

	left, ok := bin.Left.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "2", left.Value.String())

	right, ok := bin.Right.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "*", right.Operator)
}

func TestParserLeftAssociativity(t *testing.T) {
	node := parseOne(t, "8 - 3 - 2")
	top, ok := node.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "-", top.Operator)

	inner, ok := top.Left.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "-", inner.Operator)

	_, ok = top.Right.(*ast.Literal)
	require.True(t, ok)
}

func TestParserPrefixSign(t *testing.T) {
	node := parseOne(t, "3 + -4")
	bin, ok := node.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)

	unary, ok := bin.Right.(*ast.UnaryOpr)
	require.True(t, ok)
	require.Equal(t, "-", unary.Operator)
}

func TestParserDoublePrefixSign(t *testing.T) {
	node := parseOne(t, "- -x")
	outer, ok := node.(*ast.UnaryOpr)
	require.True(t, ok)
	require.Equal(t, "-", outer.Operator)
	inner, ok := outer.Operand.(*ast.UnaryOpr)
	require.True(t, ok)
	require.Equal(t, "-", inner.Operator)
	_, ok = inner.Operand.(*ast.Ident)
	require.True(t, ok)
}

func TestParserNot(t *testing.T) {
	node := parseOne(t, "!ready")
	un, ok := node.(*ast.UnaryOpr)
	require.True(t, ok)
	require.Equal(t, "!", un.Operator)
	ident, ok := un.Operand.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "ready", ident.Name)
}

func TestParserDeclare(t *testing.T) {
	node := parseOne(t, "const x: i32 := 5")
	decl, ok := node.(*ast.Declare)
	require.True(t, ok)
	require.Equal(t, "x", decl.Name)
	require.NotNil(t, decl.TypeAnnotation)
	require.True(t, decl.HasFlag(token.FlagConst))
	lit, ok := decl.Value.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "5", lit.Value.String())
}

func TestParserCompoundAssign(t *testing.T) {
	node := parseOne(t, "x += 1")
	set, ok := node.(*ast.Set)
	require.True(t, ok)
	target, ok := set.Target.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "x", target.Name)
	bin, ok := set.Value.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
}

func TestParserIfElse(t *testing.T) {
	node := parseOne(t, "if a { ret 1 } elif b { ret 2 } else { ret 3 }")
	ifNode, ok := node.(*ast.If)
	require.True(t, ok)
	require.Len(t, ifNode.Branches, 3)
	require.NotNil(t, ifNode.Branches[0].Cond)
	require.NotNil(t, ifNode.Branches[1].Cond)
	require.Nil(t, ifNode.Branches[2].Cond)
}

func TestParserProcedure(t *testing.T) {
	node := parseOne(t, "fn |a: i32, b: i32|: i32 { ret a + b }")
	proc, ok := node.(*ast.Procedure)
	require.True(t, ok)
	require.True(t, proc.IsFn)
	require.Len(t, proc.Params, 2)
	require.Equal(t, "a", proc.Params[0].Name)
	require.NotNil(t, proc.ReturnType)
	require.Len(t, proc.Body.Statements, 1)
}

func TestParserParenthesisedCall(t *testing.T) {
	node := parseOne(t, "add(1, 2)")
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "add", callee.Name)
	require.Len(t, call.Args, 2)
}

func TestParserUnparenthesisedCall(t *testing.T) {
	node := parseOne(t, "print x, y")
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "print", callee.Name)
	require.Len(t, call.Args, 2)
}

func TestParserMemberAccessKinds(t *testing.T) {
	field := parseOne(t, "p.x")
	m, ok := field.(*ast.Member)
	require.True(t, ok)
	require.Equal(t, ast.AccessField, m.Access)

	ns := parseOne(t, "i64::_max")
	m, ok = ns.(*ast.Member)
	require.True(t, ok)
	require.Equal(t, ast.AccessNamespace, m.Access)

	method := parseOne(t, "p:.speak()")
	call, ok := method.(*ast.Call)
	require.True(t, ok)
	m, ok = call.Callee.(*ast.Member)
	require.True(t, ok)
	require.Equal(t, ast.AccessMethod, m.Access)
	require.Equal(t, "speak", m.Name)
}

func TestParserDelete(t *testing.T) {
	node := parseOne(t, "del a, b")
	del, ok := node.(*ast.Delete)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, del.Names)
}

func TestParserTrailingCommentOnExpression(t *testing.T) {
	node := parseOne(t, "1 + 1 // note")
	bin, ok := node.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
}

func TestParserTrailingCommentOnDeclare(t *testing.T) {
	node := parseOne(t, "x := 1 // note")
	decl, ok := node.(*ast.Declare)
	require.True(t, ok)
	require.Equal(t, "x", decl.Name)
	lit, ok := decl.Value.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "1", lit.Value.String())
}

func TestParserStandaloneCommentStatement(t *testing.T) {
	node := parseOne(t, "// just a comment")
	_, ok := node.(*ast.Comment)
	require.True(t, ok)
}

func TestParserGroupedExpression(t *testing.T) {
	node := parseOne(t, "(1 + 2) * 3")
	bin, ok := node.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "*", bin.Operator)
	grouped, ok := bin.Left.(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "+", grouped.Operator)
}
