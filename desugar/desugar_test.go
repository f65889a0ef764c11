package desugar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/interp"
	"github.com/zyxt-lang/zyxt/lexer"
	"github.com/zyxt-lang/zyxt/parser"
	"github.com/zyxt-lang/zyxt/typecheck"
)

func desugarSrc(t *testing.T, src string) []ast.Node {
	t.Helper()
	toks, lerr := lexer.Tokenize("test.zx", src)
	require.Nil(t, lerr)
	nodes, perr := parser.ParseProgram(toks)
	require.Nil(t, perr)
	out, derr := New().DesugarAll(nodes)
	require.Nil(t, derr)
	return out
}

func TestDesugarBinaryOprLowersToMethodCall(t *testing.T) {
	nodes := desugarSrc(t, "2 + 3")
	require.Len(t, nodes, 1)
	call, ok := nodes[0].(*ast.Call)
	require.True(t, ok)
	member, ok := call.Callee.(*ast.Member)
	require.True(t, ok)
	require.Equal(t, "_add", member.Name)
	require.Equal(t, ast.AccessMethod, member.Access)
	require.Len(t, call.Args, 1)
}

func TestDesugarUnaryOprLowersToMethodCall(t *testing.T) {
	nodes := desugarSrc(t, "!true")
	call, ok := nodes[0].(*ast.Call)
	require.True(t, ok)
	member, ok := call.Callee.(*ast.Member)
	require.True(t, ok)
	require.Equal(t, "_not", member.Name)
	require.Empty(t, call.Args)
}

func TestDesugarTypecastStaysBinaryOpr(t *testing.T) {
	nodes := desugarSrc(t, "2 :: str")
	bin, ok := nodes[0].(*ast.BinaryOpr)
	require.True(t, ok)
	require.Equal(t, "::", bin.Operator)
}

func TestDesugarPreprocessReplacesWithLiteral(t *testing.T) {
	nodes := desugarSrc(t, "pre { 2 + 3 }")
	lit, ok := nodes[0].(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "5", lit.Value.String())
}

func TestDesugarRecursesIntoBlockAndIf(t *testing.T) {
	nodes := desugarSrc(t, "if 1 + 1 { 2 } else { 3 }")
	ifNode, ok := nodes[0].(*ast.If)
	require.True(t, ok)
	_, ok = ifNode.Branches[0].Cond.(*ast.Call)
	require.True(t, ok)
}

func TestDesugaredTreeTypeChecksAndEvaluates(t *testing.T) {
	nodes := desugarSrc(t, "x := 2 + 3\nx")
	checker := typecheck.NewChecker()
	ty, terr := checker.CheckAll(nodes)
	require.Nil(t, terr)
	require.Equal(t, "i32", ty.String())

	interpreter := interp.New()
	v, ierr := interpreter.EvalAll(nodes)
	require.Nil(t, ierr)
	require.Equal(t, "5", v.String())
}
