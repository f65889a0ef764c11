package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyxt-lang/zyxt/desugar"
	"github.com/zyxt-lang/zyxt/interp"
	"github.com/zyxt-lang/zyxt/lexer"
	"github.com/zyxt-lang/zyxt/parser"
	"github.com/zyxt-lang/zyxt/value"
)

func evalSrc(t *testing.T, src string) (value.Value, *interp.Interp) {
	t.Helper()
	toks, lerr := lexer.Tokenize("test.zx", src)
	require.Nil(t, lerr)
	nodes, perr := parser.ParseProgram(toks)
	require.Nil(t, perr)
	nodes, derr := desugar.New().DesugarAll(nodes)
	require.Nil(t, derr)
	ip := interp.New()
	v, ierr := ip.EvalAll(nodes)
	require.Nil(t, ierr)
	return v, ip
}

func TestEvalDeclareAndIdent(t *testing.T) {
	v, _ := evalSrc(t, "x := 2\nx")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "2", i.V.String())
}

func TestEvalSet(t *testing.T) {
	v, _ := evalSrc(t, "x := 2\nx = 5\nx")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "5", i.V.String())
}

func TestEvalSetUndeclaredFails(t *testing.T) {
	toks, lerr := lexer.Tokenize("test.zx", "x = 2")
	require.Nil(t, lerr)
	nodes, perr := parser.ParseProgram(toks)
	require.Nil(t, perr)
	ip := interp.New()
	_, ierr := ip.EvalAll(nodes)
	require.NotNil(t, ierr)
	require.Equal(t, "I001", ierr.Code)
}

func TestEvalIfTrueBranch(t *testing.T) {
	v, _ := evalSrc(t, "if true { 1 } else { 2 }")
	b, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "1", b.V.String())
}

func TestEvalIfFalseBranch(t *testing.T) {
	v, _ := evalSrc(t, "if false { 1 } else { 2 }")
	b, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "2", b.V.String())
}

func TestEvalIfNoMatchYieldsUnit(t *testing.T) {
	v, _ := evalSrc(t, "if false { 1 }")
	_, ok := v.(value.Unit)
	require.True(t, ok)
}

func TestEvalProcedureCallIdentity(t *testing.T) {
	v, _ := evalSrc(t, "ident := fn |a| { ret a }\nident(5)")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "5", i.V.String())
}

func TestEvalDeferRunsAfterBlockBody(t *testing.T) {
	v, ip := evalSrc(t, "log := 0\n{ defer log = 1\nlog }")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "0", i.V.String())
	entry, ok := ip.Tab.Lookup("log")
	require.True(t, ok)
	require.Equal(t, "1", entry.Value.(value.Int).V.String())
}

func TestEvalDeleteRemovesBinding(t *testing.T) {
	_, ip := evalSrc(t, "x := 1\ndel x")
	_, ok := ip.Tab.Lookup("x")
	require.False(t, ok)
}

func TestEvalClassInstantiationAndFieldAccess(t *testing.T) {
	v, _ := evalSrc(t, "class Point { x := 1\ny := 2 }\np := Point()\np.x")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "1", i.V.String())
}

func TestEvalClassParamOverridesField(t *testing.T) {
	v, _ := evalSrc(t, "class Point |x| { x := 0 }\np := Point(9)\np.x")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "9", i.V.String())
}

func TestEvalPrimitiveOperatorViaMethodAccess(t *testing.T) {
	v, _ := evalSrc(t, "2:._add(3)")
	i, ok := v.(value.Int)
	require.True(t, ok)
	require.Equal(t, "5", i.V.String())
}
