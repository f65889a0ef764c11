package typecheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyxt-lang/zyxt/desugar"
	"github.com/zyxt-lang/zyxt/lexer"
	"github.com/zyxt-lang/zyxt/parser"
	"github.com/zyxt-lang/zyxt/typecheck"
	"github.com/zyxt-lang/zyxt/zerr"
	"github.com/zyxt-lang/zyxt/ztype"
)

func checkSrc(t *testing.T, src string) (*typecheck.Checker, *ztype.Type, *zerr.Error) {
	t.Helper()
	toks, lerr := lexer.Tokenize("test.zx", src)
	require.Nil(t, lerr)
	nodes, perr := parser.ParseProgram(toks)
	require.Nil(t, perr)
	nodes, derr := desugar.New().DesugarAll(nodes)
	require.Nil(t, derr)
	c := typecheck.NewChecker()
	ty, terr := c.CheckAll(nodes)
	return c, ty, terr
}

func TestCheckLiteralNumber(t *testing.T) {
	_, ty, terr := checkSrc(t, "2 + 3")
	require.Nil(t, terr)
	require.Equal(t, "i32", ty.String())
}

func TestCheckDeclareAndIdent(t *testing.T) {
	_, ty, terr := checkSrc(t, "x := 2\nx")
	require.Nil(t, terr)
	require.Equal(t, "i32", ty.String())
}

func TestCheckDeclareTypeMismatch(t *testing.T) {
	_, _, terr := checkSrc(t, `x : str := 2`)
	require.NotNil(t, terr)
	require.Equal(t, "T010", terr.Code)
}

func TestCheckSetUndeclared(t *testing.T) {
	_, _, terr := checkSrc(t, "x = 2")
	require.NotNil(t, terr)
	require.Equal(t, "T002", terr.Code)
}

func TestCheckSetConst(t *testing.T) {
	_, _, terr := checkSrc(t, "const x := 2\nx = 3")
	require.NotNil(t, terr)
	require.Equal(t, "T001", terr.Code)
}

func TestCheckDeleteRemovesBinding(t *testing.T) {
	_, _, terr := checkSrc(t, "x := 2\ndel x\nx")
	require.NotNil(t, terr)
	require.Equal(t, "T002", terr.Code)
}

func TestCheckReturnOutsideProcedure(t *testing.T) {
	_, _, terr := checkSrc(t, "ret 1")
	require.NotNil(t, terr)
	require.Equal(t, "T017", terr.Code)
}

func TestCheckProcedureReturnType(t *testing.T) {
	_, ty, terr := checkSrc(t, "proc |x: i32|: i32 { ret x }")
	require.Nil(t, terr)
	sig, ok := ty.Signature()
	require.True(t, ok)
	require.Equal(t, "i32", sig.ReturnType.String())
	require.Len(t, sig.ParamTypes, 1)
	require.Equal(t, "i32", sig.ParamTypes[0].String())
}

func TestCheckProcedureReturnMismatch(t *testing.T) {
	_, _, terr := checkSrc(t, `proc : i32 { ret "a" }`)
	require.NotNil(t, terr)
	require.Equal(t, "T009", terr.Code)
}

func TestCheckBlockScopeDiscipline(t *testing.T) {
	toks, lerr := lexer.Tokenize("test.zx", "{ y := 1 }")
	require.Nil(t, lerr)
	nodes, perr := parser.ParseProgram(toks)
	require.Nil(t, perr)
	c := typecheck.NewChecker()
	depthBefore := c.Tab.Depth()
	_, terr := c.CheckAll(nodes)
	require.Nil(t, terr)
	require.Equal(t, depthBefore, c.Tab.Depth())
}

func TestCheckClassRejectsNonDeclareBody(t *testing.T) {
	_, _, terr := checkSrc(t, "class Foo { 1 }")
	require.NotNil(t, terr)
	require.Equal(t, "T013", terr.Code)
}

func TestCheckStructRejectsNew(t *testing.T) {
	_, _, terr := checkSrc(t, "struct Foo { _new := 1 }")
	require.NotNil(t, terr)
	require.Equal(t, "T018", terr.Code)
}
