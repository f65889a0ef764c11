package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyxt-lang/zyxt/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := Tokenize("test.zx", src)
	require.Nil(t, err)
	return toks
}

func TestLexerArithmetic(t *testing.T) {
	toks := tokenize(t, "2 + 3 * 4")
	// +1 for the statement-end token synthesised from the trailing newline
	// New() appends (spec.md §6).
	require.Len(t, toks, 6)
	require.Equal(t, token.KindNumber, toks[0].Kind)
	require.Equal(t, "2", toks[0].Value)
	require.Equal(t, token.KindBinaryOp, toks[1].Kind)
	require.Equal(t, "+", toks[1].Value)
	require.Equal(t, " ", toks[1].LeadingWhitespace)
	require.Equal(t, token.KindStmtEnd, toks[5].Kind)
}

func TestLexerKeywordsAndFlags(t *testing.T) {
	toks := tokenize(t, "const x := if")
	require.Equal(t, token.KindFlag, toks[0].Kind)
	require.Equal(t, token.KindIdent, toks[1].Kind)
	require.Equal(t, token.KindDeclareOp, toks[2].Kind)
	require.Equal(t, token.KindKeyword, toks[3].Kind)
}

func TestLexerString(t *testing.T) {
	toks := tokenize(t, `"ab\nc"`)
	require.Len(t, toks, 2) // string literal + trailing-newline stmt-end
	require.Equal(t, token.KindString, toks[0].Kind)
	require.Equal(t, "ab\\nc", toks[0].Value)
	require.Equal(t, "ab\nc", Unescape(toks[0].Value))
}

func TestLexerNestedBlockComment(t *testing.T) {
	toks := tokenize(t, "/* outer /* inner */ still outer */ 1")
	require.Len(t, toks, 3) // comment + number + trailing-newline stmt-end
	require.Equal(t, token.KindCommentOpen, toks[0].Kind)
	require.Equal(t, token.KindNumber, toks[1].Kind)
	require.Equal(t, "1", toks[1].Value)
}

func TestLexerRoundTrip(t *testing.T) {
	src := "x  :=\t5 + 1;\n"
	toks := tokenize(t, src)
	var reconstructed string
	for _, tok := range toks {
		reconstructed += tok.LeadingWhitespace + tok.Value
	}
	require.Equal(t, src, reconstructed)
}

func TestLexerRoundTripWithComment(t *testing.T) {
	src := "// hi\n1"
	toks := tokenize(t, src)
	var reconstructed string
	for _, tok := range toks {
		reconstructed += tok.LeadingWhitespace + tok.Value
	}
	// src has no trailing newline, so the one New() appends shows up too.
	require.Equal(t, src+"\n", reconstructed)
}

func TestLexerUnrecognisedCharacter(t *testing.T) {
	_, err := Tokenize("test.zx", "x $ y")
	require.NotNil(t, err)
	require.Equal(t, "L001", err.Code)
}
