package lexer

import (
	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
)

// symbolTable lists every multi-character operator/punctuation lexeme,
// longest first within each starting character so the longest-match scan
// in lexSymbol never needs backtracking. kind classifies the resulting
// token; precedence-bearing binary operators are classified KindBinaryOp
// regardless of arity — pass 11 reclassifies a leading +/- as unary.
var symbolTable = []struct {
	text string
	kind token.Kind
}{
	{"..=", token.KindAssignOp},
	{"+=", token.KindAssignOp}, {"-=", token.KindAssignOp},
	{"*=", token.KindAssignOp}, {"/=", token.KindAssignOp},
	{"%=", token.KindAssignOp},
	{"==", token.KindBinaryOp}, {"!=", token.KindBinaryOp},
	{">=", token.KindBinaryOp}, {"<=", token.KindBinaryOp},
	{"::", token.KindAccessOp},
	{"..", token.KindBinaryOp},
	{":.", token.KindAccessOp},
	{":=", token.KindDeclareOp},
	{"+", token.KindBinaryOp}, {"-", token.KindBinaryOp},
	{"*", token.KindBinaryOp}, {"/", token.KindBinaryOp},
	{"%", token.KindBinaryOp},
	{">", token.KindBinaryOp}, {"<", token.KindBinaryOp},
	{"!", token.KindUnaryOp},
	{"=", token.KindAssignOp},
	{".", token.KindAccessOp},
	{":", token.KindPunct},
	{"|", token.KindBar},
	{",", token.KindComma},
	{";", token.KindStmtEnd},
	{"(", token.KindOpenParen}, {")", token.KindCloseParen},
	{"{", token.KindOpenCurly}, {"}", token.KindCloseCurly},
}

// lexSymbol performs a longest-match scan against symbolTable starting at
// the lexer's current position.
func (l *Lexer) lexSymbol() (token.Token, *Error) {
	start := l.pos()
	rest := l.Src[l.Position:]
	for _, sym := range symbolTable {
		if len(rest) >= len(sym.text) && rest[:len(sym.text)] == sym.text {
			for range sym.text {
				l.advance()
			}
			return token.Token{
				Kind:  sym.kind,
				Value: sym.text,
				Span:  span.New(start, l.pos(), l.Src),
			}, nil
		}
	}
	ch := l.advance()
	return token.Token{}, unrecognised(ch, start, l.Src)
}
