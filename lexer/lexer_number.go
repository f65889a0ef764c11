package lexer

import (
	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
)

// lexNumber consumes a digit run with at most one embedded dot (spec.md
// §4.1). A second dot is left unconsumed: "1..2" lexes as "1", "..", "2"
// so the range/concat operator still works on two number literals without
// a dedicated grammar rule.
func (l *Lexer) lexNumber() token.Token {
	start := l.pos()
	var buf []byte
	sawDot := false
	for !l.eof() {
		if isDigit(l.Current) {
			buf = append(buf, l.advance())
			continue
		}
		if l.Current == '.' && !sawDot && isDigit(l.peekAt(1)) {
			sawDot = true
			buf = append(buf, l.advance())
			continue
		}
		break
	}
	return token.Token{
		Kind:  token.KindNumber,
		Value: string(buf),
		Span:  span.New(start, l.pos(), l.Src),
	}
}
