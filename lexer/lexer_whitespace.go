package lexer

import (
	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
)

// lexWhitespace consumes a maximal run of space/tab/CR/LF and emits one
// KindWhitespace token. The post-pass in Tokenize folds these into the
// following token's LeadingWhitespace.
func (l *Lexer) lexWhitespace() token.Token {
	start := l.pos()
	var buf []byte
	for !l.eof() && isSpace(l.Current) {
		buf = append(buf, l.advance())
	}
	return token.Token{
		Kind:  token.KindWhitespace,
		Value: string(buf),
		Span:  span.New(start, l.pos(), l.Src),
	}
}
