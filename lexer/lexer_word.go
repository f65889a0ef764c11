package lexer

import (
	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
)

// lexWord consumes a maximal alphanumeric-plus-underscore run and classifies
// it against the keyword/flag table (spec.md §4.1): keyword, flag, the
// true/false misc literal, or a plain identifier.
func (l *Lexer) lexWord() token.Token {
	start := l.pos()
	var buf []byte
	for !l.eof() && isAlnum(l.Current) {
		buf = append(buf, l.advance())
	}
	word := string(buf)
	return token.Token{
		Kind:  token.LookupWord(word),
		Value: word,
		Span:  span.New(start, l.pos(), l.Src),
	}
}
