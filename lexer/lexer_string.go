package lexer

import (
	"strings"

	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
)

// lexString consumes a double-quoted string literal. The opening quote is
// consumed and discarded; content accumulates verbatim up to the closing
// quote, including any backslash escapes — spec.md §4.1 defers escape
// processing to a later stage, which here is Unescape, called by the
// parser when it folds the token into a Literal node.
func (l *Lexer) lexString() (token.Token, *Error) {
	start := l.pos()
	l.advance() // opening quote
	var buf []byte
	for {
		if l.eof() {
			return token.Token{}, &Error{
				Code:    "L001",
				Message: "unterminated string literal",
				Span:    span.New(start, l.pos(), l.Src),
			}
		}
		if l.Current == '"' {
			l.advance()
			break
		}
		if l.Current == '\\' && l.peekAt(1) != 0 {
			buf = append(buf, l.advance())
		}
		buf = append(buf, l.advance())
	}
	return token.Token{
		Kind:  token.KindString,
		Value: string(buf),
		Span:  span.New(start, l.pos(), l.Src),
	}, nil
}

// Unescape processes backslash escapes deferred by lexString: \n, \t, \r,
// \\, \", and \0.
func Unescape(raw string) string {
	if !strings.Contains(raw, "\\") {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			b.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
