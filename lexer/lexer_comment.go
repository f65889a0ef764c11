package lexer

import (
	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
)

// lexComment consumes either a "//" line comment (terminated by a newline
// or end-of-input) or a "/* ... */" block comment supporting nesting: a
// depth counter is incremented on each inner "/*" and decremented on each
// "*/", so "/* outer /* inner */ still outer */" is one comment (spec.md
// §4.1). The emitted token's Value includes the delimiters verbatim
// (opening "//" or "/*", the closing "*/" for block comments) so that
// LeadingWhitespace+Value reproduces the source exactly (spec.md §8's
// lex/print round-trip property).
func (l *Lexer) lexComment() (token.Token, *Error) {
	start := l.pos()
	buf := []byte{l.advance()} // '/'
	if l.Current == '/' {
		buf = append(buf, l.advance())
		for !l.eof() && l.Current != '\n' {
			buf = append(buf, l.advance())
		}
		return token.Token{
			Kind:  token.KindCommentOpen,
			Value: string(buf),
			Span:  span.New(start, l.pos(), l.Src),
		}, nil
	}

	buf = append(buf, l.advance()) // '*'
	depth := 1
	for depth > 0 {
		if l.eof() {
			return token.Token{}, &Error{
				Code:    "L001",
				Message: "unterminated block comment",
				Span:    span.New(start, l.pos(), l.Src),
			}
		}
		if l.Current == '/' && l.peekAt(1) == '*' {
			depth++
			buf = append(buf, l.advance(), l.advance())
			continue
		}
		if l.Current == '*' && l.peekAt(1) == '/' {
			depth--
			buf = append(buf, l.advance(), l.advance())
			continue
		}
		buf = append(buf, l.advance())
	}
	return token.Token{
		Kind:  token.KindCommentOpen,
		Value: string(buf),
		Span:  span.New(start, l.pos(), l.Src),
	}, nil
}
