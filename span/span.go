// Package span implements source positions and spans shared by every stage
// of the pipeline, from the lexer's tokens through to interpreted values.
//
// A Position pins one point in a named source file; a Span covers a range
// between two positions plus a reference to the text it covers, so
// diagnostics can quote the exact offending snippet. Spans are optional on
// every token and AST node — nodes synthesized by the desugarer (for
// example the literal produced by evaluating a Preprocess block) may carry
// no span at all.
package span

import "fmt"

// Position is one point in a source file: filename, 1-indexed line, and
// 1-indexed column.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// String renders a position as "filename:line:column", the form used in
// diagnostic output.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Span covers the source text between Start and End (inclusive of Start,
// exclusive of End is not enforced — callers are expected to pass sensible
// endpoints; Span itself never re-slices Source). Source is the full text
// of the file the positions belong to, kept so a diagnostic renderer can
// quote the surrounding line without re-reading the file.
type Span struct {
	Start  Position
	End    Position
	Source string
}

// New builds a Span covering exactly [start, end] within the given source
// text.
func New(start, end Position, source string) Span {
	return Span{Start: start, End: end, Source: source}
}

// Merge returns the smallest Span covering both a and b, taking the
// earlier of the two start positions and the later of the two end
// positions. The Source reference is taken from a; callers should only
// merge spans that share a source file.
func Merge(a, b Span) Span {
	start := a.Start
	if before(b.Start, start) {
		start = b.Start
	}
	end := a.End
	if before(end, b.End) {
		end = b.End
	}
	src := a.Source
	if src == "" {
		src = b.Source
	}
	return Span{Start: start, End: end, Source: src}
}

// before reports whether p comes strictly before q in the same file, by
// line then column.
func before(p, q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// MergeOptional is Merge generalized over the optional spans AST nodes and
// tokens actually carry (a node built with no position information, e.g. a
// synthesized Return, has no Span to merge).
func MergeOptional(a, b *Span) *Span {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		m := Merge(*a, *b)
		return &m
	}
}

// String renders a span as "start-end" using Position.String for both
// ends, or "line:col1-col2" when both ends share a line and file (the
// common case for single-line expressions).
func (s Span) String() string {
	if s.Start.Filename == s.End.Filename && s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", s.Start.Filename, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
