package ast

// Comment carries the text of a `//` or `/* */` comment. The parser pulls
// comments out of a segment before its rewrite passes and produces a
// Comment node only for a segment made of comments alone (the first of
// them); comments beside code are dropped. Every semantic walk treats
// Comment as a no-op (spec.md §4.4 "Default for nodes lacking semantics:
// Any").
type Comment struct {
	Base
	Text string
}

func (*Comment) Kind() string { return "Comment" }
