package ast

import "github.com/zyxt-lang/zyxt/value"

// Literal carries an already-materialised runtime Value: number/string/
// bool literals parsed by parser pass 6, and the values a Preprocess block
// is replaced by once the desugarer evaluates it (spec.md §4.3).
type Literal struct {
	Base
	Value value.Value
}

func (*Literal) Kind() string { return "Literal" }
