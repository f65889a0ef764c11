// Package token defines the token kinds and the Token value the lexer
// produces, following the same "string-backed kind constant" convention as
// the teacher's lexer/token.go, but widened to the operator/flag families
// Zyxt's grammar needs that a C-like expression language does not: flags
// (const, hoi, pub, inst, priv, prot), a declaration operator distinct from
// assignment, access operators split by field/method/namespace, and an
// assignment-operator kind that optionally embeds the compound binary
// operator it lowers from.
package token

import "github.com/zyxt-lang/zyxt/span"

// Kind classifies a Token. Unlike the teacher's flat TokenType (one
// constant per concrete operator), Kind groups tokens into the families the
// parser passes dispatch on; the literal operator text lives in
// Token.Value, not in the Kind itself, so adding an operator never means
// adding a Kind.
type Kind string

const (
	KindIdent       Kind = "ident"
	KindNumber      Kind = "number"
	KindString      Kind = "string"
	KindMisc        Kind = "misc"    // true / false
	KindWhitespace  Kind = "whitespace"
	KindCommentOpen Kind = "comment_open"
	KindKeyword     Kind = "keyword"
	KindFlag        Kind = "flag"
	KindBar         Kind = "bar"   // |
	KindComma       Kind = "comma"
	KindStmtEnd     Kind = "stmt_end" // ; or newline-as-terminator
	KindOpenParen   Kind = "open_paren"
	KindCloseParen  Kind = "close_paren"
	KindOpenCurly   Kind = "open_curly"
	KindCloseCurly  Kind = "close_curly"
	KindBinaryOp    Kind = "binary_op"
	KindUnaryOp     Kind = "unary_op"
	KindAssignOp    Kind = "assign_op"
	KindDeclareOp   Kind = "declare_op" // :=
	KindAccessOp    Kind = "access_op"  // . :: :.
	KindPunct       Kind = "punct"
	KindEOF         Kind = "eof"
)

// Keyword is the set of reserved words that introduce a statement shape.
type Keyword string

const (
	KwIf     Keyword = "if"
	KwElse   Keyword = "else"
	KwElif   Keyword = "elif"
	KwDo     Keyword = "do"
	KwWhile  Keyword = "while"
	KwFor    Keyword = "for"
	KwDel    Keyword = "del"
	KwRet    Keyword = "ret"
	KwProc   Keyword = "proc"
	KwFn     Keyword = "fn"
	KwPre    Keyword = "pre"
	KwDefer  Keyword = "defer"
	KwClass  Keyword = "class"
	KwStruct Keyword = "struct"
)

// Flag is a declaration modifier. const marks a symbol immutable; the
// remaining four are visibility/binding modifiers consumed by class/struct
// member declarations (§ SUPPLEMENTED FEATURES in SPEC_FULL.md).
type Flag string

const (
	FlagConst Flag = "const"
	FlagHoi   Flag = "hoi"
	FlagPub   Flag = "pub"
	FlagInst  Flag = "inst"
	FlagPriv  Flag = "priv"
	FlagProt  Flag = "prot"
)

var keywords = map[string]Keyword{
	"if": KwIf, "else": KwElse, "elif": KwElif, "do": KwDo, "while": KwWhile,
	"for": KwFor, "del": KwDel, "ret": KwRet, "proc": KwProc, "fn": KwFn,
	"pre": KwPre, "defer": KwDefer, "class": KwClass, "struct": KwStruct,
}

var flags = map[string]Flag{
	"const": FlagConst, "hoi": FlagHoi, "pub": FlagPub,
	"inst": FlagInst, "priv": FlagPriv, "prot": FlagProt,
}

// LookupWord classifies a word-shaped lexeme as a keyword, a flag, a misc
// literal (true/false), or a plain identifier.
func LookupWord(word string) Kind {
	if _, ok := keywords[word]; ok {
		return KindKeyword
	}
	if _, ok := flags[word]; ok {
		return KindFlag
	}
	if word == "true" || word == "false" {
		return KindMisc
	}
	return KindIdent
}

// AsKeyword returns the Keyword a word denotes, if any.
func AsKeyword(word string) (Keyword, bool) {
	k, ok := keywords[word]
	return k, ok
}

// AsFlag returns the Flag a word denotes, if any.
func AsFlag(word string) (Flag, bool) {
	f, ok := flags[word]
	return f, ok
}

// binaryOperators is the precedence table BinaryPrecedence consults; the
// lexer's symbol sub-lexer matches against its own table in
// lexer/lexer_symbol.go. Precedence is numerically larger
// for tighter-binding operators, matching spec.md §4.2 pass 11's
// "highest-order" rule.
var binaryOperators = []struct {
	text string
	prec int
}{
	{"::", 110}, // typecast
	{"==", 40}, {"!=", 40}, {">=", 45}, {"<=", 45},
	{"..", 60}, // concat
	{"*", 90}, {"/", 90}, {"%", 90},
	{"+", 80}, {"-", 80},
	{">", 45}, {"<", 45},
}

// AssignOperators maps compound-assignment operator text to the binary
// operator it embeds, per spec.md §4.2 pass 10 ("var ⊕= expr" lowers to
// "var = var ⊕ expr").
var AssignOperators = map[string]string{
	"+=": "+", "-=": "-", "*=": "*", "/=": "/", "%=": "%", "..=": "..",
}

// BinaryPrecedence returns the numeric precedence of a binary operator's
// literal text, used by parser pass 11 to find the highest-order split
// point. Returns 0 (lowest) for unrecognised text.
func BinaryPrecedence(text string) int {
	for _, op := range binaryOperators {
		if op.text == text {
			return op.prec
		}
	}
	return 0
}

// CanonicalMethod maps a binary operator's literal text to the namespace
// method name the desugarer lowers it to (spec.md §4.3), e.g. "+" -> "_add".
var CanonicalMethod = map[string]string{
	"+": "_add", "-": "_sub", "*": "_mul", "/": "_div", "%": "_rem",
	"==": "_eq", "!=": "_ne", ">": "_gt", ">=": "_ge", "<": "_lt", "<=": "_le",
	"..": "_concat",
}

// UnaryCanonicalMethod maps a prefix unary operator's literal text to its
// namespace method name.
var UnaryCanonicalMethod = map[string]string{
	"!": "_not", "+": "_un_plus", "-": "_un_minus",
}

// Token is one lexical unit: its Kind, the literal source text it was
// lexed from (Value), the Span it occupies, and the whitespace text (if
// any) that preceded it in the source — preserved so the lexer's
// whitespace-dropping pass can still reconstruct the original source
// verbatim (spec.md §8, "Lex/print round-trip").
type Token struct {
	Kind             Kind
	Value            string
	Span             span.Span
	LeadingWhitespace string
}

// IsKeyword reports whether the token is the keyword k.
func (t Token) IsKeyword(k Keyword) bool {
	if t.Kind != KindKeyword {
		return false
	}
	got, _ := AsKeyword(t.Value)
	return got == k
}

// IsFlag reports whether the token is the flag f.
func (t Token) IsFlag(f Flag) bool {
	if t.Kind != KindFlag {
		return false
	}
	got, _ := AsFlag(t.Value)
	return got == f
}

// IsPunct reports whether the token is a punctuation/operator token whose
// literal text equals text, regardless of exactly which operator Kind it
// was classified under (useful for passes that look for one concrete
// symbol like "(" or "," across several Kinds).
func (t Token) IsPunct(text string) bool {
	return t.Value == text
}
