// Package zerr implements Zyxt's single linear error type (spec.md §7):
// a code, a message, zero or more spans, and an optional reference to the
// surrounding source. One factory function exists per error code, grounded
// directly on _examples/original_source/src/errors/typecheck.rs's
// `impl ZError { pub fn t001() ... }` per-code constructor pattern, so the
// Go code and codes/messages stay traceable to the original.
//
// Rendering (pretty-printing with source context, ANSI color) is
// explicitly a collaborator's job (spec.md §1, §6) — this package only
// produces the data a renderer needs.
package zerr

import (
	"fmt"

	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/ztype"
)

// Error is the one error shape every stage of the pipeline raises.
type Error struct {
	Code    string
	Message string
	Spans   []span.Span
}

func (e *Error) Error() string {
	if len(e.Spans) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Spans[0])
}

// New builds an Error with the given code, message, and spans.
func New(code, message string, spans ...span.Span) *Error {
	return &Error{Code: code, Message: message, Spans: spans}
}

func withSpan(code, message string, sp *span.Span) *Error {
	e := &Error{Code: code, Message: message}
	if sp != nil {
		e.Spans = []span.Span{*sp}
	}
	return e
}

// --- 0.x Internal -----------------------------------------------------

// Internal wraps a recovered panic as a 0.0 diagnostic, per spec.md §7
// ("Panics from bugs in the implementation are caught at the top level
// and reported as 0.0 with a backtrace").
func Internal(recovered any, backtrace string) *Error {
	return New("0.0", fmt.Sprintf("internal error: %v\n%s", recovered, backtrace))
}

// --- 1.x File / I/O -----------------------------------------------------

func FileNotFound(path string) *Error {
	return New("1.0", fmt.Sprintf("file not found: %s", path))
}

func FileNotOpenable(path string, cause error) *Error {
	return New("1.1", fmt.Sprintf("could not open file %s: %v", path, cause))
}

func FileIsDirectory(path string) *Error {
	return New("1.2", fmt.Sprintf("%s is a directory", path))
}

// --- L### Lexer -----------------------------------------------------

func L001(ch byte, sp span.Span) *Error {
	return New("L001", fmt.Sprintf("unrecognised character %q", ch), sp)
}

// --- P### Parser -----------------------------------------------------

func P001Unmatched(bracket string, sp *span.Span) *Error {
	return withSpan("P001", fmt.Sprintf("unmatched %q", bracket), sp)
}

func P002Dangling(sp *span.Span) *Error {
	return withSpan("P002", "dangling item left after parsing", sp)
}

func P003StrayToken(text string, sp *span.Span) *Error {
	return withSpan("P003", fmt.Sprintf("stray token %q", text), sp)
}

func P004Malformed(shape string, sp *span.Span) *Error {
	return withSpan("P004", fmt.Sprintf("malformed %s", shape), sp)
}

func P005BadOperatorPosition(sp *span.Span) *Error {
	return withSpan("P005", "operator in an invalid position", sp)
}

func P006BadArgumentList(sp *span.Span) *Error {
	return withSpan("P006", "malformed argument list", sp)
}

// --- T### Type-check -----------------------------------------------------
// Codes and wording follow _examples/original_source/src/errors/typecheck.rs.

func T001() *Error {
	return New("T001", "constants are not mutable")
}

func T002(sym string) *Error {
	return New("T002", fmt.Sprintf("symbol `%s` is not defined", sym))
}

func T003(blockType, returnType *ztype.Type) *Error {
	return New("T003", fmt.Sprintf(
		"block returns variable of type `%s` earlier on, but also returns variable of type `%s`",
		blockType, returnType))
}

func T004(expected, actual *ztype.Type) *Error {
	return New("T004", fmt.Sprintf(
		"procedure/function expected argument of type `%s`, got `%s`", expected, actual))
}

func T005(ty *ztype.Type, attr string) *Error {
	return New("T005", fmt.Sprintf("symbol of type `%s` has no attribute `%s`", ty, attr))
}

func T006() *Error { return New("T006", "expected a pattern") }
func T007() *Error { return New("T007", "expected a type") }
func T008() *Error { return New("T008", "expected an ident") }

func T009(expected, actual *ztype.Type) *Error {
	return New("T009", fmt.Sprintf(
		"procedure/function expected return value of type `%s`, got `%s`", expected, actual))
}

func T010(expected, actual *ztype.Type) *Error {
	return New("T010", fmt.Sprintf(
		"attempt to assign value of type `%s` to symbol of type `%s`", actual, expected))
}

func T011(name string) *Error {
	return New("T011", fmt.Sprintf("arity mismatch: too few arguments for `%s`", name))
}

func T012(name string) *Error {
	return New("T012", fmt.Sprintf("arity mismatch: too many arguments for `%s`", name))
}

func T013() *Error {
	return New("T013", "every class/struct body statement must be a declaration")
}

func T014(msg string) *Error {
	return New("T014", msg)
}

func T015(name string, expected, got int) *Error {
	return New("T015", fmt.Sprintf("`%s` expects %d argument(s), got %d", name, expected, got))
}

func T016(msg string) *Error {
	return New("T016", msg)
}

func T017() *Error {
	return New("T017", "`ret` used outside a function frame")
}

func T018() *Error {
	return New("T018", "a struct may not define `_new`")
}

func T019() *Error {
	return New("T019", "a class may not have both an argument list and a `_new` declaration")
}

// --- I### Interpreter -----------------------------------------------------

func I001(op string, args []string) *Error {
	return New("I001", fmt.Sprintf("no implementation of `%s` for argument(s) %v", op, args))
}

func I002Overflow(width string, n string) *Error {
	return New("I002", fmt.Sprintf("value %s overflows %s", n, width))
}

func I003DivByZero() *Error {
	return New("I003", "division by zero")
}

func I004BadTypecast(from, to string) *Error {
	return New("I004", fmt.Sprintf("cannot cast %s to %s", from, to))
}
