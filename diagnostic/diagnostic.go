// Package diagnostic hosts the rendering-adjacent contract spec.md §1/§6
// keeps deliberately thin: pretty-printing and color are a collaborator's
// job, so this package owns only a verbosity Level and the Sink interface
// a real CLI/REPL renderer implements (spec.md §7, "Rendering is the
// collaborator's job").
//
// No teacher equivalent exists as a standalone package — GoMix's
// repl/repl.go reaches for github.com/fatih/color directly at the point
// of printing rather than routing through any level-gated interface — so
// the shape here is new, grounded on spec.md §6's leveled-verbosity
// counter ("-v raises the threshold: 0 = errors/warnings, 1 = info,
// 2 = debug, 3+ = trace") and on repl.go's own blue/yellow/red/green/cyan
// split, which becomes this package's four Sink methods instead of five
// bare color.New() package vars.
package diagnostic

import "github.com/zyxt-lang/zyxt/zerr"

// Level is a verbosity threshold, bumped once per repeated `-v` flag
// (spec.md §6).
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
	LevelTrace
)

// FromVerboseCount maps a repeated `-v` flag's count to a Level, clamping
// anything at or above 3 to LevelTrace (spec.md §6: "3+ = trace").
func FromVerboseCount(count int) Level {
	switch {
	case count <= 0:
		return LevelError
	case count == 1:
		return LevelInfo
	case count == 2:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Sink is the contract a CLI/REPL renderer implements to receive
// diagnostics at or above its configured Level — the narrow interface
// spec.md keeps this package to, leaving actual formatting and color
// entirely to the implementation (spec.md §1, "pretty-printing/coloring
// is out of scope").
type Sink interface {
	// Error reports a pipeline failure (spec.md §7's one linear Error
	// type); always rendered regardless of Level.
	Error(err *zerr.Error)
	// Info reports a user-facing result or status line; rendered at
	// LevelInfo and above.
	Info(msg string)
	// Debug reports implementation detail useful while developing;
	// rendered at LevelDebug and above.
	Debug(msg string)
	// Trace reports the most granular detail (e.g. one line per AST
	// node visited); rendered at LevelTrace and above.
	Trace(msg string)
}

// NopSink discards everything; the zero value is ready to use, for
// callers (tests, library embedders) that want the pipeline's error
// return values without any diagnostic output.
type NopSink struct{}

func (NopSink) Error(*zerr.Error) {}
func (NopSink) Info(string)       {}
func (NopSink) Debug(string)      {}
func (NopSink) Trace(string)      {}
