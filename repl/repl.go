// Package repl implements the Read-Eval-Print Loop for Zyxt. The REPL
// provides an interactive environment where users can:
// - Enter Zyxt code line by line
// - See immediate results of their code execution
// - Navigate command history using arrow keys
// - Receive colored feedback for different types of output
//
// The REPL uses the readline library for enhanced line editing and drives
// the lex->parse->desugar->typecheck->interpret pipeline per input line,
// keeping one running Interp (and Checker, for the declarations a later
// line might reference) across the whole session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/zyxt-lang/zyxt/desugar"
	"github.com/zyxt-lang/zyxt/interp"
	"github.com/zyxt-lang/zyxt/lexer"
	"github.com/zyxt-lang/zyxt/parser"
	"github.com/zyxt-lang/zyxt/typecheck"
	"github.com/zyxt-lang/zyxt/value"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "zx >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Zyxt!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: prints the banner, then reads one line
// at a time from rl and runs it through the pipeline, reusing the same
// Checker and Interp for the whole session so declarations from earlier
// lines stay visible to later ones.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	checker := typecheck.NewChecker()
	interpreter := interp.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLineWithRecovery(writer, line, checker, interpreter)
	}
}

// evalLineWithRecovery runs one line through lex->parse->desugar->
// typecheck->interpret with panic recovery. Unlike file execution, the
// REPL reports an error and keeps going rather than exiting, so the
// session survives a typo.
func (r *Repl) evalLineWithRecovery(writer io.Writer, line string, checker *typecheck.Checker, interpreter *interp.Interp) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	toks, lerr := lexer.Tokenize("<repl>", line)
	if lerr != nil {
		redColor.Fprintf(writer, "%s\n", lerr.Error())
		return
	}

	nodes, perr := parser.ParseProgram(toks)
	if perr != nil {
		redColor.Fprintf(writer, "%s\n", perr.Error())
		return
	}

	nodes, derr := desugar.New().DesugarAll(nodes)
	if derr != nil {
		redColor.Fprintf(writer, "%s\n", derr.Error())
		return
	}

	if _, terr := checker.CheckAll(nodes); terr != nil {
		redColor.Fprintf(writer, "%s\n", terr.Error())
		return
	}

	result, ierr := interpreter.EvalAll(nodes)
	if ierr != nil {
		redColor.Fprintf(writer, "%s\n", ierr.Error())
		return
	}

	if _, ok := result.(value.Unit); !ok {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
