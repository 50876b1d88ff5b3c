/*
File    : logo2/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop. Each line
is parsed and evaluated against a shared evaluator, so variables,
functions and turtle state persist across lines. The loop uses the
readline library for line editing and history, and colored output for
results and diagnostics.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/logo2lang/logo2/eval"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/values"
)

// Output colors: results in yellow, errors in red, banner and hints in
// green/cyan, separators in blue.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl creates a REPL with the given banner, version string,
// separator line and prompt.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the startup banner and usage hints.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	yellowColor.Fprintf(writer, "Logo2 %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type code and press enter; '.exit' or quit() leaves.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until EOF, '.exit' or a quit() signal. The parser
// and evaluator are shared with the caller so a script executed before
// the session remains visible in it.
func (r *Repl) Start(par *parser.Parser, evaluator *eval.Evaluator, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "readline: %v\n", err)
		return
	}
	defer rl.Close()

	line := 1
	for {
		input, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			writer.Write([]byte("bye\n"))
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			writer.Write([]byte("bye\n"))
			return
		}
		rl.SaveHistory(input)

		if !r.executeLine(par, evaluator, writer, input, line) {
			return
		}
		line++
	}
}

// executeLine parses and evaluates one input line, printing errors or
// the result. It returns false when the session should end.
func (r *Repl) executeLine(par *parser.Parser, evaluator *eval.Evaluator, writer io.Writer, input string, line int) bool {
	root := par.Parse(input, line)
	if par.HasErrors() {
		for _, perr := range par.Errors() {
			redColor.Fprintf(writer, "%s\n", perr.Error())
		}
		return true
	}

	result, err := evaluator.Eval(root)
	if err != nil {
		if _, quit := err.(*eval.QuitSignal); quit {
			writer.Write([]byte("bye\n"))
			return false
		}
		redColor.Fprintf(writer, "%s\n", err.Error())
		return true
	}
	if result != nil && !values.IsNull(result) {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
	return true
}
