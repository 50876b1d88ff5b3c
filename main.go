/*
File    : logo2/main.go

Package main is the Logo2 interpreter entry point.

	logo2              - start the interactive REPL
	logo2 <file>       - run the file, then start the REPL
	logo2 --ast <file> - print the parsed AST of the file and exit

Running a file parses it first; on parse errors each one is reported
and the process exits with status 1. After a clean run the REPL starts
with the file's definitions and turtle state still live.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/logo2lang/logo2/eval"
	"github.com/logo2lang/logo2/lexer"
	"github.com/logo2lang/logo2/natives"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/repl"
	"github.com/logo2lang/logo2/turtle"
	"github.com/logo2lang/logo2/values"
)

var version = "v0.2.0"

var banner = `  _                         ___
 | |    ___   __ _  ___    |_  )
 | |__ / _ \ / _' |/ _ \    / /
 |____|\___/ \__, |\___/   /___|
             |___/`

var separator = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	args := os.Args[1:]

	astOnly := false
	if len(args) > 0 && args[0] == "--ast" {
		astOnly = true
		args = args[1:]
	}

	tokenizer := lexer.NewTokenizer()
	par := parser.NewParser(tokenizer)
	evaluator := eval.NewEvaluator()
	t := turtle.New()
	natives.RegisterCore(evaluator)
	natives.RegisterTurtle(evaluator, t)

	if len(args) > 0 {
		code, quit := executeFile(par, evaluator, args[0], astOnly, os.Stdout, os.Stderr)
		if code != 0 || astOnly || quit {
			os.Exit(code)
		}
	} else if astOnly {
		redColor.Fprintln(os.Stderr, "--ast requires a file argument")
		os.Exit(1)
	}

	repler := repl.NewRepl(banner, version, separator, "logo2 >>> ")
	repler.Start(par, evaluator, os.Stdout)
	os.Exit(0)
}

// executeFile parses and runs a source file. It returns the process
// exit code (1 when the file cannot be read or parsed, 0 otherwise;
// runtime errors are reported but leave the session usable) and
// whether the script asked to quit.
func executeFile(par *parser.Parser, evaluator *eval.Evaluator, path string, astOnly bool, stdout, stderr io.Writer) (int, bool) {
	root, err := par.ParseFile(path)
	if err != nil {
		redColor.Fprintf(stderr, "%s: %v\n", path, err)
		return 1, false
	}
	if par.HasErrors() {
		for _, perr := range par.Errors() {
			redColor.Fprintf(stderr, "%s\n", perr.Error())
		}
		return 1, false
	}
	if astOnly {
		visitor := &PrintingVisitor{}
		root.Accept(visitor)
		fmt.Fprint(stdout, visitor.String())
		return 0, false
	}

	result, err := evaluator.Eval(root)
	if err != nil {
		if _, quit := err.(*eval.QuitSignal); quit {
			return 0, true
		}
		redColor.Fprintf(stderr, "%s\n", err.Error())
		return 0, false
	}
	if result != nil && !values.IsNull(result) {
		yellowColor.Fprintf(stdout, "%s\n", result.ToString())
	}
	return 0, false
}
