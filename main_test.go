/*
File    : logo2/main_test.go
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logo2lang/logo2/eval"
	"github.com/logo2lang/logo2/lexer"
	"github.com/logo2lang/logo2/natives"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/turtle"
)

// writeScript drops a script into a temp dir and returns its path.
func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lg")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newSession builds the same parser/evaluator/turtle wiring main uses.
func newSession() (*parser.Parser, *eval.Evaluator, *turtle.Turtle) {
	par := parser.NewParser(lexer.NewTokenizer())
	evaluator := eval.NewEvaluator()
	t := turtle.New()
	natives.RegisterCore(evaluator)
	natives.RegisterTurtle(evaluator, t)
	return par, evaluator, t
}

func TestExecuteFile_RunsScript(t *testing.T) {
	path := writeScript(t, `fn sq(n) => n*n; println(sq(7));`)
	par, evaluator, _ := newSession()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	evaluator.SetWriter(stdout)
	code, quit := executeFile(par, evaluator, path, false, stdout, stderr)
	assert.False(t, quit)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "49")
	assert.Empty(t, stderr.String())
}

func TestExecuteFile_DrivesTurtle(t *testing.T) {
	path := writeScript(t, `repeat 4 { fd(50); rt(90); }`)
	par, evaluator, tt := newSession()

	code, quit := executeFile(par, evaluator, path, false, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 0, code)
	assert.False(t, quit)
	assert.Len(t, tt.Commands(), 4)
}

func TestExecuteFile_ParseFailureExitsOne(t *testing.T) {
	path := writeScript(t, `const c = 10; c = 1;`)
	par, evaluator, _ := newSession()

	stderr := &bytes.Buffer{}
	code, _ := executeFile(par, evaluator, path, false, &bytes.Buffer{}, stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "CannotModifyConst")
}

func TestExecuteFile_MissingFile(t *testing.T) {
	par, evaluator, _ := newSession()
	stderr := &bytes.Buffer{}
	code, _ := executeFile(par, evaluator, filepath.Join(t.TempDir(), "nope.lg"), false, &bytes.Buffer{}, stderr)
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestExecuteFile_RuntimeErrorIsReportedNotFatal(t *testing.T) {
	path := writeScript(t, `1/0`)
	par, evaluator, _ := newSession()

	stderr := &bytes.Buffer{}
	code, quit := executeFile(par, evaluator, path, false, &bytes.Buffer{}, stderr)
	assert.Equal(t, 0, code)
	assert.False(t, quit)
	assert.Contains(t, stderr.String(), "Runtime error: DivisionByZero")
}

func TestExecuteFile_AstDump(t *testing.T) {
	path := writeScript(t, `var a = 1 + 2;`)
	par, evaluator, _ := newSession()

	stdout := &bytes.Buffer{}
	code, _ := executeFile(par, evaluator, path, true, stdout, &bytes.Buffer{})
	assert.Equal(t, 0, code)

	dump := stdout.String()
	assert.Contains(t, dump, "Program")
	assert.Contains(t, dump, "var [a]")
	assert.Contains(t, dump, "Binary [+]")
	// the literals sit one level deeper than the binary node
	var binaryIndent, literalIndent int
	for _, line := range strings.Split(dump, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "Binary") {
			binaryIndent = len(line) - len(trimmed)
		}
		if strings.HasPrefix(trimmed, "Literal [1]") {
			literalIndent = len(line) - len(trimmed)
		}
	}
	assert.Equal(t, binaryIndent+indentSize, literalIndent)
}

func TestExecuteFile_QuitExitsCleanly(t *testing.T) {
	path := writeScript(t, `fd(10); quit(); fd(10);`)
	par, evaluator, tt := newSession()

	code, quit := executeFile(par, evaluator, path, false, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 0, code)
	assert.True(t, quit)
	// execution stopped at quit
	assert.Len(t, tt.Commands(), 1)
}
