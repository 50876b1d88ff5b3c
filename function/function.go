/*
File    : logo2/function/function.go
*/

// Package function defines the runtime function value. It lives apart
// from the values package because a user-defined function carries its
// body AST and captured scope, which would otherwise pull the parser
// into values and close an import cycle.
package function

import (
	"fmt"
	"io"
	"strings"

	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/scope"
	"github.com/logo2lang/logo2/values"
)

// Interp is the slice of the evaluator that native functions see. The
// eval package's Evaluator satisfies it.
type Interp interface {
	// Output returns the writer native functions print to
	Output() io.Writer
}

// NativeFunction is a host-registered callable. It receives the
// evaluator and the already-evaluated arguments in order, and must
// return a value (values.NullValue is fine).
type NativeFunction func(interp Interp, args []values.Value) (values.Value, error)

// Function is a callable value: either a native callable or a
// user-defined body with parameter names and the environment captured
// at definition time. Function values are shared by reference.
type Function struct {
	Name   string
	Arity  int
	Native NativeFunction

	Parameters []string
	Body       parser.Node
	Env        *scope.Scope
}

// NewNative wraps a host callable as a function value.
func NewNative(name string, arity int, native NativeFunction) *Function {
	return &Function{Name: name, Arity: arity, Native: native}
}

// IsNative reports whether the function is host code.
func (f *Function) IsNative() bool {
	return f.Native != nil
}

// Kind implements values.Value.
func (f *Function) Kind() values.Kind {
	return values.FunctionKind
}

// ToString renders the function for display.
func (f *Function) ToString() string {
	if f.Name == "" {
		return "fn(" + strings.Join(f.Parameters, ", ") + ")"
	}
	return fmt.Sprintf("fn(%s)", f.Name)
}

// Inspect renders the function with its parameter list.
func (f *Function) Inspect() string {
	if f.IsNative() {
		return fmt.Sprintf("<native fn %s/%d>", f.Name, f.Arity)
	}
	return fmt.Sprintf("<fn %s(%s)>", f.Name, strings.Join(f.Parameters, ", "))
}
