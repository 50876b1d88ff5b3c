/*
File    : logo2/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for Logo2. The
// evaluator visits AST nodes with a single type switch, maintains a
// stack of runtime scopes whose bottom entry is the global scope, and
// keeps named function declarations in their own table, looked up ahead
// of variables on invocation.
//
// Non-local control flow (return, break, continue, host quit) travels
// as sentinel error values consumed at function-call and loop frames;
// real runtime failures are values.RuntimeError and terminate the
// current top-level form.
package eval

import (
	"io"
	"os"

	"github.com/logo2lang/logo2/function"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/scope"
	"github.com/logo2lang/logo2/values"
)

// Evaluator executes AST nodes and holds all interpreter state shared
// across top-level forms: the scope stack, the function table, the
// enum registry and the output writer for natives.
type Evaluator struct {
	scopes    []*scope.Scope
	functions map[string]*function.Function
	enums     map[string]map[string]int64
	writer    io.Writer
}

// NewEvaluator creates an evaluator with a fresh global scope and an
// empty function table, writing to stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		scopes:    []*scope.Scope{scope.NewScope(nil)},
		functions: make(map[string]*function.Function),
		enums:     make(map[string]map[string]int64),
		writer:    os.Stdout,
	}
}

// SetWriter redirects the output of printing natives, mainly for tests.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.writer = w
}

// Output implements function.Interp.
func (e *Evaluator) Output() io.Writer {
	return e.writer
}

// AddNativeFunction registers a host callable under the given name. It
// returns false when the name is already taken.
func (e *Evaluator) AddNativeFunction(name string, arity int, native function.NativeFunction) bool {
	if _, ok := e.functions[name]; ok {
		return false
	}
	e.functions[name] = function.NewNative(name, arity, native)
	return true
}

// AddVariable binds a host-provided global.
func (e *Evaluator) AddVariable(name string, value values.Value, constant bool) {
	e.globalScope().Declare(name, &scope.Variable{Value: value, Const: constant})
}

// FindFunction returns a registered function by name.
func (e *Evaluator) FindFunction(name string) (*function.Function, bool) {
	f, ok := e.functions[name]
	return f, ok
}

func (e *Evaluator) globalScope() *scope.Scope {
	return e.scopes[0]
}

func (e *Evaluator) currentScope() *scope.Scope {
	return e.scopes[len(e.scopes)-1]
}

// pushScope enters a fresh scope chained to the current one.
func (e *Evaluator) pushScope() {
	e.scopes = append(e.scopes, scope.NewScope(e.currentScope()))
}

// pushExisting enters a pre-built scope (a cloned closure environment
// or a call scope).
func (e *Evaluator) pushExisting(s *scope.Scope) {
	e.scopes = append(e.scopes, s)
}

// popScope leaves the innermost scope.
func (e *Evaluator) popScope() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// popTo restores the scope stack to a saved depth, used to unwind call
// frames regardless of how evaluation of the body ended.
func (e *Evaluator) popTo(depth int) {
	e.scopes = e.scopes[:depth]
}

// Eval executes a node and produces its value. The single dispatch
// switch is the whole visitor: every node variant has its arm here or
// in the per-group files.
func (e *Evaluator) Eval(node parser.Node) (values.Value, error) {
	switch n := node.(type) {
	case *parser.StatementsNode:
		return e.evalStatements(n)
	case *parser.LiteralNode:
		return e.evalLiteral(n)
	case *parser.NameNode:
		return e.evalName(n)
	case *parser.UnaryNode:
		return e.evalUnary(n)
	case *parser.BinaryNode:
		return e.evalBinary(n)
	case *parser.PostfixNode:
		return values.NullValue, nil
	case *parser.AssignNode:
		return e.evalAssign(n)
	case *parser.InvokeFunctionNode:
		return e.evalInvokeFunction(n)
	case *parser.IfThenElseNode:
		return e.evalIfThenElse(n)
	case *parser.BlockNode:
		return e.evalBlock(n)
	case *parser.VarStatementNode:
		return e.evalVarStatement(n)
	case *parser.RepeatStatementNode:
		return e.evalRepeat(n)
	case *parser.WhileStatementNode:
		return e.evalWhile(n)
	case *parser.ForStatementNode:
		return e.evalFor(n)
	case *parser.FunctionDeclarationNode:
		return e.evalFunctionDeclaration(n)
	case *parser.AnonymousFunctionNode:
		return e.evalAnonymousFunction(n)
	case *parser.ReturnNode:
		return e.evalReturn(n)
	case *parser.BreakContinueNode:
		return nil, newBreakContinue(n.Continue)
	case *parser.EnumDeclarationNode:
		return e.evalEnumDeclaration(n)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	}
	return nil, values.NewRuntimeError(values.UndefinedOperator)
}

// evalStatements runs the program's top-level statements in order. The
// result is the last statement's value, so a trailing bare expression
// is observable in the REPL. A stray return at the top level unwraps to
// its value.
func (e *Evaluator) evalStatements(node *parser.StatementsNode) (values.Value, error) {
	var result values.Value = values.NullValue
	for _, stmt := range node.Statements {
		value, err := e.Eval(stmt)
		if err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return ret.value, nil
			}
			return nil, err
		}
		result = value
	}
	return result, nil
}
