/*
File    : logo2/eval/eval_expressions.go
*/
package eval

import (
	"strings"

	"github.com/logo2lang/logo2/function"
	"github.com/logo2lang/logo2/lexer"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/scope"
	"github.com/logo2lang/logo2/values"
)

// evalLiteral produces the typed value carried by the literal token.
func (e *Evaluator) evalLiteral(node *parser.LiteralNode) (values.Value, error) {
	token := node.Token
	switch token.Type {
	case lexer.INTEGER:
		return &values.Integer{Value: token.Value.(int64)}, nil
	case lexer.REAL:
		return &values.Real{Value: token.Value.(float64)}, nil
	case lexer.STRING:
		return &values.String{Value: token.Lexeme}, nil
	case lexer.KEYWORD_TRUE:
		return values.True, nil
	case lexer.KEYWORD_FALSE:
		return values.False, nil
	case lexer.KEYWORD_NULL:
		return values.NullValue, nil
	}
	return values.NullValue, nil
}

// evalName resolves a name: qualified names go through the enum
// registry, plain names through the scope chain.
func (e *Evaluator) evalName(node *parser.NameNode) (values.Value, error) {
	if enum, member, ok := splitQualified(node.Name); ok {
		members, found := e.enums[enum]
		if !found {
			return nil, values.NewRuntimeErrorf(values.UndefinedSymbol, "%s", node.Name)
		}
		value, found := members[member]
		if !found {
			return nil, values.NewRuntimeErrorf(values.UndefinedSymbol, "%s", node.Name)
		}
		return &values.Integer{Value: value}, nil
	}

	if value, ok := e.currentScope().Lookup(node.Name); ok {
		return value, nil
	}
	return nil, values.NewRuntimeErrorf(values.UndefinedSymbol, "%s", node.Name)
}

// splitQualified splits "Enum::Member" into its two parts.
func splitQualified(name string) (string, string, bool) {
	idx := strings.Index(name, "::")
	if idx < 0 {
		return "", "", false
	}
	return name[:idx], name[idx+2:], true
}

// evalUnary applies a prefix operator to its evaluated operand.
func (e *Evaluator) evalUnary(node *parser.UnaryNode) (values.Value, error) {
	operand, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}
	switch node.Operator.Type {
	case lexer.SUB:
		return values.Negate(operand)
	case lexer.NOT:
		return values.Not(operand)
	case lexer.CMP:
		return values.Complement(operand)
	}
	return nil, values.NewRuntimeError(values.UndefinedOperator)
}

// comparisons maps comparison token types onto values.CompareOp.
var comparisons = map[lexer.TokenType]values.CompareOp{
	lexer.EQUAL:              values.CompareEqual,
	lexer.NOT_EQUAL:          values.CompareNotEqual,
	lexer.LESS_THAN:          values.CompareLess,
	lexer.LESS_THAN_EQUAL:    values.CompareLessEqual,
	lexer.GREATER_THAN:       values.CompareGreater,
	lexer.GREATER_THAN_EQUAL: values.CompareGreaterEqual,
}

// evalBinary evaluates both operands left to right, then dispatches on
// the operator.
func (e *Evaluator) evalBinary(node *parser.BinaryNode) (values.Value, error) {
	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Operator.Type {
	case lexer.ADD:
		return values.Add(left, right)
	case lexer.SUB:
		return values.Sub(left, right)
	case lexer.MUL:
		return values.Mul(left, right)
	case lexer.DIV:
		return values.Div(left, right)
	case lexer.MOD:
		return values.Mod(left, right)
	case lexer.POWER:
		return values.Pow(left, right)
	case lexer.AND:
		return values.And(left, right)
	case lexer.OR:
		return values.Or(left, right)
	case lexer.XOR:
		return values.Xor(left, right)
	}
	if op, ok := comparisons[node.Operator.Type]; ok {
		return values.Compare(op, left, right)
	}
	return nil, values.NewRuntimeError(values.UndefinedOperator)
}

// evalAssign replaces the value of an existing binding. The parser has
// already vetted the target against its symbol table; the runtime
// re-checks against the live scope chain, which also covers REPL lines
// evaluated against earlier state.
func (e *Evaluator) evalAssign(node *parser.AssignNode) (values.Value, error) {
	value, err := e.Eval(node.Value)
	if err != nil {
		return nil, err
	}
	variable := e.currentScope().Find(node.Name)
	if variable == nil {
		return nil, values.NewRuntimeErrorf(values.UndefinedSymbol, "%s", node.Name)
	}
	if variable.Const {
		return nil, values.NewRuntimeErrorf(values.CannotAssignConst, "%s", node.Name)
	}
	variable.Value = value
	return value, nil
}

// evalIfThenElse evaluates the condition as a boolean and the chosen
// branch inside a pushed scope. A missing or unchosen else yields null.
func (e *Evaluator) evalIfThenElse(node *parser.IfThenElseNode) (values.Value, error) {
	condition, err := e.Eval(node.Condition)
	if err != nil {
		return nil, err
	}
	truthy, err := values.IsTruthy(condition)
	if err != nil {
		return nil, err
	}

	var branch parser.Node
	if truthy {
		branch = node.Then
	} else if node.Else != nil {
		branch = node.Else
	} else {
		return values.NullValue, nil
	}

	e.pushScope()
	defer e.popScope()
	return e.Eval(branch)
}

// evalAnonymousFunction builds a first-class function value capturing
// the current scope lineage. The chain is cloned down to (excluding)
// the global scope; at call time the clone is re-attached to the live
// global chain so later-defined globals stay visible.
func (e *Evaluator) evalAnonymousFunction(node *parser.AnonymousFunctionNode) (values.Value, error) {
	return &function.Function{
		Parameters: node.Parameters,
		Arity:      len(node.Parameters),
		Body:       node.Body,
		Env:        e.currentScope().CloneChain(e.globalScope()),
	}, nil
}

// evalInvokeFunction calls a function by name: arguments evaluate left
// to right, the functions table resolves ahead of variables, arity is
// strict, and native functions receive the evaluator itself.
func (e *Evaluator) evalInvokeFunction(node *parser.InvokeFunctionNode) (values.Value, error) {
	args := make([]values.Value, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		arg, err := e.Eval(argNode)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	f, ok := e.functions[node.Name]
	if !ok {
		value, found := e.currentScope().Lookup(node.Name)
		if !found {
			return nil, values.NewRuntimeErrorf(values.UndefinedFunction, "%s", node.Name)
		}
		f, ok = value.(*function.Function)
		if !ok {
			return nil, values.NewRuntimeErrorf(values.NotCallable, "%s", node.Name)
		}
	}
	return e.invoke(f, args)
}

// invoke performs the actual call once the function value and the
// evaluated arguments are at hand.
func (e *Evaluator) invoke(f *function.Function, args []values.Value) (values.Value, error) {
	if len(args) != f.Arity {
		return nil, values.NewRuntimeErrorf(values.ArgumentCountMismatch,
			"%s expects %d arguments, got %d", f.Name, f.Arity, len(args))
	}
	if f.IsNative() {
		return f.Native(e, args)
	}

	depth := len(e.scopes)
	defer e.popTo(depth)

	parent := e.globalScope()
	if f.Env != nil {
		// a fresh clone per call, re-parented onto the live globals
		env := f.Env.CloneChain(nil)
		chainRoot(env).SetParent(e.globalScope())
		e.pushExisting(env)
		parent = env
	}

	callScope := scope.NewScope(parent)
	for i, param := range f.Parameters {
		callScope.Declare(param, &scope.Variable{Value: args[i]})
	}
	e.pushExisting(callScope)

	result, err := e.Eval(f.Body)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return result, nil
}

// chainRoot walks a scope chain to its outermost frame.
func chainRoot(s *scope.Scope) *scope.Scope {
	for s.Parent() != nil {
		s = s.Parent()
	}
	return s
}
