/*
File    : logo2/eval/eval_statements.go
*/
package eval

import (
	"github.com/logo2lang/logo2/function"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/scope"
	"github.com/logo2lang/logo2/values"
)

// evalBlock runs the block's children in a pushed scope; the block's
// value is its last child's value, null when empty.
func (e *Evaluator) evalBlock(node *parser.BlockNode) (values.Value, error) {
	e.pushScope()
	defer e.popScope()

	var result values.Value = values.NullValue
	for _, stmt := range node.Statements {
		value, err := e.Eval(stmt)
		if err != nil {
			return nil, err
		}
		result = value
	}
	return result, nil
}

// evalVarStatement binds a new variable (or constant) in the current
// scope, evaluating the optional initializer first.
func (e *Evaluator) evalVarStatement(node *parser.VarStatementNode) (values.Value, error) {
	var value values.Value = values.NullValue
	if node.Init != nil {
		init, err := e.Eval(node.Init)
		if err != nil {
			return nil, err
		}
		value = init
	}
	e.currentScope().Declare(node.Name, &scope.Variable{Value: value, Const: node.Const})
	return values.NullValue, nil
}

// evalRepeat runs the body a fixed number of times inside one pushed
// scope. The count must be an integer.
func (e *Evaluator) evalRepeat(node *parser.RepeatStatementNode) (values.Value, error) {
	count, err := e.Eval(node.Count)
	if err != nil {
		return nil, err
	}
	times, ok := count.(*values.Integer)
	if !ok {
		return nil, values.NewRuntimeError(values.TypeMismatch)
	}

	e.pushScope()
	defer e.popScope()
	for n := times.Value; n > 0; n-- {
		if _, err := e.Eval(node.Body); err != nil {
			if done, stop := loopSignal(err); done {
				if stop {
					break
				}
				continue
			}
			return nil, err
		}
	}
	return values.NullValue, nil
}

// evalWhile re-evaluates the condition before every iteration and runs
// the body in a per-iteration scope.
func (e *Evaluator) evalWhile(node *parser.WhileStatementNode) (values.Value, error) {
	for {
		condition, err := e.Eval(node.Condition)
		if err != nil {
			return nil, err
		}
		truthy, err := values.IsTruthy(condition)
		if err != nil {
			return nil, err
		}
		if !truthy {
			return values.NullValue, nil
		}

		e.pushScope()
		_, err = e.Eval(node.Body)
		e.popScope()
		if err != nil {
			if done, stop := loopSignal(err); done {
				if stop {
					return values.NullValue, nil
				}
				continue
			}
			return nil, err
		}
	}
}

// evalFor pushes one scope around the whole loop (the init variable
// lives there), then runs body and increment until the condition turns
// false.
func (e *Evaluator) evalFor(node *parser.ForStatementNode) (values.Value, error) {
	e.pushScope()
	defer e.popScope()

	if node.Init != nil {
		if _, err := e.Eval(node.Init); err != nil {
			return nil, err
		}
	}
	for {
		condition, err := e.Eval(node.Condition)
		if err != nil {
			return nil, err
		}
		truthy, err := values.IsTruthy(condition)
		if err != nil {
			return nil, err
		}
		if !truthy {
			return values.NullValue, nil
		}

		if _, err := e.Eval(node.Body); err != nil {
			if done, stop := loopSignal(err); done {
				if stop {
					return values.NullValue, nil
				}
			} else {
				return nil, err
			}
		}
		if node.Increment != nil {
			if _, err := e.Eval(node.Increment); err != nil {
				return nil, err
			}
		}
	}
}

// loopSignal classifies an evaluation error for a loop frame: the first
// result says whether it was a loop signal at all, the second whether
// it was a break.
func loopSignal(err error) (isSignal bool, isBreak bool) {
	if sig, ok := err.(*breakContinueSignal); ok {
		return true, !sig.cont
	}
	return false, false
}

// evalReturn evaluates the optional result and raises the return
// signal.
func (e *Evaluator) evalReturn(node *parser.ReturnNode) (values.Value, error) {
	if node.Value == nil {
		return nil, newReturn(nil)
	}
	value, err := e.Eval(node.Value)
	if err != nil {
		return nil, err
	}
	return nil, newReturn(value)
}

// evalFunctionDeclaration registers the function in the functions
// table. Named functions are looked up there ahead of variables, and do
// not capture an environment: their bodies see their parameters and the
// globals.
func (e *Evaluator) evalFunctionDeclaration(node *parser.FunctionDeclarationNode) (values.Value, error) {
	e.functions[node.Name] = &function.Function{
		Name:       node.Name,
		Parameters: node.Parameters,
		Arity:      len(node.Parameters),
		Body:       node.Body,
	}
	return values.NullValue, nil
}

// evalEnumDeclaration registers the enum's member table; qualified name
// lookups (Enum::Member) resolve against it.
func (e *Evaluator) evalEnumDeclaration(node *parser.EnumDeclarationNode) (values.Value, error) {
	members := make(map[string]int64, len(node.Members))
	for _, member := range node.Members {
		members[member.Name] = member.Value
	}
	e.enums[node.Name] = members
	return values.NullValue, nil
}
