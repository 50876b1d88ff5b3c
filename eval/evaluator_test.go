/*
File    : logo2/eval/evaluator_test.go
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logo2lang/logo2/function"
	"github.com/logo2lang/logo2/lexer"
	"github.com/logo2lang/logo2/parser"
	"github.com/logo2lang/logo2/values"
)

// run parses and evaluates a program on a fresh evaluator.
func run(t *testing.T, src string) (values.Value, error) {
	t.Helper()
	par := parser.NewParser(lexer.NewTokenizer())
	root := par.Parse(src, 1)
	if par.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", src, par.Errors())
	}
	return NewEvaluator().Eval(root)
}

// runValue is run for programs that must succeed.
func runValue(t *testing.T, src string) values.Value {
	t.Helper()
	result, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error for %q: %v", src, err)
	}
	return result
}

// runCode is run for programs that must fail with the given code.
func runCode(t *testing.T, src string, code values.ErrorCode) {
	t.Helper()
	_, err := run(t, src)
	rte, ok := err.(*values.RuntimeError)
	if !ok {
		t.Fatalf("expected runtime error for %q, got %v", src, err)
	}
	assert.Equal(t, code, rte.Code, "source %q", src)
}

func assertInt(t *testing.T, v values.Value, expected int64) {
	t.Helper()
	integer, ok := v.(*values.Integer)
	if !ok {
		t.Fatalf("expected integer, got %s", v.Inspect())
	}
	assert.Equal(t, expected, integer.Value)
}

func assertReal(t *testing.T, v values.Value, expected float64) {
	t.Helper()
	real, ok := v.(*values.Real)
	if !ok {
		t.Fatalf("expected real, got %s", v.Inspect())
	}
	assert.InDelta(t, expected, real.Value, 1e-9)
}

func TestEvaluator_Integers(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"2", 2},
		{"-2", -2},
		{"1 + 1", 2},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"15 / 3", 5},
		{"7 % 3", 1},
		{"2 ** 10", 1024},
		{"1 * -2", -2},
		{"~0", -1},
		{"12 & 10", 8},
		{"12 | 10", 14},
		{"12 ^ 10", 6},
		{"0x10 + 1", 17},
	}
	for _, tt := range tests {
		assertInt(t, runValue(t, tt.input), tt.expected)
	}
}

func TestEvaluator_Reals(t *testing.T) {
	assertReal(t, runValue(t, "1.5 + 2"), 3.5)
	assertReal(t, runValue(t, "2 * 1.5"), 3.0)
	assertReal(t, runValue(t, "-2.5"), -2.5)
	assertReal(t, runValue(t, "2.0 ** 3"), 8.0)
	assertReal(t, runValue(t, "7.0 / 2"), 3.5)
}

// TestEvaluator_Promotion: the result of mixed arithmetic is real, of
// pure integer arithmetic integer.
func TestEvaluator_Promotion(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/"} {
		result := runValue(t, "6 "+op+" 3")
		assert.Equal(t, values.IntegerKind, result.Kind(), "op %s", op)

		result = runValue(t, "6.0 "+op+" 3")
		assert.Equal(t, values.RealKind, result.Kind(), "op %s", op)

		result = runValue(t, "6 "+op+" 3.0")
		assert.Equal(t, values.RealKind, result.Kind(), "op %s", op)
	}
}

func TestEvaluator_Booleans(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"!true", false},
		{"!0", true},
		{"!3", false},
		{"1 < 2", true},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"1 == 1.0", true},
		{"1 != 2", true},
		{`"abc" < "abd"`, true},
		{`"ab" == "ab"`, true},
		{`1 == "1"`, false},
		{`1 != "1"`, true},
		{"true & true", true},
		{"true | false", true},
		{"true ^ true", false},
		{"~false", true},
	}
	for _, tt := range tests {
		result := runValue(t, tt.input)
		boolean, ok := result.(*values.Boolean)
		if !ok {
			t.Fatalf("%q: expected boolean, got %s", tt.input, result.Inspect())
		}
		assert.Equal(t, tt.expected, boolean.Value, "input %q", tt.input)
	}
}

func TestEvaluator_Strings(t *testing.T) {
	result := runValue(t, `"ab" + "cd"`)
	str, ok := result.(*values.String)
	if !ok {
		t.Fatalf("expected string, got %s", result.Inspect())
	}
	assert.Equal(t, "abcd", str.Value)
}

func TestEvaluator_Null(t *testing.T) {
	assert.Equal(t, values.NullKind, runValue(t, "null").Kind())
	assert.Equal(t, values.NullKind, runValue(t, "var a;a").Kind())
}

// TestEvaluator_Sequence walks variables through declarations and
// assignments; the trailing bare expression is the program value.
func TestEvaluator_Sequence(t *testing.T) {
	// the assignment rebinds a to its incremented value before the
	// final expression reads both
	assertInt(t, runValue(t, `var a=2*3; var b=a+4; a=a+1; 6+b*a`), 76)
	assertInt(t, runValue(t, `var a=2*3; var b=a+4; a=b+1; 6+b*a`), 116)
	assertInt(t, runValue(t, `var a = 1; a = a + 1; a = a * 10; a`), 20)
	assertInt(t, runValue(t, `var a = 5; a += 2; a *= 3; a`), 21)
}

func TestEvaluator_AssignIsAnExpression(t *testing.T) {
	assertInt(t, runValue(t, `var a; var b; a = b = 5; a + b`), 10)
}

func TestEvaluator_Repeat(t *testing.T) {
	assertInt(t, runValue(t, `var x=0; repeat(3){ x = x+1; } x`), 3)
	assertInt(t, runValue(t, `var x=0; repeat 0 { x = x+1; } x`), 0)
	// break and continue
	assertInt(t, runValue(t, `var x=0; repeat 10 { x = x+1; if x == 4 { break; } } x`), 4)
	assertInt(t, runValue(t, `var x=0; var n=0; repeat 5 { n = n+1; if n == 2 { continue; } x = x+1; } x`), 4)
	runCode(t, `repeat 1.5 { }`, values.TypeMismatch)
	runCode(t, `repeat true { }`, values.TypeMismatch)
}

func TestEvaluator_While(t *testing.T) {
	assertInt(t, runValue(t, `var x=0; while x < 5 { x = x+1; } x`), 5)
	assertInt(t, runValue(t, `var x=0; while true { x = x+1; if x == 3 { break; } } x`), 3)
	assertInt(t, runValue(t, `var x=0; var n=0; while n < 6 { n = n+1; if n % 2 == 0 { continue; } x = x+1; } x`), 3)
}

func TestEvaluator_For(t *testing.T) {
	assertInt(t, runValue(t, `var x=0; for var i=0; i<4; i=i+1 { x = x+i; } x`), 6)
	// continue still runs the increment
	assertInt(t, runValue(t, `var x=0; for var i=0; i<4; i=i+1 { if i == 2 { continue; } x = x+1; } x`), 3)
	assertInt(t, runValue(t, `var x=0; for var i=0; i<100; i=i+1 { if i == 3 { break; } x = x+1; } x`), 3)
}

func TestEvaluator_IfExpression(t *testing.T) {
	assertInt(t, runValue(t, `var a = 1; if a > 0 { 2 } else { 3 }`), 2)
	assertInt(t, runValue(t, `var a = -1; if a > 0 { 2 } else { 3 }`), 3)
	// numeric condition truthiness
	assertInt(t, runValue(t, `if 5 { 1 } else { 2 }`), 1)
	// missing else yields null
	assert.Equal(t, values.NullKind, runValue(t, `if false { 1 }`).Kind())
	runCode(t, `if "yes" { 1 }`, values.TypeMismatch)
}

func TestEvaluator_BlockValue(t *testing.T) {
	assertInt(t, runValue(t, `{ 1; 2; 3 }`), 3)
	assert.Equal(t, values.NullKind, runValue(t, `{ }`).Kind())
}

// TestEvaluator_ScopeIsolation: inner declarations are invisible
// outside their block; outer variables are assignable from inner
// scopes.
func TestEvaluator_ScopeIsolation(t *testing.T) {
	runCode(t, `{ var inner = 1; } inner`, values.UndefinedSymbol)
	assertInt(t, runValue(t, `var outer = 1; { outer = 2; } outer`), 2)
	assertInt(t, runValue(t, `var v = 1; { var v = 9; } v`), 1)
	runCode(t, `repeat 1 { var tmp = 1; } tmp`, values.UndefinedSymbol)
}

func TestEvaluator_Functions(t *testing.T) {
	assertInt(t, runValue(t, `fn sq(n) => n*n; sq(7)`), 49)
	assertInt(t, runValue(t, `fn add(a, b) { return a + b; } add(2, 3)`), 5)
	// without return the body value is the result
	assertInt(t, runValue(t, `fn add(a, b) { a + b } add(2, 3)`), 5)
	// return exits early
	assertInt(t, runValue(t, `fn f(n) { if n > 0 { return 1; } return 2; } f(5)`), 1)
	// bare return yields null
	assert.Equal(t, values.NullKind, runValue(t, `fn f() { return; } f()`).Kind())
	// recursion
	assertInt(t, runValue(t, `fn fact(n) { if n <= 1 { 1 } else { n * fact(n - 1) } } fact(5)`), 120)
}

func TestEvaluator_FunctionErrors(t *testing.T) {
	runCode(t, `missing(1)`, values.UndefinedFunction)
	runCode(t, `var notfn = 3; notfn(1)`, values.NotCallable)
	runCode(t, `fn f(a) { a } f(1, 2)`, values.ArgumentCountMismatch)
	runCode(t, `fn f(a, b) { a } f(1)`, values.ArgumentCountMismatch)
}

// TestEvaluator_Closures: an anonymous function captures its defining
// scope chain and reads captured values at call time.
func TestEvaluator_Closures(t *testing.T) {
	assertInt(t, runValue(t, `fn adder(x){ fn(y) => x+y; } var add3 = adder(3); add3(4)`), 7)
	assertInt(t, runValue(t, `var f = fn(a) => a * 2; f(21)`), 42)
	// two closures from the same factory hold distinct captures
	assertInt(t, runValue(t, `
		fn adder(x){ fn(y) => x+y; }
		var add3 = adder(3);
		var add10 = adder(10);
		add3(1) + add10(1)`), 15)
	// globals defined after the closure stay visible through the
	// re-parented chain
	assertInt(t, runValue(t, `
		var f = fn() => g + 1;
		var g = 41;
		f()`), 42)
}

func TestEvaluator_RuntimeErrors(t *testing.T) {
	runCode(t, `1/0`, values.DivisionByZero)
	runCode(t, `1 % 0`, values.DivisionByZero)
	runCode(t, `unknown`, values.UndefinedSymbol)
	runCode(t, `1 + "x"`, values.TypeMismatch)
	runCode(t, `"a" - "b"`, values.TypeMismatch)
	runCode(t, `1.5 % 2`, values.TypeMismatch)
	runCode(t, `-true`, values.TypeMismatch)
	runCode(t, `~"x"`, values.TypeMismatch)
	runCode(t, `true < false`, values.TypeMismatch)
}

func TestEvaluator_ConstAtRuntime(t *testing.T) {
	// the parser rejects direct const assignment; the runtime check
	// still guards bindings reached through other paths
	ev := NewEvaluator()
	ev.AddVariable("answer", &values.Integer{Value: 42}, true)

	par := parser.NewParser(lexer.NewTokenizer())
	root := par.Parse("answer + 1", 1)
	assert.False(t, par.HasErrors())
	result, err := ev.Eval(root)
	assert.NoError(t, err)
	assertInt(t, result, 43)

	// a direct assignment node against the const binding trips the
	// runtime guard
	assign := &parser.AssignNode{
		Name:  "answer",
		Value: &parser.LiteralNode{Token: lexer.Token{Type: lexer.INTEGER, Lexeme: "1", Value: int64(1)}},
	}
	_, err = ev.Eval(assign)
	rte, ok := err.(*values.RuntimeError)
	if !ok {
		t.Fatalf("expected runtime error, got %v", err)
	}
	assert.Equal(t, values.CannotAssignConst, rte.Code)
}

func TestEvaluator_Enums(t *testing.T) {
	assertInt(t, runValue(t, `enum Color { Red, Green, Blue } Color::Green`), 1)
	assertInt(t, runValue(t, `enum Color { Red, Green = 5, Blue } Color::Blue`), 6)
	assertInt(t, runValue(t, `enum Flags { A = 1, B = 2, C = 4 } Flags::A | Flags::C`), 5)
	runCode(t, `enum Color { Red } Color::Purple`, values.UndefinedSymbol)
	runCode(t, `Nope::Member`, values.UndefinedSymbol)
}

func TestEvaluator_NativeFunctions(t *testing.T) {
	ev := NewEvaluator()
	calls := 0
	registered := ev.AddNativeFunction("probe", 2, func(interp function.Interp, args []values.Value) (values.Value, error) {
		calls++
		return values.Add(args[0], args[1])
	})
	assert.True(t, registered)
	// duplicate names are rejected
	assert.False(t, ev.AddNativeFunction("probe", 0, func(interp function.Interp, args []values.Value) (values.Value, error) {
		return values.NullValue, nil
	}))

	par := parser.NewParser(lexer.NewTokenizer())
	root := par.Parse("probe(20, 22)", 1)
	assert.False(t, par.HasErrors())
	result, err := ev.Eval(root)
	assert.NoError(t, err)
	assertInt(t, result, 42)
	assert.Equal(t, 1, calls)

	// strict arity for natives too
	root = par.Parse("probe(1)", 1)
	assert.False(t, par.HasErrors())
	_, err = ev.Eval(root)
	rte, ok := err.(*values.RuntimeError)
	if !ok {
		t.Fatalf("expected runtime error, got %v", err)
	}
	assert.Equal(t, values.ArgumentCountMismatch, rte.Code)
}

// TestEvaluator_ArgumentOrder verifies strict left-to-right argument
// evaluation.
func TestEvaluator_ArgumentOrder(t *testing.T) {
	ev := NewEvaluator()
	var order []string
	ev.AddNativeFunction("mark", 1, func(interp function.Interp, args []values.Value) (values.Value, error) {
		order = append(order, args[0].ToString())
		return args[0], nil
	})
	ev.AddNativeFunction("sink", 3, func(interp function.Interp, args []values.Value) (values.Value, error) {
		return values.NullValue, nil
	})

	par := parser.NewParser(lexer.NewTokenizer())
	root := par.Parse(`sink(mark("a"), mark("b"), mark("c"))`, 1)
	assert.False(t, par.HasErrors())
	_, err := ev.Eval(root)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

// TestEvaluator_StatePersistsAcrossForms mirrors REPL usage: one
// evaluator, many parsed lines.
func TestEvaluator_StatePersistsAcrossForms(t *testing.T) {
	ev := NewEvaluator()
	par := parser.NewParser(lexer.NewTokenizer())

	for _, src := range []string{"var total = 0;", "fn bump(n) { total = total + n; }"} {
		root := par.Parse(src, 1)
		assert.False(t, par.HasErrors(), "source %q", src)
		_, err := ev.Eval(root)
		assert.NoError(t, err, "source %q", src)
	}

	root := par.Parse("bump(5); bump(7); total", 1)
	assert.False(t, par.HasErrors())
	result, err := ev.Eval(root)
	assert.NoError(t, err)
	assertInt(t, result, 12)
}
