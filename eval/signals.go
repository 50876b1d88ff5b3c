/*
File    : logo2/eval/signals.go
*/
package eval

import "github.com/logo2lang/logo2/values"

// Non-local control flow is modeled as sentinel error values rather
// than panics: return unwinds to the nearest function call, break and
// continue to the nearest loop, and QuitSignal all the way to the REPL.
// They are not runtime errors; the frames that consume them never let
// them escape to the user.

// returnSignal carries a return value up to the function-call frame.
type returnSignal struct {
	value values.Value
}

func (s *returnSignal) Error() string { return "return outside of function" }

// newReturn wraps a value (nil becomes null) in a return signal.
func newReturn(value values.Value) *returnSignal {
	if value == nil {
		value = values.NullValue
	}
	return &returnSignal{value: value}
}

// breakContinueSignal unwinds to the nearest enclosing loop.
type breakContinueSignal struct {
	cont bool
}

func (s *breakContinueSignal) Error() string {
	if s.cont {
		return "continue outside of loop"
	}
	return "break outside of loop"
}

func newBreakContinue(cont bool) *breakContinueSignal {
	return &breakContinueSignal{cont: cont}
}

// QuitSignal is raised by a host quit native and observed by the REPL
// loop, which exits with the carried code.
type QuitSignal struct {
	Code int
}

func (s *QuitSignal) Error() string { return "quit" }
