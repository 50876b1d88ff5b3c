/*
File    : logo2/values/errors.go
*/
package values

import "fmt"

// ErrorCode names a runtime error category. The codes are rendered
// verbatim in diagnostics, so they double as the user-facing vocabulary
// of runtime failures.
type ErrorCode string

const (
	CannotAssignConst     ErrorCode = "CannotAssignConst"
	TypeMismatch          ErrorCode = "TypeMismatch"
	ArgumentCountMismatch ErrorCode = "ArgumentCountMismatch"
	UndefinedFunction     ErrorCode = "UndefinedFunction"
	DivisionByZero        ErrorCode = "DivisionByZero"
	UndefinedOperator     ErrorCode = "UndefinedOperator"
	UndefinedSymbol       ErrorCode = "UndefinedSymbol"
	NotCallable           ErrorCode = "NotCallable"
)

// RuntimeError is the error type surfaced by evaluation. It terminates
// the current top-level form; the REPL and CLI render it via Error().
type RuntimeError struct {
	Code   ErrorCode
	Detail string
}

// NewRuntimeError creates a runtime error with the given code.
func NewRuntimeError(code ErrorCode) *RuntimeError {
	return &RuntimeError{Code: code}
}

// NewRuntimeErrorf creates a runtime error with a formatted detail text.
// The detail is informational; the rendered prefix stays code-only.
func NewRuntimeErrorf(code ErrorCode, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Code: code, Detail: fmt.Sprintf(format, a...)}
}

// Error renders the error in the "Runtime error: <code>" form.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %s", e.Code)
}
