// internal/errors/errors.go
package errors

import "fmt"

// ErrorType classifies where in the pipeline a failure happened.
type ErrorType string

const (
	ScanError    ErrorType = "ScanError"
	CompileError ErrorType = "CompileError"
	RuntimeError ErrorType = "RuntimeError"
)

// Scan failure messages, shared between the scanner's error tokens and tests.
const (
	UnexpectedCharacter = "Unexpected character."
	UnterminatedString  = "Unterminated string."
)

// Error carries the failure class, a message and the source line it was
// detected on (0 when no line applies, e.g. an EOF-position error).
type Error struct {
	Type    ErrorType
	Message string
	Line    int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: [line %d] %s", e.Type, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewCompileError reports a failed compilation.
func NewCompileError(message string, line int) *Error {
	return &Error{Type: CompileError, Message: message, Line: line}
}

// NewRuntimeError reports a failed execution.
func NewRuntimeError(message string, line int) *Error {
	return &Error{Type: RuntimeError, Message: message, Line: line}
}

// IsCompileError reports whether err is a compilation failure.
func IsCompileError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == CompileError
}

// IsRuntimeError reports whether err is an execution failure.
func IsRuntimeError(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Type == RuntimeError
}
