package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest          = errors.New("invalid request body")
	ErrCodeNotString           = errors.New("code must be a string")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrExportFailed            = errors.New("report export failed")
	ErrInterpreterUnavailable  = errors.New("interpreter unavailable")
)

// ScriptError is a failure raised by the snippet itself: a parse error or a
// runtime error. Errors of any other type coming out of the interpreter are
// infrastructure failures.
type ScriptError struct {
	Kind    DiagnosticKind
	Line    int // 1-based; 0 when unknown
	Message string
	Err     error
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Diagnostic converts the error into its report record.
func (e *ScriptError) Diagnostic() Diagnostic {
	return Diagnostic{Type: e.Kind, Line: e.Line, Description: e.Message}
}
