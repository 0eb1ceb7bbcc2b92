package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"codecheck/internal/domain"
)

// runtimeKinds maps fragments of Starlark runtime error messages to the
// Python exception name reported for them. First match wins.
var runtimeKinds = []struct {
	fragment string
	kind     domain.DiagnosticKind
}{
	{"Starlark computation cancelled", domain.KindTimeoutError},
	{"local variable", domain.KindUnboundLocalError},
	{"referenced before assignment", domain.KindNameError},
	{"division by zero", domain.KindZeroDivisionError},
	{"modulo by zero", domain.KindZeroDivisionError},
	{"out of range", domain.KindIndexError},
	{"not in dict", domain.KindKeyError},
	{"field or method", domain.KindAttributeError},
	{"called recursively", domain.KindRecursionError},
	{"frozen", domain.KindRuntimeError},
	{"during iteration", domain.KindRuntimeError},
	{"invalid literal", domain.KindValueError},
	{"not in list", domain.KindValueError},
	{"unsupported binary operation", domain.KindTypeError},
	{"unknown binary op", domain.KindTypeError},
	{"unsupported unary op", domain.KindTypeError},
	{"not callable", domain.KindTypeError},
	{"not iterable", domain.KindTypeError},
	{"unhashable", domain.KindTypeError},
	{"missing argument", domain.KindTypeError},
	{"unexpected keyword argument", domain.KindTypeError},
	{"want ", domain.KindTypeError},
}

// classify turns an error from the Starlark toolchain into a
// *domain.ScriptError. Errors that do not come from the snippet are wrapped
// and returned as-is.
func classify(err error) error {
	var synErr syntax.Error
	if errors.As(err, &synErr) {
		return syntaxError(err)
	}

	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) && len(resolveErrs) > 0 {
		first := resolveErrs[0]
		kind := domain.KindResolveError
		if strings.HasPrefix(first.Msg, "undefined:") {
			kind = domain.KindNameError
		}
		return &domain.ScriptError{Kind: kind, Line: int(first.Pos.Line), Message: first.Msg, Err: err}
	}

	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return &domain.ScriptError{
			Kind:    runtimeKind(evalErr.Msg),
			Line:    deepestLine(evalErr.CallStack),
			Message: evalErr.Msg,
			Err:     err,
		}
	}

	return fmt.Errorf("executing snippet: %w", err)
}

func syntaxError(err error) *domain.ScriptError {
	var synErr syntax.Error
	if errors.As(err, &synErr) {
		return &domain.ScriptError{Kind: domain.KindSyntaxError, Line: int(synErr.Pos.Line), Message: synErr.Msg, Err: err}
	}
	return &domain.ScriptError{Kind: domain.KindSyntaxError, Message: err.Error(), Err: err}
}

func runtimeKind(msg string) domain.DiagnosticKind {
	if strings.HasPrefix(msg, "fail:") {
		return domain.KindException
	}
	for _, rk := range runtimeKinds {
		if strings.Contains(msg, rk.fragment) {
			return rk.kind
		}
	}
	return domain.KindEvalError
}

// deepestLine returns the line of the innermost frame that has a source
// position. Built-in frames have none.
func deepestLine(stack starlark.CallStack) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if line := int(stack[i].Pos.Line); line > 0 {
			return line
		}
	}
	return 0
}
