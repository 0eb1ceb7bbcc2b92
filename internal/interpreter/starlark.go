// Package interpreter runs snippets with the Starlark dialect of Python.
package interpreter

import (
	"context"
	"fmt"

	starjson "go.starlark.net/lib/json"
	starmath "go.starlark.net/lib/math"
	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// DefaultFilename is the name snippets are parsed under when none is configured.
const DefaultFilename = "<snippet>"

// Config holds interpreter settings.
type Config struct {
	Filename string
	MaxSteps uint64 // 0 means unbounded
}

// Starlark parses and executes snippets in-process with go.starlark.net.
// Dialect switches are enabled so that script-shaped Python (top-level
// if/for, while loops, sets, global reassignment) is accepted. Recursion is
// left off: a recursive call fails with "called recursively" instead of
// growing the Go stack without bound.
type Starlark struct {
	filename    string
	maxSteps    uint64
	opts        *syntax.FileOptions
	predeclared starlark.StringDict
}

// NewStarlark creates a Starlark interpreter.
func NewStarlark(cfg Config) *Starlark {
	filename := cfg.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	predeclared := starlark.StringDict{
		"json":   starjson.Module,
		"math":   starmath.Module,
		"time":   startime.Module,
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
	}
	predeclared.Freeze()

	return &Starlark{
		filename: filename,
		maxSteps: cfg.MaxSteps,
		opts: &syntax.FileOptions{
			Set:               true,
			While:             true,
			TopLevelControl:   true,
			GlobalReassign:    true,
			LoadBindsGlobally: true,
		},
		predeclared: predeclared,
	}
}

// CheckSyntax parses src and returns a *domain.ScriptError of kind
// "Syntax Error" for the first problem found.
func (s *Starlark) CheckSyntax(src string) error {
	if _, err := s.opts.Parse(s.filename, src, 0); err != nil {
		return syntaxError(err)
	}
	return nil
}

// Execute runs src on a fresh thread. Anything the snippet prints is captured
// for the duration of the run and discarded. The snippet runs until it
// finishes or fails; there is no time limit unless MaxSteps is set, and the
// context is not used for cancellation.
func (s *Starlark) Execute(_ context.Context, src string) (err error) {
	thread := &starlark.Thread{Name: s.filename}
	if s.maxSteps > 0 {
		thread.SetMaxExecutionSteps(s.maxSteps)
	}

	out := captureOutput(thread)
	defer out.Release()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("executing snippet: panic: %v", r)
		}
	}()

	if _, err := starlark.ExecFileOptions(s.opts, thread, s.filename, src, s.predeclared); err != nil {
		return classify(err)
	}
	return nil
}
