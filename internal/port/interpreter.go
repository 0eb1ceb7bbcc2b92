package port

import "context"

// Interpreter abstracts the language runtime that parses and executes snippets.
//
// Failures caused by the snippet are returned as *domain.ScriptError; any other
// error means the interpreter itself could not do its job.
type Interpreter interface {
	// CheckSyntax parses src without running it.
	CheckSyntax(src string) error
	// Execute runs src to completion, stopping at the first failure.
	Execute(ctx context.Context, src string) error
}
