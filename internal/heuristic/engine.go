package heuristic

import (
	"strings"

	"codecheck/internal/domain"
)

// Engine runs every registered rule over every line of a snippet.
type Engine struct {
	registry *Registry
}

// NewEngine creates a new heuristic engine.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Scan splits code on "\n" and applies the rules line by line. For each line
// the rules run in registration order, so output is ordered by line first and
// rule second. It never fails.
func (e *Engine) Scan(code string) []domain.Diagnostic {
	lines := strings.Split(code, "\n")
	rules := e.registry.All()

	var out []domain.Diagnostic
	for i := range lines {
		for _, rule := range rules {
			out = append(out, rule.Check(lines, i)...)
		}
	}
	return out
}
