// Package heuristic implements the line-scan style checks that run over the
// raw text of a snippet. They are plain substring heuristics: no tokenising,
// no word boundaries and no scope analysis.
package heuristic

import "codecheck/internal/domain"

// Rule is a single line-scan heuristic.
type Rule interface {
	// Check inspects line i of lines and returns the diagnostics it raises.
	// Rules may look at any other line.
	Check(lines []string, i int) []domain.Diagnostic
	RuleKey() string
	RuleName() string
}
