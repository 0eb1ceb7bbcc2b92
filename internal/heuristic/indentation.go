package heuristic

import (
	"strings"

	"codecheck/internal/domain"
)

// IndentationRule flags a non-blank line that follows a line ending in ':'
// without starting with a space.
type IndentationRule struct{}

func (IndentationRule) RuleKey() string  { return "indentation" }
func (IndentationRule) RuleName() string { return "Missing indentation after colon" }

// Check reports the following line (1-based i+2). Tabs do not count as
// indentation; only a leading space does.
func (IndentationRule) Check(lines []string, i int) []domain.Diagnostic {
	if !strings.HasSuffix(strings.TrimSpace(lines[i]), ":") || i+1 >= len(lines) {
		return nil
	}
	next := lines[i+1]
	if strings.TrimSpace(next) == "" || strings.HasPrefix(next, " ") {
		return nil
	}
	return []domain.Diagnostic{{
		Type:        domain.KindIndentationWarning,
		Line:        i + 2,
		Description: "Missing indentation after colon",
	}}
}
