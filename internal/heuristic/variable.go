package heuristic

import (
	"fmt"
	"strings"

	"codecheck/internal/domain"
)

// UndefinedVariableRule treats everything left of the first '=' on a line as
// an assigned name and flags every earlier line that mentions it as a
// substring while containing no '=' itself.
//
// Comparisons (==), augmented assignment (+=) and multi-target assignment are
// not special-cased; an empty name matches every earlier '='-free line.
type UndefinedVariableRule struct{}

func (UndefinedVariableRule) RuleKey() string  { return "undefined_variable" }
func (UndefinedVariableRule) RuleName() string { return "Possible use of undefined variable" }

// Check reports each matching earlier line j at 1-based line j+1, in
// ascending order.
func (UndefinedVariableRule) Check(lines []string, i int) []domain.Diagnostic {
	before, _, found := strings.Cut(lines[i], "=")
	if !found {
		return nil
	}
	name := strings.TrimSpace(before)

	var out []domain.Diagnostic
	for j := 0; j < i; j++ {
		if strings.Contains(lines[j], name) && !strings.Contains(lines[j], "=") {
			out = append(out, domain.Diagnostic{
				Type:        domain.KindVariableWarning,
				Line:        j + 1,
				Description: fmt.Sprintf(`Possible use of undefined variable "%s"`, name),
			})
		}
	}
	return out
}
