package domain

// Diagnostic is a single problem found in a snippet.
type Diagnostic struct {
	Type        DiagnosticKind `json:"type" yaml:"type" example:"NameError"`
	Line        int            `json:"line" yaml:"line" example:"1"`
	Description string         `json:"description" yaml:"description" example:"undefined: x"`
}

// AnalysisReport is the ordered result of running the diagnostic pipeline.
type AnalysisReport struct {
	Errors []Diagnostic `json:"errors" yaml:"errors"`
}

// HasKind reports whether any diagnostic in the report is of the given kind.
func (r *AnalysisReport) HasKind(kind DiagnosticKind) bool {
	for _, d := range r.Errors {
		if d.Type == kind {
			return true
		}
	}
	return false
}
