package domain

// DiagnosticKind names the category of a Diagnostic. Runtime failures use the
// name of the raised error (NameError, ZeroDivisionError, ...).
type DiagnosticKind string

const (
	KindSyntaxError        DiagnosticKind = "Syntax Error"
	KindIndentationWarning DiagnosticKind = "Indentation Warning"
	KindVariableWarning    DiagnosticKind = "Variable Warning"
)

// Runtime failure kinds reported by the execute stage.
const (
	KindNameError         DiagnosticKind = "NameError"
	KindUnboundLocalError DiagnosticKind = "UnboundLocalError"
	KindZeroDivisionError DiagnosticKind = "ZeroDivisionError"
	KindIndexError        DiagnosticKind = "IndexError"
	KindKeyError          DiagnosticKind = "KeyError"
	KindAttributeError    DiagnosticKind = "AttributeError"
	KindTypeError         DiagnosticKind = "TypeError"
	KindValueError        DiagnosticKind = "ValueError"
	KindRecursionError    DiagnosticKind = "RecursionError"
	KindRuntimeError      DiagnosticKind = "RuntimeError"
	KindException         DiagnosticKind = "Exception"
	KindTimeoutError      DiagnosticKind = "TimeoutError"
	KindResolveError      DiagnosticKind = "ResolveError"
	KindEvalError         DiagnosticKind = "EvalError"
)

// IsWarning reports whether the kind comes from the heuristic line scan.
func (k DiagnosticKind) IsWarning() bool {
	return k == KindIndentationWarning || k == KindVariableWarning
}

// ExportFormat is a supported report download format.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat validates a format string; empty means CSV.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatXLSX:
		return ExportFormatXLSX, nil
	default:
		return "", ErrUnsupportedExportFormat
	}
}
