// Package export renders analysis reports as downloadable files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"codecheck/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by every export format.
var columns = []string{
	"#",
	"Line",
	"Type",
	"Severity",
	"Description",
}

// Writer wraps csv.Writer for exporting diagnostics as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDiagnostics writes one row per diagnostic, numbered from 1.
func (w *Writer) WriteDiagnostics(diags []domain.Diagnostic) error {
	for i := range diags {
		if err := w.csv.Write(diagnosticToRow(i, &diags[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a complete CSV report, BOM first.
func WriteCSV(out io.Writer, report *domain.AnalysisReport) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteDiagnostics(report.Errors); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func diagnosticToRow(idx int, d *domain.Diagnostic) []string {
	return []string{
		strconv.Itoa(idx + 1),
		strconv.Itoa(d.Line),
		string(d.Type),
		severity(d.Type),
		d.Description,
	}
}

func severity(kind domain.DiagnosticKind) string {
	if kind.IsWarning() {
		return "warning"
	}
	return "error"
}
