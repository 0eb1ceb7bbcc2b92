package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"codecheck/internal/domain"
)

// Write renders report in the given format.
func Write(out io.Writer, format domain.ExportFormat, report *domain.AnalysisReport) error {
	switch format {
	case domain.ExportFormatCSV:
		return WriteCSV(out, report)
	case domain.ExportFormatXLSX:
		return WriteXLSX(out, report)
	default:
		return domain.ErrUnsupportedExportFormat
	}
}

// ContentType returns the MIME type for a format.
func ContentType(format domain.ExportFormat) string {
	if format == domain.ExportFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized attachment name.
// Format: {sanitized_name}_{YYYY-MM-DD}.{format}
func BuildFilename(name string, format domain.ExportFormat, now time.Time) string {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		sanitized = "report"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), format)
}
