package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"codecheck/internal/domain"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{Errors: []domain.Diagnostic{
		{Type: domain.KindNameError, Line: 1, Description: "undefined: x"},
		{Type: domain.KindVariableWarning, Line: 1, Description: `Possible use of undefined variable "x"`},
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, BOM))

	rows, err := csv.NewReader(bytes.NewReader(data[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"#", "Line", "Type", "Severity", "Description"}, rows[0])
	assert.Equal(t, []string{"1", "1", "NameError", "error", "undefined: x"}, rows[1])
	assert.Equal(t, []string{"2", "1", "Variable Warning", "warning", `Possible use of undefined variable "x"`}, rows[2])
}

func TestWriteCSV_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &domain.AnalysisReport{}))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Description", rows[0][4])
	assert.Equal(t, "NameError", rows[1][2])
	assert.Equal(t, "Variable Warning", rows[2][2])
	assert.Equal(t, "warning", rows[2][3])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, domain.ExportFormat("pdf"), sampleReport())
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", ContentType(domain.ExportFormatCSV))
	assert.Contains(t, ContentType(domain.ExportFormatXLSX), "spreadsheetml")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"codecheck report", "codecheck_report"},
		{"  weird/../name!!  ", "weird_name"},
		{"a__b", "a_b"},
		{"***", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "codecheck_report_2026-03-09.csv", BuildFilename("codecheck report", domain.ExportFormatCSV, now))
	assert.Equal(t, "report_2026-03-09.xlsx", BuildFilename("!!", domain.ExportFormatXLSX, now))
}
