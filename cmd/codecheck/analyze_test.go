package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"codecheck/internal/domain"
)

func TestMain(m *testing.M) {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.PersistentFlags().String("color", "auto", "")
	rootCmd.PersistentFlags().Uint64("max-steps", 0, "")
	os.Exit(m.Run())
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	analyzeCmd.Flags().Set("format", "text")
	analyzeCmd.Flags().Set("fail-on-diagnostics", "false")
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyze_TextFromStdin(t *testing.T) {
	out, err := execute(t, "print(x)\nx = 5", "analyze", "--color", "off")
	require.NoError(t, err)

	assert.Contains(t, out, "-:1: NameError: undefined: x")
	assert.Contains(t, out, `-:1: Variable Warning: Possible use of undefined variable "x"`)
}

func TestAnalyze_CleanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 5\nprint(x)\n"), 0o600))

	out, err := execute(t, "", "analyze", "--color", "off", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no problems found")
}

func TestAnalyze_YAML(t *testing.T) {
	out, err := execute(t, "if True:\nprint(1)", "analyze", "--format", "yaml")
	require.NoError(t, err)

	var report domain.AnalysisReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Errors, 2)
	assert.Equal(t, domain.KindSyntaxError, report.Errors[0].Type)
	assert.Equal(t, domain.KindIndentationWarning, report.Errors[1].Type)
	assert.Equal(t, 2, report.Errors[1].Line)
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := execute(t, "", "analyze", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "errors": []}`, out)
}

func TestAnalyze_FailOnDiagnostics(t *testing.T) {
	_, err := execute(t, "1 // 0", "analyze", "--color", "off", "--fail-on-diagnostics")
	assert.ErrorIs(t, err, errDiagnosticsFound)
}

func TestAnalyze_UnknownFormat(t *testing.T) {
	_, err := execute(t, "", "analyze", "--format", "toml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestAnalyze_MissingFile(t *testing.T) {
	_, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "nope.py"))
	assert.ErrorContains(t, err, "reading")
}

func TestWriteText_Colors(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	var buf bytes.Buffer
	writeText(&buf, "f.py", &domain.AnalysisReport{Errors: []domain.Diagnostic{
		{Type: domain.KindTypeError, Line: 3, Description: "bad"},
	}})
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "f.py:3:")
}
