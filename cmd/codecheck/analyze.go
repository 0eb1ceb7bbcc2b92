package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"codecheck/internal/domain"
	"codecheck/internal/heuristic"
	"codecheck/internal/interpreter"
	"codecheck/internal/service"
)

var errDiagnosticsFound = errors.New("diagnostics found")

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [file|-]",
	Short: "Analyze a snippet file, or stdin when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "text", "output format (text|json|yaml)")
	analyzeCmd.Flags().Bool("fail-on-diagnostics", false, "exit with status 1 when anything is reported")
}

// runAnalyze reads the snippet, runs the pipeline and prints the report.
func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	failOnDiagnostics, err := cmd.Flags().GetBool("fail-on-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get fail-on-diagnostics flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	maxSteps, err := cmd.Root().PersistentFlags().GetUint64("max-steps")
	if err != nil {
		return fmt.Errorf("failed to get max-steps flag: %w", err)
	}

	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	src, err := readSource(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	svc := service.NewAnalysisService(
		interpreter.NewStarlark(interpreter.Config{Filename: name, MaxSteps: maxSteps}),
		heuristic.NewEngine(heuristic.NewDefaultRegistry()),
	)
	report, err := svc.Analyze(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		applyColorMode(colorMode)
		writeText(out, name, report)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"success": true, "errors": report.Errors}); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	if failOnDiagnostics && len(report.Errors) > 0 {
		return errDiagnosticsFound
	}
	return nil
}

func readSource(stdin io.Reader, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

func applyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	okColor      = color.New(color.FgGreen)
)

// writeText prints one "name:line: kind: description" line per diagnostic.
func writeText(w io.Writer, name string, report *domain.AnalysisReport) {
	if len(report.Errors) == 0 {
		okColor.Fprintln(w, "no problems found")
		return
	}
	for _, d := range report.Errors {
		kind := errorColor
		if d.Type.IsWarning() {
			kind = warningColor
		}
		fmt.Fprintf(w, "%s:%d: %s: %s\n", name, d.Line, kind.Sprint(d.Type), d.Description)
	}
}
