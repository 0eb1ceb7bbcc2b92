package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"codecheck/internal/domain"
	"codecheck/internal/heuristic"
	"codecheck/internal/port"
)

// AnalysisService runs the diagnostic pipeline over a snippet.
type AnalysisService interface {
	Analyze(ctx context.Context, code string) (*domain.AnalysisReport, error)
}

type analysisService struct {
	interp     port.Interpreter
	heuristics *heuristic.Engine
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(interp port.Interpreter, heuristics *heuristic.Engine) AnalysisService {
	return &analysisService{interp: interp, heuristics: heuristics}
}

// Analyze runs the parse check, then the execute check if parsing succeeded,
// then the heuristic line scan, and returns their records in that order.
// A non-nil error means the pipeline itself failed, not the snippet.
func (s *analysisService) Analyze(ctx context.Context, code string) (report *domain.AnalysisReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("service.Analysis: recovered panic: %v", r)
			report, err = nil, fmt.Errorf("analysis failed: %v", r)
		}
	}()

	diags := make([]domain.Diagnostic, 0)

	syntaxDiag, err := stageDiagnostic("parse check", s.interp.CheckSyntax(code))
	if err != nil {
		return nil, err
	}
	if syntaxDiag != nil {
		diags = append(diags, *syntaxDiag)
	} else {
		runDiag, err := stageDiagnostic("execute check", s.interp.Execute(ctx, code))
		if err != nil {
			return nil, err
		}
		if runDiag != nil {
			diags = append(diags, *runDiag)
		}
	}

	diags = append(diags, s.heuristics.Scan(code)...)

	return &domain.AnalysisReport{Errors: diags}, nil
}

// stageDiagnostic converts a stage result into its record. Script errors
// become diagnostics; anything else is a pipeline failure.
func stageDiagnostic(stage string, err error) (*domain.Diagnostic, error) {
	if err == nil {
		return nil, nil
	}
	var scriptErr *domain.ScriptError
	if errors.As(err, &scriptErr) {
		d := scriptErr.Diagnostic()
		return &d, nil
	}
	return nil, fmt.Errorf("%s: %w", stage, err)
}
