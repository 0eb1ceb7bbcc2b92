package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"codecheck/internal/domain"
	"codecheck/internal/middleware"
)

// APIResponse is the standard envelope for non-analysis API responses.
type APIResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalyzeResult is the /analyze body when the pipeline completed.
type AnalyzeResult struct {
	Success bool                `json:"success" example:"true"`
	Errors  []domain.Diagnostic `json:"errors"`
}

// AnalyzeFailure is the /analyze body when the pipeline could not run.
type AnalyzeFailure struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid request body: EOF"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object"
	case errors.Is(err, domain.ErrCodeNotString):
		return http.StatusBadRequest, "INVALID_CODE", "code must be a string"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrExportFailed):
		return http.StatusInternalServerError, "EXPORT_FAILED", "report export failed"
	case errors.Is(err, domain.ErrInterpreterUnavailable):
		return http.StatusServiceUnavailable, "INTERPRETER_UNAVAILABLE", "interpreter unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] internal error: %v", middleware.GetRequestID(c), err)
	}
	RespondError(c, status, code, msg)
}
