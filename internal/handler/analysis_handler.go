package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codecheck/internal/domain"
	"codecheck/internal/export"
	"codecheck/internal/middleware"
	"codecheck/internal/service"
)

// AnalysisHandler handles snippet analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	debug           bool
}

// NewAnalysisHandler creates a new AnalysisHandler. With debug set, every
// analysis outcome is logged.
func NewAnalysisHandler(analysisService service.AnalysisService, debug bool) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, debug: debug}
}

// Analyze handles POST /analyze
// @Summary Analyze a code snippet
// @Description Parse the snippet, execute it if it parses, and scan its lines for style problems. The HTTP status is always 200; when the request cannot be analyzed the body is {"success": false, "error": "..."} (see handler.AnalyzeFailure).
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Snippet to analyze"
// @Success 200 {object} AnalyzeResult "Diagnostics in pipeline order"
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	code, err := bindCode(c)
	if err != nil {
		c.JSON(http.StatusOK, AnalyzeFailure{Success: false, Error: err.Error()})
		return
	}

	report, err := h.analysisService.Analyze(c.Request.Context(), code)
	if err != nil {
		log.Printf("[%s] analysis failed: %v", requestID, err)
		c.JSON(http.StatusOK, AnalyzeFailure{Success: false, Error: err.Error()})
		return
	}

	if h.debug {
		log.Printf("[%s] analyzed %d bytes: %d diagnostics", requestID, len(code), len(report.Errors))
	}
	c.JSON(http.StatusOK, AnalyzeResult{Success: true, Errors: report.Errors})
}

// Export handles POST /analyze/export
// @Summary Analyze a snippet and download the report
// @Description Runs the same pipeline as /analyze and returns the diagnostics as a CSV or XLSX attachment.
// @Tags analysis
// @Accept json
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Param request body AnalyzeRequest true "Snippet to analyze"
// @Success 200 {file} file "Report attachment"
// @Failure 400 {object} ErrorResponseBody "Invalid request or format"
// @Failure 500 {object} ErrorResponseBody "Analysis or export failed"
// @Router /analyze/export [post]
func (h *AnalysisHandler) Export(c *gin.Context) {
	format, err := domain.ParseExportFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	code, err := bindCode(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	report, err := h.analysisService.Analyze(c.Request.Context(), code)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, report); err != nil {
		HandleError(c, fmt.Errorf("%w: %v", domain.ErrExportFailed, err))
		return
	}

	filename := export.BuildFilename("codecheck report", format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}

// bindCode reads the code field of the request body. A missing or null field
// is treated as an empty snippet.
func bindCode(c *gin.Context) (string, error) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "code" {
			return "", fmt.Errorf("%w: got %s", domain.ErrCodeNotString, typeErr.Value)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if req.Code == nil {
		return "", nil
	}
	return *req.Code, nil
}
