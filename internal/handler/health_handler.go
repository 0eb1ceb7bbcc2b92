package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codecheck/internal/port"
)

// readinessProbe is executed by Readiness to prove the interpreter works.
const readinessProbe = "ready = 1 + 1\n"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	interp port.Interpreter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(interp port.Interpreter) *HealthHandler {
	return &HealthHandler{interp: interp}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.interp.CheckSyntax(readinessProbe); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "interpreter cannot parse"})
		return
	}
	if err := h.interp.Execute(c.Request.Context(), readinessProbe); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "interpreter cannot execute"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
