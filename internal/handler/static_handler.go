package handler

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the single-page UI.
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler creates a StaticHandler over files, which must contain
// index.html and script.js.
func NewStaticHandler(files fs.FS) *StaticHandler {
	return &StaticHandler{files: files}
}

// Index handles GET /
func (h *StaticHandler) Index(c *gin.Context) {
	h.serve(c, "index.html", "text/html; charset=utf-8")
}

// Script handles GET /script.js
func (h *StaticHandler) Script(c *gin.Context) {
	h.serve(c, "script.js", "application/javascript; charset=utf-8")
}

func (h *StaticHandler) serve(c *gin.Context, name, contentType string) {
	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
