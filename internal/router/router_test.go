package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"codecheck/internal/config"
	"codecheck/internal/handler"
	"codecheck/internal/heuristic"
	"codecheck/internal/interpreter"
	"codecheck/internal/router"
	"codecheck/internal/service"
	"codecheck/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newEngine() *gin.Engine {
	cfg := &config.Config{
		Log:  config.LogConfig{Level: "info", Format: "console"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5501"}},
	}
	interp := interpreter.NewStarlark(interpreter.Config{})
	svc := service.NewAnalysisService(interp, heuristic.NewEngine(heuristic.NewDefaultRegistry()))
	return router.Setup(cfg,
		handler.NewAnalysisHandler(svc, false),
		handler.NewHealthHandler(interp),
		handler.NewStaticHandler(web.Files),
	)
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Analyze(t *testing.T) {
	r := newEngine()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"missing code field",
			`{}`,
			`{"success": true, "errors": []}`,
		},
		{
			"variable heuristic",
			`{"code": "print(x)\nx = 5"}`,
			`{"success": true, "errors": [
				{"type": "NameError", "line": 1, "description": "undefined: x"},
				{"type": "Variable Warning", "line": 1, "description": "Possible use of undefined variable \"x\""}
			]}`,
		},
		{
			"indented block",
			`{"code": "if True:\n    print(1)"}`,
			`{"success": true, "errors": []}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/analyze", tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRouter_AnalyzeInvalidBodyStill200(t *testing.T) {
	w := do(newEngine(), http.MethodPost, "/analyze", `not json`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_StaticAndHealth(t *testing.T) {
	r := newEngine()

	w := do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>codecheck</title>")
	assert.Contains(t, w.Body.String(), `id="drop-zone"`)
	assert.Contains(t, w.Body.String(), `id="theme-toggle"`)

	w = do(r, http.MethodGet, "/script.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/analyze")
	assert.Contains(t, w.Body.String(), "jumpToLine(d.line)")

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/readyz", "").Code)
}

func TestRouter_Export(t *testing.T) {
	w := do(newEngine(), http.MethodPost, "/analyze/export?format=csv", `{"code": "if x:\ny = 1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Syntax Error")
	assert.Contains(t, w.Body.String(), "Indentation Warning")
}

func TestRouter_Swagger(t *testing.T) {
	w := do(newEngine(), http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/analyze")
}
