package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "codecheck/docs" // registers the OpenAPI spec served at /swagger
	"codecheck/internal/config"
	"codecheck/internal/handler"
	"codecheck/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analysisH *handler.AnalysisHandler,
	healthH *handler.HealthHandler,
	staticH *handler.StaticHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(cfg.Log.Format))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// UI
	r.GET("/", staticH.Index)
	r.GET("/script.js", staticH.Script)

	// Analysis
	r.POST("/analyze", analysisH.Analyze)
	r.POST("/analyze/export", analysisH.Export)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
