package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"codecheck/internal/config"
	"codecheck/internal/handler"
	"codecheck/internal/heuristic"
	"codecheck/internal/interpreter"
	"codecheck/internal/router"
	"codecheck/internal/service"
	"codecheck/web"
)

// @title codecheck API
// @version 1.0
// @description Parses, executes and lints Python-style code snippets.
// @BasePath /

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Log.Format == "json" {
		log.SetFlags(0)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize interpreter and heuristics
	interp := interpreter.NewStarlark(interpreter.Config{
		Filename: cfg.Analyzer.Filename,
		MaxSteps: cfg.Analyzer.MaxSteps,
	})
	heuristics := heuristic.NewEngine(heuristic.NewDefaultRegistry())

	// Initialize services
	analysisSvc := service.NewAnalysisService(interp, heuristics)

	// Initialize handlers
	analysisH := handler.NewAnalysisHandler(analysisSvc, cfg.Log.Debug())
	healthH := handler.NewHealthHandler(interp)
	staticH := handler.NewStaticHandler(web.Files)

	// Setup router
	r := router.Setup(cfg, analysisH, healthH, staticH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Printf("Server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
