package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minwon-analytics/config"
	_ "minwon-analytics/docs" // Swagger docs
	analysisHTTP "minwon-analytics/internal/analysis/delivery/http"
	"minwon-analytics/internal/analysis/repository/publicapi"
	"minwon-analytics/internal/analysis/summarizer"
	"minwon-analytics/internal/analysis/usecase"
	"minwon-analytics/internal/httpserver"
	"minwon-analytics/internal/middleware"
	"minwon-analytics/pkg/llmprovider"
	"minwon-analytics/pkg/log"
)

// @title       Minwon Analytics API
// @description Complaint statistics analysis over the public complaint big-data Open API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}
	if err := cfg.ValidateLLM(); err != nil {
		fmt.Println("Invalid LLM config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Minwon Analytics...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Public API: %s", cfg.PublicAPI.BaseURL)

	loc, err := time.LoadLocation(cfg.Analysis.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Analysis.Timezone, err)
		loc = time.UTC
	}

	// 3. Public API repository
	apiClient := publicapi.NewClient(publicapi.Config{
		BaseURL:    cfg.PublicAPI.BaseURL,
		ServiceKey: cfg.PublicAPI.ServiceKey,
		Timeout:    cfg.PublicAPI.Timeout,
	}, logger)
	defer apiClient.CloseIdleConnections()
	statsRepo := publicapi.New(apiClient, logger)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmConfig, err := llmprovider.NewConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, llmConfig, logger)
	defer func() {
		if err := llmManager.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close LLM providers: %v", err)
		}
	}()
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 5. Analysis domain
	analysisUC := usecase.New(
		logger,
		statsRepo,
		summarizer.New(llmManager, summarizer.Options{
			Temperature: cfg.Analysis.Temperature,
			MaxTokens:   cfg.Analysis.MaxTokens,
		}),
		nil,
		usecase.Settings{
			Location:       loc,
			MaxQueryLength: cfg.Analysis.MaxQueryLength,
		},
	)
	analysisHandler := analysisHTTP.New(logger, analysisUC, cfg.Analysis.MaxQueryLength)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit.PerMin),
		AnalysisHandler: analysisHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
