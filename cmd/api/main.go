package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-orchestrator/config"
	_ "travel-orchestrator/docs" // Swagger docs
	"travel-orchestrator/internal/httpserver"
	"travel-orchestrator/internal/router"
	travelUC "travel-orchestrator/internal/travel/usecase"
	"travel-orchestrator/internal/trigger"
	"travel-orchestrator/pkg/log"
)

// @title       Travel Orchestrator API
// @description Routes travel chat messages to static handlers or an LLM travel agent and returns a normalized envelope.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
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

	logger.Info(ctx, "Starting Travel Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Router mode: %s", cfg.Router.Mode)

	// 3. Trigger detector
	detector, err := trigger.New(cfg.Trigger.Words)
	if err != nil {
		logger.Error(ctx, "Failed to initialize trigger detector: ", err)
		return
	}

	// 4. Agent backend, dynamic mode only
	var backend router.Backend
	if router.Mode(cfg.Router.Mode) == router.ModeDynamic {
		backend, err = newAgentBackend(ctx, cfg, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize travel agent: ", err)
			return
		}
		logger.Info(ctx, "Travel agent initialized")
	} else {
		logger.Info(ctx, "Static mode: travel agent disabled")
	}

	// 5. Router and travel use case
	intentRouter, err := router.New(logger, router.Config{
		Mode:        router.Mode(cfg.Router.Mode),
		DefaultCity: cfg.Router.DefaultCity,
	}, detector, backend)
	if err != nil {
		logger.Error(ctx, "Failed to initialize router: ", err)
		return
	}
	uc := travelUC.New(intentRouter, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TravelUseCase:   uc,
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
