package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"verdant-agenda/config"
	_ "verdant-agenda/docs" // Swagger docs
	"verdant-agenda/internal/httpserver"
	"verdant-agenda/internal/model"
	"verdant-agenda/internal/schedule"
	"verdant-agenda/pkg/llmprovider"
	"verdant-agenda/pkg/log"
)

// @title       Verdant Agenda API
// @description Personal task scheduling with AI-assisted time suggestions.
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

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Verdant Agenda...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Firestore
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}
	firestoreClient, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		logger.Error(ctx, "Failed to create Firestore client: ", err)
		return
	}
	defer firestoreClient.Close()

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 30*time.Second),
	}, logger)

	// 5. Working-day bounds
	bounds := schedule.Bounds{DayStart: cfg.Schedule.DayStart, DayEnd: cfg.Schedule.DayEnd}
	if !schedule.IsValidTime(bounds.DayStart) || !schedule.IsValidTime(bounds.DayEnd) || bounds.DayStart >= bounds.DayEnd {
		logger.Warnf(ctx, "Invalid schedule bounds %q-%q, using defaults", bounds.DayStart, bounds.DayEnd)
		bounds = schedule.DefaultBounds()
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     model.Environment(cfg.Environment.Name),
		FirestoreClient: firestoreClient,
		LLMManager:      llmManager,
		Bounds:          bounds,
		Temperature:     cfg.LLM.Temperature,
		MaxTokens:       cfg.LLM.MaxTokens,
		Auth:            cfg.Auth,
		RateLimit:       cfg.RateLimit,
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

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
