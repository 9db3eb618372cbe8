package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-studio/config"
	_ "creator-studio/docs" // Swagger docs
	"creator-studio/internal/httpserver"
	"creator-studio/pkg/datemath"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
	"creator-studio/pkg/slotstore"
	"creator-studio/pkg/youtube"
)

// @title       Creator Studio API
// @description Calendar and kanban scheduling for content creators: tasks, production stages, metric goals, content pillars.
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

	logger.Info(ctx, "Starting Creator Studio...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data directory: %s", cfg.Storage.DataDir)

	// 3. Storage and shared infrastructure
	store, err := slotstore.New(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open slot store: ", err)
		return
	}

	notifier := notify.NewCenter(logger, cfg.Notifications.Capacity)

	timezone := cfg.Schedule.Timezone
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		parser, _ = datemath.NewParser("UTC")
		timezone = "UTC"
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}

	// 4. YouTube client (optional)
	var ytClient *youtube.Client
	switch {
	case cfg.YouTube.APIKey != "":
		ytClient, err = youtube.NewClientWithAPIKey(ctx, cfg.YouTube.APIKey)
		if err != nil {
			logger.Warnf(ctx, "YouTube not available (optional): %v", err)
		} else {
			logger.Info(ctx, "YouTube initialized with API key")
		}
	case cfg.YouTube.CredentialsPath != "":
		ytClient, err = youtube.NewClientFromCredentialsFile(ctx, cfg.YouTube.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "YouTube not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/yt-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "YouTube initialized from credentials file")
		}
	default:
		logger.Info(ctx, "No YouTube credentials configured, pillar suggestions use the starter library")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Store:           store,
		Notifier:        notifier,
		Parser:          parser,
		Location:        location,
		YouTube:         ytClient,
		RateLimitPerMin: cfg.API.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
