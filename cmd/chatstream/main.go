// chatstream hub server: REST API for research workers, PG NOTIFY fan-out
// to WebSocket subscribers, and the per-interaction direct text stream.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/chatstream/pkg/api"
	"github.com/codeready-toolchain/chatstream/pkg/cleanup"
	"github.com/codeready-toolchain/chatstream/pkg/config"
	"github.com/codeready-toolchain/chatstream/pkg/database"
	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/codeready-toolchain/chatstream/pkg/services"
	"github.com/codeready-toolchain/chatstream/pkg/slack"
	"github.com/codeready-toolchain/chatstream/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting chatstream hub",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	interactionService := services.NewInteractionService(dbClient.Client)
	resourceService := services.NewResourceService(dbClient.Client)
	stepService := services.NewStepService(dbClient.Client)
	queueService := services.NewQueueService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier,
		cfg.Streaming.WSWriteTimeout, cfg.Streaming.CatchupLimit)

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Retention
	cleanupService := cleanup.NewService(cfg.Retention, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 6. Slack (nil when not configured)
	var slackService *slack.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.DashboardURL,
		})
		if slackService != nil {
			slog.Info("Slack notifications enabled", "channel", cfg.Slack.Channel)
		}
	}

	// 7. HTTP server
	httpServer := api.NewServer(cfg, dbClient,
		interactionService, resourceService, stepService, queueService, connManager)
	httpServer.SetEventPublisher(eventPublisher)
	httpServer.SetSlackService(slackService)
	httpServer.SetInteractionPurger(cleanupService)

	if err := httpServer.ValidateWiring(); err != nil {
		slog.Error("HTTP server wiring incomplete", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("chatstream hub started", "dashboard_url", cfg.DashboardURL)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown. Open direct streams and WebSockets end with
	// their request contexts.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
