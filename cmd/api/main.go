package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"apply-tracker/config"
	_ "apply-tracker/docs" // Swagger docs
	"apply-tracker/internal/httpserver"
	trackerHTTP "apply-tracker/internal/tracker/delivery/http"
	"apply-tracker/internal/tracker/repository"
	gsheetsRepo "apply-tracker/internal/tracker/repository/gsheets"
	"apply-tracker/internal/tracker/repository/memgrid"
	"apply-tracker/internal/tracker/usecase"
	"apply-tracker/internal/webhook"
	pkgGSheets "apply-tracker/pkg/gsheets"
	"apply-tracker/pkg/log"
	"apply-tracker/pkg/notify"
	"apply-tracker/pkg/telegram"
)

// @title       Apply Tracker API
// @description Job application tracker: Applied checkbox provisioning, edit-driven row highlighting, and application stats over spreadsheet backends.
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

	logger.Info(ctx, "Starting Apply Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Sheet backend: Google Sheets when configured, in-memory otherwise
	var (
		repo    repository.SheetRepository
		creator repository.Creator
	)
	if cfg.GoogleSheets.CredentialsPath != "" && cfg.GoogleSheets.SpreadsheetID != "" {
		client, gsErr := pkgGSheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if gsErr != nil {
			logger.Error(ctx, "Google Sheets not available: ", gsErr)
			logger.Warn(ctx, "→ Run `go run scripts/sheets-auth/main.go` to generate token.json")
			return
		}
		repo = gsheetsRepo.New(client, cfg.GoogleSheets.SpreadsheetID, logger)
		logger.Infof(ctx, "Backend: Google Sheets (spreadsheet %s)", cfg.GoogleSheets.SpreadsheetID)
	} else {
		store := memgrid.NewStore(logger)
		repo = store
		creator = store
		logger.Warn(ctx, "Backend: in-memory (google_sheets.credentials_path not configured)")
	}

	// 4. Notifier: Telegram when configured, log otherwise
	notifier := notify.NewLog(logger)
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifier = notify.NewTelegram(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID)
		logger.Info(ctx, "Telegram notifications enabled")
	}

	// 5. Tracker domain
	trackerUC := usecase.New(logger, repo, notifier)
	trackerHandler := trackerHTTP.New(logger, trackerUC, repo, creator)

	// 6. Sheet-edit webhook (optional)
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(trackerUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	}

	// 7. HTTP Server
	serverCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		APIKey:         cfg.API.Key,
		TrackerHandler: trackerHandler,
	}
	if webhookHandler != nil {
		serverCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
