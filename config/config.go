package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sheet backends
	GoogleSheets GoogleSheetsConfig

	// Notifications
	Telegram TelegramConfig

	// API surface
	API APIConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleSheetsConfig selects the Google Sheets backend. When CredentialsPath
// or SpreadsheetID is empty the service falls back to the in-memory backend.
type GoogleSheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type APIConfig struct {
	Key string // empty disables API-key auth
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Sheets backend
	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.SpreadsheetID = viper.GetString("google_sheets.spreadsheet_id")
	if creds := viper.GetString("google_sheets_credentials"); creds != "" {
		cfg.GoogleSheets.CredentialsPath = creds
	}
	if sheet := viper.GetString("google_sheets_spreadsheet_id"); sheet != "" {
		cfg.GoogleSheets.SpreadsheetID = sheet
	}

	// Telegram notifications
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// API auth
	cfg.API.Key = viper.GetString("api.key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.API.Key = apiKey
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if cfg.Webhook.Enabled && cfg.Webhook.Secret == "" {
		return nil, fmt.Errorf("webhook.secret is required when webhook.enabled is true")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("webhook.enabled", false)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
