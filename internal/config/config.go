package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DiscordToken    string
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
	AdminUserIDs    []string
	CacheDuration   time.Duration
	CommandPrefix   string
	LogLevel        string
}

func Load() (*Config, error) {
	cacheDuration := 2 * time.Minute
	if d := os.Getenv("CACHE_DURATION_MINUTES"); d != "" {
		if minutes, err := strconv.Atoi(d); err == nil {
			cacheDuration = time.Duration(minutes) * time.Minute
		}
	}

	cfg := &Config{
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SheetName:       getEnvOrDefault("SHEET_NAME", "Sheet1"),
		CredentialsFile: getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "service_account.json"),
		AdminUserIDs:    splitList(os.Getenv("ADMIN_USER_IDS")),
		CacheDuration:   cacheDuration,
		CommandPrefix:   getEnvOrDefault("COMMAND_PREFIX", "!"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
