package config

import (
	"fmt"
	"os"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain"
)

type Config struct {
	AppEnv             string
	LogLevel           string
	Port               string
	DatabasePath       string
	ItemsBaseURL       string
	ItemsPath          string
	Timezone           string
	RotationAnchor     string
	SlackBotToken      string
	SlackSigningSecret string
	SlackChannelID     string
	NotificationTime   string
}

func Load() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", "3000"),
		DatabasePath:       getEnv("DATABASE_PATH", "./prep.db"),
		ItemsBaseURL:       getEnv("ITEMS_BASE_URL", "http://localhost:8080"),
		ItemsPath:          getEnv("ITEMS_PATH", "/data/items.json"),
		Timezone:           getEnv("TIMEZONE", "Local"),
		RotationAnchor:     getEnv("ROTATION_ANCHOR", domain.DefaultAnchorDate),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
		NotificationTime:   getEnv("NOTIFICATION_TIME", domain.DefaultNotificationTime),
	}
}

// Location resolves the configured IANA time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlackEnabled reports whether the slash command endpoint can verify requests
func (c *Config) SlackEnabled() bool {
	return c.SlackSigningSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
