package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the endpoints and local paths the client needs. Values
// come from the environment, with a .env file loaded best-effort first.
type Config struct {
	WSURL       string
	HTTPURL     string
	SessionFile string
	LogLevel    slog.Level
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		WSURL:       GetEnv("POKER_WS_URL", "wss://easy-poker-server.herokuapp.com"),
		HTTPURL:     GetEnv("POKER_HTTP_URL", "https://easy-poker-server.herokuapp.com"),
		SessionFile: GetEnv("POKER_SESSION_FILE", ""),
		LogLevel:    parseLevel(GetEnv("POKER_LOG_LEVEL", "info")),
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
