package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"templeescape/internal/observability"
)

type Config struct {
	Environment  string
	LogLevel     slog.Level
	Debug        bool
	DebugLogPath string
	TurnLogPath  string
	WrapWidth    int
	Tracing      observability.Config
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are used when present; a missing file is ignored.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	debug := getEnv("DEBUG", "false")
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		Debug:        debug == "1" || debug == "true",
		DebugLogPath: getEnv("DEBUG_LOG", "debug.log"),
		TurnLogPath:  getEnv("TURN_LOG_DB", ""),
		WrapWidth:    parseInt(getEnv("WRAP_WIDTH", "80"), 80),
		Tracing:      observability.LoadConfigFromEnv(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
