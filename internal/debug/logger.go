package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"templeescape/internal/config"
)

// Logger is the structured logger shared by the game's components. It never
// writes to stdout, which carries the game itself.
type Logger struct {
	*slog.Logger
	enabled bool
	closer  io.Closer
}

// NewLogger builds the logger described by cfg. With debug mode on, records
// at debug level go to the debug log file; otherwise records at the
// configured level go to stderr.
func NewLogger(cfg *config.Config) (*Logger, error) {
	if !cfg.Debug {
		return New(os.Stderr, cfg.Environment, cfg.LogLevel, false), nil
	}

	logFile, err := os.OpenFile(cfg.DebugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logger := New(logFile, cfg.Environment, slog.LevelDebug, true)
	logger.closer = logFile
	logger.Debug("=== DEBUG MODE ENABLED ===")
	return logger, nil
}

// New builds a Logger writing to w. Production environments get JSON
// records, everything else gets text.
func New(w io.Writer, environment string, level slog.Level, enabled bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler), enabled: enabled}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a child logger carrying the given attributes.
func (d *Logger) With(args ...any) *Logger {
	return &Logger{Logger: d.Logger.With(args...), enabled: d.enabled, closer: d.closer}
}

// IsEnabled reports whether debug mode is on.
func (d *Logger) IsEnabled() bool {
	return d.enabled
}

func (d *Logger) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}
