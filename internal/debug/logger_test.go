package debug

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"templeescape/internal/config"
)

func TestNew_TextAndJSON(t *testing.T) {
	var text bytes.Buffer
	New(&text, "development", slog.LevelInfo, false).Info("turn", "room", "Entrance Hall")
	assert.Contains(t, text.String(), `msg=turn room="Entrance Hall"`)

	var js bytes.Buffer
	New(&js, "production", slog.LevelInfo, false).Info("turn", "room", "Entrance Hall")
	assert.Contains(t, js.String(), `"room":"Entrance Hall"`)
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "development", slog.LevelWarn, false)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_DebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(&config.Config{Debug: true, DebugLogPath: path})
	require.NoError(t, err)
	assert.True(t, logger.IsEnabled())

	logger.With("session_id", "s1").Debug("parsed command", "verb", "go")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG MODE ENABLED")
	assert.Contains(t, string(data), "session_id=s1")
	assert.Contains(t, string(data), "verb=go")
}

func TestNewLogger_BadPath(t *testing.T) {
	_, err := NewLogger(&config.Config{Debug: true, DebugLogPath: filepath.Join(t.TempDir(), "missing", "debug.log")})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.IsEnabled())
	assert.NoError(t, logger.Close())
}
