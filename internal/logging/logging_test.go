package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevel_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := ParseLevel("trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.Contains(t, err.Error(), "trace")
}

func TestParseLevel_Empty(t *testing.T) {
	_, err := ParseLevel("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestSetup_WritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "gosolid.log")

	logger, cleanup, err := Setup(logFile, slog.LevelInfo)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("visible", "example", "lsp")
	cleanup()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.Contains(t, string(data), `"example":"lsp"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetup_NoFile(t *testing.T) {
	logger, cleanup, err := Setup("", slog.LevelWarn)
	require.NoError(t, err)
	require.NotNil(t, logger)
	cleanup()
}
