package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/dream-forest/internal/config"
)

func TestNew_Format(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		validate    func(*testing.T, string)
	}{
		{
			name:        "production writes JSON",
			environment: "production",
			validate: func(t *testing.T, out string) {
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "moved", entry["msg"])
				assert.Equal(t, "dark_forest", entry["to"])
			},
		},
		{
			name:        "development writes text",
			environment: "development",
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "msg=moved")
				assert.Contains(t, out, "to=dark_forest")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{Environment: tt.environment, LogLevel: slog.LevelInfo}

			New(cfg, &buf).Info("moved", "to", "dark_forest")
			tt.validate(t, strings.TrimSpace(buf.String()))
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: slog.LevelWarn}

	l := New(cfg, &buf)
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_LogFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "game.log")
	cfg := &config.Config{
		LogLevel: slog.LevelInfo,
		LogFile:  path,
		Warnings: []string{"invalid CLEAR_SCREEN, using true"},
	}

	l, closer, err := Setup(cfg)
	require.NoError(t, err)
	WithError(l, errors.New("boom")).Error("failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "invalid CLEAR_SCREEN")
	assert.Contains(t, string(data), "error=boom")
}

func TestSetup_BadLogFile(t *testing.T) {
	cfg := &config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "game.log")}

	_, _, err := Setup(cfg)
	assert.Error(t, err)
}
