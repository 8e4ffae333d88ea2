package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/dream-forest/internal/config"
)

// Setup configures the global slog logger based on environment. Logs go to
// cfg.LogFile when set, otherwise to stderr. The returned closer releases
// the log file.
func Setup(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var w io.WriteCloser = nopCloser{os.Stderr}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	logger := New(cfg, w)

	// Set as default logger
	slog.SetDefault(logger)

	for _, warning := range cfg.Warnings {
		logger.Warn("Configuration value ignored", "reason", warning)
	}

	return logger, w, nil
}

// New builds a logger writing to w without installing it.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
