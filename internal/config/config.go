package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	AudioAuto = "auto"
	AudioOff  = "off"

	UIPlain = "plain"
	UITUI   = "tui"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string // empty logs to stderr; stdout belongs to the game

	WorldFile string // empty uses the embedded world
	SoundsDir string
	Audio     string // "auto", "off", or a player command

	ClearScreen bool
	RandomSeed  *uint64 // nil seeds from the clock
	UI          string

	// Warnings collects values that were rejected and replaced by defaults.
	// They are logged once the logger exists.
	Warnings []string
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		LogFile:     getEnv("LOG_FILE", ""),
		WorldFile:   getEnv("WORLD_FILE", ""),
		SoundsDir:   getEnv("SOUNDS_DIR", "./sounds"),
		Audio:       getEnv("AUDIO", AudioAuto),
		UI:          strings.ToLower(getEnv("UI", UIPlain)),
	}

	clear, err := strconv.ParseBool(getEnv("CLEAR_SCREEN", "true"))
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, "invalid CLEAR_SCREEN, using true")
		clear = true
	}
	cfg.ClearScreen = clear

	if raw := getEnv("RANDOM_SEED", ""); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, "invalid RANDOM_SEED, seeding from the clock")
		} else {
			cfg.RandomSeed = &seed
		}
	}

	if cfg.UI != UIPlain && cfg.UI != UITUI {
		cfg.Warnings = append(cfg.Warnings, "unknown UI "+cfg.UI+", using plain")
		cfg.UI = UIPlain
	}

	return cfg
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
