package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/dream-forest/internal/config"
	"github.com/jwebster45206/dream-forest/internal/logger"
	"github.com/jwebster45206/dream-forest/internal/services"
	"github.com/jwebster45206/dream-forest/pkg/audio"
	"github.com/jwebster45206/dream-forest/pkg/console"
	"github.com/jwebster45206/dream-forest/pkg/scenario"
	"github.com/jwebster45206/dream-forest/pkg/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log, logCloser, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logCloser.Close() // Ignore error in defer
	}()

	world, err := loadWorld(cfg)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load world")
		return err
	}

	mixer := audio.NewMixer(newAudioBackend(cfg, log), log)
	defer func() {
		if err := mixer.Stop(); err != nil {
			logger.WithError(log, err).Warn("Failed to stop audio")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.UI == config.UITUI {
		return runTUI(ctx, cfg, world, mixer, log)
	}

	term := console.NewTerminal(os.Stdout)
	session := state.NewSession(world, state.Options{
		Display: term,
		Mixer:   mixer,
		Rand:    newRand(cfg),
		Clear:   cfg.ClearScreen,
		Prompt:  term.Prompt(state.DefaultPrompt),
		Logger:  log,
	})

	if _, err := session.Run(ctx, os.Stdin); err != nil {
		logger.WithError(log, err).Error("Session failed", "session_id", session.ID.String())
		return err
	}
	return nil
}

func loadWorld(cfg *config.Config) (*scenario.World, error) {
	if cfg.WorldFile == "" {
		return scenario.Default()
	}
	return scenario.Load(cfg.WorldFile)
}

// newAudioBackend picks the audio backend. A missing player is not fatal;
// the game runs silently. A missing sound file is, once a cue needs it.
func newAudioBackend(cfg *config.Config, log *slog.Logger) audio.Backend {
	if cfg.Audio == config.AudioOff {
		log.Info("Audio disabled")
		return services.NewSilentAudioBackend()
	}

	player := cfg.Audio
	if player == config.AudioAuto {
		player = ""
	}
	backend, err := services.NewExecAudioBackend(cfg.SoundsDir, player, log)
	if err != nil {
		log.Warn("No audio player available, playing silently", "error", err)
		return services.NewSilentAudioBackend()
	}
	return backend
}

func newRand(cfg *config.Config) *rand.Rand {
	if cfg.RandomSeed != nil {
		return rand.New(rand.NewPCG(*cfg.RandomSeed, *cfg.RandomSeed))
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>1))
}
