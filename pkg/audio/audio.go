// Package audio holds the looping sound cues played when a location is entered.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrResourceUnavailable is returned when a cue's resource cannot be loaded.
var ErrResourceUnavailable = errors.New("audio resource unavailable")

// Backend plays at most one looping stream. Mixer serializes all calls.
type Backend interface {
	// Loop loads the named resource and starts it looping until Stop.
	Loop(ctx context.Context, resource string) error

	// Stop halts the current stream.
	Stop() error

	// Busy reports whether a stream is playing.
	Busy() bool
}

// Mixer is the single audio output handle shared by every cue.
// It guarantees that at most one cue is audible at a time.
type Mixer struct {
	mu      sync.Mutex
	backend Backend
	logger  *slog.Logger
	active  string
}

// NewMixer creates a mixer over the given backend.
func NewMixer(backend Backend, logger *slog.Logger) *Mixer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mixer{
		backend: backend,
		logger:  logger,
	}
}

// Play stops whatever is playing, then starts resource looping.
// An empty resource only stops.
func (m *Mixer) Play(ctx context.Context, resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.stopLocked(); err != nil {
		return err
	}
	if resource == "" {
		return nil
	}

	if err := m.backend.Loop(ctx, resource); err != nil {
		m.logger.Error("Failed to start audio cue", "resource", resource, "error", err)
		return fmt.Errorf("failed to play %s: %w", resource, err)
	}
	m.active = resource
	m.logger.Debug("Audio cue started", "resource", resource)
	return nil
}

// Stop halts the active cue. It is a no-op when nothing plays.
func (m *Mixer) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked()
}

// Active returns the resource currently looping, or "".
func (m *Mixer) Active() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Mixer) stopLocked() error {
	if !m.backend.Busy() {
		m.active = ""
		return nil
	}
	if err := m.backend.Stop(); err != nil {
		return fmt.Errorf("failed to stop %s: %w", m.active, err)
	}
	m.logger.Debug("Audio cue stopped", "resource", m.active)
	m.active = ""
	return nil
}
