package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/dream-forest/pkg/audio"
)

// MockAudioBackend is a mock implementation of audio.Backend for testing
type MockAudioBackend struct {
	LoopFunc func(ctx context.Context, resource string) error
	StopFunc func() error

	// Track calls for testing
	LoopCalls []string
	StopCalls int
	// Events records "loop:<resource>" and "stop" in call order.
	Events []string

	playing string
	mu      sync.Mutex // protects all fields above
}

var _ audio.Backend = (*MockAudioBackend)(nil)

// NewMockAudioBackend creates a new mock audio backend
func NewMockAudioBackend() *MockAudioBackend {
	return &MockAudioBackend{
		LoopCalls: make([]string, 0),
		Events:    make([]string, 0),
	}
}

// Loop mocks starting a looping stream
func (m *MockAudioBackend) Loop(ctx context.Context, resource string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LoopCalls = append(m.LoopCalls, resource)
	m.Events = append(m.Events, "loop:"+resource)

	if m.LoopFunc != nil {
		if err := m.LoopFunc(ctx, resource); err != nil {
			return err
		}
	}
	m.playing = resource
	return nil
}

// Stop mocks halting the stream
func (m *MockAudioBackend) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StopCalls++
	m.Events = append(m.Events, "stop")

	if m.StopFunc != nil {
		if err := m.StopFunc(); err != nil {
			return err
		}
	}
	m.playing = ""
	return nil
}

// Busy reports whether a stream is "playing"
func (m *MockAudioBackend) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing != ""
}

// Playing returns the resource currently looping
func (m *MockAudioBackend) Playing() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// EventLog returns a copy of the recorded events
func (m *MockAudioBackend) EventLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Events))
	copy(out, m.Events)
	return out
}

// Reset clears recorded calls, keeping the playing state
func (m *MockAudioBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoopCalls = m.LoopCalls[:0]
	m.StopCalls = 0
	m.Events = m.Events[:0]
}
