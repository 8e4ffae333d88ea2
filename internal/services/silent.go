package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/dream-forest/pkg/audio"
)

// SilentAudioBackend tracks cue state without producing sound. It is used
// when audio is switched off or no player is installed.
type SilentAudioBackend struct {
	mu      sync.Mutex
	playing string
}

var _ audio.Backend = (*SilentAudioBackend)(nil)

func NewSilentAudioBackend() *SilentAudioBackend {
	return &SilentAudioBackend{}
}

func (b *SilentAudioBackend) Loop(ctx context.Context, resource string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.playing = resource
	return nil
}

func (b *SilentAudioBackend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.playing = ""
	return nil
}

func (b *SilentAudioBackend) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.playing != ""
}
