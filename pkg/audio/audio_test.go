package audio_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/dream-forest/internal/services"
	"github.com/jwebster45206/dream-forest/pkg/audio"
)

func TestMixer_PlayStopsPreviousCue(t *testing.T) {
	backend := services.NewMockAudioBackend()
	m := audio.NewMixer(backend, nil)
	ctx := context.Background()

	require.NoError(t, audio.NewCue("a.wav").Play(ctx, m))
	require.NoError(t, audio.NewCue("b.wav").Play(ctx, m))

	assert.Equal(t, []string{"loop:a.wav", "stop", "loop:b.wav"}, backend.EventLog())
	assert.Equal(t, "b.wav", m.Active())
	assert.Equal(t, "b.wav", backend.Playing())
}

func TestMixer_SameCueRestarts(t *testing.T) {
	backend := services.NewMockAudioBackend()
	m := audio.NewMixer(backend, nil)
	ctx := context.Background()
	cue := audio.NewCue("a.wav")

	require.NoError(t, cue.Play(ctx, m))
	require.NoError(t, cue.Play(ctx, m))

	assert.Equal(t, []string{"loop:a.wav", "stop", "loop:a.wav"}, backend.EventLog())
}

func TestMixer_NoAudio(t *testing.T) {
	backend := services.NewMockAudioBackend()
	m := audio.NewMixer(backend, nil)
	ctx := context.Background()

	// Nothing playing: NoAudio does nothing at all.
	require.NoError(t, audio.NoAudio.Play(ctx, m))
	assert.Empty(t, backend.EventLog())

	require.NoError(t, audio.NewCue("a.wav").Play(ctx, m))
	require.NoError(t, audio.NoAudio.Play(ctx, m))

	assert.Equal(t, []string{"loop:a.wav", "stop"}, backend.EventLog())
	assert.Empty(t, m.Active())
	assert.Empty(t, audio.NoAudio.Resource())
}

func TestMixer_Stop(t *testing.T) {
	backend := services.NewMockAudioBackend()
	m := audio.NewMixer(backend, nil)
	cue := audio.NewCue("a.wav")

	require.NoError(t, cue.Stop(m))
	assert.Empty(t, backend.EventLog(), "stop with nothing playing is a no-op")

	require.NoError(t, cue.Play(context.Background(), m))
	require.NoError(t, cue.Stop(m))
	assert.Equal(t, []string{"loop:a.wav", "stop"}, backend.EventLog())
	assert.False(t, backend.Busy())
}

func TestMixer_LoadFailure(t *testing.T) {
	backend := services.NewMockAudioBackend()
	backend.LoopFunc = func(ctx context.Context, resource string) error {
		return audio.ErrResourceUnavailable
	}
	m := audio.NewMixer(backend, nil)

	err := audio.NewCue("missing.wav").Play(context.Background(), m)

	assert.True(t, errors.Is(err, audio.ErrResourceUnavailable))
	assert.Contains(t, err.Error(), "missing.wav")
	assert.Empty(t, m.Active())
}

func TestMixer_StopFailure(t *testing.T) {
	backend := services.NewMockAudioBackend()
	m := audio.NewMixer(backend, nil)
	require.NoError(t, audio.NewCue("a.wav").Play(context.Background(), m))

	backend.StopFunc = func() error { return errors.New("device busy") }
	err := audio.NewCue("b.wav").Play(context.Background(), m)

	assert.ErrorContains(t, err, "device busy")
	assert.Equal(t, []string{"loop:a.wav", "stop"}, backend.EventLog())
}
