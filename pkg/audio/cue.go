package audio

import "context"

// Cue is the looping sound attached to a location.
type Cue struct {
	resource string
}

// NoAudio is the cue of a silent location. Playing it still stops
// whatever was playing before.
var NoAudio = Cue{}

// NewCue returns a cue for the named resource, e.g. "dark-forest.wav".
func NewCue(resource string) Cue {
	return Cue{resource: resource}
}

// Resource returns the resource name, "" for NoAudio.
func (c Cue) Resource() string {
	return c.resource
}

// Play stops the active cue and starts this one.
func (c Cue) Play(ctx context.Context, m *Mixer) error {
	return m.Play(ctx, c.resource)
}

// Stop halts the active cue, if any.
func (c Cue) Stop(m *Mixer) error {
	return m.Stop()
}
