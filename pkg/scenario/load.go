package scenario

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/dream-forest/pkg/audio"
)

// DefaultWorldFile is the embedded world used when no file is configured.
const DefaultWorldFile = "worlds/dream_forest.yaml"

//go:embed worlds/*.yaml
var worldFiles embed.FS

// File is the on-disk form of a world.
type File struct {
	Name      string                  `yaml:"name"`
	Start     string                  `yaml:"start"`
	Locations map[string]LocationFile `yaml:"locations"` // ID → location
}

// LocationFile is one location in a world file.
type LocationFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Sound       string            `yaml:"sound,omitempty"` // resource name under the sounds directory
	Exits       map[string]string `yaml:"exits,omitempty"` // Direction → location ID
}

// Decode reads a world file, rejecting unknown fields.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode world: %w", err)
	}
	return &f, nil
}

// IDs returns the location ids in sorted order.
func (f *File) IDs() []string {
	ids := make([]string, 0, len(f.Locations))
	for id := range f.Locations {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Build turns the file into a frozen World.
func (f *File) Build() (*World, error) {
	b := NewBuilder(f.Name)
	ids := f.IDs()
	for _, id := range ids {
		lf := f.Locations[id]
		cue := audio.NoAudio
		if lf.Sound != "" {
			cue = audio.NewCue(lf.Sound)
		}
		b.Add(id, lf.Name, lf.Description, cue)
	}
	for _, id := range ids {
		exits := f.Locations[id].Exits
		dirs := make([]string, 0, len(exits))
		for dir := range exits {
			dirs = append(dirs, dir)
		}
		slices.Sort(dirs)
		for _, dir := range dirs {
			b.Link(id, Direction(dir), exits[dir])
		}
	}
	return b.Build(f.Start)
}

// Load reads and builds the world file at path.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	w, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Default builds the embedded dream forest.
func Default() (*World, error) {
	data, err := worldFiles.ReadFile(DefaultWorldFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded world: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return f.Build()
}
