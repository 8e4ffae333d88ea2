package scenario

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/dream-forest/pkg/audio"
)

var (
	ErrDuplicateLocation = errors.New("duplicate location")
	ErrUnknownLocation   = errors.New("unknown location")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrDuplicateExit     = errors.New("exit already wired")
	ErrEmptyWorld        = errors.New("world has no locations")
)

// World is the fixed graph of locations. It never changes after Build.
type World struct {
	name      string
	locations []*Location
	byID      map[string]*Location
	start     *Location
}

func (w *World) Name() string { return w.name }

// Start returns the location a session begins in.
func (w *World) Start() *Location { return w.start }

// Location looks a location up by id.
func (w *World) Location(id string) (*Location, bool) {
	l, ok := w.byID[id]
	return l, ok
}

// Locations returns every location in registration order.
func (w *World) Locations() []*Location {
	return append([]*Location(nil), w.locations...)
}

type locationSpec struct {
	id          string
	name        string
	description string
	cue         audio.Cue
}

type link struct {
	from string
	dir  string
	to   string
}

// Builder collects locations and exits, then freezes them into a World.
// All locations are created before any exit is wired.
type Builder struct {
	name  string
	specs []locationSpec
	ids   map[string]bool
	links []link
	errs  []error
}

func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		ids:  make(map[string]bool),
	}
}

// Add registers a location. A zero cue means audio.NoAudio.
func (b *Builder) Add(id, name, description string, cue audio.Cue) *Builder {
	if b.ids[id] {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicateLocation, id))
		return b
	}
	if id == "" || name == "" {
		b.errs = append(b.errs, fmt.Errorf("location %q: id and name are required", id))
		return b
	}
	b.ids[id] = true
	b.specs = append(b.specs, locationSpec{id: id, name: name, description: description, cue: cue})
	return b
}

// Link wires a one-way exit from one location to another. Edges need not be
// symmetric; call Link twice for a two-way passage.
func (b *Builder) Link(from string, dir Direction, to string) *Builder {
	b.links = append(b.links, link{from: from, dir: string(dir), to: to})
	return b
}

// Connect wires a two-way passage: dir from one side, the opposite back.
func (b *Builder) Connect(from string, dir Direction, to string) *Builder {
	return b.Link(from, dir, to).Link(to, dir.Opposite(), from)
}

// Build wires every exit and returns the frozen world. All problems found
// are reported together.
func (b *Builder) Build(startID string) (*World, error) {
	errs := append([]error(nil), b.errs...)

	w := &World{
		name: b.name,
		byID: make(map[string]*Location, len(b.specs)),
	}
	for _, s := range b.specs {
		l := &Location{
			id:          s.id,
			name:        s.name,
			description: s.description,
			cue:         s.cue,
		}
		w.locations = append(w.locations, l)
		w.byID[s.id] = l
	}

	for _, ln := range b.links {
		from, ok := w.byID[ln.from]
		if !ok {
			errs = append(errs, fmt.Errorf("exit %s from %q: %w", ln.dir, ln.from, ErrUnknownLocation))
			continue
		}
		to, ok := w.byID[ln.to]
		if !ok {
			errs = append(errs, fmt.Errorf("exit %s from %q to %q: %w", ln.dir, ln.from, ln.to, ErrUnknownLocation))
			continue
		}
		i := Direction(ln.dir).index()
		if i < 0 {
			errs = append(errs, fmt.Errorf("exit %q from %q: %w", ln.dir, ln.from, ErrUnknownDirection))
			continue
		}
		if from.exits[i] != nil && from.exits[i] != to {
			errs = append(errs, fmt.Errorf("exit %s from %q: %w", ln.dir, ln.from, ErrDuplicateExit))
			continue
		}
		from.exits[i] = to
	}

	if len(w.locations) == 0 {
		errs = append(errs, ErrEmptyWorld)
	} else if start, ok := w.byID[startID]; ok {
		w.start = start
	} else {
		errs = append(errs, fmt.Errorf("start %q: %w", startID, ErrUnknownLocation))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return w, nil
}
