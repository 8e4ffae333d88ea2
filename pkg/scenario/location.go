package scenario

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jwebster45206/dream-forest/pkg/audio"
	"github.com/jwebster45206/dream-forest/pkg/console"
)

// RejectMessage is printed when there is no exit in the requested direction.
const RejectMessage = "No, I can not go that way."

// Env is what a location needs to present itself to the player.
type Env struct {
	Display console.Display
	Mixer   *audio.Mixer
}

// Location represents a place in the game world with exits and entry logic.
// Locations are created and wired by a Builder and are read-only afterwards.
type Location struct {
	id          string
	name        string
	description string
	cue         audio.Cue
	exits       [len(Compass)]*Location // indexed by Direction.index()
}

// ID is the key the location was registered under.
func (l *Location) ID() string { return l.id }

// Name is the display name.
func (l *Location) Name() string { return l.name }

func (l *Location) Description() string { return l.description }

func (l *Location) Cue() audio.Cue { return l.cue }

// Exit returns the neighbor in direction d, or nil.
func (l *Location) Exit(d Direction) *Location {
	i := d.index()
	if i < 0 {
		return nil
	}
	return l.exits[i]
}

// Directions returns the directions that lead somewhere, in Compass order.
func (l *Location) Directions() []Direction {
	dirs := make([]Direction, 0, len(Compass))
	for i, next := range l.exits {
		if next != nil {
			dirs = append(dirs, Compass[i])
		}
	}
	return dirs
}

// CanGo reports whether token names a direction with an exit.
func (l *Location) CanGo(token string) bool {
	d, ok := ParseDirection(token)
	return ok && l.Exit(d) != nil
}

// Enter presents the location: clear the display when asked, switch the
// audio to this location's cue, then print the name, the description and
// the exits. It returns l.
func (l *Location) Enter(ctx context.Context, env Env, clear bool) (*Location, error) {
	if clear {
		if err := env.Display.Clear(); err != nil {
			return nil, fmt.Errorf("failed to clear display: %w", err)
		}
	}

	if err := l.cue.Play(ctx, env.Mixer); err != nil {
		return nil, fmt.Errorf("failed to enter %s: %w", l.name, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are entering %s\n", l.name)
	if l.description != "" {
		b.WriteString(l.description)
		b.WriteString("\n")
	}
	dirs := l.Directions()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	fmt.Fprintf(&b, "You look around and see that you can go %s.\n\n", strings.Join(names, ", "))

	if _, err := io.WriteString(env.Display, b.String()); err != nil {
		return nil, fmt.Errorf("failed to write location %s: %w", l.name, err)
	}
	return l, nil
}

// Leave moves through the exit named by token. With no such exit the
// rejection message is printed and l is returned; nothing else happens.
func (l *Location) Leave(ctx context.Context, env Env, token string, clear bool) (*Location, error) {
	d, ok := ParseDirection(token)
	if ok {
		if next := l.Exit(d); next != nil {
			return next.Enter(ctx, env, clear)
		}
	}

	if _, err := fmt.Fprintln(env.Display, RejectMessage); err != nil {
		return nil, fmt.Errorf("failed to write rejection: %w", err)
	}
	return l, nil
}
