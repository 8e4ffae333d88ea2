package state

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/reflow/padding"

	"github.com/jwebster45206/dream-forest/pkg/audio"
	"github.com/jwebster45206/dream-forest/pkg/console"
	"github.com/jwebster45206/dream-forest/pkg/scenario"
)

const (
	// DefaultPrompt is shown before every line is read.
	DefaultPrompt = "What will you do next (or type help)? "

	// ClosingNarration is printed once when the session ends.
	ClosingNarration = "You slowly open your eyes and realize that it was all just a dream. Just a strange dream."

	// HelpColumnWidth is the width of the command column in help output,
	// the length of the longest direction name.
	HelpColumnWidth = 5

	quitHelp = "if you want to quit this amazing game"
)

// Outcome tells the caller whether the session goes on after a turn.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeQuit:
		return "quit"
	case OutcomeInterrupted:
		return "interrupted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options configures a Session.
type Options struct {
	Display console.Display
	Mixer   *audio.Mixer
	Rand    *rand.Rand   // filler remark source; nil uses a random seed
	Clear   bool         // clear the display on every arrival
	Prompt  string       // written before each read by Run; "" for none
	Logger  *slog.Logger // nil uses slog.Default()
}

// Session holds the player's current location and interprets their input.
// It is not safe for concurrent use; turns are processed one at a time.
type Session struct {
	ID uuid.UUID

	world   *scenario.World
	current *scenario.Location
	env     scenario.Env
	rng     *rand.Rand
	clear   bool
	prompt  string
	logger  *slog.Logger
}

// NewSession creates a session positioned at the world's start location.
// Nothing is printed until Start.
func NewSession(world *scenario.World, opts Options) *Session {
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		ID:      id,
		world:   world,
		current: world.Start(),
		env:     scenario.Env{Display: opts.Display, Mixer: opts.Mixer},
		rng:     rng,
		clear:   opts.Clear,
		prompt:  opts.Prompt,
		logger:  logger.With("session_id", id.String()),
	}
}

// Current returns the location the player stands in.
func (s *Session) Current() *scenario.Location {
	return s.current
}

// Start enters the start location.
func (s *Session) Start(ctx context.Context) error {
	l, err := s.world.Start().Enter(ctx, s.env, s.clear)
	if err != nil {
		return err
	}
	s.current = l
	s.logger.Info("Session started", "world", s.world.Name(), "location", l.ID())
	return nil
}

// Step runs one turn for a single line of input.
func (s *Session) Step(ctx context.Context, input string) (Outcome, error) {
	cmd := parseCommand(input)

	switch cmd.Type {
	case CmdQuit:
		s.logger.Debug("Quit requested")
		return OutcomeQuit, nil

	case CmdMove:
		from := s.current
		next, err := from.Leave(ctx, s.env, string(cmd.Direction), s.clear)
		if err != nil {
			s.logger.Error("Failed to move", "from", from.ID(), "direction", cmd.Direction, "error", err)
			return OutcomeContinue, err
		}
		if next == from {
			s.logger.Debug("No exit", "location", from.ID(), "direction", cmd.Direction)
			break
		}
		s.current = next
		s.logger.Debug("Moved", "from", from.ID(), "direction", cmd.Direction, "to", next.ID())

	case CmdHelp:
		if err := s.writeHelp(); err != nil {
			return OutcomeContinue, err
		}

	case CmdRemark:
		remark := pickRemark(s.rng)
		s.logger.Debug("Unrecognized input", "input", input)
		if _, err := fmt.Fprintln(s.env.Display, remark); err != nil {
			return OutcomeContinue, fmt.Errorf("failed to write remark: %w", err)
		}
	}

	return OutcomeContinue, nil
}

func (s *Session) writeHelp() error {
	var b strings.Builder
	for _, d := range s.current.Directions() {
		fmt.Fprintf(&b, "%s if you want to go %s\n", padding.String(string(d), HelpColumnWidth), d)
	}
	fmt.Fprintf(&b, "%s %s\n", padding.String(quitWord, HelpColumnWidth), quitHelp)

	if _, err := io.WriteString(s.env.Display, b.String()); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return nil
}

// Run enters the start location, reads commands from in until the player
// quits, input ends, or ctx is cancelled, then prints the closing
// narration. A cancelled ctx counts as a clean quit. A non-nil error means
// a fatal failure; no narration is printed in that case.
func (s *Session) Run(ctx context.Context, in io.Reader) (Outcome, error) {
	if err := s.Start(ctx); err != nil {
		return OutcomeContinue, err
	}

	outcome, err := s.loop(ctx, in)
	if err != nil {
		return outcome, err
	}

	s.logger.Info("Session ended", "outcome", outcome.String(), "location", s.current.ID())
	if err := Farewell(s.env.Display); err != nil {
		return outcome, err
	}
	return outcome, nil
}

type lineResult struct {
	line string
	err  error
	eof  bool
}

func (s *Session) loop(ctx context.Context, in io.Reader) (Outcome, error) {
	if ctx.Err() != nil {
		return OutcomeInterrupted, nil
	}

	want := make(chan struct{})
	lines := make(chan lineResult, 1)
	done := make(chan struct{})
	defer close(done)

	// Reads one line per request so no input is consumed ahead of a turn.
	go func() {
		sc := bufio.NewScanner(in)
		for {
			select {
			case <-want:
			case <-done:
				return
			}
			if sc.Scan() {
				lines <- lineResult{line: sc.Text()}
				continue
			}
			lines <- lineResult{err: sc.Err(), eof: true}
			return
		}
	}()

	for {
		if s.prompt != "" {
			if _, err := io.WriteString(s.env.Display, s.prompt); err != nil {
				return OutcomeContinue, fmt.Errorf("failed to write prompt: %w", err)
			}
		}

		select {
		case want <- struct{}{}:
		case <-ctx.Done():
			return OutcomeInterrupted, nil
		}

		var res lineResult
		select {
		case res = <-lines:
		case <-ctx.Done():
			return OutcomeInterrupted, nil
		}

		if res.eof {
			if res.err != nil {
				s.logger.Warn("Input failed, ending session", "error", res.err)
			}
			return OutcomeQuit, nil
		}

		outcome, err := s.Step(ctx, res.line)
		if err != nil || outcome != OutcomeContinue {
			return outcome, err
		}
		if ctx.Err() != nil {
			return OutcomeInterrupted, nil
		}
	}
}

// Farewell prints the closing narration.
func Farewell(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", ClosingNarration); err != nil {
		return fmt.Errorf("failed to write closing narration: %w", err)
	}
	return nil
}
