package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/jwebster45206/dream-forest/pkg/audio"
)

// ErrNoPlayer is returned when no audio player command is installed.
var ErrNoPlayer = errors.New("no audio player command found")

// playerCommands are tried in order when no player is configured.
var playerCommands = [][]string{
	{"afplay"},
	{"paplay"},
	{"aplay", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// ExecAudioBackend loops a sound file by re-running an OS player command
// until stopped.
type ExecAudioBackend struct {
	dir    string
	player []string
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Ensure ExecAudioBackend implements audio.Backend
var _ audio.Backend = (*ExecAudioBackend)(nil)

// NewExecAudioBackend creates a backend playing files from dir. An empty
// player picks the first installed command from playerCommands.
func NewExecAudioBackend(dir, player string, logger *slog.Logger) (*ExecAudioBackend, error) {
	var argv []string
	if player != "" {
		if _, err := exec.LookPath(player); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoPlayer, player)
		}
		argv = []string{player}
	} else {
		var err error
		argv, err = DetectPlayer()
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Audio player selected", "command", argv[0], "sounds_dir", dir)
	return &ExecAudioBackend{
		dir:    dir,
		player: argv,
		logger: logger,
	}, nil
}

// DetectPlayer returns the argv prefix of the first installed player.
func DetectPlayer() ([]string, error) {
	for _, argv := range playerCommands {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, ErrNoPlayer
}

// Loop checks that the resource exists and starts it looping.
func (b *ExecAudioBackend) Loop(ctx context.Context, resource string) error {
	path, err := resolveResource(b.dir, resource)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done != nil {
		b.stopLocked()
	}

	// The loop outlives the call that started it.
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	b.cancel = cancel
	b.done = done

	go func() {
		defer close(done)
		for {
			args := append(append([]string{}, b.player[1:]...), path)
			cmd := exec.CommandContext(loopCtx, b.player[0], args...)
			err := cmd.Run()
			if loopCtx.Err() != nil {
				return
			}
			if err != nil {
				b.logger.Warn("Audio player exited", "resource", resource, "error", err)
				return
			}
		}
	}()
	return nil
}

// Stop kills the player and waits for the loop to end.
func (b *ExecAudioBackend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
	return nil
}

// Busy reports whether the loop is still running.
func (b *ExecAudioBackend) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done == nil {
		return false
	}
	select {
	case <-b.done:
		return false
	default:
		return true
	}
}

func (b *ExecAudioBackend) stopLocked() {
	if b.done == nil {
		return
	}
	b.cancel()
	<-b.done
	b.cancel = nil
	b.done = nil
}

// resolveResource maps a resource name to a readable file under dir.
func resolveResource(dir, resource string) (string, error) {
	path := filepath.Join(dir, resource)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", audio.ErrResourceUnavailable, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", audio.ErrResourceUnavailable, path)
	}
	return path, nil
}
