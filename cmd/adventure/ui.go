package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/dream-forest/internal/config"
	"github.com/jwebster45206/dream-forest/pkg/audio"
	"github.com/jwebster45206/dream-forest/pkg/console"
	"github.com/jwebster45206/dream-forest/pkg/scenario"
	"github.com/jwebster45206/dream-forest/pkg/state"
)

const PlaceHolderText = "north, east, south, west, help or quit"

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// ConsoleUI is the BubbleTea model for the full-screen front-end.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	ctx        context.Context
	session    *state.Session
	transcript *console.Transcript
	viewport   viewport.Model
	input      textinput.Model
	logger     *slog.Logger

	ready   bool
	width   int
	height  int
	status  string
	outcome state.Outcome
	err     error
}

func NewConsoleUI(ctx context.Context, session *state.Session, transcript *console.Transcript, logger *slog.Logger) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Focus()

	vp := viewport.New(60, 20)
	vp.MouseWheelEnabled = true

	return ConsoleUI{
		ctx:        ctx,
		session:    session,
		transcript: transcript,
		viewport:   vp,
		input:      ti,
		logger:     logger,
		outcome:    state.OutcomeContinue,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		m.input.Width = msg.Width - 8
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.outcome = state.OutcomeInterrupted
			return m, tea.Quit

		case tea.KeyCtrlY:
			desc := m.session.Current().Description()
			if err := clipboard.WriteAll(desc); err != nil {
				m.logger.Warn("Failed to copy description", "error", err)
				m.status = "Clipboard unavailable"
			} else {
				m.status = "Copied " + m.session.Current().Name()
			}
			return m, nil

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			m.status = ""

			outcome, err := m.session.Step(m.ctx, line)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if outcome != state.OutcomeContinue {
				m.outcome = outcome
				return m, tea.Quit
			}
			m.refresh()
			return m, nil
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// refresh copies the transcript into the viewport, wrapped to its width.
func (m *ConsoleUI) refresh() {
	content := m.transcript.String()
	if m.viewport.Width > 0 {
		content = wordwrap.String(content, m.viewport.Width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := titleStyle.Render(strings.ToUpper(m.session.Current().Name()))
	status := statusStyle.Render(m.status)
	if m.err != nil {
		status = errorStyle.Render("Error: " + m.err.Error())
	}

	return chatPanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header+"  "+status,
			m.viewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(m.width-4, 0))),
			m.input.View(),
		),
	)
}

// runTUI plays the session in a full-screen program. The closing narration
// is printed to the real terminal after the program exits.
func runTUI(ctx context.Context, cfg *config.Config, world *scenario.World, mixer *audio.Mixer, log *slog.Logger) error {
	transcript := &console.Transcript{}
	session := state.NewSession(world, state.Options{
		Display: transcript,
		Mixer:   mixer,
		Rand:    newRand(cfg),
		Clear:   cfg.ClearScreen,
		Logger:  log,
	})
	if err := session.Start(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(NewConsoleUI(ctx, session, transcript, log),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithMouseCellMotion())
	final, err := p.Run()

	ui, _ := final.(ConsoleUI)
	switch {
	case ctx.Err() != nil:
		// Interrupt signal: same as quitting.
	case err != nil:
		return fmt.Errorf("failed to run console: %w", err)
	case ui.err != nil:
		return ui.err
	}

	log.Info("Session ended", "session_id", session.ID.String(), "outcome", ui.outcome.String())
	return state.Farewell(os.Stdout)
}
