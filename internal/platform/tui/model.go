// Package tui runs the game in a terminal with Bubble Tea.
// It paces frames, maps keys and mouse clicks to actions, and draws
// snapshots through a coloured cell buffer.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one frame from now.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options configures the terminal adapter.
type Options struct {
	FPS    int         // Frame rate; 0 uses the session's configured rate
	Width  int         // Initial terminal width
	Height int         // Initial terminal height
	Logger *log.Logger // Nil discards log output
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	session   *flappy.Session
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	fps       int
	input     core.InputFrame
	lastState flappy.State
	quitting  bool
}

// NewModel creates a model for the given session.
func NewModel(session *flappy.Session, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = session.Config().FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		session:   session,
		screen:    core.NewScreen(opts.Width, playfieldHeight(opts.Height)),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
		fps:       fps,
		input:     core.NewInputFrame(),
		lastState: session.State(),
	}
}

// playfieldHeight leaves the bottom line for the help view.
func playfieldHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"fps", m.fps,
		"screen", fmt.Sprintf("%dx%d", m.screen.Width(), m.screen.Height()),
	)
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction queues an action for the next tick. Quit leaves right away.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	if a == core.ActionQuit {
		return m.quit()
	}
	m.input.Push(a)
	return m, nil
}

// handleTick applies the queued input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.session.HandleFrame(m.input) {
		return m.quit()
	}
	m.session.Tick()
	m.logTransition()
	m.input.Clear()

	return m, tickCmd(m.fps)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("quit", "state", m.session.State(), "score", m.session.Score())
	return m, tea.Quit
}

// logTransition records a state change since the previous tick.
func (m *Model) logTransition() {
	state := m.session.State()
	if state == m.lastState {
		return
	}
	m.logger.Info("state changed", "from", m.lastState, "to", state, "score", m.session.Score())
	if state == flappy.StateGameOver {
		m.logger.Info("game over", "score", m.session.Score(), "ticks", m.session.Ticks())
	}
	m.lastState = state
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(session *flappy.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
