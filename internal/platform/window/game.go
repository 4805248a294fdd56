// Package window runs the game in a desktop window with Ebiten.
// The window uses world coordinates directly, so one pixel is one world unit.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

var (
	flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// Options configures the window adapter.
type Options struct {
	FPS    int         // Ticks per second; 0 uses the session's configured rate
	Logger *log.Logger // Nil discards log output
}

// Game implements ebiten.Game on top of a session.
type Game struct {
	session   *flappy.Session
	logger    *log.Logger
	input     core.InputFrame
	lastState flappy.State
}

// NewGame wraps a session for Ebiten.
func NewGame(session *flappy.Session, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session:   session,
		logger:    logger,
		input:     core.NewInputFrame(),
		lastState: session.State(),
	}
}

// Update applies this frame's input and advances the simulation.
func (g *Game) Update() error {
	pollInput(&g.input)
	defer g.input.Clear()

	if !g.session.HandleFrame(g.input) {
		g.logger.Info("quit", "state", g.session.State(), "score", g.session.Score())
		return ebiten.Termination
	}

	g.session.Tick()

	if state := g.session.State(); state != g.lastState {
		g.logger.Info("state changed", "from", g.lastState, "to", state, "score", g.session.Score())
		if state == flappy.StateGameOver {
			g.logger.Info("game over", "score", g.session.Score(), "ticks", g.session.Ticks())
		}
		g.lastState = state
	}
	return nil
}

// pollInput collects at most one flap and one quit per frame.
func pollInput(f *core.InputFrame) {
	flap := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for _, k := range flapKeys {
		flap = flap || inpututil.IsKeyJustPressed(k)
	}
	if flap {
		f.Push(core.ActionPrimary)
	}

	quit := ebiten.IsWindowBeingClosed()
	for _, k := range quitKeys {
		quit = quit || inpututil.IsKeyJustPressed(k)
	}
	if quit {
		f.Push(core.ActionQuit)
	}
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	draw(screen, g.session.Snapshot())
}

// Layout keeps the logical screen at world resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.session.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

// Run opens the window and blocks until it is closed.
func Run(session *flappy.Session, opts Options) error {
	cfg := session.Config()
	fps := opts.FPS
	if fps <= 0 {
		fps = cfg.FrameRate
	}

	g := NewGame(session, opts.Logger)
	g.logger.Info("session started", "fps", fps, "screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(flappy.TitleText)
	ebiten.SetTPS(fps)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
