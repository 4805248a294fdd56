package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The world is scaled to fit the
terminal, so bigger terminals give a smoother picture.

Controls:
  Space/Up/W/Click  - Flap, start, restart
  Q/Esc/Ctrl+C      - Quit

The terminal is taken over while playing, so logs are only written
when --log-file is set.

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy play --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed()
	session, err := newSession(cfg, seed)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("starting terminal game", "seed", seed, "terminal", []int{width, height})

	runErr := tui.Run(session, tui.Options{
		FPS:    cfg.FrameRate,
		Width:  width,
		Height: height,
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fail("running game: %v", runErr)
	}
	logger.Info("bye", "score", session.Score())
}
