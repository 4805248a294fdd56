package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window at the configured screen size.

Controls:
  Space/Up/W/Click  - Flap, start, restart
  Q/Esc             - Quit (closing the window works too)

Examples:
  flappy window
  flappy window --fps 120 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := resolveSeed()
	session, err := newSession(cfg, seed)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("opening window", "seed", seed)

	if err := window.Run(session, window.Options{FPS: cfg.FrameRate, Logger: logger}); err != nil {
		logger.Error("game stopped", "error", err)
		closeLog()
		fail("running game: %v", err)
	}
}
