// flappy is a Flappy Bird-style game for the terminal and the desktop.
//
// Usage:
//
//	flappy play     - Play in the terminal
//	flappy window   - Play in a desktop window
//	flappy config   - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML (default: search ~/.flappy, ./configs)
//	--fps <rate>         - Override the configured frame rate
//	--seed <value>       - Set RNG seed for reproducible pipe placement
//	--log-file <path>    - Append logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal or in a window",
	Long: `Flappy steers a bird through an endless stream of pipes.
Flap to climb, let gravity pull you down, and score a point for
every pipe you pass.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy window --fps 120
  flappy config > my-flappy.yaml
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
