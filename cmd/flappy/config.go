package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config, the user and local config files, and --fps.
The output is valid YAML and can be used as a starting point:

  flappy config > ~/.flappy/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
}
