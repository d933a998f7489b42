package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the default runner configuration as YAML.

Save it to ~/.runner/configs/runner.yaml or ./configs/runner.yaml and edit
the values to override them. With --check, the configuration that would be
loaded (honoring --config) is validated instead.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --check --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the configuration that would be loaded")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigCheck {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Configuration OK: %d HP, run speed %.0f px/s, obstacles every %s-%s\n",
		cfg.Player.MaxHP, cfg.Physics.RunSpeed, cfg.Obstacles.MinDelay, cfg.Obstacles.MaxDelay)
}
