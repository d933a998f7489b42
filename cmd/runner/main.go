// runner is an endless runner played in the terminal.
//
// Usage:
//
//	runner play              - Start a run
//	runner menu              - Start the main menu
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show the best runs
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--db <path>          - Set database path (default: ~/.runner/runs.db)
//	--config <path>      - Load configuration from a YAML file
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
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
	Use:   "runner",
	Short: "Runner - an endless runner in your terminal",
	Long: `Runner is a terminal endless runner. Jump over and crouch under
the bars sweeping across the track; every hit costs one heart.

Available commands:
  play     - Start a run directly
  menu     - Main menu with high scores
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the default configuration

Examples:
  runner play
  runner play --seed 42
  runner menu
  runner serve --ssh :2222
  runner config > ~/.runner/configs/runner.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play/menu discard logs otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
