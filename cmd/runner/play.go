package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run right away.

Controls:
  Space/Up   - Jump
  Down       - Crouch (hold)
  Enter      - Pause, or restart after game over
  P          - Pause
  R          - Restart (after game over)
  Esc        - Pause; leave when paused or over
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml
  runner play --log-file runner.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name stored with runs (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(io.Discard, "runner")
	defer closeLog()

	cfg := mustLoadConfig()

	// Open run storage; the game still works without it
	store := openStore(logger)

	runErr := tui.Run(tui.GameOptions{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
		Player:  playerName(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
