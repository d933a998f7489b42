package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the runner with the main menu",
	Long: `Start the runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name stored with runs (default: $USER)")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(io.Discard, "runner")
	defer closeLog()

	cfg := mustLoadConfig()
	store := openStore(logger)
	rt := runtimeConfig()
	player := playerName()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Choice == tui.MenuChoiceQuit {
			break
		}

		if menuResult.Choice == tui.MenuChoiceScores {
			goBack, sbErr := tui.RunScoreboard(store, player, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		// Run the game, then loop back to menu
		if err := tui.Run(tui.GameOptions{
			Config:  cfg,
			Runtime: rt,
			Store:   store,
			Logger:  logger,
			Player:  player,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
