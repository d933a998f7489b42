package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and overall statistics.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --player alice
  runner scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the most recent runs of one player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	title := "Best Runs"
	var runs []storage.RunRecord
	if flagScoresPlayer != "" {
		title = fmt.Sprintf("Recent Runs - %s", flagScoresPlayer)
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Hits", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-8s  %-12s  %s\n", "----", "-----", "----", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-4d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Hits, r.Duration.Round(100*time.Millisecond), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f  |  Time played: %s\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
}
