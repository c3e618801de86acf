package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dusk-runner/internal/platform/tui"
	"github.com/vovakirdan/dusk-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagInteractive  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  runner scores
  runner scores --limit 20
  runner scores --player alice
  runner scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard table view")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	// Display scores
	fmt.Println("High Scores - Dusk Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetStats(); err == nil && stats.Runs > 0 {
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}
