package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-splitter/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 10 splitter scores.

Examples:
  splitter scores
  splitter scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(storage.MaxScores)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Splitter")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'splitter play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-10s  %s\n", "Rank", "Name", "Score", "Level", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-10s  %s\n", "----", "----", "-----", "-----", "----------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-10s  %s\n",
			i+1, e.Name, e.Score, e.Level, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
