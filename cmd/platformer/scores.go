package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show the best scores of a level",
	Long: `Display the top 10 scores recorded for a level. A score is the
number of coins collected on a run that reached the exit.

Examples:
  platformer scores 1
  platformer scores 3`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	level := args[0]

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(level, 10)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Println(headerStyle.Render("High Scores - level " + level))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Finish level %s in 'platformer play --level %s' to set the first score!\n", level, level)
		if played, err := store.Levels(); err == nil && len(played) > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Levels with scores: %v", played)))
		}
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Coins", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, ok, err := store.BestScore(level); err == nil && ok {
		fmt.Println()
		fmt.Println(okStyle.Render(fmt.Sprintf("Best: %d", best)))
	}
	return nil
}
