package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top scores and run statistics for the specified game.

Examples:
  arcade scores flappy
  arcade scores brick --limit 25
  arcade scores runner --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game's run history and high score")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.LoadHighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Average: %.1f\n", stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}
