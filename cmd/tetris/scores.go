package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified mode (default: tetris).

Examples:
  tetris scores
  tetris scores tetris_marathon
  tetris scores --player alice
  tetris scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores for this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'tetris list' to see available games", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(gameID, flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Lines, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
	return nil
}
