package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes with their timing and best scores",
	Long: `Shows every registered game mode, the rules it starts with and, when
the scores database is available, how often it was played and its best score.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return nil
	}

	cfg, err := config.LoadTetris("")
	if err != nil {
		return err
	}

	var stats map[string]*storage.GameStats
	if store := openStore(); store != nil {
		defer store.Close()
		if stats, err = store.GetAllGamesStats(); err != nil {
			logger.Warn("could not read stats", "error", err)
		}
	}

	idW := len("ID")
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	fmt.Printf("  %-*s  %-20s  %-10s  %6s  %8s\n", idW, "ID", "Title", "Gravity", "Played", "Best")
	for _, g := range games {
		played, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			played, best = s.GamesCount, s.HighScore
		}
		fmt.Printf("  %-*s  %-20s  %-10s  %6d  %8d\n", idW, g.ID, g.Title, gravity(g.ID, cfg), played, best)
	}

	fmt.Println()
	fmt.Printf("Fall interval %s, lock delay %s.\n", cfg.Timing.FallInterval, cfg.Timing.LockDelay)
	fmt.Println("Run 'tetris play <id>' to start a mode.")
	return nil
}

// gravity describes whether the fall speed of a mode follows the score.
func gravity(id string, cfg config.TetrisConfig) string {
	if id == "tetris_marathon" || cfg.Difficulty.Enabled {
		return "by score"
	}
	return "fixed"
}
