package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified mode (default: tetris).

Controls:
  Left/Right, A/D   - Move
  Up, W, X          - Rotate clockwise
  Down, S           - Soft drop
  Space             - Hard drop
  P/Esc             - Pause
  R                 - Restart (paused or after game over)
  Q                 - Quit
  Ctrl+S            - Screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - Gravity speeds up from the slowest level, long lock delay
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, short lock delay
  fixed  - No progression, constant gravity

Examples:
  tetris play
  tetris play tetris_marathon
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	game, err := createGame(gameID, flagConfig, preset)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
