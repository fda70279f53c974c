// tetris is a terminal Tetris with local play, a high score table and an
// SSH server for remote play.
//
// Usage:
//
//	tetris list              - List available game modes
//	tetris play [game]       - Play a game (default: tetris)
//	tetris menu              - Start menu to pick a mode interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports warnings and fatal errors on stderr, outside the TUI.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetris"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris: ten columns, twenty rows, seven pieces.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play tetris_marathon --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure is logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// createGame instantiates a registered game and applies a rules file and preset.
func createGame(gameID, configPath string, preset config.DifficultyPreset) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(configPath, preset); err != nil {
			return nil, err
		}
	}
	return game, nil
}
