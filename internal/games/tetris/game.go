package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the rule set exposed to the platform.
type Mode string

const (
	ModeClassic  Mode = "classic"  // fixed gravity
	ModeMarathon Mode = "marathon" // gravity speeds up with score
)

// Screen space needed for the board, its frame and the side panel.
const (
	cellW   = 2
	boardW  = Width*cellW + 2
	boardH  = Height + 2
	panelW  = 18
	layoutW = boardW + 1 + panelW
	layoutH = boardH + 1 // title row
)

// Game adapts the engine to the platform's tick loop.
type Game struct {
	mode       Mode
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	engine     *Engine
	last       Snapshot

	dt       time.Duration
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a classic Tetris game with the default configuration.
func New() *Game {
	return newGame(ModeClassic)
}

// NewMarathon creates a Tetris game whose gravity scales with score.
func NewMarathon() *Game {
	return newGame(ModeMarathon)
}

func newGame(mode Mode) *Game {
	// Only an explicit path can fail; the search path falls back to defaults.
	cfg, _ := config.LoadTetris("")
	g := &Game{mode: mode}
	g.setConfig(cfg)
	return g
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_marathon", func() registry.Game {
		return NewMarathon()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeMarathon {
		return "tetris_marathon"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMarathon {
		return "Tetris (Marathon)"
	}
	return "Tetris"
}

// Configure loads rules from path (empty for the default search) and applies
// a difficulty preset. Call it before Reset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return fmt.Errorf("tetris: %w", err)
	}
	config.ApplyTetrisPreset(&cfg, preset)
	g.setConfig(cfg)
	return nil
}

func (g *Game) setConfig(cfg config.TetrisConfig) {
	if g.mode == ModeMarathon {
		cfg.Difficulty.Enabled = true
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// Config returns the rules the next Reset will use.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Reset starts a new game seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(Options{
		FallInterval: g.cfg.Timing.FallInterval,
		LockDelay:    g.cfg.Timing.LockDelay,
	}, rand.NewSource(cfg.Seed))
	g.dt = cfg.TickDuration()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.last = g.engine.Snapshot()
}

// Resize adapts the layout to a new terminal size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < layoutW || h < layoutH
}

// Step advances the engine by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		// Nothing runs until the window fits, but leaving is always allowed.
		return core.StepResult{State: g.State(), Quit: in.Has(core.ActionQuit)}
	}

	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(1.0, g.engine.Score(), int(g.last.Tick))
		g.engine.SetFallInterval(time.Duration(float64(g.cfg.Timing.FallInterval) / speed))
	}

	g.last = g.engine.Tick(g.dt, in.Actions())
	return core.StepResult{
		State: g.State(),
		Quit:  g.last.QuitRequested,
	}
}

// Level returns the difficulty level shown in the HUD, 1 through 10.
func (g *Game) Level() int {
	lvl := g.difficulty.Level(g.last.Score, int(g.last.Tick))
	return 1 + int(lvl*9)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		Lines:    g.last.Lines,
		GameOver: g.last.GameOver,
		Paused:   g.last.Paused || g.tooSmall,
	}
}

// Snapshot returns the engine state after the latest tick.
func (g *Game) Snapshot() Snapshot {
	return g.last
}
