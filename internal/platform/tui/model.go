package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	player   string      // recorded with saved scores; empty means local
	logger   *log.Logger // nil disables logging
	embedded bool        // a quit hands control back to the parent model

	quitting   bool
	done       bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer records scores under the given name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithLogger reports score saves and failures to l.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// Embedded makes a quit intent end the game instead of the program.
// The parent model checks Done to take over again.
func Embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	pf := m.playfield()
	m.screen = core.NewScreen(pf.ScreenW, pf.ScreenH)
	m.help.Width = cfg.ScreenW

	// Reset here so gameState is valid before the first tick.
	m.game.Reset(pf)
	m.gameState = m.game.State()
	return m
}

// playfield returns the runtime config the game sees, minus the help bar.
func (m Model) playfield() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-helpHeight)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	pf := m.playfield()
	m.screen.Resize(pf.ScreenW, pf.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(pf.ScreenW, pf.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(pf)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A running game means any earlier game over has been restarted.
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if result.Quit {
		if m.embedded {
			m.done = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickDuration())
}

// saveScore records the finished game. Best effort: the game continues regardless.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Lines:  m.gameState.Lines,
	})
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "player", m.player, "error", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "player", m.player,
		"score", m.gameState.Score, "lines", m.gameState.Lines)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Done reports whether an embedded game has finished.
func (m Model) Done() bool {
	return m.done
}

// IsQuitting reports whether the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// GameState returns the state reported by the latest tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
