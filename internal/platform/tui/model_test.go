package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	state     core.GameState
	quit      bool
	resets    int
	resizedTo [2]int
	lastInput []core.Action
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.resizedTo = [2]int{w, h} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = in.Actions()
	return core.StepResult{State: g.state, Quit: g.quit}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelPassesKeysInOrder(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})

	want := []core.Action{core.ActionLeft, core.ActionRotate}
	if len(g.lastInput) != len(want) || g.lastInput[0] != want[0] || g.lastInput[1] != want[1] {
		t.Errorf("Step input = %v, want %v", g.lastInput, want)
	}

	// Input is cleared after each tick
	update(t, m, TickMsg{})
	if len(g.lastInput) != 0 {
		t.Errorf("expected empty input on next tick, got %v", g.lastInput)
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig(), WithPlayer("alice"))

	g.state = core.GameState{Score: 500, Lines: 3, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Lines != 3 {
		t.Errorf("unexpected entry: %+v", scores[0])
	}

	// Restart, then a second game over
	g.state = core.GameState{}
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 900, GameOver: true}
	update(t, m, TickMsg{})

	scores, _ = store.TopScores("fake", 10)
	if len(scores) != 2 {
		t.Fatalf("expected 2 saved scores after restart, got %d", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, store, testConfig())
	update(t, m, TickMsg{})

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("expected nothing saved, got %d", high)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{quit: true}

	m := NewModel(g, nil, testConfig())
	m, cmd := update(t, m, TickMsg{})
	if !m.IsQuitting() || cmd == nil {
		t.Error("standalone model should quit the program")
	}

	m = NewModel(g, nil, testConfig(), Embedded())
	m, cmd = update(t, m, TickMsg{})
	if !m.Done() || m.IsQuitting() || cmd != nil {
		t.Error("embedded model should only report Done")
	}
	if m.View() != "" {
		t.Error("finished model should render nothing")
	}
}

func TestModelCtrlC(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig(), Embedded())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit even when embedded")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())
	if g.resets != 1 {
		t.Fatalf("expected one Reset from NewModel, got %d", g.resets)
	}

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resizedTo != [2]int{100, 30 - helpHeight} {
		t.Errorf("Resize got %v", g.resizedTo)
	}
	if g.resets != 1 {
		t.Error("resizable games must not be reset on resize")
	}
}
