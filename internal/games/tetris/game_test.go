package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newTestGame(t *testing.T, mode Mode, cfg core.RuntimeConfig) *Game {
	t.Helper()
	g := &Game{mode: mode}
	g.setConfig(config.DefaultTetrisConfig())
	g.Reset(cfg)
	return g
}

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_marathon"} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
	g, _ := registry.Create("tetris_marathon")
	assert.Equal(t, "Tetris (Marathon)", g.Title())
}

func TestStepUsesTickDuration(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	frame := core.NewInputFrame()

	for range 7 {
		g.Step(frame)
	}
	assert.Equal(t, 0, g.Snapshot().Active.Y)

	g.Step(frame)
	assert.Equal(t, 1, g.Snapshot().Active.Y, "ten ticks per second, 800ms gravity")
}

func TestStepPassesIntentsInOrder(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	frame := core.NewInputFrame()
	frame.Set(core.ActionRight)
	frame.Set(core.ActionLeft)

	g.Step(frame)
	assert.Equal(t, Width/2-1, g.Snapshot().Active.X)
}

func TestStepReportsQuit(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	frame := core.NewInputFrame()
	frame.Set(core.ActionQuit)

	res := g.Step(frame)
	assert.True(t, res.Quit)
}

func TestTooSmallFreezes(t *testing.T) {
	cfg := runtimeConfig()
	cfg.ScreenW, cfg.ScreenH = 30, 12
	g := newTestGame(t, ModeClassic, cfg)

	res := g.Step(core.NewInputFrame())
	assert.True(t, res.State.Paused)
	assert.Zero(t, g.Snapshot().Tick)

	frame := core.NewInputFrame()
	frame.Set(core.ActionQuit)
	assert.True(t, g.Step(frame).Quit, "quit works in a tiny window")

	g.Resize(layoutW, layoutH)
	g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestResizeKeepsGame(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	for range 20 {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()

	g.Resize(120, 40)
	assert.Equal(t, before, g.Snapshot())
}

func TestClassicKeepsFixedGravity(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	g.engine.score = 50000
	g.Step(core.NewInputFrame())
	assert.Equal(t, 800*time.Millisecond, g.engine.FallInterval())
}

func TestMarathonSpeedsUp(t *testing.T) {
	g := newTestGame(t, ModeMarathon, runtimeConfig())
	g.Step(core.NewInputFrame())
	assert.Equal(t, 800*time.Millisecond, g.engine.FallInterval())
	assert.Equal(t, 1, g.Level())

	g.engine.score = 20000
	g.Step(core.NewInputFrame())
	// 800ms / (1 + 1.0*4)
	assert.Equal(t, 160*time.Millisecond, g.engine.FallInterval())
	assert.Equal(t, 10, g.Level())
}

func TestConfigure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := "timing:\n  fall_interval: 400ms\n  lock_delay: 0s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	g := New()
	require.NoError(t, g.Configure(path, ""))
	assert.Equal(t, 400*time.Millisecond, g.Config().Timing.FallInterval)
	assert.Zero(t, g.Config().Timing.LockDelay)

	g.Reset(runtimeConfig())
	assert.Equal(t, 400*time.Millisecond, g.engine.FallInterval())

	require.NoError(t, g.Configure(path, config.DifficultyHard))
	assert.True(t, g.Config().Difficulty.Enabled)
	assert.Equal(t, 300*time.Millisecond, g.Config().Timing.LockDelay)

	err := g.Configure(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	assert.Contains(t, out, "Tetris")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "Score  0")

	origin := scr.Bounds().Centered(layoutW, layoutH)
	assert.Equal(t, '┌', scr.Get(origin.X, origin.Y+1))
	assert.Equal(t, '┘', scr.Get(origin.X+boardW-1, origin.Y+boardH))

	// The falling piece is drawn two columns per cell.
	active := g.Snapshot().ActiveBlocks[0]
	px := origin.X + 1 + active.X*cellW
	py := origin.Y + 2 + active.Y
	cell := scr.GetCell(px, py)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, g.Snapshot().Active.Kind.Color(), cell.Color)
	assert.Equal(t, '█', scr.Get(px+1, py))
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, ModeClassic, runtimeConfig())
	scr := core.NewScreen(80, 24)

	frame := core.NewInputFrame()
	frame.Set(core.ActionPause)
	g.Step(frame)
	g.Render(scr)
	assert.Contains(t, scr.String(), "PAUSED")

	g.engine.gameOver = true
	g.last = g.engine.Snapshot()
	g.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")
}

func TestRenderTooSmall(t *testing.T) {
	cfg := runtimeConfig()
	cfg.ScreenW, cfg.ScreenH = 30, 10
	g := newTestGame(t, ModeClassic, cfg)
	scr := core.NewScreen(30, 10)
	g.Render(scr)
	assert.True(t, strings.Contains(scr.String(), "Window too small"))
}
