package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default engine timing.
const (
	DefaultFallInterval = 800 * time.Millisecond
	DefaultLockDelay    = 500 * time.Millisecond
)

// Line clear rewards, applied once per tick on the total cleared.
const (
	ScoreSingle = 100
	ScoreDouble = 300
	ScoreTriple = 500
	ScoreTetris = 800
)

// LineScore returns the reward for clearing n lines in one tick.
func LineScore(n int) int {
	switch n {
	case 1:
		return ScoreSingle
	case 2:
		return ScoreDouble
	case 3:
		return ScoreTriple
	case 4:
		return ScoreTetris
	default:
		return 0
	}
}

// Options tunes the engine timers.
type Options struct {
	FallInterval time.Duration // gravity period
	LockDelay    time.Duration // grace period once grounded; 0 locks on contact
}

// DefaultOptions returns the default timing.
func DefaultOptions() Options {
	return Options{
		FallInterval: DefaultFallInterval,
		LockDelay:    DefaultLockDelay,
	}
}

// Engine owns the whole simulation: board, falling piece, preview, bag,
// score and timers. It is advanced only through Tick and is not safe for
// concurrent use.
type Engine struct {
	opts Options

	board   Board
	current *Piece
	next    Tetromino
	bag     *Bag

	score  int
	lines  int
	pieces int
	tick   uint64

	paused        bool
	gameOver      bool
	quitRequested bool

	fallTimer time.Duration
	lockTimer time.Duration
	locking   bool // lockTimer is counting
	lockNow   bool // hard drop asked for an immediate lock
}

// NewEngine creates an engine drawing pieces from src and spawns the
// first piece.
func NewEngine(opts Options, src rand.Source) *Engine {
	if opts.FallInterval <= 0 {
		opts.FallInterval = DefaultFallInterval
	}
	if opts.LockDelay < 0 {
		opts.LockDelay = 0
	}
	e := &Engine{
		opts: opts,
		bag:  NewBag(src),
	}
	e.Restart()
	return e
}

// Restart clears the board, score, flags and bag, then spawns a fresh piece.
func (e *Engine) Restart() {
	e.board = Board{}
	e.current = nil
	e.score = 0
	e.lines = 0
	e.pieces = 0
	e.paused = false
	e.gameOver = false
	e.quitRequested = false
	e.fallTimer = 0
	e.resetLock()
	e.bag.Reset()
	e.next = e.bag.Draw()
	e.spawn()
}

// SetFallInterval changes the gravity period. The accumulated fall time is kept.
func (e *Engine) SetFallInterval(d time.Duration) {
	if d > 0 {
		e.opts.FallInterval = d
	}
}

// FallInterval returns the current gravity period.
func (e *Engine) FallInterval() time.Duration {
	return e.opts.FallInterval
}

// Tick advances the simulation by dt after applying this tick's intents,
// and returns the resulting snapshot. A tick that restarts the game ends
// right after the restart: the fresh game neither falls nor locks.
func (e *Engine) Tick(dt time.Duration, intents []core.Action) Snapshot {
	e.tick++
	if e.applyIntents(intents) {
		return e.Snapshot()
	}

	if !e.gameOver && !e.paused {
		e.fall(dt)
		if e.lock(dt) {
			e.clearLines()
			e.spawn()
		}
	}

	return e.Snapshot()
}

// applyIntents handles control intents and at most one movement intent.
// It reports whether the game was restarted.
func (e *Engine) applyIntents(intents []core.Action) bool {
	moved := false
	for _, a := range intents {
		switch a {
		case core.ActionQuit:
			e.quitRequested = true
		case core.ActionPause:
			if !e.gameOver {
				e.paused = !e.paused
			}
		case core.ActionRestart:
			if e.gameOver || e.paused {
				e.Restart()
				return true
			}
		default:
			if moved || !a.IsMovement() || e.paused || e.gameOver {
				continue
			}
			e.move(a)
			moved = true
		}
	}
	return false
}

// move builds a candidate for the intent and commits it if it fits.
func (e *Engine) move(a core.Action) {
	if e.current == nil {
		return
	}

	cand := *e.current
	switch a {
	case core.ActionLeft:
		cand = cand.Moved(-1, 0)
	case core.ActionRight:
		cand = cand.Moved(1, 0)
	case core.ActionSoftDrop:
		cand = cand.Moved(0, 1)
	case core.ActionRotate:
		cand = cand.Rotated()
	case core.ActionHardDrop:
		cand = cand.Dropped(&e.board)
	default:
		return
	}

	if cand.Collides(0, 0, &e.board) {
		return
	}
	e.current = &cand
	if a == core.ActionHardDrop {
		e.lockNow = true
	}
}

// fall advances the gravity timer and drops the piece one row when it fires.
func (e *Engine) fall(dt time.Duration) {
	e.fallTimer += dt
	if e.fallTimer < e.opts.FallInterval {
		return
	}
	e.fallTimer %= e.opts.FallInterval

	if e.current != nil && !e.current.Grounded(&e.board) {
		moved := e.current.Moved(0, 1)
		e.current = &moved
	}
}

// lock runs the lock-delay timer. It returns true when the tick should
// continue to line clearing and spawning.
func (e *Engine) lock(dt time.Duration) bool {
	if e.current == nil {
		return true
	}

	if !e.current.Grounded(&e.board) {
		e.resetLock()
		return true
	}

	if !e.lockNow {
		e.locking = true
		e.lockTimer += dt
		if e.lockTimer < e.opts.LockDelay {
			return true
		}
	}

	piece := *e.current
	e.current = nil
	e.resetLock()
	e.pieces++

	above := false
	for _, c := range piece.Blocks() {
		if c.Y < 0 {
			above = true
			continue
		}
		e.board.Set(c.X, c.Y, piece.Kind)
	}
	if above {
		e.gameOver = true
		return false
	}
	return true
}

func (e *Engine) resetLock() {
	e.lockTimer = 0
	e.locking = false
	e.lockNow = false
}

// clearLines removes full rows bottom-up and scores the total once.
func (e *Engine) clearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !e.board.IsLineFull(y) {
			y--
			continue
		}
		e.board.ClearLine(y)
		e.board.ShiftLinesDown(y)
		cleared++
		// Row y now holds what was above it; look at it again.
	}

	if cleared > 0 {
		e.lines += cleared
		e.score += LineScore(cleared)
	}
	return cleared
}

// spawn installs the preview piece if no piece is falling.
func (e *Engine) spawn() {
	if e.current != nil || e.gameOver {
		return
	}

	p := Spawn(e.next)
	if p.Collides(0, 0, &e.board) {
		e.gameOver = true
		return
	}
	e.current = &p
	e.next = e.bag.Draw()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the number of lines cleared so far.
func (e *Engine) Lines() int {
	return e.lines
}

// Paused reports whether the simulation is frozen.
func (e *Engine) Paused() bool {
	return e.paused
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// QuitRequested reports whether a quit intent has been received.
func (e *Engine) QuitRequested() bool {
	return e.quitRequested
}
