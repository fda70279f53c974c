package tetris

// State is the engine's coarse state.
type State string

const (
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
)

// Snapshot is a read-only copy of everything presentation needs.
// Mutating it never affects the engine.
type Snapshot struct {
	Tick  uint64
	State State
	Board Board

	// Active piece; HasActive is false between lock and spawn or after game over.
	HasActive    bool
	Active       Piece
	ActiveBlocks [4]Point
	Locking      bool // grounded and counting down the lock delay

	// Preview offsets of the next piece, unrotated.
	Next      Tetromino
	NextCells [4]Point

	Score  int
	Lines  int
	Pieces int // pieces locked so far

	Paused        bool
	GameOver      bool
	QuitRequested bool
}

// Snapshot returns the current engine state by value.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          e.tick,
		State:         e.state(),
		Board:         e.board,
		Next:          e.next,
		Score:         e.score,
		Lines:         e.lines,
		Pieces:        e.pieces,
		Paused:        e.paused,
		GameOver:      e.gameOver,
		QuitRequested: e.quitRequested,
	}
	if e.next.Valid() {
		snap.NextCells = e.next.Shape()
	}
	if e.current != nil {
		snap.HasActive = true
		snap.Active = *e.current
		snap.ActiveBlocks = e.current.Blocks()
		snap.Locking = e.locking
	}
	return snap
}

func (e *Engine) state() State {
	switch {
	case e.gameOver:
		return StateGameOver
	case e.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// CellAt returns what presentation should draw at (x, y): the active piece
// if it covers the cell, otherwise the locked board cell.
func (s Snapshot) CellAt(x, y int) Tetromino {
	if s.HasActive {
		for _, c := range s.ActiveBlocks {
			if c.X == x && c.Y == y {
				return s.Active.Kind
			}
		}
	}
	return s.Board.At(x, y)
}
