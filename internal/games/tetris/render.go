package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	origin := dst.Bounds().Centered(layoutW, layoutH)
	board := core.NewRect(origin.X, origin.Y+1, boardW, boardH)
	panel := core.NewRect(board.Right()+1, board.Y, panelW, boardH)

	dst.DrawTextColored(board.X, origin.Y, g.Title(), core.ColorBrightWhite)
	g.renderBoard(dst, board)
	g.renderPanel(dst, panel)

	switch {
	case g.last.GameOver:
		g.renderOverlay(dst, board, "GAME OVER", "R to restart")
	case g.last.Paused:
		g.renderOverlay(dst, board, "PAUSED", "P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", layoutW, layoutH))
}

// renderBoard draws the frame, locked cells and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)

	snap := g.last
	for y := range Height {
		for x := range Width {
			px := r.X + 1 + x*cellW
			py := r.Y + 1 + y
			kind := snap.CellAt(x, y)
			if kind == None {
				dst.SetColored(px, py, '·', core.ColorGray)
				continue
			}
			drawBlock(dst, px, py, kind.Color())
		}
	}
}

// renderPanel draws the next piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, r core.Rect) {
	next := core.NewRect(r.X, r.Y, r.W, 6)
	dst.DrawBox(next, core.ColorGray)
	dst.DrawText(next.X+2, next.Y, " NEXT ")

	if g.last.Next.Valid() {
		c := g.last.Next.Color()
		for _, p := range g.last.NextCells {
			drawBlock(dst, next.X+3+p.X*cellW, next.Y+2+p.Y, c)
		}
	}

	y := next.Bottom() + 1
	lines := []string{
		fmt.Sprintf("Score  %d", g.last.Score),
		fmt.Sprintf("Lines  %d", g.last.Lines),
		fmt.Sprintf("Pieces %d", g.last.Pieces),
	}
	if g.difficulty.IsEnabled() {
		lines = append(lines, fmt.Sprintf("Level  %d", g.Level()))
	}
	for i, s := range lines {
		dst.DrawText(r.X+1, y+i, s)
	}
}

// renderOverlay draws a two-line message box over the middle of the board.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, line1, line2 string) {
	box := board.Centered(board.W-4, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(box.W-len([]rune(line1)))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(box.X+(box.W-len([]rune(line2)))/2, box.Y+3, line2)
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellW {
		dst.SetColored(x+i, y, '█', c)
	}
}
