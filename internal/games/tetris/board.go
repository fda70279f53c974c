package tetris

import "fmt"

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Board holds the locked cells of the playfield, indexed [y][x].
// A cell is empty when it holds None.
type Board [Height][Width]Tetromino

func checkCell(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d board", x, y, Width, Height))
	}
}

func checkRow(y int) {
	if y < 0 || y >= Height {
		panic(fmt.Sprintf("tetris: row %d outside %d-row board", y, Height))
	}
}

// IsEmpty reports whether the cell holds no locked block.
func (b *Board) IsEmpty(x, y int) bool {
	checkCell(x, y)
	return b[y][x] == None
}

// At returns the piece occupying the cell, or None.
func (b *Board) At(x, y int) Tetromino {
	checkCell(x, y)
	return b[y][x]
}

// Set writes a cell unconditionally. Pass None to empty it.
func (b *Board) Set(x, y int, t Tetromino) {
	checkCell(x, y)
	b[y][x] = t
}

// IsLineFull reports whether every cell of row y is occupied.
func (b *Board) IsLineFull(y int) bool {
	checkRow(y)
	for _, c := range b[y] {
		if c == None {
			return false
		}
	}
	return true
}

// ClearLine empties row y.
func (b *Board) ClearLine(y int) {
	checkRow(y)
	b[y] = [Width]Tetromino{}
}

// ShiftLinesDown moves every row above from down by one, overwriting from,
// and empties row 0. Call it right after ClearLine(from).
func (b *Board) ShiftLinesDown(from int) {
	checkRow(from)
	for y := from; y > 0; y-- {
		b[y] = b[y-1]
	}
	b[0] = [Width]Tetromino{}
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != None {
				n++
			}
		}
	}
	return n
}
