package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Tetromino identifies one of the seven pieces. The zero value, None,
// doubles as the empty board cell.
type Tetromino uint8

const (
	None Tetromino = iota
	I
	O
	T
	S
	Z
	J
	L
)

// All lists the seven playable tetrominoes in catalog order.
var All = [7]Tetromino{I, O, T, S, Z, J, L}

// Point is a grid coordinate or offset. Y grows downward.
type Point struct {
	X, Y int
}

var shapes = [...][4]Point{
	I: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	T: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	S: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	Z: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	J: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	L: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

var colors = [...]core.Color{
	None: core.ColorDefault,
	I:    core.ColorCyan,
	O:    core.ColorYellow,
	T:    core.ColorMagenta,
	S:    core.ColorGreen,
	Z:    core.ColorRed,
	J:    core.ColorBlue,
	L:    core.ColorOrange,
}

// Valid reports whether t is one of the seven playable pieces.
func (t Tetromino) Valid() bool {
	return t >= I && t <= L
}

// Shape returns the unrotated cell offsets of the piece.
// Panics for None or unknown values.
func (t Tetromino) Shape() [4]Point {
	if !t.Valid() {
		panic("tetris: no shape for " + t.String())
	}
	return shapes[t]
}

// Color returns the display color of the piece. None maps to the default color.
func (t Tetromino) Color() core.Color {
	if int(t) >= len(colors) {
		return core.ColorDefault
	}
	return colors[t]
}

func (t Tetromino) String() string {
	switch t {
	case None:
		return "None"
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "Unknown"
	}
}

// Rotate turns an offset clockwise about the origin by r quarter turns.
// Any r is accepted; it is reduced mod 4.
func Rotate(p Point, r int) Point {
	switch ((r % 4) + 4) % 4 {
	case 1:
		return Point{X: -p.Y, Y: p.X}
	case 2:
		return Point{X: -p.X, Y: -p.Y}
	case 3:
		return Point{X: p.Y, Y: -p.X}
	default:
		return p
	}
}
