package tetris

// Piece is the falling tetromino. It is a value: every move builds a
// candidate copy that the engine validates before installing it.
type Piece struct {
	Kind     Tetromino
	X, Y     int // anchor in grid space
	Rotation int // quarter turns clockwise, 0..3
}

// Spawn places a new piece at the spawn anchor.
func Spawn(kind Tetromino) Piece {
	return Piece{
		Kind: kind,
		X:    Width/2 - 2,
		Y:    0,
	}
}

// Blocks returns the absolute cells occupied by the piece.
func (p Piece) Blocks() [4]Point {
	var out [4]Point
	for i, off := range p.Kind.Shape() {
		r := Rotate(off, p.Rotation)
		out[i] = Point{X: p.X + r.X, Y: p.Y + r.Y}
	}
	return out
}

// Collides reports whether the piece, translated by (dx, dy), would leave
// the playfield sideways, reach the floor, or overlap a locked cell.
// Cells above the top row count as empty space.
func (p Piece) Collides(dx, dy int, b *Board) bool {
	for _, c := range p.Blocks() {
		x, y := c.X+dx, c.Y+dy
		if x < 0 || x >= Width {
			return true
		}
		if y >= Height {
			return true
		}
		if y >= 0 && b[y][x] != None {
			return true
		}
	}
	return false
}

// Grounded reports whether the piece cannot move down one row.
func (p Piece) Grounded(b *Board) bool {
	return p.Collides(0, 1, b)
}

// Moved returns a copy translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned one quarter clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// Dropped returns a copy moved down until the next row would collide.
func (p Piece) Dropped(b *Board) Piece {
	for !p.Collides(0, 1, b) {
		p.Y++
	}
	return p
}
