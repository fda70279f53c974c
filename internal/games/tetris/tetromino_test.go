package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestShapesHaveFourDistinctCells(t *testing.T) {
	for _, kind := range All {
		seen := make(map[Point]bool)
		for _, p := range kind.Shape() {
			assert.False(t, seen[p], "%v repeats offset %v", kind, p)
			seen[p] = true
		}
		assert.Len(t, seen, 4, kind.String())
	}
}

func TestShapePanicsForNone(t *testing.T) {
	assert.Panics(t, func() { None.Shape() })
	assert.Panics(t, func() { Tetromino(42).Shape() })
}

func TestColors(t *testing.T) {
	want := map[Tetromino]core.Color{
		I: core.ColorCyan,
		O: core.ColorYellow,
		T: core.ColorMagenta,
		S: core.ColorGreen,
		Z: core.ColorRed,
		J: core.ColorBlue,
		L: core.ColorOrange,
	}
	for kind, c := range want {
		assert.Equal(t, c, kind.Color(), kind.String())
	}
	assert.Equal(t, core.ColorDefault, None.Color())
	assert.Equal(t, core.ColorDefault, Tetromino(99).Color())
}

func TestRotateQuarterTurns(t *testing.T) {
	p := Point{X: 2, Y: 1}
	assert.Equal(t, p, Rotate(p, 0))
	assert.Equal(t, Point{X: -1, Y: 2}, Rotate(p, 1))
	assert.Equal(t, Point{X: -2, Y: -1}, Rotate(p, 2))
	assert.Equal(t, Point{X: 1, Y: -2}, Rotate(p, 3))
}

func TestRotateGroup(t *testing.T) {
	for _, kind := range All {
		for _, p := range kind.Shape() {
			assert.Equal(t, p, Rotate(p, 4), "order 4")
			for a := -4; a <= 4; a++ {
				for b := -4; b <= 4; b++ {
					assert.Equal(t, Rotate(p, a+b), Rotate(Rotate(p, a), b),
						"%v offset %v a=%d b=%d", kind, p, a, b)
				}
			}
			assert.Equal(t, Rotate(p, 3), Rotate(p, -1))
		}
	}
}

func TestTetrominoString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "T", T.String())
	assert.Equal(t, "Unknown", Tetromino(200).String())
	assert.True(t, L.Valid())
	assert.False(t, None.Valid())
}
