package tetris

import "math/rand"

// Bag is the 7-bag randomizer: every refill holds each tetromino once in
// shuffled order, so a full bag is always drained before any kind repeats.
type Bag struct {
	rng     *rand.Rand
	pending []Tetromino
}

// NewBag creates a bag drawing its shuffles from src.
func NewBag(src rand.Source) *Bag {
	return &Bag{
		rng:     rand.New(src),
		pending: make([]Tetromino, 0, len(All)),
	}
}

// Draw pops the next tetromino, refilling the bag first when it is empty.
func (b *Bag) Draw() Tetromino {
	if len(b.pending) == 0 {
		b.refill()
	}
	last := len(b.pending) - 1
	t := b.pending[last]
	b.pending = b.pending[:last]
	return t
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

// Reset drops any pending kinds. The random source keeps its position.
func (b *Bag) Reset() {
	b.pending = b.pending[:0]
}

func (b *Bag) refill() {
	b.pending = append(b.pending[:0], All[:]...)
	b.rng.Shuffle(len(b.pending), func(i, j int) {
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	})
}
