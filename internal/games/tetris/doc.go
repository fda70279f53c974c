// Package tetris implements the falling-block game: a 10x20 board, the
// seven tetrominoes, a 7-bag randomizer and an Engine advanced only through
// Tick. Game adapts the engine to the platform registry as the "tetris" and
// "tetris_marathon" modes.
//
// Tests in this package are property and scenario tables over engine
// snapshots and use testify's assert and require. The platform packages
// (core, config, registry, storage, tui) test with the standard testing
// package only.
package tetris
