package life

import (
	"golife/internal/core"
)

// World implements a Game of Life variant on an edge-clamped square board.
//
// The transition rule is deliberately simplified: a cell's next state is
// alive exactly when its 8-neighbor live count is 2 or 3, regardless of the
// cell's own state. Canonical Life would additionally require a dead cell to
// have exactly 3 neighbors to come alive; this table keeps 2-neighbor births.
type World struct {
	cfg   Config
	board *core.Board
}

// New returns a World with the provided side length and default density.
func New(side int) *World {
	cfg := DefaultConfig()
	cfg.Side = side
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World for the given configuration.
func NewWithConfig(cfg Config) *World {
	if cfg.Side < 3 {
		cfg.Side = 3
	}
	if cfg.SpawnOneIn < 1 {
		cfg.SpawnOneIn = 1
	}
	return &World{cfg: cfg, board: core.NewBoard(cfg.Side)}
}

// Size returns the grid dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.cfg.Side, H: w.cfg.Side}
}

// Cells exposes the current grid values.
func (w *World) Cells() []uint8 { return w.board.Cells() }

// Board exposes the underlying double-buffered board.
func (w *World) Board() *core.Board { return w.board }

// Population counts the live cells.
func (w *World) Population() int { return w.board.Population() }

// Reset reseeds the board, each cell alive with probability 1/SpawnOneIn.
func (w *World) Reset(seed int64) {
	w.board.Clear()
	rng := core.NewRNG(seed)
	core.FillOneIn(rng, w.board.Cells(), w.cfg.SpawnOneIn)
}

// Step advances the board by one generation.
//
// Only strict-interior cells are recomputed. Edge rows and columns are never
// written to the next buffer, so they settle to dead after the first commit
// and stay that way.
func (w *World) Step() {
	side := w.cfg.Side
	for row := 1; row < side-1; row++ {
		for col := 1; col < side-1; col++ {
			w.board.SetNext(row, col, w.nextState(row, col))
		}
	}
	w.board.Commit()
}

// nextState applies the transition table to an interior cell.
func (w *World) nextState(row, col int) uint8 {
	n := w.liveNeighbors(row, col)
	if n == 2 || n == 3 {
		return 1
	}
	return 0
}

// liveNeighbors counts live cells in the 3x3 block around (row, col),
// excluding the cell itself. Valid only for interior cells.
func (w *World) liveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if w.board.Get(row+dr, col+dc) != 0 {
				n++
			}
		}
	}
	return n
}
