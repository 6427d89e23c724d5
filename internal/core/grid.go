package core

// Board stores two row-major grids of byte-sized cell states: the current
// generation and the one being computed. A cell is alive when its byte is 1.
type Board struct {
	side int
	cur  []uint8
	nxt  []uint8
}

// NewBoard allocates a square board with the given side length.
func NewBoard(side int) *Board {
	if side <= 0 {
		side = 1
	}
	return &Board{side: side, cur: make([]uint8, side*side), nxt: make([]uint8, side*side)}
}

// Side returns the board's side length.
func (b *Board) Side() int { return b.side }

// Get reads a cell from the current generation. Indices must be in [0, side).
func (b *Board) Get(row, col int) uint8 { return b.cur[row*b.side+col] }

// Set writes a cell in the current generation, used for seeding and tests.
func (b *Board) Set(row, col int, v uint8) { b.cur[row*b.side+col] = v }

// SetNext writes a cell into the next generation buffer.
func (b *Board) SetNext(row, col int, v uint8) { b.nxt[row*b.side+col] = v }

// Commit copies the next buffer into the current one. Cells that were never
// written via SetNext carry whatever the next buffer already held.
func (b *Board) Commit() { copy(b.cur, b.nxt) }

// Cells exposes the current backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.cur }

// Population counts the live cells in the current generation.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cur {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear zeroes both buffers.
func (b *Board) Clear() {
	for i := range b.cur {
		b.cur[i] = 0
		b.nxt[i] = 0
	}
}
