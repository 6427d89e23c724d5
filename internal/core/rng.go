package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// OneIn reports true with probability 1/n.
func (r *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// Byte returns a uniform random byte.
func (r *RNG) Byte() uint8 { return uint8(r.r.IntN(256)) }

// FillOneIn fills the buffer with 1 at probability 1/n per cell, 0 otherwise.
func FillOneIn(r *RNG, buf []uint8, n int) {
	for i := range buf {
		if r.OneIn(n) {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}
