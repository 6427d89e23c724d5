package core

import "time"

// Pacer runs simulation updates at a steady generations-per-second rate,
// decoupled from how often the render loop calls it.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given rate.
func NewPacer(rate int) *Pacer {
	p := &Pacer{}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the tick rate. Rates below 1 are treated as 1.
func (p *Pacer) SetRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	p.step = time.Second / time.Duration(rate)
}

// Step returns the current inter-tick interval.
func (p *Pacer) Step() time.Duration { return p.step }

// Reset drops any accumulated backlog and restarts pacing from now. The next
// ShouldTick fires immediately, then the regular interval applies.
func (p *Pacer) Reset() {
	p.last = time.Time{}
	p.accumulator = p.step
}

// ShouldTick reports whether the simulation should advance by one generation.
func (p *Pacer) ShouldTick() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
