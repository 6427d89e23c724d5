package sim

import (
	"time"

	"golife/internal/core"
	"golife/internal/life"
)

// Controller owns the world and the running/paused state machine, and paces
// generations independently of the render loop.
type Controller struct {
	world  *life.World
	pacer  *core.Pacer
	rate   int
	paused bool
	gen    int
}

// New constructs a running Controller at the given generations-per-second rate.
func New(world *life.World, rate int) *Controller {
	if rate < 1 {
		rate = 1
	}
	return &Controller{world: world, pacer: core.NewPacer(rate), rate: rate}
}

// World returns the controlled world.
func (c *Controller) World() *life.World { return c.world }

// Tick advances one generation. While paused it is a no-op.
func (c *Controller) Tick() {
	if c.paused {
		return
	}
	c.world.Step()
	c.gen++
}

// Update is called once per frame and ticks when the pacer says it is time.
// It reports whether a generation was advanced.
func (c *Controller) Update() bool {
	if c.paused {
		return false
	}
	if !c.pacer.ShouldTick() {
		return false
	}
	c.Tick()
	return true
}

// TogglePause flips between running and paused and returns the new flag.
// Resuming resets the pacer so time spent paused is not replayed as a burst
// of catch-up generations.
func (c *Controller) TogglePause() bool {
	c.paused = !c.paused
	if !c.paused {
		c.pacer.Reset()
	}
	return c.paused
}

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.paused }

// Faster raises the tick rate by one generation per second.
func (c *Controller) Faster() int {
	c.rate++
	c.pacer.SetRate(c.rate)
	return c.rate
}

// Slower lowers the tick rate by one generation per second, stopping at 1 so
// the frame delay never divides by zero.
func (c *Controller) Slower() int {
	if c.rate > 1 {
		c.rate--
	}
	c.pacer.SetRate(c.rate)
	return c.rate
}

// Rate returns the current tick rate.
func (c *Controller) Rate() int { return c.rate }

// Delay returns the interval between generations at the current rate.
func (c *Controller) Delay() time.Duration {
	return time.Second / time.Duration(c.rate)
}

// Generation returns the number of generations advanced since start.
func (c *Controller) Generation() int { return c.gen }
