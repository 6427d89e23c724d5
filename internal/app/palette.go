package app

import (
	"image/color"

	"golife/internal/core"
)

// Palette holds the two user-adjustable colors: one for live cells and grid
// lines, one for the background.
type Palette struct {
	Life       color.RGBA
	Background color.RGBA
}

// NewPalette returns the default colors, orange life on black.
func NewPalette() *Palette {
	return &Palette{
		Life:       color.RGBA{R: 255, G: 127, B: 0, A: 255},
		Background: color.RGBA{A: 255},
	}
}

// RandomizeLife replaces the life color with three uniform random bytes.
func (p *Palette) RandomizeLife(rng *core.RNG) {
	p.Life = randomColor(rng)
}

// RandomizeBackground replaces the background color with three uniform random bytes.
func (p *Palette) RandomizeBackground(rng *core.RNG) {
	p.Background = randomColor(rng)
}

func randomColor(rng *core.RNG) color.RGBA {
	return color.RGBA{R: rng.Byte(), G: rng.Byte(), B: rng.Byte(), A: 255}
}
