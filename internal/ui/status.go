//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status renders a one-line simulation summary in the corner of the view.
type Status struct {
	visible bool
}

// NewStatus returns a visible status overlay.
func NewStatus() *Status { return &Status{visible: true} }

// Toggle shows or hides the overlay.
func (s *Status) Toggle() { s.visible = !s.visible }

// Draw writes the status line onto the screen.
func (s *Status) Draw(screen *ebiten.Image, info StatusInfo) {
	if !s.visible {
		return
	}
	line := fmt.Sprintf("gen %d  rate %d/s  pop %d", info.Generation, info.Rate, info.Population)
	if info.Paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.White)
}
