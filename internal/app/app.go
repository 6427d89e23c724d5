//go:build ebiten

package app

import (
	"fmt"
	"log"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/sim"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	painter *render.GridPainter
	status  *ui.Status
	palette *Palette
	rng     *core.RNG
	pixel   int
}

// New constructs a Game around the provided controller.
func New(ctrl *sim.Controller, pixel int, seed int64) *Game {
	size := ctrl.World().Size()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		status:  ui.NewStatus(),
		palette: NewPalette(),
		rng:     core.NewRNG(seed),
		pixel:   pixel,
	}
}

// Update drains this frame's input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		fmt.Println("Arrivederci")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		log.Printf("paused: %v", g.ctrl.TogglePause())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.ctrl.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.ctrl.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.status.Toggle()
	}

	// Palette changes show up on the next Draw, paused or not.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.palette.RandomizeLife(g.rng)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.palette.RandomizeBackground(g.rng)
	}

	g.ctrl.Update()
	return nil
}

// Draw renders the board: background and live cells in one blit, then grid
// lines. Lines and cells share the life color, so stroking the lines after
// the cells is pixel-identical to drawing them first.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.World().Cells(), g.palette.Life, g.palette.Background, g.pixel)
	g.painter.GridLines(screen, g.palette.Life, g.pixel)
	g.status.Draw(screen, ui.StatusInfo{
		Generation: g.ctrl.Generation(),
		Rate:       g.ctrl.Rate(),
		Population: g.ctrl.World().Population(),
		Paused:     g.ctrl.Paused(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.ctrl.World().Size()
	return size.W * g.pixel, size.H * g.pixel
}
