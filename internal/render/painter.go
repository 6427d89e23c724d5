//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled
// by the cell pixel size.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// GridLines strokes a one-pixel line at every cell boundary across the view.
func (gp *GridPainter) GridLines(dst *ebiten.Image, clr color.Color, scale int) {
	wpx := float32(gp.w * scale)
	hpx := float32(gp.h * scale)
	for x := 0; x <= gp.w*scale; x += scale {
		vector.StrokeLine(dst, float32(x), 0, float32(x), hpx, 1, clr, false)
	}
	for y := 0; y <= gp.h*scale; y += scale {
		vector.StrokeLine(dst, 0, float32(y), wpx, float32(y), 1, clr, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
