package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 127, B: 0, A: 255}
	off := color.RGBA{A: 255}

	fillCellsRGBA(buf, cells, on, off)

	for i, c := range cells {
		base := i * 4
		got := [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
		want := [4]byte{0, 0, 0, 255}
		if c != 0 {
			want = [4]byte{255, 127, 0, 255}
		}
		if got != want {
			t.Fatalf("cell %d (state %d): pixel %v, want %v", i, c, got, want)
		}
	}
}
