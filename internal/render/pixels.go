package render

import "image/color"

// fillCellsRGBA converts binary cell data (0/1) into RGBA pixels in buf,
// painting live cells with on and dead cells with off.
func fillCellsRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		col := off
		if c != 0 {
			col = on
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
