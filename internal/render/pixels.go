package render

import (
	"image/color"

	"cgol-verify/internal/core"
)

// Palette colours used by every grid renderer.
var (
	AliveColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DeadColor  = color.RGBA{R: 0, G: 0, B: 80, A: 255}
	LineColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// fillBinaryRGBA converts the grid window into RGBA pixels in buf, one pixel
// per cell in row-major order.
func fillBinaryRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	cols := g.Cols()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < cols; c++ {
			base := (r*cols + c) * 4
			if g.Alive(r, c) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// CellSize returns the cell edge in pixels that fits the larger grid
// dimension into about 640 pixels.
func CellSize(g *core.Grid) int {
	m := max(g.Rows(), g.Cols())
	if m == 0 {
		return 1
	}
	return max(640/m, 1)
}
