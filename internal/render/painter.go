//go:build ebiten

package render

import (
	"image/color"

	"cgol-verify/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a grid window.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids of size s.
func NewGridPainter(s core.Size) *GridPainter {
	gp := &GridPainter{w: s.W, h: s.H, buf: make([]byte, 4*s.W*s.H)}
	gp.img = ebiten.NewImage(max(s.W, 1), max(s.H, 1))
	return gp
}

// Blit uploads g into the painter image and draws it scaled at (0, top).
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale, top int) {
	if g.Cols() != gp.w || g.Rows() != gp.h || gp.w*gp.h == 0 {
		return
	}
	fillBinaryRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(0, float64(top))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
