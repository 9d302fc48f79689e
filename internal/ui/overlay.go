//go:build ebiten

package ui

import (
	"image/color"

	"cgol-verify/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws grid lines over the cells. G toggles it.
type Overlay struct {
	rows, cols int
	scale      int
	top        int
	show       bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay for a rows x cols grid drawn at scale
// pixels per cell, top pixels below the window edge.
func NewOverlay(rows, cols, scale, top int) *Overlay {
	o := &Overlay{rows: rows, cols: cols, scale: scale, top: top, show: scale >= 4}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw paints the grid lines when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale <= 1 {
		return
	}
	w := float64(o.cols * o.scale)
	h := float64(o.rows * o.scale)
	for c := 0; c <= o.cols; c++ {
		o.line(screen, float64(c*o.scale), float64(o.top), 1, h)
	}
	for r := 0; r <= o.rows; r++ {
		o.line(screen, 0, float64(o.top+r*o.scale), w, 1)
	}
}

func (o *Overlay) line(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(render.LineColor)
	dst.DrawImage(o.pixel, op)
}
