//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"cgol-verify/internal/core"
	"cgol-verify/internal/verify"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HeaderHeight is the height of the generation strip above the grid.
const HeaderHeight = 30

// HUD renders the generation header above the grid and the run summary
// panel to its right.
type HUD struct {
	pattern    string
	width      int
	panel      *ebiten.Image
	lastHeight int

	generation int
	snapshot   core.ParameterSnapshot
	verdict    *verify.Verdict
}

// NewHUD constructs a HUD for the named pattern with a side panel of the
// given width. A width of zero disables the panel.
func NewHUD(pattern string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{pattern: pattern, width: width}
}

// Width returns the side panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the values shown by the HUD.
func (h *HUD) Update(generation int, snap core.ParameterSnapshot, v *verify.Verdict) {
	if h == nil {
		return
	}
	h.generation = generation
	h.snapshot = snap
	h.verdict = v
}

// Draw paints the header across gridWidth pixels and the side panel at
// offsetX, spanning height pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	header := fmt.Sprintf("%s Generation: %d", h.pattern, h.generation)
	text.Draw(screen, header, face, 10, 20, textColor)

	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := panelPadding + headerBaseline
	for _, line := range h.snapshot.Lines() {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += lineHeight
	}
	if h.verdict != nil {
		y += lineHeight
		label, fg := "FAIL", failColor
		if h.verdict.Matched() {
			label, fg = "PASS", passColor
		}
		text.Draw(h.panel, label, face, panelPadding, y, fg)
		if c, ok := h.verdict.First(); ok {
			y += lineHeight
			text.Draw(h.panel, "first divergence "+c.String(), face, panelPadding, y, fg)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	textColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	passColor = color.RGBA{R: 80, G: 220, B: 80, A: 255}
	failColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
)
