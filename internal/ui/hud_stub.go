//go:build !ebiten

package ui

import (
	"cgol-verify/internal/core"
	"cgol-verify/internal/verify"
)

// HeaderHeight is the height of the generation strip above the grid.
const HeaderHeight = 0

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string, int) *HUD { return nil }

// Width reports no panel in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, core.ParameterSnapshot, *verify.Verdict) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
