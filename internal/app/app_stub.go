//go:build !ebiten

package app

import (
	"fmt"

	"cgol-verify/internal/core"
	"cgol-verify/internal/verify"
)

// Options mirrors the GUI build's options so callers compile headless.
type Options struct {
	Title      string
	Boundary   core.Boundary
	Workers    int
	Iterations int
	Scale      int
	FPS        int
	Verdict    *verify.Verdict
	Snapshot   core.ParameterSnapshot
}

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(core.Grid, Options) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// WindowSize returns zeros in the headless build.
func (g *Game) WindowSize() (int, int) { return 0, 0 }

// Reset is a no-op placeholder.
func (g *Game) Reset() {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
