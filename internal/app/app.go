//go:build ebiten

package app

import (
	"image/color"

	"cgol-verify/internal/core"
	"cgol-verify/internal/render"
	"cgol-verify/internal/sims/life"
	"cgol-verify/internal/ui"
	"cgol-verify/internal/verify"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 220

// Options configures a Game.
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

// Game animates a Life run with the ebiten.Game interface.
type Game struct {
	run     *life.Life
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.Pacer

	onColor  color.Color
	offColor color.Color

	opts     Options
	paused   bool
	tickOnce bool
}

// New constructs a Game that animates initial for opts.Iterations
// generations. Zero iterations animate indefinitely.
func New(initial core.Grid, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = render.CellSize(&initial)
	}
	size := initial.Size()
	return &Game{
		run:      life.NewLife(initial, life.New(opts.Boundary, opts.Workers)),
		painter:  render.NewGridPainter(size),
		overlay:  ui.NewOverlay(size.H, size.W, opts.Scale, ui.HeaderHeight),
		hud:      ui.NewHUD(opts.Title, panelWidth),
		pacer:    core.NewPacer(opts.FPS),
		onColor:  render.AliveColor,
		offColor: render.DeadColor,
		opts:     opts,
	}
}

// WindowSize returns the preferred window dimensions.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }

// Reset rewinds the run to its initial grid.
func (g *Game) Reset() {
	g.run.Reset()
	g.tickOnce = false
}

func (g *Game) finished() bool {
	return g.opts.Iterations > 0 && g.run.Generation() >= g.opts.Iterations
}

// Update handles per-frame logic and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	g.overlay.Update()

	switch {
	case g.finished():
	case g.tickOnce:
		g.run.Step()
		g.tickOnce = false
	case !g.paused:
		for n := g.pacer.Due(8); n > 0 && !g.finished(); n-- {
			g.run.Step()
		}
	}

	var v *verify.Verdict
	if g.finished() {
		v = g.opts.Verdict
	}
	g.hud.Update(g.run.Generation(), g.opts.Snapshot, v)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	cur := g.run.Grid()
	g.painter.Blit(screen, &cur, g.onColor, g.offColor, g.opts.Scale, ui.HeaderHeight)
	g.overlay.Draw(screen)
	s := g.run.Size()
	g.hud.Draw(screen, s.W*g.opts.Scale, ui.HeaderHeight+s.H*g.opts.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.run.Size()
	return s.W*g.opts.Scale + g.hud.Width(), ui.HeaderHeight + s.H*g.opts.Scale
}
