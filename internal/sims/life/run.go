package life

import "cgol-verify/internal/core"

// Life is a running simulation: an initial grid, the current grid and the
// number of generations applied so far.
type Life struct {
	sim     *Simulator
	initial core.Grid
	cur     core.Grid
	gen     int
}

// NewLife starts a run from g.
func NewLife(g core.Grid, sim *Simulator) *Life {
	return &Life{sim: sim, initial: g, cur: g}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid returns a copy of the current generation.
func (l *Life) Grid() core.Grid { return l.cur }

// Generation returns the number of generations applied since the last reset.
func (l *Life) Generation() int { return l.gen }

// Cells exposes the current grid as row-major 0/1 values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Reset rewinds to the initial grid.
func (l *Life) Reset() {
	l.cur = l.initial
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur = l.sim.Step(&l.cur)
	l.gen++
}
