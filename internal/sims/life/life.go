// Package life implements the Conway's Game of Life update rule over
// core.Grid under either boundary mode.
package life

import (
	"cgol-verify/internal/core"

	"golang.org/x/sync/errgroup"
)

// Step returns the generation following g. Neighbours are summed over the
// full 3x3 kernel minus the centre; off-grid positions are dead in bounded
// mode and wrap in toroidal mode. The input is not modified.
func Step(g *core.Grid, b core.Boundary) core.Grid {
	next := core.MustGrid(g.Rows(), g.Cols())
	stepRows(g, &next, b, 0, g.Rows())
	return next
}

// stepRows computes rows [from, to) of next from cur.
func stepRows(cur, next *core.Grid, b core.Boundary, from, to int) {
	rows, cols := cur.Rows(), cur.Cols()
	for r := from; r < to; r++ {
		for c := 0; c < cols; c++ {
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if b == core.Toroidal {
						nr = (nr + rows) % rows
						nc = (nc + cols) % cols
					}
					if cur.Alive(nr, nc) {
						n++
					}
				}
			}
			if Rule(cur.Alive(r, c), n) {
				next.Set(r, c, true)
			}
		}
	}
}

// Rule applies B3/S23 to a cell with n live neighbours.
func Rule(alive bool, n int) bool {
	return n == 3 || (alive && n == 2)
}

// Simulator steps grids under a fixed boundary mode, optionally splitting
// the rows of each generation across workers.
type Simulator struct {
	boundary core.Boundary
	workers  int
}

// New returns a Simulator for the given boundary. workers below two selects
// the sequential path.
func New(b core.Boundary, workers int) *Simulator {
	if workers < 1 {
		workers = 1
	}
	return &Simulator{boundary: b, workers: workers}
}

// Boundary returns the boundary mode of the simulator.
func (s *Simulator) Boundary() core.Boundary { return s.boundary }

// Step returns the generation following g. Workers read only g and write
// disjoint row bands of the result, so the output matches the sequential
// Step exactly.
func (s *Simulator) Step(g *core.Grid) core.Grid {
	rows := g.Rows()
	if s.workers < 2 || rows < 2 {
		return Step(g, s.boundary)
	}

	next := core.MustGrid(rows, g.Cols())
	workers := min(s.workers, rows)
	band := (rows + workers - 1) / workers

	var eg errgroup.Group
	for from := 0; from < rows; from += band {
		to := min(from+band, rows)
		eg.Go(func() error {
			stepRows(g, &next, s.boundary, from, to)
			return nil
		})
	}
	_ = eg.Wait()
	return next
}
