// Package verify compares a reference grid against a candidate grid read
// back from the hardware under test.
package verify

import (
	"fmt"

	"cgol-verify/internal/core"
)

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Result is the outcome of a comparison. It is immutable once returned.
type Result struct {
	matched   bool
	divergent []Cell
}

// Matched reports whether every cell was equal.
func (r Result) Matched() bool { return r.matched }

// First returns the first divergent cell in row-major order.
func (r Result) First() (Cell, bool) {
	if len(r.divergent) == 0 {
		return Cell{}, false
	}
	return r.divergent[0], true
}

// Divergent returns a copy of the divergent cells found. After Verify this
// holds at most one cell; after VerifyAll it holds all of them.
func (r Result) Divergent() []Cell {
	return append([]Cell(nil), r.divergent...)
}

// Verify scans ref and candidate in row-major order and stops at the first
// differing cell. Grids of different dimensions yield ErrShapeMismatch.
func Verify(ref, candidate *core.Grid) (Result, error) {
	return compare(ref, candidate, 1)
}

// VerifyAll is Verify without the short circuit: every differing cell is
// reported.
func VerifyAll(ref, candidate *core.Grid) (Result, error) {
	return compare(ref, candidate, -1)
}

func compare(ref, candidate *core.Grid, limit int) (Result, error) {
	if ref.Rows() != candidate.Rows() || ref.Cols() != candidate.Cols() {
		return Result{}, fmt.Errorf("%w: reference %dx%d, candidate %dx%d", core.ErrShapeMismatch,
			ref.Rows(), ref.Cols(), candidate.Rows(), candidate.Cols())
	}
	var diff []Cell
	for r := 0; r < ref.Rows(); r++ {
		for c := 0; c < ref.Cols(); c++ {
			if ref.Alive(r, c) == candidate.Alive(r, c) {
				continue
			}
			diff = append(diff, Cell{Row: r, Col: c})
			if limit > 0 && len(diff) >= limit {
				return Result{divergent: diff}, nil
			}
		}
	}
	return Result{matched: len(diff) == 0, divergent: diff}, nil
}

// Verdict is the result of a run as handed to reporting layers.
type Verdict struct {
	Result
	Pattern     string
	Generations int
	Boundary    core.Boundary
}

// Summary returns a one-line description of the verdict.
func (v Verdict) Summary() string {
	if v.Matched() {
		return fmt.Sprintf("PASS: %s after %d generations (%s) matches expected", v.Pattern, v.Generations, v.Boundary)
	}
	s := fmt.Sprintf("FAIL: %s after %d generations (%s) does not match expected", v.Pattern, v.Generations, v.Boundary)
	if c, ok := v.First(); ok {
		s += fmt.Sprintf(", first divergence at %s", c)
	}
	if n := len(v.divergent); n > 1 {
		s += fmt.Sprintf(", %d cells differ", n)
	}
	return s
}
