package core

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

const (
	// MaxRows is the fixed row capacity of every Grid.
	MaxRows = 256
	// MaxCols is the fixed column capacity of every Grid.
	MaxCols = 256

	wordsPerRow = MaxCols / 64
)

// Grid stores a MaxRows x MaxCols bit array windowed to rows x cols. Grid is
// a value type: assigning a Grid copies every cell. Bits outside the window
// are always zero.
type Grid struct {
	rows, cols int
	bits       [MaxRows][wordsPerRow]uint64
}

// NewGrid returns an all-dead grid with the given logical dimensions.
func NewGrid(rows, cols int) (Grid, error) {
	if err := CheckDims(rows, cols); err != nil {
		return Grid{}, err
	}
	return Grid{rows: rows, cols: cols}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
func MustGrid(rows, cols int) Grid {
	g, err := NewGrid(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// CheckDims reports ErrDimensionOverflow when rows x cols does not fit the
// fixed capacity.
func CheckDims(rows, cols int) error {
	if rows < 0 || cols < 0 || rows > MaxRows || cols > MaxCols {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrDimensionOverflow, rows, cols, MaxRows, MaxCols)
	}
	return nil
}

// Rows returns the logical row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the logical column count.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Empty reports whether the window holds no cells.
func (g *Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// Alive reports the state of cell (r, c). Cells outside the window are dead.
func (g *Grid) Alive(r, c int) bool {
	if r < 0 || c < 0 || r >= g.rows || c >= g.cols {
		return false
	}
	return g.bits[r][c>>6]>>(uint(c)&63)&1 == 1
}

// Cell returns the state of cell (r, c) as 0 or 1.
func (g *Grid) Cell(r, c int) uint8 {
	if g.Alive(r, c) {
		return 1
	}
	return 0
}

// Set updates cell (r, c). Writes outside the window are ignored.
func (g *Grid) Set(r, c int, alive bool) {
	if r < 0 || c < 0 || r >= g.rows || c >= g.cols {
		return
	}
	mask := uint64(1) << (uint(c) & 63)
	if alive {
		g.bits[r][c>>6] |= mask
		return
	}
	g.bits[r][c>>6] &^= mask
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.bits = [MaxRows][wordsPerRow]uint64{}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.rows == o.rows && g.cols == o.cols && g.bits == o.bits
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for _, w := range g.bits[r] {
			n += bits.OnesCount64(w)
		}
	}
	return n
}

// Cells returns the window as a row-major 0/1 slice.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out[r*g.cols+c] = g.Cell(r, c)
		}
	}
	return out
}

// AppendBinary appends the dimensions and the window's row words to dst in
// little-endian order.
func (g *Grid) AppendBinary(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, uint16(g.rows))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(g.cols))
	words := (g.cols + 63) / 64
	for r := 0; r < g.rows; r++ {
		for w := 0; w < words; w++ {
			dst = binary.LittleEndian.AppendUint64(dst, g.bits[r][w])
		}
	}
	return dst
}

// String renders the grid with '#' for live and '.' for dead cells, one line
// per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Alive(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
