// Package pattern reads and writes the plain-text grid format: one line per
// row, '#' for a live cell and '.' for a dead one.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cgol-verify/internal/core"
)

// Ext is the file extension assumed for bare pattern names.
const Ext = ".txt"

// Load reads the pattern file at path.
func Load(path string) (core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Grid{}, fmt.Errorf("%w: %s", core.ErrPatternNotFound, path)
		}
		return core.Grid{}, fmt.Errorf("%w: %v", core.ErrPatternNotFound, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return core.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse builds a grid from pattern text.
//
// A line counts as a row when it holds at least one '#' or '.'. Marks are
// placed at consecutive columns and every other character is skipped. The
// width is derived after the scan as total marks divided by rows, so rows of
// uneven length yield an in-range but wrong width rather than an error.
func Parse(r io.Reader) (core.Grid, error) {
	buf := core.MustGrid(core.MaxRows, core.MaxCols)
	rows, marks := 0, 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		col := 0
		for i := 0; i < len(line); i++ {
			ch := line[i]
			if ch != '#' && ch != '.' {
				continue
			}
			if rows >= core.MaxRows {
				return core.Grid{}, fmt.Errorf("%w: more than %d rows", core.ErrDimensionOverflow, core.MaxRows)
			}
			if col >= core.MaxCols {
				return core.Grid{}, fmt.Errorf("%w: row %d has more than %d cells", core.ErrDimensionOverflow, rows, core.MaxCols)
			}
			buf.Set(rows, col, ch == '#')
			col++
			marks++
		}
		if col > 0 {
			rows++
		}
	}
	if err := sc.Err(); err != nil {
		return core.Grid{}, err
	}

	cols := 0
	if rows > 0 {
		cols = marks / rows
	}
	return window(&buf, rows, cols)
}

// window copies the top-left rows x cols of buf into a grid of that size.
func window(buf *core.Grid, rows, cols int) (core.Grid, error) {
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return core.Grid{}, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if buf.Alive(r, c) {
				g.Set(r, c, true)
			}
		}
	}
	return g, nil
}

// Resolve maps a pattern reference to a file path. References that already
// name an existing file are returned unchanged; bare names are looked up as
// <dir>/<name>.txt.
func Resolve(dir, name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if filepath.Ext(name) == "" {
		name += Ext
	}
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Name returns the pattern name of a path, without directory or extension.
func Name(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
