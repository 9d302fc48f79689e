package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"cgol-verify/internal/core"
)

// GridImage draws g with cell pixels per cell. When lines is set, grid lines
// are drawn on the top and left edge of every cell.
func GridImage(g *core.Grid, cell int, lines bool) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	rows, cols := g.Rows(), g.Cols()
	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	fillBinaryRGBA(small.Pix, g, AliveColor, DeadColor)
	if cell == 1 {
		return small
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	for y := 0; y < rows*cell; y++ {
		for x := 0; x < cols*cell; x++ {
			if lines && (x%cell == 0 || y%cell == 0) {
				img.SetRGBA(x, y, LineColor)
				continue
			}
			img.SetRGBA(x, y, small.RGBAAt(x/cell, y/cell))
		}
	}
	return img
}

// SavePNG writes g as a PNG image to path.
func SavePNG(path string, g *core.Grid) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := png.Encode(f, GridImage(g, CellSize(g), true)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveComparison writes expected_grid.png and generated_grid.png into dir.
func SaveComparison(dir string, expected, generated *core.Grid) error {
	if err := SavePNG(filepath.Join(dir, "expected_grid.png"), expected); err != nil {
		return err
	}
	return SavePNG(filepath.Join(dir, "generated_grid.png"), generated)
}
