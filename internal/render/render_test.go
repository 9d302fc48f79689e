package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cgol-verify/internal/core"
	"cgol-verify/internal/verify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() core.Grid {
	g := core.MustGrid(2, 3)
	g.Set(0, 1, true)
	g.Set(1, 2, true)
	return g
}

func TestFillBinaryRGBA(t *testing.T) {
	g := sample()
	buf := make([]byte, 4*6)
	fillBinaryRGBA(buf, &g, AliveColor, DeadColor)

	assert.Equal(t, []byte{0, 0, 80, 255}, buf[0:4])
	assert.Equal(t, []byte{255, 255, 0, 255}, buf[4:8])
	assert.Equal(t, []byte{255, 255, 0, 255}, buf[20:24])
}

func TestGridImage(t *testing.T) {
	g := sample()
	img := GridImage(&g, 4, true)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assert.Equal(t, LineColor, img.RGBAAt(4, 1))
	assert.Equal(t, AliveColor, img.RGBAAt(5, 1))
	assert.Equal(t, DeadColor, img.RGBAAt(1, 1))

	plain := GridImage(&g, 1, true)
	assert.Equal(t, AliveColor, plain.RGBAAt(1, 0))
}

func TestCellSize(t *testing.T) {
	g := core.MustGrid(64, 16)
	assert.Equal(t, 10, CellSize(&g))
	big := core.MustGrid(core.MaxRows, core.MaxCols)
	assert.Equal(t, 2, CellSize(&big))
	empty := core.MustGrid(0, 0)
	assert.Equal(t, 1, CellSize(&empty))
}

func TestSaveComparison(t *testing.T) {
	g := sample()
	dir := filepath.Join(t.TempDir(), "t0")
	require.NoError(t, SaveComparison(dir, &g, &g))

	for _, name := range []string{"expected_grid.png", "generated_grid.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 3*CellSize(&g), img.Bounds().Dx())
	}
}

func TestTerminalPlain(t *testing.T) {
	g := sample()
	term := NewTerminal(false)
	assert.Equal(t, ".#.\n..#\n", term.Grid(&g))

	res, err := verify.Verify(&g, &g)
	require.NoError(t, err)
	v := verify.Verdict{Result: res, Pattern: "sample", Generations: 3, Boundary: core.Bounded}
	assert.Equal(t, v.Summary(), term.Verdict(v))

	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{{Key: "pattern", Label: "Pattern", Value: "sample"}}},
	}}
	assert.Equal(t, "Run\n  Pattern: sample\n", term.Parameters(snap))
}

func TestTerminalColorGlyphs(t *testing.T) {
	g := sample()
	out := NewTerminal(true).Grid(&g)
	assert.Equal(t, 2, strings.Count(out, aliveGlyph))
	assert.Equal(t, 4, strings.Count(out, deadGlyph))
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
