package life

import (
	"testing"

	"cgol-verify/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(rows, cols int, alive ...[2]int) core.Grid {
	g := core.MustGrid(rows, cols)
	for _, rc := range alive {
		g.Set(rc[0], rc[1], true)
	}
	return g
}

func expectAlive(t *testing.T, g *core.Grid, alive ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, rc := range alive {
		want[rc] = true
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Alive(r, c) != want[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, g.Alive(r, c), want[[2]int{r, c}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, b := range []core.Boundary{core.Bounded, core.Toroidal} {
		t.Run(b.String(), func(t *testing.T) {
			g := gridOf(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

			next := Step(&g, b)
			expectAlive(t, &next, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

			back := Step(&next, b)
			expectAlive(t, &back, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
		})
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := gridOf(4, 4, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	next := Step(&g, core.Bounded)
	assert.True(t, next.Equal(&g))
}

func TestEdgeBlinkerDependsOnBoundary(t *testing.T) {
	g := gridOf(5, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})

	bounded := Step(&g, core.Bounded)
	expectAlive(t, &bounded, [2]int{0, 2}, [2]int{1, 2})

	wrapped := Step(&g, core.Toroidal)
	expectAlive(t, &wrapped, [2]int{4, 2}, [2]int{0, 2}, [2]int{1, 2})
}

func TestIsolatedCellDies(t *testing.T) {
	for _, b := range []core.Boundary{core.Bounded, core.Toroidal} {
		g := gridOf(5, 5, [2]int{2, 2})
		next := Step(&g, b)
		assert.Zero(t, next.Population(), b.String())
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := gridOf(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := g
	_ = Step(&g, core.Toroidal)
	assert.True(t, before.Equal(&g))
}

func TestGliderWrapsTorus(t *testing.T) {
	// A glider moves one cell diagonally every four generations, so on an
	// 8x8 torus it returns home after 32.
	g := gridOf(8, 8, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	cur := g
	for i := 0; i < 32; i++ {
		cur = Step(&cur, core.Toroidal)
		require.Equal(t, 5, cur.Population(), "generation %d", i+1)
	}
	assert.True(t, cur.Equal(&g))
}

func TestEmptyGrid(t *testing.T) {
	g := core.MustGrid(0, 0)
	for _, b := range []core.Boundary{core.Bounded, core.Toroidal} {
		next := Step(&g, b)
		assert.True(t, next.Equal(&g))
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, b := range []core.Boundary{core.Bounded, core.Toroidal} {
		for _, workers := range []int{2, 3, 8, 300} {
			g, err := core.RandomGrid(61, 47, int64(workers), 0.35)
			require.NoError(t, err)
			sim := New(b, workers)
			seq, par := g, g
			for i := 0; i < 12; i++ {
				seq = Step(&seq, b)
				par = sim.Step(&par)
				require.True(t, seq.Equal(&par), "%s workers=%d gen=%d", b, workers, i+1)
			}
		}
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 3, Rule(false, n), "birth n=%d", n)
		assert.Equal(t, n == 2 || n == 3, Rule(true, n), "survival n=%d", n)
	}
}

func TestLifeRun(t *testing.T) {
	g := gridOf(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	l := NewLife(g, New(core.Toroidal, 1))

	l.Step()
	l.Step()
	l.Step()
	assert.Equal(t, 3, l.Generation())
	cur := l.Grid()
	assert.False(t, cur.Equal(&g))
	assert.Equal(t, core.Size{W: 5, H: 5}, l.Size())

	l.Reset()
	assert.Zero(t, l.Generation())
	cur = l.Grid()
	assert.True(t, cur.Equal(&g))
	assert.Len(t, l.Cells(), 25)
}
