package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true with the given probability.
func (r *RNG) Bool(p float64) bool {
	return r.r.Float64() < p
}

// Fill sets every cell of g alive with probability density.
func (r *RNG) Fill(g *Grid, density float64) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			g.Set(row, col, r.Bool(density))
		}
	}
}

// RandomGrid returns a rows x cols grid seeded deterministically.
func RandomGrid(rows, cols int, seed int64, density float64) (Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	NewRNG(seed).Fill(&g, density)
	return g, nil
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
