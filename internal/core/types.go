package core

import (
	"fmt"
	"strings"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Boundary selects how neighbour lookups beyond the grid edge are resolved.
// It is fixed for the lifetime of a run.
type Boundary int

const (
	// Bounded treats off-grid neighbours as dead.
	Bounded Boundary = iota
	// Toroidal wraps neighbour indices modulo the grid dimensions.
	Toroidal
)

// String returns the canonical boundary name.
func (b Boundary) String() string {
	switch b {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a boundary name to its Boundary value.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown boundary %q", s)
}
