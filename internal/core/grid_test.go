package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridBounds(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"empty", 0, 0, false},
		{"single", 1, 1, false},
		{"max", MaxRows, MaxCols, false},
		{"too many rows", MaxRows + 1, 1, true},
		{"too many cols", 1, MaxCols + 1, true},
		{"negative", -1, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows, tt.cols)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrDimensionOverflow))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows())
			assert.Equal(t, tt.cols, g.Cols())
		})
	}
}

func TestGridSetAlive(t *testing.T) {
	g := MustGrid(3, 70)
	g.Set(0, 0, true)
	g.Set(2, 69, true)
	g.Set(1, 64, true)

	assert.True(t, g.Alive(0, 0))
	assert.True(t, g.Alive(2, 69))
	assert.True(t, g.Alive(1, 64))
	assert.False(t, g.Alive(1, 63))
	assert.Equal(t, 3, g.Population())

	// Writes outside the window are ignored and reads report dead.
	g.Set(3, 0, true)
	g.Set(0, 70, true)
	assert.False(t, g.Alive(3, 0))
	assert.False(t, g.Alive(0, 70))
	assert.False(t, g.Alive(-1, 0))
	assert.Equal(t, 3, g.Population())

	g.Set(0, 0, false)
	assert.False(t, g.Alive(0, 0))
	assert.Equal(t, uint8(1), g.Cell(2, 69))
}

func TestGridIsValue(t *testing.T) {
	a := MustGrid(4, 4)
	a.Set(1, 1, true)
	b := a
	b.Set(2, 2, true)

	assert.False(t, a.Alive(2, 2), "copy must not alias the original")
	assert.False(t, a.Equal(&b))
	b.Set(2, 2, false)
	assert.True(t, a.Equal(&b))
}

func TestGridEqualDimensions(t *testing.T) {
	a := MustGrid(2, 3)
	b := MustGrid(3, 2)
	assert.False(t, a.Equal(&b))
}

func TestGridWrap(t *testing.T) {
	g := MustGrid(5, 7)
	r, c := g.Wrap(-1, 7)
	assert.Equal(t, 4, r)
	assert.Equal(t, 0, c)
}

func TestGridString(t *testing.T) {
	g := MustGrid(2, 3)
	g.Set(0, 1, true)
	g.Set(1, 2, true)
	assert.Equal(t, ".#.\n..#\n", g.String())
	assert.Equal(t, []uint8{0, 1, 0, 0, 0, 1}, g.Cells())
}

func TestGridAppendBinary(t *testing.T) {
	a := MustGrid(2, 65)
	b := MustGrid(2, 65)
	assert.Equal(t, a.AppendBinary(nil), b.AppendBinary(nil))

	b.Set(1, 64, true)
	assert.NotEqual(t, a.AppendBinary(nil), b.AppendBinary(nil))
	// 4 bytes of dimensions plus two words per row.
	assert.Len(t, a.AppendBinary(nil), 4+2*2*8)
}

func TestRandomGridDeterministic(t *testing.T) {
	a, err := RandomGrid(16, 16, 7, 0.4)
	require.NoError(t, err)
	b, err := RandomGrid(16, 16, 7, 0.4)
	require.NoError(t, err)
	assert.True(t, a.Equal(&b))
	assert.Positive(t, a.Population())

	_, err = RandomGrid(MaxRows+1, 1, 7, 0.4)
	assert.ErrorIs(t, err, ErrDimensionOverflow)
}

func TestParseBoundary(t *testing.T) {
	for in, want := range map[string]Boundary{
		"bounded":  Bounded,
		"Toroidal": Toroidal,
		"wrap":     Toroidal,
		"torus":    Toroidal,
	} {
		got, err := ParseBoundary(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBoundary("mobius")
	assert.Error(t, err)
	assert.Equal(t, "toroidal", Toroidal.String())
}

func TestParameterSnapshot(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Run", Params: []Parameter{{Key: "boundary", Label: "Boundary", Value: "toroidal"}}},
	}}
	v, ok := s.Lookup("boundary")
	assert.True(t, ok)
	assert.Equal(t, "toroidal", v)
	assert.Equal(t, "Run\n  Boundary: toroidal", s.String())
}
