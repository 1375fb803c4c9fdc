package picturelab

import (
	"math/rand"
	"testing"
)

// gridFromRows builds a grid from literal rows of equal length.
func gridFromRows(t *testing.T, rows [][]RGB) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for r, cells := range rows {
		copy(g.Row(r), cells)
	}
	return g
}

// solidGrid builds a height x width grid of a single color.
func solidGrid(t *testing.T, height, width int, c RGB) *Grid {
	t.Helper()
	g, err := NewGrid(height, width)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Fill(c)
	return g
}

// randomGrid builds a reproducible grid of random 8-bit colors.
func randomGrid(t *testing.T, height, width int, seed int64) *Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := solidGrid(t, height, width, Black)
	g.forEach(func(c *RGB) {
		*c = RGB{rng.Intn(256), rng.Intn(256), rng.Intn(256)}
	})
	return g
}

// redRow builds a one row grid whose red channels are the given values.
func redRow(t *testing.T, reds ...int) *Grid {
	t.Helper()
	cells := make([]RGB, len(reds))
	for i, r := range reds {
		cells[i] = RGB{R: r}
	}
	return gridFromRows(t, [][]RGB{cells})
}

// reds returns the red channel of every cell of a one row grid.
func reds(g *Grid) []int {
	out := make([]int, g.Width())
	for col, c := range g.Row(0) {
		out[col] = c.R
	}
	return out
}
