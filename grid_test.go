package picturelab

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 5)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Height() != 3 || g.Width() != 5 {
		t.Errorf("Expected 3x5, got %dx%d", g.Height(), g.Width())
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			if c := g.At(row, col); c != Black {
				t.Errorf("Expected black at (%d,%d), got %v", row, col, c)
			}
		}
	}
}

func TestNewGridInvalidDimension(t *testing.T) {
	tests := []struct {
		height, width int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
		{3, -7},
	}
	for _, tt := range tests {
		if _, err := NewGrid(tt.height, tt.width); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d): expected ErrInvalidDimension, got %v", tt.height, tt.width, err)
		}
	}
}

func TestGridGetSet(t *testing.T) {
	g := solidGrid(t, 2, 3, Black)
	c := RGB{1, 2, 3}
	if err := g.Set(1, 2, c); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := g.Get(1, 2)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get%v: expected ErrOutOfBounds, got %v", p, err)
		}
		if err := g.Set(p[0], p[1], c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set%v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestGridCopyIsDeep(t *testing.T) {
	g := randomGrid(t, 4, 4, 1)
	c := g.Copy()
	if !c.Equal(g) {
		t.Fatal("Copy should equal the original")
	}
	c.SetAt(0, 0, RGB{999, 999, 999})
	if g.At(0, 0) == c.At(0, 0) {
		t.Error("Modifying the copy should not affect the original")
	}
}

func TestGridEqual(t *testing.T) {
	a := solidGrid(t, 2, 3, White)
	if a.Equal(solidGrid(t, 3, 2, White)) {
		t.Error("Grids of different shape should not be equal")
	}
	b := a.Copy()
	b.SetAt(1, 1, Black)
	if a.Equal(b) {
		t.Error("Grids with different colors should not be equal")
	}
	if a.Equal(nil) {
		t.Error("A grid should not equal nil")
	}
}

func TestGridRowAliases(t *testing.T) {
	g := solidGrid(t, 2, 2, Black)
	g.Row(1)[0] = White
	if g.At(1, 0) != White {
		t.Error("Row should alias the grid storage")
	}
}

func TestGridString(t *testing.T) {
	g := solidGrid(t, 480, 640, Black)
	if s := g.String(); s != "Grid height 480 width 640" {
		t.Errorf("Unexpected String(): %q", s)
	}
}

func TestRGBString(t *testing.T) {
	if s := (RGB{1, 2, 3}).String(); s != "(red=1 green=2 blue=3)" {
		t.Errorf("Unexpected String(): %q", s)
	}
}

func TestRGBClamped(t *testing.T) {
	if c := (RGB{-20, 128, 300}).Clamped(); c != (RGB{0, 128, 255}) {
		t.Errorf("Expected (0,128,255), got %v", c)
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ a, n, want int }{
		{5, 3, 2},
		{-1, 3, 2},
		{-6, 3, 0},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := mod(tt.a, tt.n); got != tt.want {
			t.Errorf("mod(%d, %d): expected %d, got %d", tt.a, tt.n, tt.want, got)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 3, 2},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}
