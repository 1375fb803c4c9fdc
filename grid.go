package picturelab

import "fmt"

// Grid is a row-major 2D array of RGB values with a fixed height (rows)
// and width (columns).
type Grid struct {
	height, width int
	pix           []RGB
}

// NewGrid creates an all-black grid. It fails with ErrInvalidDimension if
// either dimension is not positive.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}
	return newGrid(height, width), nil
}

func newGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		pix:    make([]RGB, height*width),
	}
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the color at (row, col).
func (g *Grid) Get(row, col int) (RGB, error) {
	if !g.InBounds(row, col) {
		return RGB{}, g.boundsError(row, col)
	}
	return g.pix[row*g.width+col], nil
}

// Set replaces the color at (row, col).
func (g *Grid) Set(row, col int, c RGB) error {
	if !g.InBounds(row, col) {
		return g.boundsError(row, col)
	}
	g.pix[row*g.width+col] = c
	return nil
}

// At returns the color at (row, col) without a bounds check beyond the
// one the runtime performs on the backing slice.
func (g *Grid) At(row, col int) RGB {
	return g.pix[row*g.width+col]
}

// SetAt is the unchecked counterpart of Set.
func (g *Grid) SetAt(row, col int, c RGB) {
	g.pix[row*g.width+col] = c
}

// Row returns the cells of one row. The slice aliases the grid storage.
func (g *Grid) Row(row int) []RGB {
	return g.pix[row*g.width : (row+1)*g.width]
}

// Copy returns a deep copy of g.
func (g *Grid) Copy() *Grid {
	dst := newGrid(g.height, g.width)
	copy(dst.pix, g.pix)
	return dst
}

// Fill sets every cell to c.
func (g *Grid) Fill(c RGB) {
	for i := range g.pix {
		g.pix[i] = c
	}
}

// Equal reports whether g and other have the same size and colors. A nil
// other is never equal.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// String describes the grid size.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid height %d width %d", g.height, g.width)
}

// forEach calls fn with a pointer to every cell, row by row.
func (g *Grid) forEach(fn func(c *RGB)) {
	for i := range g.pix {
		fn(&g.pix[i])
	}
}

func (g *Grid) boundsError(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid",
		ErrOutOfBounds, row, col, g.height, g.width)
}
