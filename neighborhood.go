package picturelab

import "fmt"

// Pixelate partitions g into blockSize x blockSize tiles and replaces every
// pixel of a tile with the tile's truncated mean color. Tiles on the right
// and bottom edge are clipped to the grid. The source grid is not modified.
func Pixelate(g *Grid, blockSize int, opts ...Option) (*Grid, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: pixelate block size %d", ErrInvalidParameter, blockSize)
	}
	o := newOptions(opts)
	dst := newGrid(g.height, g.width)
	tileRows := (g.height-1)/blockSize + 1

	forRows(tileRows, o.workers, func(tile int) {
		r0 := tile * blockSize
		r1 := min(r0+blockSize, g.height)
		for c0 := 0; c0 < g.width; c0 += blockSize {
			c1 := min(c0+blockSize, g.width)
			avg := g.mean(r0, r1, c0, c1)
			for row := r0; row < r1; row++ {
				cells := dst.Row(row)
				for col := c0; col < c1; col++ {
					cells[col] = avg
				}
			}
		}
	})
	return dst, nil
}

// Blur returns a new grid in which every pixel is the truncated mean of a
// window around it. The window spans rows [r-size/2, r+size/2) and columns
// [c-size/2, c+size/2), clipped to the grid. For size 1 the window is the
// pixel itself.
func Blur(g *Grid, size int, opts ...Option) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: blur size %d", ErrInvalidParameter, size)
	}
	o := newOptions(opts)
	dst := newGrid(g.height, g.width)
	forRows(g.height, o.workers, func(row int) {
		cells := dst.Row(row)
		for col := range cells {
			cells[col] = g.windowMean(row, col, size)
		}
	})
	return dst, nil
}

// Enhance sharpens g by pushing each pixel away from its Blur window mean:
// out = 2*pixel - mean. Results are not clamped.
func Enhance(g *Grid, size int, opts ...Option) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: enhance size %d", ErrInvalidParameter, size)
	}
	o := newOptions(opts)
	dst := newGrid(g.height, g.width)
	forRows(g.height, o.workers, func(row int) {
		src := g.Row(row)
		cells := dst.Row(row)
		for col := range cells {
			avg := g.windowMean(row, col, size)
			cells[col] = RGB{
				R: 2*src[col].R - avg.R,
				G: 2*src[col].G - avg.G,
				B: 2*src[col].B - avg.B,
			}
		}
	})
	return dst, nil
}

// windowMean averages the Blur window of (row, col).
func (g *Grid) windowMean(row, col, size int) RGB {
	half := size / 2
	if half == 0 {
		return g.At(row, col)
	}
	r0 := max(0, row-half)
	r1 := min(g.height, row+half)
	c0 := max(0, col-half)
	c1 := min(g.width, col+half)
	return g.mean(r0, r1, c0, c1)
}

// mean returns the truncated per-channel mean of rows [r0, r1) and
// columns [c0, c1). The rectangle must not be empty.
func (g *Grid) mean(r0, r1, c0, c1 int) RGB {
	var sum RGB
	for row := r0; row < r1; row++ {
		cells := g.Row(row)
		for col := c0; col < c1; col++ {
			sum.R += cells[col].R
			sum.G += cells[col].G
			sum.B += cells[col].B
		}
	}
	n := (r1 - r0) * (c1 - c0)
	return RGB{sum.R / n, sum.G / n, sum.B / n}
}
