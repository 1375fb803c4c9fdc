package picturelab

// EdgeDetectionHorizontal marks horizontal color changes in place. Every
// pixel except those in the last column becomes black if its distance to
// its right neighbour exceeds threshold and white otherwise. The last
// column keeps its colors.
func EdgeDetectionHorizontal(g *Grid, threshold float64, opts ...Option) {
	o := newOptions(opts)
	forRows(g.height, o.workers, func(row int) {
		cells := g.Row(row)
		// cells[col+1] is still unmodified when cells[col] is compared.
		for col := 0; col < g.width-1; col++ {
			if o.distance.Distance(cells[col], cells[col+1]) > threshold {
				cells[col] = Black
			} else {
				cells[col] = White
			}
		}
	})
}

// EdgeDetectionVertical returns an edge map of vertical color changes:
// pixel (row, col) is black if its distance to the pixel above exceeds
// threshold and white otherwise. Row 0 has nothing above it and is left
// black.
func EdgeDetectionVertical(g *Grid, threshold float64, opts ...Option) *Grid {
	o := newOptions(opts)
	dst := newGrid(g.height, g.width)
	forRows(g.height, o.workers, func(row int) {
		if row == 0 {
			return
		}
		above, cur := g.Row(row-1), g.Row(row)
		cells := dst.Row(row)
		for col := range cells {
			if o.distance.Distance(cur[col], above[col]) > threshold {
				cells[col] = Black
			} else {
				cells[col] = White
			}
		}
	})
	return dst
}
