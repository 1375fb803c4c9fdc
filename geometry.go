package picturelab

import (
	"fmt"
	"math"

	"github.com/wbrown/picturelab/imageutil"
)

const (
	// liquifyBellWidth is the standard deviation, in rows, of the Liquify
	// displacement curve.
	liquifyBellWidth = 70.0

	// wavyFrequency is the number of Wavy periods per row.
	wavyFrequency = 0.011

	// rotateMargin is the blank border added to each horizontal side of a
	// rotated grid.
	rotateMargin = 70
)

// Span is the half-open index range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of indexes in s, or 0 if s is empty.
func (s Span) Len() int {
	return max(0, s.End-s.Start)
}

// MirrorVertical swaps the left and right halves of every row around the
// vertical center line, in place. Applying it twice restores the grid.
func MirrorVertical(g *Grid) {
	for row := 0; row < g.height; row++ {
		cells := g.Row(row)
		for left, right := 0, g.width-1; left < right; left, right = left+1, right-1 {
			cells[left], cells[right] = cells[right], cells[left]
		}
	}
}

// MirrorLeftToRight copies the left half of every row onto the right half,
// so the result is symmetric about the vertical center line.
func MirrorLeftToRight(g *Grid) {
	for row := 0; row < g.height; row++ {
		cells := g.Row(row)
		for col := 0; col < g.width/2; col++ {
			cells[g.width-1-col] = cells[col]
		}
	}
}

// MirrorHorizontal copies the top half of the grid onto the bottom half.
func MirrorHorizontal(g *Grid) {
	for row := 0; row < g.height/2; row++ {
		copy(g.Row(g.height-1-row), g.Row(row))
	}
}

// MirrorDiagonal copies the lower-left triangle of the leading square of g
// onto the upper-right triangle, reflecting about the main diagonal.
func MirrorDiagonal(g *Grid) {
	n := min(g.height, g.width)
	for row := 0; row < n; row++ {
		for col := 0; col < row; col++ {
			g.SetAt(col, row, g.At(row, col))
		}
	}
}

// MirrorRegion reflects part of the grid about a vertical axis. For each
// row in rows, the pixels in columns [cols.Start, axis) are copied to
// 2*axis-col. Destinations outside cols or outside the grid are skipped,
// and nothing outside the region changes.
func MirrorRegion(g *Grid, rows, cols Span, axis int) error {
	if rows.Len() == 0 || cols.Len() == 0 {
		return fmt.Errorf("%w: empty mirror region rows=%v cols=%v",
			ErrInvalidParameter, rows, cols)
	}
	if axis < cols.Start || axis >= cols.End {
		return fmt.Errorf("%w: mirror axis %d outside columns %v",
			ErrInvalidParameter, axis, cols)
	}
	for row := max(rows.Start, 0); row < min(rows.End, g.height); row++ {
		cells := g.Row(row)
		for col := max(cols.Start, 0); col < min(axis, g.width); col++ {
			dst := 2*axis - col
			if dst >= cols.End || dst >= g.width {
				continue
			}
			cells[dst] = cells[col]
		}
	}
	return nil
}

// MirrorTemple is MirrorRegion with the fixed window that repairs the
// temple picture: rows 27-96 mirrored about column 276.
func MirrorTemple(g *Grid) error {
	return MirrorRegion(g, Span{27, 97}, Span{13, 540}, 276)
}

// ShiftRows returns a new grid in which every pixel of row r moves
// shift(r) columns to the right, wrapping around the grid width. Negative
// shifts move left.
func ShiftRows(g *Grid, shift func(row int) int, opts ...Option) *Grid {
	o := newOptions(opts)
	dst := newGrid(g.height, g.width)
	forRows(g.height, o.workers, func(row int) {
		s := mod(shift(row), g.width)
		src := g.Row(row)
		cells := dst.Row(row)
		copy(cells[s:], src[:g.width-s])
		copy(cells[:s], src[g.width-s:])
	})
	return dst
}

// SwapLeftRight returns a new grid with the left and right halves
// exchanged, i.e. every column shifted by width/2 with wraparound.
func SwapLeftRight(g *Grid, opts ...Option) *Grid {
	half := g.width / 2
	return ShiftRows(g, func(int) int { return half }, opts...)
}

// StairStep splits g into steps horizontal bands of height/steps rows and
// shifts band i right by shiftCount*i columns, wrapping around. Rows left
// over below the last full band continue the staircase.
func StairStep(g *Grid, shiftCount, steps int, opts ...Option) (*Grid, error) {
	if steps <= 0 || steps > g.height {
		return nil, fmt.Errorf("%w: %d stair steps for %d rows",
			ErrInvalidParameter, steps, g.height)
	}
	band := g.height / steps
	return ShiftRows(g, func(row int) int {
		return shiftCount * (row / band)
	}, opts...), nil
}

// Liquify shifts rows along a bell curve centered on the middle row: the
// center row moves maxHeight columns to the right and rows further away
// move progressively less.
func Liquify(g *Grid, maxHeight int, opts ...Option) *Grid {
	center := float64(g.height / 2)
	return ShiftRows(g, func(row int) int {
		d := float64(row) - center
		return int(math.Round(float64(maxHeight) *
			math.Exp(-d*d/(2*liquifyBellWidth*liquifyBellWidth))))
	}, opts...)
}

// Wavy shifts every row by amplitude*sin(2*pi*0.011*row), producing a
// sinusoidal ripple. Shifts may be negative.
func Wavy(g *Grid, amplitude int, opts ...Option) *Grid {
	return ShiftRows(g, func(row int) int {
		return int(math.Round(float64(amplitude) *
			math.Sin(2*math.Pi*wavyFrequency*float64(row))))
	}, opts...)
}

// Rotate returns g rotated clockwise by degrees about its center. The
// result is sized to the bounding box of the rotated grid plus a 70 pixel
// margin on the left and right. Each destination pixel takes the nearest
// source pixel under the inverse rotation; destinations that fall outside
// the source are white.
func Rotate(g *Grid, degrees float64, opts ...Option) *Grid {
	o := newOptions(opts)
	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)
	h, w := float64(g.height), float64(g.width)

	// Trim float noise so that multiples of 90 degrees do not grow the box.
	boxW := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - 1e-9))
	boxH := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos) - 1e-9))
	dst := newGrid(boxH, boxW+2*rotateMargin)

	srcCX, srcCY := (w-1)/2, (h-1)/2
	dstCX, dstCY := float64(dst.width-1)/2, float64(dst.height-1)/2

	forRows(dst.height, o.workers, func(row int) {
		cells := dst.Row(row)
		y := float64(row) - dstCY
		for col := range cells {
			x := float64(col) - dstCX
			sx := int(math.Round(x*cos + y*sin + srcCX))
			sy := int(math.Round(-x*sin + y*cos + srcCY))
			if g.InBounds(sy, sx) {
				cells[col] = g.At(sy, sx)
			} else {
				cells[col] = White
			}
		}
	})
	return dst
}

// Scale resamples g to height x width through an 8-bit image using the
// given interpolation. Channels are truncated to bytes first.
func Scale(g *Grid, height, width int, interp imageutil.Interpolation) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: scale to %dx%d", ErrInvalidDimension, height, width)
	}
	src := &imageutil.RGBAImage{RGBA: g.Image()}
	return FromImage(imageutil.Resize(src, width, height, interp).RGBA), nil
}
