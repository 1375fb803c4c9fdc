package picturelab

import (
	"fmt"
	"math"
)

// ColorKeyComposite draws fg onto bg in place. Every foreground pixel for
// which isKey returns false is written to
//
//	(offsetRow + round(row*scale), offsetCol + round(col*scale))
//
// if that cell lies inside bg. Pixels are visited row by row, so when
// scale < 1 maps several pixels to one cell the last one wins. A nil isKey
// transfers every pixel.
func ColorKeyComposite(bg, fg *Grid, offsetRow, offsetCol int, scale float64, isKey KeyPredicate) error {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: composite scale %v", ErrInvalidParameter, scale)
	}
	for row := 0; row < fg.height; row++ {
		dr := offsetRow + int(math.Round(float64(row)*scale))
		if dr < 0 || dr >= bg.height {
			continue
		}
		src := fg.Row(row)
		dst := bg.Row(dr)
		for col, c := range src {
			if isKey != nil && isKey(c) {
				continue
			}
			dc := offsetCol + int(math.Round(float64(col)*scale))
			if dc < 0 || dc >= bg.width {
				continue
			}
			dst[dc] = c
		}
	}
	return nil
}

// Paste copies src into dst with its top-left corner at (startRow,
// startCol). The part of src that falls outside dst is dropped.
func Paste(dst, src *Grid, startRow, startCol int) {
	// Scale 1 cannot fail.
	_ = ColorKeyComposite(dst, src, startRow, startCol, 1, nil)
}

// Tile places a grid at a position in a Collage.
type Tile struct {
	Grid     *Grid
	Row, Col int
}

// Collage pastes the tiles, in order, onto a new black grid and then
// mirrors the left half onto the right half.
func Collage(height, width int, tiles ...Tile) (*Grid, error) {
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	for i, t := range tiles {
		if t.Grid == nil {
			return nil, fmt.Errorf("%w: collage tile %d has no grid", ErrInvalidParameter, i)
		}
		Paste(g, t.Grid, t.Row, t.Col)
	}
	MirrorLeftToRight(g)
	return g, nil
}
