package picturelab

import (
	"fmt"

	"github.com/wbrown/picturelab/imageutil"
)

// captionCoverage is the minimum glyph coverage, out of 255, for a pixel
// to take the caption color.
const captionCoverage = 128

// Caption writes text onto g in place in the Go Regular typeface. The top
// left corner of the text box is placed at (row, col); glyph pixels that
// fall outside the grid are dropped. Pixels outside the glyphs keep their
// values, including any outside [0, 255].
func Caption(g *Grid, text string, row, col int, size float64, c RGB) error {
	if size <= 0 {
		return fmt.Errorf("%w: caption size %v", ErrInvalidParameter, size)
	}
	if text == "" {
		return nil
	}
	mask, err := imageutil.TextMask(text, size)
	if err != nil {
		return err
	}
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A < captionCoverage {
				continue
			}
			r, cl := row+y-b.Min.Y, col+x-b.Min.X
			if g.InBounds(r, cl) {
				g.SetAt(r, cl, c)
			}
		}
	}
	return nil
}
