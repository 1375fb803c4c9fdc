package picturelab

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/constraints"

	"github.com/wbrown/picturelab/imageutil"
)

// RGB is the color of one grid cell. Channels nominally range from 0 to
// 255, but are stored as ints so that unclamped arithmetic survives until
// the grid is written out.
type RGB struct {
	R, G, B int
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// RGBFromColor converts a color.Color to RGB, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: int(r >> 8), G: int(g >> 8), B: int(b >> 8)}
}

// Clamped returns c with every channel clamped to [0, 255].
func (c RGB) Clamped() RGB {
	return RGB{
		R: clamp(c.R, 0, 255),
		G: clamp(c.G, 0, 255),
		B: clamp(c.B, 0, 255),
	}
}

// Pixel truncates each channel to its low byte, the way an 8-bit raster
// stores an out-of-range value.
func (c RGB) Pixel() imageutil.RGB {
	return imageutil.RGB{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
}

// ToColor converts c to an opaque color.RGBA using byte truncation.
func (c RGB) ToColor() color.RGBA {
	return c.Pixel().ToColor()
}

// String formats c as "(red=R green=G blue=B)".
func (c RGB) String() string {
	return fmt.Sprintf("(red=%d green=%d blue=%d)", c.R, c.G, c.B)
}

// clamp limits v to [lo, hi].
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
