package imageutil

import "math"

// fillImage creates a width x height image colored by fn(x, y).
func fillImage(width, height int, fn func(x, y int) RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, fn(x, y))
		}
	}
	return img
}

// CreateGradientImage creates a horizontal gray ramp from black on the
// left to white on the right.
func CreateGradientImage(width, height int) *RGBAImage {
	return fillImage(width, height, func(x, _ int) RGB {
		v := uint8(255 * x / max(width-1, 1))
		return RGB{v, v, v}
	})
}

// CreateCheckerboardImage creates a black and white checkerboard whose
// top-left square is white.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	return fillImage(width, height, func(x, y int) RGB {
		if ((x/squareSize)+(y/squareSize))%2 == 0 {
			return RGB{255, 255, 255}
		}
		return RGB{0, 0, 0}
	})
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	return fillImage(width, height, func(int, int) RGB { return c })
}

// colorBars are the vertical stripes of CreateColorBarsImage, left to right.
var colorBars = []RGB{
	{255, 255, 255}, // White
	{255, 255, 0},   // Yellow
	{0, 255, 255},   // Cyan
	{0, 255, 0},     // Green
	{255, 0, 255},   // Magenta
	{255, 0, 0},     // Red
	{0, 0, 255},     // Blue
	{0, 0, 0},       // Black
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *RGBAImage {
	barWidth := max(width/len(colorBars), 1)
	return fillImage(width, height, func(x, _ int) RGB {
		return colorBars[min(x/barWidth, len(colorBars)-1)]
	})
}

// CalculateMSE calculates the Mean Squared Error between two RGBA images
// over the three color channels. Images of different sizes compare as
// math.MaxFloat64.
func CalculateMSE(img1, img2 *RGBAImage) float64 {
	if img1.Bounds().Size() != img2.Bounds().Size() {
		return math.MaxFloat64
	}

	width, height := img1.Width(), img1.Height()
	var sumSq float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1, c2 := img1.GetRGB(x, y), img2.GetRGB(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}
	return sumSq / float64(width*height*3)
}

// CalculateMaxDiff returns the largest single-channel difference between
// two images, or 256 if their sizes differ.
func CalculateMaxDiff(img1, img2 *RGBAImage) int {
	if img1.Bounds().Size() != img2.Bounds().Size() {
		return 256
	}

	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			c1, c2 := img1.GetRGB(x, y), img2.GetRGB(x, y)
			maxDiff = max(maxDiff,
				absDiff(c1.R, c2.R), absDiff(c1.G, c2.G), absDiff(c1.B, c2.B))
		}
	}
	return maxDiff
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
