package picturelab

// watermarkBlock is the side length of the checkerboard squares used by
// AddWatermark, and watermarkBoost the amount added to each channel.
const (
	watermarkBlock = 40
	watermarkBoost = 25
)

// ZeroBlue sets the blue channel of every pixel to 0.
func ZeroBlue(g *Grid) {
	g.forEach(func(c *RGB) {
		c.B = 0
	})
}

// KeepOnlyBlue sets red and green to 0.
func KeepOnlyBlue(g *Grid) {
	g.forEach(func(c *RGB) {
		c.R, c.G = 0, 0
	})
}

// KeepOnlyRed sets green and blue to 0.
func KeepOnlyRed(g *Grid) {
	g.forEach(func(c *RGB) {
		c.G, c.B = 0, 0
	})
}

// KeepOnlyGreen sets red and blue to 0.
func KeepOnlyGreen(g *Grid) {
	g.forEach(func(c *RGB) {
		c.R, c.B = 0, 0
	})
}

// Negate replaces every channel v with 255-v.
func Negate(g *Grid) {
	g.forEach(func(c *RGB) {
		c.R = 255 - c.R
		c.G = 255 - c.G
		c.B = 255 - c.B
	})
}

// Grayscale sets all three channels to the floor of the mean of the
// pixel's original red, green and blue values.
func Grayscale(g *Grid) {
	g.forEach(func(c *RGB) {
		avg := floorDiv(c.R+c.G+c.B, 3)
		*c = RGB{avg, avg, avg}
	})
}

// FixUnderwater saturates the blue channel of pixels where blue dominates
// both red and green.
func FixUnderwater(g *Grid) {
	g.forEach(func(c *RGB) {
		if c.B > c.G && c.B > c.R {
			c.B = 255
		}
	})
}

// AddWatermark brightens alternating 40x40 squares by 25 per channel. The
// squares whose block row plus block column is even are brightened. The
// result is not clamped.
func AddWatermark(g *Grid) {
	for row := 0; row < g.height; row++ {
		cells := g.Row(row)
		for col := range cells {
			if (row/watermarkBlock+col/watermarkBlock)%2 != 0 {
				continue
			}
			cells[col].R += watermarkBoost
			cells[col].G += watermarkBoost
			cells[col].B += watermarkBoost
		}
	}
}

// Clamp saturates every channel to [0, 255].
func Clamp(g *Grid) {
	g.forEach(func(c *RGB) {
		*c = c.Clamped()
	})
}
