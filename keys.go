package picturelab

import "math"

// KeyPredicate reports whether a foreground pixel is the chroma key color
// and should therefore be left out of a composite.
type KeyPredicate func(c RGB) bool

// GreenScreen keys out pixels whose green channel reaches red+blue-bias.
// A larger bias keys out more of the background.
func GreenScreen(bias int) KeyPredicate {
	return func(c RGB) bool {
		return c.R+c.B-bias <= c.G
	}
}

// BlueScreen keys out pixels whose blue channel reaches red+green-bias.
func BlueScreen(bias int) KeyPredicate {
	return func(c RGB) bool {
		return c.R+c.G-bias <= c.B
	}
}

// KeyColor keys out pixels within tolerance of key under the distance
// method m. A nil m uses EuclideanMethod.
func KeyColor(key RGB, tolerance float64, m DistanceMethod) KeyPredicate {
	if m == nil {
		m = EuclideanMethod{}
	}
	return func(c RGB) bool {
		return m.Distance(c, key) <= tolerance
	}
}

// KeyHue keys out saturated pixels whose HSV hue lies within tolerance
// degrees of hue. Pixels with saturation below minSaturation are never
// keyed, so grays and whites stay in the foreground.
func KeyHue(hue, tolerance, minSaturation float64) KeyPredicate {
	return func(c RGB) bool {
		h, s, _ := toColorful(c).Hsv()
		if s < minSaturation {
			return false
		}
		d := math.Abs(h - hue)
		d = math.Min(d, 360-d)
		return d <= tolerance
	}
}
