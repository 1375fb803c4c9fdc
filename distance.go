package picturelab

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DistanceMethod measures how far apart two colors are.
type DistanceMethod interface {
	Distance(a, b RGB) float64
}

// EuclideanMethod is the straight-line distance in RGB space.
type EuclideanMethod struct{}

func (EuclideanMethod) Distance(a, b RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// RedmeanMethod weights the RGB channels by the mean red level, a cheap
// approximation of perceived difference. Values are on the same scale as
// EuclideanMethod.
type RedmeanMethod struct{}

func (RedmeanMethod) Distance(a, b RGB) float64 {
	rmean := float64(a.R+b.R) / 2
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt((2+rmean/256)*dr*dr + 4*dg*dg + (2+(255-rmean)/256)*db*db)
}

// LabMethod is the CIE76 delta E between the colors in L*a*b* space,
// scaled so that 1.0 is roughly a just-noticeable difference. Channels are
// clamped to [0, 255] before conversion.
type LabMethod struct{}

func (LabMethod) Distance(a, b RGB) float64 {
	return toColorful(a).DistanceLab(toColorful(b)) * 100
}

func toColorful(c RGB) colorful.Color {
	c = c.Clamped()
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
