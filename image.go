package picturelab

import (
	"image"

	"github.com/wbrown/picturelab/imageutil"
)

// FromImage copies any image.Image into a new grid. The image's top-left
// corner becomes (0, 0) and alpha is dropped.
func FromImage(img image.Image) *Grid {
	rgba := imageutil.RGBAImageFromImage(img)
	g := newGrid(rgba.Height(), rgba.Width())
	for row := 0; row < g.height; row++ {
		cells := g.Row(row)
		for col := range cells {
			p := rgba.GetRGB(col, row)
			cells[col] = RGB{int(p.R), int(p.G), int(p.B)}
		}
	}
	return g
}

// Image converts g to an opaque 8-bit image. Each channel is truncated to
// its low byte, so 280 becomes 24 and -5 becomes 251.
func (g *Grid) Image() *image.RGBA {
	return g.toRGBA(RGB.Pixel)
}

// ClampedImage converts g to an opaque 8-bit image, saturating channels
// outside [0, 255] instead of truncating them.
func (g *Grid) ClampedImage() *image.RGBA {
	return g.toRGBA(func(c RGB) imageutil.RGB {
		return c.Clamped().Pixel()
	})
}

func (g *Grid) toRGBA(convert func(RGB) imageutil.RGB) *image.RGBA {
	img := imageutil.NewRGBAImage(g.width, g.height)
	for row := 0; row < g.height; row++ {
		for col, c := range g.Row(row) {
			img.SetRGB(col, row, convert(c))
		}
	}
	return img.RGBA
}

// Load decodes an image file into a grid.
func Load(path string) (*Grid, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img.RGBA), nil
}

// Save encodes g to path, choosing the format from the file extension.
// Channels are truncated to bytes as by Image.
func Save(g *Grid, path string) error {
	return imageutil.SaveImage(g.Image(), path)
}
