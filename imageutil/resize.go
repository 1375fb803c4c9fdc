package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, which holds up well for both
	// downscaling and upscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest, and the only method that introduces no new colors.
	InterpolationNearest
)

// Scaler returns the x/image/draw scaler for interp.
func (interp Interpolation) Scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	interp.Scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// Fit resizes img to the largest size that fits in maxWidth x maxHeight
// while keeping its aspect ratio. Each side is at least one pixel.
func Fit(img *RGBAImage, maxWidth, maxHeight int, interp Interpolation) *RGBAImage {
	w, h := fitSize(img.Bounds(), maxWidth, maxHeight)
	return Resize(img, w, h, interp)
}

func fitSize(b image.Rectangle, maxWidth, maxHeight int) (int, int) {
	w, h := b.Dx(), b.Dy()
	if w*maxHeight > h*maxWidth {
		h = h * maxWidth / w
		w = maxWidth
	} else {
		w = w * maxHeight / h
		h = maxHeight
	}
	return max(w, 1), max(h, 1)
}
