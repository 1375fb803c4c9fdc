package imageutil

import (
	"fmt"
	"image"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// textDPI is the resolution text sizes are interpreted at; at 72 DPI one
// point is one pixel.
const textDPI = 72

var loadTextFont = sync.OnceValues(func() (*truetype.Font, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
})

// TextMask renders text in the Go Regular typeface at size pixels and
// returns the glyph coverage. The mask is exactly as wide as the advance
// of the text and as tall as the font's ascent plus descent, with the
// baseline at the ascent.
func TextMask(text string, size float64) (*image.Alpha, error) {
	ttf, err := loadTextFont()
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     textDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, max(width, 1), max(height, 1)))

	ctx := freetype.NewContext()
	ctx.SetDPI(textDPI)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(mask.Bounds())
	ctx.SetDst(mask)
	ctx.SetSrc(image.Opaque)

	if _, err := ctx.DrawString(text, freetype.Pt(0, metrics.Ascent.Ceil())); err != nil {
		return nil, fmt.Errorf("failed to draw text: %w", err)
	}
	return mask, nil
}
