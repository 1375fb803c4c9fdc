package imageutil

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

const (
	sheetPadding     = 8
	sheetLabelHeight = 18
)

// SheetEntry is one labelled cell of a contact sheet.
type SheetEntry struct {
	Label string
	Image image.Image
}

// ContactSheet lays entries out left to right, top to bottom, in columns
// cells of cellSize x cellSize pixels. Each image is scaled to fit its
// cell, centered, framed, and captioned with its label.
func ContactSheet(entries []SheetEntry, cellSize, columns int) (image.Image, error) {
	if len(entries) == 0 {
		return nil, errors.New("contact sheet needs at least one entry")
	}
	if cellSize <= 0 || columns <= 0 {
		return nil, fmt.Errorf("invalid contact sheet layout: cell %d, columns %d", cellSize, columns)
	}
	columns = min(columns, len(entries))
	rows := (len(entries) + columns - 1) / columns
	pitchX := cellSize + sheetPadding
	pitchY := cellSize + sheetLabelHeight + sheetPadding

	dc := gg.NewContext(columns*pitchX+sheetPadding, rows*pitchY+sheetPadding)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(1)

	for i, e := range entries {
		x0 := sheetPadding + (i%columns)*pitchX
		y0 := sheetPadding + (i/columns)*pitchY

		thumb := Fit(RGBAImageFromImage(e.Image), cellSize, cellSize, InterpolationArea)
		dc.DrawImage(thumb.RGBA,
			x0+(cellSize-thumb.Width())/2,
			y0+(cellSize-thumb.Height())/2)

		dc.SetRGB(0.6, 0.6, 0.6)
		dc.DrawRectangle(float64(x0)+0.5, float64(y0)+0.5, float64(cellSize-1), float64(cellSize-1))
		dc.Stroke()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.Label,
			float64(x0)+float64(cellSize)/2,
			float64(y0+cellSize)+sheetLabelHeight/2,
			0.5, 0.5)
	}
	return dc.Image(), nil
}
