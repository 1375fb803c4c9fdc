// Package view shows grids on a terminal, either as a truecolor ANSI dump
// or in an interactive pan-and-scroll explorer.
package view

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wbrown/picturelab"
	"github.com/wbrown/picturelab/imageutil"
)

const (
	// ESC is the escape character that starts an ANSI control sequence.
	ESC = "\u001b"

	// upperHalfBlock paints the top half of a cell in the foreground color
	// and the bottom half in the background color.
	upperHalfBlock = "▀"
)

// halfCell is one terminal cell: the colors of two stacked pixels. bottom
// is nil on the last line of a grid with an odd height.
type halfCell struct {
	top    imageutil.RGB
	bottom *imageutil.RGB
}

// code returns the SGR sequence that selects the cell's colors.
func (c halfCell) code() string {
	fg := fmt.Sprintf("38;2;%d;%d;%d", c.top.R, c.top.G, c.top.B)
	if c.bottom == nil {
		return fmt.Sprintf("%s[%s;49m", ESC, fg)
	}
	return fmt.Sprintf("%s[%s;48;2;%d;%d;%dm", ESC, fg, c.bottom.R, c.bottom.G, c.bottom.B)
}

// WriteANSI renders g as truecolor half blocks, two pixel rows per line.
// If width is positive and g is wider, g is first scaled down to width
// columns keeping its aspect ratio. Channels are truncated to bytes the
// same way Save does. A color sequence is only written when the colors
// change, and every line ends with a reset.
func WriteANSI(w io.Writer, g *picturelab.Grid, width int) error {
	if width > 0 && g.Width() > width {
		height := max(1, g.Height()*width/g.Width())
		scaled, err := picturelab.Scale(g, height, width, imageutil.InterpolationArea)
		if err != nil {
			return err
		}
		g = scaled
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < g.Height(); row += 2 {
		var current string
		for col := 0; col < g.Width(); col++ {
			cell := halfCell{top: g.At(row, col).Pixel()}
			if row+1 < g.Height() {
				bottom := g.At(row+1, col).Pixel()
				cell.bottom = &bottom
			}
			if code := cell.code(); code != current {
				bw.WriteString(code)
				current = code
			}
			bw.WriteString(upperHalfBlock)
		}
		// Reset colors at the end of each line
		bw.WriteString(ESC + "[0m\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ANSI image: %w", err)
	}
	return nil
}
