package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/wbrown/picturelab"
)

// Explorer shows a grid on a tcell screen, two pixel rows per cell, with
// a status line at the bottom. The viewport is panned with the arrow keys
// or hjkl.
type Explorer struct {
	screen tcell.Screen
	grid   *picturelab.Grid
	title  string

	// row is the first pixel row shown and is always even; col is the
	// first pixel column.
	row, col int
}

// NewExplorer creates an explorer for g on an initialized screen.
func NewExplorer(screen tcell.Screen, g *picturelab.Grid, title string) *Explorer {
	return &Explorer{screen: screen, grid: g, title: title}
}

// Offset returns the pixel row and column at the top-left of the viewport.
func (e *Explorer) Offset() (row, col int) {
	return e.row, e.col
}

// viewport returns the number of pixel rows and columns that fit above
// the status line.
func (e *Explorer) viewport() (rows, cols int) {
	w, h := e.screen.Size()
	return 2 * max(h-1, 0), w
}

// Pan moves the viewport by dRow pixel rows and dCol pixel columns,
// keeping it inside the grid. Rows move in steps of two.
func (e *Explorer) Pan(dRow, dCol int) {
	rows, cols := e.viewport()
	maxRow := max(e.grid.Height()-rows, 0)
	maxRow += maxRow % 2
	maxCol := max(e.grid.Width()-cols, 0)

	e.row = min(max(e.row+dRow, 0), maxRow)
	e.row -= e.row % 2
	e.col = min(max(e.col+dCol, 0), maxCol)
}

// Draw renders the viewport and the status line and shows the screen.
func (e *Explorer) Draw() {
	e.screen.Clear()
	rows, cols := e.viewport()
	for y := 0; y < rows/2; y++ {
		top := e.row + 2*y
		if top >= e.grid.Height() {
			break
		}
		for x := 0; x < cols && e.col+x < e.grid.Width(); x++ {
			style := tcell.StyleDefault.Foreground(cellColor(e.grid.At(top, e.col+x)))
			if top+1 < e.grid.Height() {
				style = style.Background(cellColor(e.grid.At(top+1, e.col+x)))
			}
			e.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	_, h := e.screen.Size()
	status := fmt.Sprintf(" %s  %dx%d  row %d col %d  [arrows/hjkl pan, q quit]",
		e.title, e.grid.Width(), e.grid.Height(), e.row, e.col)
	statusStyle := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(status) {
		if x >= cols {
			break
		}
		e.screen.SetContent(x, h-1, r, nil, statusStyle)
	}
	e.screen.Show()
}

// HandleEvent applies one input event and reports whether the explorer
// should quit.
func (e *Explorer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		rows, cols := e.viewport()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			e.Pan(-2, 0)
		case tcell.KeyDown:
			e.Pan(2, 0)
		case tcell.KeyLeft:
			e.Pan(0, -1)
		case tcell.KeyRight:
			e.Pan(0, 1)
		case tcell.KeyPgUp:
			e.Pan(-rows, 0)
		case tcell.KeyPgDn:
			e.Pan(rows, 0)
		case tcell.KeyHome:
			e.row, e.col = 0, 0
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'k':
				e.Pan(-2, 0)
			case 'j':
				e.Pan(2, 0)
			case 'h':
				e.Pan(0, -1)
			case 'l':
				e.Pan(0, 1)
			case 'H':
				e.Pan(0, -cols)
			case 'L':
				e.Pan(0, cols)
			}
		}
	case *tcell.EventResize:
		e.Pan(0, 0)
		e.screen.Sync()
	}
	return false
}

// Run draws and handles events until the user quits or the screen is
// finalized.
func (e *Explorer) Run() {
	for {
		e.Draw()
		ev := e.screen.PollEvent()
		if ev == nil || e.HandleEvent(ev) {
			return
		}
	}
}

// Explore opens the terminal, runs an Explorer for g and restores the
// terminal when the user quits.
func Explore(g *picturelab.Grid, title string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	NewExplorer(screen, g, title).Run()
	return nil
}

// cellColor converts a grid color to a terminal color, truncating channels
// to bytes as Save does.
func cellColor(c picturelab.RGB) tcell.Color {
	p := c.Pixel()
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}
