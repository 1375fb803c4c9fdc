package picturelab

import (
	"fmt"
	"slices"
	"sort"

	"github.com/samber/lo"
)

// Palette is a fixed set of colors a grid can be reduced to with
// Posterize. Nearest-color lookups go through a KD-tree over RGB space.
type Palette struct {
	name   string
	colors []RGB
	root   *colorNode
}

// colorNode is a node of the palette KD-tree. Each node splits its subtree
// on the channel with the largest variance.
type colorNode struct {
	color       RGB
	left, right *colorNode
	axis        int
}

// NewPalette builds a palette from colors. Channels are clamped to
// [0, 255] and duplicates are dropped.
func NewPalette(name string, colors []RGB) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: palette %q has no colors", ErrInvalidParameter, name)
	}
	uniq := lo.Uniq(lo.Map(colors, func(c RGB, _ int) RGB {
		return c.Clamped()
	}))
	return &Palette{
		name:   name,
		colors: uniq,
		root:   buildKDTree(slices.Clone(uniq)),
	}, nil
}

// Name returns the palette name.
func (p *Palette) Name() string {
	return p.name
}

// Colors returns a copy of the palette colors.
func (p *Palette) Colors() []RGB {
	return slices.Clone(p.colors)
}

// Len returns the number of distinct colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Nearest returns the palette color closest to c in Euclidean RGB
// distance. c is clamped to [0, 255] first.
func (p *Palette) Nearest(c RGB) RGB {
	c = c.Clamped()
	best, _ := p.root.nearest(c, p.root.color, sqDist(c, p.root.color))
	return best
}

// buildKDTree builds a balanced tree by splitting at the median of the
// widest channel. colors is reordered.
func buildKDTree(colors []RGB) *colorNode {
	if len(colors) == 0 {
		return nil
	}
	axis := splitAxis(colors)
	sort.Slice(colors, func(i, j int) bool {
		return channel(colors[i], axis) < channel(colors[j], axis)
	})

	median := len(colors) / 2
	return &colorNode{
		color: colors[median],
		left:  buildKDTree(colors[:median]),
		right: buildKDTree(colors[median+1:]),
		axis:  axis,
	}
}

// splitAxis returns the channel (0 red, 1 green, 2 blue) with the largest
// variance.
func splitAxis(colors []RGB) int {
	var mean [3]float64
	for _, c := range colors {
		for axis := range mean {
			mean[axis] += float64(channel(c, axis))
		}
	}
	var variance [3]float64
	for axis := range mean {
		mean[axis] /= float64(len(colors))
		for _, c := range colors {
			d := float64(channel(c, axis)) - mean[axis]
			variance[axis] += d * d
		}
	}

	if variance[0] > variance[1] && variance[0] > variance[2] {
		return 0
	} else if variance[1] > variance[2] {
		return 1
	}
	return 2
}

func channel(c RGB, axis int) int {
	switch axis {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

func sqDist(a, b RGB) int {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return dr*dr + dg*dg + db*db
}

// nearest searches the subtree for a color closer to target than best,
// which is bestDist (squared) away.
func (node *colorNode) nearest(target, best RGB, bestDist int) (RGB, int) {
	if node == nil {
		return best, bestDist
	}
	if d := sqDist(target, node.color); d < bestDist {
		best, bestDist = node.color, d
	}

	axisDist := channel(target, node.axis) - channel(node.color, node.axis)
	next, other := node.right, node.left
	if axisDist < 0 {
		next, other = node.left, node.right
	}

	best, bestDist = next.nearest(target, best, bestDist)
	// The splitting plane is closer than the best match so far.
	if axisDist*axisDist < bestDist {
		best, bestDist = other.nearest(target, best, bestDist)
	}
	return best, bestDist
}

// Posterize replaces every pixel with its nearest palette color, in place.
func Posterize(g *Grid, p *Palette, opts ...Option) {
	o := newOptions(opts)
	forRows(g.height, o.workers, func(row int) {
		cells := g.Row(row)
		for col, c := range cells {
			cells[col] = p.Nearest(c)
		}
	})
}

var palettes = map[string]*Palette{}

func registerPalette(name string, colors []RGB) {
	p, err := NewPalette(name, colors)
	if err != nil {
		panic(err)
	}
	palettes[name] = p
}

// LookupPalette returns a built-in palette by name.
func LookupPalette(name string) (*Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// PaletteNames returns the built-in palette names in sorted order.
func PaletteNames() []string {
	names := lo.Keys(palettes)
	slices.Sort(names)
	return names
}

// ansi16Colors are the standard VGA values of the 16 ANSI terminal colors.
var ansi16Colors = []RGB{
	{0, 0, 0},       // BLACK
	{170, 0, 0},     // RED
	{0, 170, 0},     // GREEN
	{170, 85, 0},    // YELLOW
	{0, 0, 170},     // BLUE
	{170, 0, 170},   // MAGENTA
	{0, 170, 170},   // CYAN
	{170, 170, 170}, // WHITE
	{85, 85, 85},    // BRIGHT BLACK
	{255, 85, 85},   // BRIGHT RED
	{85, 255, 85},   // BRIGHT GREEN
	{255, 255, 85},  // BRIGHT YELLOW
	{85, 85, 255},   // BRIGHT BLUE
	{255, 85, 255},  // BRIGHT MAGENTA
	{85, 255, 255},  // BRIGHT CYAN
	{255, 255, 255}, // BRIGHT WHITE
}

// cube returns every combination of the given channel levels.
func cube(levels ...int) []RGB {
	colors := make([]RGB, 0, len(levels)*len(levels)*len(levels))
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				colors = append(colors, RGB{r, g, b})
			}
		}
	}
	return colors
}

// grayRamp returns n grays from start in steps of step.
func grayRamp(start, step, n int) []RGB {
	return lo.Times(n, func(i int) RGB {
		v := start + i*step
		return RGB{v, v, v}
	})
}

func init() {
	registerPalette("ansi16", ansi16Colors)
	// xterm 256: the 16 system colors, a 6x6x6 cube and 24 grays.
	registerPalette("ansi256", slices.Concat(
		ansi16Colors,
		cube(0, 95, 135, 175, 215, 255),
		grayRamp(8, 10, 24)))
	registerPalette("websafe", cube(0, 51, 102, 153, 204, 255))
	registerPalette("gray4", grayRamp(0, 85, 4))
	registerPalette("bw", []RGB{Black, White})
}
