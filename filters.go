package picturelab

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/wbrown/picturelab/imageutil"
)

// Filter is one named step of a Pipeline. Apply may modify g in place and
// return it, or return a new grid.
type Filter interface {
	// Name returns the canonical filter spec, e.g. "blur:size=5".
	Name() string
	// Apply runs the filter on g.
	Apply(g *Grid) (*Grid, error)
}

// Params holds the key=value options of a filter spec.
type Params map[string]string

// Int returns the integer option key, or def if it is not set. Decimal,
// hex (0x) and octal (0o) notations are accepted.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an int", ErrInvalidParameter, key, v)
	}
	return int(n), nil
}

// Float returns the floating point option key, or def if it is not set.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidParameter, key, v)
	}
	return f, nil
}

// String returns the option key, or def if it is not set.
func (p Params) String(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Color returns the option key parsed as a #rrggbb hex color, or def if it
// is not set.
func (p Params) Color(key string, def RGB) (RGB, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %s=%q is not a hex color", ErrInvalidParameter, key, p[key])
	}
	r, g, b := c.RGB255()
	return RGB{int(r), int(g), int(b)}, nil
}

// Distance returns the option key parsed as a distance method name
// (euclidean, redmean or lab), or def if it is not set.
func (p Params) Distance(key string, def DistanceMethod) (DistanceMethod, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch strings.ToLower(v) {
	case "euclidean", "rgb":
		return EuclideanMethod{}, nil
	case "redmean":
		return RedmeanMethod{}, nil
	case "lab":
		return LabMethod{}, nil
	}
	return nil, fmt.Errorf("%w: %s=%q is not a distance method", ErrInvalidParameter, key, v)
}

// Interpolation returns the option key parsed as an interpolation name
// (area, linear or nearest), or def if it is not set.
func (p Params) Interpolation(key string, def imageutil.Interpolation) (imageutil.Interpolation, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch strings.ToLower(v) {
	case "area":
		return imageutil.InterpolationArea, nil
	case "linear":
		return imageutil.InterpolationLinear, nil
	case "nearest":
		return imageutil.InterpolationNearest, nil
	}
	return 0, fmt.Errorf("%w: %s=%q is not an interpolation", ErrInvalidParameter, key, v)
}

// spec formats name and p as a canonical filter spec with sorted keys.
func (p Params) spec(name string) string {
	if len(p) == 0 {
		return name
	}
	keys := lo.Keys(p)
	slices.Sort(keys)
	return name + ":" + strings.Join(lo.Map(keys, func(k string, _ int) string {
		return k + "=" + p[k]
	}), ",")
}

type filterType struct {
	name   string
	usage  string
	params []string
	create func(p Params, o options) (func(*Grid) (*Grid, error), error)
}

var filterTypes = make(map[string]filterType)

// registerFilter makes a filter available to ParseFilter. params lists the
// option keys the filter accepts.
func registerFilter(name, usage string, params []string, create func(p Params, o options) (func(*Grid) (*Grid, error), error)) {
	filterTypes[name] = filterType{name: name, usage: usage, params: params, create: create}
}

// registerInPlace registers a parameterless filter that mutates the grid.
func registerInPlace(name, usage string, fn func(*Grid)) {
	registerFilter(name, usage, nil, func(Params, options) (func(*Grid) (*Grid, error), error) {
		return func(g *Grid) (*Grid, error) {
			fn(g)
			return g, nil
		}, nil
	})
}

type funcFilter struct {
	name  string
	apply func(*Grid) (*Grid, error)
}

func (f funcFilter) Name() string {
	return f.name
}

func (f funcFilter) Apply(g *Grid) (*Grid, error) {
	return f.apply(g)
}

// ParseFilter builds a filter from a spec of the form
// "name[:key=value[,key=value...]]", for example "blur:size=5". Options
// such as WithWorkers are passed to the underlying transform.
func ParseFilter(spec string, opts ...Option) (Filter, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.ToLower(name)
	ft, ok := filterTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}

	params := make(Params)
	if rest != "" {
		for _, kv := range strings.Split(rest, ",") {
			k, v, ok := strings.Cut(kv, "=")
			k = strings.ToLower(strings.TrimSpace(k))
			if !ok || k == "" {
				return nil, fmt.Errorf("%w: malformed option %q in %q", ErrInvalidParameter, kv, spec)
			}
			if !lo.Contains(ft.params, k) {
				return nil, fmt.Errorf("%w: filter %s has no option %q", ErrInvalidParameter, name, k)
			}
			params[k] = strings.TrimSpace(v)
		}
	}

	apply, err := ft.create(params, newOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", name, err)
	}
	return funcFilter{name: params.spec(name), apply: apply}, nil
}

// FilterNames returns the registered filter names in sorted order.
func FilterNames() []string {
	names := lo.Keys(filterTypes)
	slices.Sort(names)
	return names
}

// FilterUsage returns the one-line description and option keys of a
// registered filter.
func FilterUsage(name string) (usage string, params []string, ok bool) {
	ft, ok := filterTypes[name]
	if !ok {
		return "", nil, false
	}
	return ft.usage, slices.Clone(ft.params), true
}

func init() {
	registerInPlace("zeroblue", "set blue to 0", ZeroBlue)
	registerInPlace("keeponlyblue", "set red and green to 0", KeepOnlyBlue)
	registerInPlace("keeponlyred", "set green and blue to 0", KeepOnlyRed)
	registerInPlace("keeponlygreen", "set red and blue to 0", KeepOnlyGreen)
	registerInPlace("negate", "invert every channel", Negate)
	registerInPlace("grayscale", "average the channels", Grayscale)
	registerInPlace("fixunderwater", "saturate blue where it dominates", FixUnderwater)
	registerInPlace("watermark", "brighten a 40px checkerboard", AddWatermark)
	registerInPlace("clamp", "saturate channels to [0, 255]", Clamp)
	registerInPlace("mirror", "swap the left and right halves of each row", MirrorVertical)
	registerInPlace("mirrorlefttoright", "copy the left half onto the right half", MirrorLeftToRight)
	registerInPlace("mirrorhorizontal", "copy the top half onto the bottom half", MirrorHorizontal)
	registerInPlace("mirrordiagonal", "reflect the lower-left triangle about the diagonal", MirrorDiagonal)

	registerFilter("mirrortemple", "repair the temple roof", nil,
		func(Params, options) (func(*Grid) (*Grid, error), error) {
			return func(g *Grid) (*Grid, error) {
				return g, MirrorTemple(g)
			}, nil
		})

	registerFilter("pixelate", "average size x size tiles", []string{"size"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			size, err := p.Int("size", 10)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return Pixelate(g, size, o.apply)
			}, nil
		})

	registerFilter("blur", "box blur with a size window", []string{"size"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			size, err := p.Int("size", 3)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return Blur(g, size, o.apply)
			}, nil
		})

	registerFilter("enhance", "sharpen against a size window", []string{"size"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			size, err := p.Int("size", 3)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return Enhance(g, size, o.apply)
			}, nil
		})

	registerFilter("swap", "exchange the left and right halves", nil,
		func(_ Params, o options) (func(*Grid) (*Grid, error), error) {
			return func(g *Grid) (*Grid, error) {
				return SwapLeftRight(g, o.apply), nil
			}, nil
		})

	registerFilter("stairstep", "shift bands of rows into a staircase", []string{"shift", "steps"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			shift, err := p.Int("shift", 20)
			if err != nil {
				return nil, err
			}
			steps, err := p.Int("steps", 5)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return StairStep(g, shift, steps, o.apply)
			}, nil
		})

	registerFilter("liquify", "bulge the middle rows sideways", []string{"height"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			height, err := p.Int("height", 50)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return Liquify(g, height, o.apply), nil
			}, nil
		})

	registerFilter("wavy", "ripple rows along a sine wave", []string{"amplitude"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			amplitude, err := p.Int("amplitude", 20)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return Wavy(g, amplitude, o.apply), nil
			}, nil
		})

	registerFilter("rotate", "rotate clockwise by degrees", []string{"degrees"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			degrees, err := p.Float("degrees", 90)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return Rotate(g, degrees, o.apply), nil
			}, nil
		})

	registerFilter("edges", "mark horizontal color changes", []string{"threshold", "method"},
		edgeFilter(func(g *Grid, threshold float64, opts ...Option) *Grid {
			EdgeDetectionHorizontal(g, threshold, opts...)
			return g
		}))

	registerFilter("vedges", "mark vertical color changes", []string{"threshold", "method"},
		edgeFilter(EdgeDetectionVertical))

	registerFilter("scale", "resample to width x height", []string{"width", "height", "interp"},
		func(p Params, _ options) (func(*Grid) (*Grid, error), error) {
			width, err := p.Int("width", 0)
			if err != nil {
				return nil, err
			}
			height, err := p.Int("height", 0)
			if err != nil {
				return nil, err
			}
			if width <= 0 && height <= 0 {
				return nil, fmt.Errorf("%w: scale needs width or height", ErrInvalidParameter)
			}
			interp, err := p.Interpolation("interp", imageutil.InterpolationArea)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				w, h := width, height
				// A missing side keeps the aspect ratio.
				if w <= 0 {
					w = max(1, g.width*h/g.height)
				}
				if h <= 0 {
					h = max(1, g.height*w/g.width)
				}
				return Scale(g, h, w, interp)
			}, nil
		})

	registerFilter("posterize", "reduce to the nearest colors of a palette", []string{"palette"},
		func(p Params, o options) (func(*Grid) (*Grid, error), error) {
			name := p.String("palette", "ansi16")
			pal, ok := LookupPalette(name)
			if !ok {
				return nil, fmt.Errorf("%w: unknown palette %q", ErrInvalidParameter, name)
			}
			return func(g *Grid) (*Grid, error) {
				Posterize(g, pal, o.apply)
				return g, nil
			}, nil
		})

	registerFilter("caption", "draw text at row, col", []string{"text", "row", "col", "size", "color"},
		func(p Params, _ options) (func(*Grid) (*Grid, error), error) {
			text := p.String("text", "")
			row, err := p.Int("row", 0)
			if err != nil {
				return nil, err
			}
			col, err := p.Int("col", 0)
			if err != nil {
				return nil, err
			}
			size, err := p.Float("size", 24)
			if err != nil {
				return nil, err
			}
			c, err := p.Color("color", White)
			if err != nil {
				return nil, err
			}
			return func(g *Grid) (*Grid, error) {
				return g, Caption(g, text, row, col, size, c)
			}, nil
		})
}

// edgeFilter adapts an edge detector to the registry, reading the
// threshold and method options.
func edgeFilter(detect func(g *Grid, threshold float64, opts ...Option) *Grid) func(Params, options) (func(*Grid) (*Grid, error), error) {
	return func(p Params, o options) (func(*Grid) (*Grid, error), error) {
		threshold, err := p.Float("threshold", 10)
		if err != nil {
			return nil, err
		}
		method, err := p.Distance("method", o.distance)
		if err != nil {
			return nil, err
		}
		return func(g *Grid) (*Grid, error) {
			return detect(g, threshold, o.apply, WithDistance(method)), nil
		}, nil
	}
}
