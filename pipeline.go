package picturelab

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// Pipeline applies a chain of filters to a grid, in order.
type Pipeline struct {
	filters []Filter
	logger  *slog.Logger
}

// NewPipeline creates a pipeline from already constructed filters. Only
// WithLogger affects the pipeline itself.
func NewPipeline(filters []Filter, opts ...Option) *Pipeline {
	o := newOptions(opts)
	return &Pipeline{
		filters: filters,
		logger:  o.logger,
	}
}

// ParsePipeline parses every spec with ParseFilter and chains the results.
// The options are handed to each filter as well as to the pipeline.
func ParsePipeline(specs []string, opts ...Option) (*Pipeline, error) {
	filters := make([]Filter, 0, len(specs))
	for i, spec := range specs {
		f, err := ParseFilter(spec, opts...)
		if err != nil {
			return nil, fmt.Errorf("filter #%d: %w", i, err)
		}
		filters = append(filters, f)
	}
	return NewPipeline(filters, opts...), nil
}

// Len returns the number of filters.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Names returns the canonical spec of each filter.
func (p *Pipeline) Names() []string {
	return lo.Map(p.filters, func(f Filter, _ int) string {
		return f.Name()
	})
}

// Run applies the filters to a copy of g and returns the result. g itself
// is never modified. An empty pipeline returns the copy.
func (p *Pipeline) Run(g *Grid) (*Grid, error) {
	out := g.Copy()
	for i, f := range p.filters {
		start := time.Now()
		p.logger.Debug("applying filter", "step", i, "filter", f.Name())

		next, err := f.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("filter #%d (%s): %w", i, f.Name(), err)
		}
		out = next

		p.logger.Debug("filter done",
			"step", i,
			"filter", f.Name(),
			"grid", out.String(),
			"elapsed", time.Since(start))
	}
	return out, nil
}
