package picturelab

import (
	"io"
	"log/slog"
)

// Option configures a transform or a Pipeline.
type Option func(*options)

type options struct {
	workers  int
	distance DistanceMethod
	logger   *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		workers:  1,
		distance: EuclideanMethod{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers splits row-independent transforms across n goroutines.
// Values below 2 run sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithDistance sets the color distance used by edge detection and
// distance-based key predicates. The default is EuclideanMethod.
func WithDistance(m DistanceMethod) Option {
	return func(o *options) {
		if m != nil {
			o.distance = m
		}
	}
}

// WithLogger sets the logger a Pipeline reports its steps to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// apply hands a resolved option set on to another transform.
func (o options) apply(dst *options) {
	*dst = o
}
