package piecewise

import (
	"io"
	"log/slog"
)

type options struct {
	down, up Extrapolation
	cache    bool

	du, ddu []float64

	backward     bool
	right        bool
	degree       int
	uniformKnots bool
	arcLength    bool

	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

func defaultOptions() options {
	return options{
		down:   ExtrapolationNone,
		up:     ExtrapolationNone,
		degree: 3,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *options) load(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Extrapolate sets the behaviour below the first knot and above the last.
func Extrapolate(down, up Extrapolation) Option {
	return func(o *options) { o.down, o.up = down, up }
}

// ExtrapolateDown sets the behaviour below the first knot.
func ExtrapolateDown(e Extrapolation) Option {
	return func(o *options) { o.down = e }
}

// ExtrapolateUp sets the behaviour above the last knot.
func ExtrapolateUp(e Extrapolation) Option {
	return func(o *options) { o.up = e }
}

// CacheParameters materializes the segment parameters and the cumulative
// integral table at construction. Without it they are recomputed per call.
func CacheParameters(cache bool) Option {
	return func(o *options) { o.cache = cache }
}

// Derivatives supplies the first derivative samples required by the Hermite
// variants.
func Derivatives(du []float64) Option {
	return func(o *options) { o.du = du }
}

// SecondDerivatives supplies the second derivative samples required by
// QuinticHermite.
func SecondDerivatives(ddu []float64) Option {
	return func(o *options) { o.ddu = ddu }
}

// Backward makes Quadratic use the window ending at a segment's right knot
// instead of the one starting at its left knot.
func Backward() Option {
	return func(o *options) { o.backward = true }
}

// RightContinuous makes Constant hold the value of a segment's right knot.
func RightContinuous() Option {
	return func(o *options) { o.right = true }
}

// Degree sets the BSpline degree. The default is 3.
func Degree(d int) Option {
	return func(o *options) { o.degree = d }
}

// UniformKnots spaces the interior BSpline knots uniformly rather than
// averaging the parameter values.
func UniformKnots() Option {
	return func(o *options) { o.uniformKnots = true }
}

// ArcLength parameterizes a BSpline by chord length instead of uniformly.
func ArcLength() Option {
	return func(o *options) { o.arcLength = true }
}

// WithLogger sets the logger used during construction. By default nothing
// is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
