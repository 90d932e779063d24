package piecewise

import (
	"fmt"
	"math"
	"slices"
)

// Interpolation is a piecewise function reconstructed from samples. It is
// immutable once New returns and safe for concurrent use.
type Interpolation struct {
	variant  Variant
	k        *knots
	m        model
	down, up Extrapolation
	cache    bool

	// cumulative[k] is the integral from the first knot to t[k+1]. It is
	// only set when parameters are cached and the variant is integrable.
	cumulative []float64

	// The construction options, kept for Dump.
	o options
}

// New builds an interpolation of variant v through the samples (t[i], u[i]).
// t must be strictly increasing. Invalid input is reported as
// ErrConstruction.
func New(v Variant, t, u []float64, opts ...Option) (*Interpolation, error) {
	spec, ok := v.spec()
	if !ok {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrConstruction, int(v))
	}
	o := defaultOptions()
	o.load(opts)

	switch {
	case spec.needsDu && o.du == nil:
		return nil, fmt.Errorf("%w: %s needs first derivatives", ErrConstruction, v)
	case spec.needsDdu && o.ddu == nil:
		return nil, fmt.Errorf("%w: %s needs second derivatives", ErrConstruction, v)
	case !o.down.valid() || !o.up.valid():
		return nil, fmt.Errorf("%w: unknown extrapolation (%d, %d)", ErrConstruction, int(o.down), int(o.up))
	}

	k, err := newKnots(t, u, o.du, o.ddu)
	if err != nil {
		return nil, err
	}
	if need := spec.minPoints(&o); k.n() < need {
		return nil, fmt.Errorf("%w: %s needs at least %d knots, got %d", ErrConstruction, v, need, k.n())
	}

	switch v {
	case Constant:
		// A constant segment extended is the held value.
		if o.down == ExtrapolationExtension {
			o.down = ExtrapolationConstant
		}
		if o.up == ExtrapolationExtension {
			o.up = ExtrapolationConstant
		}
	case BSpline:
		if o.down == ExtrapolationExtension || o.up == ExtrapolationExtension {
			return nil, fmt.Errorf("%w: %s cannot be extended past its knots", ErrConstruction, v)
		}
	}

	m, err := spec.build(k, &o)
	if err != nil {
		return nil, err
	}

	f := &Interpolation{
		variant: v,
		k:       k,
		m:       m,
		down:    o.down,
		up:      o.up,
		cache:   o.cache,
		o:       o,
	}
	if im, ok := m.(integrableModel); ok && o.cache {
		f.cumulative = make([]float64, k.segments())
		var sum float64
		for i := range f.cumulative {
			sum += im.integrate(i, k.t[i], k.t[i+1])
			f.cumulative[i] = sum
		}
	}

	o.logger.Debug("interpolation built",
		"variant", v, "knots", k.n(), "cached", o.cache,
		"down", o.down, "up", o.up)
	return f, nil
}

// Value evaluates the interpolation at x.
func (f *Interpolation) Value(x float64) (float64, error) {
	return f.Derivative(x, 0)
}

// EvalAll evaluates the interpolation at every point of xs. The result is
// written to out[0] if it is given and returned.
func (f *Interpolation) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	if len(out[0]) < len(xs) {
		return nil, fmt.Errorf("piecewise: output has length %d, want %d", len(out[0]), len(xs))
	}

	for i, x := range xs {
		v, err := f.Value(x)
		if err != nil {
			return nil, err
		}
		out[0][i] = v
	}
	return out[0], nil
}

// Derivative returns the order-th derivative at x. Order 0 is the value.
// Orders 1 and 2 are analytic; Lagrange has no second derivative.
func (f *Interpolation) Derivative(x float64, order int) (float64, error) {
	if order < 0 || order > 2 {
		return 0, fmt.Errorf("%w: order %d", ErrDerivativeNotAvailable, order)
	}
	if _, ok := f.m.(curvatureModel); order == 2 && !ok {
		return 0, fmt.Errorf("%w: order 2 for %s", ErrDerivativeNotAvailable, f.variant)
	}

	switch {
	case math.IsNaN(x):
		return math.NaN(), nil
	case x < f.k.first():
		return f.extrapolate(f.lower(), x, order)
	case x > f.k.last():
		return f.extrapolate(f.upper(), x, order)
	}
	return f.eval(f.k.segment(x), x, order)
}

// eval dispatches to the order-th derivative of segment i's expression.
func (f *Interpolation) eval(i int, x float64, order int) (float64, error) {
	switch order {
	case 0:
		return f.m.value(i, x), nil
	case 1:
		return f.m.slope(i, x), nil
	}
	cm, ok := f.m.(curvatureModel)
	if !ok {
		return 0, fmt.Errorf("%w: order %d for %s", ErrDerivativeNotAvailable, order, f.variant)
	}
	return cm.curvature(i, x), nil
}

// Variant returns the variant the interpolation was built with.
func (f *Interpolation) Variant() Variant { return f.variant }

// Knots returns a copy of the knot abscissas.
func (f *Interpolation) Knots() []float64 { return slices.Clone(f.k.t) }

// Samples returns a copy of the sample values.
func (f *Interpolation) Samples() []float64 { return slices.Clone(f.k.u) }

// Domain returns the first and last knot.
func (f *Interpolation) Domain() (lo, hi float64) { return f.k.first(), f.k.last() }

// Extrapolation returns the lower and upper extrapolation in effect.
func (f *Interpolation) Extrapolation() (down, up Extrapolation) { return f.down, f.up }

// Parameters returns the per-segment parameter tuples, one row per segment
// (one per window for Quadratic). Variants without a fixed tuple return nil.
func (f *Interpolation) Parameters() [][]float64 { return f.m.parameters() }

// CumulativeIntegral returns a copy of the prefix sums of the segment
// integrals, or nil if they were not cached.
func (f *Interpolation) CumulativeIntegral() []float64 { return slices.Clone(f.cumulative) }

func (f *Interpolation) String() string {
	s := "\nPiecewise interpolation:\n"
	s = fmt.Sprintf("%s\tvariant: %v; cached: %v\n", s, f.variant, f.cache)
	s = fmt.Sprintf("%s\tdown: %v; up: %v\n", s, f.down, f.up)
	s = fmt.Sprintf("%s\tt: %v\n", s, f.k.t)
	s = fmt.Sprintf("%s\tu: %v\n", s, f.k.u)
	return s
}
