package piecewise

import (
	"fmt"
	"math"
)

// Integral returns the integral from the first knot to x.
func (f *Interpolation) Integral(x float64) (float64, error) {
	return f.IntegralRange(f.k.first(), x)
}

// IntegralRange returns the exact integral over [t1, t2]. Reversed bounds
// give the negated integral. Parts outside the knot range are integrated
// according to the extrapolation on that side.
func (f *Interpolation) IntegralRange(t1, t2 float64) (float64, error) {
	im, ok := f.m.(integrableModel)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrIntegralNotFound, f.variant)
	}

	switch {
	case math.IsNaN(t1) || math.IsNaN(t2):
		return math.NaN(), nil
	case t1 == t2:
		return 0, nil
	case t1 > t2:
		v, err := f.IntegralRange(t2, t1)
		return -v, err
	}

	k := f.k
	lo, hi := k.first(), k.last()
	var sum float64

	if t1 < lo {
		if t2 <= lo {
			return f.tailIntegral(im, f.lower(), t1, t2)
		}
		v, err := f.tailIntegral(im, f.lower(), t1, lo)
		if err != nil {
			return 0, err
		}
		sum, t1 = v, lo
	}
	if t2 > hi {
		if t1 >= hi {
			return f.tailIntegral(im, f.upper(), t1, t2)
		}
		v, err := f.tailIntegral(im, f.upper(), hi, t2)
		if err != nil {
			return 0, err
		}
		sum, t2 = sum+v, hi
	}

	// t1 is in the segment starting at or before it, t2 in the segment
	// ending at or after it.
	i1 := k.locate(t1, 0, sideLast)
	i2 := k.locate(t2, -1, sideFirst)
	if i1 == i2 {
		return sum + im.integrate(i1, t1, t2), nil
	}

	sum += im.integrate(i1, t1, k.t[i1+1])
	sum += f.complete(im, i1+1, i2-1)
	sum += im.integrate(i2, k.t[i2], t2)
	return sum, nil
}

// complete sums the integrals of the whole segments from through to.
func (f *Interpolation) complete(im integrableModel, from, to int) float64 {
	switch {
	case from > to:
		return 0
	case f.cumulative != nil:
		if from == 0 {
			return f.cumulative[to]
		}
		return f.cumulative[to] - f.cumulative[from-1]
	}

	var sum float64
	for i := from; i <= to; i++ {
		sum += im.integrate(i, f.k.t[i], f.k.t[i+1])
	}
	return sum
}
