package piecewise

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// knots is the immutable table the interpolation is built on. The slices are
// private copies of the caller's input.
type knots struct {
	t, u    []float64
	du, ddu []float64

	// Mean knot spacing, used as the first guess when locating segments.
	dx float64
}

func newKnots(t, u, du, ddu []float64) (*knots, error) {
	n := len(t)
	switch {
	case n < 2:
		return nil, fmt.Errorf("%w: need at least 2 knots, got %d", ErrConstruction, n)
	case len(u) != n:
		return nil, fmt.Errorf("%w: len(t) = %d but len(u) = %d", ErrConstruction, n, len(u))
	case du != nil && len(du) != n:
		return nil, fmt.Errorf("%w: len(t) = %d but len(du) = %d", ErrConstruction, n, len(du))
	case ddu != nil && len(ddu) != n:
		return nil, fmt.Errorf("%w: len(t) = %d but len(ddu) = %d", ErrConstruction, n, len(ddu))
	}
	for _, s := range [][]float64{t, u, du, ddu} {
		if floats.HasNaN(s) {
			return nil, fmt.Errorf("%w: input contains NaN", ErrConstruction)
		}
	}
	for i := 1; i < n; i++ {
		if !(t[i] > t[i-1]) {
			return nil, fmt.Errorf("%w: knots not strictly increasing at index %d (%g after %g)",
				ErrConstruction, i, t[i], t[i-1])
		}
	}
	if math.IsInf(t[0], 0) || math.IsInf(t[n-1], 0) {
		return nil, fmt.Errorf("%w: knots must be finite", ErrConstruction)
	}

	return &knots{
		t:   slices.Clone(t),
		u:   slices.Clone(u),
		du:  slices.Clone(du),
		ddu: slices.Clone(ddu),
		dx:  (t[n-1] - t[0]) / float64(n-1),
	}, nil
}

func (k *knots) n() int { return len(k.t) }

// segments is the number of segments, n-1.
func (k *knots) segments() int { return len(k.t) - 1 }

// width returns the width of segment i.
func (k *knots) width(i int) float64 { return k.t[i+1] - k.t[i] }

func (k *knots) first() float64 { return k.t[0] }
func (k *knots) last() float64  { return k.t[len(k.t)-1] }
