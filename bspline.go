package piecewise

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// curve is a clamped one-dimensional B-spline over the parameter range
// [0, 1]. A curve of negative degree is identically zero.
type curve struct {
	degree int
	knots  []float64
	ctrl   []float64
}

// findSpan returns s with knots[s] <= p < knots[s+1] for a clamped knot
// vector carrying n control points.
func findSpan(knots []float64, degree, n int, p float64) int {
	if p >= knots[n] {
		return n - 1
	}
	if p <= knots[degree] {
		return degree
	}
	lo, hi := degree, n
	mid := (lo + hi) / 2
	for p < knots[mid] || p >= knots[mid+1] {
		if p < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuncs returns the degree+1 basis functions that are nonzero on span s.
func basisFuncs(knots []float64, degree, s int, p float64) []float64 {
	b := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	b[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = p - knots[s+1-j]
		right[j] = knots[s+j] - p
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := b[r] / (right[r+1] + left[j-r])
			b[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		b[j] = saved
	}
	return b
}

func (c *curve) eval(p float64) float64 {
	if c.degree < 0 {
		return 0
	}
	s := findSpan(c.knots, c.degree, len(c.ctrl), p)
	v := 0.0
	for r, b := range basisFuncs(c.knots, c.degree, s, p) {
		v += b * c.ctrl[s-c.degree+r]
	}
	return v
}

// hodograph returns the derivative curve with respect to p.
func (c *curve) hodograph() *curve {
	if c.degree <= 0 {
		return &curve{degree: -1}
	}
	d := c.degree
	q := make([]float64, len(c.ctrl)-1)
	for j := range q {
		q[j] = float64(d) * (c.ctrl[j+1] - c.ctrl[j]) / (c.knots[j+d+1] - c.knots[j+1])
	}
	return &curve{degree: d - 1, knots: c.knots[1 : len(c.knots)-1], ctrl: q}
}

// bsplineModel is the global interpolating B-spline. Every knot t_i is
// mapped to a parameter p_i and the control points are solved so the curve
// passes through every sample. p is linear in t within a segment.
type bsplineModel struct {
	k  *knots
	p  []float64
	c  *curve
	dc *curve
	d2 *curve
}

func newBSpline(k *knots, o *options) (model, error) {
	d, n := o.degree, k.n()
	if d < 1 {
		return nil, fmt.Errorf("%w: bspline degree %d, want at least 1", ErrConstruction, d)
	}

	p := make([]float64, n)
	if o.arcLength {
		for i := 1; i < n; i++ {
			p[i] = p[i-1] + math.Hypot(k.width(i-1), k.u[i]-k.u[i-1])
		}
		for i := range p {
			p[i] /= p[n-1]
		}
	} else {
		for i := range p {
			p[i] = float64(i) / float64(n-1)
		}
	}
	p[n-1] = 1

	vec := make([]float64, n+d+1)
	for i := n; i < len(vec); i++ {
		vec[i] = 1
	}
	for j := 1; j < n-d; j++ {
		if o.uniformKnots {
			vec[d+j] = float64(j) / float64(n-d)
			continue
		}
		var s float64
		for _, v := range p[j : j+d] {
			s += v
		}
		vec[d+j] = s / float64(d)
	}

	colloc := mat.NewDense(n, n, nil)
	for i, pi := range p {
		s := findSpan(vec, d, n, pi)
		for r, b := range basisFuncs(vec, d, s, pi) {
			colloc.Set(i, s-d+r, b)
		}
	}
	var ctrl mat.VecDense
	err := ctrl.SolveVec(colloc, mat.NewVecDense(n, slices.Clone(k.u)))
	var cond mat.Condition
	switch {
	case errors.As(err, &cond):
		o.logger.Warn("bspline collocation matrix is ill-conditioned", "condition", float64(cond))
	case err != nil:
		return nil, fmt.Errorf("%w: bspline: %v", ErrConstruction, err)
	}

	c := &curve{degree: d, knots: vec, ctrl: make([]float64, n)}
	for i := range c.ctrl {
		c.ctrl[i] = ctrl.AtVec(i)
	}
	dc := c.hodograph()
	return &bsplineModel{k: k, p: p, c: c, dc: dc, d2: dc.hodograph()}, nil
}

// param maps x to the curve parameter and returns dp/dx on segment i.
func (m *bsplineModel) param(i int, x float64) (p, rate float64) {
	rate = (m.p[i+1] - m.p[i]) / m.k.width(i)
	return m.p[i] + (x-m.k.t[i])*rate, rate
}

func (m *bsplineModel) value(i int, x float64) float64 {
	p, _ := m.param(i, x)
	return m.c.eval(p)
}

func (m *bsplineModel) slope(i int, x float64) float64 {
	p, rate := m.param(i, x)
	return m.dc.eval(p) * rate
}

func (m *bsplineModel) curvature(i int, x float64) float64 {
	p, rate := m.param(i, x)
	return m.d2.eval(p) * rate * rate
}

func (m *bsplineModel) parameters() [][]float64 { return nil }
