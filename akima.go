package piecewise

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type akimaCoeffs struct {
	b, c, d float64
}

// akimaModel is Akima's cubic: u(x) = u_i + b_i x0 + c_i x0^2 + d_i x0^3.
// The knot slopes b depend on the whole table through the flatness
// threshold, so they are computed once; c and d follow per segment.
type akimaModel struct {
	k      *knots
	m      []float64 // secant slopes, padded by two on each side
	b      []float64
	coeffs paramSource[akimaCoeffs]
}

func newAkima(k *knots, o *options) (model, error) {
	n := k.n()
	m := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		m[i+2] = (k.u[i+1] - k.u[i]) / k.width(i)
	}
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m[n+1] = 2*m[n] - m[n-1]
	m[n+2] = 2*m[n+1] - m[n]

	b := make([]float64, n)
	f1 := make([]float64, n)
	f2 := make([]float64, n)
	f12 := make([]float64, n)
	for i := range b {
		b[i] = (m[i+3] + m[i]) / 2
		f1[i] = math.Abs(m[i+3] - m[i+2])
		f2[i] = math.Abs(m[i+1] - m[i])
		f12[i] = f1[i] + f2[i]
	}
	threshold := 1e-9 * floats.Max(f12)
	for i := range b {
		if f12[i] > threshold {
			b[i] = (f1[i]*m[i+1] + f2[i]*m[i+2]) / f12[i]
		}
	}

	a := &akimaModel{k: k, m: m, b: b}
	a.coeffs = newParamSource(k.segments(), o.cache, a.coeffsOf)
	return a, nil
}

func (a *akimaModel) coeffsOf(i int) akimaCoeffs {
	h := a.k.width(i)
	s := a.m[i+2]
	return akimaCoeffs{
		b: a.b[i],
		c: (3*s - 2*a.b[i] - a.b[i+1]) / h,
		d: (a.b[i] + a.b[i+1] - 2*s) / (h * h),
	}
}

func (a *akimaModel) segment(i int) poly {
	c := a.coeffs.at(i)
	return poly{a.k.u[i], c.b, c.c, c.d}
}

func (a *akimaModel) value(i int, x float64) float64 {
	p := a.segment(i)
	return p.eval(x - a.k.t[i])
}

func (a *akimaModel) slope(i int, x float64) float64 {
	p := a.segment(i)
	return p.deriv(x - a.k.t[i])
}

func (a *akimaModel) curvature(i int, x float64) float64 {
	p := a.segment(i)
	return p.deriv2(x - a.k.t[i])
}

func (a *akimaModel) integrate(i int, lo, hi float64) float64 {
	p := a.segment(i)
	return p.integral(lo-a.k.t[i], hi-a.k.t[i])
}

func (a *akimaModel) parameters() [][]float64 {
	return table(a.coeffs, a.k.segments(), func(c akimaCoeffs) []float64 {
		return []float64{c.b, c.c, c.d}
	})
}
