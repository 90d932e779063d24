package piecewise

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type cubicSplineCoeffs struct {
	c1, c2 float64
}

// cubicSplineModel is the natural cubic spline. z holds the second
// derivative at every knot; on segment i with x1 = x - t_i, x2 = t_{i+1} - x
//
//	u(x) = (z_i x2^3 + z_{i+1} x1^3)/(6h) + c1 x1 + c2 x2.
type cubicSplineModel struct {
	k      *knots
	z      []float64
	coeffs paramSource[cubicSplineCoeffs]
}

func newCubicSpline(k *knots, o *options) (model, error) {
	z, err := naturalSecondDerivatives(k, o)
	if err != nil {
		return nil, err
	}
	m := &cubicSplineModel{k: k, z: z}
	m.coeffs = newParamSource(k.segments(), o.cache, m.coeffsOf)
	return m, nil
}

// naturalSecondDerivatives solves the tridiagonal continuity system with
// zero curvature at both ends.
func naturalSecondDerivatives(k *knots, o *options) ([]float64, error) {
	n := k.n()
	u := k.u
	dl := make([]float64, n-1)
	d := make([]float64, n)
	du := make([]float64, n-1)
	r := make([]float64, n)

	d[0], d[n-1] = 2*k.width(0), 2*k.width(n-2)
	for i := 1; i < n-1; i++ {
		h0, h1 := k.width(i-1), k.width(i)
		dl[i-1] = h0
		d[i] = 2 * (h0 + h1)
		du[i] = h1
		r[i] = 6*(u[i+1]-u[i])/h1 - 6*(u[i]-u[i-1])/h0
	}

	var z mat.VecDense
	err := mat.NewTridiag(n, dl, d, du).SolveVecTo(&z, false, mat.NewVecDense(n, r))
	var cond mat.Condition
	switch {
	case errors.As(err, &cond):
		o.logger.Warn("cubic spline system is ill-conditioned", "condition", float64(cond))
	case err != nil:
		return nil, fmt.Errorf("%w: cubic spline: %v", ErrConstruction, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = z.AtVec(i)
	}
	return out, nil
}

func (m *cubicSplineModel) coeffsOf(i int) cubicSplineCoeffs {
	h := m.k.width(i)
	return cubicSplineCoeffs{
		c1: m.k.u[i+1]/h - m.z[i+1]*h/6,
		c2: m.k.u[i]/h - m.z[i]*h/6,
	}
}

func (m *cubicSplineModel) offsets(i int, x float64) (x1, x2, h float64) {
	return x - m.k.t[i], m.k.t[i+1] - x, m.k.width(i)
}

func (m *cubicSplineModel) value(i int, x float64) float64 {
	x1, x2, h := m.offsets(i, x)
	c := m.coeffs.at(i)
	return (m.z[i]*x2*x2*x2+m.z[i+1]*x1*x1*x1)/(6*h) + c.c1*x1 + c.c2*x2
}

func (m *cubicSplineModel) slope(i int, x float64) float64 {
	x1, x2, h := m.offsets(i, x)
	c := m.coeffs.at(i)
	return (m.z[i+1]*x1*x1-m.z[i]*x2*x2)/(2*h) + c.c1 - c.c2
}

func (m *cubicSplineModel) curvature(i int, x float64) float64 {
	x1, x2, h := m.offsets(i, x)
	return (m.z[i]*x2 + m.z[i+1]*x1) / h
}

func (m *cubicSplineModel) integrate(i int, a, b float64) float64 {
	c := m.coeffs.at(i)
	f := func(x float64) float64 {
		x1, x2, h := m.offsets(i, x)
		x1s, x2s := x1*x1, x2*x2
		return (m.z[i+1]*x1s*x1s-m.z[i]*x2s*x2s)/(24*h) + c.c1*x1s/2 - c.c2*x2s/2
	}
	return f(b) - f(a)
}

func (m *cubicSplineModel) parameters() [][]float64 {
	return table(m.coeffs, m.k.segments(), func(c cubicSplineCoeffs) []float64 {
		return []float64{c.c1, c.c2}
	})
}
