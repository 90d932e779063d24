package piecewise

type cubicHermiteCoeffs struct {
	c1, c2 float64
}

// cubicHermiteModel matches values and first derivatives at both ends of
// every segment:
//
//	u(x) = u_i + du_i x0 + x0^2 (c1 + x1 c2), x0 = x - t_i, x1 = x - t_{i+1}.
type cubicHermiteModel struct {
	k      *knots
	coeffs paramSource[cubicHermiteCoeffs]
}

func newCubicHermite(k *knots, o *options) (model, error) {
	m := &cubicHermiteModel{k: k}
	m.coeffs = newParamSource(k.segments(), o.cache, m.coeffsOf)
	return m, nil
}

func (m *cubicHermiteModel) coeffsOf(i int) cubicHermiteCoeffs {
	k := m.k
	h := k.width(i)
	c1 := (k.u[i+1] - k.u[i] - k.du[i]*h) / (h * h)
	c2 := (k.du[i+1] - k.du[i] - 2*c1*h) / (h * h)
	return cubicHermiteCoeffs{c1: c1, c2: c2}
}

// segment expands the Hermite form into powers of x - t_i.
func (m *cubicHermiteModel) segment(i int) poly {
	c := m.coeffs.at(i)
	h := m.k.width(i)
	return poly{m.k.u[i], m.k.du[i], c.c1 - h*c.c2, c.c2}
}

func (m *cubicHermiteModel) value(i int, x float64) float64 {
	p := m.segment(i)
	return p.eval(x - m.k.t[i])
}

func (m *cubicHermiteModel) slope(i int, x float64) float64 {
	p := m.segment(i)
	return p.deriv(x - m.k.t[i])
}

func (m *cubicHermiteModel) curvature(i int, x float64) float64 {
	p := m.segment(i)
	return p.deriv2(x - m.k.t[i])
}

func (m *cubicHermiteModel) integrate(i int, a, b float64) float64 {
	p := m.segment(i)
	return p.integral(a-m.k.t[i], b-m.k.t[i])
}

func (m *cubicHermiteModel) parameters() [][]float64 {
	return table(m.coeffs, m.k.segments(), func(c cubicHermiteCoeffs) []float64 {
		return []float64{c.c1, c.c2}
	})
}

type quinticHermiteCoeffs struct {
	c1, c2, c3 float64
}

// quinticHermiteModel additionally matches second derivatives:
//
//	u(x) = u_i + x0 (du_i + ddu_i x0/2) + x0^3 (c1 + x1 (c2 + c3 x1)).
type quinticHermiteModel struct {
	k      *knots
	coeffs paramSource[quinticHermiteCoeffs]
}

func newQuinticHermite(k *knots, o *options) (model, error) {
	m := &quinticHermiteModel{k: k}
	m.coeffs = newParamSource(k.segments(), o.cache, m.coeffsOf)
	return m, nil
}

func (m *quinticHermiteModel) coeffsOf(i int) quinticHermiteCoeffs {
	k := m.k
	h := k.width(i)
	h2 := h * h
	u0, u1 := k.u[i], k.u[i+1]
	du0, du1 := k.du[i], k.du[i+1]
	ddu0, ddu1 := k.ddu[i], k.ddu[i+1]
	return quinticHermiteCoeffs{
		c1: (u1 - u0 - du0*h - ddu0*h2/2) / (h2 * h),
		c2: (3*u0 - 3*u1 + 2*(du0+du1/2)*h + ddu0*h2/2) / (h2 * h2),
		c3: (6*u1 - 6*u0 - 3*(du0+du1)*h + (ddu1-ddu0)*h2/2) / (h2 * h2 * h),
	}
}

func (m *quinticHermiteModel) segment(i int) poly {
	c := m.coeffs.at(i)
	k := m.k
	h := k.width(i)
	return poly{
		k.u[i],
		k.du[i],
		k.ddu[i] / 2,
		c.c1 - h*c.c2 + h*h*c.c3,
		c.c2 - 2*h*c.c3,
		c.c3,
	}
}

func (m *quinticHermiteModel) value(i int, x float64) float64 {
	p := m.segment(i)
	return p.eval(x - m.k.t[i])
}

func (m *quinticHermiteModel) slope(i int, x float64) float64 {
	p := m.segment(i)
	return p.deriv(x - m.k.t[i])
}

func (m *quinticHermiteModel) curvature(i int, x float64) float64 {
	p := m.segment(i)
	return p.deriv2(x - m.k.t[i])
}

func (m *quinticHermiteModel) integrate(i int, a, b float64) float64 {
	p := m.segment(i)
	return p.integral(a-m.k.t[i], b-m.k.t[i])
}

func (m *quinticHermiteModel) parameters() [][]float64 {
	return table(m.coeffs, m.k.segments(), func(c quinticHermiteCoeffs) []float64 {
		return []float64{c.c1, c.c2, c.c3}
	})
}
