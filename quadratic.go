package piecewise

// quadraticWeights are the Lagrange basis weights of one three-knot window:
// u(x) = l0(x-t1)(x-t2) + l1(x-t0)(x-t2) + l2(x-t0)(x-t1).
type quadraticWeights struct {
	l0, l1, l2 float64
}

// quadraticModel evaluates each segment with the parabola through three
// consecutive samples. There are n-2 windows.
type quadraticModel struct {
	k        *knots
	backward bool
	weights  paramSource[quadraticWeights]
}

func newQuadratic(k *knots, o *options) (model, error) {
	m := &quadraticModel{k: k, backward: o.backward}
	m.weights = newParamSource(k.n()-2, o.cache, m.weightsOf)
	return m, nil
}

func (m *quadraticModel) weightsOf(w int) quadraticWeights {
	t, u := m.k.t, m.k.u
	dt0 := t[w+1] - t[w]
	dt1 := t[w+2] - t[w+1]
	dt := t[w+2] - t[w]
	return quadraticWeights{
		l0: u[w] / (dt0 * dt),
		l1: -u[w+1] / (dt0 * dt1),
		l2: u[w+2] / (dt * dt1),
	}
}

// window returns the first knot of the window segment i is evaluated with.
func (m *quadraticModel) window(i int) int {
	if m.backward {
		return max(i-1, 0)
	}
	return min(i, m.k.n()-3)
}

func (m *quadraticModel) offsets(w int, x float64) (d0, d1, d2 float64) {
	t := m.k.t
	return x - t[w], x - t[w+1], x - t[w+2]
}

func (m *quadraticModel) value(i int, x float64) float64 {
	w := m.window(i)
	l := m.weights.at(w)
	d0, d1, d2 := m.offsets(w, x)
	return l.l0*d1*d2 + l.l1*d0*d2 + l.l2*d0*d1
}

func (m *quadraticModel) slope(i int, x float64) float64 {
	w := m.window(i)
	l := m.weights.at(w)
	d0, d1, d2 := m.offsets(w, x)
	return l.l0*(d1+d2) + l.l1*(d0+d2) + l.l2*(d0+d1)
}

func (m *quadraticModel) curvature(i int, x float64) float64 {
	l := m.weights.at(m.window(i))
	return 2 * (l.l0 + l.l1 + l.l2)
}

func (m *quadraticModel) integrate(i int, a, b float64) float64 {
	w := m.window(i)
	l := m.weights.at(w)
	t := m.k.t
	r1, r2 := t[w+1]-t[w], t[w+2]-t[w]
	f := func(y float64) float64 {
		return l.l0*rootsIntegral(r1, r2, y) + l.l1*rootsIntegral(0, r2, y) + l.l2*rootsIntegral(0, r1, y)
	}
	return f(b-t[w]) - f(a-t[w])
}

// rootsIntegral is the antiderivative of (y-p)(y-q) vanishing at y = 0.
func rootsIntegral(p, q, y float64) float64 {
	return y * (y*(y/3-(p+q)/2) + p*q)
}

func (m *quadraticModel) parameters() [][]float64 {
	return table(m.weights, m.k.n()-2, func(l quadraticWeights) []float64 {
		return []float64{l.l0, l.l1, l.l2}
	})
}

// quadraticSplineCoeffs describe u(s) = u_i + s(alpha*s + beta) in the
// relative coordinate s = (x - t_i)/h_i.
type quadraticSplineCoeffs struct {
	alpha, beta float64
}

// quadraticSplineModel is the C1 quadratic spline interpolating every
// sample whose breakpoints skip the second to last knot: the final piece is
// the parabola through the last three samples. Knot slopes are solved once,
// backwards from that parabola.
type quadraticSplineModel struct {
	k      *knots
	d      []float64
	coeffs paramSource[quadraticSplineCoeffs]
}

func newQuadraticSpline(k *knots, o *options) (model, error) {
	n := k.n()
	t, u := k.t, k.u
	d := make([]float64, n)
	d[n-1] = parabolaSlope(t[n-3:], u[n-3:], t[n-1])
	d[n-2] = parabolaSlope(t[n-3:], u[n-3:], t[n-2])
	for i := n - 3; i >= 0; i-- {
		d[i] = 2*(u[i+1]-u[i])/k.width(i) - d[i+1]
	}

	m := &quadraticSplineModel{k: k, d: d}
	m.coeffs = newParamSource(k.segments(), o.cache, m.coeffsOf)
	return m, nil
}

// parabolaSlope differentiates the parabola through three points at x.
func parabolaSlope(t, u []float64, x float64) float64 {
	return u[0]*((x-t[1])+(x-t[2]))/((t[0]-t[1])*(t[0]-t[2])) +
		u[1]*((x-t[0])+(x-t[2]))/((t[1]-t[0])*(t[1]-t[2])) +
		u[2]*((x-t[0])+(x-t[1]))/((t[2]-t[0])*(t[2]-t[1]))
}

func (m *quadraticSplineModel) coeffsOf(i int) quadraticSplineCoeffs {
	du := m.k.u[i+1] - m.k.u[i]
	alpha := m.d[i+1]*m.k.width(i) - du
	return quadraticSplineCoeffs{alpha: alpha, beta: du - alpha}
}

// local returns the segment polynomial in s together with h_i and s(x).
func (m *quadraticSplineModel) local(i int, x float64) (p poly, h, s float64) {
	c := m.coeffs.at(i)
	h = m.k.width(i)
	return poly{m.k.u[i], c.beta, c.alpha}, h, (x - m.k.t[i]) / h
}

func (m *quadraticSplineModel) value(i int, x float64) float64 {
	p, _, s := m.local(i, x)
	return p.eval(s)
}

func (m *quadraticSplineModel) slope(i int, x float64) float64 {
	p, h, s := m.local(i, x)
	return p.deriv(s) / h
}

func (m *quadraticSplineModel) curvature(i int, x float64) float64 {
	p, h, s := m.local(i, x)
	return p.deriv2(s) / (h * h)
}

func (m *quadraticSplineModel) integrate(i int, a, b float64) float64 {
	p, h, sa := m.local(i, a)
	sb := (b - m.k.t[i]) / h
	return h * p.integral(sa, sb)
}

func (m *quadraticSplineModel) parameters() [][]float64 {
	return table(m.coeffs, m.k.segments(), func(c quadraticSplineCoeffs) []float64 {
		return []float64{c.alpha, c.beta}
	})
}
