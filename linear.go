package piecewise

// linearModel joins consecutive samples with straight lines.
type linearModel struct {
	k      *knots
	slopes paramSource[float64]
}

func newLinear(k *knots, o *options) (model, error) {
	m := &linearModel{k: k}
	m.slopes = newParamSource(k.segments(), o.cache, m.slopeOf)
	return m, nil
}

func (m *linearModel) slopeOf(i int) float64 {
	return (m.k.u[i+1] - m.k.u[i]) / m.k.width(i)
}

func (m *linearModel) segment(i int) poly {
	return poly{m.k.u[i], m.slopes.at(i)}
}

func (m *linearModel) value(i int, x float64) float64 {
	p := m.segment(i)
	return p.eval(x - m.k.t[i])
}

func (m *linearModel) slope(i int, x float64) float64 { return m.slopes.at(i) }

func (m *linearModel) curvature(i int, x float64) float64 { return 0 }

func (m *linearModel) integrate(i int, a, b float64) float64 {
	p := m.segment(i)
	return p.integral(a-m.k.t[i], b-m.k.t[i])
}

func (m *linearModel) parameters() [][]float64 {
	return table(m.slopes, m.k.segments(), func(s float64) []float64 { return []float64{s} })
}
