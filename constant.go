package piecewise

// constantModel holds a sample across each segment: the left knot's value
// by default, the right knot's value when right is set. A query exactly on
// a knot returns that knot's sample.
type constantModel struct {
	k     *knots
	right bool
}

func newConstant(k *knots, o *options) (model, error) {
	return &constantModel{k: k, right: o.right}, nil
}

// level is the value held across the open segment i.
func (m *constantModel) level(i int) float64 {
	if m.right {
		return m.k.u[i+1]
	}
	return m.k.u[i]
}

func (m *constantModel) value(i int, x float64) float64 {
	switch x {
	case m.k.t[i]:
		return m.k.u[i]
	case m.k.t[i+1]:
		return m.k.u[i+1]
	}
	return m.level(i)
}

func (m *constantModel) slope(i int, x float64) float64 { return 0 }

func (m *constantModel) curvature(i int, x float64) float64 { return 0 }

func (m *constantModel) integrate(i int, a, b float64) float64 {
	return m.level(i) * (b - a)
}

func (m *constantModel) parameters() [][]float64 { return nil }
