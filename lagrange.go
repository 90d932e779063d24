package piecewise

// lagrangeModel is the single polynomial through every sample, evaluated in
// barycentric form. The segment index is ignored. It has no closed-form
// integral here and no second derivative.
type lagrangeModel struct {
	k       *knots
	weights paramSource[float64]
}

func newLagrange(k *knots, o *options) (model, error) {
	m := &lagrangeModel{k: k}
	m.weights = newParamSource(k.n(), o.cache, m.weightOf)
	return m, nil
}

// weightOf is the barycentric weight 1/prod_{l != j}(t_j - t_l).
func (m *lagrangeModel) weightOf(j int) float64 {
	w := 1.0
	for l, t := range m.k.t {
		if l != j {
			w *= m.k.t[j] - t
		}
	}
	return 1 / w
}

func (m *lagrangeModel) node(x float64) (int, bool) {
	for j, t := range m.k.t {
		if x == t {
			return j, true
		}
	}
	return 0, false
}

func (m *lagrangeModel) value(_ int, x float64) float64 {
	if j, ok := m.node(x); ok {
		return m.k.u[j]
	}
	var num, den float64
	for j, t := range m.k.t {
		c := m.weights.at(j) / (x - t)
		num += c * m.k.u[j]
		den += c
	}
	return num / den
}

func (m *lagrangeModel) slope(i int, x float64) float64 {
	t, u := m.k.t, m.k.u
	if j, ok := m.node(x); ok {
		wj := m.weights.at(j)
		var s float64
		for l := range t {
			if l != j {
				s += m.weights.at(l) / wj * (u[l] - u[j]) / (t[j] - t[l])
			}
		}
		return s
	}

	p := m.value(i, x)
	var num, den float64
	for j := range t {
		dx := x - t[j]
		c := m.weights.at(j) / dx
		num += c * (p - u[j]) / dx
		den += c
	}
	return num / den
}

func (m *lagrangeModel) parameters() [][]float64 { return nil }
