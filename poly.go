package piecewise

// poly is a polynomial of degree at most 5 in the local coordinate
// x - t[i], lowest order first. Hermite, Akima and linear segments are
// evaluated through it.
type poly [6]float64

func (p *poly) eval(x float64) float64 {
	v := 0.0
	for k := len(p) - 1; k >= 0; k-- {
		v = v*x + p[k]
	}
	return v
}

func (p *poly) deriv(x float64) float64 {
	v := 0.0
	for k := len(p) - 1; k >= 1; k-- {
		v = v*x + float64(k)*p[k]
	}
	return v
}

func (p *poly) deriv2(x float64) float64 {
	v := 0.0
	for k := len(p) - 1; k >= 2; k-- {
		v = v*x + float64(k*(k-1))*p[k]
	}
	return v
}

// antideriv is the antiderivative vanishing at x = 0.
func (p *poly) antideriv(x float64) float64 {
	v := 0.0
	for k := len(p) - 1; k >= 0; k-- {
		v = v*x + p[k]/float64(k+1)
	}
	return v * x
}

// integral integrates p over [a, b], both in local coordinates.
func (p *poly) integral(a, b float64) float64 {
	return p.antideriv(b) - p.antideriv(a)
}
