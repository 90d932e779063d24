package piecewise

import (
	"fmt"
	"strings"
)

// Variant selects the closed-form family an Interpolation is built from.
type Variant int

const (
	Linear          Variant = 0
	Quadratic       Variant = 1
	QuadraticSpline Variant = 2
	CubicSpline     Variant = 3
	CubicHermite    Variant = 4
	QuinticHermite  Variant = 5
	Akima           Variant = 6
	Constant        Variant = 7
	// Lagrange and BSpline support evaluation and derivatives only.
	Lagrange Variant = 8
	BSpline  Variant = 9
)

// model is the per-variant evaluator over segment i of the knot table.
// The formulas stay valid for x outside the segment, which is what
// ExtrapolationExtension relies on.
type model interface {
	value(i int, x float64) float64
	slope(i int, x float64) float64
	// parameters returns one row per parameter tuple, or nil.
	parameters() [][]float64
}

// curvatureModel is implemented by variants with an analytic second
// derivative.
type curvatureModel interface {
	curvature(i int, x float64) float64
}

// integrableModel is implemented by variants with a closed-form
// antiderivative. integrate returns the integral of segment i's expression
// over [a, b], which need not lie inside the segment.
type integrableModel interface {
	integrate(i int, a, b float64) float64
}

type variantSpec struct {
	name       string
	minPoints  func(o *options) int
	needsDu    bool
	needsDdu   bool
	integrable bool
	build      func(k *knots, o *options) (model, error)
}

func points(n int) func(*options) int {
	return func(*options) int { return n }
}

var variants = [...]variantSpec{
	Linear:          {name: "linear", minPoints: points(2), integrable: true, build: newLinear},
	Quadratic:       {name: "quadratic", minPoints: points(3), integrable: true, build: newQuadratic},
	QuadraticSpline: {name: "quadratic-spline", minPoints: points(3), integrable: true, build: newQuadraticSpline},
	CubicSpline:     {name: "cubic-spline", minPoints: points(2), integrable: true, build: newCubicSpline},
	CubicHermite: {name: "cubic-hermite", minPoints: points(2), needsDu: true, integrable: true,
		build: newCubicHermite},
	QuinticHermite: {name: "quintic-hermite", minPoints: points(2), needsDu: true, needsDdu: true,
		integrable: true, build: newQuinticHermite},
	Akima:    {name: "akima", minPoints: points(3), integrable: true, build: newAkima},
	Constant: {name: "constant", minPoints: points(2), integrable: true, build: newConstant},
	Lagrange: {name: "lagrange", minPoints: points(2), build: newLagrange},
	BSpline: {name: "bspline", build: newBSpline,
		minPoints: func(o *options) int { return max(o.degree+1, 2) }},
}

func (v Variant) spec() (*variantSpec, bool) {
	if v < 0 || int(v) >= len(variants) {
		return nil, false
	}
	return &variants[v], true
}

// Integrable reports whether the variant has a closed-form integral.
func (v Variant) Integrable() bool {
	s, ok := v.spec()
	return ok && s.integrable
}

func (v Variant) valid() bool {
	_, ok := v.spec()
	return ok
}

func (v Variant) String() string {
	if s, ok := v.spec(); ok {
		return s.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("piecewise: unknown variant %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively and underscores may replace dashes.
func (v *Variant) UnmarshalText(text []byte) error {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(text))), "_", "-")
	for i := range variants {
		if variants[i].name == name {
			*v = Variant(i)
			return nil
		}
	}
	return fmt.Errorf("piecewise: unknown variant %q", text)
}

// Variants lists every supported variant.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}
