package piecewise

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

var (
	sampleT   = []float64{1, 2, 3, 4, 5}
	sampleU   = []float64{1, 5, 3, 4, 4}
	sampleDu  = []float64{5, 3, 6, 8, 1}
	sampleDdu = []float64{0, 3, 6, 4, 5}
)

func nan() float64 { return math.NaN() }

// sample builds v over the shared sample table with whatever extra inputs
// the variant needs.
func sample(t *testing.T, v Variant, opts ...Option) *Interpolation {
	t.Helper()
	base := []Option{Derivatives(sampleDu), SecondDerivatives(sampleDdu)}
	f, err := New(v, sampleT, sampleU, append(base, opts...)...)
	require.NoError(t, err)
	return f
}

func assertRows(t *testing.T, want, got [][]float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], tol, "row %d column %d", i, j)
		}
	}
}

func Test_Parameters(t *testing.T) {
	tests := []struct {
		v    Variant
		opts []Option
		want [][]float64
	}{
		{v: Linear, want: [][]float64{{4}, {-2}, {1}, {0}}},
		{v: Quadratic, want: [][]float64{
			{0.5, -5, 1.5},
			{2.5, -3, 2},
			{1.5, -4, 2},
		}},
		{v: QuadraticSpline, want: [][]float64{
			{-9.5, 13.5},
			{3.5, -5.5},
			{-0.5, 1.5},
			{-0.5, 0.5},
		}},
		{v: CubicSpline, want: [][]float64{
			{6.839285714285714, 1.0},
			{1.642857142857143, 6.839285714285714},
			{4.589285714285714, 1.642857142857143},
			{4.0, 4.589285714285714},
		}},
		{v: CubicHermite, want: [][]float64{
			{-1, 0},
			{-5, 13},
			{-5, 12},
			{-8, 9},
		}},
		{v: QuinticHermite, want: [][]float64{
			{-1, 1, 1.5},
			{-6.5, 19.5, -37.5},
			{-8, 20, -37},
			{-10, 19, -26.5},
		}},
		{v: Akima, want: [][]float64{
			{7, -2, -1},
			{0, -6.571428571428571, 4.571428571428571},
			{0.5714285714285714, 1.6071428571428572, -1.1785714285714286},
			{0.25, 0, -0.25},
		}},
	}

	for _, tt := range tests {
		for _, cache := range []bool{false, true} {
			t.Run(fmt.Sprintf("%v/cache=%v", tt.v, cache), func(t *testing.T) {
				f := sample(t, tt.v, append(tt.opts, CacheParameters(cache))...)
				assertRows(t, tt.want, f.Parameters())
			})
		}
	}
}

func Test_ParametersWithoutTuple(t *testing.T) {
	for _, v := range []Variant{Constant, Lagrange, BSpline} {
		assert.Nil(t, sample(t, v).Parameters(), "%v", v)
	}
}

func Test_ValuesInterpolateSamples(t *testing.T) {
	for _, v := range Variants() {
		f := sample(t, v)
		for i, x := range sampleT {
			got, err := f.Value(x)
			require.NoError(t, err)
			assert.InDelta(t, sampleU[i], got, 1e-9, "%v at knot %v", v, x)
		}
	}
}

func Test_Value(t *testing.T) {
	tests := []struct {
		v    Variant
		opts []Option
		want float64
	}{
		{v: Linear, want: 4},
		{v: Quadratic, want: 3.625},
		{v: Quadratic, opts: []Option{Backward()}, want: 4.75},
		{v: QuadraticSpline, want: 3.125},
		{v: CubicSpline, want: 4.180803571428571},
		{v: CubicHermite, want: 3.625},
		{v: QuinticHermite, want: 3.671875},
		{v: Akima, want: 3.928571428571429},
		{v: Constant, want: 5},
		{v: Constant, opts: []Option{RightContinuous()}, want: 3},
	}
	for _, tt := range tests {
		got, err := sample(t, tt.v, tt.opts...).Value(2.5)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, tol, "%v", tt.v)
	}
}

func Test_Derivative(t *testing.T) {
	f := sample(t, CubicSpline)

	d1, err := f.Derivative(2.5, 1)
	require.NoError(t, err)
	assert.InDelta(t, -2.7991071428571432, d1, tol)

	d2, err := f.Derivative(2.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, -1.4464285714285712, d2, tol)

	d0, err := f.Derivative(2.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.180803571428571, d0, tol)

	// Natural end conditions.
	for _, x := range []float64{1, 5} {
		c, err := f.Derivative(x, 2)
		require.NoError(t, err)
		assert.InDelta(t, 0, c, tol)
	}
}

func Test_HermiteMatchesDerivatives(t *testing.T) {
	f := sample(t, QuinticHermite)
	for i, x := range sampleT {
		d1, err := f.Derivative(x, 1)
		require.NoError(t, err)
		assert.InDelta(t, sampleDu[i], d1, 1e-9)

		d2, err := f.Derivative(x, 2)
		require.NoError(t, err)
		assert.InDelta(t, sampleDdu[i], d2, 1e-9)
	}
}

func Test_LagrangeReproducesPolynomial(t *testing.T) {
	p := func(x float64) float64 { return x*x*x - 2*x + 1 }
	dp := func(x float64) float64 { return 3*x*x - 2 }
	ts := []float64{-1, 0, 0.5, 2, 3}
	us := make([]float64, len(ts))
	for i, x := range ts {
		us[i] = p(x)
	}

	for _, cache := range []bool{false, true} {
		f, err := New(Lagrange, ts, us, CacheParameters(cache))
		require.NoError(t, err)
		for _, x := range []float64{-1, -0.3, 0.5, 1.7, 3} {
			v, err := f.Value(x)
			require.NoError(t, err)
			assert.InDelta(t, p(x), v, 1e-9, "value at %v", x)

			d, err := f.Derivative(x, 1)
			require.NoError(t, err)
			assert.InDelta(t, dp(x), d, 1e-9, "slope at %v", x)
		}
	}
}

func Test_DerivativeNotAvailable(t *testing.T) {
	f := sample(t, CubicSpline)
	for _, order := range []int{-1, 3, 7} {
		_, err := f.Derivative(2.5, order)
		assert.ErrorIs(t, err, ErrDerivativeNotAvailable, "order %d", order)
	}

	_, err := sample(t, Lagrange).Derivative(2.5, 2)
	assert.ErrorIs(t, err, ErrDerivativeNotAvailable)
}

func Test_Construction(t *testing.T) {
	tests := []struct {
		name string
		v    Variant
		t, u []float64
		opts []Option
	}{
		{name: "one knot", v: Linear, t: []float64{1}, u: []float64{1}},
		{name: "length mismatch", v: Linear, t: []float64{1, 2, 3}, u: []float64{1, 2}},
		{name: "unsorted", v: Linear, t: []float64{1, 3, 2}, u: []float64{1, 2, 3}},
		{name: "duplicate", v: Linear, t: []float64{1, 2, 2}, u: []float64{1, 2, 3}},
		{name: "nan", v: Linear, t: []float64{1, 2, 3}, u: []float64{1, nan(), 3}},
		{name: "quadratic needs three", v: Quadratic, t: []float64{1, 2}, u: []float64{1, 2}},
		{name: "akima needs three", v: Akima, t: []float64{1, 2}, u: []float64{1, 2}},
		{name: "hermite without du", v: CubicHermite, t: sampleT, u: sampleU},
		{name: "quintic without ddu", v: QuinticHermite, t: sampleT, u: sampleU,
			opts: []Option{Derivatives(sampleDu)}},
		{name: "du length", v: CubicHermite, t: sampleT, u: sampleU,
			opts: []Option{Derivatives([]float64{1, 2})}},
		{name: "unknown variant", v: Variant(42), t: sampleT, u: sampleU},
		{name: "unknown extrapolation", v: Linear, t: sampleT, u: sampleU,
			opts: []Option{ExtrapolateUp(Extrapolation(9))}},
		{name: "bspline degree", v: BSpline, t: sampleT, u: sampleU, opts: []Option{Degree(0)}},
		{name: "bspline too few", v: BSpline, t: sampleT, u: sampleU, opts: []Option{Degree(5)}},
		{name: "bspline extension", v: BSpline, t: sampleT, u: sampleU,
			opts: []Option{ExtrapolateDown(ExtrapolationExtension)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.v, tt.t, tt.u, tt.opts...)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrConstruction)
		})
	}
}

func Test_InputIsCopied(t *testing.T) {
	ts := []float64{0, 1, 2}
	us := []float64{0, 1, 0}
	f, err := New(Linear, ts, us)
	require.NoError(t, err)

	us[1] = 100
	ts[2] = 50
	v, err := f.Value(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	if diff := pretty.Compare(f.Knots(), []float64{0, 1, 2}); diff != "" {
		t.Errorf("Knots() diff (-got +want):\n%s", diff)
	}
}

func Test_NaNPassesThrough(t *testing.T) {
	f := sample(t, Akima)
	v, err := f.Value(nan())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func Test_EvalAll(t *testing.T) {
	f := sample(t, Linear)
	xs := []float64{1, 1.5, 2, 4.5}

	got, err := f.EvalAll(xs)
	require.NoError(t, err)
	if diff := pretty.Compare(got, []float64{1, 3, 5, 4}); diff != "" {
		t.Errorf("EvalAll diff (-got +want):\n%s", diff)
	}

	out := make([]float64, len(xs))
	_, err = f.EvalAll(xs, out)
	require.NoError(t, err)
	assert.Equal(t, got, out)

	_, err = f.EvalAll([]float64{0})
	assert.True(t, errors.Is(err, ErrDownExtrapolation))

	_, err = f.EvalAll(xs, make([]float64, 1))
	assert.Error(t, err)
}

func Test_ConstantOnKnots(t *testing.T) {
	f := sample(t, Constant, RightContinuous())
	for i, x := range sampleT {
		v, err := f.Value(x)
		require.NoError(t, err)
		assert.Equal(t, sampleU[i], v)
	}
	v, err := f.Value(1.5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func Test_String(t *testing.T) {
	s := sample(t, Akima, Extrapolate(ExtrapolationLinear, ExtrapolationConstant)).String()
	assert.Contains(t, s, "variant: akima")
	assert.Contains(t, s, "down: linear; up: constant")
}
