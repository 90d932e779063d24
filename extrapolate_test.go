package piecewise

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExtrapolationNone(t *testing.T) {
	for _, v := range Variants() {
		f := sample(t, v)
		for _, x := range []float64{0.999, -10} {
			_, err := f.Value(x)
			assert.ErrorIs(t, err, ErrDownExtrapolation, "%v at %v", v, x)
			_, err = f.Derivative(x, 1)
			assert.ErrorIs(t, err, ErrDownExtrapolation, "%v at %v", v, x)
		}
		for _, x := range []float64{5.001, 10} {
			_, err := f.Value(x)
			assert.ErrorIs(t, err, ErrUpExtrapolation, "%v at %v", v, x)
		}
	}
}

func Test_ExtrapolationNeverFails(t *testing.T) {
	for _, v := range Variants() {
		for _, p := range policies {
			if v == BSpline && p == ExtrapolationExtension {
				continue
			}
			f := sample(t, v, Extrapolate(p, p))
			for _, x := range []float64{-3, 0.5, 5.5, 9} {
				_, err := f.Value(x)
				assert.NoError(t, err, "%v/%v at %v", v, p, x)
				_, err = f.Derivative(x, 1)
				assert.NoError(t, err, "%v/%v at %v", v, p, x)
			}
		}
	}
}

func Test_ExtrapolationValues(t *testing.T) {
	tests := []struct {
		name  string
		v     Variant
		e     Extrapolation
		x     float64
		order int
		want  float64
	}{
		{name: "constant down", v: CubicSpline, e: ExtrapolationConstant, x: -1, want: 1},
		{name: "constant up", v: CubicSpline, e: ExtrapolationConstant, x: 7, want: 4},
		{name: "constant slope", v: CubicSpline, e: ExtrapolationConstant, x: 7, order: 1, want: 0},
		{name: "linear down", v: CubicSpline, e: ExtrapolationLinear, x: 0,
			want: 1 - 5.839285714285714},
		{name: "linear up", v: CubicSpline, e: ExtrapolationLinear, x: 6,
			want: 4 - 0.5892857142857144},
		{name: "linear curvature", v: CubicSpline, e: ExtrapolationLinear, x: 6, order: 2, want: 0},
		{name: "extension up", v: CubicSpline, e: ExtrapolationExtension, x: 6, want: 4},
		{name: "extension linear", v: Linear, e: ExtrapolationExtension, x: 0, want: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sample(t, tt.v, Extrapolate(tt.e, tt.e))
			got, err := f.Derivative(tt.x, tt.order)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func Test_LagrangeLinearExtrapolation(t *testing.T) {
	f := sample(t, Lagrange, ExtrapolateUp(ExtrapolationLinear))
	edge, err := f.Derivative(5, 1)
	require.NoError(t, err)

	s, err := f.Derivative(6, 1)
	require.NoError(t, err)
	assert.Equal(t, edge, s)
	v, err := f.Value(6)
	require.NoError(t, err)
	assert.InDelta(t, 4+edge, v, 1e-9)
}

func Test_LinearExtrapolationIsC1(t *testing.T) {
	const eps = 1e-9
	for _, v := range integrable {
		f := sample(t, v, Extrapolate(ExtrapolationLinear, ExtrapolationLinear))
		lo, hi := f.Domain()
		for _, edge := range []struct{ out, in float64 }{{lo - eps, lo}, {hi + eps, hi}} {
			outside, err := f.Derivative(edge.out, 1)
			require.NoError(t, err)
			inside, err := f.Derivative(edge.in, 1)
			require.NoError(t, err)
			assert.InDelta(t, inside, outside, 1e-12, "%v at %v", v, edge.in)

			vo, err := f.Value(edge.out)
			require.NoError(t, err)
			vi, err := f.Value(edge.in)
			require.NoError(t, err)
			assert.InDelta(t, vi, vo, 1e-6, "%v at %v", v, edge.in)
		}
	}
}

func Test_ExtrapolationIndependentSides(t *testing.T) {
	f := sample(t, Akima, ExtrapolateDown(ExtrapolationConstant))
	down, up := f.Extrapolation()
	assert.Equal(t, ExtrapolationConstant, down)
	assert.Equal(t, ExtrapolationNone, up)

	v, err := f.Value(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	_, err = f.Value(6)
	assert.ErrorIs(t, err, ErrUpExtrapolation)
}

func Test_ConstantVariantExtension(t *testing.T) {
	f := sample(t, Constant, Extrapolate(ExtrapolationExtension, ExtrapolationExtension))
	down, up := f.Extrapolation()
	assert.Equal(t, ExtrapolationConstant, down)
	assert.Equal(t, ExtrapolationConstant, up)
}

func Test_ExtrapolationText(t *testing.T) {
	var got struct {
		Down Extrapolation `json:"down"`
		Up   Extrapolation `json:"up"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"down": "Linear", "up": " extension "}`), &got))
	assert.Equal(t, ExtrapolationLinear, got.Down)
	assert.Equal(t, ExtrapolationExtension, got.Up)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"down": "linear", "up": "extension"}`, string(b))

	var e Extrapolation
	assert.Error(t, e.UnmarshalText([]byte("quadratic")))
	_, err = Extrapolation(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Extrapolation(7)", Extrapolation(7).String())
}
