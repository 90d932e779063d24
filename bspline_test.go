package piecewise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BSplineReproducesCubic(t *testing.T) {
	p := func(x float64) float64 { return 0.5*x*x*x - 2*x*x + x + 1 }
	ts := []float64{0, 1, 2, 3, 4, 5}
	us := make([]float64, len(ts))
	for i, x := range ts {
		us[i] = p(x)
	}

	f, err := New(BSpline, ts, us)
	require.NoError(t, err)

	for _, x := range []float64{0, 0.7, 2.3, 4, 5} {
		v, err := f.Value(x)
		require.NoError(t, err)
		assert.InDelta(t, p(x), v, 1e-9, "value at %v", x)

		d, err := f.Derivative(x, 1)
		require.NoError(t, err)
		assert.InDelta(t, 1.5*x*x-4*x+1, d, 1e-9, "slope at %v", x)

		c, err := f.Derivative(x, 2)
		require.NoError(t, err)
		assert.InDelta(t, 3*x-4, c, 1e-9, "curvature at %v", x)
	}

	v, err := f.Value(2.3)
	require.NoError(t, err)
	assert.InDelta(t, -1.1965, v, 1e-9)
}

func Test_BSplineDegreeOneIsLinear(t *testing.T) {
	ts := []float64{0, 1, 3}
	us := []float64{1, 2, 0}
	f, err := New(BSpline, ts, us, Degree(1))
	require.NoError(t, err)
	lin, err := New(Linear, ts, us)
	require.NoError(t, err)

	for _, x := range []float64{0, 0.25, 1, 2, 2.9, 3} {
		want, err := lin.Value(x)
		require.NoError(t, err)
		got, err := f.Value(x)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "value at %v", x)

		want, err = lin.Derivative(x, 1)
		require.NoError(t, err)
		got, err = f.Derivative(x, 1)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "slope at %v", x)

		c, err := f.Derivative(x, 2)
		require.NoError(t, err)
		assert.Zero(t, c)
	}
}

func Test_BSplineKnotOptions(t *testing.T) {
	ts := []float64{0, 0.5, 3, 3.5, 6, 9}
	us := []float64{0, 2, -1, 4, 4, 0}

	var mids []float64
	for _, opts := range [][]Option{nil, {UniformKnots()}, {ArcLength()}, {ArcLength(), Degree(2)}} {
		f, err := New(BSpline, ts, us, opts...)
		require.NoError(t, err)
		for i, x := range ts {
			v, err := f.Value(x)
			require.NoError(t, err)
			assert.InDelta(t, us[i], v, 1e-9)
		}
		mid, err := f.Value(1.75)
		require.NoError(t, err)
		mids = append(mids, mid)
	}
	assert.NotEqual(t, mids[0], mids[1])
	assert.NotEqual(t, mids[0], mids[2])
}

func Test_CurveHodograph(t *testing.T) {
	c := &curve{degree: 1, knots: []float64{0, 0, 0.5, 1, 1}, ctrl: []float64{1, 2, 0}}
	assert.InDelta(t, 1.5, c.eval(0.25), 1e-15)
	assert.InDelta(t, 0, c.eval(1), 1e-15)

	d := c.hodograph()
	assert.Equal(t, []float64{2, -4}, d.ctrl)
	assert.Equal(t, -4.0, d.eval(0.75))
	assert.Equal(t, 0.0, d.hodograph().eval(0.3))
}
