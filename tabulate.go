package piecewise

import "fmt"

// Refine returns the knots with the midpoint of every segment inserted,
// together with the interpolated values. The original samples are kept.
func (f *Interpolation) Refine() (t, u []float64) {
	k := f.k
	n := k.n()

	// The original points plus one interpolated point between each pair.
	t = make([]float64, 0, 2*n-1)
	u = make([]float64, 0, 2*n-1)
	t = append(t, k.t[0])
	u = append(u, k.u[0])
	for i := 0; i < n-1; i++ {
		mid := (k.t[i] + k.t[i+1]) / 2
		t = append(t, mid, k.t[i+1])
		u = append(u, f.m.value(i, mid), k.u[i+1])
	}
	return t, u
}

// Tabulate samples the interpolation at n evenly spaced points over
// [lo, hi], both ends included. Points outside the knot range follow the
// extrapolation settings.
func (f *Interpolation) Tabulate(lo, hi float64, n int) (t, u []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("piecewise: tabulate needs at least 2 points, got %d", n)
	}
	if !(lo < hi) {
		return nil, nil, fmt.Errorf("piecewise: empty tabulation range [%g, %g]", lo, hi)
	}

	step := (hi - lo) / float64(n-1)
	t = make([]float64, n)
	for i := range t {
		t[i] = lo + float64(i)*step
	}
	t[n-1] = hi

	u, err = f.EvalAll(t)
	if err != nil {
		return nil, nil, err
	}
	return t, u, nil
}
