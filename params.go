package piecewise

// paramSource yields the parameter tuple of segment i. Whether the tuples
// were computed at construction or are computed on every call is fixed when
// the interpolation is built.
type paramSource[P any] interface {
	at(i int) P
}

// cachedParams is a materialized table of tuples.
type cachedParams[P any] []P

func (c cachedParams[P]) at(i int) P { return c[i] }

// lazyParams recomputes a tuple on every call.
type lazyParams[P any] func(i int) P

func (f lazyParams[P]) at(i int) P { return f(i) }

// newParamSource wraps fn, the closed-form tuple formula for n entries.
// Both sources call the same fn, so they agree exactly.
func newParamSource[P any](n int, cache bool, fn func(i int) P) paramSource[P] {
	if !cache {
		return lazyParams[P](fn)
	}
	c := make(cachedParams[P], n)
	for i := range c {
		c[i] = fn(i)
	}
	return c
}

// table flattens n tuples into rows for Interpolation.Parameters.
func table[P any](src paramSource[P], n int, row func(P) []float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = row(src.at(i))
	}
	return out
}
