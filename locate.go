package piecewise

import "slices"

// side selects how locate breaks ties when the query equals a knot.
type side int

const (
	// sideLast returns the largest k with t[k] <= x, so a query on a knot
	// lands in the segment starting at that knot.
	sideLast side = iota
	// sideFirst returns the smallest k with t[k] >= x. Combined with a shift
	// of -1 a query on a knot lands in the segment ending at that knot.
	sideFirst
)

// locate returns the index of the segment holding x, offset by shift.
// Segment i spans [t[i], t[i+1]]. Results outside [0, n-2] mean x is outside
// the knot range; locate never fails, callers decide what to do with them.
func (k *knots) locate(x float64, shift int, s side) int {
	t := k.t
	n := len(t)

	// Guess under the assumption of uniform spacing.
	if g := int((x - t[0]) / k.dx); g >= 0 && g < n-1 {
		switch {
		case s == sideLast && t[g] <= x && x < t[g+1]:
			return g + shift
		case s == sideFirst && t[g] < x && x <= t[g+1]:
			return g + 1 + shift
		}
	}

	i, found := slices.BinarySearch(t, x)
	if s == sideLast && !found {
		i--
	}
	return i + shift
}

// segment returns the segment used to evaluate an in-domain x. The last
// knot belongs to the last segment.
func (k *knots) segment(x float64) int {
	return min(max(k.locate(x, 0, sideLast), 0), k.segments()-1)
}
