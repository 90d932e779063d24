package piecewise

import (
	"fmt"
	"strings"
)

// Extrapolation is the behaviour for queries outside the knot range. The
// lower and upper sides are configured independently.
type Extrapolation int

const (
	// ExtrapolationNone fails with ErrDownExtrapolation or ErrUpExtrapolation.
	ExtrapolationNone Extrapolation = 0
	// ExtrapolationConstant holds the boundary sample.
	ExtrapolationConstant Extrapolation = 1
	// ExtrapolationLinear continues along the tangent at the boundary knot.
	ExtrapolationLinear Extrapolation = 2
	// ExtrapolationExtension keeps evaluating the boundary segment's own
	// expression.
	ExtrapolationExtension Extrapolation = 3
)

var extrapolationNames = [...]string{
	ExtrapolationNone:      "none",
	ExtrapolationConstant:  "constant",
	ExtrapolationLinear:    "linear",
	ExtrapolationExtension: "extension",
}

func (e Extrapolation) valid() bool {
	return e >= 0 && int(e) < len(extrapolationNames)
}

func (e Extrapolation) String() string {
	if e.valid() {
		return extrapolationNames[e]
	}
	return fmt.Sprintf("Extrapolation(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Extrapolation) MarshalText() ([]byte, error) {
	if !e.valid() {
		return nil, fmt.Errorf("piecewise: unknown extrapolation %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty name means
// ExtrapolationNone.
func (e *Extrapolation) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "" {
		*e = ExtrapolationNone
		return nil
	}
	for i, n := range extrapolationNames {
		if n == name {
			*e = Extrapolation(i)
			return nil
		}
	}
	return fmt.Errorf("piecewise: unknown extrapolation %q", text)
}

// boundary describes one end of the knot range.
type boundary struct {
	policy Extrapolation
	seg    int     // segment adjacent to the boundary
	t, u   float64 // boundary knot and sample
	err    error
}

func (f *Interpolation) lower() boundary {
	k := f.k
	return boundary{policy: f.down, seg: 0, t: k.first(), u: k.u[0], err: ErrDownExtrapolation}
}

func (f *Interpolation) upper() boundary {
	k := f.k
	n := k.n()
	return boundary{policy: f.up, seg: n - 2, t: k.last(), u: k.u[n-1], err: ErrUpExtrapolation}
}

func (b boundary) fail(x float64) error {
	return fmt.Errorf("%w: %g is beyond the boundary knot %g", b.err, x, b.t)
}

// extrapolate returns the order-th derivative at x beyond boundary b.
func (f *Interpolation) extrapolate(b boundary, x float64, order int) (float64, error) {
	switch b.policy {
	case ExtrapolationConstant:
		if order == 0 {
			return b.u, nil
		}
		return 0, nil
	case ExtrapolationLinear:
		s := f.m.slope(b.seg, b.t)
		switch order {
		case 0:
			return b.u + s*(x-b.t), nil
		case 1:
			return s, nil
		}
		return 0, nil
	case ExtrapolationExtension:
		return f.eval(b.seg, x, order)
	}
	return 0, b.fail(x)
}

// tailIntegral integrates the extrapolation beyond b over [lo, hi], an
// interval lying entirely on b's outer side.
func (f *Interpolation) tailIntegral(im integrableModel, b boundary, lo, hi float64) (float64, error) {
	switch b.policy {
	case ExtrapolationConstant:
		return b.u * (hi - lo), nil
	case ExtrapolationLinear:
		s := f.m.slope(b.seg, b.t)
		dl, dh := lo-b.t, hi-b.t
		return b.u*(hi-lo) + s/2*(dh*dh-dl*dl), nil
	case ExtrapolationExtension:
		return im.integrate(b.seg, lo, hi), nil
	}
	if b.err == ErrDownExtrapolation {
		return 0, b.fail(lo)
	}
	return 0, b.fail(hi)
}
