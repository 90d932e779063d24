package piecewise

import "errors"

// Errors returned by the package. Returned errors wrap one of these with
// call-specific detail, so callers compare with errors.Is.
var (
	// ErrConstruction reports invalid input to New: unsorted or duplicate
	// knots, mismatched lengths, too few points or an unsupported option.
	ErrConstruction = errors.New("piecewise: invalid interpolation input")

	// ErrDownExtrapolation is returned for queries below the first knot when
	// the down extrapolation is ExtrapolationNone.
	ErrDownExtrapolation = errors.New("piecewise: cannot extrapolate down")

	// ErrUpExtrapolation is returned for queries above the last knot when the
	// up extrapolation is ExtrapolationNone.
	ErrUpExtrapolation = errors.New("piecewise: cannot extrapolate up")

	// ErrIntegralNotFound is returned by the integral methods of variants
	// without a closed-form antiderivative.
	ErrIntegralNotFound = errors.New("piecewise: no closed-form integral for variant")

	// ErrDerivativeNotAvailable is returned for derivative orders a variant
	// has no analytic expression for.
	ErrDerivativeNotAvailable = errors.New("piecewise: derivative not available")
)
