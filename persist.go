package piecewise

import (
	"cmp"
	"encoding/json"
	"slices"
)

// Dump is a serializable representation of an Interpolation. The same
// struct is read from YAML dataset files.
type Dump struct {
	Variant           Variant       `json:"variant" yaml:"variant"`
	T                 []float64     `json:"t" yaml:"t"`
	U                 []float64     `json:"u" yaml:"u"`
	Du                []float64     `json:"du,omitempty" yaml:"du,omitempty"`
	Ddu               []float64     `json:"ddu,omitempty" yaml:"ddu,omitempty"`
	ExtrapolationDown Extrapolation `json:"extrapolation_down" yaml:"extrapolation_down"`
	ExtrapolationUp   Extrapolation `json:"extrapolation_up" yaml:"extrapolation_up"`
	CacheParameters   bool          `json:"cache_parameters,omitempty" yaml:"cache_parameters,omitempty"`
	Backward          bool          `json:"backward,omitempty" yaml:"backward,omitempty"`
	RightContinuous   bool          `json:"right_continuous,omitempty" yaml:"right_continuous,omitempty"`
	Degree            int           `json:"degree,omitempty" yaml:"degree,omitempty"`
	UniformKnots      bool          `json:"uniform_knots,omitempty" yaml:"uniform_knots,omitempty"`
	ArcLength         bool          `json:"arc_length,omitempty" yaml:"arc_length,omitempty"`
}

// Options returns the construction options the dump describes.
func (d *Dump) Options() []Option {
	opts := []Option{
		Extrapolate(d.ExtrapolationDown, d.ExtrapolationUp),
		CacheParameters(d.CacheParameters),
	}
	if d.Du != nil {
		opts = append(opts, Derivatives(d.Du))
	}
	if d.Ddu != nil {
		opts = append(opts, SecondDerivatives(d.Ddu))
	}
	if d.Backward {
		opts = append(opts, Backward())
	}
	if d.RightContinuous {
		opts = append(opts, RightContinuous())
	}
	if d.Degree != 0 {
		opts = append(opts, Degree(d.Degree))
	}
	if d.UniformKnots {
		opts = append(opts, UniformKnots())
	}
	if d.ArcLength {
		opts = append(opts, ArcLength())
	}
	return opts
}

// sortSamples orders the samples by t, carrying the derivative columns
// along. Columns of mismatched length are left alone for New to reject.
func (d *Dump) sortSamples() {
	n := len(d.T)
	cols := [][]float64{d.T, d.U}
	for _, c := range [][]float64{d.Du, d.Ddu} {
		if c != nil {
			cols = append(cols, c)
		}
	}
	for _, c := range cols {
		if len(c) != n {
			return
		}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(d.T[a], d.T[b])
	})
	for _, c := range cols {
		tmp := slices.Clone(c)
		for i, j := range idx {
			c[i] = tmp[j]
		}
	}
}

// FromDump restores an interpolation from a dump.
// The samples are sorted by t first, as they may come from an untrusted source.
func FromDump(d *Dump, opts ...Option) (*Interpolation, error) {
	c := *d
	c.T, c.U = slices.Clone(d.T), slices.Clone(d.U)
	c.Du, c.Ddu = slices.Clone(d.Du), slices.Clone(d.Ddu)
	c.sortSamples()

	return New(c.Variant, c.T, c.U, append(c.Options(), opts...)...)
}

// Dump generates a serializable dump for an interpolation.
func (f *Interpolation) Dump() *Dump {
	d := &Dump{
		Variant:           f.variant,
		T:                 slices.Clone(f.k.t),
		U:                 slices.Clone(f.k.u),
		Du:                slices.Clone(f.k.du),
		Ddu:               slices.Clone(f.k.ddu),
		ExtrapolationDown: f.down,
		ExtrapolationUp:   f.up,
		CacheParameters:   f.cache,
		Backward:          f.o.backward,
		RightContinuous:   f.o.right,
		UniformKnots:      f.o.uniformKnots,
		ArcLength:         f.o.arcLength,
	}
	if f.variant == BSpline {
		d.Degree = f.o.degree
	}
	return d
}

// MarshalJSON implements the json.Marshaler interface for Interpolation.
func (f *Interpolation) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Interpolation.
func (f *Interpolation) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}

	g, err := FromDump(&dump)
	if err != nil {
		return err
	}
	*f = *g
	return nil
}
