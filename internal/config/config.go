// Package config reads the profile file of the piecewise command and builds
// its logger.
//
// A profile is a gcfg (INI-style) file. Every key is optional; the values
// are defaults that a dataset file or a command-line flag may override.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/Maxime2/piecewise"
)

const ExampleProfile = `[Interpolation]

# Variant is one of linear, quadratic, quadratic-spline, cubic-spline,
# cubic-hermite, quintic-hermite, akima, constant, lagrange or bspline.
Variant = cubic-spline

# Behaviour outside the knot range: none, constant, linear or extension.
ExtrapolationDown = none
ExtrapolationUp = none

# Materialize segment parameters and cumulative integrals up front.
CacheParameters = false

# Variant specific switches.
# Backward = false
# RightContinuous = false
# Degree = 3

[Log]

# debug, info, warn or error.
Level = info
# text or json.
Format = text`

type InterpolationConfig struct {
	Variant           piecewise.Variant
	ExtrapolationDown piecewise.Extrapolation
	ExtrapolationUp   piecewise.Extrapolation
	CacheParameters   bool

	Backward        bool
	RightContinuous bool
	Degree          int
}

type LogConfig struct {
	Level  string
	Format string
}

// Profile is the whole profile file.
type Profile struct {
	Interpolation InterpolationConfig
	Log           LogConfig
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Interpolation: InterpolationConfig{
			Variant: piecewise.CubicSpline,
			Degree:  3,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a profile file over the defaults.
func Load(fname string) (*Profile, error) {
	p := Default()
	if err := gcfg.ReadFileInto(p, fname); err != nil {
		return nil, err
	}
	if err := p.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

// Parse reads a profile from a string over the defaults.
func Parse(s string) (*Profile, error) {
	p := Default()
	if err := gcfg.ReadStringInto(p, s); err != nil {
		return nil, err
	}
	if err := p.CheckInit(); err != nil {
		return nil, err
	}
	return p, nil
}

// CheckInit validates and normalizes the profile.
func (p *Profile) CheckInit() error {
	if p.Interpolation.Degree < 1 {
		return fmt.Errorf("Degree must be positive, but is %d", p.Interpolation.Degree)
	}
	p.Log.Level = strings.ToLower(strings.TrimSpace(p.Log.Level))
	p.Log.Format = strings.ToLower(strings.TrimSpace(p.Log.Format))
	if _, err := parseLevel(p.Log.Level); err != nil {
		return err
	}
	if p.Log.Format != "text" && p.Log.Format != "json" {
		return fmt.Errorf("Log Format must be one of [text | json]. '%s' is not recognized", p.Log.Format)
	}
	return nil
}

// Dump returns the dataset defaults the profile describes. Samples are
// left empty.
func (p *Profile) Dump() piecewise.Dump {
	c := p.Interpolation
	return piecewise.Dump{
		Variant:           c.Variant,
		ExtrapolationDown: c.ExtrapolationDown,
		ExtrapolationUp:   c.ExtrapolationUp,
		CacheParameters:   c.CacheParameters,
		Backward:          c.Backward,
		RightContinuous:   c.RightContinuous,
		Degree:            c.Degree,
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("Log Level must be one of [debug | info | warn | error]: %w", err)
	}
	return l, nil
}

// NewLogger builds a text or JSON slog logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := parseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: l}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q, want text or json", format)
}
