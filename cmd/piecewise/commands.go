package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Maxime2/piecewise"
	"github.com/Maxime2/piecewise/internal/config"
	"github.com/Maxime2/piecewise/internal/dataset"
)

// app holds the flag values and the state shared by every command.
type app struct {
	configFile string
	logLevel   string
	logFormat  string

	variant string
	down    string
	up      string
	cache   bool
	sel     dataset.Selectors

	order  int
	points int
	from   float64
	to     float64
	refine bool

	profile *config.Profile
	logger  *slog.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "piecewise",
		Short: "Evaluate, differentiate and integrate piecewise interpolations of sampled data",
		Long: `piecewise reconstructs a function from samples (t, u) with one of the
supported interpolation variants and evaluates it, its derivatives or its
exact integral, optionally beyond the sampled range.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "profile file with default settings")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (text|json)")
	pf.StringVar(&a.variant, "variant", "", "interpolation variant, overriding the dataset")
	pf.StringVar(&a.down, "down", "", "extrapolation below the first knot (none|constant|linear|extension)")
	pf.StringVar(&a.up, "up", "", "extrapolation above the last knot (none|constant|linear|extension)")
	pf.BoolVar(&a.cache, "cache", false, "cache segment parameters and cumulative integrals")
	pf.StringVar(&a.sel.TPath, "t-path", "", "gjson path to the knots of a JSON dataset")
	pf.StringVar(&a.sel.UPath, "u-path", "", "gjson path to the samples of a JSON dataset")
	pf.StringVar(&a.sel.DuPath, "du-path", "", "gjson path to the first derivatives of a JSON dataset")
	pf.StringVar(&a.sel.DduPath, "ddu-path", "", "gjson path to the second derivatives of a JSON dataset")

	valueCmd := &cobra.Command{
		Use:   "value <dataset> <t>...",
		Short: "Print the interpolated value at each t",
		Args:  cobra.MinimumNArgs(2),
		RunE:  a.runValue,
	}

	derivativeCmd := &cobra.Command{
		Use:   "derivative <dataset> <t>...",
		Short: "Print the derivative of the given order at each t",
		Args:  cobra.MinimumNArgs(2),
		RunE:  a.runDerivative,
	}
	derivativeCmd.Flags().IntVar(&a.order, "order", 1, "derivative order (0, 1 or 2)")

	integralCmd := &cobra.Command{
		Use:   "integral <dataset> <t1> [t2]",
		Short: "Print the integral from the first knot to t1, or from t1 to t2",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  a.runIntegral,
	}

	paramsCmd := &cobra.Command{
		Use:   "params <dataset>",
		Short: "Print the per-segment parameter table",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runParams,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <dataset>",
		Short: "Print the normalized dataset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDump,
	}

	tabulateCmd := &cobra.Command{
		Use:   "tabulate <dataset>",
		Short: "Print the interpolation sampled on an even grid",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTabulate,
	}
	tf := tabulateCmd.Flags()
	tf.IntVar(&a.points, "points", 11, "number of grid points")
	tf.Float64Var(&a.from, "from", 0, "grid start (default first knot)")
	tf.Float64Var(&a.to, "to", 0, "grid end (default last knot)")
	tf.BoolVar(&a.refine, "refine", false, "insert segment midpoints instead of using a grid")

	root.AddCommand(valueCmd, derivativeCmd, integralCmd, paramsCmd, dumpCmd, tabulateCmd)
	return root
}

// setup loads the profile and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	p := config.Default()
	if a.configFile != "" {
		var err error
		if p, err = config.Load(a.configFile); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		p.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		p.Log.Format = a.logFormat
	}

	logger, err := config.NewLogger(cmd.ErrOrStderr(), p.Log.Level, p.Log.Format)
	if err != nil {
		return err
	}
	a.profile, a.logger = p, logger
	return nil
}

// load reads a dataset, applies flag overrides and builds the interpolation.
func (a *app) load(cmd *cobra.Command, fname string) (*piecewise.Interpolation, error) {
	d, err := dataset.Load(fname, a.profile.Dump(), a.sel)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if a.variant != "" {
		if err := d.Variant.UnmarshalText([]byte(a.variant)); err != nil {
			return nil, err
		}
	}
	if a.down != "" {
		if err := d.ExtrapolationDown.UnmarshalText([]byte(a.down)); err != nil {
			return nil, err
		}
	}
	if a.up != "" {
		if err := d.ExtrapolationUp.UnmarshalText([]byte(a.up)); err != nil {
			return nil, err
		}
	}
	if flags.Changed("cache") {
		d.CacheParameters = a.cache
	}

	f, err := piecewise.FromDump(d, piecewise.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	lo, hi := f.Domain()
	a.logger.Info("dataset loaded",
		"file", fname, "variant", f.Variant(), "knots", len(d.T), "from", lo, "to", hi)
	return f, nil
}
