// Command piecewise evaluates, differentiates and integrates sampled data.
//
// Usage:
//
//	piecewise value samples.yaml 1.5 2.5
//	piecewise derivative --order 2 samples.yaml 3
//	piecewise integral --down linear samples.yaml 0 7
//	piecewise params samples.yaml
//	piecewise dump samples.yaml
//	piecewise tabulate --points 11 samples.yaml
//
// A dataset is a YAML or JSON file holding the fields of piecewise.Dump.
// Any JSON document can be read with --t-path and --u-path, which are gjson
// paths to the knot and sample arrays. Missing fields come from the profile
// given with --config (see config.ExampleProfile) and flags override both.
package main

import (
	"log/slog"
	"os"
)

func main() {
	a := &app{logger: slog.New(slog.NewTextHandler(os.Stderr, nil))}
	if err := a.rootCmd().Execute(); err != nil {
		a.logger.Error("piecewise failed", "error", err)
		os.Exit(1)
	}
}
