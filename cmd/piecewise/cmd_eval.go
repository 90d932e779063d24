package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func parsePoints(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", s, err)
		}
		xs[i] = x
	}
	return xs, nil
}

func (a *app) runValue(cmd *cobra.Command, args []string) error {
	return a.printDerivatives(cmd, args, 0)
}

func (a *app) runDerivative(cmd *cobra.Command, args []string) error {
	return a.printDerivatives(cmd, args, a.order)
}

func (a *app) printDerivatives(cmd *cobra.Command, args []string, order int) error {
	f, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	xs, err := parsePoints(args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, x := range xs {
		v, err := f.Derivative(x, order)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g\t%g\n", x, v)
	}
	return nil
}

func (a *app) runIntegral(cmd *cobra.Command, args []string) error {
	f, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	xs, err := parsePoints(args[1:])
	if err != nil {
		return err
	}

	var v float64
	if len(xs) == 1 {
		v, err = f.Integral(xs[0])
	} else {
		v, err = f.IntegralRange(xs[0], xs[1])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
	return nil
}

func (a *app) runParams(cmd *cobra.Command, args []string) error {
	f, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}

	rows := f.Parameters()
	if rows == nil {
		a.logger.Warn("variant has no parameter table", "variant", f.Variant())
		return nil
	}
	out := cmd.OutOrStdout()
	cum := f.CumulativeIntegral()
	for i, row := range rows {
		cols := make([]string, 0, len(row)+2)
		cols = append(cols, strconv.Itoa(i))
		for _, v := range row {
			cols = append(cols, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if i < len(cum) {
			cols = append(cols, strconv.FormatFloat(cum[i], 'g', -1, 64))
		}
		fmt.Fprintln(out, strings.Join(cols, "\t"))
	}
	return nil
}

func (a *app) runDump(cmd *cobra.Command, args []string) error {
	f, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func (a *app) runTabulate(cmd *cobra.Command, args []string) error {
	f, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}

	var ts, us []float64
	if a.refine {
		ts, us = f.Refine()
	} else {
		lo, hi := f.Domain()
		if cmd.Flags().Changed("from") {
			lo = a.from
		}
		if cmd.Flags().Changed("to") {
			hi = a.to
		}
		if ts, us, err = f.Tabulate(lo, hi, a.points); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for i := range ts {
		fmt.Fprintf(out, "%g\t%g\n", ts[i], us[i])
	}
	return nil
}
