package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuneinsight/sinquad/quadrature"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sinquad",
		Short: "Compare the rectangle and Simpson rules on the integral of sin",
		Long: `sinquad reads the borders of an interval [a, b] with 0 <= a <= b <= pi from
the standard input and prints, for each partition size in 5, 10, 20, 100, 500
and 1000, the estimates of the integral of sin over [a, b] computed with the
midpoint rectangle rule and with Simpson's rule:

  <size> <rectangle> <simpson>

Any invalid input or I/O failure stops the run with exit code 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	addFlags(cmd.Flags())

	return cmd
}

// run reads the interval from r, runs the experiment and writes the table to w.
// The first error stops the run.
func run(r io.Reader, w io.Writer, cfg config, logger *zap.Logger) error {

	in, err := quadrature.ReadInterval(r, w)
	if err != nil {
		return err
	}
	logger.Debug("interval read", zap.Stringer("interval", in))

	e := quadrature.NewExperiment(in)
	e.OnRow = func(i int, row quadrature.Row) {
		logger.Debug("experiment done",
			zap.Int("index", i),
			zap.Int("size", row.Size),
			zap.Float64(quadrature.Rectangle.String(), row.Estimate(quadrature.Rectangle)),
			zap.Float64(quadrature.Simpson.String(), row.Estimate(quadrature.Simpson)))
	}

	table, err := e.Run()
	if err != nil {
		return err
	}

	n, err := table.WriteTo(w)
	if err != nil {
		return err
	}
	logger.Debug("table written", zap.Int("rows", table.Len()), zap.Int64("bytes", n))

	if cfg.Stats {
		summaries, err := table.Summary(quadrature.Exact(in))
		if err != nil {
			return err
		}
		if _, err = io.WriteString(w, quadrature.FormatSummary(summaries)); err != nil {
			return &quadrature.Error{Kind: quadrature.OutputError, Msg: "Cannot write statistics to stdout", Index: -1, Err: err}
		}
	}

	if cfg.Digest {
		if _, err = fmt.Fprintf(w, "blake3 %s\n", table.Digest()); err != nil {
			return &quadrature.Error{Kind: quadrature.OutputError, Msg: "Cannot write digest to stdout", Index: -1, Err: err}
		}
	}

	return nil
}
