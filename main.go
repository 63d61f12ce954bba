package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/percona-lab/slist/config"
	"github.com/percona-lab/slist/errors"
	"github.com/percona-lab/slist/list"
	"github.com/percona-lab/slist/log"
	"github.com/percona-lab/slist/metrics"
	"github.com/percona-lab/slist/script"
)

func main() {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool

		metricsFile string
	)

	reg := prometheus.NewRegistry()
	metrics.Init(reg)

	rootCmd := &cobra.Command{
		Use:   "listctl",
		Short: "Build, edit and compare singly linked lists",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				log.InitGlobals(0, logJSON, true).Fatal().Msg("Unknown log level")
			}

			lg := log.InitGlobals(logLevel, logJSON, logNoColor)
			ctx := lg.WithContext(context.Background())
			cmd.SetContext(ctx)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if metricsFile == "" {
				return nil
			}

			log.Ctx(cmd.Context()).Debug("Writing metrics to " + metricsFile)

			return metrics.WriteFile(metricsFile, reg)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	addLogFlags(rootCmd.PersistentFlags(), &logLevelFlag, &logJSON, &logNoColor)
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", config.MetricsFile(),
		"Write Prometheus metrics to this file on exit")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Build a list and apply an operation script",
		Long: `Build a list from --values and apply the --ops script.

Operations: push:V, pop, insert:I:V, erase:I, set:I:V, clear.
I is a zero-based element index, -1 is the position before the first element.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, _ := cmd.Flags().GetString("values")
			ops, _ := cmd.Flags().GetString("ops")

			return runScript(cmd.Context(), cmd.OutOrStdout(), values, ops)
		},
	}

	runCmd.Flags().String("values", "", "Comma separated initial values")
	runCmd.Flags().String("ops", "", "Comma separated operations")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two lists lexicographically",
		RunE: func(cmd *cobra.Command, _ []string) error {
			left, _ := cmd.Flags().GetString("left")
			right, _ := cmd.Flags().GetString("right")

			return compareLists(cmd.Context(), cmd.OutOrStdout(), left, right)
		},
	}

	compareCmd.Flags().String("left", "", "Comma separated values of the left list")
	compareCmd.Flags().String("right", "", "Comma separated values of the right list")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure list operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err //nolint:wrapcheck
			}

			return runBench(cmd.Context(), cmd.OutOrStdout(), count)
		},
	}

	benchCmd.Flags().Int("count", config.DefaultBenchCount, "Number of elements")

	rootCmd.AddCommand(runCmd, compareCmd, benchCmd)

	err := rootCmd.Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

// addLogFlags registers the logging flags on fs.
func addLogFlags(fs *pflag.FlagSet, level *string, json, noColor *bool) {
	fs.StringVar(level, "log-level", config.DefaultLogLevel, "Log level")
	fs.BoolVar(json, "log-json", config.LogJSON(), "Output log in JSON format")
	fs.BoolVar(noColor, "no-color", false, "Disable log color")
}

// buildList parses values and builds a list from them.
func buildList(values string) (*list.List[int64], error) {
	vals, err := script.ParseValues(values)
	if err != nil {
		return nil, errors.Wrap(err, "parse values")
	}

	start := time.Now()
	l := list.New(vals...)
	metrics.SetBuildDuration(time.Since(start))

	return l, nil
}

// runScript builds a list, applies the script and prints the result.
func runScript(ctx context.Context, w io.Writer, values, ops string) error {
	l, err := buildList(values)
	if err != nil {
		return err
	}

	parsed, err := script.Parse(ops)
	if err != nil {
		return errors.Wrap(err, "parse ops")
	}

	log.Ctx(ctx).Debugf("Applying %d operations to %d elements", len(parsed), l.Len())

	err = script.Apply(ctx, l, parsed)
	if err != nil {
		return errors.Wrap(err, "apply")
	}

	_, err = fmt.Fprintf(w, "%s (%s elements)\n", formatList(l), humanize.Comma(int64(l.Len())))

	return errors.Wrap(err, "print result")
}

// compareLists builds both lists concurrently and prints their relation.
func compareLists(ctx context.Context, w io.Writer, left, right string) error {
	var a, b *list.List[int64]

	grp, _ := errgroup.WithContext(ctx)

	grp.Go(func() error {
		var err error
		a, err = buildList(left)

		return errors.Wrap(err, "left")
	})

	grp.Go(func() error {
		var err error
		b, err = buildList(right)

		return errors.Wrap(err, "right")
	})

	err := grp.Wait()
	if err != nil {
		return err //nolint:wrapcheck
	}

	rel := "=="

	switch list.Compare(a, b) {
	case -1:
		rel = "<"
	case +1:
		rel = ">"
	}

	_, err = fmt.Fprintf(w, "%s %s %s\n", formatList(a), rel, formatList(b))

	return errors.Wrap(err, "print result")
}

// runBench times the basic list operations on count elements.
func runBench(ctx context.Context, w io.Writer, count int) error {
	if count <= 0 {
		return errors.Errorf("invalid count %d", count)
	}

	lg := log.Ctx(ctx).With(log.Scope("bench"), log.Int("count", count))

	vals := make([]int64, count)
	for i := range vals {
		vals[i] = int64(i)
	}

	var l *list.List[int64]

	results := []struct {
		name string
		fn   func()
	}{
		{"build", func() { l = list.New(vals...) }},
		{"clone", func() { l.Clone() }},
		{"push front", func() {
			for _, v := range vals {
				l.PushFront(v)
			}
		}},
		{"pop front", func() {
			for range vals {
				l.PopFront()
			}
		}},
		{"clear", func() { l.Clear() }},
	}

	for _, r := range results {
		start := time.Now()
		r.fn()
		dur := time.Since(start)

		if r.name == "build" {
			metrics.SetBuildDuration(dur)
		}

		lg.Debugf("%s took %s", r.name, dur)

		rate := float64(count) / max(dur.Seconds(), 1e-9) //nolint:mnd

		_, err := fmt.Fprintf(w, "%-10s %s elements in %s (%s)\n",
			r.name, humanize.Comma(int64(count)), dur.Round(time.Microsecond),
			humanize.SIWithDigits(rate, 2, "op/s"))
		if err != nil {
			return errors.Wrap(err, "print result")
		}
	}

	metrics.SetListSize(l.Len())

	return nil
}

func formatList(l *list.List[int64]) string {
	return fmt.Sprint(slices.Collect(l.All()))
}
