// Package cli wires the sumsolve commands: solve, batch and generate.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/sumsolve/batch"
	"github.com/katalvlaran/sumsolve/config"
	"github.com/katalvlaran/sumsolve/logger"
	"github.com/katalvlaran/sumsolve/metrics"
)

// ErrUsage marks command-line mistakes; main exits with status 2 on them.
var ErrUsage = errors.New("usage error")

// clock seeds unseeded runs; replaced in tests.
var clock = time.Now

// RootCmd returns the sumsolve command with all subcommands attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sumsolve",
		Short:         "Subset-sum solvers and instance tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "log as JSON")
	root.PersistentFlags().String("metrics", "", "write Prometheus metrics to this file after the run")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		SolveCmd(),
		BatchCmd(),
		GenerateCmd(),
	)

	return root
}

// rangeArgs is cobra.RangeArgs reporting ErrUsage.
func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(lo, hi)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// addSolveFlags registers the strategy flags shared by solve and batch.
func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("algo", nil,
		"strategy to run, repeatable (exhaustive, greedy, random, greedy-1opt, random-1opt, tabu)")
	cmd.Flags().Int64("seed", 0, "base seed for randomized construction (0 = wall clock)")
	cmd.Flags().String("tabu-start", "", "construction used by tabu (greedy or random)")
	cmd.Flags().String("out", "", "write reports to this directory instead of stdout")
}

// flagOverrides maps explicitly set flags onto configuration keys.
func flagOverrides(cmd *cobra.Command) (map[string]any, error) {
	overrides := make(map[string]any)
	addFlag := func(flagName, key string, getter func(string) (any, error)) error {
		f := cmd.Flags().Lookup(flagName)
		if f == nil || !f.Changed {
			return nil
		}
		value, err := getter(flagName)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flagName, err)
		}
		overrides[key] = value
		return nil
	}

	getString := func(name string) (any, error) { return cmd.Flags().GetString(name) }
	getBool := func(name string) (any, error) { return cmd.Flags().GetBool(name) }
	getInt := func(name string) (any, error) { return cmd.Flags().GetInt(name) }
	getInt64 := func(name string) (any, error) { return cmd.Flags().GetInt64(name) }
	getSlice := func(name string) (any, error) { return cmd.Flags().GetStringSlice(name) }

	flagDefs := []struct {
		flagName string
		key      string
		getter   func(string) (any, error)
	}{
		{"log-level", "log.level", getString},
		{"log-json", "log.json", getBool},
		{"metrics", "metrics.path", getString},
		{"algo", "solve.algorithms", getSlice},
		{"seed", "solve.seed", getInt64},
		{"tabu-start", "solve.construction", getString},
		{"out", "output.dir", getString},
		{"workers", "batch.workers", getInt},
		{"pattern", "batch.pattern", getString},
	}
	for _, def := range flagDefs {
		if err := addFlag(def.flagName, def.key, def.getter); err != nil {
			return nil, err
		}
	}

	return overrides, nil
}

// session is the per-invocation state shared by the commands.
type session struct {
	cfg     *config.Config
	log     logger.Logger
	ctx     context.Context
	metrics *metrics.Recorder
}

func setup(cmd *cobra.Command) (*session, error) {
	path, err := getFlag(cmd.Flags(), "config", (*pflag.FlagSet).GetString)
	if err != nil {
		return nil, err
	}
	overrides, err := flagOverrides(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.NewLoader().Load(path, overrides)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil, err
	}

	log := logger.SetupLogger(logger.LogLevel(cfg.Log.Level), cfg.Log.JSON, cmd.ErrOrStderr())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt := &session{
		cfg: cfg,
		log: log,
		ctx: logger.ContextWithLogger(ctx, log),
	}
	if cfg.Metrics.Path != "" {
		rt.metrics = metrics.NewRecorder()
		rt.metrics.RegisterRuntime()
	}

	return rt, nil
}

// flush writes the metrics textfile when one is configured.
func (rt *session) flush() error {
	if rt.metrics == nil {
		return nil
	}
	if err := rt.metrics.WriteTextfile(rt.cfg.Metrics.Path); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	rt.log.Debug("metrics written", "path", rt.cfg.Metrics.Path)

	return nil
}

// options builds the per-file solve options from the configuration. The
// caller fills in TimeLimit.
func (rt *session) options(out io.Writer) (batch.Options, error) {
	strategies, err := batch.ParseStrategies(rt.cfg.Solve.Algorithms, rt.cfg.Solve.Construction)
	if err != nil {
		return batch.Options{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	seed := resolveSeed(rt.cfg.Solve.Seed, clock)
	rt.log.Info("solve configured", "strategies", rt.cfg.Solve.Algorithms, "seed", seed)

	return batch.Options{
		Strategies: strategies,
		Seed:       seed,
		OutputDir:  rt.cfg.Output.Dir,
		Console:    out,
		Progress:   out,
		Metrics:    rt.metrics,
	}, nil
}

// resolveSeed returns the configured base seed, or the wall clock in
// nanoseconds when none is set.
func resolveSeed(configured int64, now func() time.Time) int64 {
	if configured != 0 {
		return configured
	}

	return now().UnixNano()
}

// resolveTimeLimit reads the optional time-limit argument in whole seconds.
// Time-bounded strategies need a limit from the argument or the
// configuration; an argument with no time-bounded strategy is rejected.
func resolveTimeLimit(extra []string, configured time.Duration, strategies []batch.Strategy) (time.Duration, error) {
	bounded := batch.AnyTimeBounded(strategies)
	if len(extra) == 0 {
		if bounded && configured == 0 {
			return 0, fmt.Errorf("%w: a time limit in seconds is required by the selected strategies", ErrUsage)
		}
		return configured, nil
	}
	if !bounded {
		return 0, fmt.Errorf("%w: no selected strategy takes a time limit", ErrUsage)
	}
	secs, err := strconv.ParseUint(extra[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: time limit %q: %w", ErrUsage, extra[0], err)
	}

	return time.Duration(secs) * time.Second, nil
}

func getFlag[T any](fs *pflag.FlagSet, name string, get func(*pflag.FlagSet, string) (T, error)) (T, error) {
	v, err := get(fs, name)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get %s flag: %w", name, err)
	}

	return v, nil
}
