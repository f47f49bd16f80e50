package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sumsolve/batch"
)

// BatchCmd returns "batch <dir> [time-limit-seconds]".
func BatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir> [time-limit-seconds]",
		Short: "Solve every instance file of a directory in parallel",
		Args:  rangeArgs(1, 2),
		RunE:  runBatch,
	}
	addSolveFlags(cmd)
	cmd.Flags().Int("workers", 8, "number of files solved concurrently")
	cmd.Flags().String("pattern", "*.dat", "glob selecting instance files, relative to <dir>")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	opts, err := s.options(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if opts.TimeLimit, err = resolveTimeLimit(args[1:], s.cfg.Solve.TimeLimit, opts.Strategies); err != nil {
		return err
	}

	r := &batch.Runner{
		Workers: s.cfg.Batch.Workers,
		Pattern: s.cfg.Batch.Pattern,
		Options: opts,
	}
	sum, err := r.Run(s.ctx, args[0])
	if ferr := s.flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	if n := sum.Failed(); n > 0 {
		return fmt.Errorf("batch %s: %d of %d files failed", sum.RunID, n, len(sum.Results))
	}

	return nil
}
