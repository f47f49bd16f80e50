package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sumsolve/batch"
)

// SolveCmd returns "solve <instance-file> [time-limit-seconds]".
func SolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <instance-file> [time-limit-seconds]",
		Short: "Solve one instance file with every selected strategy",
		Long: `Solve runs each selected strategy on a fresh copy of the instance and
prints "<file> <strategy> solved" after each one, followed by its report.
Strategies other than greedy and random need a time limit, given as the
second argument or through solve.time_limit.`,
		Args: rangeArgs(1, 2),
		RunE: runSolve,
	}
	addSolveFlags(cmd)

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
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

	job := batch.RunFile(s.ctx, args[0], opts)
	if err = s.flush(); err != nil {
		return err
	}

	return job.Err
}
