package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/katalvlaran/sumsolve/instancefile"
	"github.com/katalvlaran/sumsolve/logger"
	"github.com/katalvlaran/sumsolve/metrics"
	"github.com/katalvlaran/sumsolve/report"
	"github.com/katalvlaran/sumsolve/ssp"
)

// Options configures how one instance file is solved.
type Options struct {
	Strategies []Strategy
	TimeLimit  time.Duration
	// Seed is the base seed; every (Stream, strategy) pair solves with its
	// own seed derived from it.
	Seed int64
	// Stream tells files of one batch apart; Runner sets it to the file index.
	Stream uint64
	// OutputDir receives report files; empty writes reports to Console.
	OutputDir string
	// Console receives console reports; nil means stdout.
	Console io.Writer
	// Progress receives "<file> <strategy> solved" lines; nil discards them.
	Progress io.Writer
	// Metrics records every run when non-nil.
	Metrics *metrics.Recorder
}

// RunResult is the outcome of one strategy on one file.
type RunResult struct {
	Strategy string
	// Seed is the derived seed the strategy ran with.
	Seed   int64
	Result ssp.Result
	// ReportPath is the written report file, "" for console output.
	ReportPath string
}

// JobResult collects every run of one file. Err is set when the file could
// not be loaded or a run failed; Runs holds the runs completed before that.
type JobResult struct {
	File     string
	Instance string
	Runs     []RunResult
	Err      error
}

// RunFile loads path once and solves a fresh copy of it with every strategy
// in order. Cancellation is checked between strategies.
func RunFile(ctx context.Context, path string, opts Options) JobResult {
	log := logger.FromContext(ctx).With("file", path)
	job := JobResult{File: path}

	src, err := instancefile.Load(path)
	if err != nil {
		log.Error("failed to load instance", "error", err)
		job.Err = err
		return job
	}
	defer src.Free()
	job.Instance = src.Name()
	log.Debug("instance loaded", "items", src.Size(), "target", src.Target())

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	fileSeed := ssp.DeriveSeed(opts.Seed, opts.Stream)
	for k, s := range opts.Strategies {
		if err = ctx.Err(); err != nil {
			job.Err = err
			return job
		}
		run, err := solveOne(src, s, ssp.DeriveSeed(fileSeed, uint64(k)), opts, console)
		if err != nil {
			log.Error("strategy failed", "strategy", s.Name, "error", err)
			job.Err = fmt.Errorf("%s: %w", s.Name, err)
			return job
		}
		job.Runs = append(job.Runs, run)
		if opts.Progress != nil {
			fmt.Fprintf(opts.Progress, "%s %s solved\n", path, s.Name)
		}
		log.Info("strategy finished",
			"strategy", s.Name,
			"outcome", run.Result.Outcome.String(),
			"sum", run.Result.Sum,
			"target", src.Target(),
			"elapsed", run.Result.Elapsed,
		)
	}

	return job
}

func solveOne(src *ssp.Instance, s Strategy, seed int64, opts Options, console io.Writer) (RunResult, error) {
	inst, err := ssp.New(src.Name(), src.Items(), src.Target())
	if err != nil {
		return RunResult{}, err
	}
	defer inst.Free()

	inst.SetAlgorithm(s.Algorithm,
		ssp.WithTimeLimit(opts.TimeLimit),
		ssp.WithSeed(seed),
		ssp.WithConstruction(s.Construction),
	)
	res, err := inst.Solve()
	if err != nil {
		return RunResult{}, err
	}
	opts.Metrics.Observe(s.Name, res, inst.Target(), inst.Size())

	run := RunResult{Strategy: s.Name, Seed: seed, Result: res}
	if opts.OutputDir != "" {
		run.ReportPath, err = report.Destination{Dir: opts.OutputDir}.Emit(inst, s.Name)
		return run, err
	}
	// Render first so a console report reaches the writer in one piece.
	var buf bytes.Buffer
	if err = report.Write(&buf, inst); err != nil {
		return run, err
	}
	_, err = console.Write(buf.Bytes())

	return run, err
}

// syncWriter serializes writes from concurrent jobs.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Write(p)
}
