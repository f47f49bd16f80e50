// Package batch solves instance files with a list of named strategies,
// either one file at a time (RunFile) or a whole directory on a bounded
// worker pool (Runner).
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sumsolve/logger"
)

var (
	// ErrNoWorkers indicates Runner.Workers < 1.
	ErrNoWorkers = errors.New("batch: worker count must be positive")
	// ErrBadPattern indicates an invalid glob pattern.
	ErrBadPattern = errors.New("batch: invalid file pattern")
)

// Runner solves every matching file of a directory concurrently.
type Runner struct {
	Workers int
	// Pattern is a doublestar glob relative to the directory, e.g. "*.dat"
	// or "**/*.dat".
	Pattern string
	Options Options
}

// Summary is the result of one batch. Results follow the sorted file order.
type Summary struct {
	RunID   string
	Results []JobResult
}

// Failed returns the number of files whose job reported an error.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}

	return n
}

// Discover returns the regular files under dir matching pattern, sorted.
func Discover(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Strings(matches)

	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(dir, filepath.FromSlash(m))
	}

	return files, nil
}

// Run discovers the files under dir and solves them on r.Workers goroutines.
// A failing file does not stop the others. Cancelling ctx stops scheduling;
// files never started get ctx's error, which Run also returns.
func (r *Runner) Run(ctx context.Context, dir string) (Summary, error) {
	if r.Workers < 1 {
		return Summary{}, ErrNoWorkers
	}
	if _, err := os.Stat(dir); err != nil {
		return Summary{}, fmt.Errorf("batch: %w", err)
	}
	files, err := Discover(dir, r.Pattern)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{RunID: uuid.NewString(), Results: make([]JobResult, len(files))}
	log := logger.FromContext(ctx).With("run_id", sum.RunID)
	log.Info("batch started", "dir", dir, "files", len(files), "workers", r.Workers)
	ctx = logger.ContextWithLogger(ctx, log)

	opts := r.Options
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	opts.Console = &syncWriter{w: opts.Console}
	if opts.Progress != nil {
		opts.Progress = &syncWriter{w: opts.Progress}
	}

	g := new(errgroup.Group)
	g.SetLimit(r.Workers)
	for i, f := range files {
		if ctx.Err() != nil {
			sum.Results[i] = JobResult{File: f, Err: ctx.Err()}
			continue
		}
		jobOpts := opts
		jobOpts.Stream = uint64(i)
		g.Go(func() error {
			sum.Results[i] = RunFile(ctx, f, jobOpts)
			return nil
		})
	}
	_ = g.Wait()

	log.Info("batch finished", "files", len(files), "failed", sum.Failed())

	return sum, ctx.Err()
}
