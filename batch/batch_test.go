package batch_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumsolve/batch"
	"github.com/katalvlaran/sumsolve/instancefile"
	"github.com/katalvlaran/sumsolve/logger"
	"github.com/katalvlaran/sumsolve/metrics"
	"github.com/katalvlaran/sumsolve/ssp"
)

func quietContext() context.Context {
	return logger.ContextWithLogger(context.Background(), logger.Discard())
}

func writeInstance(t *testing.T, dir, name string, items []uint64, target uint64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, instancefile.Write(f, items, target))
	require.NoError(t, f.Close())

	return path
}

func mustStrategies(t *testing.T, names ...string) []batch.Strategy {
	t.Helper()
	s, err := batch.ParseStrategies(names, "greedy")
	require.NoError(t, err)

	return s
}

func TestParseStrategy(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		algo  ssp.Algorithm
		cons  ssp.Construction
		bound bool
	}{
		{"exhaustive", "", ssp.Exhaustive, ssp.ConstructGreedy, true},
		{"greedy", "", ssp.Greedy, ssp.ConstructGreedy, false},
		{"random", "", ssp.Random, ssp.ConstructGreedy, false},
		{"greedy-1opt", "", ssp.LocalSearch, ssp.ConstructGreedy, true},
		{"random-1opt", "", ssp.LocalSearch, ssp.ConstructRandom, true},
		{"tabu", "greedy", ssp.TabuLocalSearch, ssp.ConstructGreedy, true},
		{"tabu", "random", ssp.TabuLocalSearch, ssp.ConstructRandom, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name+"/"+tc.start, func(t *testing.T) {
			s, err := batch.ParseStrategy(tc.name, tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.Name)
			assert.Equal(t, tc.algo, s.Algorithm)
			assert.Equal(t, tc.cons, s.Construction)
			assert.Equal(t, tc.bound, s.TimeBounded())
		})
	}

	_, err := batch.ParseStrategy("annealing", "")
	require.ErrorIs(t, err, batch.ErrUnknownStrategy)
	_, err = batch.ParseStrategy("tabu", "none")
	require.ErrorIs(t, err, batch.ErrUnknownStrategy)

	assert.False(t, batch.AnyTimeBounded(mustStrategies(t, "greedy", "random")))
	assert.True(t, batch.AnyTimeBounded(mustStrategies(t, "greedy", "tabu")))
}

func TestRunFile_WritesReports(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := writeInstance(t, dir, "ss_inst_3b_3n.dat", []uint64{3, 5, 7}, 10)
	var progress bytes.Buffer
	rec := metrics.NewRecorder()

	job := batch.RunFile(quietContext(), path, batch.Options{
		Strategies: mustStrategies(t, "greedy", "greedy-1opt"),
		TimeLimit:  time.Minute,
		OutputDir:  out,
		Progress:   &progress,
		Metrics:    rec,
	})
	require.NoError(t, job.Err)
	assert.Equal(t, "ss_inst_3b_3n", job.Instance)
	require.Len(t, job.Runs, 2)

	assert.Equal(t, ssp.Constructed, job.Runs[0].Result.Outcome)
	assert.Equal(t, uint64(8), job.Runs[0].Result.Sum)
	assert.Equal(t, ssp.Solved, job.Runs[1].Result.Outcome)
	assert.Equal(t, uint64(10), job.Runs[1].Result.Sum)

	assert.Equal(t, filepath.Join(out, "ss_inst_3b_3n_greedy.out"), job.Runs[0].ReportPath)
	data, err := os.ReadFile(job.Runs[1].ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Solved: YES, 0 seconds, 10, 1.0000000000\nSolution:\n5\n7\n")

	assert.Equal(t, path+" greedy solved\n"+path+" greedy-1opt solved\n", progress.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Solves.WithLabelValues("greedy", "constructed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Solves.WithLabelValues("greedy-1opt", "solved")))
}

func TestRunFile_SeedsPerStrategyAndStream(t *testing.T) {
	items := make([]uint64, 64)
	for i := range items {
		items[i] = uint64(i + 1)
	}
	path := writeInstance(t, t.TempDir(), "r.dat", items, 1000)
	run := func(seed int64, stream uint64) batch.JobResult {
		job := batch.RunFile(quietContext(), path, batch.Options{
			Strategies: mustStrategies(t, "random", "random-1opt"),
			Seed:       seed,
			Stream:     stream,
			OutputDir:  t.TempDir(),
		})
		require.NoError(t, job.Err)
		require.Len(t, job.Runs, 2)
		return job
	}

	first := run(99, 0)
	assert.NotEqual(t, first.Runs[0].Seed, first.Runs[1].Seed)

	again := run(99, 0)
	assert.Equal(t, first.Runs[0].Seed, again.Runs[0].Seed)
	assert.Equal(t, first.Runs[0].Result.ConstructedSum, again.Runs[0].Result.ConstructedSum)
	assert.Equal(t, first.Runs[1].Result.Sum, again.Runs[1].Result.Sum)
	assert.Equal(t, first.Runs[1].Result.Swaps, again.Runs[1].Result.Swaps)

	otherFile := run(99, 1)
	assert.NotEqual(t, first.Runs[0].Seed, otherFile.Runs[0].Seed)
	otherSeed := run(100, 0)
	assert.NotEqual(t, first.Runs[0].Seed, otherSeed.Runs[0].Seed)
}

func TestRunFile_Console(t *testing.T) {
	path := writeInstance(t, t.TempDir(), "small.dat", []uint64{1, 2, 3}, 3)
	var console bytes.Buffer

	job := batch.RunFile(quietContext(), path, batch.Options{
		Strategies: mustStrategies(t, "exhaustive"),
		Console:    &console,
	})
	require.NoError(t, job.Err)
	assert.True(t, strings.HasPrefix(console.String(), "Input: small\nTarget: 3\nSize: 3\nInitial: 0\nSolved: YES"))
	assert.Empty(t, job.Runs[0].ReportPath)
}

func TestRunFile_Errors(t *testing.T) {
	t.Run("Should report unreadable file", func(t *testing.T) {
		job := batch.RunFile(quietContext(), filepath.Join(t.TempDir(), "absent.dat"), batch.Options{})
		require.ErrorIs(t, job.Err, instancefile.ErrInputUnavailable)
		assert.Empty(t, job.Runs)
	})

	t.Run("Should stop before the first strategy when cancelled", func(t *testing.T) {
		path := writeInstance(t, t.TempDir(), "a.dat", []uint64{1}, 1)
		ctx, cancel := context.WithCancel(quietContext())
		cancel()

		job := batch.RunFile(ctx, path, batch.Options{Strategies: mustStrategies(t, "greedy")})
		require.ErrorIs(t, job.Err, context.Canceled)
		assert.Empty(t, job.Runs)
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "b.dat", []uint64{1}, 1)
	writeInstance(t, dir, "a.dat", []uint64{1}, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeInstance(t, filepath.Join(dir, "nested"), "c.dat", []uint64{1}, 1)

	files, err := batch.Discover(dir, "*.dat")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.dat"), filepath.Join(dir, "b.dat")}, files)

	files, err = batch.Discover(dir, "**/*.dat")
	require.NoError(t, err)
	assert.Len(t, files, 3)

	_, err = batch.Discover(dir, "[")
	require.ErrorIs(t, err, batch.ErrBadPattern)
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	for i, name := range []string{"d.dat", "c.dat", "b.dat"} {
		writeInstance(t, dir, name, []uint64{2, 4, 6, 8}, uint64(10+2*i))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dat"), []byte("2 5\n1\n"), 0o600))
	var progress bytes.Buffer

	r := &batch.Runner{
		Workers: 2,
		Pattern: "*.dat",
		Options: batch.Options{
			Strategies: mustStrategies(t, "greedy-1opt", "tabu"),
			TimeLimit:  time.Minute,
			OutputDir:  out,
			Progress:   &progress,
		},
	}
	sum, err := r.Run(quietContext(), dir)
	require.NoError(t, err)

	_, err = uuid.Parse(sum.RunID)
	require.NoError(t, err)
	require.Len(t, sum.Results, 4)
	assert.Equal(t, 1, sum.Failed())

	assert.Equal(t, filepath.Join(dir, "a.dat"), sum.Results[0].File)
	require.ErrorIs(t, sum.Results[0].Err, instancefile.ErrMalformedInstance)
	for _, res := range sum.Results[1:] {
		require.NoError(t, res.Err, res.File)
		require.Len(t, res.Runs, 2)
		for _, run := range res.Runs {
			assert.Equal(t, ssp.Solved, run.Result.Outcome, "%s %s", res.File, run.Strategy)
		}
	}

	reports, err := filepath.Glob(filepath.Join(out, "*.out"))
	require.NoError(t, err)
	assert.Len(t, reports, 6)
	assert.Equal(t, 6, strings.Count(progress.String(), " solved\n"))
}

func TestRunner_Errors(t *testing.T) {
	_, err := (&batch.Runner{Workers: 0, Pattern: "*.dat"}).Run(quietContext(), t.TempDir())
	require.ErrorIs(t, err, batch.ErrNoWorkers)

	_, err = (&batch.Runner{Workers: 1, Pattern: "*.dat"}).Run(quietContext(), filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(quietContext())
	cancel()
	dir := t.TempDir()
	writeInstance(t, dir, "a.dat", []uint64{1}, 1)
	sum, err := (&batch.Runner{Workers: 1, Pattern: "*.dat"}).Run(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, sum.Results, 1)
	require.ErrorIs(t, sum.Results[0].Err, context.Canceled)
}
