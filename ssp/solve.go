// Package ssp - unified dispatcher.
//
// Solve validates the bound Options, starts the stopwatch and routes to the
// bound Algorithm. Every route leaves the inclusion vector describing the
// final selection and records Elapsed on the Instance.
package ssp

import "time"

// Solve runs the bound algorithm synchronously and returns its Result.
// A run that misses the target is not an error; see Result.Outcome.
//
// Errors: ErrReleased, ErrUnsupportedAlgorithm, ErrUnsupportedConstruction,
// ErrNegativeTimeLimit, ErrInfeasibleStart.
//
// Complexity: per algorithm (see doc.go).
func (inst *Instance) Solve() (Result, error) {
	if inst.released {
		return Result{}, ErrReleased
	}
	if err := validateOptions(inst.algo, inst.opts); err != nil {
		return Result{}, err
	}

	sw := newStopwatch(inst.now, inst.opts.TimeLimit)
	var (
		res Result
		err error
	)
	switch inst.algo {
	case Exhaustive:
		res = inst.exhaustive(sw)

	case Greedy:
		res.ConstructedSum = inst.constructGreedy()
		res.Outcome = inst.constructionOutcome(res.ConstructedSum)

	case Random:
		res.ConstructedSum = inst.constructRandom(rngFromSeed(inst.opts.Seed))
		res.Outcome = inst.constructionOutcome(res.ConstructedSum)

	case LocalSearch:
		res, err = inst.localSearch(sw, false)

	case TabuLocalSearch:
		res, err = inst.localSearch(sw, true)

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	res.Sum = inst.Sum()
	res.Elapsed = sw.elapsed()
	inst.elapsed = res.Elapsed

	return res, nil
}

// localSearch runs the configured construction, then plain or tabu 1-opt
// unless construction already hit the target.
func (inst *Instance) localSearch(sw *stopwatch, tabu bool) (Result, error) {
	var res Result
	switch inst.opts.Construction {
	case ConstructGreedy:
		res.ConstructedSum = inst.constructGreedy()
	case ConstructRandom:
		res.ConstructedSum = inst.constructRandom(rngFromSeed(inst.opts.Seed))
	case ConstructNone:
		res.ConstructedSum = inst.Sum()
		if res.ConstructedSum > inst.target {
			return Result{}, ErrInfeasibleStart
		}
	}
	if res.ConstructedSum == inst.target {
		res.Outcome = Solved
		return res, nil
	}

	var memo *tabuList
	if tabu {
		memo = newTabuList(len(inst.items))
	}
	inst.oneOpt(sw, memo, &res)

	return res, nil
}

func (inst *Instance) constructionOutcome(sum uint64) Outcome {
	if sum == inst.target {
		return Solved
	}

	return Constructed
}

// validateOptions checks Options against the selected algorithm.
//
// Complexity: O(1).
func validateOptions(algo Algorithm, opts Options) error {
	switch algo {
	case Exhaustive, Greedy, Random, LocalSearch, TabuLocalSearch:
	default:
		return ErrUnsupportedAlgorithm
	}
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	if algo == LocalSearch || algo == TabuLocalSearch {
		switch opts.Construction {
		case ConstructGreedy, ConstructRandom, ConstructNone:
		default:
			return ErrUnsupportedConstruction
		}
	}

	return nil
}

// stopwatch is the soft time budget shared by the bounded solvers.
// Elapsed time is compared at whole-second resolution.
type stopwatch struct {
	now   func() time.Time
	start time.Time
	limit time.Duration
}

func newStopwatch(now func() time.Time, limit time.Duration) *stopwatch {
	if now == nil {
		now = time.Now
	}

	return &stopwatch{now: now, start: now(), limit: limit}
}

func (s *stopwatch) elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// expired reports whether the budget is spent; always false for limit == 0.
func (s *stopwatch) expired() bool {
	if s.limit <= 0 {
		return false
	}

	return s.elapsed().Truncate(time.Second) >= s.limit
}
