package ssp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the ssp package.
var (
	// ErrSumOverflow indicates that the total of all items does not fit in uint64.
	ErrSumOverflow = errors.New("ssp: item total overflows uint64")

	// ErrInvalidIndex indicates an item index outside [0, Size()).
	ErrInvalidIndex = errors.New("ssp: item index out of range")

	// ErrInvalidState indicates a State other than Excluded or Included.
	ErrInvalidState = errors.New("ssp: invalid inclusion state")

	// ErrUnsupportedAlgorithm indicates an Algorithm outside the closed set.
	ErrUnsupportedAlgorithm = errors.New("ssp: unsupported algorithm")

	// ErrUnsupportedConstruction indicates a Construction outside the closed set.
	ErrUnsupportedConstruction = errors.New("ssp: unsupported construction")

	// ErrNegativeTimeLimit indicates Options.TimeLimit < 0.
	ErrNegativeTimeLimit = errors.New("ssp: time limit must be non-negative")

	// ErrInfeasibleStart indicates that ConstructNone was requested while the
	// caller's inclusion vector already exceeds the target.
	ErrInfeasibleStart = errors.New("ssp: initial selection exceeds target")

	// ErrReleased indicates use of an Instance after Free.
	ErrReleased = errors.New("ssp: instance has been released")
)

// State is the inclusion flag of one item.
type State uint8

const (
	// Excluded marks an item that is not part of the selection.
	Excluded State = iota
	// Included marks an item that is part of the selection.
	Included
)

// String returns "EXCLUDED" or "INCLUDED".
func (s State) String() string {
	switch s {
	case Excluded:
		return "EXCLUDED"
	case Included:
		return "INCLUDED"
	default:
		return "INVALID"
	}
}

// Algorithm selects the solver run by Instance.Solve.
type Algorithm int

const (
	// Exhaustive enumerates every inclusion vector as a binary counter.
	Exhaustive Algorithm = iota
	// Greedy includes every item that fits, in index order.
	Greedy
	// Random includes fitting items on a coin flip, in index order.
	Random
	// LocalSearch runs a construction then first-improvement 1-opt.
	LocalSearch
	// TabuLocalSearch is LocalSearch with permanent per-run pair bans.
	TabuLocalSearch
)

// String returns the short algorithm name used in reports and metrics.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case Greedy:
		return "greedy"
	case Random:
		return "random"
	case LocalSearch:
		return "local-search"
	case TabuLocalSearch:
		return "tabu"
	default:
		return "unknown"
	}
}

// TimeBounded reports whether the algorithm consults Options.TimeLimit.
func (a Algorithm) TimeBounded() bool {
	return a == Exhaustive || a == LocalSearch || a == TabuLocalSearch
}

// Construction selects the starting vector for the local searches.
type Construction int

const (
	// ConstructGreedy starts from the Greedy pass.
	ConstructGreedy Construction = iota
	// ConstructRandom starts from the Random pass.
	ConstructRandom
	// ConstructNone keeps the caller's current inclusion vector (warm start).
	ConstructNone
)

// String returns the construction name.
func (c Construction) String() string {
	switch c {
	case ConstructGreedy:
		return "greedy"
	case ConstructRandom:
		return "random"
	case ConstructNone:
		return "none"
	default:
		return "unknown"
	}
}

// Outcome is the terminal condition a solve run stopped on.
type Outcome int

const (
	// Solved means the selected sum equals the target.
	Solved Outcome = iota
	// TimedOut means the time budget ran out first.
	TimedOut
	// Exhausted means exhaustive search tried every vector without a match.
	Exhausted
	// LocalOptimum means 1-opt found no improving swap below the target.
	LocalOptimum
	// Constructed means a construction-only run finished below the target.
	Constructed
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case TimedOut:
		return "timed out"
	case Exhausted:
		return "exhausted"
	case LocalOptimum:
		return "local optimum"
	case Constructed:
		return "constructed"
	default:
		return "unknown"
	}
}

// Swap is one accepted 1-opt move: item Out left the selection, item In
// joined it, and Sum is the selected total right after the move.
type Swap struct {
	Out int
	In  int
	Sum uint64
}

// Result summarizes one Solve call. The inclusion vector itself stays on
// the Instance.
type Result struct {
	Outcome Outcome
	// Sum is the selected total when the run stopped.
	Sum uint64
	// ConstructedSum is the total right after the construction phase
	// (0 for Exhaustive).
	ConstructedSum uint64
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// Evaluated counts enumerated vectors (Exhaustive) or probed swap
	// candidates (1-opt).
	Evaluated uint64
	// Swaps lists the accepted 1-opt moves in application order.
	Swaps []Swap
}

// Options configures a solve run.
//
// TimeLimit    – wall-clock budget; 0 disables it. Must be ≥ 0.
// Seed         – RNG seed for Random and ConstructRandom; 0 selects a fixed default.
// Construction – starting vector for LocalSearch and TabuLocalSearch.
type Options struct {
	TimeLimit    time.Duration
	Seed         int64
	Construction Construction
}

// Option represents a functional option for configuring a solve run.
type Option func(*Options)

// WithTimeLimit sets the wall-clock budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithSeed sets the RNG seed used by randomized construction.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithConstruction sets the construction phase of the local searches.
func WithConstruction(c Construction) Option {
	return func(o *Options) {
		o.Construction = c
	}
}

// DefaultOptions returns unlimited time, the default seed and greedy construction.
func DefaultOptions() Options {
	return Options{
		TimeLimit:    0,
		Seed:         0,
		Construction: ConstructGreedy,
	}
}
