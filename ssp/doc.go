// Package ssp models an instance of the subset-sum problem and provides a
// small family of solvers that operate on it in place.
//
// An Instance holds an ordered multiset of non-negative integers (items),
// a target sum and an inclusion vector with one Excluded/Included flag per
// item. The inclusion vector is the solution state: every solver resets
// and mutates it, and Sum recomputes the selected total from scratch on
// every call, so the reported sum can never drift from the vector.
//
// Algorithms (closed set, selected via Instance.SetAlgorithm):
//
//   - Exhaustive      - binary-counter enumeration of all 2ⁿ inclusion vectors,
//     index 0 being the least significant bit. Exact; O(2ⁿ·n).
//
//   - Greedy          - one left-to-right pass including every item that still
//     fits under the target. O(n).
//
//   - Random          - the Greedy pass, but a fitting item is included on an
//     unbiased coin flip drawn from a seeded RNG. O(n).
//
//   - LocalSearch     - construction (Greedy, Random or the caller's own vector)
//     followed by first-improvement 1-opt: swap one included item for a larger
//     excluded one while the sum stays ≤ target. O(iter·n²).
//
//   - TabuLocalSearch - LocalSearch where every applied index pair is banned
//     for the rest of the run, so no pair is ever swapped twice.
//
// Time budget:
//
//	Options.TimeLimit bounds Exhaustive and both local searches. The clock is
//	sampled once per enumerated candidate (Exhaustive) or once per outer scan
//	index (1-opt) at whole-second resolution; a step is never interrupted, so
//	actual wall time may exceed the limit slightly. TimeLimit == 0 disables the
//	budget.
//
// Errors (sentinel):
//
//   - ErrSumOverflow             - items whose total does not fit in uint64.
//   - ErrInvalidIndex            - Select with an index outside [0, Size()).
//   - ErrInvalidState            - Select with a value other than Excluded/Included.
//   - ErrUnsupportedAlgorithm    - Solve with an unknown Algorithm.
//   - ErrUnsupportedConstruction - unknown Construction for a local search.
//   - ErrNegativeTimeLimit       - TimeLimit < 0.
//   - ErrInfeasibleStart         - ConstructNone with a vector already above target.
//   - ErrReleased                - Solve after Free.
//
// Missing the target is not an error: heuristics report it through
// Result.Outcome (Constructed, LocalOptimum, TimedOut) and exhaustive search
// through Exhausted.
//
// Concurrency:
//
//	An Instance is not safe for concurrent use; one Solve at a time. The
//	package holds no mutable global state, so independent Instances may be
//	solved on separate goroutines.
package ssp
