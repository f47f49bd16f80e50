// Package ssp - 1-opt local search engine (plain and tabu-restricted).
//
// oneOpt performs deterministic first-improvement swap search from a
// feasible vector (sum ≤ target):
//   - A move (i, j) excludes included item i and includes excluded item j.
//   - It is improving iff items[j] > items[i] and the new sum stays ≤ target.
//   - Scan order: i over included indices ascending; for each, j over excluded
//     indices ascending. The first improving move is applied and the scan
//     restarts from i = 0 on the new vector.
//   - A full scan without a move is a local optimum.
//
// With a tabuList, a banned (i, j) is skipped before it is evaluated, and an
// applied move bans (i, j) and (j, i) for the rest of the run.
//
// Invariants:
//   - The sum strictly increases with every applied move and never exceeds
//     the target.
//   - The clock is sampled once per outer index step.
//
// Complexity:
//   - One scan: O(n²) candidate checks, O(1) per check.
//   - Overall: O(iter·n²) time; O(1) extra space (O(n²) with tabu).
package ssp

// oneOpt improves the current vector in place and fills res.Outcome,
// res.Evaluated and res.Swaps.
func (inst *Instance) oneOpt(sw *stopwatch, tabu *tabuList, res *Result) {
	var (
		items  = inst.items
		inc    = inst.inclusion
		target = inst.target
		n      = len(items)
		sum    = inst.Sum()
	)

	for {
		if sum == target {
			res.Outcome = Solved
			return
		}

		var (
			improved bool
			i, j     int
			gain     uint64
		)
	scan:
		for i = 0; i < n; i++ {
			if sw.expired() {
				res.Outcome = TimedOut
				return
			}
			if inc[i] != Included {
				continue
			}
			for j = 0; j < n; j++ {
				if inc[j] != Excluded {
					continue
				}
				if tabu != nil && tabu.banned(i, j) {
					continue
				}
				res.Evaluated++
				if items[j] <= items[i] {
					continue
				}
				// sum ≤ target, so target-sum cannot wrap.
				gain = items[j] - items[i]
				if gain > target-sum {
					continue
				}

				inc[i] = Excluded
				inc[j] = Included
				sum += gain
				if tabu != nil {
					tabu.ban(i, j)
				}
				res.Swaps = append(res.Swaps, Swap{Out: i, In: j, Sum: sum})
				improved = true

				break scan
			}
		}

		if !improved {
			res.Outcome = LocalOptimum
			return
		}
	}
}
