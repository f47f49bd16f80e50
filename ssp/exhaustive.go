// Package ssp - exhaustive enumeration.
//
// The inclusion vector is treated as the bits of a binary counter with index
// 0 as the least significant bit. Starting from all-Excluded, each advance is
// a standard increment: Included bits flip to Excluded while the carry
// propagates, and the first Excluded bit flips to Included. A carry out of
// the last index means every one of the 2ⁿ vectors has been visited.
//
// The visiting order is load-bearing: for a fixed input the first matching
// vector found is always the same one.
package ssp

// exhaustive enumerates vectors until one matches the target, the budget
// expires or the counter overflows. The clock is sampled once per advance.
//
// Complexity: O(2ⁿ·n) time, O(1) extra space.
func (inst *Instance) exhaustive(sw *stopwatch) Result {
	var res Result
	inst.Reset()

	for {
		res.Evaluated++
		if inst.Sum() == inst.target {
			res.Outcome = Solved
			return res
		}
		if sw.expired() {
			res.Outcome = TimedOut
			return res
		}
		if !increment(inst.inclusion) {
			res.Outcome = Exhausted
			return res
		}
	}
}

// increment advances v as a little-endian binary counter. It returns false
// on carry out, leaving v all Excluded.
//
// Complexity: O(n) worst case, O(1) amortized.
func increment(v []State) bool {
	var i int
	for i = 0; i < len(v); i++ {
		if v[i] == Included {
			v[i] = Excluded
			continue
		}
		v[i] = Included

		return true
	}

	return false
}
