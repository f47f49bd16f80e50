// Package ssp - greedy and randomized construction.
//
// Both passes scan items once in index order and keep the selection feasible
// (sum ≤ target) at every step. A rejected item is never reconsidered; any
// improvement is left to the 1-opt phase.
package ssp

import "math/rand"

// constructGreedy resets the vector and includes every item that fits.
// It stops early once the running sum equals the target and returns the
// final sum.
//
// Complexity: O(n).
func (inst *Instance) constructGreedy() uint64 {
	return inst.construct(func() bool { return true })
}

// constructRandom is constructGreedy with a fair coin deciding whether a
// fitting item is taken. Items that do not fit are always excluded.
//
// Complexity: O(n).
func (inst *Instance) constructRandom(rng *rand.Rand) uint64 {
	return inst.construct(func() bool { return rng.Intn(2) == 1 })
}

// construct is the shared scan. The running sum is tracked locally: it is a
// per-run variable, not a cache on the Instance.
func (inst *Instance) construct(take func() bool) uint64 {
	inst.Reset()

	var (
		sum uint64
		i   int
	)
	for i = 0; i < len(inst.items); i++ {
		if sum == inst.target {
			break
		}
		// sum ≤ target holds here, so target-sum cannot wrap.
		if inst.items[i] <= inst.target-sum && take() {
			inst.inclusion[i] = Included
			sum += inst.items[i]
		}
	}

	return sum
}
