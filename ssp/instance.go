// Package ssp - instance model.
//
// Instance owns the item values, the target and the inclusion vector. The
// vector is the only field solvers mutate; all other data is fixed at New.
//
// Design:
//   - Storage is sized to the input: there is no capacity ceiling.
//   - No cached sum: Sum is an O(n) scan, always consistent with the vector.
//   - Select is the checked primitive for callers; solvers write the vector
//     directly and are responsible for feasibility themselves.
package ssp

import (
	"math/bits"
	"time"
)

// Instance is one subset-sum problem plus its current candidate solution.
type Instance struct {
	name      string
	items     []uint64
	target    uint64
	inclusion []State
	elapsed   time.Duration

	algo     Algorithm
	opts     Options
	released bool

	// now is the clock used for time budgets; replaced in tests.
	now func() time.Time
}

// New builds an Instance over a private copy of items. The inclusion vector
// starts all Excluded and the bound algorithm defaults to Greedy.
//
// Errors: ErrSumOverflow if the items cannot be summed in uint64.
//
// Complexity: O(n) time, O(n) space.
func New(name string, items []uint64, target uint64) (*Instance, error) {
	var (
		total, carry uint64
		v            uint64
	)
	for _, v = range items {
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return nil, ErrSumOverflow
		}
	}

	own := make([]uint64, len(items))
	copy(own, items)

	return &Instance{
		name:      name,
		items:     own,
		target:    target,
		inclusion: make([]State, len(items)),
		algo:      Greedy,
		opts:      DefaultOptions(),
		now:       time.Now,
	}, nil
}

// Name returns the display label.
func (inst *Instance) Name() string { return inst.name }

// Target returns the sum to match.
func (inst *Instance) Target() uint64 { return inst.target }

// Size returns the number of items.
func (inst *Instance) Size() int { return len(inst.items) }

// Item returns the value of item i, or ErrInvalidIndex.
func (inst *Instance) Item(i int) (uint64, error) {
	if i < 0 || i >= len(inst.items) {
		return 0, ErrInvalidIndex
	}

	return inst.items[i], nil
}

// Items returns a copy of the item values in index order.
func (inst *Instance) Items() []uint64 {
	out := make([]uint64, len(inst.items))
	copy(out, inst.items)

	return out
}

// State returns the inclusion flag of item i, or ErrInvalidIndex.
func (inst *Instance) State(i int) (State, error) {
	if i < 0 || i >= len(inst.inclusion) {
		return Excluded, ErrInvalidIndex
	}

	return inst.inclusion[i], nil
}

// Inclusion returns a copy of the inclusion vector.
func (inst *Instance) Inclusion() []State {
	out := make([]State, len(inst.inclusion))
	copy(out, inst.inclusion)

	return out
}

// Selected returns the values of the included items in index order.
func (inst *Instance) Selected() []uint64 {
	var out []uint64
	for i, s := range inst.inclusion {
		if s == Included {
			out = append(out, inst.items[i])
		}
	}

	return out
}

// Elapsed returns the wall-clock duration of the most recent Solve.
func (inst *Instance) Elapsed() time.Duration { return inst.elapsed }

// Algorithm returns the currently bound algorithm.
func (inst *Instance) Algorithm() Algorithm { return inst.algo }

// Options returns the options bound with the current algorithm.
func (inst *Instance) Options() Options { return inst.opts }

// Sum returns the total of the included items. It scans the whole vector on
// every call; New guarantees the scan cannot overflow.
//
// Complexity: O(n).
func (inst *Instance) Sum() uint64 {
	var (
		sum uint64
		i   int
	)
	for i = 0; i < len(inst.items); i++ {
		if inst.inclusion[i] == Included {
			sum += inst.items[i]
		}
	}

	return sum
}

// Select sets the inclusion flag of item i. No feasibility check is made:
// the resulting sum may exceed the target.
func (inst *Instance) Select(i int, s State) error {
	if i < 0 || i >= len(inst.inclusion) {
		return ErrInvalidIndex
	}
	if s != Excluded && s != Included {
		return ErrInvalidState
	}
	inst.inclusion[i] = s

	return nil
}

// Reset marks every item Excluded.
func (inst *Instance) Reset() {
	clear(inst.inclusion)
}

// SetAlgorithm binds the solver run by the next Solve. Options start from
// DefaultOptions and are overridden by opts in order.
func (inst *Instance) SetAlgorithm(algo Algorithm, opts ...Option) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	inst.algo = algo
	inst.opts = cfg
}

// Free releases the owned buffers. The Instance must not be solved again.
func (inst *Instance) Free() {
	inst.items = nil
	inst.inclusion = nil
	inst.released = true
}
