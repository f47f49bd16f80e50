package ssp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumsolve/ssp"
)

// mustNew builds an instance or fails the test.
func mustNew(t *testing.T, items []uint64, target uint64) *ssp.Instance {
	t.Helper()
	inst, err := ssp.New("test", items, target)
	require.NoError(t, err)

	return inst
}

// directSum adds the included items without going through Instance.Sum.
func directSum(inst *ssp.Instance) uint64 {
	var sum uint64
	items := inst.Items()
	for i, s := range inst.Inclusion() {
		if s == ssp.Included {
			sum += items[i]
		}
	}

	return sum
}

// requireWellFormed checks the vector/items invariants after a run.
func requireWellFormed(t *testing.T, inst *ssp.Instance) {
	t.Helper()
	inc := inst.Inclusion()
	require.Len(t, inc, inst.Size())
	for i, s := range inc {
		require.Truef(t, s == ssp.Excluded || s == ssp.Included, "inclusion[%d]=%v", i, s)
	}
	require.Equal(t, directSum(inst), inst.Sum())
}

// steppingClock returns a clock that advances by step on every reading.
func steppingClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)

	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

// lcg is a tiny deterministic generator for property tests.
type lcg uint64

func (l *lcg) next(bound uint64) uint64 {
	*l = *l*6364136223846793005 + 1442695040888963407
	return uint64(*l>>33) % bound
}

// randomItems returns n values in [1, maxV].
func randomItems(l *lcg, n int, maxV uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = 1 + l.next(maxV)
	}

	return out
}
