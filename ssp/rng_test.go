package ssp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sumsolve/ssp"
)

func TestDeriveSeed_DistinctStreams(t *testing.T) {
	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 64; stream++ {
		s := ssp.DeriveSeed(42, stream)
		prev, dup := seen[s]
		assert.False(t, dup, "streams %d and %d share seed %d", prev, stream, s)
		seen[s] = stream
	}
}

func TestDeriveSeed_Deterministic(t *testing.T) {
	assert.Equal(t, ssp.DeriveSeed(7, 3), ssp.DeriveSeed(7, 3))
	assert.NotEqual(t, ssp.DeriveSeed(7, 3), ssp.DeriveSeed(8, 3))
}

func TestRandom_DerivedStreamsDiffer(t *testing.T) {
	// 64 items that all fit: each stream's coin flips are the selection.
	items := make([]uint64, 64)
	for i := range items {
		items[i] = 1
	}
	selection := func(seed int64) []ssp.State {
		inst := mustNew(t, items, 64)
		inst.SetAlgorithm(ssp.Random, ssp.WithSeed(seed))
		_, err := inst.Solve()
		assert.NoError(t, err)
		return inst.Inclusion()
	}

	assert.NotEqual(t, selection(ssp.DeriveSeed(1, 0)), selection(ssp.DeriveSeed(1, 1)))
}
