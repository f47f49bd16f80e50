package generator_test

import (
	"math/bits"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumsolve/generator"
	"github.com/katalvlaran/sumsolve/instancefile"
	"github.com/katalvlaran/sumsolve/ssp"
)

func TestGenerate_PlantedHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, b := range []int{1, 4, 16, 32} {
		in, err := generator.Generate(10, b, rng)
		require.NoError(t, err)
		require.Len(t, in.Items, 10)
		require.Len(t, in.Planted, 5)

		var maxV, sum uint64
		seen := make(map[int]bool)
		for _, v := range in.Items {
			maxV = max(maxV, v)
		}
		for _, i := range in.Planted {
			require.False(t, seen[i], "planted index repeated")
			seen[i] = true
			sum += in.Items[i]
		}
		assert.Equal(t, b, bits.Len64(maxV))
		assert.Equal(t, in.Target, sum)
		assert.InDelta(t, 10.0/float64(b), in.Density(), 1e-12)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := generator.Generate(8, 12, rand.New(rand.NewSource(77)))
	require.NoError(t, err)
	b, err := generator.Generate(8, 12, rand.New(rand.NewSource(77)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := generator.Generate(3, 4, rng)
	require.ErrorIs(t, err, generator.ErrOddSize)
	_, err = generator.Generate(0, 4, rng)
	require.ErrorIs(t, err, generator.ErrOddSize)
	_, err = generator.Generate(2, 0, rng)
	require.ErrorIs(t, err, generator.ErrBadBitWidth)
	_, err = generator.Generate(2, generator.MaxBits+1, rng)
	require.ErrorIs(t, err, generator.ErrBadBitWidth)
	_, err = generator.Generate(1<<17, generator.MaxBits, rng)
	require.ErrorIs(t, err, generator.ErrTooLarge)
}

func TestSweep(t *testing.T) {
	specs, err := generator.Sweep(2, 6, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []generator.Spec{
		{N: 2, Bits: 1}, {N: 2, Bits: 2},
		{N: 4, Bits: 1}, {N: 4, Bits: 2},
		{N: 6, Bits: 1}, {N: 6, Bits: 2},
	}, specs)

	_, err = generator.Sweep(3, 6, 1, 2)
	require.ErrorIs(t, err, generator.ErrOddSize)
	_, err = generator.Sweep(6, 2, 1, 2)
	require.ErrorIs(t, err, generator.ErrBadRange)
	_, err = generator.Sweep(2, 2, 0, 2)
	require.ErrorIs(t, err, generator.ErrBadBitWidth)
	_, err = generator.Sweep(2, 1<<17, 47, generator.MaxBits)
	require.ErrorIs(t, err, generator.ErrTooLarge)

	specs, err = generator.Sweep(1<<16, 1<<16, generator.MaxBits, generator.MaxBits)
	require.NoError(t, err)
	assert.Len(t, specs, 1)
}

func TestFileName(t *testing.T) {
	in := generator.Instance{N: 20, Bits: 8}
	assert.Equal(t, "ss_inst_8b_20n.dat", generator.FileName(in, "", generator.DefaultPrefix))
	assert.Equal(t, "p_8b_20n_run2.dat", generator.FileName(in, "run2", "p"))
}

func TestWriteFile_SolvableByExhaustive(t *testing.T) {
	in, err := generator.Generate(12, 10, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	path, err := generator.WriteFile(t.TempDir(), in, "", generator.DefaultPrefix)
	require.NoError(t, err)
	assert.Equal(t, "ss_inst_10b_12n.dat", filepath.Base(path))

	inst, err := instancefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.Items, inst.Items())
	assert.Equal(t, in.Target, inst.Target())

	inst.SetAlgorithm(ssp.Exhaustive)
	res, err := inst.Solve()
	require.NoError(t, err)
	assert.Equal(t, ssp.Solved, res.Outcome)
}

func TestDensities(t *testing.T) {
	st := generator.Densities([]generator.Instance{
		{N: 2, Bits: 1}, {N: 4, Bits: 1}, {N: 2, Bits: 2},
	})
	assert.InDelta(t, 1.0, st.Min, 1e-12)
	assert.InDelta(t, 4.0, st.Max, 1e-12)
	assert.InDelta(t, 7.0/3.0, st.Avg, 1e-12)
	assert.Equal(t, generator.DensityStats{}, generator.Densities(nil))
}
