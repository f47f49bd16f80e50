// Package generator produces random subset-sum instances with a planted
// solution.
//
// Each instance has n items of exactly b bits (the largest item has bit
// length b) and a target equal to the sum of a random half of the items, so
// at least one subset always hits the target. Density is n/b.
//
// Sweep enumerates n over [startN, endN] in steps of 2 crossed with b over
// [startB, endB], matching the naming scheme <prefix>_<b>b_<n>n[_uniq].dat.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sumsolve/instancefile"
)

// Sentinel errors returned by the generator package.
var (
	// ErrOddSize indicates an odd item count (the planted half must be exact).
	ErrOddSize = errors.New("generator: item count must be even and positive")

	// ErrBadBitWidth indicates a bit width outside [1, MaxBits].
	ErrBadBitWidth = errors.New("generator: bit width out of range")

	// ErrBitWidthNotReached indicates that no draw produced an item of full width.
	ErrBitWidthNotReached = errors.New("generator: maximum item never reached the requested bit width")

	// ErrBadRange indicates an empty or inverted sweep range.
	ErrBadRange = errors.New("generator: invalid sweep range")

	// ErrTooLarge indicates that n items of b bits could total more than uint64 holds.
	ErrTooLarge = errors.New("generator: item total may overflow uint64")
)

const (
	// MaxBits bounds the item width; with it, up to 2^16 items always sum
	// within uint64 (see ErrTooLarge).
	MaxBits = 48

	// maxAttempts bounds the redraws needed to hit the requested bit width.
	maxAttempts = 50

	// DefaultPrefix is the file-name prefix used by the CLI.
	DefaultPrefix = "ss_inst"
)

// Instance is one generated problem.
type Instance struct {
	Items  []uint64
	Target uint64
	// Planted lists the indices whose items sum to Target.
	Planted []int
	Bits    int
	N       int
}

// Density returns n/b.
func (in Instance) Density() float64 {
	return float64(in.N) / float64(in.Bits)
}

// Generate draws one instance of n items of b bits.
//
// Complexity: O(n) expected time per attempt, at most maxAttempts attempts.
func Generate(n, b int, rng *rand.Rand) (Instance, error) {
	if n <= 0 || n%2 != 0 {
		return Instance{}, ErrOddSize
	}
	if b < 1 || b > MaxBits {
		return Instance{}, ErrBadBitWidth
	}
	if !totalFits(n, b) {
		return Instance{}, ErrTooLarge
	}

	var (
		items   = make([]uint64, n)
		limit   = uint64(1) << b
		attempt int
		i       int
		maxV    uint64
	)
	for attempt = 0; attempt < maxAttempts; attempt++ {
		maxV = 0
		for i = 0; i < n; i++ {
			items[i] = uint64(rng.Int63n(int64(limit)))
			maxV = max(maxV, items[i])
		}
		if bits.Len64(maxV) == b {
			break
		}
	}
	if bits.Len64(maxV) != b {
		return Instance{}, ErrBitWidthNotReached
	}

	planted := rng.Perm(n)[:n/2]
	var target uint64
	for _, i = range planted {
		target += items[i]
	}

	return Instance{Items: items, Target: target, Planted: planted, Bits: b, N: n}, nil
}

// totalFits reports whether n items below 2^b always sum within uint64.
func totalFits(n, b int) bool {
	return uint64(n) <= math.MaxUint64/(uint64(1)<<b-1)
}

// Spec is one (n, b) point of a sweep.
type Spec struct {
	N    int
	Bits int
}

// Sweep lists every (n, b) with n stepping by 2 from startN to endN and b
// stepping by 1 from startB to endB, n-major.
func Sweep(startN, endN, startB, endB int) ([]Spec, error) {
	if startN%2 != 0 || endN%2 != 0 || startN <= 0 {
		return nil, ErrOddSize
	}
	if startN > endN || startB > endB {
		return nil, ErrBadRange
	}
	if startB < 1 || endB > MaxBits {
		return nil, ErrBadBitWidth
	}
	if !totalFits(endN, endB) {
		return nil, ErrTooLarge
	}

	var out []Spec
	for n := startN; n <= endN; n += 2 {
		for b := startB; b <= endB; b++ {
			out = append(out, Spec{N: n, Bits: b})
		}
	}

	return out, nil
}

// FileName returns "<prefix>_<b>b_<n>n[_uniq].dat".
func FileName(in Instance, uniq, prefix string) string {
	if uniq != "" {
		uniq = "_" + uniq
	}

	return fmt.Sprintf("%s_%db_%dn%s.dat", prefix, in.Bits, in.N, uniq)
}

// WriteFile stores in under dir and returns the path.
func WriteFile(dir string, in Instance, uniq, prefix string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("generator: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(in, uniq, prefix))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("generator: create %s: %w", path, err)
	}
	if err = instancefile.Write(f, in.Items, in.Target); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("generator: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("generator: close %s: %w", path, err)
	}

	return path, nil
}

// DensityStats summarizes the densities of a set of instances.
type DensityStats struct {
	Min, Max, Avg float64
}

// Densities returns min/max/avg density; the zero value for no instances.
func Densities(ins []Instance) DensityStats {
	if len(ins) == 0 {
		return DensityStats{}
	}
	st := DensityStats{Min: ins[0].Density(), Max: ins[0].Density()}
	var total float64
	for _, in := range ins {
		d := in.Density()
		st.Min = min(st.Min, d)
		st.Max = max(st.Max, d)
		total += d
	}
	st.Avg = total / float64(len(ins))

	return st
}
