// Package report formats solved subset-sum instances as plain-text reports
// and routes them to the console or to a folder.
//
// Layout:
//
//	Input: <name>
//	Target: <target>
//	Size: <size>
//	Initial: 0
//	Solved: YES|NO, <seconds> seconds, <sum>, <ratio>
//	Solution:          (YES only)
//	<item>             (one per included item, index order)
//
// Initial is a reserved field and is always 0. ratio is sum/target with ten
// decimals; it is reporting-only and loses precision for very large sums.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/sumsolve/ssp"
)

// Extension is the file extension of folder reports.
const Extension = ".out"

// Write renders the report of inst's current state to w.
func Write(w io.Writer, inst *ssp.Instance) error {
	var (
		sum    = inst.Sum()
		target = inst.Target()
		solved = sum == target
	)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Input: %s\n", inst.Name())
	fmt.Fprintf(bw, "Target: %d\n", target)
	fmt.Fprintf(bw, "Size: %d\n", inst.Size())
	fmt.Fprintf(bw, "Initial: %d\n", 0)
	fmt.Fprintf(bw, "Solved: %s, %d seconds, %d, %.10f\n",
		yesNo(solved), int64(inst.Elapsed()/time.Second), sum, Ratio(sum, target))
	if solved {
		fmt.Fprintln(bw, "Solution:")
		for _, v := range inst.Selected() {
			fmt.Fprintf(bw, "%d\n", v)
		}
	}

	return bw.Flush()
}

// Ratio returns sum/target as float64. A zero target yields 1 for a zero sum
// and 0 otherwise.
func Ratio(sum, target uint64) float64 {
	if target == 0 {
		if sum == 0 {
			return 1
		}
		return 0
	}

	return float64(sum) / float64(target)
}

// FileName returns "<name>_<label>.out".
func FileName(name, label string) string {
	return fmt.Sprintf("%s_%s%s", name, label, Extension)
}

// Destination sends reports to Dir when set, to Console otherwise.
type Destination struct {
	Dir     string
	Console io.Writer
}

// Emit writes the report of inst labelled with label (normally the
// algorithm name). It returns the file path, or "" for console output.
func (d Destination) Emit(inst *ssp.Instance, label string) (string, error) {
	if d.Dir == "" {
		out := d.Console
		if out == nil {
			out = os.Stdout
		}
		return "", Write(out, inst)
	}

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create %s: %w", d.Dir, err)
	}
	path := filepath.Join(d.Dir, FileName(inst.Name(), label))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create %s: %w", path, err)
	}
	if err = Write(f, inst); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("report: close %s: %w", path, err)
	}

	return path, nil
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}

	return "NO"
}
