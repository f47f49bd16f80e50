// Package sumsolve is a toolkit for the subset-sum problem: given an ordered
// multiset of non-negative integers and a target, pick a subset whose total
// equals the target, or get as close as possible from below.
//
// 🚀 What is in the box?
//
//	• Instance model: items, target and an in-place inclusion vector
//	• Exact search: exhaustive binary-counter enumeration under a time budget
//	• Constructions: greedy and seeded random single-pass heuristics
//	• Local search: first-improvement 1-opt, plain or tabu-restricted
//	• Tooling: instance files, text reports, a planted-solution generator,
//	  a parallel batch runner and Prometheus textfile metrics
//
// Packages:
//
//	ssp/          - Instance, the five solvers, Options and sentinel errors
//	instancefile/ - "<size> <target>" + one item per line reader/writer
//	report/       - the "Input/Target/Size/Initial/Solved/Solution" report
//	generator/    - random instances of n items of b bits with a planted half
//	batch/        - named strategies, RunFile and the worker-pool Runner
//	config/       - defaults < YAML < SUMSOLVE_* env < flags
//	logger/       - structured logging for the CLI and batch runner
//	metrics/      - solve counters and histograms on a dedicated registry
//	cli/          - the sumsolve command (solve, batch, generate)
//
// Quick example:
//
//	items 3 5 7, target 10
//	greedy        → {3, 5}      sum 8
//	greedy + 1-opt: swap 5 → 7  sum 10 ✔
//
//	go install github.com/katalvlaran/sumsolve/cmd/sumsolve@latest
//	sumsolve solve ss_inst_8b_20n.dat 10 --algo tabu
package sumsolve
