package ssp

import "time"

// SetClock replaces the clock consulted by the time budget.
func SetClock(inst *Instance, now func() time.Time) {
	inst.now = now
}

// Increment exposes the binary-counter step of the exhaustive solver.
var Increment = increment
