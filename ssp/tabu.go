package ssp

// tabuList is the forbidden-move table of one tabu run: an n×n boolean
// matrix stored row-major. A ban is permanent for the run.
type tabuList struct {
	n    int
	bans []bool
}

// newTabuList allocates an all-false table for n items.
//
// Complexity: O(n²) space.
func newTabuList(n int) *tabuList {
	return &tabuList{n: n, bans: make([]bool, n*n)}
}

// banned reports whether the move (i, j) is forbidden.
func (t *tabuList) banned(i, j int) bool {
	return t.bans[i*t.n+j]
}

// ban forbids both (i, j) and (j, i).
func (t *tabuList) ban(i, j int) {
	t.bans[i*t.n+j] = true
	t.bans[j*t.n+i] = true
}
