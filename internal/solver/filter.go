// internal/solver/filter.go
//
// Candidate filtering: narrow a word universe to the words consistent
// with every (guess, response) record in a history.

package solver

// Filter retains the words of universe for which every history record
// would have produced exactly the observed response. Relative order is
// preserved. An empty result means the history is contradictory; callers
// report that as ErrNoCandidates rather than a crash.
func Filter(universe []string, history History) []string {
	if len(history) == 0 {
		return universe
	}
	out := make([]string, 0, len(universe))
	for _, w := range universe {
		if consistent(w, history) {
			out = append(out, w)
		}
	}
	return out
}

// consistent reports whether w could be the answer given the history.
func consistent(w string, history History) bool {
	for _, rec := range history {
		r, err := Score(rec.Guess, w)
		if err != nil || r != rec.Response {
			return false
		}
	}
	return true
}
