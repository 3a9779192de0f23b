// internal/strategy/build.go
//
// Offline strategy-table construction.
// Partitions the answer list by the response each answer would give to a
// fixed opening guess, then records the selector's best next guess for
// every cluster that would otherwise need scoring at serve time.

package strategy

import (
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Build precomputes a table for the given lexicon and opening guess.
// Clusters of one or two answers are skipped: the selector already
// short-circuits singles, and scoring a pair is cheap.
func Build(answers, valid []string, opening string, budget int) (*Table, error) {
	if len(answers) == 0 {
		return nil, solver.ErrNoCandidates
	}

	t := &Table{version: Version, entries: make(map[key]string)}

	// The full answer set always opens with the opening guess.
	t.entries[key{first: alphaFirst(answers), count: len(answers)}] = opening

	clusters := make(map[solver.Response][]string, len(answers))
	for _, answer := range answers {
		r, err := solver.Score(opening, answer)
		if err != nil {
			return nil, fmt.Errorf("strategy: opening %q: %w", opening, err)
		}
		clusters[r] = append(clusters[r], answer)
	}

	for _, cluster := range clusters {
		if len(cluster) <= 2 {
			continue
		}
		ranked, err := solver.Select(valid, cluster, budget, nil)
		if err != nil {
			return nil, err
		}
		t.entries[key{first: alphaFirst(cluster), count: len(cluster)}] = ranked[0].Guess
	}
	return t, nil
}

func alphaFirst(words []string) string {
	first := words[0]
	for _, w := range words[1:] {
		if w < first {
			first = w
		}
	}
	return first
}
