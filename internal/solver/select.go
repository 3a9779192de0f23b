// internal/solver/select.go
//
// Budget-bounded guess selection.
// Responsibilities:
//   - Rank pool words by entropy against the current candidate set.
//   - Short-circuit trivial candidate sets (0 or 1 members).
//   - Consult an optional precomputed strategy table before scoring.
//   - Stop scoring once the budget is exhausted; partial rankings are
//     still returned, never discarded.

package solver

import "sort"

// StrategyTable is a read-only lookup from a candidate-set key to a
// recommended guess, built offline by the simulator. A hit bypasses
// pool scoring entirely.
type StrategyTable interface {
	Lookup(candidates []string) (string, bool)
}

// Ranked is one scored guess in a selection result.
type Ranked struct {
	Guess        string  `json:"guess"`
	Score        float64 `json:"score"`
	InCandidates bool    `json:"inCandidates"`
}

// Select ranks next guesses from pool against the candidate set.
//
// The budget bounds the number of pool words fully scored; a budget of
// zero or less means the whole pool. Exhausting the budget is not an
// error: whatever was scored is sorted and returned. Ties are broken
// deterministically: higher score first, then guesses that are
// themselves candidates (they might win this turn), then lexicographic.
func Select(pool, candidates []string, budget int, table StrategyTable) ([]Ranked, error) {
	switch len(candidates) {
	case 0:
		return nil, ErrNoCandidates
	case 1:
		return []Ranked{{Guess: candidates[0], Score: 0, InCandidates: true}}, nil
	}

	inSet := make(map[string]bool, len(candidates))
	for _, w := range candidates {
		inSet[w] = true
	}

	if table != nil {
		if guess, ok := table.Lookup(candidates); ok {
			return []Ranked{{
				Guess:        guess,
				Score:        Entropy(guess, candidates),
				InCandidates: inSet[guess],
			}}, nil
		}
	}

	if budget <= 0 || budget > len(pool) {
		budget = len(pool)
	}

	ranked := make([]Ranked, 0, budget)
	for _, guess := range pool {
		if len(ranked) >= budget {
			break
		}
		ranked = append(ranked, Ranked{
			Guess:        guess,
			Score:        Entropy(guess, candidates),
			InCandidates: inSet[guess],
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].InCandidates != ranked[j].InCandidates {
			return ranked[i].InCandidates
		}
		return ranked[i].Guess < ranked[j].Guess
	})
	return ranked, nil
}
