// internal/solver/score.go
//
// Information-gain scoring for candidate guesses.
// A guess that splits the remaining candidates into many small, even
// partitions maximizes expected information and minimizes the expected
// remaining search space.

package solver

import "math"

// Entropy scores a guess against a candidate set: candidates are
// partitioned by the response each would produce, and the partition
// entropy Σ −(k/n)·log2(k/n) is returned. Higher is better. A guess that
// leaves every candidate in one partition scores zero.
//
// Cost is O(|candidates|); this is the dominant cost center and the
// reason guess selection carries a budget.
func Entropy(guess string, candidates []string) float64 {
	if len(candidates) < 2 {
		return 0
	}

	counts := make(map[Response]int, len(candidates))
	for _, answer := range candidates {
		r, err := Score(guess, answer)
		if err != nil {
			continue
		}
		counts[r]++
	}

	n := float64(len(candidates))
	var entropy float64
	for _, k := range counts {
		p := float64(k) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}
