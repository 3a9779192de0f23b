// internal/solver/assess.go
//
// Human-readable assessment of a game in progress.
// Composes Filter + Select into a report: remaining candidate count,
// top-ranked next guesses with scores, and an explicit solved indicator
// when exactly one candidate remains.

package solver

import (
	"fmt"
	"strings"
)

// DefaultTopN is how many ranked guesses a report shows by default.
const DefaultTopN = 10

// Report is the result of assessing a history against the lexicon.
type Report struct {
	CandidateCount int      `json:"candidateCount"`
	Candidates     []string `json:"candidates,omitempty"` // listed only when few remain
	Ranked         []Ranked `json:"ranked,omitempty"`
	ScoredCount    int      `json:"scoredCount"` // pool words fully scored (≤ budget)
	PoolSize       int      `json:"poolSize"`
	Solved         bool     `json:"solved"`
	NoCandidates   bool     `json:"noCandidates"`
}

// listCandidatesMax bounds how many remaining candidates a report lists.
const listCandidatesMax = 16

// Assess filters answers by history and ranks next guesses from pool.
// A contradictory history is reported (NoCandidates), not returned as an
// error; only malformed input errors surface.
func Assess(history History, answers, pool []string, budget, topN int, table StrategyTable) (*Report, error) {
	left := Filter(answers, history)

	rep := &Report{
		CandidateCount: len(left),
		PoolSize:       len(pool),
	}
	if len(left) <= listCandidatesMax {
		rep.Candidates = left
	}

	switch len(left) {
	case 0:
		rep.NoCandidates = true
		return rep, nil
	case 1:
		rep.Solved = true
		rep.Ranked = []Ranked{{Guess: left[0], Score: 0, InCandidates: true}}
		rep.ScoredCount = 0
		return rep, nil
	}

	ranked, err := Select(pool, left, budget, table)
	if err != nil {
		return nil, err
	}
	rep.ScoredCount = len(ranked)
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	rep.Ranked = ranked
	return rep, nil
}

// String renders the plain-text form served to transports.
func (r *Report) String() string {
	var sb strings.Builder

	switch {
	case r.NoCandidates:
		sb.WriteString("no consistent words remain\n")
		return sb.String()
	case r.Solved:
		fmt.Fprintf(&sb, "solved: %s\n", r.Ranked[0].Guess)
		return sb.String()
	}

	fmt.Fprintf(&sb, "%d candidates remain", r.CandidateCount)
	if len(r.Candidates) > 0 {
		fmt.Fprintf(&sb, ": %s", strings.Join(r.Candidates, " "))
	}
	sb.WriteString("\n")

	for i, g := range r.Ranked {
		mark := " "
		if g.InCandidates {
			mark = "*"
		}
		fmt.Fprintf(&sb, "%2d) %s %s  %.3f\n", i+1, mark, g.Guess, g.Score)
	}
	if r.ScoredCount < r.PoolSize {
		fmt.Fprintf(&sb, "(scored %d of %d guesses)\n", r.ScoredCount, r.PoolSize)
	}
	return sb.String()
}

// AssessGame replays a game whose final element is the answer and whose
// earlier elements are the guesses actually played, reporting each
// turn's response and remaining candidate count, then an assessment of
// the next move. Passing only the answer yields the opening
// recommendation. This matches the transport's comma-separated guess
// form.
func AssessGame(guesses []string, answers, pool []string, budget, topN int, table StrategyTable) (string, error) {
	if len(guesses) == 0 {
		return "", fmt.Errorf("solver: must provide one or more guesses")
	}
	answer := guesses[len(guesses)-1]
	if !isWord(answer) {
		return "", fmt.Errorf("%w: answer %q", ErrInvalidLength, answer)
	}
	if !containsWord(answers, answer) {
		return "", fmt.Errorf("solver: %q is not a known answer", answer)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s ===\n", strings.ToUpper(answer))

	left := answers
	var history History
	for turn, guess := range guesses[:len(guesses)-1] {
		r, err := Score(guess, answer)
		if err != nil {
			return "", err
		}
		history = append(history, GuessRecord{Guess: guess, Response: r})
		left = Filter(left, History{history[len(history)-1]})
		fmt.Fprintf(&sb, "%d) %s: %s -> %d\n", turn+1, guess, r, len(left))
		if guess == answer {
			return sb.String(), nil
		}
	}

	rep, err := Assess(history, answers, pool, budget, topN, table)
	if err != nil {
		return "", err
	}
	sb.WriteString("\n")
	sb.WriteString(rep.String())
	return sb.String(), nil
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
