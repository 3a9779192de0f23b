// internal/solver/history.go
//
// Guess history for a game in progress.
// A History is an ordered list of (guess, response) records; each record
// narrows the candidate set further than the previous one.

package solver

import (
	"fmt"
	"strings"
)

// GuessRecord pairs a guess with the response it received.
type GuessRecord struct {
	Guess    string
	Response Response
}

// History is an ordered sequence of guess records.
type History []GuessRecord

// ParseHistory parses the transport form of a history: comma-separated
// "guess:tiles" entries, e.g. "crane:bbyyb,sloth:gybbb".
func ParseHistory(text string) (History, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var h History
	for _, part := range strings.Split(text, ",") {
		guess, tiles, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("solver: history entry %q is not guess:tiles", part)
		}
		guess = strings.ToLower(strings.TrimSpace(guess))
		if !isWord(guess) {
			return nil, fmt.Errorf("%w: history guess %q", ErrInvalidLength, guess)
		}
		r, err := ParseResponse(strings.TrimSpace(tiles))
		if err != nil {
			return nil, err
		}
		h = append(h, GuessRecord{Guess: guess, Response: r})
	}
	return h, nil
}

// HistoryAgainst reconstructs the history of a finished or in-progress
// game from its guess sequence, scoring each guess against the answer.
func HistoryAgainst(guesses []string, answer string) (History, error) {
	h := make(History, 0, len(guesses))
	for _, g := range guesses {
		r, err := Score(g, answer)
		if err != nil {
			return nil, err
		}
		h = append(h, GuessRecord{Guess: g, Response: r})
	}
	return h, nil
}

// String renders the transport form, the inverse of ParseHistory
// except that responses are shown as emoji tiles.
func (h History) String() string {
	parts := make([]string, len(h))
	for i, rec := range h {
		parts[i] = rec.Guess + ":" + rec.Response.String()
	}
	return strings.Join(parts, ",")
}
