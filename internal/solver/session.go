// internal/solver/session.go
//
// A solve session accumulates the history of one game in progress so a
// client can submit observed (guess, response) pairs turn by turn and
// get a fresh assessment after each. Sessions hold no lexicon state;
// they are created per game and discarded when it ends.

package solver

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Session is one game's accumulated history.
type Session struct {
	ID        string
	History   History
	CreatedAt time.Time
}

// NewSession constructs an empty session with a random identifier.
func NewSession() *Session {
	return &Session{
		ID:        randomID(),
		CreatedAt: time.Now().UTC(),
	}
}

// Record validates and appends one observed guess and its response.
func (s *Session) Record(guess string, response Response) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if !isWord(guess) {
		return fmt.Errorf("%w: guess %q", ErrInvalidLength, guess)
	}
	s.History = append(s.History, GuessRecord{Guess: guess, Response: response})
	return nil
}

// Turn reports the 1-based turn number about to be played.
func (s *Session) Turn() int { return len(s.History) + 1 }

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
