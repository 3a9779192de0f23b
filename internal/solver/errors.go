// internal/solver/errors.go
//
// Sentinel errors for the solver engine.
// Callers match with errors.Is; everything else is wrapped with %w.

package solver

import "errors"

var (
	// ErrInvalidLength is returned when a guess or answer is not exactly
	// WordLen letters. Validated input should never trigger it.
	ErrInvalidLength = errors.New("solver: invalid word length")

	// ErrNoCandidates is returned when a guess history is contradictory
	// and no answer remains consistent with it. It is a valid terminal
	// state ("no consistent words remain"), not a failure.
	ErrNoCandidates = errors.New("solver: no candidates remain")
)
