// internal/simstore/store.go
//
// SQLite-backed store for completed simulation runs, so strategy
// comparisons survive restarts and users can list their run history.
// Histograms are stored as JSON text alongside the summary columns
// queries actually filter on.

package simstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Run is one persisted simulation run.
type Run struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Trials    int               `json:"trials"`
	MaxTurns  int               `json:"maxTurns"`
	Budget    int               `json:"budget"`
	Opening   string            `json:"opening,omitempty"`
	Seed      int64             `json:"seed"`
	AvgTurns  float64           `json:"avgTurns"`
	Losses    int               `json:"losses"`
	Histogram *solver.Histogram `json:"histogram,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Store wraps the DB handle for simulation_runs access.
type Store struct{ db *sql.DB }

// NewStore constructs a Store over an open database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert persists a completed run.
func (s *Store) Insert(ctx context.Context, r Run) error {
	hist, err := json.Marshal(r.Histogram)
	if err != nil {
		return fmt.Errorf("simstore: encode histogram: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO simulation_runs
            (id, user_id, trials, max_turns, budget, opening, seed, avg_turns, losses, histogram, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		r.ID, r.UserID, r.Trials, r.MaxTurns, r.Budget, r.Opening, r.Seed,
		r.AvgTurns, r.Losses, string(hist), r.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListByUser fetches a user's most recent runs, newest first.
// Default limit is 20 if not specified.
func (s *Store) ListByUser(ctx context.Context, userID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, user_id, trials, max_turns, budget, opening, seed, avg_turns, losses, histogram, created_at
        FROM simulation_runs
        WHERE user_id=?
        ORDER BY created_at DESC
        LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var hist, created string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Trials, &r.MaxTurns, &r.Budget,
			&r.Opening, &r.Seed, &r.AvgTurns, &r.Losses, &hist, &created); err != nil {
			return nil, err
		}
		if hist != "" && hist != "null" {
			var h solver.Histogram
			if err := json.Unmarshal([]byte(hist), &h); err == nil {
				r.Histogram = &h
			}
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}
