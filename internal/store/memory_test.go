package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	sess := solver.NewSession()
	if err := m.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, err := m.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != sess.ID {
		t.Errorf("ID = %q, want %q", got.ID, sess.ID)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSaveUpdates(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	sess := solver.NewSession()
	if err := m.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if err := sess.Record("crane", solver.AllHit); err != nil {
		t.Fatal(err)
	}
	if err := m.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, err := m.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.History) != 1 {
		t.Errorf("history len = %d, want 1", len(got.History))
	}
}
