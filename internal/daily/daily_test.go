package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	// 23:30 in UTC+5 is still 18:30 UTC the same day
	loc := time.FixedZone("east", 5*3600)
	at := time.Date(2026, 8, 23, 23, 30, 0, 0, loc)
	if got := DateKey(at); got != "2026-08-23" {
		t.Errorf("DateKey = %q, want 2026-08-23", got)
	}
}

func TestAnswerIndexDeterministic(t *testing.T) {
	at := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	a := AnswerIndex(at, "salt", 127)
	b := AnswerIndex(at, "salt", 127)
	if a != b {
		t.Errorf("same inputs gave %d and %d", a, b)
	}
	if a < 0 || a >= 127 {
		t.Errorf("index %d out of range", a)
	}

	// same date later in the day maps to the same index
	later := at.Add(20 * time.Hour)
	if got := AnswerIndex(later, "salt", 127); got != a {
		t.Errorf("intraday drift: %d vs %d", got, a)
	}
}

func TestAnswerIndexDegenerateLengths(t *testing.T) {
	at := time.Now()
	if got := AnswerIndex(at, "salt", 0); got != 0 {
		t.Errorf("zero-length list: got %d", got)
	}
	if got := AnswerIndex(at, "salt", 1); got != 0 {
		t.Errorf("single-answer list: got %d", got)
	}
}

func TestSeedDeterministicAndNonNegative(t *testing.T) {
	at := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	a := Seed(at, "salt")
	b := Seed(at, "salt")
	if a != b {
		t.Errorf("same inputs gave %d and %d", a, b)
	}
	if a < 0 {
		t.Errorf("seed %d is negative", a)
	}
}
