// internal/daily/daily.go
//
// Deterministic daily benchmark selection. Every deployment sharing a
// salt agrees on the same benchmark answer for a given UTC date, so
// simulation results are comparable across instances.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AnswerIndex returns a deterministic index for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) mod answersLen.
func AnswerIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Seed derives a stable simulation seed for a date, so a daily
// benchmark run is reproducible without recording the seed.
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte("seed:" + DateKey(date)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}
