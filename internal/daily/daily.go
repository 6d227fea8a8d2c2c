// Package daily picks the "palavra do dia": one word per UTC date, the same
// for every player, derived from HMAC(salt, YYYY-MM-DD).
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/forca/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the date of t.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Pick returns the record of the day. ok is false for an empty list.
func Pick(records []words.Record, t time.Time, salt string) (rec words.Record, ok bool) {
	if len(records) == 0 {
		return words.Record{}, false
	}
	return records[WordIndex(t, salt, len(records))], true
}
