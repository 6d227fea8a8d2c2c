// internal/selection/selection.go
//
// Word selection for a play session.
// Responsibilities:
//   - Filter a theme's records by difficulty level.
//   - Track which (theme, display form) pairs a session has already played.
//   - Pick uniformly among unplayed records, resetting a theme once it runs dry.
//
// Reset policy:
//   When every candidate has been played, the used entries of each theme in
//   the candidate pool are cleared and the whole pool becomes eligible again.
//   Other themes keep their history.

package selection

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/robalobadob/forca/internal/words"
)

// ErrNoCandidates is returned when the filtered pool is empty.
var ErrNoCandidates = errors.New("no words for this theme and level")

// FilterByLevel returns every record when level is words.LevelAll, else only
// those of the requested tier.
func FilterByLevel(records []words.Record, level words.Level) []words.Record {
	if level == words.LevelAll {
		return append([]words.Record(nil), records...)
	}
	var out []words.Record
	for _, r := range records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// UsedSet remembers the words a session has already been given.
// Not safe for concurrent use; callers serialise access per session.
type UsedSet struct {
	keys map[words.Key]struct{}
}

// NewUsedSet returns an empty set.
func NewUsedSet() *UsedSet {
	return &UsedSet{keys: make(map[words.Key]struct{})}
}

// Add marks rec as played.
func (u *UsedSet) Add(rec words.Record) { u.keys[rec.Key()] = struct{}{} }

// Has reports whether rec was played.
func (u *UsedSet) Has(rec words.Record) bool {
	_, ok := u.keys[rec.Key()]
	return ok
}

// Len is the number of played keys.
func (u *UsedSet) Len() int { return len(u.keys) }

// ResetTheme forgets every played key of theme.
func (u *UsedSet) ResetTheme(theme string) {
	for k := range u.keys {
		if k.Theme == theme {
			delete(u.keys, k)
		}
	}
}

// Clear forgets everything.
func (u *UsedSet) Clear() { clear(u.keys) }

// Picker draws words. Intn must return a uniform value in [0, n).
type Picker struct {
	Intn func(n int) int
}

// NewPicker returns a Picker backed by crypto/rand.
func NewPicker() *Picker {
	return &Picker{Intn: cryptoIntn}
}

// Pick chooses an unplayed record from candidates and marks it used.
func (p *Picker) Pick(candidates []words.Record, used *UsedSet) (words.Record, error) {
	if len(candidates) == 0 {
		return words.Record{}, ErrNoCandidates
	}

	eligible := make([]words.Record, 0, len(candidates))
	for _, c := range candidates {
		if !used.Has(c) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		reset := make(map[string]struct{})
		for _, c := range candidates {
			if _, done := reset[c.Theme]; !done {
				used.ResetTheme(c.Theme)
				reset[c.Theme] = struct{}{}
			}
		}
		eligible = append(eligible, candidates...)
	}

	rec := eligible[p.Intn(len(eligible))]
	used.Add(rec)
	return rec, nil
}

// RandomTheme picks one of themes ("" when there are none).
func (p *Picker) RandomTheme(themes []string) string {
	if len(themes) == 0 {
		return ""
	}
	return themes[p.Intn(len(themes))]
}

// cryptoIntn returns a cryptographically random int in [0, n).
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
