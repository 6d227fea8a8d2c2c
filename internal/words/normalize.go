// internal/words/normalize.go
//
// Accent- and case-insensitive matching form for words and guesses.
//
// Normalize decomposes to NFD, drops combining marks, uppercases and keeps
// only A–Z. It is used both when the bank is built and on every guess, so
// "maçã", "MACA" and "Ma-Ça" all compare equal.

package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the matching form of s. It never fails; empty in, empty out.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// transform.Chain keeps per-call state, so build a fresh chain each time.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToUpper(stripped) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsLetter reports whether r normalizes to exactly one A–Z letter.
// Letters outside that alphabet (and punctuation) count as non-letters.
func IsLetter(r rune) bool {
	return len(Normalize(string(r))) == 1
}
