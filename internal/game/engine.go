// internal/game/engine.go
//
// Core engine for a single hangman round.
// Responsibilities:
//   - Start a round from a bank record with every letter hidden.
//   - Apply letter guesses, whole-word guesses and hint requests.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Matching goes through words.Normalize, so accents and case never matter.
//   - Non-letters (spaces, hyphens) start revealed.
//   - Every transition on a finished match returns ErrFinished and changes nothing.
//   - The engine does no I/O and draws no random numbers besides the match ID.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/robalobadob/forca/internal/words"
)

// New starts a round for rec.
func New(rec words.Record) *Match {
	display := []rune(strings.ToUpper(rec.DisplayForm))
	revealed := make([]rune, len(display))
	for i, r := range display {
		if words.IsLetter(r) {
			revealed[i] = Placeholder
		} else {
			revealed[i] = r
		}
	}
	return &Match{
		ID:       randomID(),
		Theme:    rec.Theme,
		Level:    string(rec.Level),
		Hint:     rec.Hint,
		Display:  display,
		Target:   words.Normalize(rec.DisplayForm),
		Revealed: revealed,
		Tried:    make(map[string]struct{}),
		State:    StatePlaying,
	}
}

// GuessLetter applies a single-letter guess.
//
// Rules:
//   - The normalized input must be exactly one letter (ErrInvalidGuess).
//   - A letter already tried returns OutcomeRepeated and changes nothing.
//   - A letter in the word reveals every matching position; no placeholder
//     left → won.
//   - Otherwise one error is counted; MaxErrors → lost.
func (m *Match) GuessLetter(ch string) (Outcome, error) {
	if m.Finished() {
		return "", ErrFinished
	}
	letter := words.Normalize(ch)
	if len(letter) != 1 {
		return "", ErrInvalidGuess
	}
	if _, seen := m.Tried[letter]; seen {
		return OutcomeRepeated, nil
	}
	m.Tried[letter] = struct{}{}

	if !strings.Contains(m.Target, letter) {
		m.miss()
		return OutcomeMiss, nil
	}
	for i, r := range m.Display {
		if words.Normalize(string(r)) == letter {
			m.Revealed[i] = r
		}
	}
	if m.Placeholders() == 0 {
		m.State = StateWon
	}
	return OutcomeHit, nil
}

// GuessWord applies a whole-word guess. An exact normalized match wins at
// once; anything else costs one error, same as a wrong letter.
func (m *Match) GuessWord(text string) (Outcome, error) {
	if m.Finished() {
		return "", ErrFinished
	}
	if words.Normalize(text) == m.Target {
		copy(m.Revealed, m.Display)
		m.State = StateWon
		return OutcomeHit, nil
	}
	m.miss()
	return OutcomeMiss, nil
}

// RequestHint discloses the hint. It is free and idempotent.
func (m *Match) RequestHint() error {
	if m.Finished() {
		return ErrFinished
	}
	m.HintDisclosed = true
	return nil
}

// miss counts one error and ends the round at MaxErrors.
func (m *Match) miss() {
	m.Errors++
	if m.Errors >= MaxErrors {
		m.Errors = MaxErrors
		m.State = StateLost
	}
}

// HintVisible reports whether the presentation layer should show the hint.
func (m *Match) HintVisible() bool {
	return m.HintDisclosed || m.Errors >= HintThreshold
}

// Stage is the gallows drawing index, 0 (empty) to MaxErrors (full figure).
func (m *Match) Stage() int { return m.Errors }

// Placeholders counts letters still hidden.
func (m *Match) Placeholders() int {
	n := 0
	for _, r := range m.Revealed {
		if r == Placeholder {
			n++
		}
	}
	return n
}

// TriedLetters returns the guessed letters in alphabetical order.
func (m *Match) TriedLetters() []string {
	out := make([]string, 0, len(m.Tried))
	for l := range m.Tried {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// RevealedStrings returns Revealed as one string per position.
func (m *Match) RevealedStrings() []string {
	out := make([]string, len(m.Revealed))
	for i, r := range m.Revealed {
		out[i] = string(r)
	}
	return out
}

// Finished reports whether the round is over.
func (m *Match) Finished() bool { return m.State != StatePlaying }

// Won reports whether the round ended in a win.
func (m *Match) Won() bool { return m.State == StateWon }

// Solution is the display form shown to the player when the round ends.
func (m *Match) Solution() string { return string(m.Display) }

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
