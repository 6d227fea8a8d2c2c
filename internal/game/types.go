// internal/game/types.go
//
// Core type definitions for the hangman match engine.
// Defines:
//   - State: lifecycle of a match (playing → won | lost).
//   - Outcome: result of a single guess (hit / miss / repeated).
//   - Match: state for a single round.

package game

import "errors"

const (
	// MaxErrors is the number of wrong guesses that ends a round.
	MaxErrors = 6
	// HintThreshold is the error count at which the hint shows by itself.
	HintThreshold = 2
	// Stages is the number of gallows drawings, indexed by error count.
	Stages = MaxErrors + 1
	// Placeholder marks an unrevealed letter.
	Placeholder = '_'
)

// State is the coarse lifecycle of a match.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Outcome is the evaluation of a single guess.
type Outcome string

const (
	OutcomeHit      Outcome = "hit"
	OutcomeMiss     Outcome = "miss"
	OutcomeRepeated Outcome = "repeated"
)

var (
	// ErrInvalidGuess is returned when a letter guess is not exactly one letter.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrFinished is returned for any transition attempted after won/lost.
	ErrFinished = errors.New("match finished")
)

// Match holds the state of a single round.
type Match struct {
	ID            string              // Random hex identifier.
	Theme         string              // Theme of the chosen word.
	Level         string              // Difficulty tier of the chosen word.
	Hint          string              // Clue for the chosen word.
	Display       []rune              // Display form, uppercased.
	Target        string              // Normalized form used for matching.
	Revealed      []rune              // Placeholder or display rune per position.
	Tried         map[string]struct{} // Normalized letters already guessed.
	Errors        int                 // Wrong guesses so far, 0..MaxErrors.
	HintDisclosed bool                // Set once the hint was requested.
	State         State
}
