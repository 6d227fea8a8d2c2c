// Package render turns match state into the text every front-end shows:
// the gallows drawing, the word line and the tried letters.
package render

import (
	"strings"

	"github.com/robalobadob/forca/internal/game"
)

// gallows holds one drawing per error count: head, body, arms, legs.
var gallows = [game.Stages]string{
	`
     +---+
     |   |
         |
         |
         |
         |
   =========
`,
	`
     +---+
     |   |
     O   |
         |
         |
         |
   =========
`,
	`
     +---+
     |   |
     O   |
     |   |
         |
         |
   =========
`,
	`
     +---+
     |   |
     O   |
    /|   |
         |
         |
   =========
`,
	`
     +---+
     |   |
     O   |
    /|\  |
         |
         |
   =========
`,
	`
     +---+
     |   |
     O   |
    /|\  |
    /    |
         |
   =========
`,
	`
     +---+
     |   |
     O   |
    /|\  |
    / \  |
         |
   =========
`,
}

// Gallows returns the drawing for stage, clamped to [0, game.MaxErrors].
func Gallows(stage int) string {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(gallows) {
		stage = len(gallows) - 1
	}
	return gallows[stage]
}

// Word joins revealed positions with single spaces ("_ A Ç _").
func Word(revealed []rune) string {
	parts := make([]string, len(revealed))
	for i, r := range revealed {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Tried lists guessed letters, or a dash when there are none.
func Tried(letters []string) string {
	if len(letters) == 0 {
		return "—"
	}
	return strings.Join(letters, " ")
}
