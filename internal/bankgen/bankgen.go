// Package bankgen builds the curated word bank shipped with the game.
//
// The generated document is what assets/banco_palavras.json holds; the
// gerabanco command writes it, and optionally its SQLite form.
package bankgen

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/forca/internal/words"
)

// ExpectedTotal is the number of records the curated lists must produce.
const ExpectedTotal = 200

// Header of the generated document.
const (
	Version  = "1.0.0"
	Language = "pt-BR"
	Source   = "curadoria_interna"
)

// Theme is one final theme and the batches merged into it.
type Theme struct {
	Name    string
	Batches [][]string
}

// Build assembles the curated bank.
func Build() (words.Document, error) {
	return build(curated, ExpectedTotal, allowedRepeats)
}

func build(themes []Theme, expected int, repeats map[words.Key]bool) (words.Document, error) {
	doc := words.Document{Version: Version, Language: Language, Source: Source}
	seen := make(map[words.Key]bool)
	for _, th := range themes {
		for _, batch := range th.Batches {
			for _, w := range batch {
				rec := words.Record{
					Theme:          th.Name,
					DisplayForm:    strings.ToUpper(w),
					NormalizedForm: words.Normalize(w),
					Level:          DefineLevel(w),
					Hint:           DefaultHint(th.Name),
				}
				if rec.NormalizedForm == "" {
					return doc, fmt.Errorf("bankgen: %s/%q has no letters", th.Name, w)
				}
				if seen[rec.Key()] && !repeats[rec.Key()] {
					return doc, fmt.Errorf("bankgen: duplicate %s/%s", th.Name, rec.DisplayForm)
				}
				seen[rec.Key()] = true
				doc.Words = append(doc.Words, rec)
			}
		}
	}
	if len(doc.Words) != expected {
		return doc, fmt.Errorf("bankgen: got %d records, want %d", len(doc.Words), expected)
	}
	return doc, nil
}

// compound reports an accented letter, hyphen or space in the display form.
func compound(display string) bool {
	for _, r := range display {
		if (r >= 'À' && r <= 'ÿ') || r == '-' || r == ' ' {
			return true
		}
	}
	return false
}

// DefineLevel grades a word for six-year-olds. Plain words up to six letters
// are A; accents or compounds push a word to B, or C past six letters; long
// plain words are B.
func DefineLevel(display string) words.Level {
	n := len(words.Normalize(display))
	switch {
	case compound(display) && n <= 6:
		return words.LevelB
	case compound(display):
		return words.LevelC
	case n >= 7:
		return words.LevelB
	default:
		return words.LevelA
	}
}

// DefaultHint returns the generic clue for a theme.
func DefaultHint(theme string) string {
	switch strings.ToLower(theme) {
	case "animais":
		return "É um animal conhecido pelas crianças."
	case "frutas":
		return "É uma fruta gostosa e colorida."
	case "escola":
		return "Objeto ou ideia usada na escola."
	case "casa":
		return "Objeto comum que existe em casa."
	case "brinquedos":
		return "É um brinquedo para se divertir."
	case "natureza":
		return "Algo que vemos na natureza."
	case "cores":
		return "É uma cor."
	case "corpo":
		return "Parte do corpo."
	}
	return "Palavra do cotidiano infantil."
}

// Counts returns the number of records per theme.
func Counts(doc words.Document) map[string]int {
	out := make(map[string]int)
	for _, w := range doc.Words {
		out[w.Theme]++
	}
	return out
}

// Write encodes doc as indented JSON without escaping.
func Write(w io.Writer, doc words.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
