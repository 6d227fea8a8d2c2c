// internal/words/words.go
//
// Word bank for the game.
//
// Responsibilities:
//   - Define the fixed-shape Record (theme, display form, level, hint).
//   - Parse the bank document and validate every entry at load time.
//   - Group records by theme, preserving file order within a theme.
//   - Load from a JSON file, a SQLite file, or the copy embedded in the binary.
//
// Bank document (JSON):
//   {
//     "version": "1.0.0", "language": "pt-BR", "source": "...",
//     "words": [ { "theme": "...", "displayForm": "...", "level": "A", "hint": "..." } ]
//   }
//
// Constraints:
//   • theme and displayForm are required.
//   • level defaults to "A"; hint defaults to "".
//   • normalizedForm is always recomputed from displayForm.
//   • A missing source or an empty word list is a *LoadError (fatal at startup).

package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/robalobadob/forca/assets"
)

// Level is a difficulty tier.
type Level string

const (
	LevelA   Level = "A"
	LevelB   Level = "B"
	LevelC   Level = "C"
	LevelAll Level = "ALL" // filter sentinel, never stored on a record
)

// Levels lists the stored tiers from easiest to hardest.
var Levels = []Level{LevelA, LevelB, LevelC}

// ParseLevel accepts A, B, C, ALL or TODOS in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return LevelA, nil
	case "B":
		return LevelB, nil
	case "C":
		return LevelC, nil
	case "ALL", "TODOS", "":
		return LevelAll, nil
	}
	return "", fmt.Errorf("words: unknown level %q", s)
}

var (
	// ErrBankMissing is returned when the bank source does not exist.
	ErrBankMissing = errors.New("word bank not found")
	// ErrBankEmpty is returned when the bank holds no words.
	ErrBankEmpty = errors.New("word bank is empty")
)

// LoadError reports a failure to build the bank from a source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Record is one immutable bank entry.
type Record struct {
	Theme          string `json:"theme"`
	DisplayForm    string `json:"displayForm"`
	NormalizedForm string `json:"normalizedForm"`
	Level          Level  `json:"level"`
	Hint           string `json:"hint,omitempty"`
}

// Key identifies a record for non-repetition purposes.
type Key struct {
	Theme       string
	DisplayForm string
}

// Key returns the (theme, display form) pair of r.
func (r Record) Key() Key { return Key{Theme: r.Theme, DisplayForm: r.DisplayForm} }

// Document is the on-disk shape of the bank.
type Document struct {
	Version  string   `json:"version"`
	Language string   `json:"language"`
	Source   string   `json:"source"`
	Words    []Record `json:"words"`
}

// Meta carries the document header.
type Meta struct {
	Version  string `json:"version"`
	Language string `json:"language"`
	Source   string `json:"source"`
}

// Bank is the read-only, theme-grouped word list.
type Bank struct {
	Meta    Meta
	all     []Record
	byTheme map[string][]Record
	themes  []string
}

// NewBank validates records and groups them by theme.
func NewBank(meta Meta, records []Record) (*Bank, error) {
	if len(records) == 0 {
		return nil, ErrBankEmpty
	}
	b := &Bank{Meta: meta, byTheme: make(map[string][]Record)}
	for i, rec := range records {
		clean, err := validate(rec)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, seen := b.byTheme[clean.Theme]; !seen {
			b.themes = append(b.themes, clean.Theme)
		}
		b.byTheme[clean.Theme] = append(b.byTheme[clean.Theme], clean)
		b.all = append(b.all, clean)
	}
	sort.Strings(b.themes)
	return b, nil
}

// validate fills defaults and rejects entries missing required fields.
func validate(rec Record) (Record, error) {
	rec.Theme = strings.TrimSpace(rec.Theme)
	rec.DisplayForm = strings.TrimSpace(rec.DisplayForm)
	if rec.Theme == "" {
		return rec, errors.New("missing theme")
	}
	if rec.DisplayForm == "" {
		return rec, errors.New("missing displayForm")
	}
	rec.NormalizedForm = Normalize(rec.DisplayForm)
	if rec.NormalizedForm == "" {
		return rec, fmt.Errorf("displayForm %q has no letters", rec.DisplayForm)
	}
	if rec.Level == "" {
		rec.Level = LevelA
	}
	lvl, err := ParseLevel(string(rec.Level))
	if err != nil || lvl == LevelAll {
		return rec, fmt.Errorf("displayForm %q: invalid level %q", rec.DisplayForm, rec.Level)
	}
	rec.Level = lvl
	rec.Hint = strings.TrimSpace(rec.Hint)
	return rec, nil
}

// Themes returns the theme names in sorted order.
func (b *Bank) Themes() []string {
	return append([]string(nil), b.themes...)
}

// Records returns the records of a theme in file order (nil if unknown).
func (b *Bank) Records(theme string) []Record {
	return append([]Record(nil), b.byTheme[theme]...)
}

// HasTheme reports whether theme exists in the bank.
func (b *Bank) HasTheme(theme string) bool {
	_, ok := b.byTheme[theme]
	return ok
}

// All returns every record in file order.
func (b *Bank) All() []Record {
	return append([]Record(nil), b.all...)
}

// Stats returns counts of loaded themes and records.
func (b *Bank) Stats() (themes int, records int) {
	return len(b.themes), len(b.all)
}

// Parse builds a bank from a JSON document.
func Parse(data []byte) (*Bank, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	return NewBank(Meta{Version: doc.Version, Language: doc.Language, Source: doc.Source}, doc.Words)
}

// Load reads the bank from path. Files ending in .db, .sqlite or .sqlite3 are
// opened as SQLite; anything else is parsed as JSON.
func Load(path string) (*Bank, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Source: path, Err: ErrBankMissing}
		}
		return nil, &LoadError{Source: path, Err: err}
	}

	var (
		b   *Bank
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		b, err = LoadSQLite(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			b, err = Parse(data)
		}
	}
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return b, nil
}

// LoadEmbedded builds the bank shipped inside the binary.
func LoadEmbedded() (*Bank, error) {
	b, err := Parse(assets.BankJSON())
	if err != nil {
		return nil, &LoadError{Source: "embedded", Err: err}
	}
	return b, nil
}

// LoadOrEmbedded loads path when set, else the embedded bank.
func LoadOrEmbedded(path string) (*Bank, error) {
	if path == "" {
		return LoadEmbedded()
	}
	return Load(path)
}
