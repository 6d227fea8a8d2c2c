// internal/httpserver/routes_match.go
//
// Match endpoints. All of them run inside withSession:
//   - GET  /api/themes        → themes and levels for the selectors
//   - POST /api/match/new     → pick a word for {theme, level} and start a round
//   - GET  /api/match         → current round
//   - POST /api/match/letter  → {letter}
//   - POST /api/match/word    → {word}
//   - POST /api/match/hint    → disclose the hint
//
// Every round endpoint answers with a matchView.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/game"
	"github.com/robalobadob/forca/internal/render"
	"github.com/robalobadob/forca/internal/selection"
	"github.com/robalobadob/forca/internal/words"
)

// matchView is what the browser renders after every action.
type matchView struct {
	ID        string       `json:"id"`
	Theme     string       `json:"theme"`
	Level     string       `json:"level"`
	Revealed  []string     `json:"revealed"`
	Tried     []string     `json:"tried"`
	Errors    int          `json:"errors"`
	MaxErrors int          `json:"maxErrors"`
	Stage     int          `json:"stage"`
	Gallows   string       `json:"gallows"`
	Hint      string       `json:"hint,omitempty"`     // only when visible
	State     game.State   `json:"state"`
	Outcome   game.Outcome `json:"outcome,omitempty"`  // last action
	Solution  string       `json:"solution,omitempty"` // only when finished
	Date      string       `json:"date,omitempty"`     // word of the day only
}

func viewOf(m *game.Match, out game.Outcome) matchView {
	v := matchView{
		ID:        m.ID,
		Theme:     m.Theme,
		Level:     m.Level,
		Revealed:  m.RevealedStrings(),
		Tried:     m.TriedLetters(),
		Errors:    m.Errors,
		MaxErrors: game.MaxErrors,
		Stage:     m.Stage(),
		Gallows:   render.Gallows(m.Stage()),
		State:     m.State,
		Outcome:   out,
	}
	if m.HintVisible() {
		v.Hint = m.Hint
	}
	if m.Finished() {
		v.Solution = m.Solution()
	}
	return v
}

// themesRes is returned by GET /api/themes.
type themesRes struct {
	Themes []string `json:"themes"`
	Levels []string `json:"levels"`
	Random string   `json:"random"`
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	levels := []string{string(words.LevelAll)}
	for _, l := range words.Levels {
		levels = append(levels, string(l))
	}
	writeJSON(w, http.StatusOK, themesRes{Themes: s.bank.Themes(), Levels: levels, Random: randomTheme})
}

// newMatchReq is the payload of POST /api/match/new.
type newMatchReq struct {
	Theme string `json:"theme"` // "" or "ALEATÓRIO" → random theme
	Level string `json:"level"` // A | B | C | ALL (default ALL)
}

// handleNewMatch picks an unplayed word for the session and starts a round.
func (s *Server) handleNewMatch(w http.ResponseWriter, r *http.Request) {
	var req newMatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	theme := req.Theme
	if theme == "" || theme == randomTheme {
		theme = s.picker.RandomTheme(s.bank.Themes())
	}
	if !s.bank.HasTheme(theme) {
		writeError(w, http.StatusBadRequest, "unknown_theme")
		return
	}
	level, err := words.ParseLevel(req.Level)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_level")
		return
	}

	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()
	sess.LastSeen = s.now()

	rec, err := s.picker.Pick(selection.FilterByLevel(s.bank.Records(theme), level), sess.Used)
	if err != nil {
		writeGameError(w, err)
		return
	}
	sess.Match = game.New(rec)
	log.Debug().Str("session", sess.ID).Str("match", sess.Match.ID).Str("theme", theme).
		Str("level", string(level)).Msg("match started")

	writeJSON(w, http.StatusOK, viewOf(sess.Match, ""))
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	s.withMatch(w, r, func(m *game.Match) (game.Outcome, error) { return "", nil })
}

// letterReq is the payload of POST /api/match/letter.
type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.withMatch(w, r, func(m *game.Match) (game.Outcome, error) { return m.GuessLetter(req.Letter) })
}

// wordReq is the payload of POST /api/match/word.
type wordReq struct {
	Word string `json:"word"`
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if words.Normalize(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}
	s.withMatch(w, r, func(m *game.Match) (game.Outcome, error) { return m.GuessWord(req.Word) })
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	s.withMatch(w, r, func(m *game.Match) (game.Outcome, error) { return "", m.RequestHint() })
}

// withMatch runs action on the session's current match under the session
// lock and writes the resulting view.
func (s *Server) withMatch(w http.ResponseWriter, r *http.Request, action func(*game.Match) (game.Outcome, error)) {
	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()
	sess.LastSeen = s.now()

	if sess.Match == nil {
		writeError(w, http.StatusNotFound, "no_match")
		return
	}
	out, err := action(sess.Match)
	if err != nil {
		writeGameError(w, err)
		return
	}
	if sess.Match.Finished() && out != "" && out != game.OutcomeRepeated {
		log.Info().Str("match", sess.Match.ID).Str("state", string(sess.Match.State)).
			Int("errors", sess.Match.Errors).Msg("match finished")
	}
	writeJSON(w, http.StatusOK, viewOf(sess.Match, out))
}
