// internal/httpserver/routes_daily.go
//
// "Palavra do dia": GET /api/daily starts a round with the word of the
// current UTC date. Every player gets the same word on the same day; it is
// not recorded in the session's UsedSet.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/daily"
	"github.com/robalobadob/forca/internal/game"
)

// dailyServer wraps dependencies for the daily endpoint.
type dailyServer struct {
	srv  *Server
	salt string
}

// mountDaily registers the daily route on r.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, salt: s.cfg.DailySalt}
	r.Get("/daily", dd.handleDaily)
}

// handleDaily replaces the session's current round with today's word.
func (d *dailyServer) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := d.srv.now()
	rec, ok := daily.Pick(d.srv.bank.All(), now, d.salt)
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "empty_bank")
		return
	}

	sess := sessionFrom(r.Context())
	sess.Lock()
	defer sess.Unlock()
	sess.LastSeen = now
	sess.Match = game.New(rec)
	log.Debug().Str("session", sess.ID).Str("date", daily.DateKey(now)).Msg("daily match started")

	v := viewOf(sess.Match, "")
	v.Date = daily.DateKey(now)
	writeJSON(w, http.StatusOK, v)
}
