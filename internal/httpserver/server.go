// internal/httpserver/server.go
//
// HTTP server for the browser version of the game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, logging).
//   - Static page: "/" and "/assets/*" from the embedded web files.
//   - Public endpoints: "/health", "GET /api/themes".
//   - Match endpoints (session cookie): /api/match/*, /api/daily.
//
// Notes:
//   - Every browser gets a session holding its own UsedSet and current match.
//   - A session is locked while a game action runs, and no store call is made
//     while holding that lock.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/assets"
	"github.com/robalobadob/forca/internal/config"
	"github.com/robalobadob/forca/internal/game"
	"github.com/robalobadob/forca/internal/selection"
	"github.com/robalobadob/forca/internal/store"
	"github.com/robalobadob/forca/internal/words"
)

// randomTheme is the theme value that asks the server to choose.
const randomTheme = "ALEATÓRIO"

// Server bundles router, session store, word bank and picker.
type Server struct {
	r      *chi.Mux
	store  store.Store
	bank   *words.Bank
	picker *selection.Picker
	cfg    config.Config
	now    func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(bank *words.Bank, st store.Store, picker *selection.Picker, cfg config.Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, bank: bank, picker: picker, cfg: cfg, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	// --- static page ---
	files := http.FileServer(http.FS(assets.Web()))
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, assets.Web(), "index.html")
	})
	s.r.Handle("/assets/*", http.StripPrefix("/assets/", files))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Use(corsFor(cfg.ClientOrigin))

		r.Get("/themes", s.handleThemes)
		r.Group(func(r chi.Router) {
			r.Use(s.withSession)
			r.Post("/match/new", s.handleNewMatch)
			r.Get("/match", s.handleGetMatch)
			r.Post("/match/letter", s.handleLetter)
			r.Post("/match/word", s.handleWord)
			r.Post("/match/hint", s.handleHint)
			s.mountDaily(r)
		})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// SweepLoop drops idle sessions every interval until ctx is done.
func (s *Server) SweepLoop(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.store.Sweep(ctx, s.now(), s.cfg.SessionTTL); n > 0 {
				log.Info().Int("removed", n).Int("live", s.store.Len()).Msg("idle sessions swept")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one log line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeGameError maps engine and selection errors to HTTP responses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "finished")
	case errors.Is(err, selection.ErrNoCandidates):
		writeError(w, http.StatusUnprocessableEntity, "no_candidates")
	default:
		log.Error().Err(err).Msg("unexpected game error")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}
