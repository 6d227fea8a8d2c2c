package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/store"
)

const sessionCookieName = "forca_session"

// ctxSessionKey is the context key type for storing *store.Session.
type ctxSessionKey struct{}

// sessionFrom returns the session installed by withSession.
func sessionFrom(ctx context.Context) *store.Session {
	s, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return s
}

// withSession resolves the session cookie to a stored session, creating a
// new session (and cookie) when the token is missing, invalid or expired.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *store.Session
		if id := s.parseSessionCookie(r); id != "" {
			sess, _ = s.store.Get(r.Context(), id)
		}
		if sess == nil {
			now := s.now()
			sess = store.NewSession(genID(), now)
			if err := s.store.Save(r.Context(), sess); err != nil {
				log.Error().Err(err).Msg("save session")
				writeError(w, http.StatusInternalServerError, "save_failed")
				return
			}
			tok, exp, err := s.signSession(sess.ID, now)
			if err != nil {
				log.Error().Err(err).Msg("sign session")
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
			setSessionCookie(w, r, tok, exp)
			log.Debug().Str("session", sess.ID).Msg("session created")
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// signSession creates an HS256 JWT carrying the session id, valid for the
// configured session TTL.
func (s *Server) signSession(id string, now time.Time) (string, time.Time, error) {
	exp := now.Add(s.cfg.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseSessionCookie returns the session id of a valid cookie, or "".
func (s *Server) parseSessionCookie(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return ""
	}
	id, _ := claims["sid"].(string)
	return id
}

// setSessionCookie writes the session cookie; Secure follows the request's TLS.
func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
