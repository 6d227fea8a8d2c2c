package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/forca/internal/config"
	"github.com/robalobadob/forca/internal/daily"
	"github.com/robalobadob/forca/internal/game"
	"github.com/robalobadob/forca/internal/selection"
	"github.com/robalobadob/forca/internal/store"
	"github.com/robalobadob/forca/internal/words"
)

const testBank = `{"version":"1","language":"pt-BR","source":"test","words":[
  {"theme":"animais","displayForm":"GATO","level":"A","hint":"Miau."},
  {"theme":"animais","displayForm":"CÃO","level":"B","hint":"Au au."},
  {"theme":"frutas","displayForm":"MAÇÃ","level":"B","hint":"Vermelha."}
]}`

func TestMain(m *testing.M) {
	config.SetupLogging("error", io.Discard, false)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	bank, err := words.Parse([]byte(testBank))
	if err != nil {
		t.Fatal(err)
	}
	picker := &selection.Picker{Intn: func(int) int { return 0 }}
	return New(bank, store.NewMemoryStore(), picker, config.Defaults())
}

// client replays the session cookie like a browser would.
type client struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func newClient(t *testing.T, s *Server) *client {
	return &client{t: t, h: s.Router()}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) view(method, path, body string) matchView {
	c.t.Helper()
	rec := c.do(method, path, body)
	if rec.Code != http.StatusOK {
		c.t.Fatalf("%s %s: status %d, body %s", method, path, rec.Code, rec.Body.String())
	}
	var v matchView
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		c.t.Fatalf("decode view: %v", err)
	}
	return v
}

func (c *client) expectError(method, path, body string, status int, code string) {
	c.t.Helper()
	rec := c.do(method, path, body)
	if rec.Code != status {
		c.t.Fatalf("%s %s: status %d, want %d (body %s)", method, path, rec.Code, status, rec.Body.String())
	}
	var res map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&res)
	if res["error"] != code {
		c.t.Errorf("%s %s: error %q, want %q", method, path, res["error"], code)
	}
}

func TestHealthAndStatic(t *testing.T) {
	c := newClient(t, newTestServer(t))

	if rec := c.do("GET", "/health", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("health: %d %s", rec.Code, rec.Body.String())
	}
	rec := c.do("GET", "/", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Jogo da Forca") {
		t.Errorf("index: %d", rec.Code)
	}
	if rec := c.do("GET", "/assets/app.js", ""); rec.Code != http.StatusOK {
		t.Errorf("app.js: %d", rec.Code)
	}
	c.expectError("GET", "/nope", "", http.StatusNotFound, "not_found")
}

func TestThemes(t *testing.T) {
	c := newClient(t, newTestServer(t))
	rec := c.do("GET", "/api/themes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var res themesRes
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if strings.Join(res.Themes, ",") != "animais,frutas" {
		t.Errorf("themes = %v", res.Themes)
	}
	if strings.Join(res.Levels, ",") != "ALL,A,B,C" {
		t.Errorf("levels = %v", res.Levels)
	}
	if res.Random != randomTheme {
		t.Errorf("random = %q", res.Random)
	}
}

func TestPlayRoundByLetters(t *testing.T) {
	c := newClient(t, newTestServer(t))

	v := c.view("POST", "/api/match/new", `{"theme":"animais","level":"A"}`)
	if c.cookie == nil {
		t.Fatal("no session cookie set")
	}
	if strings.Join(v.Revealed, "") != "____" || v.State != game.StatePlaying || v.Hint != "" || v.Solution != "" {
		t.Fatalf("fresh view = %+v", v)
	}

	v = c.view("POST", "/api/match/letter", `{"letter":"g"}`)
	if v.Outcome != game.OutcomeHit || strings.Join(v.Revealed, "") != "G___" {
		t.Errorf("after g: %+v", v)
	}
	v = c.view("POST", "/api/match/letter", `{"letter":"x"}`)
	if v.Outcome != game.OutcomeMiss || v.Errors != 1 || v.Stage != 1 {
		t.Errorf("after x: %+v", v)
	}
	v = c.view("POST", "/api/match/letter", `{"letter":"G"}`)
	if v.Outcome != game.OutcomeRepeated || v.Errors != 1 {
		t.Errorf("repeat g: %+v", v)
	}
	for _, l := range []string{"a", "t", "o"} {
		v = c.view("POST", "/api/match/letter", `{"letter":"`+l+`"}`)
	}
	if v.State != game.StateWon || v.Solution != "GATO" {
		t.Errorf("final: %+v", v)
	}
	if strings.Join(v.Tried, "") != "AGOTX" {
		t.Errorf("tried = %v", v.Tried)
	}

	c.expectError("POST", "/api/match/letter", `{"letter":"e"}`, http.StatusConflict, "finished")
	c.expectError("POST", "/api/match/hint", "", http.StatusConflict, "finished")

	got := c.view("GET", "/api/match", "")
	if got.State != game.StateWon || got.ID != v.ID {
		t.Errorf("GET match = %+v", got)
	}
}

func TestLoseAndHintDisclosure(t *testing.T) {
	c := newClient(t, newTestServer(t))
	c.view("POST", "/api/match/new", `{"theme":"frutas"}`)

	v := c.view("POST", "/api/match/letter", `{"letter":"x"}`)
	if v.Hint != "" {
		t.Errorf("hint visible after 1 error: %q", v.Hint)
	}
	v = c.view("POST", "/api/match/letter", `{"letter":"y"}`)
	if v.Hint != "Vermelha." {
		t.Errorf("hint not visible after 2 errors: %q", v.Hint)
	}
	for _, l := range []string{"z", "w", "q", "k"} {
		v = c.view("POST", "/api/match/letter", `{"letter":"`+l+`"}`)
	}
	if v.State != game.StateLost || v.Stage != game.MaxErrors || v.Solution != "MAÇÃ" {
		t.Errorf("lost view = %+v", v)
	}
	if !strings.Contains(v.Gallows, "/ \\") {
		t.Errorf("gallows not complete:\n%s", v.Gallows)
	}
}

func TestHintRequest(t *testing.T) {
	c := newClient(t, newTestServer(t))
	c.view("POST", "/api/match/new", `{"theme":"animais","level":"A"}`)
	v := c.view("POST", "/api/match/hint", "")
	if v.Hint != "Miau." || v.Errors != 0 {
		t.Errorf("hint view = %+v", v)
	}
}

func TestWordGuess(t *testing.T) {
	c := newClient(t, newTestServer(t))
	c.view("POST", "/api/match/new", `{"theme":"frutas"}`)

	c.expectError("POST", "/api/match/word", `{"word":"  "}`, http.StatusBadRequest, "invalid_guess")
	c.expectError("POST", "/api/match/word", `{"word":"123"}`, http.StatusBadRequest, "invalid_guess")

	v := c.view("POST", "/api/match/word", `{"word":"pera"}`)
	if v.Outcome != game.OutcomeMiss || v.Errors != 1 {
		t.Errorf("wrong word: %+v", v)
	}
	v = c.view("POST", "/api/match/word", `{"word":"maca"}`)
	if v.State != game.StateWon || strings.Join(v.Revealed, "") != "MAÇÃ" {
		t.Errorf("right word: %+v", v)
	}
}

func TestRequestErrors(t *testing.T) {
	c := newClient(t, newTestServer(t))

	c.expectError("GET", "/api/match", "", http.StatusNotFound, "no_match")
	c.expectError("POST", "/api/match/letter", `{"letter":"a"}`, http.StatusNotFound, "no_match")
	c.expectError("POST", "/api/match/new", `{`, http.StatusBadRequest, "bad_json")
	c.expectError("POST", "/api/match/new", `{"theme":"planetas"}`, http.StatusBadRequest, "unknown_theme")
	c.expectError("POST", "/api/match/new", `{"theme":"animais","level":"Z"}`, http.StatusBadRequest, "invalid_level")
	c.expectError("POST", "/api/match/new", `{"theme":"frutas","level":"A"}`, http.StatusUnprocessableEntity, "no_candidates")

	c.view("POST", "/api/match/new", `{"theme":"animais"}`)
	c.expectError("POST", "/api/match/letter", `{"letter":"ab"}`, http.StatusBadRequest, "invalid_guess")
	c.expectError("POST", "/api/match/letter", `{"letter":"7"}`, http.StatusBadRequest, "invalid_guess")
	c.expectError("POST", "/api/match/letter", `nope`, http.StatusBadRequest, "bad_json")
}

func TestRandomThemeRequest(t *testing.T) {
	c := newClient(t, newTestServer(t))
	for _, body := range []string{"", `{}`, `{"theme":"ALEATÓRIO"}`} {
		c.cookie = nil
		v := c.view("POST", "/api/match/new", body)
		if v.Theme != "animais" {
			t.Errorf("body %q: theme %q", body, v.Theme)
		}
	}
}

func TestWordsDoNotRepeatPerSession(t *testing.T) {
	s := newTestServer(t)
	a, b := newClient(t, s), newClient(t, s)

	v := a.view("POST", "/api/match/new", `{"theme":"animais"}`)
	a.view("POST", "/api/match/word", `{"word":"gato"}`)
	v2 := a.view("POST", "/api/match/new", `{"theme":"animais"}`)
	if v.Theme != "animais" || len(v.Revealed) != 4 || len(v2.Revealed) != 3 {
		t.Fatalf("first=%v second=%v", v.Revealed, v2.Revealed)
	}
	// Pool exhausted: the theme resets and GATO comes back.
	v3 := a.view("POST", "/api/match/new", `{"theme":"animais"}`)
	if len(v3.Revealed) != 4 {
		t.Errorf("after reset got %v", v3.Revealed)
	}

	// Another browser has its own history.
	vb := b.view("POST", "/api/match/new", `{"theme":"animais"}`)
	if len(vb.Revealed) != 4 {
		t.Errorf("second session got %v", vb.Revealed)
	}
	if a.cookie.Value == b.cookie.Value {
		t.Error("sessions share a cookie")
	}
}

func TestInvalidCookieStartsNewSession(t *testing.T) {
	s := newTestServer(t)
	c := newClient(t, s)
	c.view("POST", "/api/match/new", `{"theme":"animais"}`)

	c.cookie = &http.Cookie{Name: sessionCookieName, Value: "garbage"}
	c.expectError("GET", "/api/match", "", http.StatusNotFound, "no_match")
	if c.cookie.Value == "garbage" {
		t.Error("no replacement cookie issued")
	}
	if s.store.Len() != 2 {
		t.Errorf("sessions = %d, want 2", s.store.Len())
	}
}

func TestDaily(t *testing.T) {
	s := newTestServer(t)
	fixed := time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	want, _ := daily.Pick(s.bank.All(), fixed, s.cfg.DailySalt)

	a, b := newClient(t, s), newClient(t, s)
	va := a.view("GET", "/api/daily", "")
	vb := b.view("GET", "/api/daily", "")
	if va.Date != "2024-05-17" || va.Theme != want.Theme || vb.Theme != want.Theme {
		t.Fatalf("daily views %+v / %+v, want theme %s", va, vb, want.Theme)
	}

	v := a.view("POST", "/api/match/word", `{"word":"`+want.DisplayForm+`"}`)
	if v.State != game.StateWon || v.Solution != want.DisplayForm {
		t.Errorf("daily guess: %+v", v)
	}
}

func TestCORSPreflight(t *testing.T) {
	c := newClient(t, newTestServer(t))
	rec := c.do("OPTIONS", "/api/match/new", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != config.Defaults().ClientOrigin {
		t.Errorf("allow-origin = %q", got)
	}
}
