package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	authSqlite "gcal-relay/internal/auth/repository/sqlite"
	"gcal-relay/internal/event"
	"gcal-relay/internal/httpserver"
	"gcal-relay/pkg/gauth"
	"gcal-relay/pkg/gcalendar"
	"gcal-relay/pkg/log"
	pkgSqlite "gcal-relay/pkg/sqlite"
)

type fakeExchanger struct{}

func (fakeExchanger) Exchange(ctx context.Context, code string) (gauth.Identity, *oauth2.Token, error) {
	return gauth.Identity{UID: "sub-" + code, Email: code + "@example.com"}, &oauth2.Token{
		AccessToken:  "access-" + code,
		RefreshToken: "refresh-" + code,
		Expiry:       time.Now().Add(time.Hour),
	}, nil
}

// fakeGoogle answers the few Calendar API calls the relay makes and records them.
type fakeGoogle struct {
	mu    sync.Mutex
	calls []string
}

func (g *fakeGoogle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	g.calls = append(g.calls, r.Method+" "+r.URL.Path)
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/calendar/v3/users/me/calendarList":
		io.WriteString(w, `{"items": [
			{"id": "foo@bar.com", "accessRole": "owner", "summary": "Jane"},
			{"id": "holidays", "accessRole": "reader"}
		]}`)
	case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/foo@bar.com/events":
		io.WriteString(w, `{"items": [{"id": "e1", "summary": "Standup"}]}`)
	case r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/foo@bar.com/events":
		io.WriteString(w, `{"id": "new-1"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": {"code": 404, "message": "Not Found"}}`)
	}
}

func (g *fakeGoogle) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func newTestServer(t *testing.T) (http.Handler, *fakeGoogle) {
	t.Helper()

	db, err := pkgSqlite.Open(filepath.Join(t.TempDir(), "relay.db"), authSqlite.Schema)
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	google := &fakeGoogle{}
	ts := httptest.NewServer(google)
	t.Cleanup(ts.Close)

	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Port:          8080,
		Mode:          "test",
		Environment:   "development",
		AllowedOrigin: "http://localhost:5173",
		DB:            db,
		Gateway:       gcalendar.New(option.WithEndpoint(ts.URL + "/calendar/v3/")),
		Exchanger:     fakeExchanger{},
		OAuthClient: event.OAuthClient{
			ClientID:     "cid",
			ClientSecret: "secret",
			TokenURI:     ts.URL + "/token",
		},
	})
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	return srv.Handler(), google
}

func serve(h http.Handler, method, target, body, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set("Authorization", "Token "+key)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEndToEnd(t *testing.T) {
	h, google := newTestServer(t)

	w := serve(h, http.MethodPost, "/login/", `{"code":"jane"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d (body %s)", w.Code, w.Body.String())
	}
	var login struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Key == "" {
		t.Fatalf("login body = %s", w.Body.String())
	}

	w = serve(h, http.MethodGet, "/events/", "", login.Key)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d (body %s)", w.Code, w.Body.String())
	}
	var list struct {
		Events    []map[string]any `json:"events"`
		Calendars []map[string]any `json:"calendars"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Calendars) != 1 || list.Calendars[0]["id"] != "foo@bar.com" {
		t.Errorf("calendars = %v", list.Calendars)
	}
	if len(list.Events) != 1 || list.Events[0]["calendarId"] != "foo@bar.com" || list.Events[0]["id"] != "e1" {
		t.Errorf("events = %v", list.Events)
	}

	w = serve(h, http.MethodPost, "/events/foo%40bar.com/create/", `{"summary":"Lunch"}`, login.Key)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}

	w = serve(h, http.MethodDelete, "/events/foo%40bar.com/missing/delete/", "", login.Key)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("delete status = %d, want 500 (body %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Not Found") {
		t.Errorf("delete body should carry the remote message: %s", w.Body.String())
	}

	calls := google.Calls()
	want := []string{
		"GET /calendar/v3/users/me/calendarList",
		"GET /calendar/v3/calendars/foo@bar.com/events",
		"POST /calendar/v3/calendars/foo@bar.com/events",
		"DELETE /calendar/v3/calendars/foo@bar.com/events/missing",
	}
	if len(calls) != len(want) {
		t.Fatalf("google calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}

	w = serve(h, http.MethodPost, "/logout/", "", login.Key)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	w = serve(h, http.MethodGet, "/events/", "", login.Key)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("list after logout status = %d, want 401", w.Code)
	}
}

func TestSystemRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(h, http.MethodGet, path, "", "")
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
		}
	}

	// One gateway call so the request counter has a sample to expose.
	w := serve(h, http.MethodPost, "/login/", `{"code":"m"}`, "")
	var login struct {
		Key string `json:"key"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &login)
	serve(h, http.MethodGet, "/events/", "", login.Key)

	w = serve(h, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "gcal_relay_gateway_requests_total") {
		t.Error("/metrics does not expose the gateway counter")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test"}); err == nil {
		t.Fatal("New must reject a config without port, database and gateway")
	}
}
