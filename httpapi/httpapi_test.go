package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/session"
	"github.com/corvid-labs/wordlesolve/word"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	lists, err := wordlist.Load()
	if err != nil {
		t.Fatalf("loading word lists: %v", err)
	}
	store, err := session.NewStore(lists, false, logging.New())
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return New(store, logging.New())
}

func newSessionID(t *testing.T, s *Server) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp newSessionResp
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("expected non-empty sessionId")
	}
	return resp.SessionID
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestNewSessionAndSuggest(t *testing.T) {
	s := testServer(t)
	id := newSessionID(t, s)

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/suggest", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp suggestResp
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "guess" {
		t.Errorf("expected status guess, got %q", resp.Status)
	}
	if len(resp.Word) != word.Letters {
		t.Errorf("expected a %d-letter opening guess, got %q", word.Letters, resp.Word)
	}
}

func TestObserveRejectsInvalidWord(t *testing.T) {
	s := testServer(t)
	id := newSessionID(t, s)

	body, _ := json.Marshal(observeReq{Guess: "TOOLONG", Pattern: "GYXXG"})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/observe", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestObserveUnknownSession(t *testing.T) {
	s := testServer(t)

	body, _ := json.Marshal(observeReq{Guess: "CRANE", Pattern: "XXXXX"})
	req := httptest.NewRequest(http.MethodPost, "/sessions/does-not-exist/observe", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestObserveThenCandidatesNarrows(t *testing.T) {
	s := testServer(t)
	id := newSessionID(t, s)

	before := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/candidates", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, before)
	var beforeResp candidatesResp
	_ = json.NewDecoder(w.Body).Decode(&beforeResp)

	body, _ := json.Marshal(observeReq{Guess: "CRANE", Pattern: "XXXXX"})
	obs := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/observe", bytes.NewReader(body))
	w2 := httptest.NewRecorder()
	s.Router().ServeHTTP(w2, obs)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected observe to succeed, got %d: %s", w2.Code, w2.Body.String())
	}

	after := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/candidates", nil)
	w3 := httptest.NewRecorder()
	s.Router().ServeHTTP(w3, after)
	var afterResp candidatesResp
	_ = json.NewDecoder(w3.Body).Decode(&afterResp)

	if afterResp.Count > beforeResp.Count {
		t.Errorf("expected candidate count to not increase after a constraining observation: before=%d after=%d", beforeResp.Count, afterResp.Count)
	}
}

func TestResetRestoresFullCandidateCount(t *testing.T) {
	s := testServer(t)
	id := newSessionID(t, s)

	body, _ := json.Marshal(observeReq{Guess: "CRANE", Pattern: "XXXXX"})
	obs := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/observe", bytes.NewReader(body))
	s.Router().ServeHTTP(httptest.NewRecorder(), obs)

	resetReq := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/reset", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, resetReq)
	if w.Code != http.StatusOK {
		t.Fatalf("expected reset to succeed, got %d", w.Code)
	}

	candReq := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/candidates", nil)
	w2 := httptest.NewRecorder()
	s.Router().ServeHTTP(w2, candReq)
	var resp candidatesResp
	_ = json.NewDecoder(w2.Body).Decode(&resp)
	if resp.Count == 0 {
		t.Error("expected candidate count to be restored after reset")
	}
}

func TestSuggestStreamEmitsCandidatesAndSuggestionEvents(t *testing.T) {
	s := testServer(t)
	id := newSessionID(t, s)

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/suggest/stream", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected text/event-stream, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "event: candidates") {
		t.Error("response missing 'event: candidates'")
	}
	if !strings.Contains(body, "event: suggestion") {
		t.Error("response missing 'event: suggestion'")
	}
}

func TestNotFoundRoute(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
