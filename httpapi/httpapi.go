// Package httpapi exposes the solver's session lifecycle over HTTP:
// create, observe, suggest (sync and a progressive SSE stream),
// candidates, reset. Routed with chi.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/session"
)

// Server bundles the chi router and the session Store it drives.
type Server struct {
	r     *chi.Mux
	store *session.Store
	log   *logging.Logger
}

// New constructs a Server wired to store, installing request-scoped
// middleware (request ID, panic recovery, a bounded per-request
// timeout) plus a JSON default content type.
func New(store *session.Store, log *logging.Logger) *Server {
	s := &Server{r: chi.NewRouter(), store: store, log: log}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", s.handleHealth)
	s.r.Post("/sessions", s.handleNewSession)
	s.r.Post("/sessions/{id}/observe", s.handleObserve)
	s.r.Get("/sessions/{id}/suggest", s.handleSuggest)
	s.r.Get("/sessions/{id}/suggest/stream", s.handleSuggestStream)
	s.r.Get("/sessions/{id}/candidates", s.handleCandidates)
	s.r.Post("/sessions/{id}/reset", s.handleReset)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the chi router, e.g. for httptest.
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, s.r)
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

type newSessionResp struct {
	SessionID string `json:"sessionId"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	id := s.store.NewSession()
	_ = json.NewEncoder(w).Encode(newSessionResp{SessionID: string(id)})
}

type observeReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

func (s *Server) handleObserve(w http.ResponseWriter, r *http.Request) {
	id := session.ID(chi.URLParam(r, "id"))

	var req observeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	if err := s.store.Observe(id, req.Guess, req.Pattern); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

type suggestResp struct {
	Status string `json:"status"` // "guess" | "solved"
	Word   string `json:"word,omitempty"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	id := session.ID(chi.URLParam(r, "id"))

	result, err := s.store.Suggest(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	resp := suggestResp{Status: "guess", Word: result.Word}
	if result.Status == session.StatusSolved {
		resp = suggestResp{Status: "solved"}
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleSuggestStream reports the surviving-candidate count over SSE
// before running the single-pass entropy scan, then emits the
// committed suggestion once scoring finishes.
func (s *Server) handleSuggestStream(w http.ResponseWriter, r *http.Request) {
	id := session.ID(chi.URLParam(r, "id"))
	streamLog := s.log.WithTag(string(id))

	sess, err := s.store.Get(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming_unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	streamLog.Info("suggestion stream opened")

	count, sample := sess.Candidates(5)
	data, _ := json.Marshal(map[string]any{
		"remainingAnswers": count,
		"sample":           sample,
	})
	fmt.Fprintf(w, "event: candidates\ndata: %s\n\n", data)
	flusher.Flush()

	result, err := sess.Suggest()
	if err != nil {
		streamLog.Warn("suggest failed mid-stream", "error", err.Error())
		fmt.Fprintf(w, "event: error\ndata: %q\n\n", err.Error())
		flusher.Flush()
		return
	}

	final := suggestResp{Status: "guess", Word: result.Word}
	if result.Status == session.StatusSolved {
		final = suggestResp{Status: "solved"}
	}
	finalData, _ := json.Marshal(final)
	fmt.Fprintf(w, "event: suggestion\ndata: %s\n\n", finalData)
	flusher.Flush()

	streamLog.Info("suggestion stream closed")
}

type candidatesResp struct {
	Count  int      `json:"count"`
	Sample []string `json:"sample"`
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	id := session.ID(chi.URLParam(r, "id"))

	count, sample, err := s.store.Candidates(id, 10)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(candidatesResp{Count: count, Sample: sample})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := session.ID(chi.URLParam(r, "id"))

	if err := s.store.Reset(id); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case isErr(err, session.ErrInvalidWord), isErr(err, session.ErrInvalidPattern):
		writeError(w, http.StatusBadRequest, "invalid_request")
	case isErr(err, session.ErrUnknownGuess):
		writeError(w, http.StatusUnprocessableEntity, "unknown_guess")
	case isErr(err, session.ErrInconsistent):
		writeError(w, http.StatusConflict, "inconsistent")
	case isErr(err, session.ErrNotInitialized):
		writeError(w, http.StatusNotFound, "not_initialized")
	case isErr(err, session.ErrMisconfigured):
		writeError(w, http.StatusInternalServerError, "misconfigured")
	default:
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

func isErr(err, target error) bool {
	for err != nil {
		if err == target {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
