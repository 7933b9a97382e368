package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/corvid-labs/wordlesolve/constraint"
	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

// filterCacheSize bounds the shared LRU cache's entry count: one entry
// per distinct compiled ConstraintSet.
const filterCacheSize = 2048

// ID identifies a Session within a Store.
type ID string

// Store is a plain constructor-built handle that owns its loaded word
// lists, with multiple Stores able to coexist. It holds every live
// Session, keyed by a generated uuid, the way an active-stream registry
// holds one entry per in-flight request but generalized from "one
// stream" to "one durable session per game".
type Store struct {
	lists  *wordlist.Lists
	strict bool
	log    *logging.Logger
	cache  *constraint.CachedFilter

	mu       sync.RWMutex
	sessions map[ID]*Session
}

// NewStore constructs a Store bound to lists. strict, when true, makes
// Observe reject guesses outside the GuessList with ErrUnknownGuess.
// Returns ErrNotInitialized if lists is nil or either list is empty.
func NewStore(lists *wordlist.Lists, strict bool, log *logging.Logger) (*Store, error) {
	if lists == nil || lists.Set == nil || len(lists.Answers) == 0 || len(lists.Guesses) == 0 {
		return nil, ErrNotInitialized
	}
	if log == nil {
		log = logging.New()
	}
	cache, err := constraint.NewCachedFilter(filterCacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{
		lists:    lists,
		strict:   strict,
		log:      log,
		cache:    cache,
		sessions: make(map[ID]*Session),
	}, nil
}

// NewSession creates a fresh, empty Session bound to the Store's loaded
// lists and returns its ID.
func (st *Store) NewSession() ID {
	id := ID(uuid.New().String())
	st.mu.Lock()
	st.sessions[id] = newSession(st.lists, st.strict, st.cache)
	st.mu.Unlock()
	st.log.WithTag(string(id)).Info("session created")
	return id
}

// Get returns the Session for id, or ErrNotInitialized if unknown.
func (st *Store) Get(id ID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotInitialized
	}
	return s, nil
}

// Drop removes a session from the Store, e.g. when a host-side game ends.
func (st *Store) Drop(id ID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Observe looks up id and records a (guess, pattern) observation.
func (st *Store) Observe(id ID, guess, pattern string) error {
	s, err := st.Get(id)
	if err != nil {
		return err
	}
	log := st.log.WithTag(string(id))
	if err := s.Observe(guess, pattern); err != nil {
		log.Warn("observe rejected", "guess", guess, "pattern", pattern, "error", err.Error())
		return err
	}
	log.Info("observed", "guess", guess, "pattern", pattern)
	return nil
}

// Suggest looks up id and returns its next suggestion.
func (st *Store) Suggest(id ID) (SuggestResult, error) {
	s, err := st.Get(id)
	if err != nil {
		return SuggestResult{}, err
	}
	result, err := s.Suggest()
	if err != nil {
		st.log.WithTag(string(id)).Warn("suggest failed", "error", err.Error())
		return SuggestResult{}, err
	}
	return result, nil
}

// Candidates looks up id and returns its diagnostic candidate sample.
func (st *Store) Candidates(id ID, n int) (count int, sample []string, err error) {
	s, err := st.Get(id)
	if err != nil {
		return 0, nil, err
	}
	count, sample = s.Candidates(n)
	return count, sample, nil
}

// Reset looks up id and clears its accumulated observations.
func (st *Store) Reset(id ID) error {
	s, err := st.Get(id)
	if err != nil {
		return err
	}
	s.Reset()
	st.log.WithTag(string(id)).Info("session reset")
	return nil
}
