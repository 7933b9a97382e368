// Package session implements SessionAPI: the façade a host application
// drives to create a session, record observed guesses, ask for the next
// suggestion, and inspect or reset solver state.
package session

import (
	"fmt"
	"sort"

	"github.com/corvid-labs/wordlesolve/constraint"
	"github.com/corvid-labs/wordlesolve/pattern"
	"github.com/corvid-labs/wordlesolve/solver"
	"github.com/corvid-labs/wordlesolve/word"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

// Observation is an immutable (guess, pattern) pair. Observations are
// append-only within a Session.
type Observation struct {
	Guess   word.Word
	Pattern pattern.Code
}

// SuggestStatus distinguishes a concrete guess from the Solved sentinel.
type SuggestStatus int

const (
	StatusGuess SuggestStatus = iota
	StatusSolved
)

// SuggestResult is suggest's boundary return value: either a guess word
// or the Solved sentinel.
type SuggestResult struct {
	Status SuggestStatus
	Word   string
}

// Session holds one game's accumulated Observations and compiled
// ConstraintSet. A Session is single-owner: callers must not invoke
// Observe/Reset concurrently with Suggest on the same Session;
// Candidates may run concurrently with other reads.
type Session struct {
	lists   *wordlist.Lists
	strict  bool
	cache   *constraint.CachedFilter
	history []Observation
	current *constraint.Set
}

func newSession(lists *wordlist.Lists, strict bool, cache *constraint.CachedFilter) *Session {
	return &Session{
		lists:   lists,
		strict:  strict,
		cache:   cache,
		current: constraint.New(),
	}
}

// Observe validates guess and pattern, then compiles the observation
// into the session's ConstraintSet. Observe is transactional: on
// ErrInconsistent the session is left exactly as it was. The new
// constraint state is built into a fresh value and only committed to
// s.current after it is known to be consistent.
func (s *Session) Observe(guessStr, patternStr string) error {
	guess, err := word.ParseWord(guessStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWord, err)
	}

	if s.strict {
		if _, ok := s.lists.Set.Lookup(guess); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownGuess, guess)
		}
	}

	code, err := pattern.Parse(patternStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	next, err := s.current.Observe(guess, code)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistent, err)
	}

	s.current = next
	s.history = append(s.history, Observation{Guess: guess, Pattern: code})
	return nil
}

// survivors returns the AnswerList indices still admitted by the
// session's compiled constraints, consulting the shared filter cache so
// repeated Candidates()/Suggest() calls between Observe()s don't rescan
// the full AnswerList.
func (s *Session) survivors() []word.Index {
	return s.cache.Filter(s.current, s.lists.Set, s.lists.Answers)
}

// Suggest returns the next recommended guess, or the Solved sentinel if
// the most recent observation was already the all-green pattern.
func (s *Session) Suggest() (SuggestResult, error) {
	if n := len(s.history); n > 0 && s.history[n-1].Pattern == pattern.AllGreen {
		return SuggestResult{Status: StatusSolved}, nil
	}

	answers := s.survivors()
	if len(answers) == 0 {
		return SuggestResult{}, ErrInconsistent
	}

	idx, err := solver.Select(s.lists.Set, s.lists.Guesses, answers, len(s.history) > 0)
	if err != nil {
		switch err {
		case solver.ErrNoCandidates:
			return SuggestResult{}, ErrInconsistent
		case solver.ErrMisconfigured:
			return SuggestResult{}, ErrMisconfigured
		default:
			return SuggestResult{}, err
		}
	}

	return SuggestResult{Status: StatusGuess, Word: s.lists.Set.At(idx).String()}, nil
}

// Candidates reports the number of surviving answers and up to n example
// words, sorted lexicographically for determinism.
func (s *Session) Candidates(n int) (count int, sample []string) {
	survivors := s.survivors()
	words := s.lists.Set.Words(survivors)
	strs := make([]string, len(words))
	for i, w := range words {
		strs[i] = w.String()
	}
	sort.Strings(strs)
	if n > len(strs) {
		n = len(strs)
	}
	return len(strs), strs[:n]
}

// Reset discards all Observations, returning the session to its initial
// empty ConstraintSet.
func (s *Session) Reset() {
	s.history = nil
	s.current = constraint.New()
}

// History returns a copy of the session's observation sequence, in the
// order they were recorded (textual order is preserved for auditing
// even though the underlying constraint compilation is commutative).
func (s *Session) History() []Observation {
	out := make([]Observation, len(s.history))
	copy(out, s.history)
	return out
}
