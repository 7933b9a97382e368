package session

import "errors"

// The closed error taxonomy callers match with errors.Is; none of
// these are retried internally.
var (
	// ErrInvalidWord: a guess is not five A-Z letters.
	ErrInvalidWord = errors.New("session: invalid word")

	// ErrUnknownGuess: a guess is not in the GuessList (strict mode only).
	ErrUnknownGuess = errors.New("session: unknown guess")

	// ErrInvalidPattern: a pattern is not five characters in {G,Y,X}.
	ErrInvalidPattern = errors.New("session: invalid pattern")

	// ErrInconsistent: observations contradict each other or rule out
	// every answer.
	ErrInconsistent = errors.New("session: inconsistent observations")

	// ErrNotInitialized: a suggestion was requested before lists were
	// loaded, or against an unknown session ID.
	ErrNotInitialized = errors.New("session: not initialized")

	// ErrMisconfigured: the GuessList is empty.
	ErrMisconfigured = errors.New("session: misconfigured, empty guess list")
)
