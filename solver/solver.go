// Package solver implements Selector: combining EntropyScorer output with
// tie-breaks and endgame/opening shortcuts to pick the next guess.
package solver

import (
	"errors"
	"sort"

	"github.com/corvid-labs/wordlesolve/entropy"
	"github.com/corvid-labs/wordlesolve/word"
)

// ErrNoCandidates is returned when the surviving answer set is empty:
// the accumulated observations are inconsistent with every answer.
var ErrNoCandidates = errors.New("solver: no surviving candidates")

// ErrMisconfigured is returned when the guess list is empty.
var ErrMisconfigured = errors.New("solver: guess list is empty")

// epsilon bounds how close to the maximum entropy a guess must be to
// enter the tie-break pool in the general case.
const epsilon = 1e-9

// Select picks the next guess given the current state.
//
//  1. Endgame shortcut: |answers| == 1 returns it outright; |answers| == 2
//     returns the lexicographically first (both solve in <=2 moves).
//  2. Opening shortcut: no observations yet (hasObservations == false)
//     returns the precomputed OpeningGuess, skipping the O(|G|*|A|) sweep.
//  3. General case: score every candidate in guesses against answers,
//     then among guesses within epsilon of the max entropy prefer (a)
//     membership in answers, then (b) smaller worst-case bucket, then
//     (c) lexicographic order.
func Select(ws *word.Set, guesses []word.Index, answers []word.Index, hasObservations bool) (word.Index, error) {
	if len(answers) == 0 {
		return 0, ErrNoCandidates
	}
	if len(answers) == 1 {
		return answers[0], nil
	}
	if len(answers) == 2 {
		return lexFirst(ws, answers), nil
	}
	if !hasObservations {
		if idx, ok := ws.Lookup(word.MustParseWord(OpeningGuess)); ok {
			return idx, nil
		}
		// OpeningGuess isn't in this WordSet (e.g. a custom list); fall
		// through to the general case rather than fail.
	}
	if len(guesses) == 0 {
		return 0, ErrMisconfigured
	}

	scores := entropy.ScoreAll(ws, guesses, answers)

	maxEntropy := scores[0].Entropy
	for _, s := range scores {
		if s.Entropy > maxEntropy {
			maxEntropy = s.Entropy
		}
	}

	isAnswer := make(map[word.Index]bool, len(answers))
	for _, a := range answers {
		isAnswer[a] = true
	}

	pool := make([]entropy.Score, 0, len(scores))
	for _, s := range scores {
		if maxEntropy-s.Entropy <= epsilon {
			pool = append(pool, s)
		}
	}

	sort.Slice(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		ai, bi := isAnswer[a.Guess], isAnswer[b.Guess]
		if ai != bi {
			return ai // answer-members sort first
		}
		if a.WorstBucket != b.WorstBucket {
			return a.WorstBucket < b.WorstBucket
		}
		return ws.At(a.Guess).String() < ws.At(b.Guess).String()
	})

	return pool[0].Guess, nil
}

func lexFirst(ws *word.Set, idxs []word.Index) word.Index {
	best := idxs[0]
	bestStr := ws.At(best).String()
	for _, idx := range idxs[1:] {
		s := ws.At(idx).String()
		if s < bestStr {
			best, bestStr = idx, s
		}
	}
	return best
}
