// Package constraint implements ConstraintSet: the compiled projection of
// a sequence of (guess, pattern) Observations into the minimum state
// needed to test candidate answers in O(1) bit ops per check.
package constraint

import (
	"errors"
	"fmt"

	"github.com/corvid-labs/wordlesolve/pattern"
	"github.com/corvid-labs/wordlesolve/word"
)

// ErrInconsistent is returned by Observe when the new observation
// contradicts the accumulated constraint set.
var ErrInconsistent = errors.New("constraint: observations are inconsistent")

const noLetter = 0xFF

// unbounded marks max_count[letter] as having no finite upper bound.
const unbounded = 255

// Set is the compiled conjunction of every (guess, pattern) Observation
// seen so far. Zero value is the empty set (no restrictions).
type Set struct {
	green     [word.Letters]uint8 // noLetter if unconstrained
	forbidden [word.Letters]word.Mask
	minCount  [26]uint8
	maxCount  [26]uint8 // unbounded if no cap
}

// New returns an empty ConstraintSet with no restrictions.
func New() *Set {
	s := &Set{}
	for i := range s.green {
		s.green[i] = noLetter
	}
	for l := range s.maxCount {
		s.maxCount[l] = unbounded
	}
	return s
}

// Observe folds one (guess, pattern) observation into a copy of s,
// returning the updated set. Observe never mutates s in place: on
// success the caller should replace its reference with the returned
// set; on ErrInconsistent the original s is still valid and unchanged.
// This gives session.Session's Observe its transactional semantics for
// free — compile into a scratch copy, commit the new pointer on success.
func (s *Set) Observe(guess word.Word, code pattern.Code) (*Set, error) {
	next := *s // value copy: arrays only, no shared backing storage

	trits := pattern.Decode(code)

	var tally [26]uint8
	var sawGray [26]bool

	for i := 0; i < word.Letters; i++ {
		l := guess[i]
		switch trits[i] {
		case pattern.Green:
			if next.green[i] != noLetter && next.green[i] != l {
				return nil, fmt.Errorf("%w: position %d already green on a different letter", ErrInconsistent, i)
			}
			next.green[i] = l
			tally[l]++
		case pattern.Yellow:
			next.forbidden[i] |= 1 << l
			tally[l]++
		case pattern.Gray:
			next.forbidden[i] |= 1 << l
			sawGray[l] = true
		}
	}

	for l := uint8(0); l < 26; l++ {
		if tally[l] > next.minCount[l] {
			next.minCount[l] = tally[l]
		}
		if sawGray[l] {
			k := tally[l]
			if k < next.maxCount[l] {
				next.maxCount[l] = k
			}
		}
		if next.minCount[l] > next.maxCount[l] {
			return nil, fmt.Errorf("%w: letter %c requires at least %d and at most %d copies",
				ErrInconsistent, 'A'+l, next.minCount[l], next.maxCount[l])
		}
	}

	return &next, nil
}

// Admits reports whether a word satisfies every compiled constraint:
// green/forbidden per position, and per-letter counts within
// [minCount, maxCount].
func (s *Set) Admits(w word.Word, counts word.Counts) bool {
	for i := 0; i < word.Letters; i++ {
		l := w[i]
		if s.green[i] != noLetter && s.green[i] != l {
			return false
		}
		if s.forbidden[i].Has(l) {
			return false
		}
	}
	for l := 0; l < 26; l++ {
		c := counts[l]
		if c < s.minCount[l] {
			return false
		}
		if s.maxCount[l] != unbounded && c > s.maxCount[l] {
			return false
		}
	}
	return true
}

// Filter retains the indices of ws whose Set.At(idx)/CountsAt(idx) the
// set admits, preserving the original order.
func Filter(s *Set, ws *word.Set, idxs []word.Index) []word.Index {
	out := make([]word.Index, 0, len(idxs))
	for _, idx := range idxs {
		if s.Admits(ws.At(idx), ws.CountsAt(idx)) {
			out = append(out, idx)
		}
	}
	return out
}
