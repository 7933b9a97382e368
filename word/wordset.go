package word

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Set is an interned collection of Words. Every operation elsewhere in
// the solver references words by their Index into a Set rather than by
// string, so that per-candidate work during scoring is integer-indexed.
//
// A Set is immutable once built; callers share it by reference across
// sessions without locking.
type Set struct {
	words  []Word
	masks  []Mask
	counts []Counts
	index  map[Word]int
}

// Index is a word's position within a Set.
type Index int

// NewSet interns words, precomputing each one's bitmask and letter
// counts. Returns an error if words contains a duplicate.
func NewSet(words []Word) (*Set, error) {
	s := &Set{
		words:  make([]Word, 0, len(words)),
		masks:  make([]Mask, 0, len(words)),
		counts: make([]Counts, 0, len(words)),
		index:  make(map[Word]int, len(words)),
	}
	for _, w := range words {
		if _, dup := s.index[w]; dup {
			return nil, fmt.Errorf("word: duplicate entry %s", w)
		}
		s.index[w] = len(s.words)
		s.words = append(s.words, w)
		s.masks = append(s.masks, w.BitMask())
		s.counts = append(s.counts, w.LetterCounts())
	}
	return s, nil
}

// Len returns the number of interned words.
func (s *Set) Len() int { return len(s.words) }

// At returns the word at idx.
func (s *Set) At(idx Index) Word { return s.words[idx] }

// MaskAt returns the precomputed bitmask for the word at idx.
func (s *Set) MaskAt(idx Index) Mask { return s.masks[idx] }

// CountsAt returns the precomputed letter-count vector for the word at idx.
func (s *Set) CountsAt(idx Index) Counts { return s.counts[idx] }

// Lookup returns the Index of w within the Set, if interned.
func (s *Set) Lookup(w Word) (Index, bool) {
	i, ok := s.index[w]
	return Index(i), ok
}

// Indices returns every Index in the set, 0..Len()-1, in interning order.
func (s *Set) Indices() []Index {
	idxs := make([]Index, len(s.words))
	for i := range idxs {
		idxs[i] = Index(i)
	}
	return idxs
}

// Words returns the underlying words for the given indices, in order.
func (s *Set) Words(idxs []Index) []Word {
	out := make([]Word, len(idxs))
	for i, idx := range idxs {
		out[i] = s.At(idx)
	}
	return out
}

// SortedStrings returns every interned word's string form, lexicographically
// sorted, for callers and tests that want a deterministic listing.
func (s *Set) SortedStrings() []string {
	out := make([]string, len(s.words))
	for i, w := range s.words {
		out[i] = w.String()
	}
	slices.Sort(out)
	return out
}
