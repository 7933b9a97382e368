package constraint

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/corvid-labs/wordlesolve/word"
)

// key uniquely identifies a (compiled ConstraintSet, candidate list)
// pair for caching purposes. Built from the Set's own fields rather than
// a hash of the observation history, so two different histories that
// compile to the same constraints share a cache entry.
type key struct {
	green     [word.Letters]uint8
	forbidden [word.Letters]word.Mask
	minCount  [26]uint8
	maxCount  [26]uint8
	candLen   int
}

func keyFor(s *Set, candidates []word.Index) key {
	return key{
		green:     s.green,
		forbidden: s.forbidden,
		minCount:  s.minCount,
		maxCount:  s.maxCount,
		candLen:   len(candidates),
	}
}

// CachedFilter wraps Filter with an LRU cache over (constraint, list)
// pairs. A session replays the same ConstraintSet against the same
// AnswerList on every diagnostic Candidates() call between guesses, so
// caching the filtered index slice avoids re-scanning the full answer
// list on repeated reads.
type CachedFilter struct {
	cache *lru.Cache[key, []word.Index]
	mu    sync.Mutex
}

// NewCachedFilter creates a cache holding up to maxEntries filtered
// results.
func NewCachedFilter(maxEntries int) (*CachedFilter, error) {
	c, err := lru.New[key, []word.Index](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("constraint: building filter cache: %w", err)
	}
	return &CachedFilter{cache: c}, nil
}

// Filter returns the indices of ws's words (drawn from candidates) that
// s admits, using the cache when the same (constraint, candidate-list
// length) pair has been seen before.
//
// candLen participates in the key only as a cheap proxy for "the same
// candidate list"; callers that filter different lists of the same
// length under the same constraints are expected to pass consistent
// lists (true within a single session, which always filters its one
// fixed AnswerList).
func (c *CachedFilter) Filter(s *Set, ws *word.Set, candidates []word.Index) []word.Index {
	k := keyFor(s, candidates)

	c.mu.Lock()
	if cached, ok := c.cache.Get(k); ok {
		c.mu.Unlock()
		out := make([]word.Index, len(cached))
		copy(out, cached)
		return out
	}
	c.mu.Unlock()

	filtered := Filter(s, ws, candidates)

	c.mu.Lock()
	c.cache.Add(k, filtered)
	c.mu.Unlock()

	out := make([]word.Index, len(filtered))
	copy(out, filtered)
	return out
}
