// Package entropy implements EntropyScorer: for a candidate guess and the
// current surviving answer set, bucket answers by the feedback pattern
// the guess would produce and score the guess by the resulting Shannon
// entropy (expected information gain).
package entropy

import (
	"math"
	"sync"

	"github.com/corvid-labs/wordlesolve/feedback"
	"github.com/corvid-labs/wordlesolve/pattern"
	"github.com/corvid-labs/wordlesolve/word"
)

// Score is the result of scoring one candidate guess against a surviving
// answer set.
type Score struct {
	Guess       word.Index
	Entropy     float64 // bits; solver.Select ranks guesses on this value
	Surrogate   int64   // integer surrogate, Sum(n_c * log(n_c)); smaller means higher entropy
	WorstBucket int     // size of the largest pattern bucket, for tie-breaks
}

// buckets is a reusable dense array of size pattern.NumCodes, indexed by
// PatternCode. Callers reset it by zeroing rather than reallocating per
// candidate.
type buckets [pattern.NumCodes]int

func (b *buckets) reset() {
	for i := range b {
		b[i] = 0
	}
}

// ScoreOne scores a single guess against the surviving answer set A.
// When len(answers) <= 2 both outcomes are equally optimal, so it
// short-circuits to a trivial zero-surrogate score rather than doing
// full bucket accounting.
func ScoreOne(ws *word.Set, guess word.Index, answers []word.Index) Score {
	if len(answers) <= 2 {
		return Score{Guess: guess, Entropy: 0, Surrogate: 0, WorstBucket: len(answers)}
	}

	var b buckets
	gw := ws.At(guess)
	for _, a := range answers {
		code := feedback.Score(gw, ws.At(a))
		b[code]++
	}
	return scoreFromBuckets(guess, &b, len(answers))
}

func scoreFromBuckets(guess word.Index, b *buckets, total int) Score {
	var surrogate int64
	var entropy float64
	worst := 0
	for _, n := range b {
		if n == 0 {
			continue
		}
		if n > worst {
			worst = n
		}
		surrogate += int64(n) * ilog(n)
		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return Score{Guess: guess, Entropy: entropy, Surrogate: surrogate, WorstBucket: worst}
}

// ilog returns a fixed-point-scaled natural log surrogate for n, scaled
// by 1<<16 for precision. The resulting Score.Surrogate is an integer
// ordering of guesses, but solver.Select and cmd/precompute do not read
// it: both compare the floating-point Entropy instead.
func ilog(n int) int64 {
	return int64(math.Log(float64(n)) * (1 << 16))
}

// workerCount bounds the goroutine fan-out in ScoreAll. Each worker
// owns a disjoint slice of the guess list and buckets its guesses in
// one pass, rather than sharding pattern space and summing partial
// entropies across shards.
const workerCount = 8

// ScoreAll scores every guess in guesses against the surviving answer
// set answers, fanning the work out across a small worker pool. Results
// are returned in the same order as guesses.
func ScoreAll(ws *word.Set, guesses []word.Index, answers []word.Index) []Score {
	results := make([]Score, len(guesses))

	if len(guesses) == 0 {
		return results
	}

	n := workerCount
	if n > len(guesses) {
		n = len(guesses)
	}

	var wg sync.WaitGroup
	chunk := (len(guesses) + n - 1) / n
	for w := 0; w < n; w++ {
		start := w * chunk
		if start >= len(guesses) {
			break
		}
		end := start + chunk
		if end > len(guesses) {
			end = len(guesses)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			var b buckets
			for i := start; i < end; i++ {
				g := guesses[i]
				if len(answers) <= 2 {
					results[i] = Score{Guess: g, Entropy: 0, Surrogate: 0, WorstBucket: len(answers)}
					continue
				}
				b.reset()
				gw := ws.At(g)
				for _, a := range answers {
					code := feedback.Score(gw, ws.At(a))
					b[code]++
				}
				results[i] = scoreFromBuckets(g, &b, len(answers))
			}
		}(start, end)
	}
	wg.Wait()

	return results
}
