// Package feedback implements FeedbackEngine: computing the feedback
// pattern a guess would yield against a hypothetical answer, using the
// standard two-pass Wordle scoring rule with duplicate-letter handling.
package feedback

import (
	"github.com/corvid-labs/wordlesolve/pattern"
	"github.com/corvid-labs/wordlesolve/word"
)

// Score computes the feedback pattern for guess against answer.
//
// Pass 1 (green): mark exact-position matches Green and consume that
// answer letter. Pass 2 (yellow): for each still-gray guess position,
// if the guess letter matches an unconsumed answer letter, mark it
// Yellow and consume the leftmost such occurrence. Greens take priority
// over yellows for a given answer letter's consumption, and a repeated
// guess letter can only earn as many Green+Yellow badges as there are
// unconsumed copies in the answer.
//
// Score is pure and deterministic; it is the hot inner loop of the
// solver and is written as two flat passes over the five-element arrays
// with no allocation.
func Score(guess, answer word.Word) pattern.Code {
	var trits [word.Letters]pattern.Trit
	var consumed [word.Letters]bool

	for i := 0; i < word.Letters; i++ {
		if guess[i] == answer[i] {
			trits[i] = pattern.Green
			consumed[i] = true
		}
	}

	for i := 0; i < word.Letters; i++ {
		if trits[i] == pattern.Green {
			continue
		}
		for j := 0; j < word.Letters; j++ {
			if !consumed[j] && guess[i] == answer[j] {
				trits[i] = pattern.Yellow
				consumed[j] = true
				break
			}
		}
	}

	return pattern.Encode(trits)
}
