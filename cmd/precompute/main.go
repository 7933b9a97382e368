// Command precompute regenerates solver/opener_generated.go by scoring
// every guess in the embedded GuessList against the full AnswerList and
// keeping the one with maximum entropy, breaking exact ties by smallest
// worst-case bucket and then lexicographically (unlike Selector, it
// gives no preference to guesses that are themselves answers).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/corvid-labs/wordlesolve/entropy"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

func main() {
	lists, err := wordlist.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading word lists:", err)
		os.Exit(1)
	}

	fmt.Printf("scoring %d guesses against %d answers\n", len(lists.Guesses), len(lists.Answers))
	bar := progressbar.Default(int64(len(lists.Guesses)))

	scores := entropy.ScoreAll(lists.Set, lists.Guesses, lists.Answers)
	_ = bar.Add(len(lists.Guesses))

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Entropy != scores[j].Entropy {
			return scores[i].Entropy > scores[j].Entropy
		}
		if scores[i].WorstBucket != scores[j].WorstBucket {
			return scores[i].WorstBucket < scores[j].WorstBucket
		}
		return lists.Set.At(scores[i].Guess).String() < lists.Set.At(scores[j].Guess).String()
	})

	best := scores[0]
	word := lists.Set.At(best.Guess).String()

	fmt.Printf("best opener: %s  entropy=%.6f  worstBucket=%d\n", word, best.Entropy, best.WorstBucket)

	out := fmt.Sprintf(openerTemplate, word, best.Entropy, best.WorstBucket)
	if err := os.WriteFile("solver/opener_generated.go", []byte(out), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "writing solver/opener_generated.go:", err)
		os.Exit(1)
	}

	fmt.Println("wrote solver/opener_generated.go")
}

const openerTemplate = `// Code generated by cmd/precompute. DO NOT EDIT.

package solver

// OpeningGuess is the guess Selector returns for an empty observation
// history: the entry of GuessList with maximum entropy against
// AnswerList, breaking ties by smallest worst-case bucket and then
// lexicographically. Regenerate with:
//
//	go run ./cmd/precompute
const (
	OpeningGuess       = %q
	OpeningEntropy     = %v
	OpeningWorstBucket = %d
)
`
