// Package wordlist loads the two embedded word-list files (answers and
// guesses) into validated word.Sets: UTF-8 text, one word per line,
// blank lines and '#' comments ignored, duplicates within a list
// rejected, any non-five-ASCII-letter line rejected.
package wordlist

import (
	"bufio"
	"embed"
	"fmt"
	"strings"

	"github.com/corvid-labs/wordlesolve/word"
)

//go:embed data/answers.txt data/guesses.txt
var embedded embed.FS

// Lists holds the solver's two word universes: Answers (the possible
// targets) and Guesses (every word permitted as a guess). In the
// embedded defaults, Answers is a subset of Guesses. Lists is built once
// at construction and never mutated.
type Lists struct {
	Set     *word.Set
	Answers []word.Index
	Guesses []word.Index
}

// Load reads the embedded default word lists and builds a Lists.
func Load() (*Lists, error) {
	answerWords, err := readLines(embedded, "data/answers.txt")
	if err != nil {
		return nil, err
	}
	guessWords, err := readLines(embedded, "data/guesses.txt")
	if err != nil {
		return nil, err
	}
	return build(answerWords, guessWords)
}

func readLines(fsys embed.FS, name string) ([]word.Word, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening %s: %w", name, err)
	}
	defer f.Close()
	return ParseLines(bufio.NewScanner(f), name)
}

// ParseLines validates and parses a word-list file's lines (already
// wrapped in a *bufio.Scanner by the caller): blank lines and lines
// starting with '#' are skipped; every other line must be exactly five
// ASCII letters; duplicates within the same list are rejected.
func ParseLines(sc *bufio.Scanner, sourceName string) ([]word.Word, error) {
	seen := make(map[string]bool)
	var words []word.Word
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := word.ParseWord(line)
		if err != nil {
			return nil, fmt.Errorf("wordlist: %s:%d: %w", sourceName, lineNo, err)
		}
		norm := w.String()
		if seen[norm] {
			return nil, fmt.Errorf("wordlist: %s:%d: duplicate word %s", sourceName, lineNo, norm)
		}
		seen[norm] = true
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading %s: %w", sourceName, err)
	}
	return words, nil
}

func build(answerWords, guessWords []word.Word) (*Lists, error) {
	// Guesses is the superset; answers must intern into the same Set so
	// every downstream Index is comparable across both lists.
	all := make([]word.Word, 0, len(answerWords)+len(guessWords))
	all = append(all, guessWords...)
	inGuesses := make(map[word.Word]bool, len(guessWords))
	for _, w := range guessWords {
		inGuesses[w] = true
	}
	for _, w := range answerWords {
		if !inGuesses[w] {
			all = append(all, w)
		}
	}

	set, err := word.NewSet(all)
	if err != nil {
		return nil, err
	}

	answers := make([]word.Index, 0, len(answerWords))
	for _, w := range answerWords {
		idx, _ := set.Lookup(w)
		answers = append(answers, idx)
	}
	guesses := make([]word.Index, 0, len(guessWords))
	for _, w := range guessWords {
		idx, _ := set.Lookup(w)
		guesses = append(guesses, idx)
	}

	return &Lists{Set: set, Answers: answers, Guesses: guesses}, nil
}
