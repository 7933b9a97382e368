package cliapp

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/corvid-labs/wordlesolve/word"
)

// templateChangeChar marks the single varying letter in a template.
// '.' is used instead of '?' to avoid shell glob expansion surprises.
const templateChangeChar = "."

// ListTemplateGuesses expands a five-character template (four fixed
// characters, copied as-is and uppercased, plus one templateChangeChar)
// into every candidate
// guess obtained by substituting each letter of the alphabet for the
// varying slot, optionally restricted to included (a nil-or-empty set
// means "try all 26 letters").
func ListTemplateGuesses(template string, included []byte) ([]string, error) {
	if len(template) != word.Letters {
		return nil, fmt.Errorf("cliapp: template must be %d characters, got %d", word.Letters, len(template))
	}

	slot := strings.Index(template, templateChangeChar)
	if slot < 0 || strings.Count(template, templateChangeChar) != 1 {
		return nil, fmt.Errorf("cliapp: template must contain exactly one %q", templateChangeChar)
	}

	letters := mapset.NewThreadUnsafeSet()
	if len(included) > 0 {
		for _, l := range included {
			letters.Add(l)
		}
	} else {
		for l := byte('A'); l <= 'Z'; l++ {
			letters.Add(l)
		}
	}

	byteLetters := make([]byte, 0, letters.Cardinality())
	for l := range letters.Iter() {
		b, ok := l.(byte)
		if !ok {
			return nil, fmt.Errorf("cliapp: non-byte element in letter set")
		}
		byteLetters = append(byteLetters, b)
	}
	sort.Slice(byteLetters, func(i, j int) bool { return byteLetters[i] < byteLetters[j] })

	guesses := make([]string, 0, len(byteLetters))
	for _, l := range byteLetters {
		candidate := template[:slot] + string(l) + template[slot+1:]
		guesses = append(guesses, strings.ToUpper(candidate))
	}
	return guesses, nil
}
