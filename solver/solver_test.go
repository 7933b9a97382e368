package solver

import (
	"errors"
	"testing"

	"github.com/corvid-labs/wordlesolve/word"
)

func buildSet(t *testing.T, words ...string) (*word.Set, []word.Index) {
	t.Helper()
	ws := make([]word.Word, len(words))
	for i, s := range words {
		ws[i] = word.MustParseWord(s)
	}
	set, err := word.NewSet(ws)
	if err != nil {
		t.Fatalf("NewSet returned error: %v", err)
	}
	return set, set.Indices()
}

func idxOf(t *testing.T, set *word.Set, s string) word.Index {
	t.Helper()
	idx, ok := set.Lookup(word.MustParseWord(s))
	if !ok {
		t.Fatalf("%s not found in set", s)
	}
	return idx
}

func TestSelectSingleAnswerShortcut(t *testing.T) {
	set, idxs := buildSet(t, "CRANE")
	got, err := Select(set, idxs, idxs, true)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got != idxs[0] {
		t.Errorf("Select with one answer = %v, want the sole answer %v", got, idxs[0])
	}
}

func TestSelectTwoAnswersPicksLexFirst(t *testing.T) {
	set, _ := buildSet(t, "CRANE", "TRACE")
	trace := idxOf(t, set, "TRACE")
	crane := idxOf(t, set, "CRANE")

	answers := []word.Index{trace, crane}
	got, err := Select(set, answers, answers, true)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got != crane {
		t.Errorf("Select with two answers = %v, want lexicographically-first CRANE (%v)", got, crane)
	}
}

func TestSelectUsesOpeningGuessWhenNoObservations(t *testing.T) {
	set, idxs := buildSet(t, "IRATE", "CRANE", "SLATE", "TRACE")
	irate := idxOf(t, set, "IRATE")

	got, err := Select(set, idxs, idxs, false)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if got != irate {
		t.Errorf("Select with no observations = %v, want precomputed opener IRATE (%v)", got, irate)
	}
}

func TestSelectFallsThroughWhenOpenerAbsentFromSet(t *testing.T) {
	set, idxs := buildSet(t, "CRANE", "CRATE", "CRAZE", "TRACE")
	got, err := Select(set, idxs, idxs, false)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	crane := idxOf(t, set, "CRANE")
	if got != crane {
		t.Errorf("Select with opener absent from set = %v, want general-case winner CRANE (%v)", got, crane)
	}
}

func TestSelectErrNoCandidates(t *testing.T) {
	set, idxs := buildSet(t, "CRANE", "SLATE")
	_, err := Select(set, idxs, nil, true)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates for an empty answer set, got %v", err)
	}
}

func TestSelectErrMisconfigured(t *testing.T) {
	set, idxs := buildSet(t, "CRANE", "SLATE", "TRACE")
	_, err := Select(set, nil, idxs, true)
	if !errors.Is(err, ErrMisconfigured) {
		t.Errorf("expected ErrMisconfigured for an empty guess list, got %v", err)
	}
}

func TestSelectGeneralCaseBreaksTiesLexicographically(t *testing.T) {
	// CRANE, CRATE, CRAZE and TRACE all tie on entropy against this
	// answer set (each of the four splits the answers into buckets of
	// sizes 2, 1 and 1), all are answers and all share a worst bucket
	// of 2; the winner is decided by the lexicographic tie-break.
	set, idxs := buildSet(t, "CRANE", "CRATE", "CRAZE", "TRACE")
	got, err := Select(set, idxs, idxs, true)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	crane := idxOf(t, set, "CRANE")
	if got != crane {
		t.Errorf("Select tie-break = %v, want lexicographically-first CRANE (%v)", got, crane)
	}
}
