package cliapp

import (
	"strings"
	"testing"

	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/session"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

func testStore(t *testing.T) *session.Store {
	t.Helper()
	lists, err := wordlist.Load()
	if err != nil {
		t.Fatalf("loading word lists: %v", err)
	}
	store, err := session.NewStore(lists, false, logging.New())
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return store
}

func TestRunSuggestObserveCandidatesReset(t *testing.T) {
	store := testStore(t)
	var out strings.Builder
	in := strings.NewReader("suggest\nobserve CRANE XXXXX\ncandidates\nreset\nquit\n")

	app := New(store, in, &out, logging.New())
	app.Run()

	output := out.String()
	if !strings.Contains(output, "suggestion:") {
		t.Error("expected a suggestion line in output")
	}
	if !strings.Contains(output, "recorded CRANE") {
		t.Error("expected observe to echo the recorded guess")
	}
	if !strings.Contains(output, "candidates remain") {
		t.Error("expected a candidate count line")
	}
	if !strings.Contains(output, "session reset") {
		t.Error("expected reset confirmation")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	store := testStore(t)
	var out strings.Builder
	in := strings.NewReader("bogus\nquit\n")

	app := New(store, in, &out, logging.New())
	app.Run()

	if !strings.Contains(out.String(), `unknown command "bogus"`) {
		t.Errorf("expected unknown command message, got: %s", out.String())
	}
}

func TestRunObserveBadArgsShowsUsage(t *testing.T) {
	store := testStore(t)
	var out strings.Builder
	in := strings.NewReader("observe CRANE\nquit\n")

	app := New(store, in, &out, logging.New())
	app.Run()

	if !strings.Contains(out.String(), "usage: observe") {
		t.Errorf("expected usage message, got: %s", out.String())
	}
}

func TestRunTemplateCommand(t *testing.T) {
	store := testStore(t)
	var out strings.Builder
	in := strings.NewReader("template _A.AM\nquit\n")

	app := New(store, in, &out, logging.New())
	app.Run()

	if !strings.Contains(out.String(), "_AAAM") {
		t.Errorf("expected template expansion in output, got: %s", out.String())
	}
}
