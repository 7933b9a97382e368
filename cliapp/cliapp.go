// Package cliapp implements an interactive terminal client over
// session.Store: a REPL loop that records observations, requests
// suggestions, and renders feedback patterns in color.
package cliapp

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/session"
)

// App runs the interactive solver REPL against a single session.
type App struct {
	store *session.Store
	id    session.ID
	log   *logging.Logger
	out   io.Writer
	in    *bufio.Scanner
}

// New creates an App with a freshly created session in store.
func New(store *session.Store, in io.Reader, out io.Writer, log *logging.Logger) *App {
	return &App{
		store: store,
		id:    store.NewSession(),
		log:   log,
		out:   out,
		in:    bufio.NewScanner(in),
	}
}

const banner = `wordlesolve interactive solver
commands:
  suggest              show the next recommended guess
  observe WORD PATTERN  record a guess and its G/Y/X feedback
  candidates            list remaining candidate answers
  reset                 clear all recorded observations
  template PATTERN [LETTERS]  list guesses matching a _/. template (see below)
  quit                  exit

PATTERN is five characters from G (green), Y (yellow), X (gray).
template's PATTERN is five characters with a single '.' for the slot
to vary; every other character, '_' included, is kept as written,
e.g. "_A.AM" lists _AAAM _ABAM _ACAM ... _AZAM; an optional LETTERS
argument restricts the varying slot to those letters only,
e.g. "template _A.AM DLM" lists only _ADAM _ALAM _AMAM.
`

// Run drives the REPL until EOF or a quit command, printing prompts
// and output to a.out.
func (a *App) Run() {
	fmt.Fprint(a.out, banner)

	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])
		args := fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "suggest":
			a.suggest()
		case "observe":
			a.observe(args)
		case "candidates":
			a.candidates()
		case "reset":
			a.reset()
		case "template":
			a.template(args)
		default:
			fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		}
	}
}

func (a *App) suggest() {
	result, err := a.store.Suggest(a.id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if result.Status == session.StatusSolved {
		fmt.Fprintln(a.out, colorstring.Color("[green]solved[reset]"))
		return
	}
	fmt.Fprintf(a.out, "suggestion: %s\n", result.Word)
}

func (a *App) observe(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: observe WORD PATTERN")
		return
	}
	guess, pat := strings.ToUpper(args[0]), strings.ToUpper(args[1])
	if err := a.store.Observe(a.id, guess, pat); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "recorded %s %s\n", guess, renderPattern(pat))
}

func (a *App) candidates() {
	count, sample, err := a.store.Candidates(a.id, 10)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "%d candidates remain\n", count)
	if len(sample) > 0 {
		fmt.Fprintln(a.out, strings.Join(sample, " "))
	}
}

func (a *App) reset() {
	if err := a.store.Reset(a.id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "session reset")
}

func (a *App) template(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(a.out, "usage: template PATTERN [LETTERS] (one '.' marks the varying letter)")
		return
	}
	var included []byte
	if len(args) == 2 {
		included = []byte(strings.ToUpper(args[1]))
	}
	guesses, err := ListTemplateGuesses(args[0], included)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, strings.Join(guesses, " "))
}

// renderPattern colorizes a G/Y/X pattern string for terminal display
// using colorstring's [color]...[reset] markup.
func renderPattern(pat string) string {
	var b strings.Builder
	for _, c := range pat {
		switch c {
		case 'G':
			b.WriteString(colorstring.Color("[green]G[reset]"))
		case 'Y':
			b.WriteString(colorstring.Color("[yellow]Y[reset]"))
		default:
			b.WriteString(colorstring.Color("[dark_gray]X[reset]"))
		}
	}
	return b.String()
}
