// Command cli runs the interactive terminal solver.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvid-labs/wordlesolve/cliapp"
	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/session"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

func main() {
	strict := flag.Bool("strict", true, "reject observed guesses that aren't in the embedded guess list")
	flag.Parse()

	log := logging.New()

	lists, err := wordlist.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading word lists:", err)
		os.Exit(1)
	}

	store, err := session.NewStore(lists, *strict, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building session store:", err)
		os.Exit(1)
	}

	app := cliapp.New(store, os.Stdin, os.Stdout, log)
	app.Run()
}
