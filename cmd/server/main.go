// Command server runs the HTTP solver API, a single-route bootstrap
// generalized into a full session-lifecycle router.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvid-labs/wordlesolve/httpapi"
	"github.com/corvid-labs/wordlesolve/logging"
	"github.com/corvid-labs/wordlesolve/session"
	"github.com/corvid-labs/wordlesolve/wordlist"
)

func main() {
	defaultAddr := ":8080"
	if v := os.Getenv("WORDLESOLVE_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address (overrides WORDLESOLVE_ADDR)")
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

	srv := httpapi.New(store, log)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}
