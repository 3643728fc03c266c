// Package main is boardctl, a terminal client for pipeline boards. It loads
// a board from the board server and moves opportunities between stages the
// way the browser board does: a card changes column only after the server
// confirms the move. The drag command replays a single pointer gesture.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newSession(os.Stdin, os.Stdout)
	err := newRootCmd(s).ExecuteContext(ctx)
	s.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
