// Command lvsearch finds degrees of separation between actors and plays
// perfect tic-tac-toe.
//
//	lvsearch degrees --data small "Kevin Bacon" "Tom Hanks"
//	lvsearch tictactoe --human O
//	lvsearch bestmove "XX_/OO_/___"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
