// webtranscat - a WebTransport client in the spirit of netcat and websocat.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webtranscat/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "webtranscat: %v\n", err)
		os.Exit(1)
	}
}
