// Command rdfview renders triples as an interactive force-directed graph.
//
// Subcommands:
//
//	rdfview view <file|url>    interactive terminal viewer
//	rdfview render <file|url>  settle the layout and write an SVG
//	rdfview serve              generator HTTP service
//	rdfview config init|show   manage the config file
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
