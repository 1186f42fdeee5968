// Command formvalidate validates and sanitizes form submissions from the
// command line.
//
//	formvalidate check --rules contact.yaml --data submission.json
//	formvalidate clean --kind email "  john@@example.com "
//	formvalidate schema --rules contact.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Gobd/formvalidate/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(ctx, os.Args, cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
