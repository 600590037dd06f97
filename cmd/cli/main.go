// Command sessionctl is the command-line client for sessionkeeper.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/cli"
)

func main() {
	app := cli.NewApp(os.Stdin, os.Stdout)

	if err := app.Command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sessionctl: %v\n", err)
		os.Exit(1)
	}
}
