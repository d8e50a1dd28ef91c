// Command searchctl bootstraps a secured OpenSearch connection from the
// environment and flags, and offers diagnostics around it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/searchkit/cmd/searchctl/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := commands.NewRootCommand(version, commit, date)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
