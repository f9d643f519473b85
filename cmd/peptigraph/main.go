// Command peptigraph is the CLI entry point: convert sequences, list the
// residue catalog, or run the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/peptilab/peptigraph/internal/interfaces/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := cli.NewRootCmd(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
