// Command recall is the CLI harness for the local hybrid retrieval
// engine.
package main

import (
	"os"

	"github.com/nimbus-browser/recall/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
