// Command jsexpr is the CLI wrapper around pkg/jsexpr: evaluate
// expressions, inspect their token stream, and check arena usage.
package main

import (
	"fmt"
	"os"

	"github.com/go-jsexpr/jsexpr/cmd/jsexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
