// Command pipemaze traces the pipe loop in a grid file and counts the cells
// it encloses.
package main

import (
	"fmt"
	"os"

	"github.com/thruflo/pipemaze/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
