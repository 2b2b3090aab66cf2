// Command nibble evaluates information, duration and speed expressions.
package main

import (
	"fmt"
	"os"

	"github.com/gebn/nibble/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
