// Package main holds the main command line interface for runjson. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"fmt"
	"os"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
)

func main() {
	rootCmd.AddCommand(versionCmd)

	// The JSON document itself is written to stdout by the root command; everything else ends up on stderr.
	// The error here is mainly used to communicate the necessary exit code.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.WithDecoration(err))

		if e, ok := errors.AsCommandError(err); ok && e.Code > 0 {
			os.Exit(e.Code)
		}
		os.Exit(1)
	}
}
