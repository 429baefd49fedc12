package main

import (
	"errors"
	"fmt"
	"os"

	"launchguard/internal/exitcode"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var coded *exitcode.Error
		if errors.As(err, &coded) {
			// The user-facing notification was already shown; the code is
			// the contract with wrapper scripts.
			os.Exit(coded.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
