package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Stamped at build time alongside the trust anchors:
//
//	go build -ldflags "-X main.version=v1.3.0 -X main.commit=<sha>"
var (
	version = "dev"
	commit  = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show launcher version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "launchguard %s (%s, %s/%s)\n",
				version, commit, runtime.GOOS, runtime.GOARCH)
		},
	}
}
