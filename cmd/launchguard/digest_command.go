package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchguard/internal/hashutil"
)

func newDigestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <file>...",
		Short: "Print the uppercase SHA-256 digest of files",
		Long: "Computes each file's digest with the same engine the launch path\n" +
			"uses. Useful when stamping new trust anchors into a build.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				digest, err := hashutil.File(path)
				if err != nil {
					return fmt.Errorf("digest %s: %w", path, err)
				}
				fmt.Fprintf(out, "%s  %s\n", digest, path)
			}
			return nil
		},
	}
}
