package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchguard/internal/exitcode"
	"launchguard/internal/verify"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check target integrity without launching",
		Long: "Computes the digest of every verified target and compares it against\n" +
			"the trust anchors compiled into this binary. All targets are evaluated\n" +
			"so the table shows the complete picture; the exit code is that of the\n" +
			"first failing target, matching the launch path.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.trustStore()
			if err != nil {
				return err
			}
			dir, err := ctx.installDir()
			if err != nil {
				return err
			}

			results := verify.Report(dir, store)
			rows := make([][]string, 0, len(results))
			var firstFailure *verify.Error
			for _, result := range results {
				status := "ok"
				if result.Err != nil {
					status = result.Err.Reason.String()
					if firstFailure == nil {
						firstFailure = result.Err
					}
				}
				rows = append(rows, []string{
					result.Target.Name,
					result.Path,
					shortDigest(result.Target.Expected),
					shortDigest(result.Computed),
					status,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Target", "Path", "Expected", "Computed", "Status"},
				rows,
			))
			if firstFailure != nil {
				return exitcode.New(firstFailure.ExitCode, firstFailure)
			}
			fmt.Fprintln(out, "All targets verified")
			return nil
		},
	}

	cmd.Flags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path")
	return cmd
}
