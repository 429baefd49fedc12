package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTargetsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Show the embedded trust anchor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.trustStore()
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, target := range store.Targets() {
				rows = append(rows, []string{target.Name, target.FileName, target.Expected})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Target", "File", "Expected Digest"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path")
	return cmd
}
