package main

import (
	"github.com/spf13/cobra"

	"launchguard/internal/launcherrun"
	"launchguard/internal/logging"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:   "launchguard [arguments...]",
		Short: "Integrity-verifying launcher for the protected application",
		Long: "launchguard verifies the on-disk integrity of the protected application\n" +
			"and its helper executable against digests compiled into this binary,\n" +
			"then starts the application with all arguments forwarded.\n\n" +
			"Subcommand names (verify, digest, targets, config, version) are\n" +
			"reserved; every other invocation launches the protected application.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Arguments belong to the launched application, not to this
		// launcher. Flag parsing stays off so tokens like --flag forward
		// untouched.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			return launcherrun.New(cfg, logger).Run(args)
		},
	}

	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newDigestCommand())
	rootCmd.AddCommand(newTargetsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
