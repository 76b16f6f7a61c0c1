package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "snapdish",
		Short:         "Capture recipe photos into a structured recipe book",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCaptureCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newArchiveCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))

	return rootCmd
}
