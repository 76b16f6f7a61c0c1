package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/snapdish/snapdish/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "export <output.xlsx>",
		Short: "Export the recipe book as an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			return ctx.withExport(cmd.Context(), func(svc *export.Service) error {
				xlsx, err := svc.ExportRecipesXLSX(cmd.Context(), includeArchived)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, xlsx, 0o644); err != nil {
					return fmt.Errorf("write workbook: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", outPath, len(xlsx))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived recipes")
	return cmd
}
