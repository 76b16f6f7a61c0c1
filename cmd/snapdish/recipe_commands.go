package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	repo "github.com/snapdish/snapdish/internal/repository"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captured recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRepo(cmd.Context(), func(recipes repo.RecipeRepository) error {
				recs, err := recipes.List(cmd.Context(), includeArchived)
				if err != nil {
					return err
				}
				if len(recs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No recipes captured yet.")
					return nil
				}
				for _, rec := range recs {
					marker := " "
					if rec.Archived {
						marker = "A"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %-36s %-14s %s\n", marker, rec.ID, rec.Category, rec.Title)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived recipes")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe-id>",
		Short: "Show one recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			return ctx.withRepo(cmd.Context(), func(recipes repo.RecipeRepository) error {
				rec, err := recipes.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				printRecipe(cmd, rec)
				return nil
			})
		},
	}
}

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <recipe-id>",
		Short: "Archive a recipe without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			return ctx.withRepo(cmd.Context(), func(recipes repo.RecipeRepository) error {
				if err := recipes.Archive(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %s\n", id)
				return nil
			})
		},
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <recipe-id>",
		Short: "Delete a recipe permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			return ctx.withRepo(cmd.Context(), func(recipes repo.RecipeRepository) error {
				if err := recipes.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
				return nil
			})
		},
	}
}
