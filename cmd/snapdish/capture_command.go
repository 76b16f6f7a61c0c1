package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/pipeline"
)

func newCaptureCommand(ctx *commandContext) *cobra.Command {
	var noPersist bool

	cmd := &cobra.Command{
		Use:   "capture <image>",
		Short: "Capture a recipe photo into a structured recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveImage(args[0])
			if err != nil {
				return err
			}
			return ctx.withOrchestrator(cmd.Context(), func(orch *pipeline.Orchestrator) error {
				rec, err := orch.Capture(cmd.Context(), path, !noPersist)
				if err != nil {
					return err
				}
				printRecipe(cmd, rec)
				if conf, err := orch.LastOCRConfidence(); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "\nOCR confidence: %.2f\n", conf)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noPersist, "no-persist", false, "Preview the structured recipe without saving it")
	return cmd
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var noPersist bool

	cmd := &cobra.Command{
		Use:   "batch <image>...",
		Short: "Capture several recipe photos at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := make([]string, 0, len(args))
			for _, arg := range args {
				path, err := resolveImage(arg)
				if err != nil {
					return err
				}
				paths = append(paths, path)
			}
			return ctx.withOrchestrator(cmd.Context(), func(orch *pipeline.Orchestrator) error {
				batch, err := orch.CaptureBatch(cmd.Context(), paths, !noPersist)
				if err != nil {
					return err
				}
				for _, rec := range batch.Recipes {
					fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%s)\n", rec.Title, rec.ID)
				}
				for _, msg := range batch.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", msg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d captured, %d failed\n", batch.Succeeded(), batch.Failed())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noPersist, "no-persist", false, "Preview the structured recipes without saving them")
	return cmd
}

func resolveImage(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}
	if !constants.IsImageExt(filepath.Ext(absPath)) {
		return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(absPath))
	}
	return absPath, nil
}

func printRecipe(cmd *cobra.Command, rec *entity.Recipe) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", rec.Title)
	if rec.Description != "" {
		fmt.Fprintf(out, "%s\n", rec.Description)
	}
	fmt.Fprintf(out, "Category: %s\n", rec.Category)
	if rec.PrepTimeMin != nil {
		fmt.Fprintf(out, "Prep: %d min\n", *rec.PrepTimeMin)
	}
	if rec.CookTimeMin != nil {
		fmt.Fprintf(out, "Cook: %d min\n", *rec.CookTimeMin)
	}
	if rec.Servings != nil {
		fmt.Fprintf(out, "Serves: %d\n", *rec.Servings)
	}
	if len(rec.Ingredients) > 0 {
		fmt.Fprintln(out, "\nIngredients:")
		for _, ing := range rec.Ingredients {
			line := ing.Text
			if ing.Amount != nil {
				if ing.Unit != nil {
					line = fmt.Sprintf("%s %s %s", *ing.Amount, *ing.Unit, ing.Text)
				} else {
					line = fmt.Sprintf("%s %s", *ing.Amount, ing.Text)
				}
			}
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	if len(rec.Directions) > 0 {
		fmt.Fprintln(out, "\nDirections:")
		for i, dir := range rec.Directions {
			fmt.Fprintf(out, "  %d. %s\n", i+1, dir.Text)
		}
	}
	if len(rec.Tags) > 0 {
		names := make([]string, 0, len(rec.Tags))
		for _, t := range rec.Tags {
			names = append(names, t.Name)
		}
		fmt.Fprintf(out, "\nTags: %s\n", strings.Join(names, ", "))
	}
}
