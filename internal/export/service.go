package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/repository"
)

// Service is a tiny façade over the recipe repository that produces XLSX
// bytes for recipe-book exports.
type Service struct {
	recipes repository.RecipeRepository
	logger  *slog.Logger
}

func NewService(recipes repository.RecipeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{recipes: recipes, logger: logger}
}

// ExportRecipesXLSX returns an XLSX workbook (as bytes) with one row per
// recipe. Archived recipes are included only when includeArchived is set.
func (s *Service) ExportRecipesXLSX(ctx context.Context, includeArchived bool) ([]byte, error) {
	start := time.Now()

	recs, err := s.recipes.List(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Recipes"
	const detailSheet = "Ingredients"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Title",
		"Category",
		"Prep (min)",
		"Cook (min)",
		"Servings",
		"Ingredients",
		"Directions",
		"Tags",
		"Source",
		"Added",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	detailHeaders := []string{"Recipe", "Ingredient", "Amount", "Unit", "Position"}
	for i, h := range detailHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(detailSheet, cell, h)
	}

	row := 2
	detailRow := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Title)
		write(2, string(r.Category))
		if r.PrepTimeMin != nil {
			write(3, *r.PrepTimeMin)
		}
		if r.CookTimeMin != nil {
			write(4, *r.CookTimeMin)
		}
		if r.Servings != nil {
			write(5, *r.Servings)
		}
		write(6, joinIngredients(r.Ingredients))
		write(7, truncate(joinDirections(r.Directions), 900))
		write(8, joinTags(r.Tags))
		write(9, r.Source)
		if !r.CreatedAt.IsZero() {
			write(10, r.CreatedAt.Format("2006-01-02"))
		}

		for _, ing := range r.Ingredients {
			writeDetail := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, detailRow)
				_ = f.SetCellValue(detailSheet, cell, v)
			}
			writeDetail(1, r.Title)
			writeDetail(2, ing.Text)
			if ing.Amount != nil {
				writeDetail(3, *ing.Amount)
			}
			if ing.Unit != nil {
				writeDetail(4, *ing.Unit)
			}
			writeDetail(5, ing.Order)
			detailRow++
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // title
	_ = f.SetColWidth(sheet, "B", "B", 16) // category
	_ = f.SetColWidth(sheet, "C", "E", 10) // timings, servings
	_ = f.SetColWidth(sheet, "F", "G", 60) // ingredients, directions
	_ = f.SetColWidth(sheet, "H", "H", 24) // tags
	_ = f.SetColWidth(sheet, "I", "I", 28) // source
	_ = f.SetColWidth(sheet, "J", "J", 12) // added

	_ = f.SetColWidth(detailSheet, "A", "A", 32) // recipe title
	_ = f.SetColWidth(detailSheet, "B", "B", 48) // ingredient text
	_ = f.SetColWidth(detailSheet, "C", "E", 10) // amount, unit, position

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"include_archived", includeArchived,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func joinIngredients(items []entity.Ingredient) string {
	parts := make([]string, 0, len(items))
	for _, ing := range items {
		line := ing.Text
		if ing.Amount != nil && *ing.Amount != "" {
			if ing.Unit != nil && *ing.Unit != "" {
				line = fmt.Sprintf("%s %s %s", *ing.Amount, *ing.Unit, ing.Text)
			} else {
				line = fmt.Sprintf("%s %s", *ing.Amount, ing.Text)
			}
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}

func joinDirections(items []entity.Direction) string {
	parts := make([]string, 0, len(items))
	for i, dir := range items {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, dir.Text))
	}
	return strings.Join(parts, "\n")
}

func joinTags(items []entity.Tag) string {
	parts := make([]string, 0, len(items))
	for _, t := range items {
		parts = append(parts, t.Name)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
