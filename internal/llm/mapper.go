package llm

import (
	"strings"
	"unicode/utf8"

	"log/slog"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/recipetext"
)

// MapFields converts a structured backend response into the Recipe aggregate.
// Each optional sub-field is mapped independently: an ingredient, direction,
// tag, time range, or serving size that fails validation is dropped and
// mapping continues. The call fails only when no title can be determined.
func MapFields(fields RecipeFields, logger *slog.Logger) (*entity.Recipe, error) {
	if logger == nil {
		logger = slog.Default()
	}

	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return nil, common.E(common.CodeParsing, "recipe title could not be determined", nil)
	}
	title = truncateRunes(title, entity.MaxTitleLen)

	category, known := constants.Canonicalize(fields.Category)
	if !known && fields.Category != "" {
		logger.Warn("llm.map.category_unknown", "label", fields.Category)
	}

	var prep, cook, servings *int
	if fields.PrepTime != "" {
		if v, err := recipetext.ParseDurationMinutes(fields.PrepTime); err == nil {
			prep = &v
		} else {
			logger.Debug("llm.map.prep_time_dropped", "value", fields.PrepTime)
		}
	}
	if fields.CookTime != "" {
		if v, err := recipetext.ParseDurationMinutes(fields.CookTime); err == nil {
			cook = &v
		} else {
			logger.Debug("llm.map.cook_time_dropped", "value", fields.CookTime)
		}
	}
	if fields.Servings != "" {
		if v, err := recipetext.ParseServings(fields.Servings); err == nil {
			servings = &v
		} else {
			logger.Debug("llm.map.servings_dropped", "value", fields.Servings)
		}
	}

	ingredients := make([]entity.Ingredient, 0, len(fields.Ingredients))
	for _, f := range fields.Ingredients {
		var amount, unit *string
		if s := strings.TrimSpace(f.Amount); s != "" {
			amount = &s
		}
		if s := strings.TrimSpace(f.Unit); s != "" {
			if canon, _ := constants.CanonicalUnit(s); canon != "" {
				unit = &canon
			}
		}
		ing, err := entity.NewIngredient(f.Text, amount, unit, len(ingredients)+1)
		if err != nil {
			logger.Debug("llm.map.ingredient_dropped", "text", f.Text, "error", err)
			continue
		}
		ingredients = append(ingredients, ing)
	}

	directions := make([]entity.Direction, 0, len(fields.Directions))
	for _, f := range fields.Directions {
		dir, err := entity.NewDirection(f.Text, len(directions)+1, f.IsListItem)
		if err != nil {
			logger.Debug("llm.map.direction_dropped", "error", err)
			continue
		}
		directions = append(directions, dir)
	}

	tags := make([]entity.Tag, 0, len(fields.Tags))
	for _, name := range fields.Tags {
		tag, err := entity.NewTag(name, nil)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	return entity.NewRecipe(entity.NewRecipeParams{
		Title:       title,
		Description: truncateRunes(strings.TrimSpace(fields.Description), entity.MaxDescriptionLen),
		Category:    category,
		PrepTimeMin: prep,
		CookTimeMin: cook,
		Servings:    servings,
		Source:      truncateRunes(strings.TrimSpace(fields.Source), entity.MaxSourceLen),
		Ingredients: ingredients,
		Directions:  directions,
		Tags:        tags,
	})
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
