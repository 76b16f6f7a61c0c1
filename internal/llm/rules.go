package llm

import (
	"context"
	"regexp"
	"strings"

	"log/slog"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
	"github.com/snapdish/snapdish/internal/recipetext"
)

// rulesStaticConfidence is the static estimate for the offline parser; it has
// no per-call score to average.
const rulesStaticConfidence float32 = 0.55

var (
	reSectionIngredients = regexp.MustCompile(`(?i)^\s*ingredients?\s*:?\s*$`)
	reSectionDirections  = regexp.MustCompile(`(?i)^\s*(directions?|instructions?|method|steps)\s*:?\s*$`)
	reBullet             = regexp.MustCompile(`^\s*[-*•]\s+`)
	reNumbered           = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	rePrepTime           = regexp.MustCompile(`(?i)prep(?:aration)?\s*time\s*:?\s*(.+)`)
	reCookTime           = regexp.MustCompile(`(?i)cook(?:ing)?\s*time\s*:?\s*(.+)`)
	reServesLine         = regexp.MustCompile(`(?i)(?:serves|servings|yield)\s*:?\s*(.+)`)
	reAmountPrefix       = regexp.MustCompile(`^(\d+(?:[./]\d+)?)\s*([a-zA-Z]+)?\s+(.+)$`)
)

// RulesParser structures recipe text without any AI service. It is the
// offline fallback behind the same Parser contract as the remote client:
// section headings split ingredients from directions, bullet and numbered
// prefixes are stripped, and time/servings lines feed the duration grammar.
type RulesParser struct {
	validator *recipetext.Validator
	conf      *ConfidenceTracker
	logger    *slog.Logger
}

func NewRulesParser(validator *recipetext.Validator, logger *slog.Logger) *RulesParser {
	if logger == nil {
		logger = slog.Default()
	}
	if validator == nil {
		validator = recipetext.NewValidator(logger)
	}
	return &RulesParser{
		validator: validator,
		conf:      NewConfidenceTracker(rulesStaticConfidence),
		logger:    logger,
	}
}

func (p *RulesParser) ParseRecipe(ctx context.Context, text string) (*entity.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, common.Cancelled(err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.E(common.CodeParsing, "recipe text is empty", nil)
	}

	fields := p.extractFields(text)
	recipe, err := MapFields(fields, p.logger)
	if err != nil {
		return nil, err
	}
	p.conf.Observe(rulesStaticConfidence)
	return recipe, nil
}

func (p *RulesParser) ParseRecipes(ctx context.Context, texts []string) ([]*entity.Recipe, error) {
	return parseMany(ctx, texts, p.ParseRecipe)
}

func (p *RulesParser) ValidateText(text string) (bool, error) {
	return p.validator.Validate(text)
}

func (p *RulesParser) Confidence() float32 {
	return p.conf.Average()
}

type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionDirections
)

func (p *RulesParser) extractFields(text string) RecipeFields {
	var fields RecipeFields
	cur := sectionNone

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case reSectionIngredients.MatchString(line):
			cur = sectionIngredients
			continue
		case reSectionDirections.MatchString(line):
			cur = sectionDirections
			continue
		}

		if m := rePrepTime.FindStringSubmatch(line); m != nil {
			fields.PrepTime = strings.TrimSpace(m[1])
			continue
		}
		if m := reCookTime.FindStringSubmatch(line); m != nil {
			fields.CookTime = strings.TrimSpace(m[1])
			continue
		}
		if m := reServesLine.FindStringSubmatch(line); m != nil {
			fields.Servings = strings.TrimSpace(m[1])
			continue
		}

		if fields.Title == "" {
			fields.Title = line
			continue
		}

		switch cur {
		case sectionIngredients:
			fields.Ingredients = append(fields.Ingredients, splitIngredientLine(line))
		case sectionDirections:
			isItem := reBullet.MatchString(line) || reNumbered.MatchString(line)
			stripped := reNumbered.ReplaceAllString(reBullet.ReplaceAllString(line, ""), "")
			fields.Directions = append(fields.Directions, DirectionField{
				Text:       strings.TrimSpace(stripped),
				IsListItem: isItem,
			})
		default:
			// prose before any section heading becomes the description
			if fields.Description == "" {
				fields.Description = line
			} else {
				fields.Description += " " + line
			}
		}
	}

	return fields
}

// splitIngredientLine peels a leading quantity and unit off an ingredient
// line: "2 cups flour" -> amount "2", unit "cups", text "flour". Lines that
// don't match stay whole.
func splitIngredientLine(line string) IngredientField {
	line = strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
	if m := reAmountPrefix.FindStringSubmatch(line); m != nil {
		unit := strings.TrimSpace(m[2])
		rest := strings.TrimSpace(m[3])
		if unit != "" && !isKnownUnitWord(unit) {
			// the "unit" was really the first word of the ingredient
			rest = unit + " " + rest
			unit = ""
		}
		if rest != "" {
			return IngredientField{Text: rest, Amount: m[1], Unit: unit}
		}
	}
	return IngredientField{Text: line}
}

// isKnownUnitWord defers to the canonical unit table so the rules parser and
// the field mapper always agree on what counts as a measure word.
func isKnownUnitWord(w string) bool {
	_, ok := constants.CanonicalUnit(w)
	return ok
}
