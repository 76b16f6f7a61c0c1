// Package recipetext holds the cheap, non-AI heuristics the capture pipeline
// applies to extracted text: the does-this-look-like-a-recipe classifier and a
// small grammar for time and serving phrases.
package recipetext

import (
	"regexp"
	"strings"

	"log/slog"
)

// keyword vocabulary for the recipe classifier. Matching is case-insensitive,
// on whole words only, and counts every occurrence, not just distinct words.
var recipeKeywords = []string{
	"ingredient",
	"ingredients",
	"instruction",
	"instructions",
	"direction",
	"directions",
	"recipe",
	"minutes",
	"preheat",
	"oven",
	"bake",
	"serving",
	"serves",
	"cup",
	"cups",
	"tablespoon",
	"teaspoon",
	"tbsp",
	"tsp",
	"mix",
	"stir",
	"whisk",
	"simmer",
	"boil",
}

// DefaultMinKeywordHits is the classification threshold: text with at least
// this many vocabulary hits is treated as a recipe.
const DefaultMinKeywordHits = 3

// Validator classifies whether extracted text resembles a recipe. Ambiguity is
// always resolved as "not a recipe", never as an error.
type Validator struct {
	minHits  int
	minLines int // 0 disables the line check
	logger   *slog.Logger
}

type ValidatorOption func(*Validator)

// WithMinKeywordHits overrides the keyword threshold.
func WithMinKeywordHits(n int) ValidatorOption {
	return func(v *Validator) {
		if n > 0 {
			v.minHits = n
		}
	}
}

// WithMinLines additionally requires at least n non-empty lines.
func WithMinLines(n int) ValidatorOption {
	return func(v *Validator) {
		if n > 0 {
			v.minLines = n
		}
	}
}

func NewValidator(logger *slog.Logger, opts ...ValidatorOption) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	v := &Validator{minHits: DefaultMinKeywordHits, logger: logger}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Validate reports whether text looks like a recipe. It never returns an error
// for ordinary text; the error path exists only for callers that wrap inputs
// which may be uninspectable.
func (v *Validator) Validate(text string) (bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, nil
	}

	hits := KeywordHits(trimmed)
	if hits < v.minHits {
		v.logger.Debug("recipetext.validate.reject", "keyword_hits", hits, "min", v.minHits)
		return false, nil
	}

	if v.minLines > 0 && nonEmptyLines(trimmed) < v.minLines {
		v.logger.Debug("recipetext.validate.reject_lines", "min_lines", v.minLines)
		return false, nil
	}

	return true, nil
}

var recipeKeywordSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(recipeKeywords))
	for _, kw := range recipeKeywords {
		s[kw] = struct{}{}
	}
	return s
}()

var reWord = regexp.MustCompile(`[a-z]+`)

// KeywordHits counts whole-word occurrences of the recipe vocabulary in text.
// Substring matches do not count: "mixture" is not a hit for "mix", and one
// "ingredients" token scores once, not once per vocabulary entry it contains.
func KeywordHits(text string) int {
	hits := 0
	for _, w := range reWord.FindAllString(strings.ToLower(text), -1) {
		if _, ok := recipeKeywordSet[w]; ok {
			hits++
		}
	}
	return hits
}

func nonEmptyLines(text string) int {
	n := 0
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) != "" {
			n++
		}
	}
	return n
}
