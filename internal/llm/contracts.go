package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/snapdish/snapdish/internal/common"
	"github.com/snapdish/snapdish/internal/entity"
)

// IngredientField is one ingredient as returned by a structuring backend.
type IngredientField struct {
	Text   string `json:"text"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// DirectionField is one direction step as returned by a structuring backend.
type DirectionField struct {
	Text       string `json:"text"`
	IsListItem bool   `json:"is_list_item,omitempty"`
}

// RecipeFields is the normalized shape we want from the structuring backend.
// Only the title is mandatory; every other field is best-effort.
type RecipeFields struct {
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Category        string            `json:"category,omitempty"`
	PrepTime        string            `json:"prep_time,omitempty"` // free text, e.g. "15 minutes"
	CookTime        string            `json:"cook_time,omitempty"`
	Servings        string            `json:"servings,omitempty"` // free text, e.g. "4-6"
	Source          string            `json:"source,omitempty"`
	Ingredients     []IngredientField `json:"ingredients,omitempty"`
	Directions      []DirectionField  `json:"directions,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	ModelConfidence float32           `json:"confidence,omitempty"` // optional (0..1)
}

// Parser is the structuring port the pipeline depends on. Implementations
// differ (remote LLM, offline rules, test fakes) but share this contract.
type Parser interface {
	// ParseRecipe maps free text into a fully-formed Recipe aggregate.
	ParseRecipe(ctx context.Context, text string) (*entity.Recipe, error)
	// ParseRecipes parses each text independently. It succeeds with the
	// recipes that parsed as long as at least one did; otherwise it fails
	// with the combined per-item errors.
	ParseRecipes(ctx context.Context, texts []string) ([]*entity.Recipe, error)
	// ValidateText is the pure recipe-likeness classification.
	ValidateText(text string) (bool, error)
	// Confidence is a running-average estimate for the implementation,
	// used for diagnostics only, never per-call decisions.
	Confidence() float32
}

// parseMany implements the shared ParseRecipes aggregation rule.
func parseMany(ctx context.Context, texts []string, parse func(context.Context, string) (*entity.Recipe, error)) ([]*entity.Recipe, error) {
	if len(texts) == 0 {
		return nil, common.E(common.CodeInvalidInput, "texts are required", common.ErrInvalidInput)
	}

	recipes := make([]*entity.Recipe, 0, len(texts))
	var failures []string
	for i, t := range texts {
		if err := ctx.Err(); err != nil {
			return nil, common.Cancelled(err)
		}
		r, err := parse(ctx, t)
		if err != nil {
			failures = append(failures, fmt.Sprintf("text %d: %v", i+1, err))
			continue
		}
		recipes = append(recipes, r)
	}
	if len(recipes) == 0 {
		return nil, common.E(common.CodeParsing,
			"all parses failed: "+strings.Join(failures, "; "), nil)
	}
	return recipes, nil
}

// ConfidenceTracker keeps a thread-safe running average of per-call confidence
// scores, seeded with a static estimate used until the first sample arrives.
type ConfidenceTracker struct {
	mu     sync.Mutex
	sum    float64
	n      int
	static float32
}

func NewConfidenceTracker(static float32) *ConfidenceTracker {
	return &ConfidenceTracker{static: static}
}

// Observe records one confidence sample; zero samples are ignored.
func (t *ConfidenceTracker) Observe(v float32) {
	if v <= 0 {
		return
	}
	t.mu.Lock()
	t.sum += float64(v)
	t.n++
	t.mu.Unlock()
}

// Average returns the running average, or the static estimate before any
// sample has been observed.
func (t *ConfidenceTracker) Average() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.n == 0 {
		return t.static
	}
	return float32(t.sum / float64(t.n))
}
