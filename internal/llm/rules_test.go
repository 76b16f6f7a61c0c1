package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/internal/common"
)

const cardText = `Classic Pancakes
Light and fluffy weekend pancakes.
Prep time: 10 minutes
Cook time: 15 minutes
Serves: 4

Ingredients:
- 2 cups flour
- 1 tbsp sugar
- 2 eggs

Directions:
1. Whisk the dry ingredients together.
2. Stir in the eggs and milk.
3. Cook on a hot griddle until golden.`

func TestRulesParserStructuresRecipeCard(t *testing.T) {
	p := NewRulesParser(nil, nil)

	rec, err := p.ParseRecipe(context.Background(), cardText)
	require.NoError(t, err)

	assert.Equal(t, "Classic Pancakes", rec.Title)
	assert.Equal(t, "Light and fluffy weekend pancakes.", rec.Description)
	require.NotNil(t, rec.PrepTimeMin)
	assert.Equal(t, 10, *rec.PrepTimeMin)
	require.NotNil(t, rec.CookTimeMin)
	assert.Equal(t, 15, *rec.CookTimeMin)
	require.NotNil(t, rec.Servings)
	assert.Equal(t, 4, *rec.Servings)

	require.Len(t, rec.Ingredients, 3)
	first := rec.Ingredients[0]
	assert.Equal(t, "flour", first.Text)
	require.NotNil(t, first.Amount)
	assert.Equal(t, "2", *first.Amount)
	require.NotNil(t, first.Unit)
	assert.Equal(t, "cup", *first.Unit)

	require.Len(t, rec.Directions, 3)
	assert.Equal(t, "Whisk the dry ingredients together.", rec.Directions[0].Text)
	assert.True(t, rec.Directions[0].IsListItem)
	assert.Equal(t, 1, rec.Directions[0].Order)
}

func TestRulesParserEmptyText(t *testing.T) {
	p := NewRulesParser(nil, nil)
	_, err := p.ParseRecipe(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeParsing))
}

func TestRulesParserCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewRulesParser(nil, nil)
	_, err := p.ParseRecipe(ctx, cardText)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeCancelled))
}

func TestRulesParserTitleOnly(t *testing.T) {
	p := NewRulesParser(nil, nil)
	rec, err := p.ParseRecipe(context.Background(), "Buttered Toast")
	require.NoError(t, err)
	assert.Equal(t, "Buttered Toast", rec.Title)
	assert.Empty(t, rec.Ingredients)
}

func TestSplitIngredientLine(t *testing.T) {
	tests := []struct {
		in     string
		text   string
		amount string
		unit   string
	}{
		{"2 cups flour", "flour", "2", "cups"},
		{"- 1 tbsp sugar", "sugar", "1", "tbsp"},
		{"3 eggs", "eggs", "3", ""},
		{"1/2 tsp salt", "salt", "1/2", "tsp"},
		// every spelling the canonical unit table knows is a measure word here too
		{"1 c milk", "milk", "1", "c"},
		{"2 kilograms potatoes", "potatoes", "2", "kilograms"},
		{"salt to taste", "salt to taste", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := splitIngredientLine(tt.in)
			assert.Equal(t, tt.text, f.Text)
			assert.Equal(t, tt.amount, f.Amount)
			assert.Equal(t, tt.unit, f.Unit)
		})
	}
}

func TestParseRecipesAggregation(t *testing.T) {
	p := NewRulesParser(nil, nil)

	recipes, err := p.ParseRecipes(context.Background(), []string{cardText, "   ", "Buttered Toast"})
	require.NoError(t, err, "one failed parse must not fail the batch")
	assert.Len(t, recipes, 2)
}

func TestParseRecipesAllFail(t *testing.T) {
	p := NewRulesParser(nil, nil)

	_, err := p.ParseRecipes(context.Background(), []string{"  ", ""})
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeParsing))
	assert.Contains(t, err.Error(), "all parses failed")
	assert.Contains(t, err.Error(), "text 1:")
	assert.Contains(t, err.Error(), "text 2:")
}

func TestParseRecipesEmptyInput(t *testing.T) {
	p := NewRulesParser(nil, nil)
	_, err := p.ParseRecipes(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, common.IsCode(err, common.CodeInvalidInput))
}

func TestConfidenceTracker(t *testing.T) {
	tr := NewConfidenceTracker(0.8)
	assert.InDelta(t, 0.8, float64(tr.Average()), 0.001, "static estimate before any sample")

	tr.Observe(0.6)
	tr.Observe(1.0)
	assert.InDelta(t, 0.8, float64(tr.Average()), 0.001)

	tr.Observe(0) // ignored
	assert.InDelta(t, 0.8, float64(tr.Average()), 0.001)
}
