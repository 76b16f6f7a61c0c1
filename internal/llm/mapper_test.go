package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
)

func TestMapFieldsFullRecipe(t *testing.T) {
	fields := RecipeFields{
		Title:       "  Weeknight Chili  ",
		Description: "A fast one-pot chili.",
		Category:    "dinner",
		PrepTime:    "15 minutes",
		CookTime:    "1 hour",
		Servings:    "4-6",
		Source:      "Mom's recipe card",
		Ingredients: []IngredientField{
			{Text: "ground beef", Amount: "1", Unit: "lb"},
			{Text: "kidney beans", Amount: "2", Unit: "cans"},
		},
		Directions: []DirectionField{
			{Text: "Brown the beef.", IsListItem: true},
			{Text: "Simmer everything for an hour.", IsListItem: true},
		},
		Tags: []string{"comfort food", "one-pot"},
	}

	rec, err := MapFields(fields, nil)
	require.NoError(t, err)
	assert.Equal(t, "Weeknight Chili", rec.Title)
	assert.Equal(t, constants.Dinner, rec.Category)
	require.NotNil(t, rec.PrepTimeMin)
	assert.Equal(t, 15, *rec.PrepTimeMin)
	require.NotNil(t, rec.CookTimeMin)
	assert.Equal(t, 60, *rec.CookTimeMin)
	require.NotNil(t, rec.Servings)
	assert.Equal(t, 4, *rec.Servings, "ranges resolve to the lower bound")
	require.Len(t, rec.Ingredients, 2)
	assert.Equal(t, 1, rec.Ingredients[0].Order)
	assert.Equal(t, 2, rec.Ingredients[1].Order)
	require.Len(t, rec.Directions, 2)
	assert.Len(t, rec.Tags, 2)
}

func TestMapFieldsMissingTitle(t *testing.T) {
	for _, title := range []string{"", "   "} {
		_, err := MapFields(RecipeFields{Title: title}, nil)
		require.Error(t, err)
		assert.True(t, common.IsCode(err, common.CodeParsing))
		assert.Contains(t, err.Error(), "title could not be determined")
	}
}

func TestMapFieldsTitleOnly(t *testing.T) {
	rec, err := MapFields(RecipeFields{Title: "Toast"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Toast", rec.Title)
	assert.Equal(t, constants.Other, rec.Category)
	assert.Nil(t, rec.PrepTimeMin)
	assert.Empty(t, rec.Ingredients)
}

func TestMapFieldsDropsInvalidSubEntities(t *testing.T) {
	fields := RecipeFields{
		Title: "Salad",
		Ingredients: []IngredientField{
			{Text: "lettuce"},
			{Text: "   "}, // invalid: dropped, mapping continues
			{Text: "tomatoes"},
		},
		Directions: []DirectionField{
			{Text: ""},
			{Text: "Toss everything."},
		},
		Tags: []string{"", "fresh"},
	}

	rec, err := MapFields(fields, nil)
	require.NoError(t, err)
	require.Len(t, rec.Ingredients, 2)
	assert.Equal(t, "lettuce", rec.Ingredients[0].Text)
	assert.Equal(t, "tomatoes", rec.Ingredients[1].Text)
	// orders stay dense after drops
	assert.Equal(t, 1, rec.Ingredients[0].Order)
	assert.Equal(t, 2, rec.Ingredients[1].Order)
	require.Len(t, rec.Directions, 1)
	require.Len(t, rec.Tags, 1)
	assert.Equal(t, "fresh", rec.Tags[0].Name)
}

func TestMapFieldsDropsUnparseableTimes(t *testing.T) {
	fields := RecipeFields{
		Title:    "Stew",
		PrepTime: "a while",
		CookTime: "until done",
		Servings: "a crowd",
	}

	rec, err := MapFields(fields, nil)
	require.NoError(t, err)
	assert.Nil(t, rec.PrepTimeMin)
	assert.Nil(t, rec.CookTimeMin)
	assert.Nil(t, rec.Servings)
}

func TestMapFieldsUnknownCategoryFallsBack(t *testing.T) {
	rec, err := MapFields(RecipeFields{Title: "Mystery Dish", Category: "molecular gastronomy"}, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.Other, rec.Category)
}

func TestMapFieldsTruncatesLongTitle(t *testing.T) {
	long := make([]rune, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'x')
	}
	rec, err := MapFields(RecipeFields{Title: string(long)}, nil)
	require.NoError(t, err)
	assert.Len(t, []rune(rec.Title), 200)
}
