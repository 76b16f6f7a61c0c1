package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/common"
)

func TestNewRecipeMinimal(t *testing.T) {
	rec, err := NewRecipe(NewRecipeParams{Title: "  Toast  "})
	require.NoError(t, err)
	assert.Equal(t, "Toast", rec.Title, "title is trimmed")
	assert.Equal(t, constants.Other, rec.Category, "category defaults to Other")
	assert.NotEqual(t, rec.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	assert.False(t, rec.Archived)
}

func TestNewRecipeValidation(t *testing.T) {
	neg := -1
	zero := 0
	tests := []struct {
		name   string
		params NewRecipeParams
	}{
		{"empty title", NewRecipeParams{Title: ""}},
		{"whitespace title", NewRecipeParams{Title: "   "}},
		{"title too long", NewRecipeParams{Title: strings.Repeat("x", MaxTitleLen+1)}},
		{"description too long", NewRecipeParams{Title: "ok", Description: strings.Repeat("x", MaxDescriptionLen+1)}},
		{"negative prep time", NewRecipeParams{Title: "ok", PrepTimeMin: &neg}},
		{"zero servings", NewRecipeParams{Title: "ok", Servings: &zero}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecipe(tt.params)
			require.Error(t, err)
			assert.True(t, common.IsCode(err, common.CodeInvalidInput))
		})
	}
}

func TestNewIngredient(t *testing.T) {
	amount := " 2 "
	unit := "cups"
	ing, err := NewIngredient("  flour ", &amount, &unit, 1)
	require.NoError(t, err)
	assert.Equal(t, "flour", ing.Text)
	require.NotNil(t, ing.Amount)
	assert.Equal(t, "2", *ing.Amount, "pointer fields are trimmed")

	_, err = NewIngredient("", nil, nil, 1)
	require.Error(t, err)

	_, err = NewIngredient("flour", nil, nil, 0)
	require.Error(t, err, "order is 1-based")
}

func TestNewDirection(t *testing.T) {
	dir, err := NewDirection("Mix well.", 2, true)
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Order)
	assert.True(t, dir.IsListItem)

	_, err = NewDirection("   ", 1, false)
	require.Error(t, err)
}

func TestNewTag(t *testing.T) {
	empty := "   "
	tag, err := NewTag("vegan", &empty)
	require.NoError(t, err)
	assert.Equal(t, "vegan", tag.Name)
	assert.Nil(t, tag.Color, "blank color collapses to nil")

	_, err = NewTag("", nil)
	require.Error(t, err)
}

func TestRecipeUpdatesAreCopies(t *testing.T) {
	rec, err := NewRecipe(NewRecipeParams{Title: "Original"})
	require.NoError(t, err)

	updated, err := rec.WithTitle("Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Original", rec.Title, "the source aggregate is untouched")
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, rec.ID, updated.ID, "identity is preserved across updates")

	_, err = rec.WithTitle("  ")
	require.Error(t, err)
}

func TestRecipeAddIngredientDoesNotShareSlices(t *testing.T) {
	ing1, err := NewIngredient("flour", nil, nil, 1)
	require.NoError(t, err)
	rec, err := NewRecipe(NewRecipeParams{Title: "Bread", Ingredients: []Ingredient{ing1}})
	require.NoError(t, err)

	ing2, err := NewIngredient("water", nil, nil, 2)
	require.NoError(t, err)
	bigger := rec.AddIngredient(ing2)

	assert.Len(t, rec.Ingredients, 1)
	assert.Len(t, bigger.Ingredients, 2)
}

func TestRecipeArchiveRoundTrip(t *testing.T) {
	rec, err := NewRecipe(NewRecipeParams{Title: "Keeper"})
	require.NoError(t, err)

	archived := rec.Archive()
	assert.False(t, rec.Archived)
	assert.True(t, archived.Archived)
	assert.Equal(t, rec.ID, archived.ID)

	back := archived.Unarchive()
	assert.False(t, back.Archived)
}
