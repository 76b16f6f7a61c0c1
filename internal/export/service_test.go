package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/snapdish/snapdish/internal/entity"
)

type stubRepo struct {
	recipes []*entity.Recipe
	err     error

	lastIncludeArchived bool
}

func (s *stubRepo) Save(context.Context, *entity.Recipe) error   { return nil }
func (s *stubRepo) Update(context.Context, *entity.Recipe) error { return nil }
func (s *stubRepo) GetByID(context.Context, uuid.UUID) (*entity.Recipe, error) {
	return nil, errors.New("not implemented")
}
func (s *stubRepo) Archive(context.Context, uuid.UUID) error { return nil }
func (s *stubRepo) Delete(context.Context, uuid.UUID) error  { return nil }

func (s *stubRepo) List(_ context.Context, includeArchived bool) ([]*entity.Recipe, error) {
	s.lastIncludeArchived = includeArchived
	return s.recipes, s.err
}

func strPtr(v string) *string { return &v }

func sampleRecipe(t *testing.T) *entity.Recipe {
	t.Helper()
	rec, err := entity.NewRecipe(entity.NewRecipeParams{Title: "Buttermilk Pancakes"})
	require.NoError(t, err)

	flour, err := entity.NewIngredient("flour", strPtr("2"), strPtr("cup"), 1)
	require.NoError(t, err)
	eggs, err := entity.NewIngredient("eggs", strPtr("3"), nil, 2)
	require.NoError(t, err)
	mix, err := entity.NewDirection("Mix the dry ingredients.", 1, false)
	require.NoError(t, err)
	tag, err := entity.NewTag("breakfast", nil)
	require.NoError(t, err)

	return rec.AddIngredient(flour).AddIngredient(eggs).AddDirection(mix).AddTag(tag)
}

func TestExportRecipesXLSX(t *testing.T) {
	repo := &stubRepo{recipes: []*entity.Recipe{sampleRecipe(t)}}
	svc := NewService(repo, nil)

	out, err := svc.ExportRecipesXLSX(context.Background(), true)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, repo.lastIncludeArchived)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Recipes", "Ingredients"}, f.GetSheetList())

	rows, err := f.GetRows("Recipes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, "Buttermilk Pancakes", rows[1][0])
	assert.Contains(t, rows[1][5], "2 cup flour")
	assert.Contains(t, rows[1][5], "3 eggs")
	assert.Contains(t, rows[1][6], "1. Mix the dry ingredients.")
	assert.Equal(t, "breakfast", rows[1][7])

	detail, err := f.GetRows("Ingredients")
	require.NoError(t, err)
	require.Len(t, detail, 3)
	assert.Equal(t, []string{"Recipe", "Ingredient", "Amount", "Unit", "Position"}, detail[0])
	assert.Equal(t, "Buttermilk Pancakes", detail[1][0])
	assert.Equal(t, "flour", detail[1][1])
	assert.Equal(t, "eggs", detail[2][1])
}

func TestExportRecipesXLSXEmptyStore(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	out, err := svc.ExportRecipesXLSX(context.Background(), false)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Recipes")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestExportRecipesXLSXRepositoryError(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("connection reset")}, nil)

	_, err := svc.ExportRecipesXLSX(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query recipes")
}
