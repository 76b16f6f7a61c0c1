package repository

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/snapdish/snapdish/gen/ent"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/recipe"
	"github.com/snapdish/snapdish/gen/ent/tag"

	"github.com/snapdish/snapdish/constants"
	"github.com/snapdish/snapdish/internal/entity"
)

// RecipeRepository persists the Recipe aggregate. Save stores a new aggregate
// with all owned sub-entities; Archive is a soft delete; Delete destroys the
// row and its children.
type RecipeRepository interface {
	Save(ctx context.Context, rec *entity.Recipe) error
	Update(ctx context.Context, rec *entity.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	List(ctx context.Context, includeArchived bool) ([]*entity.Recipe, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRecipeRepository(client *ent.Client, logger *slog.Logger) RecipeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &recipeRepository{client: client, logger: logger}
}

func (r *recipeRepository) Save(ctx context.Context, rec *entity.Recipe) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Recipe.Create().
		SetID(rec.ID).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetCategory(string(rec.Category)).
		SetNillablePrepTimeMinutes(rec.PrepTimeMin).
		SetNillableCookTimeMinutes(rec.CookTimeMin).
		SetNillableServings(rec.Servings).
		SetSource(rec.Source).
		SetArchived(rec.Archived).
		SetCreatedAt(rec.CreatedAt).
		SetUpdatedAt(rec.UpdatedAt).
		Save(ctx)
	if err != nil {
		return rollback(tx, err)
	}

	if err := createChildren(ctx, tx, rec); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("recipe saved", "recipe_id", rec.ID, "title", rec.Title)
	return nil
}

func (r *recipeRepository) Update(ctx context.Context, rec *entity.Recipe) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	err = tx.Recipe.UpdateOneID(rec.ID).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetCategory(string(rec.Category)).
		SetNillablePrepTimeMinutes(rec.PrepTimeMin).
		SetNillableCookTimeMinutes(rec.CookTimeMin).
		SetNillableServings(rec.Servings).
		SetSource(rec.Source).
		SetArchived(rec.Archived).
		SetUpdatedAt(rec.UpdatedAt).
		Exec(ctx)
	if err != nil {
		return rollback(tx, err)
	}

	// sub-entities are owned: replace wholesale
	if _, err := tx.Ingredient.Delete().Where(ingredient.HasRecipeWith(recipe.ID(rec.ID))).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if _, err := tx.Direction.Delete().Where(direction.HasRecipeWith(recipe.ID(rec.ID))).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if _, err := tx.Tag.Delete().Where(tag.HasRecipeWith(recipe.ID(rec.ID))).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := createChildren(ctx, tx, rec); err != nil {
		return rollback(tx, err)
	}

	return tx.Commit()
}

func createChildren(ctx context.Context, tx *ent.Tx, rec *entity.Recipe) error {
	if len(rec.Ingredients) > 0 {
		builders := make([]*ent.IngredientCreate, len(rec.Ingredients))
		for i, ing := range rec.Ingredients {
			builders[i] = tx.Ingredient.Create().
				SetText(ing.Text).
				SetNillableAmount(ing.Amount).
				SetNillableUnit(ing.Unit).
				SetPosition(ing.Order).
				SetRecipeID(rec.ID)
		}
		if _, err := tx.Ingredient.CreateBulk(builders...).Save(ctx); err != nil {
			return err
		}
	}
	if len(rec.Directions) > 0 {
		builders := make([]*ent.DirectionCreate, len(rec.Directions))
		for i, dir := range rec.Directions {
			builders[i] = tx.Direction.Create().
				SetText(dir.Text).
				SetPosition(dir.Order).
				SetIsListItem(dir.IsListItem).
				SetRecipeID(rec.ID)
		}
		if _, err := tx.Direction.CreateBulk(builders...).Save(ctx); err != nil {
			return err
		}
	}
	if len(rec.Tags) > 0 {
		builders := make([]*ent.TagCreate, len(rec.Tags))
		for i, t := range rec.Tags {
			builders[i] = tx.Tag.Create().
				SetName(t.Name).
				SetNillableColor(t.Color).
				SetRecipeID(rec.ID)
		}
		if _, err := tx.Tag.CreateBulk(builders...).Save(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	row, err := r.client.Recipe.Query().
		Where(recipe.ID(id)).
		WithIngredients(func(q *ent.IngredientQuery) {
			q.Order(ent.Asc(ingredient.FieldPosition))
		}).
		WithDirections(func(q *ent.DirectionQuery) {
			q.Order(ent.Asc(direction.FieldPosition))
		}).
		WithTags().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toRecipe(row), nil
}

func (r *recipeRepository) List(ctx context.Context, includeArchived bool) ([]*entity.Recipe, error) {
	q := r.client.Recipe.Query()
	if !includeArchived {
		q = q.Where(recipe.Archived(false))
	}
	rows, err := q.
		WithIngredients(func(q *ent.IngredientQuery) {
			q.Order(ent.Asc(ingredient.FieldPosition))
		}).
		WithDirections(func(q *ent.DirectionQuery) {
			q.Order(ent.Asc(direction.FieldPosition))
		}).
		WithTags().
		Order(ent.Desc(recipe.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recipes", "error", err)
		return nil, err
	}

	result := make([]*entity.Recipe, len(rows))
	for i, row := range rows {
		result[i] = toRecipe(row)
	}
	return result, nil
}

func (r *recipeRepository) Archive(ctx context.Context, id uuid.UUID) error {
	return r.client.Recipe.UpdateOneID(id).
		SetArchived(true).
		SetUpdatedAt(time.Now().UTC()).
		Exec(ctx)
}

func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Ingredient.Delete().Where(ingredient.HasRecipeWith(recipe.ID(id))).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if _, err := tx.Direction.Delete().Where(direction.HasRecipeWith(recipe.ID(id))).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if _, err := tx.Tag.Delete().Where(tag.HasRecipeWith(recipe.ID(id))).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Recipe.DeleteOneID(id).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	return tx.Commit()
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return err
	}
	return err
}

func entityCategory(s string) constants.Category {
	c, _ := constants.Canonicalize(s)
	return c
}

func toRecipe(row *ent.Recipe) *entity.Recipe {
	rec := &entity.Recipe{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    entityCategory(row.Category),
		PrepTimeMin: row.PrepTimeMinutes,
		CookTimeMin: row.CookTimeMinutes,
		Servings:    row.Servings,
		Source:      row.Source,
		Archived:    row.Archived,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	for _, ing := range row.Edges.Ingredients {
		rec.Ingredients = append(rec.Ingredients, entity.Ingredient{
			Text:   ing.Text,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Order:  ing.Position,
		})
	}
	for _, dir := range row.Edges.Directions {
		rec.Directions = append(rec.Directions, entity.Direction{
			Text:       dir.Text,
			Order:      dir.Position,
			IsListItem: dir.IsListItem,
		})
	}
	for _, t := range row.Edges.Tags {
		rec.Tags = append(rec.Tags, entity.Tag{Name: t.Name, Color: t.Color})
	}
	return rec
}
