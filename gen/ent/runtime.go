// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/snapdish/snapdish/db/ent/schema"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/recipe"
	"github.com/snapdish/snapdish/gen/ent/tag"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	directionFields := schema.Direction{}.Fields()
	_ = directionFields
	// directionDescText is the schema descriptor for text field.
	directionDescText := directionFields[1].Descriptor()
	// direction.TextValidator is a validator for the "text" field. It is called by the builders before save.
	direction.TextValidator = func() func(string) error {
		validators := directionDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// directionDescPosition is the schema descriptor for position field.
	directionDescPosition := directionFields[2].Descriptor()
	// direction.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	direction.PositionValidator = directionDescPosition.Validators[0].(func(int) error)
	// directionDescIsListItem is the schema descriptor for is_list_item field.
	directionDescIsListItem := directionFields[3].Descriptor()
	// direction.DefaultIsListItem holds the default value on creation for the is_list_item field.
	direction.DefaultIsListItem = directionDescIsListItem.Default.(bool)
	// directionDescID is the schema descriptor for id field.
	directionDescID := directionFields[0].Descriptor()
	// direction.DefaultID holds the default value on creation for the id field.
	direction.DefaultID = directionDescID.Default.(func() uuid.UUID)
	ingredientFields := schema.Ingredient{}.Fields()
	_ = ingredientFields
	// ingredientDescText is the schema descriptor for text field.
	ingredientDescText := ingredientFields[1].Descriptor()
	// ingredient.TextValidator is a validator for the "text" field. It is called by the builders before save.
	ingredient.TextValidator = func() func(string) error {
		validators := ingredientDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ingredientDescPosition is the schema descriptor for position field.
	ingredientDescPosition := ingredientFields[4].Descriptor()
	// ingredient.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	ingredient.PositionValidator = ingredientDescPosition.Validators[0].(func(int) error)
	// ingredientDescID is the schema descriptor for id field.
	ingredientDescID := ingredientFields[0].Descriptor()
	// ingredient.DefaultID holds the default value on creation for the id field.
	ingredient.DefaultID = ingredientDescID.Default.(func() uuid.UUID)
	recipeFields := schema.Recipe{}.Fields()
	_ = recipeFields
	// recipeDescTitle is the schema descriptor for title field.
	recipeDescTitle := recipeFields[1].Descriptor()
	// recipe.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	recipe.TitleValidator = func() func(string) error {
		validators := recipeDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// recipeDescDescription is the schema descriptor for description field.
	recipeDescDescription := recipeFields[2].Descriptor()
	// recipe.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	recipe.DescriptionValidator = recipeDescDescription.Validators[0].(func(string) error)
	// recipeDescCategory is the schema descriptor for category field.
	recipeDescCategory := recipeFields[3].Descriptor()
	// recipe.DefaultCategory holds the default value on creation for the category field.
	recipe.DefaultCategory = recipeDescCategory.Default.(string)
	// recipeDescPrepTimeMinutes is the schema descriptor for prep_time_minutes field.
	recipeDescPrepTimeMinutes := recipeFields[4].Descriptor()
	// recipe.PrepTimeMinutesValidator is a validator for the "prep_time_minutes" field. It is called by the builders before save.
	recipe.PrepTimeMinutesValidator = recipeDescPrepTimeMinutes.Validators[0].(func(int) error)
	// recipeDescCookTimeMinutes is the schema descriptor for cook_time_minutes field.
	recipeDescCookTimeMinutes := recipeFields[5].Descriptor()
	// recipe.CookTimeMinutesValidator is a validator for the "cook_time_minutes" field. It is called by the builders before save.
	recipe.CookTimeMinutesValidator = recipeDescCookTimeMinutes.Validators[0].(func(int) error)
	// recipeDescServings is the schema descriptor for servings field.
	recipeDescServings := recipeFields[6].Descriptor()
	// recipe.ServingsValidator is a validator for the "servings" field. It is called by the builders before save.
	recipe.ServingsValidator = recipeDescServings.Validators[0].(func(int) error)
	// recipeDescSource is the schema descriptor for source field.
	recipeDescSource := recipeFields[7].Descriptor()
	// recipe.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	recipe.SourceValidator = recipeDescSource.Validators[0].(func(string) error)
	// recipeDescArchived is the schema descriptor for archived field.
	recipeDescArchived := recipeFields[8].Descriptor()
	// recipe.DefaultArchived holds the default value on creation for the archived field.
	recipe.DefaultArchived = recipeDescArchived.Default.(bool)
	// recipeDescCreatedAt is the schema descriptor for created_at field.
	recipeDescCreatedAt := recipeFields[9].Descriptor()
	// recipe.DefaultCreatedAt holds the default value on creation for the created_at field.
	recipe.DefaultCreatedAt = recipeDescCreatedAt.Default.(func() time.Time)
	// recipeDescUpdatedAt is the schema descriptor for updated_at field.
	recipeDescUpdatedAt := recipeFields[10].Descriptor()
	// recipe.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recipe.DefaultUpdatedAt = recipeDescUpdatedAt.Default.(func() time.Time)
	// recipe.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recipe.UpdateDefaultUpdatedAt = recipeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recipeDescID is the schema descriptor for id field.
	recipeDescID := recipeFields[0].Descriptor()
	// recipe.DefaultID holds the default value on creation for the id field.
	recipe.DefaultID = recipeDescID.Default.(func() uuid.UUID)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[1].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagFields[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
}
