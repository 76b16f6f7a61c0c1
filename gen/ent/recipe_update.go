// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/predicate"
	"github.com/snapdish/snapdish/gen/ent/recipe"
	"github.com/snapdish/snapdish/gen/ent/tag"
)

// RecipeUpdate is the builder for updating Recipe entities.
type RecipeUpdate struct {
	config
	hooks    []Hook
	mutation *RecipeMutation
}

// Where appends a list predicates to the RecipeUpdate builder.
func (_u *RecipeUpdate) Where(ps ...predicate.Recipe) *RecipeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecipeUpdate) SetTitle(v string) *RecipeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableTitle(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecipeUpdate) SetDescription(v string) *RecipeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableDescription(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RecipeUpdate) ClearDescription() *RecipeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *RecipeUpdate) SetCategory(v string) *RecipeUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableCategory(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (_u *RecipeUpdate) SetPrepTimeMinutes(v int) *RecipeUpdate {
	_u.mutation.ResetPrepTimeMinutes()
	_u.mutation.SetPrepTimeMinutes(v)
	return _u
}

// SetNillablePrepTimeMinutes sets the "prep_time_minutes" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillablePrepTimeMinutes(v *int) *RecipeUpdate {
	if v != nil {
		_u.SetPrepTimeMinutes(*v)
	}
	return _u
}

// AddPrepTimeMinutes adds value to the "prep_time_minutes" field.
func (_u *RecipeUpdate) AddPrepTimeMinutes(v int) *RecipeUpdate {
	_u.mutation.AddPrepTimeMinutes(v)
	return _u
}

// ClearPrepTimeMinutes clears the value of the "prep_time_minutes" field.
func (_u *RecipeUpdate) ClearPrepTimeMinutes() *RecipeUpdate {
	_u.mutation.ClearPrepTimeMinutes()
	return _u
}

// SetCookTimeMinutes sets the "cook_time_minutes" field.
func (_u *RecipeUpdate) SetCookTimeMinutes(v int) *RecipeUpdate {
	_u.mutation.ResetCookTimeMinutes()
	_u.mutation.SetCookTimeMinutes(v)
	return _u
}

// SetNillableCookTimeMinutes sets the "cook_time_minutes" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableCookTimeMinutes(v *int) *RecipeUpdate {
	if v != nil {
		_u.SetCookTimeMinutes(*v)
	}
	return _u
}

// AddCookTimeMinutes adds value to the "cook_time_minutes" field.
func (_u *RecipeUpdate) AddCookTimeMinutes(v int) *RecipeUpdate {
	_u.mutation.AddCookTimeMinutes(v)
	return _u
}

// ClearCookTimeMinutes clears the value of the "cook_time_minutes" field.
func (_u *RecipeUpdate) ClearCookTimeMinutes() *RecipeUpdate {
	_u.mutation.ClearCookTimeMinutes()
	return _u
}

// SetServings sets the "servings" field.
func (_u *RecipeUpdate) SetServings(v int) *RecipeUpdate {
	_u.mutation.ResetServings()
	_u.mutation.SetServings(v)
	return _u
}

// SetNillableServings sets the "servings" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableServings(v *int) *RecipeUpdate {
	if v != nil {
		_u.SetServings(*v)
	}
	return _u
}

// AddServings adds value to the "servings" field.
func (_u *RecipeUpdate) AddServings(v int) *RecipeUpdate {
	_u.mutation.AddServings(v)
	return _u
}

// ClearServings clears the value of the "servings" field.
func (_u *RecipeUpdate) ClearServings() *RecipeUpdate {
	_u.mutation.ClearServings()
	return _u
}

// SetSource sets the "source" field.
func (_u *RecipeUpdate) SetSource(v string) *RecipeUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableSource(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *RecipeUpdate) ClearSource() *RecipeUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *RecipeUpdate) SetArchived(v bool) *RecipeUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableArchived(v *bool) *RecipeUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecipeUpdate) SetCreatedAt(v time.Time) *RecipeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableCreatedAt(v *time.Time) *RecipeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecipeUpdate) SetUpdatedAt(v time.Time) *RecipeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIngredientIDs adds the "ingredients" edge to the Ingredient entity by IDs.
func (_u *RecipeUpdate) AddIngredientIDs(ids ...uuid.UUID) *RecipeUpdate {
	_u.mutation.AddIngredientIDs(ids...)
	return _u
}

// AddIngredients adds the "ingredients" edges to the Ingredient entity.
func (_u *RecipeUpdate) AddIngredients(v ...*Ingredient) *RecipeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIngredientIDs(ids...)
}

// AddDirectionIDs adds the "directions" edge to the Direction entity by IDs.
func (_u *RecipeUpdate) AddDirectionIDs(ids ...uuid.UUID) *RecipeUpdate {
	_u.mutation.AddDirectionIDs(ids...)
	return _u
}

// AddDirections adds the "directions" edges to the Direction entity.
func (_u *RecipeUpdate) AddDirections(v ...*Direction) *RecipeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDirectionIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *RecipeUpdate) AddTagIDs(ids ...uuid.UUID) *RecipeUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *RecipeUpdate) AddTags(v ...*Tag) *RecipeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the RecipeMutation object of the builder.
func (_u *RecipeUpdate) Mutation() *RecipeMutation {
	return _u.mutation
}

// ClearIngredients clears all "ingredients" edges to the Ingredient entity.
func (_u *RecipeUpdate) ClearIngredients() *RecipeUpdate {
	_u.mutation.ClearIngredients()
	return _u
}

// RemoveIngredientIDs removes the "ingredients" edge to Ingredient entities by IDs.
func (_u *RecipeUpdate) RemoveIngredientIDs(ids ...uuid.UUID) *RecipeUpdate {
	_u.mutation.RemoveIngredientIDs(ids...)
	return _u
}

// RemoveIngredients removes "ingredients" edges to Ingredient entities.
func (_u *RecipeUpdate) RemoveIngredients(v ...*Ingredient) *RecipeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIngredientIDs(ids...)
}

// ClearDirections clears all "directions" edges to the Direction entity.
func (_u *RecipeUpdate) ClearDirections() *RecipeUpdate {
	_u.mutation.ClearDirections()
	return _u
}

// RemoveDirectionIDs removes the "directions" edge to Direction entities by IDs.
func (_u *RecipeUpdate) RemoveDirectionIDs(ids ...uuid.UUID) *RecipeUpdate {
	_u.mutation.RemoveDirectionIDs(ids...)
	return _u
}

// RemoveDirections removes "directions" edges to Direction entities.
func (_u *RecipeUpdate) RemoveDirections(v ...*Direction) *RecipeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDirectionIDs(ids...)
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *RecipeUpdate) ClearTags() *RecipeUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *RecipeUpdate) RemoveTagIDs(ids ...uuid.UUID) *RecipeUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *RecipeUpdate) RemoveTags(v ...*Tag) *RecipeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecipeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecipeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecipeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recipe.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := recipe.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recipe.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recipe.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recipe.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrepTimeMinutes(); ok {
		if err := recipe.PrepTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_time_minutes", err: fmt.Errorf(`ent: validator failed for field "Recipe.prep_time_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CookTimeMinutes(); ok {
		if err := recipe.CookTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "cook_time_minutes", err: fmt.Errorf(`ent: validator failed for field "Recipe.cook_time_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Servings(); ok {
		if err := recipe.ServingsValidator(v); err != nil {
			return &ValidationError{Name: "servings", err: fmt.Errorf(`ent: validator failed for field "Recipe.servings": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := recipe.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Recipe.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RecipeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipe.Table, recipe.Columns, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recipe.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recipe.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(recipe.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(recipe.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrepTimeMinutes(); ok {
		_spec.SetField(recipe.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepTimeMinutes(); ok {
		_spec.AddField(recipe.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.PrepTimeMinutesCleared() {
		_spec.ClearField(recipe.FieldPrepTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.CookTimeMinutes(); ok {
		_spec.SetField(recipe.FieldCookTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCookTimeMinutes(); ok {
		_spec.AddField(recipe.FieldCookTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.CookTimeMinutesCleared() {
		_spec.ClearField(recipe.FieldCookTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Servings(); ok {
		_spec.SetField(recipe.FieldServings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedServings(); ok {
		_spec.AddField(recipe.FieldServings, field.TypeInt, value)
	}
	if _u.mutation.ServingsCleared() {
		_spec.ClearField(recipe.FieldServings, field.TypeInt)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(recipe.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(recipe.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(recipe.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recipe.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recipe.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IngredientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.IngredientsTable,
			Columns: []string{recipe.IngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIngredientsIDs(); len(nodes) > 0 && !_u.mutation.IngredientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.IngredientsTable,
			Columns: []string{recipe.IngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IngredientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.IngredientsTable,
			Columns: []string{recipe.IngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DirectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.DirectionsTable,
			Columns: []string{recipe.DirectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDirectionsIDs(); len(nodes) > 0 && !_u.mutation.DirectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.DirectionsTable,
			Columns: []string{recipe.DirectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DirectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.DirectionsTable,
			Columns: []string{recipe.DirectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.TagsTable,
			Columns: []string{recipe.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.TagsTable,
			Columns: []string{recipe.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.TagsTable,
			Columns: []string{recipe.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecipeUpdateOne is the builder for updating a single Recipe entity.
type RecipeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecipeMutation
}

// SetTitle sets the "title" field.
func (_u *RecipeUpdateOne) SetTitle(v string) *RecipeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableTitle(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecipeUpdateOne) SetDescription(v string) *RecipeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableDescription(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RecipeUpdateOne) ClearDescription() *RecipeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *RecipeUpdateOne) SetCategory(v string) *RecipeUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableCategory(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (_u *RecipeUpdateOne) SetPrepTimeMinutes(v int) *RecipeUpdateOne {
	_u.mutation.ResetPrepTimeMinutes()
	_u.mutation.SetPrepTimeMinutes(v)
	return _u
}

// SetNillablePrepTimeMinutes sets the "prep_time_minutes" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillablePrepTimeMinutes(v *int) *RecipeUpdateOne {
	if v != nil {
		_u.SetPrepTimeMinutes(*v)
	}
	return _u
}

// AddPrepTimeMinutes adds value to the "prep_time_minutes" field.
func (_u *RecipeUpdateOne) AddPrepTimeMinutes(v int) *RecipeUpdateOne {
	_u.mutation.AddPrepTimeMinutes(v)
	return _u
}

// ClearPrepTimeMinutes clears the value of the "prep_time_minutes" field.
func (_u *RecipeUpdateOne) ClearPrepTimeMinutes() *RecipeUpdateOne {
	_u.mutation.ClearPrepTimeMinutes()
	return _u
}

// SetCookTimeMinutes sets the "cook_time_minutes" field.
func (_u *RecipeUpdateOne) SetCookTimeMinutes(v int) *RecipeUpdateOne {
	_u.mutation.ResetCookTimeMinutes()
	_u.mutation.SetCookTimeMinutes(v)
	return _u
}

// SetNillableCookTimeMinutes sets the "cook_time_minutes" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableCookTimeMinutes(v *int) *RecipeUpdateOne {
	if v != nil {
		_u.SetCookTimeMinutes(*v)
	}
	return _u
}

// AddCookTimeMinutes adds value to the "cook_time_minutes" field.
func (_u *RecipeUpdateOne) AddCookTimeMinutes(v int) *RecipeUpdateOne {
	_u.mutation.AddCookTimeMinutes(v)
	return _u
}

// ClearCookTimeMinutes clears the value of the "cook_time_minutes" field.
func (_u *RecipeUpdateOne) ClearCookTimeMinutes() *RecipeUpdateOne {
	_u.mutation.ClearCookTimeMinutes()
	return _u
}

// SetServings sets the "servings" field.
func (_u *RecipeUpdateOne) SetServings(v int) *RecipeUpdateOne {
	_u.mutation.ResetServings()
	_u.mutation.SetServings(v)
	return _u
}

// SetNillableServings sets the "servings" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableServings(v *int) *RecipeUpdateOne {
	if v != nil {
		_u.SetServings(*v)
	}
	return _u
}

// AddServings adds value to the "servings" field.
func (_u *RecipeUpdateOne) AddServings(v int) *RecipeUpdateOne {
	_u.mutation.AddServings(v)
	return _u
}

// ClearServings clears the value of the "servings" field.
func (_u *RecipeUpdateOne) ClearServings() *RecipeUpdateOne {
	_u.mutation.ClearServings()
	return _u
}

// SetSource sets the "source" field.
func (_u *RecipeUpdateOne) SetSource(v string) *RecipeUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableSource(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *RecipeUpdateOne) ClearSource() *RecipeUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *RecipeUpdateOne) SetArchived(v bool) *RecipeUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableArchived(v *bool) *RecipeUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecipeUpdateOne) SetCreatedAt(v time.Time) *RecipeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableCreatedAt(v *time.Time) *RecipeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecipeUpdateOne) SetUpdatedAt(v time.Time) *RecipeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIngredientIDs adds the "ingredients" edge to the Ingredient entity by IDs.
func (_u *RecipeUpdateOne) AddIngredientIDs(ids ...uuid.UUID) *RecipeUpdateOne {
	_u.mutation.AddIngredientIDs(ids...)
	return _u
}

// AddIngredients adds the "ingredients" edges to the Ingredient entity.
func (_u *RecipeUpdateOne) AddIngredients(v ...*Ingredient) *RecipeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIngredientIDs(ids...)
}

// AddDirectionIDs adds the "directions" edge to the Direction entity by IDs.
func (_u *RecipeUpdateOne) AddDirectionIDs(ids ...uuid.UUID) *RecipeUpdateOne {
	_u.mutation.AddDirectionIDs(ids...)
	return _u
}

// AddDirections adds the "directions" edges to the Direction entity.
func (_u *RecipeUpdateOne) AddDirections(v ...*Direction) *RecipeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDirectionIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *RecipeUpdateOne) AddTagIDs(ids ...uuid.UUID) *RecipeUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *RecipeUpdateOne) AddTags(v ...*Tag) *RecipeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the RecipeMutation object of the builder.
func (_u *RecipeUpdateOne) Mutation() *RecipeMutation {
	return _u.mutation
}

// ClearIngredients clears all "ingredients" edges to the Ingredient entity.
func (_u *RecipeUpdateOne) ClearIngredients() *RecipeUpdateOne {
	_u.mutation.ClearIngredients()
	return _u
}

// RemoveIngredientIDs removes the "ingredients" edge to Ingredient entities by IDs.
func (_u *RecipeUpdateOne) RemoveIngredientIDs(ids ...uuid.UUID) *RecipeUpdateOne {
	_u.mutation.RemoveIngredientIDs(ids...)
	return _u
}

// RemoveIngredients removes "ingredients" edges to Ingredient entities.
func (_u *RecipeUpdateOne) RemoveIngredients(v ...*Ingredient) *RecipeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIngredientIDs(ids...)
}

// ClearDirections clears all "directions" edges to the Direction entity.
func (_u *RecipeUpdateOne) ClearDirections() *RecipeUpdateOne {
	_u.mutation.ClearDirections()
	return _u
}

// RemoveDirectionIDs removes the "directions" edge to Direction entities by IDs.
func (_u *RecipeUpdateOne) RemoveDirectionIDs(ids ...uuid.UUID) *RecipeUpdateOne {
	_u.mutation.RemoveDirectionIDs(ids...)
	return _u
}

// RemoveDirections removes "directions" edges to Direction entities.
func (_u *RecipeUpdateOne) RemoveDirections(v ...*Direction) *RecipeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDirectionIDs(ids...)
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *RecipeUpdateOne) ClearTags() *RecipeUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *RecipeUpdateOne) RemoveTagIDs(ids ...uuid.UUID) *RecipeUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *RecipeUpdateOne) RemoveTags(v ...*Tag) *RecipeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the RecipeUpdate builder.
func (_u *RecipeUpdateOne) Where(ps ...predicate.Recipe) *RecipeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecipeUpdateOne) Select(field string, fields ...string) *RecipeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recipe entity.
func (_u *RecipeUpdateOne) Save(ctx context.Context) (*Recipe, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeUpdateOne) SaveX(ctx context.Context) *Recipe {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecipeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecipeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recipe.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := recipe.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recipe.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := recipe.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recipe.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrepTimeMinutes(); ok {
		if err := recipe.PrepTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_time_minutes", err: fmt.Errorf(`ent: validator failed for field "Recipe.prep_time_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CookTimeMinutes(); ok {
		if err := recipe.CookTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "cook_time_minutes", err: fmt.Errorf(`ent: validator failed for field "Recipe.cook_time_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Servings(); ok {
		if err := recipe.ServingsValidator(v); err != nil {
			return &ValidationError{Name: "servings", err: fmt.Errorf(`ent: validator failed for field "Recipe.servings": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := recipe.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Recipe.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RecipeUpdateOne) sqlSave(ctx context.Context) (_node *Recipe, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipe.Table, recipe.Columns, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recipe.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipe.FieldID)
		for _, f := range fields {
			if !recipe.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recipe.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recipe.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recipe.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(recipe.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(recipe.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrepTimeMinutes(); ok {
		_spec.SetField(recipe.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrepTimeMinutes(); ok {
		_spec.AddField(recipe.FieldPrepTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.PrepTimeMinutesCleared() {
		_spec.ClearField(recipe.FieldPrepTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.CookTimeMinutes(); ok {
		_spec.SetField(recipe.FieldCookTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCookTimeMinutes(); ok {
		_spec.AddField(recipe.FieldCookTimeMinutes, field.TypeInt, value)
	}
	if _u.mutation.CookTimeMinutesCleared() {
		_spec.ClearField(recipe.FieldCookTimeMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Servings(); ok {
		_spec.SetField(recipe.FieldServings, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedServings(); ok {
		_spec.AddField(recipe.FieldServings, field.TypeInt, value)
	}
	if _u.mutation.ServingsCleared() {
		_spec.ClearField(recipe.FieldServings, field.TypeInt)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(recipe.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(recipe.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(recipe.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recipe.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recipe.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IngredientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.IngredientsTable,
			Columns: []string{recipe.IngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIngredientsIDs(); len(nodes) > 0 && !_u.mutation.IngredientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.IngredientsTable,
			Columns: []string{recipe.IngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IngredientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.IngredientsTable,
			Columns: []string{recipe.IngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DirectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.DirectionsTable,
			Columns: []string{recipe.DirectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDirectionsIDs(); len(nodes) > 0 && !_u.mutation.DirectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.DirectionsTable,
			Columns: []string{recipe.DirectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DirectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.DirectionsTable,
			Columns: []string{recipe.DirectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.TagsTable,
			Columns: []string{recipe.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.TagsTable,
			Columns: []string{recipe.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.TagsTable,
			Columns: []string{recipe.TagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recipe{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
