// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/recipe"
	"github.com/snapdish/snapdish/gen/ent/tag"
)

// RecipeCreate is the builder for creating a Recipe entity.
type RecipeCreate struct {
	config
	mutation *RecipeMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *RecipeCreate) SetTitle(v string) *RecipeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecipeCreate) SetDescription(v string) *RecipeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableDescription(v *string) *RecipeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RecipeCreate) SetCategory(v string) *RecipeCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableCategory(v *string) *RecipeCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (_c *RecipeCreate) SetPrepTimeMinutes(v int) *RecipeCreate {
	_c.mutation.SetPrepTimeMinutes(v)
	return _c
}

// SetNillablePrepTimeMinutes sets the "prep_time_minutes" field if the given value is not nil.
func (_c *RecipeCreate) SetNillablePrepTimeMinutes(v *int) *RecipeCreate {
	if v != nil {
		_c.SetPrepTimeMinutes(*v)
	}
	return _c
}

// SetCookTimeMinutes sets the "cook_time_minutes" field.
func (_c *RecipeCreate) SetCookTimeMinutes(v int) *RecipeCreate {
	_c.mutation.SetCookTimeMinutes(v)
	return _c
}

// SetNillableCookTimeMinutes sets the "cook_time_minutes" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableCookTimeMinutes(v *int) *RecipeCreate {
	if v != nil {
		_c.SetCookTimeMinutes(*v)
	}
	return _c
}

// SetServings sets the "servings" field.
func (_c *RecipeCreate) SetServings(v int) *RecipeCreate {
	_c.mutation.SetServings(v)
	return _c
}

// SetNillableServings sets the "servings" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableServings(v *int) *RecipeCreate {
	if v != nil {
		_c.SetServings(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *RecipeCreate) SetSource(v string) *RecipeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableSource(v *string) *RecipeCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *RecipeCreate) SetArchived(v bool) *RecipeCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableArchived(v *bool) *RecipeCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecipeCreate) SetCreatedAt(v time.Time) *RecipeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableCreatedAt(v *time.Time) *RecipeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecipeCreate) SetUpdatedAt(v time.Time) *RecipeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableUpdatedAt(v *time.Time) *RecipeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecipeCreate) SetID(v uuid.UUID) *RecipeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableID(v *uuid.UUID) *RecipeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddIngredientIDs adds the "ingredients" edge to the Ingredient entity by IDs.
func (_c *RecipeCreate) AddIngredientIDs(ids ...uuid.UUID) *RecipeCreate {
	_c.mutation.AddIngredientIDs(ids...)
	return _c
}

// AddIngredients adds the "ingredients" edges to the Ingredient entity.
func (_c *RecipeCreate) AddIngredients(v ...*Ingredient) *RecipeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIngredientIDs(ids...)
}

// AddDirectionIDs adds the "directions" edge to the Direction entity by IDs.
func (_c *RecipeCreate) AddDirectionIDs(ids ...uuid.UUID) *RecipeCreate {
	_c.mutation.AddDirectionIDs(ids...)
	return _c
}

// AddDirections adds the "directions" edges to the Direction entity.
func (_c *RecipeCreate) AddDirections(v ...*Direction) *RecipeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDirectionIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_c *RecipeCreate) AddTagIDs(ids ...uuid.UUID) *RecipeCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the Tag entity.
func (_c *RecipeCreate) AddTags(v ...*Tag) *RecipeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// Mutation returns the RecipeMutation object of the builder.
func (_c *RecipeCreate) Mutation() *RecipeMutation {
	return _c.mutation
}

// Save creates the Recipe in the database.
func (_c *RecipeCreate) Save(ctx context.Context) (*Recipe, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecipeCreate) SaveX(ctx context.Context) *Recipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecipeCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := recipe.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := recipe.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recipe.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recipe.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := recipe.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecipeCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Recipe.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := recipe.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Recipe.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := recipe.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Recipe.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Recipe.category"`)}
	}
	if v, ok := _c.mutation.PrepTimeMinutes(); ok {
		if err := recipe.PrepTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "prep_time_minutes", err: fmt.Errorf(`ent: validator failed for field "Recipe.prep_time_minutes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CookTimeMinutes(); ok {
		if err := recipe.CookTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "cook_time_minutes", err: fmt.Errorf(`ent: validator failed for field "Recipe.cook_time_minutes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Servings(); ok {
		if err := recipe.ServingsValidator(v); err != nil {
			return &ValidationError{Name: "servings", err: fmt.Errorf(`ent: validator failed for field "Recipe.servings": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := recipe.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Recipe.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Recipe.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recipe.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Recipe.updated_at"`)}
	}
	return nil
}

func (_c *RecipeCreate) sqlSave(ctx context.Context) (*Recipe, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecipeCreate) createSpec() (*Recipe, *sqlgraph.CreateSpec) {
	var (
		_node = &Recipe{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recipe.Table, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(recipe.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recipe.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(recipe.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.PrepTimeMinutes(); ok {
		_spec.SetField(recipe.FieldPrepTimeMinutes, field.TypeInt, value)
		_node.PrepTimeMinutes = &value
	}
	if value, ok := _c.mutation.CookTimeMinutes(); ok {
		_spec.SetField(recipe.FieldCookTimeMinutes, field.TypeInt, value)
		_node.CookTimeMinutes = &value
	}
	if value, ok := _c.mutation.Servings(); ok {
		_spec.SetField(recipe.FieldServings, field.TypeInt, value)
		_node.Servings = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(recipe.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(recipe.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recipe.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recipe.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IngredientsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DirectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecipeCreateBulk is the builder for creating many Recipe entities in bulk.
type RecipeCreateBulk struct {
	config
	err      error
	builders []*RecipeCreate
}

// Save creates the Recipe entities in the database.
func (_c *RecipeCreateBulk) Save(ctx context.Context) ([]*Recipe, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recipe, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecipeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecipeCreateBulk) SaveX(ctx context.Context) []*Recipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
