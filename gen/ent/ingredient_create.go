// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/recipe"
)

// IngredientCreate is the builder for creating a Ingredient entity.
type IngredientCreate struct {
	config
	mutation *IngredientMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *IngredientCreate) SetText(v string) *IngredientCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *IngredientCreate) SetAmount(v string) *IngredientCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *IngredientCreate) SetNillableAmount(v *string) *IngredientCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *IngredientCreate) SetUnit(v string) *IngredientCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *IngredientCreate) SetNillableUnit(v *string) *IngredientCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *IngredientCreate) SetPosition(v int) *IngredientCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *IngredientCreate) SetID(v uuid.UUID) *IngredientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngredientCreate) SetNillableID(v *uuid.UUID) *IngredientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by ID.
func (_c *IngredientCreate) SetRecipeID(id uuid.UUID) *IngredientCreate {
	_c.mutation.SetRecipeID(id)
	return _c
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_c *IngredientCreate) SetRecipe(v *Recipe) *IngredientCreate {
	return _c.SetRecipeID(v.ID)
}

// Mutation returns the IngredientMutation object of the builder.
func (_c *IngredientCreate) Mutation() *IngredientMutation {
	return _c.mutation
}

// Save creates the Ingredient in the database.
func (_c *IngredientCreate) Save(ctx context.Context) (*Ingredient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngredientCreate) SaveX(ctx context.Context) *Ingredient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngredientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngredientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngredientCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := ingredient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngredientCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Ingredient.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := ingredient.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Ingredient.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Ingredient.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := ingredient.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Ingredient.position": %w`, err)}
		}
	}
	if len(_c.mutation.RecipeIDs()) == 0 {
		return &ValidationError{Name: "recipe", err: errors.New(`ent: missing required edge "Ingredient.recipe"`)}
	}
	return nil
}

func (_c *IngredientCreate) sqlSave(ctx context.Context) (*Ingredient, error) {
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

func (_c *IngredientCreate) createSpec() (*Ingredient, *sqlgraph.CreateSpec) {
	var (
		_node = &Ingredient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingredient.Table, sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(ingredient.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(ingredient.FieldAmount, field.TypeString, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(ingredient.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(ingredient.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.RecipeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingredient.RecipeTable,
			Columns: []string{ingredient.RecipeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.recipe_ingredients = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IngredientCreateBulk is the builder for creating many Ingredient entities in bulk.
type IngredientCreateBulk struct {
	config
	err      error
	builders []*IngredientCreate
}

// Save creates the Ingredient entities in the database.
func (_c *IngredientCreateBulk) Save(ctx context.Context) ([]*Ingredient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ingredient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngredientMutation)
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
func (_c *IngredientCreateBulk) SaveX(ctx context.Context) []*Ingredient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngredientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngredientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
