// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/recipe"
)

// DirectionCreate is the builder for creating a Direction entity.
type DirectionCreate struct {
	config
	mutation *DirectionMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *DirectionCreate) SetText(v string) *DirectionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *DirectionCreate) SetPosition(v int) *DirectionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetIsListItem sets the "is_list_item" field.
func (_c *DirectionCreate) SetIsListItem(v bool) *DirectionCreate {
	_c.mutation.SetIsListItem(v)
	return _c
}

// SetNillableIsListItem sets the "is_list_item" field if the given value is not nil.
func (_c *DirectionCreate) SetNillableIsListItem(v *bool) *DirectionCreate {
	if v != nil {
		_c.SetIsListItem(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DirectionCreate) SetID(v uuid.UUID) *DirectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DirectionCreate) SetNillableID(v *uuid.UUID) *DirectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by ID.
func (_c *DirectionCreate) SetRecipeID(id uuid.UUID) *DirectionCreate {
	_c.mutation.SetRecipeID(id)
	return _c
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_c *DirectionCreate) SetRecipe(v *Recipe) *DirectionCreate {
	return _c.SetRecipeID(v.ID)
}

// Mutation returns the DirectionMutation object of the builder.
func (_c *DirectionCreate) Mutation() *DirectionMutation {
	return _c.mutation
}

// Save creates the Direction in the database.
func (_c *DirectionCreate) Save(ctx context.Context) (*Direction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DirectionCreate) SaveX(ctx context.Context) *Direction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DirectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DirectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DirectionCreate) defaults() {
	if _, ok := _c.mutation.IsListItem(); !ok {
		v := direction.DefaultIsListItem
		_c.mutation.SetIsListItem(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := direction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DirectionCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Direction.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := direction.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Direction.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Direction.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := direction.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Direction.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsListItem(); !ok {
		return &ValidationError{Name: "is_list_item", err: errors.New(`ent: missing required field "Direction.is_list_item"`)}
	}
	if len(_c.mutation.RecipeIDs()) == 0 {
		return &ValidationError{Name: "recipe", err: errors.New(`ent: missing required edge "Direction.recipe"`)}
	}
	return nil
}

func (_c *DirectionCreate) sqlSave(ctx context.Context) (*Direction, error) {
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

func (_c *DirectionCreate) createSpec() (*Direction, *sqlgraph.CreateSpec) {
	var (
		_node = &Direction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(direction.Table, sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(direction.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(direction.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.IsListItem(); ok {
		_spec.SetField(direction.FieldIsListItem, field.TypeBool, value)
		_node.IsListItem = value
	}
	if nodes := _c.mutation.RecipeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   direction.RecipeTable,
			Columns: []string{direction.RecipeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.recipe_directions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DirectionCreateBulk is the builder for creating many Direction entities in bulk.
type DirectionCreateBulk struct {
	config
	err      error
	builders []*DirectionCreate
}

// Save creates the Direction entities in the database.
func (_c *DirectionCreateBulk) Save(ctx context.Context) ([]*Direction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Direction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DirectionMutation)
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
func (_c *DirectionCreateBulk) SaveX(ctx context.Context) []*Direction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DirectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DirectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
