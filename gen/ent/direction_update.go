// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/predicate"
	"github.com/snapdish/snapdish/gen/ent/recipe"
)

// DirectionUpdate is the builder for updating Direction entities.
type DirectionUpdate struct {
	config
	hooks    []Hook
	mutation *DirectionMutation
}

// Where appends a list predicates to the DirectionUpdate builder.
func (_u *DirectionUpdate) Where(ps ...predicate.Direction) *DirectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *DirectionUpdate) SetText(v string) *DirectionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DirectionUpdate) SetNillableText(v *string) *DirectionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *DirectionUpdate) SetPosition(v int) *DirectionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *DirectionUpdate) SetNillablePosition(v *int) *DirectionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *DirectionUpdate) AddPosition(v int) *DirectionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetIsListItem sets the "is_list_item" field.
func (_u *DirectionUpdate) SetIsListItem(v bool) *DirectionUpdate {
	_u.mutation.SetIsListItem(v)
	return _u
}

// SetNillableIsListItem sets the "is_list_item" field if the given value is not nil.
func (_u *DirectionUpdate) SetNillableIsListItem(v *bool) *DirectionUpdate {
	if v != nil {
		_u.SetIsListItem(*v)
	}
	return _u
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by ID.
func (_u *DirectionUpdate) SetRecipeID(id uuid.UUID) *DirectionUpdate {
	_u.mutation.SetRecipeID(id)
	return _u
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *DirectionUpdate) SetRecipe(v *Recipe) *DirectionUpdate {
	return _u.SetRecipeID(v.ID)
}

// Mutation returns the DirectionMutation object of the builder.
func (_u *DirectionUpdate) Mutation() *DirectionMutation {
	return _u.mutation
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *DirectionUpdate) ClearRecipe() *DirectionUpdate {
	_u.mutation.ClearRecipe()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DirectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DirectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DirectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DirectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DirectionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := direction.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Direction.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := direction.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Direction.position": %w`, err)}
		}
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Direction.recipe"`)
	}
	return nil
}

func (_u *DirectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(direction.Table, direction.Columns, sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(direction.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(direction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(direction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsListItem(); ok {
		_spec.SetField(direction.FieldIsListItem, field.TypeBool, value)
	}
	if _u.mutation.RecipeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{direction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DirectionUpdateOne is the builder for updating a single Direction entity.
type DirectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DirectionMutation
}

// SetText sets the "text" field.
func (_u *DirectionUpdateOne) SetText(v string) *DirectionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DirectionUpdateOne) SetNillableText(v *string) *DirectionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *DirectionUpdateOne) SetPosition(v int) *DirectionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *DirectionUpdateOne) SetNillablePosition(v *int) *DirectionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *DirectionUpdateOne) AddPosition(v int) *DirectionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetIsListItem sets the "is_list_item" field.
func (_u *DirectionUpdateOne) SetIsListItem(v bool) *DirectionUpdateOne {
	_u.mutation.SetIsListItem(v)
	return _u
}

// SetNillableIsListItem sets the "is_list_item" field if the given value is not nil.
func (_u *DirectionUpdateOne) SetNillableIsListItem(v *bool) *DirectionUpdateOne {
	if v != nil {
		_u.SetIsListItem(*v)
	}
	return _u
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by ID.
func (_u *DirectionUpdateOne) SetRecipeID(id uuid.UUID) *DirectionUpdateOne {
	_u.mutation.SetRecipeID(id)
	return _u
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *DirectionUpdateOne) SetRecipe(v *Recipe) *DirectionUpdateOne {
	return _u.SetRecipeID(v.ID)
}

// Mutation returns the DirectionMutation object of the builder.
func (_u *DirectionUpdateOne) Mutation() *DirectionMutation {
	return _u.mutation
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *DirectionUpdateOne) ClearRecipe() *DirectionUpdateOne {
	_u.mutation.ClearRecipe()
	return _u
}

// Where appends a list predicates to the DirectionUpdate builder.
func (_u *DirectionUpdateOne) Where(ps ...predicate.Direction) *DirectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DirectionUpdateOne) Select(field string, fields ...string) *DirectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Direction entity.
func (_u *DirectionUpdateOne) Save(ctx context.Context) (*Direction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DirectionUpdateOne) SaveX(ctx context.Context) *Direction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DirectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DirectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DirectionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := direction.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Direction.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := direction.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Direction.position": %w`, err)}
		}
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Direction.recipe"`)
	}
	return nil
}

func (_u *DirectionUpdateOne) sqlSave(ctx context.Context) (_node *Direction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(direction.Table, direction.Columns, sqlgraph.NewFieldSpec(direction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Direction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, direction.FieldID)
		for _, f := range fields {
			if !direction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != direction.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(direction.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(direction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(direction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsListItem(); ok {
		_spec.SetField(direction.FieldIsListItem, field.TypeBool, value)
	}
	if _u.mutation.RecipeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Direction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{direction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
