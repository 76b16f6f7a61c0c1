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
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/predicate"
	"github.com/snapdish/snapdish/gen/ent/recipe"
)

// IngredientUpdate is the builder for updating Ingredient entities.
type IngredientUpdate struct {
	config
	hooks    []Hook
	mutation *IngredientMutation
}

// Where appends a list predicates to the IngredientUpdate builder.
func (_u *IngredientUpdate) Where(ps ...predicate.Ingredient) *IngredientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *IngredientUpdate) SetText(v string) *IngredientUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *IngredientUpdate) SetNillableText(v *string) *IngredientUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *IngredientUpdate) SetAmount(v string) *IngredientUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *IngredientUpdate) SetNillableAmount(v *string) *IngredientUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *IngredientUpdate) ClearAmount() *IngredientUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *IngredientUpdate) SetUnit(v string) *IngredientUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *IngredientUpdate) SetNillableUnit(v *string) *IngredientUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *IngredientUpdate) ClearUnit() *IngredientUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetPosition sets the "position" field.
func (_u *IngredientUpdate) SetPosition(v int) *IngredientUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *IngredientUpdate) SetNillablePosition(v *int) *IngredientUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *IngredientUpdate) AddPosition(v int) *IngredientUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by ID.
func (_u *IngredientUpdate) SetRecipeID(id uuid.UUID) *IngredientUpdate {
	_u.mutation.SetRecipeID(id)
	return _u
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *IngredientUpdate) SetRecipe(v *Recipe) *IngredientUpdate {
	return _u.SetRecipeID(v.ID)
}

// Mutation returns the IngredientMutation object of the builder.
func (_u *IngredientUpdate) Mutation() *IngredientMutation {
	return _u.mutation
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *IngredientUpdate) ClearRecipe() *IngredientUpdate {
	_u.mutation.ClearRecipe()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngredientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngredientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngredientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngredientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngredientUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := ingredient.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Ingredient.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := ingredient.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Ingredient.position": %w`, err)}
		}
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ingredient.recipe"`)
	}
	return nil
}

func (_u *IngredientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingredient.Table, ingredient.Columns, sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(ingredient.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ingredient.FieldAmount, field.TypeString, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(ingredient.FieldAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(ingredient.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(ingredient.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(ingredient.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(ingredient.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.RecipeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingredient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngredientUpdateOne is the builder for updating a single Ingredient entity.
type IngredientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngredientMutation
}

// SetText sets the "text" field.
func (_u *IngredientUpdateOne) SetText(v string) *IngredientUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *IngredientUpdateOne) SetNillableText(v *string) *IngredientUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *IngredientUpdateOne) SetAmount(v string) *IngredientUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *IngredientUpdateOne) SetNillableAmount(v *string) *IngredientUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *IngredientUpdateOne) ClearAmount() *IngredientUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *IngredientUpdateOne) SetUnit(v string) *IngredientUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *IngredientUpdateOne) SetNillableUnit(v *string) *IngredientUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *IngredientUpdateOne) ClearUnit() *IngredientUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetPosition sets the "position" field.
func (_u *IngredientUpdateOne) SetPosition(v int) *IngredientUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *IngredientUpdateOne) SetNillablePosition(v *int) *IngredientUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *IngredientUpdateOne) AddPosition(v int) *IngredientUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by ID.
func (_u *IngredientUpdateOne) SetRecipeID(id uuid.UUID) *IngredientUpdateOne {
	_u.mutation.SetRecipeID(id)
	return _u
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *IngredientUpdateOne) SetRecipe(v *Recipe) *IngredientUpdateOne {
	return _u.SetRecipeID(v.ID)
}

// Mutation returns the IngredientMutation object of the builder.
func (_u *IngredientUpdateOne) Mutation() *IngredientMutation {
	return _u.mutation
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *IngredientUpdateOne) ClearRecipe() *IngredientUpdateOne {
	_u.mutation.ClearRecipe()
	return _u
}

// Where appends a list predicates to the IngredientUpdate builder.
func (_u *IngredientUpdateOne) Where(ps ...predicate.Ingredient) *IngredientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngredientUpdateOne) Select(field string, fields ...string) *IngredientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ingredient entity.
func (_u *IngredientUpdateOne) Save(ctx context.Context) (*Ingredient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngredientUpdateOne) SaveX(ctx context.Context) *Ingredient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngredientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngredientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngredientUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := ingredient.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Ingredient.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := ingredient.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Ingredient.position": %w`, err)}
		}
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ingredient.recipe"`)
	}
	return nil
}

func (_u *IngredientUpdateOne) sqlSave(ctx context.Context) (_node *Ingredient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingredient.Table, ingredient.Columns, sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ingredient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingredient.FieldID)
		for _, f := range fields {
			if !ingredient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingredient.FieldID {
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
		_spec.SetField(ingredient.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ingredient.FieldAmount, field.TypeString, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(ingredient.FieldAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(ingredient.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(ingredient.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(ingredient.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(ingredient.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.RecipeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Ingredient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingredient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
