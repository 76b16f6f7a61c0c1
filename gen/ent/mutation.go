// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/ingredient"
	"github.com/snapdish/snapdish/gen/ent/predicate"
	"github.com/snapdish/snapdish/gen/ent/recipe"
	"github.com/snapdish/snapdish/gen/ent/tag"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDirection  = "Direction"
	TypeIngredient = "Ingredient"
	TypeRecipe     = "Recipe"
	TypeTag        = "Tag"
)

// DirectionMutation represents an operation that mutates the Direction nodes in the graph.
type DirectionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	text          *string
	position      *int
	addposition   *int
	is_list_item  *bool
	clearedFields map[string]struct{}
	recipe        *uuid.UUID
	clearedrecipe bool
	done          bool
	oldValue      func(context.Context) (*Direction, error)
	predicates    []predicate.Direction
}

var _ ent.Mutation = (*DirectionMutation)(nil)

// directionOption allows management of the mutation configuration using functional options.
type directionOption func(*DirectionMutation)

// newDirectionMutation creates new mutation for the Direction entity.
func newDirectionMutation(c config, op Op, opts ...directionOption) *DirectionMutation {
	m := &DirectionMutation{
		config:        c,
		op:            op,
		typ:           TypeDirection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDirectionID sets the ID field of the mutation.
func withDirectionID(id uuid.UUID) directionOption {
	return func(m *DirectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Direction
		)
		m.oldValue = func(ctx context.Context) (*Direction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Direction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDirection sets the old Direction of the mutation.
func withDirection(node *Direction) directionOption {
	return func(m *DirectionMutation) {
		m.oldValue = func(context.Context) (*Direction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DirectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DirectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Direction entities.
func (m *DirectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DirectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DirectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Direction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *DirectionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *DirectionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Direction entity.
// If the Direction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *DirectionMutation) ResetText() {
	m.text = nil
}

// SetPosition sets the "position" field.
func (m *DirectionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *DirectionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Direction entity.
// If the Direction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *DirectionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *DirectionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *DirectionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetIsListItem sets the "is_list_item" field.
func (m *DirectionMutation) SetIsListItem(b bool) {
	m.is_list_item = &b
}

// IsListItem returns the value of the "is_list_item" field in the mutation.
func (m *DirectionMutation) IsListItem() (r bool, exists bool) {
	v := m.is_list_item
	if v == nil {
		return
	}
	return *v, true
}

// OldIsListItem returns the old "is_list_item" field's value of the Direction entity.
// If the Direction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectionMutation) OldIsListItem(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsListItem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsListItem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsListItem: %w", err)
	}
	return oldValue.IsListItem, nil
}

// ResetIsListItem resets all changes to the "is_list_item" field.
func (m *DirectionMutation) ResetIsListItem() {
	m.is_list_item = nil
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by id.
func (m *DirectionMutation) SetRecipeID(id uuid.UUID) {
	m.recipe = &id
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (m *DirectionMutation) ClearRecipe() {
	m.clearedrecipe = true
}

// RecipeCleared reports if the "recipe" edge to the Recipe entity was cleared.
func (m *DirectionMutation) RecipeCleared() bool {
	return m.clearedrecipe
}

// RecipeID returns the "recipe" edge ID in the mutation.
func (m *DirectionMutation) RecipeID() (id uuid.UUID, exists bool) {
	if m.recipe != nil {
		return *m.recipe, true
	}
	return
}

// RecipeIDs returns the "recipe" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipeID instead. It exists only for internal usage by the builders.
func (m *DirectionMutation) RecipeIDs() (ids []uuid.UUID) {
	if id := m.recipe; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipe resets all changes to the "recipe" edge.
func (m *DirectionMutation) ResetRecipe() {
	m.recipe = nil
	m.clearedrecipe = false
}

// Where appends a list predicates to the DirectionMutation builder.
func (m *DirectionMutation) Where(ps ...predicate.Direction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DirectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DirectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Direction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DirectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DirectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Direction).
func (m *DirectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DirectionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.text != nil {
		fields = append(fields, direction.FieldText)
	}
	if m.position != nil {
		fields = append(fields, direction.FieldPosition)
	}
	if m.is_list_item != nil {
		fields = append(fields, direction.FieldIsListItem)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DirectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case direction.FieldText:
		return m.Text()
	case direction.FieldPosition:
		return m.Position()
	case direction.FieldIsListItem:
		return m.IsListItem()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DirectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case direction.FieldText:
		return m.OldText(ctx)
	case direction.FieldPosition:
		return m.OldPosition(ctx)
	case direction.FieldIsListItem:
		return m.OldIsListItem(ctx)
	}
	return nil, fmt.Errorf("unknown Direction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DirectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case direction.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case direction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case direction.FieldIsListItem:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsListItem(v)
		return nil
	}
	return fmt.Errorf("unknown Direction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DirectionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, direction.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DirectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case direction.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DirectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case direction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Direction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DirectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DirectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DirectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Direction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DirectionMutation) ResetField(name string) error {
	switch name {
	case direction.FieldText:
		m.ResetText()
		return nil
	case direction.FieldPosition:
		m.ResetPosition()
		return nil
	case direction.FieldIsListItem:
		m.ResetIsListItem()
		return nil
	}
	return fmt.Errorf("unknown Direction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DirectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recipe != nil {
		edges = append(edges, direction.EdgeRecipe)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DirectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case direction.EdgeRecipe:
		if id := m.recipe; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DirectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DirectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DirectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecipe {
		edges = append(edges, direction.EdgeRecipe)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DirectionMutation) EdgeCleared(name string) bool {
	switch name {
	case direction.EdgeRecipe:
		return m.clearedrecipe
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DirectionMutation) ClearEdge(name string) error {
	switch name {
	case direction.EdgeRecipe:
		m.ClearRecipe()
		return nil
	}
	return fmt.Errorf("unknown Direction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DirectionMutation) ResetEdge(name string) error {
	switch name {
	case direction.EdgeRecipe:
		m.ResetRecipe()
		return nil
	}
	return fmt.Errorf("unknown Direction edge %s", name)
}

// IngredientMutation represents an operation that mutates the Ingredient nodes in the graph.
type IngredientMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	text          *string
	amount        *string
	unit          *string
	position      *int
	addposition   *int
	clearedFields map[string]struct{}
	recipe        *uuid.UUID
	clearedrecipe bool
	done          bool
	oldValue      func(context.Context) (*Ingredient, error)
	predicates    []predicate.Ingredient
}

var _ ent.Mutation = (*IngredientMutation)(nil)

// ingredientOption allows management of the mutation configuration using functional options.
type ingredientOption func(*IngredientMutation)

// newIngredientMutation creates new mutation for the Ingredient entity.
func newIngredientMutation(c config, op Op, opts ...ingredientOption) *IngredientMutation {
	m := &IngredientMutation{
		config:        c,
		op:            op,
		typ:           TypeIngredient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngredientID sets the ID field of the mutation.
func withIngredientID(id uuid.UUID) ingredientOption {
	return func(m *IngredientMutation) {
		var (
			err   error
			once  sync.Once
			value *Ingredient
		)
		m.oldValue = func(ctx context.Context) (*Ingredient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ingredient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngredient sets the old Ingredient of the mutation.
func withIngredient(node *Ingredient) ingredientOption {
	return func(m *IngredientMutation) {
		m.oldValue = func(context.Context) (*Ingredient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngredientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngredientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ingredient entities.
func (m *IngredientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngredientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngredientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ingredient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *IngredientMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *IngredientMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Ingredient entity.
// If the Ingredient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngredientMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *IngredientMutation) ResetText() {
	m.text = nil
}

// SetAmount sets the "amount" field.
func (m *IngredientMutation) SetAmount(s string) {
	m.amount = &s
}

// Amount returns the value of the "amount" field in the mutation.
func (m *IngredientMutation) Amount() (r string, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Ingredient entity.
// If the Ingredient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngredientMutation) OldAmount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ClearAmount clears the value of the "amount" field.
func (m *IngredientMutation) ClearAmount() {
	m.amount = nil
	m.clearedFields[ingredient.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *IngredientMutation) AmountCleared() bool {
	_, ok := m.clearedFields[ingredient.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *IngredientMutation) ResetAmount() {
	m.amount = nil
	delete(m.clearedFields, ingredient.FieldAmount)
}

// SetUnit sets the "unit" field.
func (m *IngredientMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *IngredientMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Ingredient entity.
// If the Ingredient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngredientMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *IngredientMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[ingredient.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *IngredientMutation) UnitCleared() bool {
	_, ok := m.clearedFields[ingredient.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *IngredientMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, ingredient.FieldUnit)
}

// SetPosition sets the "position" field.
func (m *IngredientMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *IngredientMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Ingredient entity.
// If the Ingredient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngredientMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *IngredientMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *IngredientMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *IngredientMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by id.
func (m *IngredientMutation) SetRecipeID(id uuid.UUID) {
	m.recipe = &id
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (m *IngredientMutation) ClearRecipe() {
	m.clearedrecipe = true
}

// RecipeCleared reports if the "recipe" edge to the Recipe entity was cleared.
func (m *IngredientMutation) RecipeCleared() bool {
	return m.clearedrecipe
}

// RecipeID returns the "recipe" edge ID in the mutation.
func (m *IngredientMutation) RecipeID() (id uuid.UUID, exists bool) {
	if m.recipe != nil {
		return *m.recipe, true
	}
	return
}

// RecipeIDs returns the "recipe" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipeID instead. It exists only for internal usage by the builders.
func (m *IngredientMutation) RecipeIDs() (ids []uuid.UUID) {
	if id := m.recipe; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipe resets all changes to the "recipe" edge.
func (m *IngredientMutation) ResetRecipe() {
	m.recipe = nil
	m.clearedrecipe = false
}

// Where appends a list predicates to the IngredientMutation builder.
func (m *IngredientMutation) Where(ps ...predicate.Ingredient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngredientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngredientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ingredient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngredientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngredientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ingredient).
func (m *IngredientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngredientMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.text != nil {
		fields = append(fields, ingredient.FieldText)
	}
	if m.amount != nil {
		fields = append(fields, ingredient.FieldAmount)
	}
	if m.unit != nil {
		fields = append(fields, ingredient.FieldUnit)
	}
	if m.position != nil {
		fields = append(fields, ingredient.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngredientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingredient.FieldText:
		return m.Text()
	case ingredient.FieldAmount:
		return m.Amount()
	case ingredient.FieldUnit:
		return m.Unit()
	case ingredient.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngredientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingredient.FieldText:
		return m.OldText(ctx)
	case ingredient.FieldAmount:
		return m.OldAmount(ctx)
	case ingredient.FieldUnit:
		return m.OldUnit(ctx)
	case ingredient.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Ingredient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngredientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingredient.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case ingredient.FieldAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case ingredient.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case ingredient.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Ingredient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngredientMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, ingredient.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngredientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingredient.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngredientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingredient.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Ingredient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngredientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingredient.FieldAmount) {
		fields = append(fields, ingredient.FieldAmount)
	}
	if m.FieldCleared(ingredient.FieldUnit) {
		fields = append(fields, ingredient.FieldUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngredientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngredientMutation) ClearField(name string) error {
	switch name {
	case ingredient.FieldAmount:
		m.ClearAmount()
		return nil
	case ingredient.FieldUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown Ingredient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngredientMutation) ResetField(name string) error {
	switch name {
	case ingredient.FieldText:
		m.ResetText()
		return nil
	case ingredient.FieldAmount:
		m.ResetAmount()
		return nil
	case ingredient.FieldUnit:
		m.ResetUnit()
		return nil
	case ingredient.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Ingredient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngredientMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recipe != nil {
		edges = append(edges, ingredient.EdgeRecipe)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngredientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ingredient.EdgeRecipe:
		if id := m.recipe; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngredientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngredientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngredientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecipe {
		edges = append(edges, ingredient.EdgeRecipe)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngredientMutation) EdgeCleared(name string) bool {
	switch name {
	case ingredient.EdgeRecipe:
		return m.clearedrecipe
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngredientMutation) ClearEdge(name string) error {
	switch name {
	case ingredient.EdgeRecipe:
		m.ClearRecipe()
		return nil
	}
	return fmt.Errorf("unknown Ingredient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngredientMutation) ResetEdge(name string) error {
	switch name {
	case ingredient.EdgeRecipe:
		m.ResetRecipe()
		return nil
	}
	return fmt.Errorf("unknown Ingredient edge %s", name)
}

// RecipeMutation represents an operation that mutates the Recipe nodes in the graph.
type RecipeMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	title                *string
	description          *string
	category             *string
	prep_time_minutes    *int
	addprep_time_minutes *int
	cook_time_minutes    *int
	addcook_time_minutes *int
	servings             *int
	addservings          *int
	source               *string
	archived             *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	ingredients          map[uuid.UUID]struct{}
	removedingredients   map[uuid.UUID]struct{}
	clearedingredients   bool
	directions           map[uuid.UUID]struct{}
	removeddirections    map[uuid.UUID]struct{}
	cleareddirections    bool
	tags                 map[uuid.UUID]struct{}
	removedtags          map[uuid.UUID]struct{}
	clearedtags          bool
	done                 bool
	oldValue             func(context.Context) (*Recipe, error)
	predicates           []predicate.Recipe
}

var _ ent.Mutation = (*RecipeMutation)(nil)

// recipeOption allows management of the mutation configuration using functional options.
type recipeOption func(*RecipeMutation)

// newRecipeMutation creates new mutation for the Recipe entity.
func newRecipeMutation(c config, op Op, opts ...recipeOption) *RecipeMutation {
	m := &RecipeMutation{
		config:        c,
		op:            op,
		typ:           TypeRecipe,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecipeID sets the ID field of the mutation.
func withRecipeID(id uuid.UUID) recipeOption {
	return func(m *RecipeMutation) {
		var (
			err   error
			once  sync.Once
			value *Recipe
		)
		m.oldValue = func(ctx context.Context) (*Recipe, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recipe.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecipe sets the old Recipe of the mutation.
func withRecipe(node *Recipe) recipeOption {
	return func(m *RecipeMutation) {
		m.oldValue = func(context.Context) (*Recipe, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecipeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecipeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recipe entities.
func (m *RecipeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecipeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecipeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recipe.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *RecipeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RecipeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RecipeMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RecipeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecipeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RecipeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[recipe.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RecipeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[recipe.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RecipeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, recipe.FieldDescription)
}

// SetCategory sets the "category" field.
func (m *RecipeMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *RecipeMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *RecipeMutation) ResetCategory() {
	m.category = nil
}

// SetPrepTimeMinutes sets the "prep_time_minutes" field.
func (m *RecipeMutation) SetPrepTimeMinutes(i int) {
	m.prep_time_minutes = &i
	m.addprep_time_minutes = nil
}

// PrepTimeMinutes returns the value of the "prep_time_minutes" field in the mutation.
func (m *RecipeMutation) PrepTimeMinutes() (r int, exists bool) {
	v := m.prep_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPrepTimeMinutes returns the old "prep_time_minutes" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldPrepTimeMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrepTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrepTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrepTimeMinutes: %w", err)
	}
	return oldValue.PrepTimeMinutes, nil
}

// AddPrepTimeMinutes adds i to the "prep_time_minutes" field.
func (m *RecipeMutation) AddPrepTimeMinutes(i int) {
	if m.addprep_time_minutes != nil {
		*m.addprep_time_minutes += i
	} else {
		m.addprep_time_minutes = &i
	}
}

// AddedPrepTimeMinutes returns the value that was added to the "prep_time_minutes" field in this mutation.
func (m *RecipeMutation) AddedPrepTimeMinutes() (r int, exists bool) {
	v := m.addprep_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrepTimeMinutes clears the value of the "prep_time_minutes" field.
func (m *RecipeMutation) ClearPrepTimeMinutes() {
	m.prep_time_minutes = nil
	m.addprep_time_minutes = nil
	m.clearedFields[recipe.FieldPrepTimeMinutes] = struct{}{}
}

// PrepTimeMinutesCleared returns if the "prep_time_minutes" field was cleared in this mutation.
func (m *RecipeMutation) PrepTimeMinutesCleared() bool {
	_, ok := m.clearedFields[recipe.FieldPrepTimeMinutes]
	return ok
}

// ResetPrepTimeMinutes resets all changes to the "prep_time_minutes" field.
func (m *RecipeMutation) ResetPrepTimeMinutes() {
	m.prep_time_minutes = nil
	m.addprep_time_minutes = nil
	delete(m.clearedFields, recipe.FieldPrepTimeMinutes)
}

// SetCookTimeMinutes sets the "cook_time_minutes" field.
func (m *RecipeMutation) SetCookTimeMinutes(i int) {
	m.cook_time_minutes = &i
	m.addcook_time_minutes = nil
}

// CookTimeMinutes returns the value of the "cook_time_minutes" field in the mutation.
func (m *RecipeMutation) CookTimeMinutes() (r int, exists bool) {
	v := m.cook_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCookTimeMinutes returns the old "cook_time_minutes" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldCookTimeMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCookTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCookTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCookTimeMinutes: %w", err)
	}
	return oldValue.CookTimeMinutes, nil
}

// AddCookTimeMinutes adds i to the "cook_time_minutes" field.
func (m *RecipeMutation) AddCookTimeMinutes(i int) {
	if m.addcook_time_minutes != nil {
		*m.addcook_time_minutes += i
	} else {
		m.addcook_time_minutes = &i
	}
}

// AddedCookTimeMinutes returns the value that was added to the "cook_time_minutes" field in this mutation.
func (m *RecipeMutation) AddedCookTimeMinutes() (r int, exists bool) {
	v := m.addcook_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearCookTimeMinutes clears the value of the "cook_time_minutes" field.
func (m *RecipeMutation) ClearCookTimeMinutes() {
	m.cook_time_minutes = nil
	m.addcook_time_minutes = nil
	m.clearedFields[recipe.FieldCookTimeMinutes] = struct{}{}
}

// CookTimeMinutesCleared returns if the "cook_time_minutes" field was cleared in this mutation.
func (m *RecipeMutation) CookTimeMinutesCleared() bool {
	_, ok := m.clearedFields[recipe.FieldCookTimeMinutes]
	return ok
}

// ResetCookTimeMinutes resets all changes to the "cook_time_minutes" field.
func (m *RecipeMutation) ResetCookTimeMinutes() {
	m.cook_time_minutes = nil
	m.addcook_time_minutes = nil
	delete(m.clearedFields, recipe.FieldCookTimeMinutes)
}

// SetServings sets the "servings" field.
func (m *RecipeMutation) SetServings(i int) {
	m.servings = &i
	m.addservings = nil
}

// Servings returns the value of the "servings" field in the mutation.
func (m *RecipeMutation) Servings() (r int, exists bool) {
	v := m.servings
	if v == nil {
		return
	}
	return *v, true
}

// OldServings returns the old "servings" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldServings(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServings: %w", err)
	}
	return oldValue.Servings, nil
}

// AddServings adds i to the "servings" field.
func (m *RecipeMutation) AddServings(i int) {
	if m.addservings != nil {
		*m.addservings += i
	} else {
		m.addservings = &i
	}
}

// AddedServings returns the value that was added to the "servings" field in this mutation.
func (m *RecipeMutation) AddedServings() (r int, exists bool) {
	v := m.addservings
	if v == nil {
		return
	}
	return *v, true
}

// ClearServings clears the value of the "servings" field.
func (m *RecipeMutation) ClearServings() {
	m.servings = nil
	m.addservings = nil
	m.clearedFields[recipe.FieldServings] = struct{}{}
}

// ServingsCleared returns if the "servings" field was cleared in this mutation.
func (m *RecipeMutation) ServingsCleared() bool {
	_, ok := m.clearedFields[recipe.FieldServings]
	return ok
}

// ResetServings resets all changes to the "servings" field.
func (m *RecipeMutation) ResetServings() {
	m.servings = nil
	m.addservings = nil
	delete(m.clearedFields, recipe.FieldServings)
}

// SetSource sets the "source" field.
func (m *RecipeMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *RecipeMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *RecipeMutation) ClearSource() {
	m.source = nil
	m.clearedFields[recipe.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *RecipeMutation) SourceCleared() bool {
	_, ok := m.clearedFields[recipe.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *RecipeMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, recipe.FieldSource)
}

// SetArchived sets the "archived" field.
func (m *RecipeMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *RecipeMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *RecipeMutation) ResetArchived() {
	m.archived = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecipeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecipeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecipeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecipeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecipeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Recipe entity.
// If the Recipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecipeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIngredientIDs adds the "ingredients" edge to the Ingredient entity by ids.
func (m *RecipeMutation) AddIngredientIDs(ids ...uuid.UUID) {
	if m.ingredients == nil {
		m.ingredients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.ingredients[ids[i]] = struct{}{}
	}
}

// ClearIngredients clears the "ingredients" edge to the Ingredient entity.
func (m *RecipeMutation) ClearIngredients() {
	m.clearedingredients = true
}

// IngredientsCleared reports if the "ingredients" edge to the Ingredient entity was cleared.
func (m *RecipeMutation) IngredientsCleared() bool {
	return m.clearedingredients
}

// RemoveIngredientIDs removes the "ingredients" edge to the Ingredient entity by IDs.
func (m *RecipeMutation) RemoveIngredientIDs(ids ...uuid.UUID) {
	if m.removedingredients == nil {
		m.removedingredients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.ingredients, ids[i])
		m.removedingredients[ids[i]] = struct{}{}
	}
}

// RemovedIngredients returns the removed IDs of the "ingredients" edge to the Ingredient entity.
func (m *RecipeMutation) RemovedIngredientsIDs() (ids []uuid.UUID) {
	for id := range m.removedingredients {
		ids = append(ids, id)
	}
	return
}

// IngredientsIDs returns the "ingredients" edge IDs in the mutation.
func (m *RecipeMutation) IngredientsIDs() (ids []uuid.UUID) {
	for id := range m.ingredients {
		ids = append(ids, id)
	}
	return
}

// ResetIngredients resets all changes to the "ingredients" edge.
func (m *RecipeMutation) ResetIngredients() {
	m.ingredients = nil
	m.clearedingredients = false
	m.removedingredients = nil
}

// AddDirectionIDs adds the "directions" edge to the Direction entity by ids.
func (m *RecipeMutation) AddDirectionIDs(ids ...uuid.UUID) {
	if m.directions == nil {
		m.directions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.directions[ids[i]] = struct{}{}
	}
}

// ClearDirections clears the "directions" edge to the Direction entity.
func (m *RecipeMutation) ClearDirections() {
	m.cleareddirections = true
}

// DirectionsCleared reports if the "directions" edge to the Direction entity was cleared.
func (m *RecipeMutation) DirectionsCleared() bool {
	return m.cleareddirections
}

// RemoveDirectionIDs removes the "directions" edge to the Direction entity by IDs.
func (m *RecipeMutation) RemoveDirectionIDs(ids ...uuid.UUID) {
	if m.removeddirections == nil {
		m.removeddirections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.directions, ids[i])
		m.removeddirections[ids[i]] = struct{}{}
	}
}

// RemovedDirections returns the removed IDs of the "directions" edge to the Direction entity.
func (m *RecipeMutation) RemovedDirectionsIDs() (ids []uuid.UUID) {
	for id := range m.removeddirections {
		ids = append(ids, id)
	}
	return
}

// DirectionsIDs returns the "directions" edge IDs in the mutation.
func (m *RecipeMutation) DirectionsIDs() (ids []uuid.UUID) {
	for id := range m.directions {
		ids = append(ids, id)
	}
	return
}

// ResetDirections resets all changes to the "directions" edge.
func (m *RecipeMutation) ResetDirections() {
	m.directions = nil
	m.cleareddirections = false
	m.removeddirections = nil
}

// AddTagIDs adds the "tags" edge to the Tag entity by ids.
func (m *RecipeMutation) AddTagIDs(ids ...uuid.UUID) {
	if m.tags == nil {
		m.tags = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tags[ids[i]] = struct{}{}
	}
}

// ClearTags clears the "tags" edge to the Tag entity.
func (m *RecipeMutation) ClearTags() {
	m.clearedtags = true
}

// TagsCleared reports if the "tags" edge to the Tag entity was cleared.
func (m *RecipeMutation) TagsCleared() bool {
	return m.clearedtags
}

// RemoveTagIDs removes the "tags" edge to the Tag entity by IDs.
func (m *RecipeMutation) RemoveTagIDs(ids ...uuid.UUID) {
	if m.removedtags == nil {
		m.removedtags = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tags, ids[i])
		m.removedtags[ids[i]] = struct{}{}
	}
}

// RemovedTags returns the removed IDs of the "tags" edge to the Tag entity.
func (m *RecipeMutation) RemovedTagsIDs() (ids []uuid.UUID) {
	for id := range m.removedtags {
		ids = append(ids, id)
	}
	return
}

// TagsIDs returns the "tags" edge IDs in the mutation.
func (m *RecipeMutation) TagsIDs() (ids []uuid.UUID) {
	for id := range m.tags {
		ids = append(ids, id)
	}
	return
}

// ResetTags resets all changes to the "tags" edge.
func (m *RecipeMutation) ResetTags() {
	m.tags = nil
	m.clearedtags = false
	m.removedtags = nil
}

// Where appends a list predicates to the RecipeMutation builder.
func (m *RecipeMutation) Where(ps ...predicate.Recipe) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecipeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecipeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recipe, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecipeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecipeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recipe).
func (m *RecipeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecipeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.title != nil {
		fields = append(fields, recipe.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, recipe.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, recipe.FieldCategory)
	}
	if m.prep_time_minutes != nil {
		fields = append(fields, recipe.FieldPrepTimeMinutes)
	}
	if m.cook_time_minutes != nil {
		fields = append(fields, recipe.FieldCookTimeMinutes)
	}
	if m.servings != nil {
		fields = append(fields, recipe.FieldServings)
	}
	if m.source != nil {
		fields = append(fields, recipe.FieldSource)
	}
	if m.archived != nil {
		fields = append(fields, recipe.FieldArchived)
	}
	if m.created_at != nil {
		fields = append(fields, recipe.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recipe.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecipeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recipe.FieldTitle:
		return m.Title()
	case recipe.FieldDescription:
		return m.Description()
	case recipe.FieldCategory:
		return m.Category()
	case recipe.FieldPrepTimeMinutes:
		return m.PrepTimeMinutes()
	case recipe.FieldCookTimeMinutes:
		return m.CookTimeMinutes()
	case recipe.FieldServings:
		return m.Servings()
	case recipe.FieldSource:
		return m.Source()
	case recipe.FieldArchived:
		return m.Archived()
	case recipe.FieldCreatedAt:
		return m.CreatedAt()
	case recipe.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecipeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recipe.FieldTitle:
		return m.OldTitle(ctx)
	case recipe.FieldDescription:
		return m.OldDescription(ctx)
	case recipe.FieldCategory:
		return m.OldCategory(ctx)
	case recipe.FieldPrepTimeMinutes:
		return m.OldPrepTimeMinutes(ctx)
	case recipe.FieldCookTimeMinutes:
		return m.OldCookTimeMinutes(ctx)
	case recipe.FieldServings:
		return m.OldServings(ctx)
	case recipe.FieldSource:
		return m.OldSource(ctx)
	case recipe.FieldArchived:
		return m.OldArchived(ctx)
	case recipe.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recipe.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recipe field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecipeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recipe.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case recipe.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recipe.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case recipe.FieldPrepTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrepTimeMinutes(v)
		return nil
	case recipe.FieldCookTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCookTimeMinutes(v)
		return nil
	case recipe.FieldServings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServings(v)
		return nil
	case recipe.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case recipe.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case recipe.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recipe.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recipe field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecipeMutation) AddedFields() []string {
	var fields []string
	if m.addprep_time_minutes != nil {
		fields = append(fields, recipe.FieldPrepTimeMinutes)
	}
	if m.addcook_time_minutes != nil {
		fields = append(fields, recipe.FieldCookTimeMinutes)
	}
	if m.addservings != nil {
		fields = append(fields, recipe.FieldServings)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecipeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recipe.FieldPrepTimeMinutes:
		return m.AddedPrepTimeMinutes()
	case recipe.FieldCookTimeMinutes:
		return m.AddedCookTimeMinutes()
	case recipe.FieldServings:
		return m.AddedServings()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecipeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recipe.FieldPrepTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrepTimeMinutes(v)
		return nil
	case recipe.FieldCookTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCookTimeMinutes(v)
		return nil
	case recipe.FieldServings:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddServings(v)
		return nil
	}
	return fmt.Errorf("unknown Recipe numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecipeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recipe.FieldDescription) {
		fields = append(fields, recipe.FieldDescription)
	}
	if m.FieldCleared(recipe.FieldPrepTimeMinutes) {
		fields = append(fields, recipe.FieldPrepTimeMinutes)
	}
	if m.FieldCleared(recipe.FieldCookTimeMinutes) {
		fields = append(fields, recipe.FieldCookTimeMinutes)
	}
	if m.FieldCleared(recipe.FieldServings) {
		fields = append(fields, recipe.FieldServings)
	}
	if m.FieldCleared(recipe.FieldSource) {
		fields = append(fields, recipe.FieldSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecipeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecipeMutation) ClearField(name string) error {
	switch name {
	case recipe.FieldDescription:
		m.ClearDescription()
		return nil
	case recipe.FieldPrepTimeMinutes:
		m.ClearPrepTimeMinutes()
		return nil
	case recipe.FieldCookTimeMinutes:
		m.ClearCookTimeMinutes()
		return nil
	case recipe.FieldServings:
		m.ClearServings()
		return nil
	case recipe.FieldSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown Recipe nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecipeMutation) ResetField(name string) error {
	switch name {
	case recipe.FieldTitle:
		m.ResetTitle()
		return nil
	case recipe.FieldDescription:
		m.ResetDescription()
		return nil
	case recipe.FieldCategory:
		m.ResetCategory()
		return nil
	case recipe.FieldPrepTimeMinutes:
		m.ResetPrepTimeMinutes()
		return nil
	case recipe.FieldCookTimeMinutes:
		m.ResetCookTimeMinutes()
		return nil
	case recipe.FieldServings:
		m.ResetServings()
		return nil
	case recipe.FieldSource:
		m.ResetSource()
		return nil
	case recipe.FieldArchived:
		m.ResetArchived()
		return nil
	case recipe.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recipe.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recipe field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecipeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.ingredients != nil {
		edges = append(edges, recipe.EdgeIngredients)
	}
	if m.directions != nil {
		edges = append(edges, recipe.EdgeDirections)
	}
	if m.tags != nil {
		edges = append(edges, recipe.EdgeTags)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecipeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recipe.EdgeIngredients:
		ids := make([]ent.Value, 0, len(m.ingredients))
		for id := range m.ingredients {
			ids = append(ids, id)
		}
		return ids
	case recipe.EdgeDirections:
		ids := make([]ent.Value, 0, len(m.directions))
		for id := range m.directions {
			ids = append(ids, id)
		}
		return ids
	case recipe.EdgeTags:
		ids := make([]ent.Value, 0, len(m.tags))
		for id := range m.tags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecipeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedingredients != nil {
		edges = append(edges, recipe.EdgeIngredients)
	}
	if m.removeddirections != nil {
		edges = append(edges, recipe.EdgeDirections)
	}
	if m.removedtags != nil {
		edges = append(edges, recipe.EdgeTags)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecipeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recipe.EdgeIngredients:
		ids := make([]ent.Value, 0, len(m.removedingredients))
		for id := range m.removedingredients {
			ids = append(ids, id)
		}
		return ids
	case recipe.EdgeDirections:
		ids := make([]ent.Value, 0, len(m.removeddirections))
		for id := range m.removeddirections {
			ids = append(ids, id)
		}
		return ids
	case recipe.EdgeTags:
		ids := make([]ent.Value, 0, len(m.removedtags))
		for id := range m.removedtags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecipeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedingredients {
		edges = append(edges, recipe.EdgeIngredients)
	}
	if m.cleareddirections {
		edges = append(edges, recipe.EdgeDirections)
	}
	if m.clearedtags {
		edges = append(edges, recipe.EdgeTags)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecipeMutation) EdgeCleared(name string) bool {
	switch name {
	case recipe.EdgeIngredients:
		return m.clearedingredients
	case recipe.EdgeDirections:
		return m.cleareddirections
	case recipe.EdgeTags:
		return m.clearedtags
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecipeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Recipe unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecipeMutation) ResetEdge(name string) error {
	switch name {
	case recipe.EdgeIngredients:
		m.ResetIngredients()
		return nil
	case recipe.EdgeDirections:
		m.ResetDirections()
		return nil
	case recipe.EdgeTags:
		m.ResetTags()
		return nil
	}
	return fmt.Errorf("unknown Recipe edge %s", name)
}

// TagMutation represents an operation that mutates the Tag nodes in the graph.
type TagMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	color         *string
	clearedFields map[string]struct{}
	recipe        *uuid.UUID
	clearedrecipe bool
	done          bool
	oldValue      func(context.Context) (*Tag, error)
	predicates    []predicate.Tag
}

var _ ent.Mutation = (*TagMutation)(nil)

// tagOption allows management of the mutation configuration using functional options.
type tagOption func(*TagMutation)

// newTagMutation creates new mutation for the Tag entity.
func newTagMutation(c config, op Op, opts ...tagOption) *TagMutation {
	m := &TagMutation{
		config:        c,
		op:            op,
		typ:           TypeTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagID sets the ID field of the mutation.
func withTagID(id uuid.UUID) tagOption {
	return func(m *TagMutation) {
		var (
			err   error
			once  sync.Once
			value *Tag
		)
		m.oldValue = func(ctx context.Context) (*Tag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTag sets the old Tag of the mutation.
func withTag(node *Tag) tagOption {
	return func(m *TagMutation) {
		m.oldValue = func(context.Context) (*Tag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tag entities.
func (m *TagMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TagMutation) ResetName() {
	m.name = nil
}

// SetColor sets the "color" field.
func (m *TagMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *TagMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *TagMutation) ClearColor() {
	m.color = nil
	m.clearedFields[tag.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *TagMutation) ColorCleared() bool {
	_, ok := m.clearedFields[tag.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *TagMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, tag.FieldColor)
}

// SetRecipeID sets the "recipe" edge to the Recipe entity by id.
func (m *TagMutation) SetRecipeID(id uuid.UUID) {
	m.recipe = &id
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (m *TagMutation) ClearRecipe() {
	m.clearedrecipe = true
}

// RecipeCleared reports if the "recipe" edge to the Recipe entity was cleared.
func (m *TagMutation) RecipeCleared() bool {
	return m.clearedrecipe
}

// RecipeID returns the "recipe" edge ID in the mutation.
func (m *TagMutation) RecipeID() (id uuid.UUID, exists bool) {
	if m.recipe != nil {
		return *m.recipe, true
	}
	return
}

// RecipeIDs returns the "recipe" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipeID instead. It exists only for internal usage by the builders.
func (m *TagMutation) RecipeIDs() (ids []uuid.UUID) {
	if id := m.recipe; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipe resets all changes to the "recipe" edge.
func (m *TagMutation) ResetRecipe() {
	m.recipe = nil
	m.clearedrecipe = false
}

// Where appends a list predicates to the TagMutation builder.
func (m *TagMutation) Where(ps ...predicate.Tag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tag).
func (m *TagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, tag.FieldName)
	}
	if m.color != nil {
		fields = append(fields, tag.FieldColor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldName:
		return m.Name()
	case tag.FieldColor:
		return m.Color()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tag.FieldName:
		return m.OldName(ctx)
	case tag.FieldColor:
		return m.OldColor(ctx)
	}
	return nil, fmt.Errorf("unknown Tag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tag.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tag.FieldColor) {
		fields = append(fields, tag.FieldColor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMutation) ClearField(name string) error {
	switch name {
	case tag.FieldColor:
		m.ClearColor()
		return nil
	}
	return fmt.Errorf("unknown Tag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMutation) ResetField(name string) error {
	switch name {
	case tag.FieldName:
		m.ResetName()
		return nil
	case tag.FieldColor:
		m.ResetColor()
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recipe != nil {
		edges = append(edges, tag.EdgeRecipe)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeRecipe:
		if id := m.recipe; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecipe {
		edges = append(edges, tag.EdgeRecipe)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMutation) EdgeCleared(name string) bool {
	switch name {
	case tag.EdgeRecipe:
		return m.clearedrecipe
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMutation) ClearEdge(name string) error {
	switch name {
	case tag.EdgeRecipe:
		m.ClearRecipe()
		return nil
	}
	return fmt.Errorf("unknown Tag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMutation) ResetEdge(name string) error {
	switch name {
	case tag.EdgeRecipe:
		m.ResetRecipe()
		return nil
	}
	return fmt.Errorf("unknown Tag edge %s", name)
}
