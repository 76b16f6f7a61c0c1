// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/direction"
	"github.com/snapdish/snapdish/gen/ent/recipe"
)

// Direction is the model entity for the Direction schema.
type Direction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// IsListItem holds the value of the "is_list_item" field.
	IsListItem bool `json:"is_list_item,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DirectionQuery when eager-loading is set.
	Edges             DirectionEdges `json:"edges"`
	recipe_directions *uuid.UUID
	selectValues      sql.SelectValues
}

// DirectionEdges holds the relations/edges for other nodes in the graph.
type DirectionEdges struct {
	// Recipe holds the value of the recipe edge.
	Recipe *Recipe `json:"recipe,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecipeOrErr returns the Recipe value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DirectionEdges) RecipeOrErr() (*Recipe, error) {
	if e.Recipe != nil {
		return e.Recipe, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recipe.Label}
	}
	return nil, &NotLoadedError{edge: "recipe"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Direction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case direction.FieldIsListItem:
			values[i] = new(sql.NullBool)
		case direction.FieldPosition:
			values[i] = new(sql.NullInt64)
		case direction.FieldText:
			values[i] = new(sql.NullString)
		case direction.FieldID:
			values[i] = new(uuid.UUID)
		case direction.ForeignKeys[0]: // recipe_directions
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Direction fields.
func (_m *Direction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case direction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case direction.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case direction.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case direction.FieldIsListItem:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_list_item", values[i])
			} else if value.Valid {
				_m.IsListItem = value.Bool
			}
		case direction.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field recipe_directions", values[i])
			} else if value.Valid {
				_m.recipe_directions = new(uuid.UUID)
				*_m.recipe_directions = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Direction.
// This includes values selected through modifiers, order, etc.
func (_m *Direction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecipe queries the "recipe" edge of the Direction entity.
func (_m *Direction) QueryRecipe() *RecipeQuery {
	return NewDirectionClient(_m.config).QueryRecipe(_m)
}

// Update returns a builder for updating this Direction.
// Note that you need to call Direction.Unwrap() before calling this method if this Direction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Direction) Update() *DirectionUpdateOne {
	return NewDirectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Direction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Direction) Unwrap() *Direction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Direction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Direction) String() string {
	var builder strings.Builder
	builder.WriteString("Direction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("is_list_item=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsListItem))
	builder.WriteByte(')')
	return builder.String()
}

// Directions is a parsable slice of Direction.
type Directions []*Direction
