// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/snapdish/snapdish/gen/ent/recipe"
)

// Recipe is the model entity for the Recipe schema.
type Recipe struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// PrepTimeMinutes holds the value of the "prep_time_minutes" field.
	PrepTimeMinutes *int `json:"prep_time_minutes,omitempty"`
	// CookTimeMinutes holds the value of the "cook_time_minutes" field.
	CookTimeMinutes *int `json:"cook_time_minutes,omitempty"`
	// Servings holds the value of the "servings" field.
	Servings *int `json:"servings,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Archived holds the value of the "archived" field.
	Archived bool `json:"archived,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecipeQuery when eager-loading is set.
	Edges        RecipeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecipeEdges holds the relations/edges for other nodes in the graph.
type RecipeEdges struct {
	// Ingredients holds the value of the ingredients edge.
	Ingredients []*Ingredient `json:"ingredients,omitempty"`
	// Directions holds the value of the directions edge.
	Directions []*Direction `json:"directions,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*Tag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// IngredientsOrErr returns the Ingredients value or an error if the edge
// was not loaded in eager-loading.
func (e RecipeEdges) IngredientsOrErr() ([]*Ingredient, error) {
	if e.loadedTypes[0] {
		return e.Ingredients, nil
	}
	return nil, &NotLoadedError{edge: "ingredients"}
}

// DirectionsOrErr returns the Directions value or an error if the edge
// was not loaded in eager-loading.
func (e RecipeEdges) DirectionsOrErr() ([]*Direction, error) {
	if e.loadedTypes[1] {
		return e.Directions, nil
	}
	return nil, &NotLoadedError{edge: "directions"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e RecipeEdges) TagsOrErr() ([]*Tag, error) {
	if e.loadedTypes[2] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recipe) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recipe.FieldArchived:
			values[i] = new(sql.NullBool)
		case recipe.FieldPrepTimeMinutes, recipe.FieldCookTimeMinutes, recipe.FieldServings:
			values[i] = new(sql.NullInt64)
		case recipe.FieldTitle, recipe.FieldDescription, recipe.FieldCategory, recipe.FieldSource:
			values[i] = new(sql.NullString)
		case recipe.FieldCreatedAt, recipe.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case recipe.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recipe fields.
func (_m *Recipe) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recipe.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case recipe.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case recipe.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case recipe.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case recipe.FieldPrepTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prep_time_minutes", values[i])
			} else if value.Valid {
				_m.PrepTimeMinutes = new(int)
				*_m.PrepTimeMinutes = int(value.Int64)
			}
		case recipe.FieldCookTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cook_time_minutes", values[i])
			} else if value.Valid {
				_m.CookTimeMinutes = new(int)
				*_m.CookTimeMinutes = int(value.Int64)
			}
		case recipe.FieldServings:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field servings", values[i])
			} else if value.Valid {
				_m.Servings = new(int)
				*_m.Servings = int(value.Int64)
			}
		case recipe.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case recipe.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case recipe.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recipe.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recipe.
// This includes values selected through modifiers, order, etc.
func (_m *Recipe) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIngredients queries the "ingredients" edge of the Recipe entity.
func (_m *Recipe) QueryIngredients() *IngredientQuery {
	return NewRecipeClient(_m.config).QueryIngredients(_m)
}

// QueryDirections queries the "directions" edge of the Recipe entity.
func (_m *Recipe) QueryDirections() *DirectionQuery {
	return NewRecipeClient(_m.config).QueryDirections(_m)
}

// QueryTags queries the "tags" edge of the Recipe entity.
func (_m *Recipe) QueryTags() *TagQuery {
	return NewRecipeClient(_m.config).QueryTags(_m)
}

// Update returns a builder for updating this Recipe.
// Note that you need to call Recipe.Unwrap() before calling this method if this Recipe
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recipe) Update() *RecipeUpdateOne {
	return NewRecipeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recipe entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recipe) Unwrap() *Recipe {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recipe is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recipe) String() string {
	var builder strings.Builder
	builder.WriteString("Recipe(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.PrepTimeMinutes; v != nil {
		builder.WriteString("prep_time_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CookTimeMinutes; v != nil {
		builder.WriteString("cook_time_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Servings; v != nil {
		builder.WriteString("servings=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Recipes is a parsable slice of Recipe.
type Recipes []*Recipe
