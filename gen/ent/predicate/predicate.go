// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Direction is the predicate function for direction builders.
type Direction func(*sql.Selector)

// Ingredient is the predicate function for ingredient builders.
type Ingredient func(*sql.Selector)

// Recipe is the predicate function for recipe builders.
type Recipe func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)
