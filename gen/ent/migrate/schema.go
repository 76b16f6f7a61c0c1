// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DirectionsColumns holds the columns for the "directions" table.
	DirectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "text", Type: field.TypeString, Size: 1000},
		{Name: "position", Type: field.TypeInt},
		{Name: "is_list_item", Type: field.TypeBool, Default: false},
		{Name: "recipe_directions", Type: field.TypeUUID},
	}
	// DirectionsTable holds the schema information for the "directions" table.
	DirectionsTable = &schema.Table{
		Name:       "directions",
		Columns:    DirectionsColumns,
		PrimaryKey: []*schema.Column{DirectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "directions_recipes_directions",
				Columns:    []*schema.Column{DirectionsColumns[4]},
				RefColumns: []*schema.Column{RecipesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// IngredientsColumns holds the columns for the "ingredients" table.
	IngredientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "text", Type: field.TypeString, Size: 500},
		{Name: "amount", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "recipe_ingredients", Type: field.TypeUUID},
	}
	// IngredientsTable holds the schema information for the "ingredients" table.
	IngredientsTable = &schema.Table{
		Name:       "ingredients",
		Columns:    IngredientsColumns,
		PrimaryKey: []*schema.Column{IngredientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ingredients_recipes_ingredients",
				Columns:    []*schema.Column{IngredientsColumns[5]},
				RefColumns: []*schema.Column{RecipesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// RecipesColumns holds the columns for the "recipes" table.
	RecipesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "category", Type: field.TypeString, Default: "Other"},
		{Name: "prep_time_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "cook_time_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "servings", Type: field.TypeInt, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecipesTable holds the schema information for the "recipes" table.
	RecipesTable = &schema.Table{
		Name:       "recipes",
		Columns:    RecipesColumns,
		PrimaryKey: []*schema.Column{RecipesColumns[0]},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "recipe_tags", Type: field.TypeUUID},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tags_recipes_tags",
				Columns:    []*schema.Column{TagsColumns[3]},
				RefColumns: []*schema.Column{RecipesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DirectionsTable,
		IngredientsTable,
		RecipesTable,
		TagsTable,
	}
)

func init() {
	DirectionsTable.ForeignKeys[0].RefTable = RecipesTable
	DirectionsTable.Annotation = &entsql.Annotation{
		Table: "directions",
	}
	IngredientsTable.ForeignKeys[0].RefTable = RecipesTable
	IngredientsTable.Annotation = &entsql.Annotation{
		Table: "ingredients",
	}
	RecipesTable.Annotation = &entsql.Annotation{
		Table: "recipes",
	}
	TagsTable.ForeignKeys[0].RefTable = RecipesTable
	TagsTable.Annotation = &entsql.Annotation{
		Table: "tags",
	}
}
