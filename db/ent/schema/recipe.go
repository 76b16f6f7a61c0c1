package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Recipe struct{ ent.Schema }

func (Recipe) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recipes"},
	}
}

func (Recipe) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty().MaxLen(200),
		field.String("description").Optional().MaxLen(1000),
		field.String("category").Default("Other"),
		field.Int("prep_time_minutes").Optional().Nillable().Min(0),
		field.Int("cook_time_minutes").Optional().Nillable().Min(0),
		field.Int("servings").Optional().Nillable().Min(1),
		field.String("source").Optional().MaxLen(200),
		field.Bool("archived").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Recipe) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE recipe -> MANY owned sub-entities
		edge.To("ingredients", Ingredient.Type),
		edge.To("directions", Direction.Type),
		edge.To("tags", Tag.Type),
	}
}
