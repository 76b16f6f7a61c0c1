package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Ingredient struct{ ent.Schema }

func (Ingredient) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingredients"},
	}
}

func (Ingredient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("text").NotEmpty().MaxLen(500),
		field.String("amount").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		// "position" rather than "order": ORDER is an SQL keyword
		field.Int("position").Min(1),
	}
}

func (Ingredient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipe", Recipe.Type).
			Ref("ingredients").
			Unique().
			Required(),
	}
}
