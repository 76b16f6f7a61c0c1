package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Direction struct{ ent.Schema }

func (Direction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "directions"},
	}
}

func (Direction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("text").NotEmpty().MaxLen(1000),
		field.Int("position").Min(1),
		field.Bool("is_list_item").Default(false),
	}
}

func (Direction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipe", Recipe.Type).
			Ref("directions").
			Unique().
			Required(),
	}
}
