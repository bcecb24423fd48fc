package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

type Officer struct {
	ent.Schema
}

func (Officer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("name").MaxLen(100).NotEmpty(),
		field.String("department").MaxLen(100).NotEmpty(),
		field.String("contact").MaxLen(255).Optional().Nillable(),
	}
}

func (Officer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assigned_reports", Report.Type),
	}
}
