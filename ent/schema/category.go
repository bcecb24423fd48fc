package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("name").MaxLen(100).NotEmpty(),
		field.Enum("type").
			Values("emergency", "non_emergency"),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subcategories", Subcategory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reports", Report.Type),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
	}
}
