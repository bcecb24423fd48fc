package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Subcategory struct {
	ent.Schema
}

func (Subcategory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("name").MaxLen(100).NotEmpty(),
		field.UUID("category_id", uuid.UUID{}),
	}
}

func (Subcategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("subcategories").
			Field("category_id").
			Unique().
			Required(),
		edge.To("reports", Report.Type),
	}
}

func (Subcategory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
	}
}
