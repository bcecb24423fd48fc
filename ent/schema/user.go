package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("email").MaxLen(255).Unique().NotEmpty(),
		field.String("name").MaxLen(100).NotEmpty(),
		field.String("password_hash").MaxLen(255).Sensitive(),
		field.Enum("role").Values("citizen", "admin").Default("citizen"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reports", Report.Type),
		edge.To("uploaded_media", Media.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
