package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Media struct {
	ent.Schema
}

func (Media) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Media) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("file_name").Unique().MaxLen(255).NotEmpty(),
		field.String("original_name").MaxLen(255).NotEmpty(),
		field.Int64("file_size").Positive(),
		field.String("mime_type").MaxLen(100).NotEmpty(),
		field.UUID("uploaded_by_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("report_id", uuid.UUID{}).Optional().Nillable(),
	}
}

func (Media) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("uploader", User.Type).
			Ref("uploaded_media").
			Field("uploaded_by_id").
			Unique(),
		edge.From("report", Report.Type).
			Ref("images").
			Field("report_id").
			Unique(),
	}
}

func (Media) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
