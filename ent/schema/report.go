package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		field.String("title").MaxLen(200).NotEmpty(),
		field.Text("description").NotEmpty(),

		field.Enum("type").
			Values("emergency", "non_emergency").
			Immutable(),

		field.Enum("status").
			Values("pending", "in_progress", "resolved").
			Default("pending"),

		field.UUID("category_id", uuid.UUID{}),
		field.UUID("subcategory_id", uuid.UUID{}).Optional().Nillable(),

		field.String("location_address").MaxLen(500).Optional().Nillable(),
		field.Float("location_lat").Optional().Nillable(),
		field.Float("location_lng").Optional().Nillable(),

		field.Strings("image_refs").Optional(),

		field.UUID("assigned_officer_id", uuid.UUID{}).Optional().Nillable(),
		field.Text("resolution_details").Optional().Nillable(),

		field.UUID("reporter_id", uuid.UUID{}).Immutable(),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("reporter", User.Type).
			Ref("reports").
			Field("reporter_id").
			Unique().
			Immutable().
			Required(),

		edge.From("category", Category.Type).
			Ref("reports").
			Field("category_id").
			Unique().
			Required(),

		edge.From("subcategory", Subcategory.Type).
			Ref("reports").
			Field("subcategory_id").
			Unique(),

		edge.From("assigned_officer", Officer.Type).
			Ref("assigned_reports").
			Field("assigned_officer_id").
			Unique(),

		edge.To("images", Media.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("type"),
		index.Fields("category_id"),
		index.Fields("reporter_id"),
		index.Fields("created_at"),
	}
}
