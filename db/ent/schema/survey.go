package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Survey struct {
	ent.Schema
}

func (Survey) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "surveys"},
	}
}

func (Survey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("reference").NotEmpty(),
		field.String("client_name").Optional().Nillable(),
		field.String("client_address").Optional().Nillable(),
		field.String("client_phone").Optional().Nillable(),
		field.String("client_email").Optional().Nillable(),
		field.String("source_filename").NotEmpty(),
		field.Float32("confidence"),
		field.JSON("warnings", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Survey) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE survey -> MANY fixture records
		edge.To("fixtures", FixtureRecord.Type),
		// ONE survey -> MANY extraction jobs
		edge.To("jobs", ExtractionJob.Type),
	}
}

func (Survey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reference"),
		index.Fields("created_at"),
	}
}
