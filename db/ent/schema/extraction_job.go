package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/db/ent/schema/utils"
)

type ExtractionJob struct {
	ent.Schema
}

func (ExtractionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_job"},
	}
}

func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("survey_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source_filename").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Float32("confidence").Optional().Nillable(),
		field.Int("retry_count").Default(0),
		field.String("model_name").Optional().Nillable(),
		field.Int("tokens_used").Default(0),
		field.JSON("raw_json", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
	}
}

func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("survey", Survey.Type).
			Ref("jobs").
			Field("survey_id").
			Unique(),
	}
}

func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("survey_id"),
	}
}
