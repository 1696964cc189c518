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

type FixtureRecord struct {
	ent.Schema
}

func (FixtureRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fixture_records"},
	}
}

func (FixtureRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so records are position-addressable per survey
		field.UUID("survey_id", uuid.UUID{}),
		field.String("repere").Optional().Nillable(),
		field.String("title").NotEmpty(),
		field.Int("position").NonNegative(),
		// original_data is written once at import and never updated
		field.JSON("original_data", json.RawMessage{}).
			Immutable().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.JSON("modified_data", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.JSON("deviations", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Bool("is_validated").Default(false),
		field.Time("validated_at").Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusImported)).
			Validate(utils.EnumValidator(constants.RecordStatuses...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FixtureRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE survey
		edge.From("survey", Survey.Type).
			Ref("fixtures").
			Field("survey_id").
			Required().
			Unique(),
	}
}

func (FixtureRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("survey_id", "position").Unique(),
		index.Fields("survey_id", "is_validated"),
	}
}
