// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionJobColumns holds the columns for the "extraction_job" table.
	ExtractionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "raw_json", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "survey_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractionJobTable holds the schema information for the "extraction_job" table.
	ExtractionJobTable = &schema.Table{
		Name:       "extraction_job",
		Columns:    ExtractionJobColumns,
		PrimaryKey: []*schema.Column{ExtractionJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_job_surveys_jobs",
				Columns:    []*schema.Column{ExtractionJobColumns[12]},
				RefColumns: []*schema.Column{SurveysColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[5], ExtractionJobColumns[3]},
			},
			{
				Name:    "extractionjob_survey_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[12]},
			},
		},
	}
	// FixtureRecordsColumns holds the columns for the "fixture_records" table.
	FixtureRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "repere", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "original_data", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "modified_data", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "deviations", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "is_validated", Type: field.TypeBool, Default: false},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "IMPORTED"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "survey_id", Type: field.TypeUUID},
	}
	// FixtureRecordsTable holds the schema information for the "fixture_records" table.
	FixtureRecordsTable = &schema.Table{
		Name:       "fixture_records",
		Columns:    FixtureRecordsColumns,
		PrimaryKey: []*schema.Column{FixtureRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fixture_records_surveys_fixtures",
				Columns:    []*schema.Column{FixtureRecordsColumns[12]},
				RefColumns: []*schema.Column{SurveysColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fixturerecord_survey_id_position",
				Unique:  true,
				Columns: []*schema.Column{FixtureRecordsColumns[12], FixtureRecordsColumns[3]},
			},
			{
				Name:    "fixturerecord_survey_id_is_validated",
				Unique:  false,
				Columns: []*schema.Column{FixtureRecordsColumns[12], FixtureRecordsColumns[7]},
			},
		},
	}
	// SurveysColumns holds the columns for the "surveys" table.
	SurveysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reference", Type: field.TypeString},
		{Name: "client_name", Type: field.TypeString, Nullable: true},
		{Name: "client_address", Type: field.TypeString, Nullable: true},
		{Name: "client_phone", Type: field.TypeString, Nullable: true},
		{Name: "client_email", Type: field.TypeString, Nullable: true},
		{Name: "source_filename", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SurveysTable holds the schema information for the "surveys" table.
	SurveysTable = &schema.Table{
		Name:       "surveys",
		Columns:    SurveysColumns,
		PrimaryKey: []*schema.Column{SurveysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "survey_reference",
				Unique:  false,
				Columns: []*schema.Column{SurveysColumns[1]},
			},
			{
				Name:    "survey_created_at",
				Unique:  false,
				Columns: []*schema.Column{SurveysColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionJobTable,
		FixtureRecordsTable,
		SurveysTable,
	}
)

func init() {
	ExtractionJobTable.ForeignKeys[0].RefTable = SurveysTable
	ExtractionJobTable.Annotation = &entsql.Annotation{
		Table: "extraction_job",
	}
	FixtureRecordsTable.ForeignKeys[0].RefTable = SurveysTable
	FixtureRecordsTable.Annotation = &entsql.Annotation{
		Table: "fixture_records",
	}
	SurveysTable.Annotation = &entsql.Annotation{
		Table: "surveys",
	}
}
