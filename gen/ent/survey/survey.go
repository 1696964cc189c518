// Code generated by ent, DO NOT EDIT.

package survey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the survey type in the database.
	Label = "survey"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldClientAddress holds the string denoting the client_address field in the database.
	FieldClientAddress = "client_address"
	// FieldClientPhone holds the string denoting the client_phone field in the database.
	FieldClientPhone = "client_phone"
	// FieldClientEmail holds the string denoting the client_email field in the database.
	FieldClientEmail = "client_email"
	// FieldSourceFilename holds the string denoting the source_filename field in the database.
	FieldSourceFilename = "source_filename"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFixtures holds the string denoting the fixtures edge name in mutations.
	EdgeFixtures = "fixtures"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the survey in the database.
	Table = "surveys"
	// FixturesTable is the table that holds the fixtures relation/edge.
	FixturesTable = "fixture_records"
	// FixturesInverseTable is the table name for the FixtureRecord entity.
	// It exists in this package in order to avoid circular dependency with the "fixturerecord" package.
	FixturesInverseTable = "fixture_records"
	// FixturesColumn is the table column denoting the fixtures relation/edge.
	FixturesColumn = "survey_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extraction_job"
	// JobsInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobsInverseTable = "extraction_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "survey_id"
)

// Columns holds all SQL columns for survey fields.
var Columns = []string{
	FieldID,
	FieldReference,
	FieldClientName,
	FieldClientAddress,
	FieldClientPhone,
	FieldClientEmail,
	FieldSourceFilename,
	FieldConfidence,
	FieldWarnings,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	ReferenceValidator func(string) error
	// SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	SourceFilenameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Survey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByClientAddress orders the results by the client_address field.
func ByClientAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientAddress, opts...).ToFunc()
}

// ByClientPhone orders the results by the client_phone field.
func ByClientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientPhone, opts...).ToFunc()
}

// ByClientEmail orders the results by the client_email field.
func ByClientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientEmail, opts...).ToFunc()
}

// BySourceFilename orders the results by the source_filename field.
func BySourceFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFilename, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFixturesCount orders the results by fixtures count.
func ByFixturesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFixturesStep(), opts...)
	}
}

// ByFixtures orders the results by fixtures terms.
func ByFixtures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFixturesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFixturesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FixturesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FixturesTable, FixturesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
