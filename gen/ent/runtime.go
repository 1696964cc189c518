// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avalette/metreur-tracker/db/ent/schema"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescSourceFilename is the schema descriptor for source_filename field.
	extractionjobDescSourceFilename := extractionjobFields[2].Descriptor()
	// extractionjob.SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	extractionjob.SourceFilenameValidator = extractionjobDescSourceFilename.Validators[0].(func(string) error)
	// extractionjobDescFormat is the schema descriptor for format field.
	extractionjobDescFormat := extractionjobFields[3].Descriptor()
	// extractionjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractionjob.FormatValidator = func() func(string) error {
		validators := extractionjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionjobDescStartedAt is the schema descriptor for started_at field.
	extractionjobDescStartedAt := extractionjobFields[4].Descriptor()
	// extractionjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractionjob.DefaultStartedAt = extractionjobDescStartedAt.Default.(func() time.Time)
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[6].Descriptor()
	// extractionjob.DefaultStatus holds the default value on creation for the status field.
	extractionjob.DefaultStatus = extractionjobDescStatus.Default.(string)
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = extractionjobDescStatus.Validators[0].(func(string) error)
	// extractionjobDescRetryCount is the schema descriptor for retry_count field.
	extractionjobDescRetryCount := extractionjobFields[9].Descriptor()
	// extractionjob.DefaultRetryCount holds the default value on creation for the retry_count field.
	extractionjob.DefaultRetryCount = extractionjobDescRetryCount.Default.(int)
	// extractionjobDescTokensUsed is the schema descriptor for tokens_used field.
	extractionjobDescTokensUsed := extractionjobFields[11].Descriptor()
	// extractionjob.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	extractionjob.DefaultTokensUsed = extractionjobDescTokensUsed.Default.(int)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	fixturerecordFields := schema.FixtureRecord{}.Fields()
	_ = fixturerecordFields
	// fixturerecordDescTitle is the schema descriptor for title field.
	fixturerecordDescTitle := fixturerecordFields[3].Descriptor()
	// fixturerecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	fixturerecord.TitleValidator = fixturerecordDescTitle.Validators[0].(func(string) error)
	// fixturerecordDescPosition is the schema descriptor for position field.
	fixturerecordDescPosition := fixturerecordFields[4].Descriptor()
	// fixturerecord.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	fixturerecord.PositionValidator = fixturerecordDescPosition.Validators[0].(func(int) error)
	// fixturerecordDescIsValidated is the schema descriptor for is_validated field.
	fixturerecordDescIsValidated := fixturerecordFields[8].Descriptor()
	// fixturerecord.DefaultIsValidated holds the default value on creation for the is_validated field.
	fixturerecord.DefaultIsValidated = fixturerecordDescIsValidated.Default.(bool)
	// fixturerecordDescStatus is the schema descriptor for status field.
	fixturerecordDescStatus := fixturerecordFields[10].Descriptor()
	// fixturerecord.DefaultStatus holds the default value on creation for the status field.
	fixturerecord.DefaultStatus = fixturerecordDescStatus.Default.(string)
	// fixturerecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	fixturerecord.StatusValidator = fixturerecordDescStatus.Validators[0].(func(string) error)
	// fixturerecordDescCreatedAt is the schema descriptor for created_at field.
	fixturerecordDescCreatedAt := fixturerecordFields[11].Descriptor()
	// fixturerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	fixturerecord.DefaultCreatedAt = fixturerecordDescCreatedAt.Default.(func() time.Time)
	// fixturerecordDescUpdatedAt is the schema descriptor for updated_at field.
	fixturerecordDescUpdatedAt := fixturerecordFields[12].Descriptor()
	// fixturerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fixturerecord.DefaultUpdatedAt = fixturerecordDescUpdatedAt.Default.(func() time.Time)
	// fixturerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fixturerecord.UpdateDefaultUpdatedAt = fixturerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fixturerecordDescID is the schema descriptor for id field.
	fixturerecordDescID := fixturerecordFields[0].Descriptor()
	// fixturerecord.DefaultID holds the default value on creation for the id field.
	fixturerecord.DefaultID = fixturerecordDescID.Default.(func() uuid.UUID)
	surveyFields := schema.Survey{}.Fields()
	_ = surveyFields
	// surveyDescReference is the schema descriptor for reference field.
	surveyDescReference := surveyFields[1].Descriptor()
	// survey.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	survey.ReferenceValidator = surveyDescReference.Validators[0].(func(string) error)
	// surveyDescSourceFilename is the schema descriptor for source_filename field.
	surveyDescSourceFilename := surveyFields[6].Descriptor()
	// survey.SourceFilenameValidator is a validator for the "source_filename" field. It is called by the builders before save.
	survey.SourceFilenameValidator = surveyDescSourceFilename.Validators[0].(func(string) error)
	// surveyDescCreatedAt is the schema descriptor for created_at field.
	surveyDescCreatedAt := surveyFields[9].Descriptor()
	// survey.DefaultCreatedAt holds the default value on creation for the created_at field.
	survey.DefaultCreatedAt = surveyDescCreatedAt.Default.(func() time.Time)
	// surveyDescUpdatedAt is the schema descriptor for updated_at field.
	surveyDescUpdatedAt := surveyFields[10].Descriptor()
	// survey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	survey.DefaultUpdatedAt = surveyDescUpdatedAt.Default.(func() time.Time)
	// survey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	survey.UpdateDefaultUpdatedAt = surveyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// surveyDescID is the schema descriptor for id field.
	surveyDescID := surveyFields[0].Descriptor()
	// survey.DefaultID holds the default value on creation for the id field.
	survey.DefaultID = surveyDescID.Default.(func() uuid.UUID)
}
