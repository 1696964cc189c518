// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionJob = "ExtractionJob"
	TypeFixtureRecord = "FixtureRecord"
	TypeSurvey        = "Survey"
)

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_filename *string
	format          *string
	started_at      *time.Time
	finished_at     *time.Time
	status          *string
	error_message   *string
	confidence      *float32
	addconfidence   *float32
	retry_count     *int
	addretry_count  *int
	model_name      *string
	tokens_used     *int
	addtokens_used  *int
	raw_json        *json.RawMessage
	appendraw_json  json.RawMessage
	clearedFields   map[string]struct{}
	survey          *uuid.UUID
	clearedsurvey   bool
	done            bool
	oldValue        func(context.Context) (*ExtractionJob, error)
	predicates      []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSurveyID sets the "survey_id" field.
func (m *ExtractionJobMutation) SetSurveyID(u uuid.UUID) {
	m.survey = &u
}

// SurveyID returns the value of the "survey_id" field in the mutation.
func (m *ExtractionJobMutation) SurveyID() (r uuid.UUID, exists bool) {
	v := m.survey
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyID returns the old "survey_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSurveyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyID: %w", err)
	}
	return oldValue.SurveyID, nil
}

// ClearSurveyID clears the value of the "survey_id" field.
func (m *ExtractionJobMutation) ClearSurveyID() {
	m.survey = nil
	m.clearedFields[extractionjob.FieldSurveyID] = struct{}{}
}

// SurveyIDCleared returns if the "survey_id" field was cleared in this mutation.
func (m *ExtractionJobMutation) SurveyIDCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldSurveyID]
	return ok
}

// ResetSurveyID resets all changes to the "survey_id" field.
func (m *ExtractionJobMutation) ResetSurveyID() {
	m.survey = nil
	delete(m.clearedFields, extractionjob.FieldSurveyID)
}

// SetSourceFilename sets the "source_filename" field.
func (m *ExtractionJobMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *ExtractionJobMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *ExtractionJobMutation) ResetSourceFilename() {
	m.source_filename = nil
}

// SetFormat sets the "format" field.
func (m *ExtractionJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractionJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractionJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionJobMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionJobMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionJobMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionJobMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ExtractionJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[extractionjob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ExtractionJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, extractionjob.FieldConfidence)
}

// SetRetryCount sets the "retry_count" field.
func (m *ExtractionJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ExtractionJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ExtractionJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ExtractionJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ExtractionJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetModelName sets the "model_name" field.
func (m *ExtractionJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionjob.FieldModelName)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ExtractionJobMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ExtractionJobMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ExtractionJobMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ExtractionJobMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ExtractionJobMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetRawJSON sets the "raw_json" field.
func (m *ExtractionJobMutation) SetRawJSON(jm json.RawMessage) {
	m.raw_json = &jm
	m.appendraw_json = nil
}

// RawJSON returns the value of the "raw_json" field in the mutation.
func (m *ExtractionJobMutation) RawJSON() (r json.RawMessage, exists bool) {
	v := m.raw_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRawJSON returns the old "raw_json" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldRawJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawJSON: %w", err)
	}
	return oldValue.RawJSON, nil
}

// AppendRawJSON adds jm to the "raw_json" field.
func (m *ExtractionJobMutation) AppendRawJSON(jm json.RawMessage) {
	m.appendraw_json = append(m.appendraw_json, jm...)
}

// AppendedRawJSON returns the list of values that were appended to the "raw_json" field in this mutation.
func (m *ExtractionJobMutation) AppendedRawJSON() (json.RawMessage, bool) {
	if len(m.appendraw_json) == 0 {
		return nil, false
	}
	return m.appendraw_json, true
}

// ClearRawJSON clears the value of the "raw_json" field.
func (m *ExtractionJobMutation) ClearRawJSON() {
	m.raw_json = nil
	m.appendraw_json = nil
	m.clearedFields[extractionjob.FieldRawJSON] = struct{}{}
}

// RawJSONCleared returns if the "raw_json" field was cleared in this mutation.
func (m *ExtractionJobMutation) RawJSONCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldRawJSON]
	return ok
}

// ResetRawJSON resets all changes to the "raw_json" field.
func (m *ExtractionJobMutation) ResetRawJSON() {
	m.raw_json = nil
	m.appendraw_json = nil
	delete(m.clearedFields, extractionjob.FieldRawJSON)
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (m *ExtractionJobMutation) ClearSurvey() {
	m.clearedsurvey = true
	m.clearedFields[extractionjob.FieldSurveyID] = struct{}{}
}

// SurveyCleared reports if the "survey" edge to the Survey entity was cleared.
func (m *ExtractionJobMutation) SurveyCleared() bool {
	return m.SurveyIDCleared() || m.clearedsurvey
}

// SurveyIDs returns the "survey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurveyID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) SurveyIDs() (ids []uuid.UUID) {
	if id := m.survey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvey resets all changes to the "survey" edge.
func (m *ExtractionJobMutation) ResetSurvey() {
	m.survey = nil
	m.clearedsurvey = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.survey != nil {
		fields = append(fields, extractionjob.FieldSurveyID)
	}
	if m.source_filename != nil {
		fields = append(fields, extractionjob.FieldSourceFilename)
	}
	if m.format != nil {
		fields = append(fields, extractionjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.confidence != nil {
		fields = append(fields, extractionjob.FieldConfidence)
	}
	if m.retry_count != nil {
		fields = append(fields, extractionjob.FieldRetryCount)
	}
	if m.model_name != nil {
		fields = append(fields, extractionjob.FieldModelName)
	}
	if m.tokens_used != nil {
		fields = append(fields, extractionjob.FieldTokensUsed)
	}
	if m.raw_json != nil {
		fields = append(fields, extractionjob.FieldRawJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldSurveyID:
		return m.SurveyID()
	case extractionjob.FieldSourceFilename:
		return m.SourceFilename()
	case extractionjob.FieldFormat:
		return m.Format()
	case extractionjob.FieldStartedAt:
		return m.StartedAt()
	case extractionjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldConfidence:
		return m.Confidence()
	case extractionjob.FieldRetryCount:
		return m.RetryCount()
	case extractionjob.FieldModelName:
		return m.ModelName()
	case extractionjob.FieldTokensUsed:
		return m.TokensUsed()
	case extractionjob.FieldRawJSON:
		return m.RawJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldSurveyID:
		return m.OldSurveyID(ctx)
	case extractionjob.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case extractionjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractionjob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case extractionjob.FieldModelName:
		return m.OldModelName(ctx)
	case extractionjob.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case extractionjob.FieldRawJSON:
		return m.OldRawJSON(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldSurveyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyID(v)
		return nil
	case extractionjob.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case extractionjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractionjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case extractionjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionjob.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case extractionjob.FieldRawJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawJSON(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractionjob.FieldConfidence)
	}
	if m.addretry_count != nil {
		fields = append(fields, extractionjob.FieldRetryCount)
	}
	if m.addtokens_used != nil {
		fields = append(fields, extractionjob.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldConfidence:
		return m.AddedConfidence()
	case extractionjob.FieldRetryCount:
		return m.AddedRetryCount()
	case extractionjob.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractionjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case extractionjob.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldSurveyID) {
		fields = append(fields, extractionjob.FieldSurveyID)
	}
	if m.FieldCleared(extractionjob.FieldFinishedAt) {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldConfidence) {
		fields = append(fields, extractionjob.FieldConfidence)
	}
	if m.FieldCleared(extractionjob.FieldModelName) {
		fields = append(fields, extractionjob.FieldModelName)
	}
	if m.FieldCleared(extractionjob.FieldRawJSON) {
		fields = append(fields, extractionjob.FieldRawJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldSurveyID:
		m.ClearSurveyID()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldConfidence:
		m.ClearConfidence()
		return nil
	case extractionjob.FieldModelName:
		m.ClearModelName()
		return nil
	case extractionjob.FieldRawJSON:
		m.ClearRawJSON()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldSurveyID:
		m.ResetSurveyID()
		return nil
	case extractionjob.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case extractionjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractionjob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case extractionjob.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionjob.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case extractionjob.FieldRawJSON:
		m.ResetRawJSON()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.survey != nil {
		edges = append(edges, extractionjob.EdgeSurvey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeSurvey:
		if id := m.survey; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsurvey {
		edges = append(edges, extractionjob.EdgeSurvey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeSurvey:
		return m.clearedsurvey
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeSurvey:
		m.ClearSurvey()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeSurvey:
		m.ResetSurvey()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// FixtureRecordMutation represents an operation that mutates the FixtureRecord nodes in the graph.
type FixtureRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	repere              *string
	title               *string
	position            *int
	addposition         *int
	original_data       *json.RawMessage
	appendoriginal_data json.RawMessage
	modified_data       *json.RawMessage
	appendmodified_data json.RawMessage
	deviations          *json.RawMessage
	appenddeviations    json.RawMessage
	is_validated        *bool
	validated_at        *time.Time
	status              *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	survey              *uuid.UUID
	clearedsurvey       bool
	done                bool
	oldValue            func(context.Context) (*FixtureRecord, error)
	predicates          []predicate.FixtureRecord
}

var _ ent.Mutation = (*FixtureRecordMutation)(nil)

// fixturerecordOption allows management of the mutation configuration using functional options.
type fixturerecordOption func(*FixtureRecordMutation)

// newFixtureRecordMutation creates new mutation for the FixtureRecord entity.
func newFixtureRecordMutation(c config, op Op, opts ...fixturerecordOption) *FixtureRecordMutation {
	m := &FixtureRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFixtureRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFixtureRecordID sets the ID field of the mutation.
func withFixtureRecordID(id uuid.UUID) fixturerecordOption {
	return func(m *FixtureRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FixtureRecord
		)
		m.oldValue = func(ctx context.Context) (*FixtureRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FixtureRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFixtureRecord sets the old FixtureRecord of the mutation.
func withFixtureRecord(node *FixtureRecord) fixturerecordOption {
	return func(m *FixtureRecordMutation) {
		m.oldValue = func(context.Context) (*FixtureRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FixtureRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FixtureRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FixtureRecord entities.
func (m *FixtureRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FixtureRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FixtureRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FixtureRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSurveyID sets the "survey_id" field.
func (m *FixtureRecordMutation) SetSurveyID(u uuid.UUID) {
	m.survey = &u
}

// SurveyID returns the value of the "survey_id" field in the mutation.
func (m *FixtureRecordMutation) SurveyID() (r uuid.UUID, exists bool) {
	v := m.survey
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyID returns the old "survey_id" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldSurveyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyID: %w", err)
	}
	return oldValue.SurveyID, nil
}

// ResetSurveyID resets all changes to the "survey_id" field.
func (m *FixtureRecordMutation) ResetSurveyID() {
	m.survey = nil
}

// SetRepere sets the "repere" field.
func (m *FixtureRecordMutation) SetRepere(s string) {
	m.repere = &s
}

// Repere returns the value of the "repere" field in the mutation.
func (m *FixtureRecordMutation) Repere() (r string, exists bool) {
	v := m.repere
	if v == nil {
		return
	}
	return *v, true
}

// OldRepere returns the old "repere" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldRepere(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepere is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepere requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepere: %w", err)
	}
	return oldValue.Repere, nil
}

// ClearRepere clears the value of the "repere" field.
func (m *FixtureRecordMutation) ClearRepere() {
	m.repere = nil
	m.clearedFields[fixturerecord.FieldRepere] = struct{}{}
}

// RepereCleared returns if the "repere" field was cleared in this mutation.
func (m *FixtureRecordMutation) RepereCleared() bool {
	_, ok := m.clearedFields[fixturerecord.FieldRepere]
	return ok
}

// ResetRepere resets all changes to the "repere" field.
func (m *FixtureRecordMutation) ResetRepere() {
	m.repere = nil
	delete(m.clearedFields, fixturerecord.FieldRepere)
}

// SetTitle sets the "title" field.
func (m *FixtureRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FixtureRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *FixtureRecordMutation) ResetTitle() {
	m.title = nil
}

// SetPosition sets the "position" field.
func (m *FixtureRecordMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *FixtureRecordMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *FixtureRecordMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *FixtureRecordMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *FixtureRecordMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetOriginalData sets the "original_data" field.
func (m *FixtureRecordMutation) SetOriginalData(jm json.RawMessage) {
	m.original_data = &jm
	m.appendoriginal_data = nil
}

// OriginalData returns the value of the "original_data" field in the mutation.
func (m *FixtureRecordMutation) OriginalData() (r json.RawMessage, exists bool) {
	v := m.original_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalData returns the old "original_data" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldOriginalData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalData: %w", err)
	}
	return oldValue.OriginalData, nil
}

// AppendOriginalData adds jm to the "original_data" field.
func (m *FixtureRecordMutation) AppendOriginalData(jm json.RawMessage) {
	m.appendoriginal_data = append(m.appendoriginal_data, jm...)
}

// AppendedOriginalData returns the list of values that were appended to the "original_data" field in this mutation.
func (m *FixtureRecordMutation) AppendedOriginalData() (json.RawMessage, bool) {
	if len(m.appendoriginal_data) == 0 {
		return nil, false
	}
	return m.appendoriginal_data, true
}

// ResetOriginalData resets all changes to the "original_data" field.
func (m *FixtureRecordMutation) ResetOriginalData() {
	m.original_data = nil
	m.appendoriginal_data = nil
}

// SetModifiedData sets the "modified_data" field.
func (m *FixtureRecordMutation) SetModifiedData(jm json.RawMessage) {
	m.modified_data = &jm
	m.appendmodified_data = nil
}

// ModifiedData returns the value of the "modified_data" field in the mutation.
func (m *FixtureRecordMutation) ModifiedData() (r json.RawMessage, exists bool) {
	v := m.modified_data
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedData returns the old "modified_data" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldModifiedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedData: %w", err)
	}
	return oldValue.ModifiedData, nil
}

// AppendModifiedData adds jm to the "modified_data" field.
func (m *FixtureRecordMutation) AppendModifiedData(jm json.RawMessage) {
	m.appendmodified_data = append(m.appendmodified_data, jm...)
}

// AppendedModifiedData returns the list of values that were appended to the "modified_data" field in this mutation.
func (m *FixtureRecordMutation) AppendedModifiedData() (json.RawMessage, bool) {
	if len(m.appendmodified_data) == 0 {
		return nil, false
	}
	return m.appendmodified_data, true
}

// ClearModifiedData clears the value of the "modified_data" field.
func (m *FixtureRecordMutation) ClearModifiedData() {
	m.modified_data = nil
	m.appendmodified_data = nil
	m.clearedFields[fixturerecord.FieldModifiedData] = struct{}{}
}

// ModifiedDataCleared returns if the "modified_data" field was cleared in this mutation.
func (m *FixtureRecordMutation) ModifiedDataCleared() bool {
	_, ok := m.clearedFields[fixturerecord.FieldModifiedData]
	return ok
}

// ResetModifiedData resets all changes to the "modified_data" field.
func (m *FixtureRecordMutation) ResetModifiedData() {
	m.modified_data = nil
	m.appendmodified_data = nil
	delete(m.clearedFields, fixturerecord.FieldModifiedData)
}

// SetDeviations sets the "deviations" field.
func (m *FixtureRecordMutation) SetDeviations(jm json.RawMessage) {
	m.deviations = &jm
	m.appenddeviations = nil
}

// Deviations returns the value of the "deviations" field in the mutation.
func (m *FixtureRecordMutation) Deviations() (r json.RawMessage, exists bool) {
	v := m.deviations
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviations returns the old "deviations" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldDeviations(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviations: %w", err)
	}
	return oldValue.Deviations, nil
}

// AppendDeviations adds jm to the "deviations" field.
func (m *FixtureRecordMutation) AppendDeviations(jm json.RawMessage) {
	m.appenddeviations = append(m.appenddeviations, jm...)
}

// AppendedDeviations returns the list of values that were appended to the "deviations" field in this mutation.
func (m *FixtureRecordMutation) AppendedDeviations() (json.RawMessage, bool) {
	if len(m.appenddeviations) == 0 {
		return nil, false
	}
	return m.appenddeviations, true
}

// ClearDeviations clears the value of the "deviations" field.
func (m *FixtureRecordMutation) ClearDeviations() {
	m.deviations = nil
	m.appenddeviations = nil
	m.clearedFields[fixturerecord.FieldDeviations] = struct{}{}
}

// DeviationsCleared returns if the "deviations" field was cleared in this mutation.
func (m *FixtureRecordMutation) DeviationsCleared() bool {
	_, ok := m.clearedFields[fixturerecord.FieldDeviations]
	return ok
}

// ResetDeviations resets all changes to the "deviations" field.
func (m *FixtureRecordMutation) ResetDeviations() {
	m.deviations = nil
	m.appenddeviations = nil
	delete(m.clearedFields, fixturerecord.FieldDeviations)
}

// SetIsValidated sets the "is_validated" field.
func (m *FixtureRecordMutation) SetIsValidated(b bool) {
	m.is_validated = &b
}

// IsValidated returns the value of the "is_validated" field in the mutation.
func (m *FixtureRecordMutation) IsValidated() (r bool, exists bool) {
	v := m.is_validated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValidated returns the old "is_validated" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldIsValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValidated: %w", err)
	}
	return oldValue.IsValidated, nil
}

// ResetIsValidated resets all changes to the "is_validated" field.
func (m *FixtureRecordMutation) ResetIsValidated() {
	m.is_validated = nil
}

// SetValidatedAt sets the "validated_at" field.
func (m *FixtureRecordMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *FixtureRecordMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *FixtureRecordMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[fixturerecord.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *FixtureRecordMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[fixturerecord.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *FixtureRecordMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, fixturerecord.FieldValidatedAt)
}

// SetStatus sets the "status" field.
func (m *FixtureRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FixtureRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FixtureRecordMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FixtureRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FixtureRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FixtureRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FixtureRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FixtureRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FixtureRecord entity.
// If the FixtureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FixtureRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FixtureRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (m *FixtureRecordMutation) ClearSurvey() {
	m.clearedsurvey = true
	m.clearedFields[fixturerecord.FieldSurveyID] = struct{}{}
}

// SurveyCleared reports if the "survey" edge to the Survey entity was cleared.
func (m *FixtureRecordMutation) SurveyCleared() bool {
	return m.clearedsurvey
}

// SurveyIDs returns the "survey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurveyID instead. It exists only for internal usage by the builders.
func (m *FixtureRecordMutation) SurveyIDs() (ids []uuid.UUID) {
	if id := m.survey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvey resets all changes to the "survey" edge.
func (m *FixtureRecordMutation) ResetSurvey() {
	m.survey = nil
	m.clearedsurvey = false
}

// Where appends a list predicates to the FixtureRecordMutation builder.
func (m *FixtureRecordMutation) Where(ps ...predicate.FixtureRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FixtureRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FixtureRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FixtureRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FixtureRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FixtureRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FixtureRecord).
func (m *FixtureRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FixtureRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.survey != nil {
		fields = append(fields, fixturerecord.FieldSurveyID)
	}
	if m.repere != nil {
		fields = append(fields, fixturerecord.FieldRepere)
	}
	if m.title != nil {
		fields = append(fields, fixturerecord.FieldTitle)
	}
	if m.position != nil {
		fields = append(fields, fixturerecord.FieldPosition)
	}
	if m.original_data != nil {
		fields = append(fields, fixturerecord.FieldOriginalData)
	}
	if m.modified_data != nil {
		fields = append(fields, fixturerecord.FieldModifiedData)
	}
	if m.deviations != nil {
		fields = append(fields, fixturerecord.FieldDeviations)
	}
	if m.is_validated != nil {
		fields = append(fields, fixturerecord.FieldIsValidated)
	}
	if m.validated_at != nil {
		fields = append(fields, fixturerecord.FieldValidatedAt)
	}
	if m.status != nil {
		fields = append(fields, fixturerecord.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, fixturerecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fixturerecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FixtureRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fixturerecord.FieldSurveyID:
		return m.SurveyID()
	case fixturerecord.FieldRepere:
		return m.Repere()
	case fixturerecord.FieldTitle:
		return m.Title()
	case fixturerecord.FieldPosition:
		return m.Position()
	case fixturerecord.FieldOriginalData:
		return m.OriginalData()
	case fixturerecord.FieldModifiedData:
		return m.ModifiedData()
	case fixturerecord.FieldDeviations:
		return m.Deviations()
	case fixturerecord.FieldIsValidated:
		return m.IsValidated()
	case fixturerecord.FieldValidatedAt:
		return m.ValidatedAt()
	case fixturerecord.FieldStatus:
		return m.Status()
	case fixturerecord.FieldCreatedAt:
		return m.CreatedAt()
	case fixturerecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FixtureRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fixturerecord.FieldSurveyID:
		return m.OldSurveyID(ctx)
	case fixturerecord.FieldRepere:
		return m.OldRepere(ctx)
	case fixturerecord.FieldTitle:
		return m.OldTitle(ctx)
	case fixturerecord.FieldPosition:
		return m.OldPosition(ctx)
	case fixturerecord.FieldOriginalData:
		return m.OldOriginalData(ctx)
	case fixturerecord.FieldModifiedData:
		return m.OldModifiedData(ctx)
	case fixturerecord.FieldDeviations:
		return m.OldDeviations(ctx)
	case fixturerecord.FieldIsValidated:
		return m.OldIsValidated(ctx)
	case fixturerecord.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case fixturerecord.FieldStatus:
		return m.OldStatus(ctx)
	case fixturerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fixturerecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FixtureRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FixtureRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fixturerecord.FieldSurveyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyID(v)
		return nil
	case fixturerecord.FieldRepere:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepere(v)
		return nil
	case fixturerecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case fixturerecord.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case fixturerecord.FieldOriginalData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalData(v)
		return nil
	case fixturerecord.FieldModifiedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedData(v)
		return nil
	case fixturerecord.FieldDeviations:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviations(v)
		return nil
	case fixturerecord.FieldIsValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValidated(v)
		return nil
	case fixturerecord.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case fixturerecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fixturerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fixturerecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FixtureRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FixtureRecordMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, fixturerecord.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FixtureRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fixturerecord.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FixtureRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fixturerecord.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown FixtureRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FixtureRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fixturerecord.FieldRepere) {
		fields = append(fields, fixturerecord.FieldRepere)
	}
	if m.FieldCleared(fixturerecord.FieldModifiedData) {
		fields = append(fields, fixturerecord.FieldModifiedData)
	}
	if m.FieldCleared(fixturerecord.FieldDeviations) {
		fields = append(fields, fixturerecord.FieldDeviations)
	}
	if m.FieldCleared(fixturerecord.FieldValidatedAt) {
		fields = append(fields, fixturerecord.FieldValidatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FixtureRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FixtureRecordMutation) ClearField(name string) error {
	switch name {
	case fixturerecord.FieldRepere:
		m.ClearRepere()
		return nil
	case fixturerecord.FieldModifiedData:
		m.ClearModifiedData()
		return nil
	case fixturerecord.FieldDeviations:
		m.ClearDeviations()
		return nil
	case fixturerecord.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown FixtureRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FixtureRecordMutation) ResetField(name string) error {
	switch name {
	case fixturerecord.FieldSurveyID:
		m.ResetSurveyID()
		return nil
	case fixturerecord.FieldRepere:
		m.ResetRepere()
		return nil
	case fixturerecord.FieldTitle:
		m.ResetTitle()
		return nil
	case fixturerecord.FieldPosition:
		m.ResetPosition()
		return nil
	case fixturerecord.FieldOriginalData:
		m.ResetOriginalData()
		return nil
	case fixturerecord.FieldModifiedData:
		m.ResetModifiedData()
		return nil
	case fixturerecord.FieldDeviations:
		m.ResetDeviations()
		return nil
	case fixturerecord.FieldIsValidated:
		m.ResetIsValidated()
		return nil
	case fixturerecord.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case fixturerecord.FieldStatus:
		m.ResetStatus()
		return nil
	case fixturerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fixturerecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FixtureRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FixtureRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.survey != nil {
		edges = append(edges, fixturerecord.EdgeSurvey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FixtureRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fixturerecord.EdgeSurvey:
		if id := m.survey; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FixtureRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FixtureRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FixtureRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsurvey {
		edges = append(edges, fixturerecord.EdgeSurvey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FixtureRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case fixturerecord.EdgeSurvey:
		return m.clearedsurvey
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FixtureRecordMutation) ClearEdge(name string) error {
	switch name {
	case fixturerecord.EdgeSurvey:
		m.ClearSurvey()
		return nil
	}
	return fmt.Errorf("unknown FixtureRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FixtureRecordMutation) ResetEdge(name string) error {
	switch name {
	case fixturerecord.EdgeSurvey:
		m.ResetSurvey()
		return nil
	}
	return fmt.Errorf("unknown FixtureRecord edge %s", name)
}

// SurveyMutation represents an operation that mutates the Survey nodes in the graph.
type SurveyMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	reference       *string
	client_name     *string
	client_address  *string
	client_phone    *string
	client_email    *string
	source_filename *string
	confidence      *float32
	addconfidence   *float32
	warnings        *[]string
	appendwarnings  []string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	fixtures        map[uuid.UUID]struct{}
	removedfixtures map[uuid.UUID]struct{}
	clearedfixtures bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Survey, error)
	predicates      []predicate.Survey
}

var _ ent.Mutation = (*SurveyMutation)(nil)

// surveyOption allows management of the mutation configuration using functional options.
type surveyOption func(*SurveyMutation)

// newSurveyMutation creates new mutation for the Survey entity.
func newSurveyMutation(c config, op Op, opts ...surveyOption) *SurveyMutation {
	m := &SurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSurveyID sets the ID field of the mutation.
func withSurveyID(id uuid.UUID) surveyOption {
	return func(m *SurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *Survey
		)
		m.oldValue = func(ctx context.Context) (*Survey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Survey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSurvey sets the old Survey of the mutation.
func withSurvey(node *Survey) surveyOption {
	return func(m *SurveyMutation) {
		m.oldValue = func(context.Context) (*Survey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Survey entities.
func (m *SurveyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SurveyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SurveyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Survey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReference sets the "reference" field.
func (m *SurveyMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *SurveyMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ResetReference resets all changes to the "reference" field.
func (m *SurveyMutation) ResetReference() {
	m.reference = nil
}

// SetClientName sets the "client_name" field.
func (m *SurveyMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *SurveyMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldClientName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ClearClientName clears the value of the "client_name" field.
func (m *SurveyMutation) ClearClientName() {
	m.client_name = nil
	m.clearedFields[survey.FieldClientName] = struct{}{}
}

// ClientNameCleared returns if the "client_name" field was cleared in this mutation.
func (m *SurveyMutation) ClientNameCleared() bool {
	_, ok := m.clearedFields[survey.FieldClientName]
	return ok
}

// ResetClientName resets all changes to the "client_name" field.
func (m *SurveyMutation) ResetClientName() {
	m.client_name = nil
	delete(m.clearedFields, survey.FieldClientName)
}

// SetClientAddress sets the "client_address" field.
func (m *SurveyMutation) SetClientAddress(s string) {
	m.client_address = &s
}

// ClientAddress returns the value of the "client_address" field in the mutation.
func (m *SurveyMutation) ClientAddress() (r string, exists bool) {
	v := m.client_address
	if v == nil {
		return
	}
	return *v, true
}

// OldClientAddress returns the old "client_address" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldClientAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientAddress: %w", err)
	}
	return oldValue.ClientAddress, nil
}

// ClearClientAddress clears the value of the "client_address" field.
func (m *SurveyMutation) ClearClientAddress() {
	m.client_address = nil
	m.clearedFields[survey.FieldClientAddress] = struct{}{}
}

// ClientAddressCleared returns if the "client_address" field was cleared in this mutation.
func (m *SurveyMutation) ClientAddressCleared() bool {
	_, ok := m.clearedFields[survey.FieldClientAddress]
	return ok
}

// ResetClientAddress resets all changes to the "client_address" field.
func (m *SurveyMutation) ResetClientAddress() {
	m.client_address = nil
	delete(m.clearedFields, survey.FieldClientAddress)
}

// SetClientPhone sets the "client_phone" field.
func (m *SurveyMutation) SetClientPhone(s string) {
	m.client_phone = &s
}

// ClientPhone returns the value of the "client_phone" field in the mutation.
func (m *SurveyMutation) ClientPhone() (r string, exists bool) {
	v := m.client_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldClientPhone returns the old "client_phone" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldClientPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientPhone: %w", err)
	}
	return oldValue.ClientPhone, nil
}

// ClearClientPhone clears the value of the "client_phone" field.
func (m *SurveyMutation) ClearClientPhone() {
	m.client_phone = nil
	m.clearedFields[survey.FieldClientPhone] = struct{}{}
}

// ClientPhoneCleared returns if the "client_phone" field was cleared in this mutation.
func (m *SurveyMutation) ClientPhoneCleared() bool {
	_, ok := m.clearedFields[survey.FieldClientPhone]
	return ok
}

// ResetClientPhone resets all changes to the "client_phone" field.
func (m *SurveyMutation) ResetClientPhone() {
	m.client_phone = nil
	delete(m.clearedFields, survey.FieldClientPhone)
}

// SetClientEmail sets the "client_email" field.
func (m *SurveyMutation) SetClientEmail(s string) {
	m.client_email = &s
}

// ClientEmail returns the value of the "client_email" field in the mutation.
func (m *SurveyMutation) ClientEmail() (r string, exists bool) {
	v := m.client_email
	if v == nil {
		return
	}
	return *v, true
}

// OldClientEmail returns the old "client_email" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldClientEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientEmail: %w", err)
	}
	return oldValue.ClientEmail, nil
}

// ClearClientEmail clears the value of the "client_email" field.
func (m *SurveyMutation) ClearClientEmail() {
	m.client_email = nil
	m.clearedFields[survey.FieldClientEmail] = struct{}{}
}

// ClientEmailCleared returns if the "client_email" field was cleared in this mutation.
func (m *SurveyMutation) ClientEmailCleared() bool {
	_, ok := m.clearedFields[survey.FieldClientEmail]
	return ok
}

// ResetClientEmail resets all changes to the "client_email" field.
func (m *SurveyMutation) ResetClientEmail() {
	m.client_email = nil
	delete(m.clearedFields, survey.FieldClientEmail)
}

// SetSourceFilename sets the "source_filename" field.
func (m *SurveyMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *SurveyMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *SurveyMutation) ResetSourceFilename() {
	m.source_filename = nil
}

// SetConfidence sets the "confidence" field.
func (m *SurveyMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SurveyMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SurveyMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SurveyMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SurveyMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetWarnings sets the "warnings" field.
func (m *SurveyMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *SurveyMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *SurveyMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *SurveyMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *SurveyMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[survey.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *SurveyMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[survey.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *SurveyMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, survey.FieldWarnings)
}

// SetCreatedAt sets the "created_at" field.
func (m *SurveyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SurveyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SurveyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SurveyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SurveyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Survey entity.
// If the Survey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SurveyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SurveyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFixtureIDs adds the "fixtures" edge to the FixtureRecord entity by ids.
func (m *SurveyMutation) AddFixtureIDs(ids ...uuid.UUID) {
	if m.fixtures == nil {
		m.fixtures = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fixtures[ids[i]] = struct{}{}
	}
}

// ClearFixtures clears the "fixtures" edge to the FixtureRecord entity.
func (m *SurveyMutation) ClearFixtures() {
	m.clearedfixtures = true
}

// FixturesCleared reports if the "fixtures" edge to the FixtureRecord entity was cleared.
func (m *SurveyMutation) FixturesCleared() bool {
	return m.clearedfixtures
}

// RemoveFixtureIDs removes the "fixtures" edge to the FixtureRecord entity by IDs.
func (m *SurveyMutation) RemoveFixtureIDs(ids ...uuid.UUID) {
	if m.removedfixtures == nil {
		m.removedfixtures = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fixtures, ids[i])
		m.removedfixtures[ids[i]] = struct{}{}
	}
}

// RemovedFixtures returns the removed IDs of the "fixtures" edge to the FixtureRecord entity.
func (m *SurveyMutation) RemovedFixturesIDs() (ids []uuid.UUID) {
	for id := range m.removedfixtures {
		ids = append(ids, id)
	}
	return
}

// FixturesIDs returns the "fixtures" edge IDs in the mutation.
func (m *SurveyMutation) FixturesIDs() (ids []uuid.UUID) {
	for id := range m.fixtures {
		ids = append(ids, id)
	}
	return
}

// ResetFixtures resets all changes to the "fixtures" edge.
func (m *SurveyMutation) ResetFixtures() {
	m.fixtures = nil
	m.clearedfixtures = false
	m.removedfixtures = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *SurveyMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *SurveyMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *SurveyMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *SurveyMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *SurveyMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *SurveyMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *SurveyMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the SurveyMutation builder.
func (m *SurveyMutation) Where(ps ...predicate.Survey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Survey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Survey).
func (m *SurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SurveyMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.reference != nil {
		fields = append(fields, survey.FieldReference)
	}
	if m.client_name != nil {
		fields = append(fields, survey.FieldClientName)
	}
	if m.client_address != nil {
		fields = append(fields, survey.FieldClientAddress)
	}
	if m.client_phone != nil {
		fields = append(fields, survey.FieldClientPhone)
	}
	if m.client_email != nil {
		fields = append(fields, survey.FieldClientEmail)
	}
	if m.source_filename != nil {
		fields = append(fields, survey.FieldSourceFilename)
	}
	if m.confidence != nil {
		fields = append(fields, survey.FieldConfidence)
	}
	if m.warnings != nil {
		fields = append(fields, survey.FieldWarnings)
	}
	if m.created_at != nil {
		fields = append(fields, survey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, survey.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case survey.FieldReference:
		return m.Reference()
	case survey.FieldClientName:
		return m.ClientName()
	case survey.FieldClientAddress:
		return m.ClientAddress()
	case survey.FieldClientPhone:
		return m.ClientPhone()
	case survey.FieldClientEmail:
		return m.ClientEmail()
	case survey.FieldSourceFilename:
		return m.SourceFilename()
	case survey.FieldConfidence:
		return m.Confidence()
	case survey.FieldWarnings:
		return m.Warnings()
	case survey.FieldCreatedAt:
		return m.CreatedAt()
	case survey.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case survey.FieldReference:
		return m.OldReference(ctx)
	case survey.FieldClientName:
		return m.OldClientName(ctx)
	case survey.FieldClientAddress:
		return m.OldClientAddress(ctx)
	case survey.FieldClientPhone:
		return m.OldClientPhone(ctx)
	case survey.FieldClientEmail:
		return m.OldClientEmail(ctx)
	case survey.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case survey.FieldConfidence:
		return m.OldConfidence(ctx)
	case survey.FieldWarnings:
		return m.OldWarnings(ctx)
	case survey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case survey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Survey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case survey.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case survey.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case survey.FieldClientAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientAddress(v)
		return nil
	case survey.FieldClientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientPhone(v)
		return nil
	case survey.FieldClientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientEmail(v)
		return nil
	case survey.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case survey.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case survey.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case survey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case survey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SurveyMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, survey.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SurveyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case survey.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case survey.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Survey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SurveyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(survey.FieldClientName) {
		fields = append(fields, survey.FieldClientName)
	}
	if m.FieldCleared(survey.FieldClientAddress) {
		fields = append(fields, survey.FieldClientAddress)
	}
	if m.FieldCleared(survey.FieldClientPhone) {
		fields = append(fields, survey.FieldClientPhone)
	}
	if m.FieldCleared(survey.FieldClientEmail) {
		fields = append(fields, survey.FieldClientEmail)
	}
	if m.FieldCleared(survey.FieldWarnings) {
		fields = append(fields, survey.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SurveyMutation) ClearField(name string) error {
	switch name {
	case survey.FieldClientName:
		m.ClearClientName()
		return nil
	case survey.FieldClientAddress:
		m.ClearClientAddress()
		return nil
	case survey.FieldClientPhone:
		m.ClearClientPhone()
		return nil
	case survey.FieldClientEmail:
		m.ClearClientEmail()
		return nil
	case survey.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown Survey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SurveyMutation) ResetField(name string) error {
	switch name {
	case survey.FieldReference:
		m.ResetReference()
		return nil
	case survey.FieldClientName:
		m.ResetClientName()
		return nil
	case survey.FieldClientAddress:
		m.ResetClientAddress()
		return nil
	case survey.FieldClientPhone:
		m.ResetClientPhone()
		return nil
	case survey.FieldClientEmail:
		m.ResetClientEmail()
		return nil
	case survey.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case survey.FieldConfidence:
		m.ResetConfidence()
		return nil
	case survey.FieldWarnings:
		m.ResetWarnings()
		return nil
	case survey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case survey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Survey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fixtures != nil {
		edges = append(edges, survey.EdgeFixtures)
	}
	if m.jobs != nil {
		edges = append(edges, survey.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SurveyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case survey.EdgeFixtures:
		ids := make([]ent.Value, 0, len(m.fixtures))
		for id := range m.fixtures {
			ids = append(ids, id)
		}
		return ids
	case survey.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfixtures != nil {
		edges = append(edges, survey.EdgeFixtures)
	}
	if m.removedjobs != nil {
		edges = append(edges, survey.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SurveyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case survey.EdgeFixtures:
		ids := make([]ent.Value, 0, len(m.removedfixtures))
		for id := range m.removedfixtures {
			ids = append(ids, id)
		}
		return ids
	case survey.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfixtures {
		edges = append(edges, survey.EdgeFixtures)
	}
	if m.clearedjobs {
		edges = append(edges, survey.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SurveyMutation) EdgeCleared(name string) bool {
	switch name {
	case survey.EdgeFixtures:
		return m.clearedfixtures
	case survey.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SurveyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Survey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SurveyMutation) ResetEdge(name string) error {
	switch name {
	case survey.EdgeFixtures:
		m.ResetFixtures()
		return nil
	case survey.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Survey edge %s", name)
}
