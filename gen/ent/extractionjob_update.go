// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSurveyID sets the "survey_id" field.
func (_u *ExtractionJobUpdate) SetSurveyID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableSurveyID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// ClearSurveyID clears the value of the "survey_id" field.
func (_u *ExtractionJobUpdate) ClearSurveyID() *ExtractionJobUpdate {
	_u.mutation.ClearSurveyID()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *ExtractionJobUpdate) SetSourceFilename(v string) *ExtractionJobUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableSourceFilename(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractionJobUpdate) SetFormat(v string) *ExtractionJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFormat(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdate) SetStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdate) SetFinishedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdate) ClearFinishedAt() *ExtractionJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionJobUpdate) SetConfidence(v float32) *ExtractionJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableConfidence(v *float32) *ExtractionJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionJobUpdate) AddConfidence(v float32) *ExtractionJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionJobUpdate) ClearConfidence() *ExtractionJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionJobUpdate) SetRetryCount(v int) *ExtractionJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableRetryCount(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionJobUpdate) AddRetryCount(v int) *ExtractionJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionJobUpdate) SetModelName(v string) *ExtractionJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableModelName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionJobUpdate) ClearModelName() *ExtractionJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ExtractionJobUpdate) SetTokensUsed(v int) *ExtractionJobUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTokensUsed(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ExtractionJobUpdate) AddTokensUsed(v int) *ExtractionJobUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *ExtractionJobUpdate) SetRawJSON(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.SetRawJSON(v)
	return _u
}

// AppendRawJSON appends value to the "raw_json" field.
func (_u *ExtractionJobUpdate) AppendRawJSON(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.AppendRawJSON(v)
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *ExtractionJobUpdate) ClearRawJSON() *ExtractionJobUpdate {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_u *ExtractionJobUpdate) SetSurvey(v *Survey) *ExtractionJobUpdate {
	return _u.SetSurveyID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (_u *ExtractionJobUpdate) ClearSurvey() *ExtractionJobUpdate {
	_u.mutation.ClearSurvey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := extractionjob.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := extractionjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(extractionjob.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractionjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extractionjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(extractionjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(extractionjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(extractionjob.FieldRawJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldRawJSON, value)
		})
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(extractionjob.FieldRawJSON, field.TypeJSON)
	}
	if _u.mutation.SurveyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.SurveyTable,
			Columns: []string{extractionjob.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.SurveyTable,
			Columns: []string{extractionjob.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetSurveyID sets the "survey_id" field.
func (_u *ExtractionJobUpdateOne) SetSurveyID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableSurveyID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// ClearSurveyID clears the value of the "survey_id" field.
func (_u *ExtractionJobUpdateOne) ClearSurveyID() *ExtractionJobUpdateOne {
	_u.mutation.ClearSurveyID()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *ExtractionJobUpdateOne) SetSourceFilename(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableSourceFilename(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractionJobUpdateOne) SetFormat(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFormat(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdateOne) SetStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdateOne) SetFinishedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdateOne) ClearFinishedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionJobUpdateOne) SetConfidence(v float32) *ExtractionJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableConfidence(v *float32) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionJobUpdateOne) AddConfidence(v float32) *ExtractionJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionJobUpdateOne) ClearConfidence() *ExtractionJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionJobUpdateOne) SetRetryCount(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableRetryCount(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionJobUpdateOne) AddRetryCount(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionJobUpdateOne) SetModelName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableModelName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionJobUpdateOne) ClearModelName() *ExtractionJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ExtractionJobUpdateOne) SetTokensUsed(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTokensUsed(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ExtractionJobUpdateOne) AddTokensUsed(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *ExtractionJobUpdateOne) SetRawJSON(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.SetRawJSON(v)
	return _u
}

// AppendRawJSON appends value to the "raw_json" field.
func (_u *ExtractionJobUpdateOne) AppendRawJSON(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.AppendRawJSON(v)
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *ExtractionJobUpdateOne) ClearRawJSON() *ExtractionJobUpdateOne {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_u *ExtractionJobUpdateOne) SetSurvey(v *Survey) *ExtractionJobUpdateOne {
	return _u.SetSurveyID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (_u *ExtractionJobUpdateOne) ClearSurvey() *ExtractionJobUpdateOne {
	_u.mutation.ClearSurvey()
	return _u
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := extractionjob.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.source_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := extractionjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(extractionjob.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractionjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extractionjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractionjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(extractionjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(extractionjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(extractionjob.FieldRawJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldRawJSON, value)
		})
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(extractionjob.FieldRawJSON, field.TypeJSON)
	}
	if _u.mutation.SurveyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.SurveyTable,
			Columns: []string{extractionjob.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.SurveyTable,
			Columns: []string{extractionjob.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
