// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetSurveyID sets the "survey_id" field.
func (_c *ExtractionJobCreate) SetSurveyID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetSurveyID(v)
	return _c
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableSurveyID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetSurveyID(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *ExtractionJobCreate) SetSourceFilename(v string) *ExtractionJobCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ExtractionJobCreate) SetFormat(v string) *ExtractionJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionJobCreate) SetStartedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStartedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionJobCreate) SetFinishedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableFinishedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionJobCreate) SetStatus(v string) *ExtractionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStatus(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionJobCreate) SetErrorMessage(v string) *ExtractionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableErrorMessage(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionJobCreate) SetConfidence(v float32) *ExtractionJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableConfidence(v *float32) *ExtractionJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ExtractionJobCreate) SetRetryCount(v int) *ExtractionJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableRetryCount(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionJobCreate) SetModelName(v string) *ExtractionJobCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableModelName(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ExtractionJobCreate) SetTokensUsed(v int) *ExtractionJobCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTokensUsed(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetRawJSON sets the "raw_json" field.
func (_c *ExtractionJobCreate) SetRawJSON(v json.RawMessage) *ExtractionJobCreate {
	_c.mutation.SetRawJSON(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_c *ExtractionJobCreate) SetSurvey(v *Survey) *ExtractionJobCreate {
	return _c.SetSurveyID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extractionjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := extractionjob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := extractionjob.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.SourceFilename(); !ok {
		return &ValidationError{Name: "source_filename", err: errors.New(`ent: missing required field "ExtractionJob.source_filename"`)}
	}
	if v, ok := _c.mutation.SourceFilename(); ok {
		if err := extractionjob.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.source_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ExtractionJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := extractionjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractionJob.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ExtractionJob.retry_count"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "ExtractionJob.tokens_used"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(extractionjob.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(extractionjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionjob.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(extractionjob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(extractionjob.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.RawJSON(); ok {
		_spec.SetField(extractionjob.FieldRawJSON, field.TypeJSON, value)
		_node.RawJSON = value
	}
	if nodes := _c.mutation.SurveyIDs(); len(nodes) > 0 {
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
		_node.SurveyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
