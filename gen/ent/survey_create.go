// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// SurveyCreate is the builder for creating a Survey entity.
type SurveyCreate struct {
	config
	mutation *SurveyMutation
	hooks    []Hook
}

// SetReference sets the "reference" field.
func (_c *SurveyCreate) SetReference(v string) *SurveyCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *SurveyCreate) SetClientName(v string) *SurveyCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableClientName(v *string) *SurveyCreate {
	if v != nil {
		_c.SetClientName(*v)
	}
	return _c
}

// SetClientAddress sets the "client_address" field.
func (_c *SurveyCreate) SetClientAddress(v string) *SurveyCreate {
	_c.mutation.SetClientAddress(v)
	return _c
}

// SetNillableClientAddress sets the "client_address" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableClientAddress(v *string) *SurveyCreate {
	if v != nil {
		_c.SetClientAddress(*v)
	}
	return _c
}

// SetClientPhone sets the "client_phone" field.
func (_c *SurveyCreate) SetClientPhone(v string) *SurveyCreate {
	_c.mutation.SetClientPhone(v)
	return _c
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableClientPhone(v *string) *SurveyCreate {
	if v != nil {
		_c.SetClientPhone(*v)
	}
	return _c
}

// SetClientEmail sets the "client_email" field.
func (_c *SurveyCreate) SetClientEmail(v string) *SurveyCreate {
	_c.mutation.SetClientEmail(v)
	return _c
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableClientEmail(v *string) *SurveyCreate {
	if v != nil {
		_c.SetClientEmail(*v)
	}
	return _c
}

// SetSourceFilename sets the "source_filename" field.
func (_c *SurveyCreate) SetSourceFilename(v string) *SurveyCreate {
	_c.mutation.SetSourceFilename(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SurveyCreate) SetConfidence(v float32) *SurveyCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *SurveyCreate) SetWarnings(v []string) *SurveyCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SurveyCreate) SetCreatedAt(v time.Time) *SurveyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableCreatedAt(v *time.Time) *SurveyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SurveyCreate) SetUpdatedAt(v time.Time) *SurveyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableUpdatedAt(v *time.Time) *SurveyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SurveyCreate) SetID(v uuid.UUID) *SurveyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SurveyCreate) SetNillableID(v *uuid.UUID) *SurveyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFixtureIDs adds the "fixtures" edge to the FixtureRecord entity by IDs.
func (_c *SurveyCreate) AddFixtureIDs(ids ...uuid.UUID) *SurveyCreate {
	_c.mutation.AddFixtureIDs(ids...)
	return _c
}

// AddFixtures adds the "fixtures" edges to the FixtureRecord entity.
func (_c *SurveyCreate) AddFixtures(v ...*FixtureRecord) *SurveyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFixtureIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_c *SurveyCreate) AddJobIDs(ids ...uuid.UUID) *SurveyCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_c *SurveyCreate) AddJobs(v ...*ExtractionJob) *SurveyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the SurveyMutation object of the builder.
func (_c *SurveyCreate) Mutation() *SurveyMutation {
	return _c.mutation
}

// Save creates the Survey in the database.
func (_c *SurveyCreate) Save(ctx context.Context) (*Survey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurveyCreate) SaveX(ctx context.Context) *Survey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurveyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := survey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := survey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := survey.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurveyCreate) check() error {
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "Survey.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := survey.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Survey.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFilename(); !ok {
		return &ValidationError{Name: "source_filename", err: errors.New(`ent: missing required field "Survey.source_filename"`)}
	}
	if v, ok := _c.mutation.SourceFilename(); ok {
		if err := survey.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Survey.source_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Survey.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Survey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Survey.updated_at"`)}
	}
	return nil
}

func (_c *SurveyCreate) sqlSave(ctx context.Context) (*Survey, error) {
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

func (_c *SurveyCreate) createSpec() (*Survey, *sqlgraph.CreateSpec) {
	var (
		_node = &Survey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(survey.Table, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(survey.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(survey.FieldClientName, field.TypeString, value)
		_node.ClientName = &value
	}
	if value, ok := _c.mutation.ClientAddress(); ok {
		_spec.SetField(survey.FieldClientAddress, field.TypeString, value)
		_node.ClientAddress = &value
	}
	if value, ok := _c.mutation.ClientPhone(); ok {
		_spec.SetField(survey.FieldClientPhone, field.TypeString, value)
		_node.ClientPhone = &value
	}
	if value, ok := _c.mutation.ClientEmail(); ok {
		_spec.SetField(survey.FieldClientEmail, field.TypeString, value)
		_node.ClientEmail = &value
	}
	if value, ok := _c.mutation.SourceFilename(); ok {
		_spec.SetField(survey.FieldSourceFilename, field.TypeString, value)
		_node.SourceFilename = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(survey.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(survey.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(survey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(survey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FixturesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   survey.FixturesTable,
			Columns: []string{survey.FixturesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fixturerecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   survey.JobsTable,
			Columns: []string{survey.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SurveyCreateBulk is the builder for creating many Survey entities in bulk.
type SurveyCreateBulk struct {
	config
	err      error
	builders []*SurveyCreate
}

// Save creates the Survey entities in the database.
func (_c *SurveyCreateBulk) Save(ctx context.Context) ([]*Survey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Survey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurveyMutation)
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
func (_c *SurveyCreateBulk) SaveX(ctx context.Context) []*Survey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurveyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurveyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
