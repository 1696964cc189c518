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
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// FixtureRecordCreate is the builder for creating a FixtureRecord entity.
type FixtureRecordCreate struct {
	config
	mutation *FixtureRecordMutation
	hooks    []Hook
}

// SetSurveyID sets the "survey_id" field.
func (_c *FixtureRecordCreate) SetSurveyID(v uuid.UUID) *FixtureRecordCreate {
	_c.mutation.SetSurveyID(v)
	return _c
}

// SetRepere sets the "repere" field.
func (_c *FixtureRecordCreate) SetRepere(v string) *FixtureRecordCreate {
	_c.mutation.SetRepere(v)
	return _c
}

// SetNillableRepere sets the "repere" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableRepere(v *string) *FixtureRecordCreate {
	if v != nil {
		_c.SetRepere(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *FixtureRecordCreate) SetTitle(v string) *FixtureRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *FixtureRecordCreate) SetPosition(v int) *FixtureRecordCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetOriginalData sets the "original_data" field.
func (_c *FixtureRecordCreate) SetOriginalData(v json.RawMessage) *FixtureRecordCreate {
	_c.mutation.SetOriginalData(v)
	return _c
}

// SetModifiedData sets the "modified_data" field.
func (_c *FixtureRecordCreate) SetModifiedData(v json.RawMessage) *FixtureRecordCreate {
	_c.mutation.SetModifiedData(v)
	return _c
}

// SetDeviations sets the "deviations" field.
func (_c *FixtureRecordCreate) SetDeviations(v json.RawMessage) *FixtureRecordCreate {
	_c.mutation.SetDeviations(v)
	return _c
}

// SetIsValidated sets the "is_validated" field.
func (_c *FixtureRecordCreate) SetIsValidated(v bool) *FixtureRecordCreate {
	_c.mutation.SetIsValidated(v)
	return _c
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableIsValidated(v *bool) *FixtureRecordCreate {
	if v != nil {
		_c.SetIsValidated(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *FixtureRecordCreate) SetValidatedAt(v time.Time) *FixtureRecordCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableValidatedAt(v *time.Time) *FixtureRecordCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FixtureRecordCreate) SetStatus(v string) *FixtureRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableStatus(v *string) *FixtureRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FixtureRecordCreate) SetCreatedAt(v time.Time) *FixtureRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableCreatedAt(v *time.Time) *FixtureRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FixtureRecordCreate) SetUpdatedAt(v time.Time) *FixtureRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableUpdatedAt(v *time.Time) *FixtureRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FixtureRecordCreate) SetID(v uuid.UUID) *FixtureRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FixtureRecordCreate) SetNillableID(v *uuid.UUID) *FixtureRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_c *FixtureRecordCreate) SetSurvey(v *Survey) *FixtureRecordCreate {
	return _c.SetSurveyID(v.ID)
}

// Mutation returns the FixtureRecordMutation object of the builder.
func (_c *FixtureRecordCreate) Mutation() *FixtureRecordMutation {
	return _c.mutation
}

// Save creates the FixtureRecord in the database.
func (_c *FixtureRecordCreate) Save(ctx context.Context) (*FixtureRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FixtureRecordCreate) SaveX(ctx context.Context) *FixtureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FixtureRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FixtureRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FixtureRecordCreate) defaults() {
	if _, ok := _c.mutation.IsValidated(); !ok {
		v := fixturerecord.DefaultIsValidated
		_c.mutation.SetIsValidated(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := fixturerecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fixturerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fixturerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fixturerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FixtureRecordCreate) check() error {
	if _, ok := _c.mutation.SurveyID(); !ok {
		return &ValidationError{Name: "survey_id", err: errors.New(`ent: missing required field "FixtureRecord.survey_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "FixtureRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := fixturerecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "FixtureRecord.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := fixturerecord.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalData(); !ok {
		return &ValidationError{Name: "original_data", err: errors.New(`ent: missing required field "FixtureRecord.original_data"`)}
	}
	if _, ok := _c.mutation.IsValidated(); !ok {
		return &ValidationError{Name: "is_validated", err: errors.New(`ent: missing required field "FixtureRecord.is_validated"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FixtureRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fixturerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FixtureRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FixtureRecord.updated_at"`)}
	}
	if len(_c.mutation.SurveyIDs()) == 0 {
		return &ValidationError{Name: "survey", err: errors.New(`ent: missing required edge "FixtureRecord.survey"`)}
	}
	return nil
}

func (_c *FixtureRecordCreate) sqlSave(ctx context.Context) (*FixtureRecord, error) {
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

func (_c *FixtureRecordCreate) createSpec() (*FixtureRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FixtureRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fixturerecord.Table, sqlgraph.NewFieldSpec(fixturerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Repere(); ok {
		_spec.SetField(fixturerecord.FieldRepere, field.TypeString, value)
		_node.Repere = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(fixturerecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(fixturerecord.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.OriginalData(); ok {
		_spec.SetField(fixturerecord.FieldOriginalData, field.TypeJSON, value)
		_node.OriginalData = value
	}
	if value, ok := _c.mutation.ModifiedData(); ok {
		_spec.SetField(fixturerecord.FieldModifiedData, field.TypeJSON, value)
		_node.ModifiedData = value
	}
	if value, ok := _c.mutation.Deviations(); ok {
		_spec.SetField(fixturerecord.FieldDeviations, field.TypeJSON, value)
		_node.Deviations = value
	}
	if value, ok := _c.mutation.IsValidated(); ok {
		_spec.SetField(fixturerecord.FieldIsValidated, field.TypeBool, value)
		_node.IsValidated = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(fixturerecord.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fixturerecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fixturerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fixturerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fixturerecord.SurveyTable,
			Columns: []string{fixturerecord.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SurveyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FixtureRecordCreateBulk is the builder for creating many FixtureRecord entities in bulk.
type FixtureRecordCreateBulk struct {
	config
	err      error
	builders []*FixtureRecordCreate
}

// Save creates the FixtureRecord entities in the database.
func (_c *FixtureRecordCreateBulk) Save(ctx context.Context) ([]*FixtureRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FixtureRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FixtureRecordMutation)
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
func (_c *FixtureRecordCreateBulk) SaveX(ctx context.Context) []*FixtureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FixtureRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FixtureRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
