// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// SurveyUpdate is the builder for updating Survey entities.
type SurveyUpdate struct {
	config
	hooks    []Hook
	mutation *SurveyMutation
}

// Where appends a list predicates to the SurveyUpdate builder.
func (_u *SurveyUpdate) Where(ps ...predicate.Survey) *SurveyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReference sets the "reference" field.
func (_u *SurveyUpdate) SetReference(v string) *SurveyUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableReference(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *SurveyUpdate) SetClientName(v string) *SurveyUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableClientName(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *SurveyUpdate) ClearClientName() *SurveyUpdate {
	_u.mutation.ClearClientName()
	return _u
}

// SetClientAddress sets the "client_address" field.
func (_u *SurveyUpdate) SetClientAddress(v string) *SurveyUpdate {
	_u.mutation.SetClientAddress(v)
	return _u
}

// SetNillableClientAddress sets the "client_address" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableClientAddress(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetClientAddress(*v)
	}
	return _u
}

// ClearClientAddress clears the value of the "client_address" field.
func (_u *SurveyUpdate) ClearClientAddress() *SurveyUpdate {
	_u.mutation.ClearClientAddress()
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *SurveyUpdate) SetClientPhone(v string) *SurveyUpdate {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableClientPhone(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *SurveyUpdate) ClearClientPhone() *SurveyUpdate {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *SurveyUpdate) SetClientEmail(v string) *SurveyUpdate {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableClientEmail(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// ClearClientEmail clears the value of the "client_email" field.
func (_u *SurveyUpdate) ClearClientEmail() *SurveyUpdate {
	_u.mutation.ClearClientEmail()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *SurveyUpdate) SetSourceFilename(v string) *SurveyUpdate {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableSourceFilename(v *string) *SurveyUpdate {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SurveyUpdate) SetConfidence(v float32) *SurveyUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableConfidence(v *float32) *SurveyUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SurveyUpdate) AddConfidence(v float32) *SurveyUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SurveyUpdate) SetWarnings(v []string) *SurveyUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SurveyUpdate) AppendWarnings(v []string) *SurveyUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SurveyUpdate) ClearWarnings() *SurveyUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SurveyUpdate) SetCreatedAt(v time.Time) *SurveyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SurveyUpdate) SetNillableCreatedAt(v *time.Time) *SurveyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SurveyUpdate) SetUpdatedAt(v time.Time) *SurveyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFixtureIDs adds the "fixtures" edge to the FixtureRecord entity by IDs.
func (_u *SurveyUpdate) AddFixtureIDs(ids ...uuid.UUID) *SurveyUpdate {
	_u.mutation.AddFixtureIDs(ids...)
	return _u
}

// AddFixtures adds the "fixtures" edges to the FixtureRecord entity.
func (_u *SurveyUpdate) AddFixtures(v ...*FixtureRecord) *SurveyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFixtureIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *SurveyUpdate) AddJobIDs(ids ...uuid.UUID) *SurveyUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *SurveyUpdate) AddJobs(v ...*ExtractionJob) *SurveyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the SurveyMutation object of the builder.
func (_u *SurveyUpdate) Mutation() *SurveyMutation {
	return _u.mutation
}

// ClearFixtures clears all "fixtures" edges to the FixtureRecord entity.
func (_u *SurveyUpdate) ClearFixtures() *SurveyUpdate {
	_u.mutation.ClearFixtures()
	return _u
}

// RemoveFixtureIDs removes the "fixtures" edge to FixtureRecord entities by IDs.
func (_u *SurveyUpdate) RemoveFixtureIDs(ids ...uuid.UUID) *SurveyUpdate {
	_u.mutation.RemoveFixtureIDs(ids...)
	return _u
}

// RemoveFixtures removes "fixtures" edges to FixtureRecord entities.
func (_u *SurveyUpdate) RemoveFixtures(v ...*FixtureRecord) *SurveyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFixtureIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *SurveyUpdate) ClearJobs() *SurveyUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *SurveyUpdate) RemoveJobIDs(ids ...uuid.UUID) *SurveyUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *SurveyUpdate) RemoveJobs(v ...*ExtractionJob) *SurveyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SurveyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SurveyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SurveyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := survey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyUpdate) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := survey.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Survey.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := survey.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Survey.source_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *SurveyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(survey.Table, survey.Columns, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(survey.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(survey.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(survey.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientAddress(); ok {
		_spec.SetField(survey.FieldClientAddress, field.TypeString, value)
	}
	if _u.mutation.ClientAddressCleared() {
		_spec.ClearField(survey.FieldClientAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(survey.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(survey.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(survey.FieldClientEmail, field.TypeString, value)
	}
	if _u.mutation.ClientEmailCleared() {
		_spec.ClearField(survey.FieldClientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(survey.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(survey.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(survey.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(survey.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, survey.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(survey.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(survey.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(survey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFixturesIDs(); len(nodes) > 0 && !_u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{survey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SurveyUpdateOne is the builder for updating a single Survey entity.
type SurveyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SurveyMutation
}

// SetReference sets the "reference" field.
func (_u *SurveyUpdateOne) SetReference(v string) *SurveyUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableReference(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *SurveyUpdateOne) SetClientName(v string) *SurveyUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableClientName(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// ClearClientName clears the value of the "client_name" field.
func (_u *SurveyUpdateOne) ClearClientName() *SurveyUpdateOne {
	_u.mutation.ClearClientName()
	return _u
}

// SetClientAddress sets the "client_address" field.
func (_u *SurveyUpdateOne) SetClientAddress(v string) *SurveyUpdateOne {
	_u.mutation.SetClientAddress(v)
	return _u
}

// SetNillableClientAddress sets the "client_address" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableClientAddress(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetClientAddress(*v)
	}
	return _u
}

// ClearClientAddress clears the value of the "client_address" field.
func (_u *SurveyUpdateOne) ClearClientAddress() *SurveyUpdateOne {
	_u.mutation.ClearClientAddress()
	return _u
}

// SetClientPhone sets the "client_phone" field.
func (_u *SurveyUpdateOne) SetClientPhone(v string) *SurveyUpdateOne {
	_u.mutation.SetClientPhone(v)
	return _u
}

// SetNillableClientPhone sets the "client_phone" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableClientPhone(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetClientPhone(*v)
	}
	return _u
}

// ClearClientPhone clears the value of the "client_phone" field.
func (_u *SurveyUpdateOne) ClearClientPhone() *SurveyUpdateOne {
	_u.mutation.ClearClientPhone()
	return _u
}

// SetClientEmail sets the "client_email" field.
func (_u *SurveyUpdateOne) SetClientEmail(v string) *SurveyUpdateOne {
	_u.mutation.SetClientEmail(v)
	return _u
}

// SetNillableClientEmail sets the "client_email" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableClientEmail(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetClientEmail(*v)
	}
	return _u
}

// ClearClientEmail clears the value of the "client_email" field.
func (_u *SurveyUpdateOne) ClearClientEmail() *SurveyUpdateOne {
	_u.mutation.ClearClientEmail()
	return _u
}

// SetSourceFilename sets the "source_filename" field.
func (_u *SurveyUpdateOne) SetSourceFilename(v string) *SurveyUpdateOne {
	_u.mutation.SetSourceFilename(v)
	return _u
}

// SetNillableSourceFilename sets the "source_filename" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableSourceFilename(v *string) *SurveyUpdateOne {
	if v != nil {
		_u.SetSourceFilename(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SurveyUpdateOne) SetConfidence(v float32) *SurveyUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableConfidence(v *float32) *SurveyUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SurveyUpdateOne) AddConfidence(v float32) *SurveyUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SurveyUpdateOne) SetWarnings(v []string) *SurveyUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SurveyUpdateOne) AppendWarnings(v []string) *SurveyUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SurveyUpdateOne) ClearWarnings() *SurveyUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SurveyUpdateOne) SetCreatedAt(v time.Time) *SurveyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SurveyUpdateOne) SetNillableCreatedAt(v *time.Time) *SurveyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SurveyUpdateOne) SetUpdatedAt(v time.Time) *SurveyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFixtureIDs adds the "fixtures" edge to the FixtureRecord entity by IDs.
func (_u *SurveyUpdateOne) AddFixtureIDs(ids ...uuid.UUID) *SurveyUpdateOne {
	_u.mutation.AddFixtureIDs(ids...)
	return _u
}

// AddFixtures adds the "fixtures" edges to the FixtureRecord entity.
func (_u *SurveyUpdateOne) AddFixtures(v ...*FixtureRecord) *SurveyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFixtureIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *SurveyUpdateOne) AddJobIDs(ids ...uuid.UUID) *SurveyUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *SurveyUpdateOne) AddJobs(v ...*ExtractionJob) *SurveyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the SurveyMutation object of the builder.
func (_u *SurveyUpdateOne) Mutation() *SurveyMutation {
	return _u.mutation
}

// ClearFixtures clears all "fixtures" edges to the FixtureRecord entity.
func (_u *SurveyUpdateOne) ClearFixtures() *SurveyUpdateOne {
	_u.mutation.ClearFixtures()
	return _u
}

// RemoveFixtureIDs removes the "fixtures" edge to FixtureRecord entities by IDs.
func (_u *SurveyUpdateOne) RemoveFixtureIDs(ids ...uuid.UUID) *SurveyUpdateOne {
	_u.mutation.RemoveFixtureIDs(ids...)
	return _u
}

// RemoveFixtures removes "fixtures" edges to FixtureRecord entities.
func (_u *SurveyUpdateOne) RemoveFixtures(v ...*FixtureRecord) *SurveyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFixtureIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *SurveyUpdateOne) ClearJobs() *SurveyUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *SurveyUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *SurveyUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *SurveyUpdateOne) RemoveJobs(v ...*ExtractionJob) *SurveyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the SurveyUpdate builder.
func (_u *SurveyUpdateOne) Where(ps ...predicate.Survey) *SurveyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SurveyUpdateOne) Select(field string, fields ...string) *SurveyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Survey entity.
func (_u *SurveyUpdateOne) Save(ctx context.Context) (*Survey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SurveyUpdateOne) SaveX(ctx context.Context) *Survey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SurveyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SurveyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SurveyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := survey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SurveyUpdateOne) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := survey.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Survey.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFilename(); ok {
		if err := survey.SourceFilenameValidator(v); err != nil {
			return &ValidationError{Name: "source_filename", err: fmt.Errorf(`ent: validator failed for field "Survey.source_filename": %w`, err)}
		}
	}
	return nil
}

func (_u *SurveyUpdateOne) sqlSave(ctx context.Context) (_node *Survey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(survey.Table, survey.Columns, sqlgraph.NewFieldSpec(survey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Survey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, survey.FieldID)
		for _, f := range fields {
			if !survey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != survey.FieldID {
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
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(survey.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(survey.FieldClientName, field.TypeString, value)
	}
	if _u.mutation.ClientNameCleared() {
		_spec.ClearField(survey.FieldClientName, field.TypeString)
	}
	if value, ok := _u.mutation.ClientAddress(); ok {
		_spec.SetField(survey.FieldClientAddress, field.TypeString, value)
	}
	if _u.mutation.ClientAddressCleared() {
		_spec.ClearField(survey.FieldClientAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ClientPhone(); ok {
		_spec.SetField(survey.FieldClientPhone, field.TypeString, value)
	}
	if _u.mutation.ClientPhoneCleared() {
		_spec.ClearField(survey.FieldClientPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ClientEmail(); ok {
		_spec.SetField(survey.FieldClientEmail, field.TypeString, value)
	}
	if _u.mutation.ClientEmailCleared() {
		_spec.ClearField(survey.FieldClientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFilename(); ok {
		_spec.SetField(survey.FieldSourceFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(survey.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(survey.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(survey.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, survey.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(survey.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(survey.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(survey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFixturesIDs(); len(nodes) > 0 && !_u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Survey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{survey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
