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
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// FixtureRecordUpdate is the builder for updating FixtureRecord entities.
type FixtureRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FixtureRecordMutation
}

// Where appends a list predicates to the FixtureRecordUpdate builder.
func (_u *FixtureRecordUpdate) Where(ps ...predicate.FixtureRecord) *FixtureRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSurveyID sets the "survey_id" field.
func (_u *FixtureRecordUpdate) SetSurveyID(v uuid.UUID) *FixtureRecordUpdate {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableSurveyID(v *uuid.UUID) *FixtureRecordUpdate {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// SetRepere sets the "repere" field.
func (_u *FixtureRecordUpdate) SetRepere(v string) *FixtureRecordUpdate {
	_u.mutation.SetRepere(v)
	return _u
}

// SetNillableRepere sets the "repere" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableRepere(v *string) *FixtureRecordUpdate {
	if v != nil {
		_u.SetRepere(*v)
	}
	return _u
}

// ClearRepere clears the value of the "repere" field.
func (_u *FixtureRecordUpdate) ClearRepere() *FixtureRecordUpdate {
	_u.mutation.ClearRepere()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FixtureRecordUpdate) SetTitle(v string) *FixtureRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableTitle(v *string) *FixtureRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *FixtureRecordUpdate) SetPosition(v int) *FixtureRecordUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillablePosition(v *int) *FixtureRecordUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FixtureRecordUpdate) AddPosition(v int) *FixtureRecordUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetModifiedData sets the "modified_data" field.
func (_u *FixtureRecordUpdate) SetModifiedData(v json.RawMessage) *FixtureRecordUpdate {
	_u.mutation.SetModifiedData(v)
	return _u
}

// AppendModifiedData appends value to the "modified_data" field.
func (_u *FixtureRecordUpdate) AppendModifiedData(v json.RawMessage) *FixtureRecordUpdate {
	_u.mutation.AppendModifiedData(v)
	return _u
}

// ClearModifiedData clears the value of the "modified_data" field.
func (_u *FixtureRecordUpdate) ClearModifiedData() *FixtureRecordUpdate {
	_u.mutation.ClearModifiedData()
	return _u
}

// SetDeviations sets the "deviations" field.
func (_u *FixtureRecordUpdate) SetDeviations(v json.RawMessage) *FixtureRecordUpdate {
	_u.mutation.SetDeviations(v)
	return _u
}

// AppendDeviations appends value to the "deviations" field.
func (_u *FixtureRecordUpdate) AppendDeviations(v json.RawMessage) *FixtureRecordUpdate {
	_u.mutation.AppendDeviations(v)
	return _u
}

// ClearDeviations clears the value of the "deviations" field.
func (_u *FixtureRecordUpdate) ClearDeviations() *FixtureRecordUpdate {
	_u.mutation.ClearDeviations()
	return _u
}

// SetIsValidated sets the "is_validated" field.
func (_u *FixtureRecordUpdate) SetIsValidated(v bool) *FixtureRecordUpdate {
	_u.mutation.SetIsValidated(v)
	return _u
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableIsValidated(v *bool) *FixtureRecordUpdate {
	if v != nil {
		_u.SetIsValidated(*v)
	}
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *FixtureRecordUpdate) SetValidatedAt(v time.Time) *FixtureRecordUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableValidatedAt(v *time.Time) *FixtureRecordUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *FixtureRecordUpdate) ClearValidatedAt() *FixtureRecordUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FixtureRecordUpdate) SetStatus(v string) *FixtureRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableStatus(v *string) *FixtureRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FixtureRecordUpdate) SetCreatedAt(v time.Time) *FixtureRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FixtureRecordUpdate) SetNillableCreatedAt(v *time.Time) *FixtureRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FixtureRecordUpdate) SetUpdatedAt(v time.Time) *FixtureRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_u *FixtureRecordUpdate) SetSurvey(v *Survey) *FixtureRecordUpdate {
	return _u.SetSurveyID(v.ID)
}

// Mutation returns the FixtureRecordMutation object of the builder.
func (_u *FixtureRecordUpdate) Mutation() *FixtureRecordMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (_u *FixtureRecordUpdate) ClearSurvey() *FixtureRecordUpdate {
	_u.mutation.ClearSurvey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FixtureRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FixtureRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FixtureRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FixtureRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FixtureRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fixturerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FixtureRecordUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := fixturerecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := fixturerecord.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fixturerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.status": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FixtureRecord.survey"`)
	}
	return nil
}

func (_u *FixtureRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fixturerecord.Table, fixturerecord.Columns, sqlgraph.NewFieldSpec(fixturerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Repere(); ok {
		_spec.SetField(fixturerecord.FieldRepere, field.TypeString, value)
	}
	if _u.mutation.RepereCleared() {
		_spec.ClearField(fixturerecord.FieldRepere, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(fixturerecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(fixturerecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(fixturerecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModifiedData(); ok {
		_spec.SetField(fixturerecord.FieldModifiedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModifiedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fixturerecord.FieldModifiedData, value)
		})
	}
	if _u.mutation.ModifiedDataCleared() {
		_spec.ClearField(fixturerecord.FieldModifiedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deviations(); ok {
		_spec.SetField(fixturerecord.FieldDeviations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeviations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fixturerecord.FieldDeviations, value)
		})
	}
	if _u.mutation.DeviationsCleared() {
		_spec.ClearField(fixturerecord.FieldDeviations, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsValidated(); ok {
		_spec.SetField(fixturerecord.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(fixturerecord.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(fixturerecord.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fixturerecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fixturerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fixturerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SurveyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fixturerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FixtureRecordUpdateOne is the builder for updating a single FixtureRecord entity.
type FixtureRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FixtureRecordMutation
}

// SetSurveyID sets the "survey_id" field.
func (_u *FixtureRecordUpdateOne) SetSurveyID(v uuid.UUID) *FixtureRecordUpdateOne {
	_u.mutation.SetSurveyID(v)
	return _u
}

// SetNillableSurveyID sets the "survey_id" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableSurveyID(v *uuid.UUID) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetSurveyID(*v)
	}
	return _u
}

// SetRepere sets the "repere" field.
func (_u *FixtureRecordUpdateOne) SetRepere(v string) *FixtureRecordUpdateOne {
	_u.mutation.SetRepere(v)
	return _u
}

// SetNillableRepere sets the "repere" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableRepere(v *string) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetRepere(*v)
	}
	return _u
}

// ClearRepere clears the value of the "repere" field.
func (_u *FixtureRecordUpdateOne) ClearRepere() *FixtureRecordUpdateOne {
	_u.mutation.ClearRepere()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FixtureRecordUpdateOne) SetTitle(v string) *FixtureRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableTitle(v *string) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *FixtureRecordUpdateOne) SetPosition(v int) *FixtureRecordUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillablePosition(v *int) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *FixtureRecordUpdateOne) AddPosition(v int) *FixtureRecordUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetModifiedData sets the "modified_data" field.
func (_u *FixtureRecordUpdateOne) SetModifiedData(v json.RawMessage) *FixtureRecordUpdateOne {
	_u.mutation.SetModifiedData(v)
	return _u
}

// AppendModifiedData appends value to the "modified_data" field.
func (_u *FixtureRecordUpdateOne) AppendModifiedData(v json.RawMessage) *FixtureRecordUpdateOne {
	_u.mutation.AppendModifiedData(v)
	return _u
}

// ClearModifiedData clears the value of the "modified_data" field.
func (_u *FixtureRecordUpdateOne) ClearModifiedData() *FixtureRecordUpdateOne {
	_u.mutation.ClearModifiedData()
	return _u
}

// SetDeviations sets the "deviations" field.
func (_u *FixtureRecordUpdateOne) SetDeviations(v json.RawMessage) *FixtureRecordUpdateOne {
	_u.mutation.SetDeviations(v)
	return _u
}

// AppendDeviations appends value to the "deviations" field.
func (_u *FixtureRecordUpdateOne) AppendDeviations(v json.RawMessage) *FixtureRecordUpdateOne {
	_u.mutation.AppendDeviations(v)
	return _u
}

// ClearDeviations clears the value of the "deviations" field.
func (_u *FixtureRecordUpdateOne) ClearDeviations() *FixtureRecordUpdateOne {
	_u.mutation.ClearDeviations()
	return _u
}

// SetIsValidated sets the "is_validated" field.
func (_u *FixtureRecordUpdateOne) SetIsValidated(v bool) *FixtureRecordUpdateOne {
	_u.mutation.SetIsValidated(v)
	return _u
}

// SetNillableIsValidated sets the "is_validated" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableIsValidated(v *bool) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetIsValidated(*v)
	}
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *FixtureRecordUpdateOne) SetValidatedAt(v time.Time) *FixtureRecordUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableValidatedAt(v *time.Time) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *FixtureRecordUpdateOne) ClearValidatedAt() *FixtureRecordUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FixtureRecordUpdateOne) SetStatus(v string) *FixtureRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableStatus(v *string) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FixtureRecordUpdateOne) SetCreatedAt(v time.Time) *FixtureRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FixtureRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *FixtureRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FixtureRecordUpdateOne) SetUpdatedAt(v time.Time) *FixtureRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSurvey sets the "survey" edge to the Survey entity.
func (_u *FixtureRecordUpdateOne) SetSurvey(v *Survey) *FixtureRecordUpdateOne {
	return _u.SetSurveyID(v.ID)
}

// Mutation returns the FixtureRecordMutation object of the builder.
func (_u *FixtureRecordUpdateOne) Mutation() *FixtureRecordMutation {
	return _u.mutation
}

// ClearSurvey clears the "survey" edge to the Survey entity.
func (_u *FixtureRecordUpdateOne) ClearSurvey() *FixtureRecordUpdateOne {
	_u.mutation.ClearSurvey()
	return _u
}

// Where appends a list predicates to the FixtureRecordUpdate builder.
func (_u *FixtureRecordUpdateOne) Where(ps ...predicate.FixtureRecord) *FixtureRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FixtureRecordUpdateOne) Select(field string, fields ...string) *FixtureRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FixtureRecord entity.
func (_u *FixtureRecordUpdateOne) Save(ctx context.Context) (*FixtureRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FixtureRecordUpdateOne) SaveX(ctx context.Context) *FixtureRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FixtureRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FixtureRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FixtureRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fixturerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FixtureRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := fixturerecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := fixturerecord.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fixturerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FixtureRecord.status": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FixtureRecord.survey"`)
	}
	return nil
}

func (_u *FixtureRecordUpdateOne) sqlSave(ctx context.Context) (_node *FixtureRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fixturerecord.Table, fixturerecord.Columns, sqlgraph.NewFieldSpec(fixturerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FixtureRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fixturerecord.FieldID)
		for _, f := range fields {
			if !fixturerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fixturerecord.FieldID {
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
	if value, ok := _u.mutation.Repere(); ok {
		_spec.SetField(fixturerecord.FieldRepere, field.TypeString, value)
	}
	if _u.mutation.RepereCleared() {
		_spec.ClearField(fixturerecord.FieldRepere, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(fixturerecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(fixturerecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(fixturerecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModifiedData(); ok {
		_spec.SetField(fixturerecord.FieldModifiedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModifiedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fixturerecord.FieldModifiedData, value)
		})
	}
	if _u.mutation.ModifiedDataCleared() {
		_spec.ClearField(fixturerecord.FieldModifiedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deviations(); ok {
		_spec.SetField(fixturerecord.FieldDeviations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeviations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fixturerecord.FieldDeviations, value)
		})
	}
	if _u.mutation.DeviationsCleared() {
		_spec.ClearField(fixturerecord.FieldDeviations, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsValidated(); ok {
		_spec.SetField(fixturerecord.FieldIsValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(fixturerecord.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(fixturerecord.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fixturerecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fixturerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fixturerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SurveyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SurveyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FixtureRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fixturerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
