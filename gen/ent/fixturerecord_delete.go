// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
)

// FixtureRecordDelete is the builder for deleting a FixtureRecord entity.
type FixtureRecordDelete struct {
	config
	hooks    []Hook
	mutation *FixtureRecordMutation
}

// Where appends a list predicates to the FixtureRecordDelete builder.
func (_d *FixtureRecordDelete) Where(ps ...predicate.FixtureRecord) *FixtureRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FixtureRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FixtureRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FixtureRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fixturerecord.Table, sqlgraph.NewFieldSpec(fixturerecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FixtureRecordDeleteOne is the builder for deleting a single FixtureRecord entity.
type FixtureRecordDeleteOne struct {
	_d *FixtureRecordDelete
}

// Where appends a list predicates to the FixtureRecordDelete builder.
func (_d *FixtureRecordDeleteOne) Where(ps ...predicate.FixtureRecord) *FixtureRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FixtureRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fixturerecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FixtureRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
