// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
	"github.com/jonzim-cmd/kura/ent/predicate"
)

// AbuseTelemetryDelete is the builder for deleting a AbuseTelemetry entity.
type AbuseTelemetryDelete struct {
	config
	hooks    []Hook
	mutation *AbuseTelemetryMutation
}

// Where appends a list predicates to the AbuseTelemetryDelete builder.
func (_d *AbuseTelemetryDelete) Where(ps ...predicate.AbuseTelemetry) *AbuseTelemetryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AbuseTelemetryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AbuseTelemetryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AbuseTelemetryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(abusetelemetry.Table, sqlgraph.NewFieldSpec(abusetelemetry.FieldID, field.TypeInt64))
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

// AbuseTelemetryDeleteOne is the builder for deleting a single AbuseTelemetry entity.
type AbuseTelemetryDeleteOne struct {
	_d *AbuseTelemetryDelete
}

// Where appends a list predicates to the AbuseTelemetryDelete builder.
func (_d *AbuseTelemetryDeleteOne) Where(ps ...predicate.AbuseTelemetry) *AbuseTelemetryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AbuseTelemetryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{abusetelemetry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AbuseTelemetryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
