// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
	"github.com/jonzim-cmd/kura/ent/predicate"
)

// AccessLogEntryDelete is the builder for deleting a AccessLogEntry entity.
type AccessLogEntryDelete struct {
	config
	hooks    []Hook
	mutation *AccessLogEntryMutation
}

// Where appends a list predicates to the AccessLogEntryDelete builder.
func (_d *AccessLogEntryDelete) Where(ps ...predicate.AccessLogEntry) *AccessLogEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AccessLogEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AccessLogEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AccessLogEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(accesslogentry.Table, sqlgraph.NewFieldSpec(accesslogentry.FieldID, field.TypeInt64))
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

// AccessLogEntryDeleteOne is the builder for deleting a single AccessLogEntry entity.
type AccessLogEntryDeleteOne struct {
	_d *AccessLogEntryDelete
}

// Where appends a list predicates to the AccessLogEntryDelete builder.
func (_d *AccessLogEntryDeleteOne) Where(ps ...predicate.AccessLogEntry) *AccessLogEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AccessLogEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{accesslogentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AccessLogEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
