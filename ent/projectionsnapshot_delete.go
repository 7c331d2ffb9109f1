// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jonzim-cmd/kura/ent/predicate"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
)

// ProjectionSnapshotDelete is the builder for deleting a ProjectionSnapshot entity.
type ProjectionSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ProjectionSnapshotMutation
}

// Where appends a list predicates to the ProjectionSnapshotDelete builder.
func (_d *ProjectionSnapshotDelete) Where(ps ...predicate.ProjectionSnapshot) *ProjectionSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProjectionSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectionSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProjectionSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(projectionsnapshot.Table, sqlgraph.NewFieldSpec(projectionsnapshot.FieldID, field.TypeInt64))
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

// ProjectionSnapshotDeleteOne is the builder for deleting a single ProjectionSnapshot entity.
type ProjectionSnapshotDeleteOne struct {
	_d *ProjectionSnapshotDelete
}

// Where appends a list predicates to the ProjectionSnapshotDelete builder.
func (_d *ProjectionSnapshotDeleteOne) Where(ps ...predicate.ProjectionSnapshot) *ProjectionSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProjectionSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{projectionsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectionSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
