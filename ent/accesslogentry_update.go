// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
	"github.com/jonzim-cmd/kura/ent/predicate"
)

// AccessLogEntryUpdate is the builder for updating AccessLogEntry entities.
type AccessLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AccessLogEntryMutation
}

// Where appends a list predicates to the AccessLogEntryUpdate builder.
func (_u *AccessLogEntryUpdate) Where(ps ...predicate.AccessLogEntry) *AccessLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AccessLogEntryMutation object of the builder.
func (_u *AccessLogEntryUpdate) Mutation() *AccessLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccessLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccessLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AccessLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(accesslogentry.Table, accesslogentry.Columns, sqlgraph.NewFieldSpec(accesslogentry.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesslogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccessLogEntryUpdateOne is the builder for updating a single AccessLogEntry entity.
type AccessLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccessLogEntryMutation
}

// Mutation returns the AccessLogEntryMutation object of the builder.
func (_u *AccessLogEntryUpdateOne) Mutation() *AccessLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccessLogEntryUpdate builder.
func (_u *AccessLogEntryUpdateOne) Where(ps ...predicate.AccessLogEntry) *AccessLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccessLogEntryUpdateOne) Select(field string, fields ...string) *AccessLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AccessLogEntry entity.
func (_u *AccessLogEntryUpdateOne) Save(ctx context.Context) (*AccessLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessLogEntryUpdateOne) SaveX(ctx context.Context) *AccessLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccessLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AccessLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *AccessLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(accesslogentry.Table, accesslogentry.Columns, sqlgraph.NewFieldSpec(accesslogentry.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccessLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accesslogentry.FieldID)
		for _, f := range fields {
			if !accesslogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accesslogentry.FieldID {
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
	_node = &AccessLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesslogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
