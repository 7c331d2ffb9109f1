// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
	"github.com/jonzim-cmd/kura/ent/predicate"
)

// AbuseTelemetryUpdate is the builder for updating AbuseTelemetry entities.
type AbuseTelemetryUpdate struct {
	config
	hooks    []Hook
	mutation *AbuseTelemetryMutation
}

// Where appends a list predicates to the AbuseTelemetryUpdate builder.
func (_u *AbuseTelemetryUpdate) Where(ps ...predicate.AbuseTelemetry) *AbuseTelemetryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AbuseTelemetryMutation object of the builder.
func (_u *AbuseTelemetryUpdate) Mutation() *AbuseTelemetryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AbuseTelemetryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AbuseTelemetryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AbuseTelemetryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AbuseTelemetryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AbuseTelemetryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(abusetelemetry.Table, abusetelemetry.Columns, sqlgraph.NewFieldSpec(abusetelemetry.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(abusetelemetry.FieldCooldownUntil, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abusetelemetry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AbuseTelemetryUpdateOne is the builder for updating a single AbuseTelemetry entity.
type AbuseTelemetryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AbuseTelemetryMutation
}

// Mutation returns the AbuseTelemetryMutation object of the builder.
func (_u *AbuseTelemetryUpdateOne) Mutation() *AbuseTelemetryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AbuseTelemetryUpdate builder.
func (_u *AbuseTelemetryUpdateOne) Where(ps ...predicate.AbuseTelemetry) *AbuseTelemetryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AbuseTelemetryUpdateOne) Select(field string, fields ...string) *AbuseTelemetryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AbuseTelemetry entity.
func (_u *AbuseTelemetryUpdateOne) Save(ctx context.Context) (*AbuseTelemetry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AbuseTelemetryUpdateOne) SaveX(ctx context.Context) *AbuseTelemetry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AbuseTelemetryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AbuseTelemetryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AbuseTelemetryUpdateOne) sqlSave(ctx context.Context) (_node *AbuseTelemetry, err error) {
	_spec := sqlgraph.NewUpdateSpec(abusetelemetry.Table, abusetelemetry.Columns, sqlgraph.NewFieldSpec(abusetelemetry.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AbuseTelemetry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, abusetelemetry.FieldID)
		for _, f := range fields {
			if !abusetelemetry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != abusetelemetry.FieldID {
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
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(abusetelemetry.FieldCooldownUntil, field.TypeTime)
	}
	_node = &AbuseTelemetry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abusetelemetry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
