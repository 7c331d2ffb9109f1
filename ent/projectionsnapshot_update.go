// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/predicate"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
)

// ProjectionSnapshotUpdate is the builder for updating ProjectionSnapshot entities.
type ProjectionSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectionSnapshotMutation
}

// Where appends a list predicates to the ProjectionSnapshotUpdate builder.
func (_u *ProjectionSnapshotUpdate) Where(ps ...predicate.ProjectionSnapshot) *ProjectionSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectionType sets the "projection_type" field.
func (_u *ProjectionSnapshotUpdate) SetProjectionType(v string) *ProjectionSnapshotUpdate {
	_u.mutation.SetProjectionType(v)
	return _u
}

// SetNillableProjectionType sets the "projection_type" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdate) SetNillableProjectionType(v *string) *ProjectionSnapshotUpdate {
	if v != nil {
		_u.SetProjectionType(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ProjectionSnapshotUpdate) SetKey(v string) *ProjectionSnapshotUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdate) SetNillableKey(v *string) *ProjectionSnapshotUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProjectionSnapshotUpdate) SetData(v map[string]interface{}) *ProjectionSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProjectionSnapshotUpdate) SetVersion(v int64) *ProjectionSnapshotUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdate) SetNillableVersion(v *int64) *ProjectionSnapshotUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProjectionSnapshotUpdate) AddVersion(v int64) *ProjectionSnapshotUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ProjectionSnapshotUpdate) SetLastEventID(v uuid.UUID) *ProjectionSnapshotUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdate) SetNillableLastEventID(v *uuid.UUID) *ProjectionSnapshotUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (_u *ProjectionSnapshotUpdate) ClearLastEventID() *ProjectionSnapshotUpdate {
	_u.mutation.ClearLastEventID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectionSnapshotUpdate) SetUpdatedAt(v time.Time) *ProjectionSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectionSnapshotMutation object of the builder.
func (_u *ProjectionSnapshotUpdate) Mutation() *ProjectionSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectionSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectionSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectionSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectionSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectionSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectionsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectionSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectionsnapshot.Table, projectionsnapshot.Columns, sqlgraph.NewFieldSpec(projectionsnapshot.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectionType(); ok {
		_spec.SetField(projectionsnapshot.FieldProjectionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(projectionsnapshot.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(projectionsnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(projectionsnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(projectionsnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(projectionsnapshot.FieldLastEventID, field.TypeUUID, value)
	}
	if _u.mutation.LastEventIDCleared() {
		_spec.ClearField(projectionsnapshot.FieldLastEventID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectionsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectionSnapshotUpdateOne is the builder for updating a single ProjectionSnapshot entity.
type ProjectionSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectionSnapshotMutation
}

// SetProjectionType sets the "projection_type" field.
func (_u *ProjectionSnapshotUpdateOne) SetProjectionType(v string) *ProjectionSnapshotUpdateOne {
	_u.mutation.SetProjectionType(v)
	return _u
}

// SetNillableProjectionType sets the "projection_type" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdateOne) SetNillableProjectionType(v *string) *ProjectionSnapshotUpdateOne {
	if v != nil {
		_u.SetProjectionType(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ProjectionSnapshotUpdateOne) SetKey(v string) *ProjectionSnapshotUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdateOne) SetNillableKey(v *string) *ProjectionSnapshotUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProjectionSnapshotUpdateOne) SetData(v map[string]interface{}) *ProjectionSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProjectionSnapshotUpdateOne) SetVersion(v int64) *ProjectionSnapshotUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdateOne) SetNillableVersion(v *int64) *ProjectionSnapshotUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProjectionSnapshotUpdateOne) AddVersion(v int64) *ProjectionSnapshotUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ProjectionSnapshotUpdateOne) SetLastEventID(v uuid.UUID) *ProjectionSnapshotUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ProjectionSnapshotUpdateOne) SetNillableLastEventID(v *uuid.UUID) *ProjectionSnapshotUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (_u *ProjectionSnapshotUpdateOne) ClearLastEventID() *ProjectionSnapshotUpdateOne {
	_u.mutation.ClearLastEventID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectionSnapshotUpdateOne) SetUpdatedAt(v time.Time) *ProjectionSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectionSnapshotMutation object of the builder.
func (_u *ProjectionSnapshotUpdateOne) Mutation() *ProjectionSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectionSnapshotUpdate builder.
func (_u *ProjectionSnapshotUpdateOne) Where(ps ...predicate.ProjectionSnapshot) *ProjectionSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectionSnapshotUpdateOne) Select(field string, fields ...string) *ProjectionSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectionSnapshot entity.
func (_u *ProjectionSnapshotUpdateOne) Save(ctx context.Context) (*ProjectionSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectionSnapshotUpdateOne) SaveX(ctx context.Context) *ProjectionSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectionSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectionSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectionSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectionsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectionSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProjectionSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectionsnapshot.Table, projectionsnapshot.Columns, sqlgraph.NewFieldSpec(projectionsnapshot.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectionSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectionsnapshot.FieldID)
		for _, f := range fields {
			if !projectionsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectionsnapshot.FieldID {
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
	if value, ok := _u.mutation.ProjectionType(); ok {
		_spec.SetField(projectionsnapshot.FieldProjectionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(projectionsnapshot.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(projectionsnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(projectionsnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(projectionsnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(projectionsnapshot.FieldLastEventID, field.TypeUUID, value)
	}
	if _u.mutation.LastEventIDCleared() {
		_spec.ClearField(projectionsnapshot.FieldLastEventID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectionsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProjectionSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectionsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
