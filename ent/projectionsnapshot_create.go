// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
)

// ProjectionSnapshotCreate is the builder for creating a ProjectionSnapshot entity.
type ProjectionSnapshotCreate struct {
	config
	mutation *ProjectionSnapshotMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ProjectionSnapshotCreate) SetOwnerID(v uuid.UUID) *ProjectionSnapshotCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetProjectionType sets the "projection_type" field.
func (_c *ProjectionSnapshotCreate) SetProjectionType(v string) *ProjectionSnapshotCreate {
	_c.mutation.SetProjectionType(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ProjectionSnapshotCreate) SetKey(v string) *ProjectionSnapshotCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ProjectionSnapshotCreate) SetData(v map[string]interface{}) *ProjectionSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProjectionSnapshotCreate) SetVersion(v int64) *ProjectionSnapshotCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProjectionSnapshotCreate) SetNillableVersion(v *int64) *ProjectionSnapshotCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *ProjectionSnapshotCreate) SetLastEventID(v uuid.UUID) *ProjectionSnapshotCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_c *ProjectionSnapshotCreate) SetNillableLastEventID(v *uuid.UUID) *ProjectionSnapshotCreate {
	if v != nil {
		_c.SetLastEventID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectionSnapshotCreate) SetUpdatedAt(v time.Time) *ProjectionSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectionSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *ProjectionSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectionSnapshotCreate) SetID(v int64) *ProjectionSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProjectionSnapshotMutation object of the builder.
func (_c *ProjectionSnapshotCreate) Mutation() *ProjectionSnapshotMutation {
	return _c.mutation
}

// Save creates the ProjectionSnapshot in the database.
func (_c *ProjectionSnapshotCreate) Save(ctx context.Context) (*ProjectionSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectionSnapshotCreate) SaveX(ctx context.Context) *ProjectionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectionSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectionSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectionSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := projectionsnapshot.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectionsnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectionSnapshotCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ProjectionSnapshot.owner_id"`)}
	}
	if _, ok := _c.mutation.ProjectionType(); !ok {
		return &ValidationError{Name: "projection_type", err: errors.New(`ent: missing required field "ProjectionSnapshot.projection_type"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ProjectionSnapshot.key"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ProjectionSnapshot.data"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProjectionSnapshot.version"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectionSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *ProjectionSnapshotCreate) sqlSave(ctx context.Context) (*ProjectionSnapshot, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectionSnapshotCreate) createSpec() (*ProjectionSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectionSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectionsnapshot.Table, sqlgraph.NewFieldSpec(projectionsnapshot.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(projectionsnapshot.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ProjectionType(); ok {
		_spec.SetField(projectionsnapshot.FieldProjectionType, field.TypeString, value)
		_node.ProjectionType = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(projectionsnapshot.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(projectionsnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(projectionsnapshot.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(projectionsnapshot.FieldLastEventID, field.TypeUUID, value)
		_node.LastEventID = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectionsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProjectionSnapshotCreateBulk is the builder for creating many ProjectionSnapshot entities in bulk.
type ProjectionSnapshotCreateBulk struct {
	config
	err      error
	builders []*ProjectionSnapshotCreate
}

// Save creates the ProjectionSnapshot entities in the database.
func (_c *ProjectionSnapshotCreateBulk) Save(ctx context.Context) ([]*ProjectionSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectionSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectionSnapshotMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *ProjectionSnapshotCreateBulk) SaveX(ctx context.Context) []*ProjectionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectionSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectionSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
