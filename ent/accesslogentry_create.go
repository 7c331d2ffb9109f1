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
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
)

// AccessLogEntryCreate is the builder for creating a AccessLogEntry entity.
type AccessLogEntryCreate struct {
	config
	mutation *AccessLogEntryMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *AccessLogEntryCreate) SetOwnerID(v uuid.UUID) *AccessLogEntryCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *AccessLogEntryCreate) SetPath(v string) *AccessLogEntryCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *AccessLogEntryCreate) SetMethod(v string) *AccessLogEntryCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *AccessLogEntryCreate) SetStatusCode(v int) *AccessLogEntryCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AccessLogEntryCreate) SetResponseTimeMs(v int) *AccessLogEntryCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *AccessLogEntryCreate) SetNillableResponseTimeMs(v *int) *AccessLogEntryCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *AccessLogEntryCreate) SetOccurredAt(v time.Time) *AccessLogEntryCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *AccessLogEntryCreate) SetNillableOccurredAt(v *time.Time) *AccessLogEntryCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccessLogEntryCreate) SetID(v int64) *AccessLogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AccessLogEntryMutation object of the builder.
func (_c *AccessLogEntryCreate) Mutation() *AccessLogEntryMutation {
	return _c.mutation
}

// Save creates the AccessLogEntry in the database.
func (_c *AccessLogEntryCreate) Save(ctx context.Context) (*AccessLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccessLogEntryCreate) SaveX(ctx context.Context) *AccessLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccessLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccessLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccessLogEntryCreate) defaults() {
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := accesslogentry.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := accesslogentry.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccessLogEntryCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "AccessLogEntry.owner_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "AccessLogEntry.path"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "AccessLogEntry.method"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "AccessLogEntry.status_code"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AccessLogEntry.response_time_ms"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "AccessLogEntry.occurred_at"`)}
	}
	return nil
}

func (_c *AccessLogEntryCreate) sqlSave(ctx context.Context) (*AccessLogEntry, error) {
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

func (_c *AccessLogEntryCreate) createSpec() (*AccessLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AccessLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(accesslogentry.Table, sqlgraph.NewFieldSpec(accesslogentry.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(accesslogentry.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(accesslogentry.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(accesslogentry.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(accesslogentry.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(accesslogentry.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(accesslogentry.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// AccessLogEntryCreateBulk is the builder for creating many AccessLogEntry entities in bulk.
type AccessLogEntryCreateBulk struct {
	config
	err      error
	builders []*AccessLogEntryCreate
}

// Save creates the AccessLogEntry entities in the database.
func (_c *AccessLogEntryCreateBulk) Save(ctx context.Context) ([]*AccessLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AccessLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccessLogEntryMutation)
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
func (_c *AccessLogEntryCreateBulk) SaveX(ctx context.Context) []*AccessLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccessLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccessLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
