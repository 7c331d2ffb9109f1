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
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
)

// AbuseTelemetryCreate is the builder for creating a AbuseTelemetry entity.
type AbuseTelemetryCreate struct {
	config
	mutation *AbuseTelemetryMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *AbuseTelemetryCreate) SetOwnerID(v uuid.UUID) *AbuseTelemetryCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetProfile sets the "profile" field.
func (_c *AbuseTelemetryCreate) SetProfile(v string) *AbuseTelemetryCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *AbuseTelemetryCreate) SetPath(v string) *AbuseTelemetryCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *AbuseTelemetryCreate) SetMethod(v string) *AbuseTelemetryCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AbuseTelemetryCreate) SetAction(v string) *AbuseTelemetryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *AbuseTelemetryCreate) SetRiskScore(v int) *AbuseTelemetryCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetCooldownActive sets the "cooldown_active" field.
func (_c *AbuseTelemetryCreate) SetCooldownActive(v bool) *AbuseTelemetryCreate {
	_c.mutation.SetCooldownActive(v)
	return _c
}

// SetNillableCooldownActive sets the "cooldown_active" field if the given value is not nil.
func (_c *AbuseTelemetryCreate) SetNillableCooldownActive(v *bool) *AbuseTelemetryCreate {
	if v != nil {
		_c.SetCooldownActive(*v)
	}
	return _c
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_c *AbuseTelemetryCreate) SetCooldownUntil(v time.Time) *AbuseTelemetryCreate {
	_c.mutation.SetCooldownUntil(v)
	return _c
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_c *AbuseTelemetryCreate) SetNillableCooldownUntil(v *time.Time) *AbuseTelemetryCreate {
	if v != nil {
		_c.SetCooldownUntil(*v)
	}
	return _c
}

// SetTotalRequests60s sets the "total_requests_60s" field.
func (_c *AbuseTelemetryCreate) SetTotalRequests60s(v int) *AbuseTelemetryCreate {
	_c.mutation.SetTotalRequests60s(v)
	return _c
}

// SetDeniedRequests60s sets the "denied_requests_60s" field.
func (_c *AbuseTelemetryCreate) SetDeniedRequests60s(v int) *AbuseTelemetryCreate {
	_c.mutation.SetDeniedRequests60s(v)
	return _c
}

// SetUniquePaths60s sets the "unique_paths_60s" field.
func (_c *AbuseTelemetryCreate) SetUniquePaths60s(v int) *AbuseTelemetryCreate {
	_c.mutation.SetUniquePaths60s(v)
	return _c
}

// SetContextReads60s sets the "context_reads_60s" field.
func (_c *AbuseTelemetryCreate) SetContextReads60s(v int) *AbuseTelemetryCreate {
	_c.mutation.SetContextReads60s(v)
	return _c
}

// SetDeniedRatio60s sets the "denied_ratio_60s" field.
func (_c *AbuseTelemetryCreate) SetDeniedRatio60s(v float64) *AbuseTelemetryCreate {
	_c.mutation.SetDeniedRatio60s(v)
	return _c
}

// SetSignals sets the "signals" field.
func (_c *AbuseTelemetryCreate) SetSignals(v []string) *AbuseTelemetryCreate {
	_c.mutation.SetSignals(v)
	return _c
}

// SetFalsePositiveHint sets the "false_positive_hint" field.
func (_c *AbuseTelemetryCreate) SetFalsePositiveHint(v bool) *AbuseTelemetryCreate {
	_c.mutation.SetFalsePositiveHint(v)
	return _c
}

// SetNillableFalsePositiveHint sets the "false_positive_hint" field if the given value is not nil.
func (_c *AbuseTelemetryCreate) SetNillableFalsePositiveHint(v *bool) *AbuseTelemetryCreate {
	if v != nil {
		_c.SetFalsePositiveHint(*v)
	}
	return _c
}

// SetUxImpactHint sets the "ux_impact_hint" field.
func (_c *AbuseTelemetryCreate) SetUxImpactHint(v string) *AbuseTelemetryCreate {
	_c.mutation.SetUxImpactHint(v)
	return _c
}

// SetNillableUxImpactHint sets the "ux_impact_hint" field if the given value is not nil.
func (_c *AbuseTelemetryCreate) SetNillableUxImpactHint(v *string) *AbuseTelemetryCreate {
	if v != nil {
		_c.SetUxImpactHint(*v)
	}
	return _c
}

// SetResponseStatusCode sets the "response_status_code" field.
func (_c *AbuseTelemetryCreate) SetResponseStatusCode(v int) *AbuseTelemetryCreate {
	_c.mutation.SetResponseStatusCode(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AbuseTelemetryCreate) SetResponseTimeMs(v int) *AbuseTelemetryCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AbuseTelemetryCreate) SetCreatedAt(v time.Time) *AbuseTelemetryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AbuseTelemetryCreate) SetNillableCreatedAt(v *time.Time) *AbuseTelemetryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AbuseTelemetryCreate) SetID(v int64) *AbuseTelemetryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AbuseTelemetryMutation object of the builder.
func (_c *AbuseTelemetryCreate) Mutation() *AbuseTelemetryMutation {
	return _c.mutation
}

// Save creates the AbuseTelemetry in the database.
func (_c *AbuseTelemetryCreate) Save(ctx context.Context) (*AbuseTelemetry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AbuseTelemetryCreate) SaveX(ctx context.Context) *AbuseTelemetry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AbuseTelemetryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AbuseTelemetryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AbuseTelemetryCreate) defaults() {
	if _, ok := _c.mutation.CooldownActive(); !ok {
		v := abusetelemetry.DefaultCooldownActive
		_c.mutation.SetCooldownActive(v)
	}
	if _, ok := _c.mutation.FalsePositiveHint(); !ok {
		v := abusetelemetry.DefaultFalsePositiveHint
		_c.mutation.SetFalsePositiveHint(v)
	}
	if _, ok := _c.mutation.UxImpactHint(); !ok {
		v := abusetelemetry.DefaultUxImpactHint
		_c.mutation.SetUxImpactHint(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := abusetelemetry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AbuseTelemetryCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "AbuseTelemetry.owner_id"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "AbuseTelemetry.profile"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "AbuseTelemetry.path"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "AbuseTelemetry.method"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AbuseTelemetry.action"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "AbuseTelemetry.risk_score"`)}
	}
	if _, ok := _c.mutation.CooldownActive(); !ok {
		return &ValidationError{Name: "cooldown_active", err: errors.New(`ent: missing required field "AbuseTelemetry.cooldown_active"`)}
	}
	if _, ok := _c.mutation.TotalRequests60s(); !ok {
		return &ValidationError{Name: "total_requests_60s", err: errors.New(`ent: missing required field "AbuseTelemetry.total_requests_60s"`)}
	}
	if _, ok := _c.mutation.DeniedRequests60s(); !ok {
		return &ValidationError{Name: "denied_requests_60s", err: errors.New(`ent: missing required field "AbuseTelemetry.denied_requests_60s"`)}
	}
	if _, ok := _c.mutation.UniquePaths60s(); !ok {
		return &ValidationError{Name: "unique_paths_60s", err: errors.New(`ent: missing required field "AbuseTelemetry.unique_paths_60s"`)}
	}
	if _, ok := _c.mutation.ContextReads60s(); !ok {
		return &ValidationError{Name: "context_reads_60s", err: errors.New(`ent: missing required field "AbuseTelemetry.context_reads_60s"`)}
	}
	if _, ok := _c.mutation.DeniedRatio60s(); !ok {
		return &ValidationError{Name: "denied_ratio_60s", err: errors.New(`ent: missing required field "AbuseTelemetry.denied_ratio_60s"`)}
	}
	if _, ok := _c.mutation.Signals(); !ok {
		return &ValidationError{Name: "signals", err: errors.New(`ent: missing required field "AbuseTelemetry.signals"`)}
	}
	if _, ok := _c.mutation.FalsePositiveHint(); !ok {
		return &ValidationError{Name: "false_positive_hint", err: errors.New(`ent: missing required field "AbuseTelemetry.false_positive_hint"`)}
	}
	if _, ok := _c.mutation.UxImpactHint(); !ok {
		return &ValidationError{Name: "ux_impact_hint", err: errors.New(`ent: missing required field "AbuseTelemetry.ux_impact_hint"`)}
	}
	if _, ok := _c.mutation.ResponseStatusCode(); !ok {
		return &ValidationError{Name: "response_status_code", err: errors.New(`ent: missing required field "AbuseTelemetry.response_status_code"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AbuseTelemetry.response_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AbuseTelemetry.created_at"`)}
	}
	return nil
}

func (_c *AbuseTelemetryCreate) sqlSave(ctx context.Context) (*AbuseTelemetry, error) {
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

func (_c *AbuseTelemetryCreate) createSpec() (*AbuseTelemetry, *sqlgraph.CreateSpec) {
	var (
		_node = &AbuseTelemetry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(abusetelemetry.Table, sqlgraph.NewFieldSpec(abusetelemetry.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(abusetelemetry.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(abusetelemetry.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(abusetelemetry.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(abusetelemetry.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(abusetelemetry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(abusetelemetry.FieldRiskScore, field.TypeInt, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.CooldownActive(); ok {
		_spec.SetField(abusetelemetry.FieldCooldownActive, field.TypeBool, value)
		_node.CooldownActive = value
	}
	if value, ok := _c.mutation.CooldownUntil(); ok {
		_spec.SetField(abusetelemetry.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	if value, ok := _c.mutation.TotalRequests60s(); ok {
		_spec.SetField(abusetelemetry.FieldTotalRequests60s, field.TypeInt, value)
		_node.TotalRequests60s = value
	}
	if value, ok := _c.mutation.DeniedRequests60s(); ok {
		_spec.SetField(abusetelemetry.FieldDeniedRequests60s, field.TypeInt, value)
		_node.DeniedRequests60s = value
	}
	if value, ok := _c.mutation.UniquePaths60s(); ok {
		_spec.SetField(abusetelemetry.FieldUniquePaths60s, field.TypeInt, value)
		_node.UniquePaths60s = value
	}
	if value, ok := _c.mutation.ContextReads60s(); ok {
		_spec.SetField(abusetelemetry.FieldContextReads60s, field.TypeInt, value)
		_node.ContextReads60s = value
	}
	if value, ok := _c.mutation.DeniedRatio60s(); ok {
		_spec.SetField(abusetelemetry.FieldDeniedRatio60s, field.TypeFloat64, value)
		_node.DeniedRatio60s = value
	}
	if value, ok := _c.mutation.Signals(); ok {
		_spec.SetField(abusetelemetry.FieldSignals, field.TypeJSON, value)
		_node.Signals = value
	}
	if value, ok := _c.mutation.FalsePositiveHint(); ok {
		_spec.SetField(abusetelemetry.FieldFalsePositiveHint, field.TypeBool, value)
		_node.FalsePositiveHint = value
	}
	if value, ok := _c.mutation.UxImpactHint(); ok {
		_spec.SetField(abusetelemetry.FieldUxImpactHint, field.TypeString, value)
		_node.UxImpactHint = value
	}
	if value, ok := _c.mutation.ResponseStatusCode(); ok {
		_spec.SetField(abusetelemetry.FieldResponseStatusCode, field.TypeInt, value)
		_node.ResponseStatusCode = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(abusetelemetry.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(abusetelemetry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AbuseTelemetryCreateBulk is the builder for creating many AbuseTelemetry entities in bulk.
type AbuseTelemetryCreateBulk struct {
	config
	err      error
	builders []*AbuseTelemetryCreate
}

// Save creates the AbuseTelemetry entities in the database.
func (_c *AbuseTelemetryCreateBulk) Save(ctx context.Context) ([]*AbuseTelemetry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AbuseTelemetry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AbuseTelemetryMutation)
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
func (_c *AbuseTelemetryCreateBulk) SaveX(ctx context.Context) []*AbuseTelemetry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AbuseTelemetryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AbuseTelemetryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
