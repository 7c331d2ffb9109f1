// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
	"github.com/jonzim-cmd/kura/ent/event"
	"github.com/jonzim-cmd/kura/ent/predicate"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAbuseTelemetry     = "AbuseTelemetry"
	TypeAccessLogEntry     = "AccessLogEntry"
	TypeEvent              = "Event"
	TypeProjectionSnapshot = "ProjectionSnapshot"
)

// AbuseTelemetryMutation represents an operation that mutates the AbuseTelemetry nodes in the graph.
type AbuseTelemetryMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int64
	owner_id                *uuid.UUID
	profile                 *string
	_path                   *string
	method                  *string
	action                  *string
	risk_score              *int
	addrisk_score           *int
	cooldown_active         *bool
	cooldown_until          *time.Time
	total_requests_60s      *int
	addtotal_requests_60s   *int
	denied_requests_60s     *int
	adddenied_requests_60s  *int
	unique_paths_60s        *int
	addunique_paths_60s     *int
	context_reads_60s       *int
	addcontext_reads_60s    *int
	denied_ratio_60s        *float64
	adddenied_ratio_60s     *float64
	signals                 *[]string
	appendsignals           []string
	false_positive_hint     *bool
	ux_impact_hint          *string
	response_status_code    *int
	addresponse_status_code *int
	response_time_ms        *int
	addresponse_time_ms     *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*AbuseTelemetry, error)
	predicates              []predicate.AbuseTelemetry
}

var _ ent.Mutation = (*AbuseTelemetryMutation)(nil)

// abusetelemetryOption allows management of the mutation configuration using functional options.
type abusetelemetryOption func(*AbuseTelemetryMutation)

// newAbuseTelemetryMutation creates new mutation for the AbuseTelemetry entity.
func newAbuseTelemetryMutation(c config, op Op, opts ...abusetelemetryOption) *AbuseTelemetryMutation {
	m := &AbuseTelemetryMutation{
		config:        c,
		op:            op,
		typ:           TypeAbuseTelemetry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAbuseTelemetryID sets the ID field of the mutation.
func withAbuseTelemetryID(id int64) abusetelemetryOption {
	return func(m *AbuseTelemetryMutation) {
		var (
			err   error
			once  sync.Once
			value *AbuseTelemetry
		)
		m.oldValue = func(ctx context.Context) (*AbuseTelemetry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AbuseTelemetry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAbuseTelemetry sets the old AbuseTelemetry of the mutation.
func withAbuseTelemetry(node *AbuseTelemetry) abusetelemetryOption {
	return func(m *AbuseTelemetryMutation) {
		m.oldValue = func(context.Context) (*AbuseTelemetry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AbuseTelemetryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AbuseTelemetryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AbuseTelemetry entities.
func (m *AbuseTelemetryMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AbuseTelemetryMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AbuseTelemetryMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AbuseTelemetry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *AbuseTelemetryMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AbuseTelemetryMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AbuseTelemetryMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetProfile sets the "profile" field.
func (m *AbuseTelemetryMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *AbuseTelemetryMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *AbuseTelemetryMutation) ResetProfile() {
	m.profile = nil
}

// SetPath sets the "path" field.
func (m *AbuseTelemetryMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *AbuseTelemetryMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *AbuseTelemetryMutation) ResetPath() {
	m._path = nil
}

// SetMethod sets the "method" field.
func (m *AbuseTelemetryMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *AbuseTelemetryMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *AbuseTelemetryMutation) ResetMethod() {
	m.method = nil
}

// SetAction sets the "action" field.
func (m *AbuseTelemetryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AbuseTelemetryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AbuseTelemetryMutation) ResetAction() {
	m.action = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *AbuseTelemetryMutation) SetRiskScore(i int) {
	m.risk_score = &i
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *AbuseTelemetryMutation) RiskScore() (r int, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldRiskScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds i to the "risk_score" field.
func (m *AbuseTelemetryMutation) AddRiskScore(i int) {
	if m.addrisk_score != nil {
		*m.addrisk_score += i
	} else {
		m.addrisk_score = &i
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *AbuseTelemetryMutation) AddedRiskScore() (r int, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *AbuseTelemetryMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetCooldownActive sets the "cooldown_active" field.
func (m *AbuseTelemetryMutation) SetCooldownActive(b bool) {
	m.cooldown_active = &b
}

// CooldownActive returns the value of the "cooldown_active" field in the mutation.
func (m *AbuseTelemetryMutation) CooldownActive() (r bool, exists bool) {
	v := m.cooldown_active
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownActive returns the old "cooldown_active" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldCooldownActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownActive: %w", err)
	}
	return oldValue.CooldownActive, nil
}

// ResetCooldownActive resets all changes to the "cooldown_active" field.
func (m *AbuseTelemetryMutation) ResetCooldownActive() {
	m.cooldown_active = nil
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *AbuseTelemetryMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *AbuseTelemetryMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *AbuseTelemetryMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[abusetelemetry.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *AbuseTelemetryMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[abusetelemetry.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *AbuseTelemetryMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, abusetelemetry.FieldCooldownUntil)
}

// SetTotalRequests60s sets the "total_requests_60s" field.
func (m *AbuseTelemetryMutation) SetTotalRequests60s(i int) {
	m.total_requests_60s = &i
	m.addtotal_requests_60s = nil
}

// TotalRequests60s returns the value of the "total_requests_60s" field in the mutation.
func (m *AbuseTelemetryMutation) TotalRequests60s() (r int, exists bool) {
	v := m.total_requests_60s
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRequests60s returns the old "total_requests_60s" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldTotalRequests60s(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRequests60s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRequests60s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRequests60s: %w", err)
	}
	return oldValue.TotalRequests60s, nil
}

// AddTotalRequests60s adds i to the "total_requests_60s" field.
func (m *AbuseTelemetryMutation) AddTotalRequests60s(i int) {
	if m.addtotal_requests_60s != nil {
		*m.addtotal_requests_60s += i
	} else {
		m.addtotal_requests_60s = &i
	}
}

// AddedTotalRequests60s returns the value that was added to the "total_requests_60s" field in this mutation.
func (m *AbuseTelemetryMutation) AddedTotalRequests60s() (r int, exists bool) {
	v := m.addtotal_requests_60s
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRequests60s resets all changes to the "total_requests_60s" field.
func (m *AbuseTelemetryMutation) ResetTotalRequests60s() {
	m.total_requests_60s = nil
	m.addtotal_requests_60s = nil
}

// SetDeniedRequests60s sets the "denied_requests_60s" field.
func (m *AbuseTelemetryMutation) SetDeniedRequests60s(i int) {
	m.denied_requests_60s = &i
	m.adddenied_requests_60s = nil
}

// DeniedRequests60s returns the value of the "denied_requests_60s" field in the mutation.
func (m *AbuseTelemetryMutation) DeniedRequests60s() (r int, exists bool) {
	v := m.denied_requests_60s
	if v == nil {
		return
	}
	return *v, true
}

// OldDeniedRequests60s returns the old "denied_requests_60s" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldDeniedRequests60s(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeniedRequests60s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeniedRequests60s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeniedRequests60s: %w", err)
	}
	return oldValue.DeniedRequests60s, nil
}

// AddDeniedRequests60s adds i to the "denied_requests_60s" field.
func (m *AbuseTelemetryMutation) AddDeniedRequests60s(i int) {
	if m.adddenied_requests_60s != nil {
		*m.adddenied_requests_60s += i
	} else {
		m.adddenied_requests_60s = &i
	}
}

// AddedDeniedRequests60s returns the value that was added to the "denied_requests_60s" field in this mutation.
func (m *AbuseTelemetryMutation) AddedDeniedRequests60s() (r int, exists bool) {
	v := m.adddenied_requests_60s
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeniedRequests60s resets all changes to the "denied_requests_60s" field.
func (m *AbuseTelemetryMutation) ResetDeniedRequests60s() {
	m.denied_requests_60s = nil
	m.adddenied_requests_60s = nil
}

// SetUniquePaths60s sets the "unique_paths_60s" field.
func (m *AbuseTelemetryMutation) SetUniquePaths60s(i int) {
	m.unique_paths_60s = &i
	m.addunique_paths_60s = nil
}

// UniquePaths60s returns the value of the "unique_paths_60s" field in the mutation.
func (m *AbuseTelemetryMutation) UniquePaths60s() (r int, exists bool) {
	v := m.unique_paths_60s
	if v == nil {
		return
	}
	return *v, true
}

// OldUniquePaths60s returns the old "unique_paths_60s" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldUniquePaths60s(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniquePaths60s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniquePaths60s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniquePaths60s: %w", err)
	}
	return oldValue.UniquePaths60s, nil
}

// AddUniquePaths60s adds i to the "unique_paths_60s" field.
func (m *AbuseTelemetryMutation) AddUniquePaths60s(i int) {
	if m.addunique_paths_60s != nil {
		*m.addunique_paths_60s += i
	} else {
		m.addunique_paths_60s = &i
	}
}

// AddedUniquePaths60s returns the value that was added to the "unique_paths_60s" field in this mutation.
func (m *AbuseTelemetryMutation) AddedUniquePaths60s() (r int, exists bool) {
	v := m.addunique_paths_60s
	if v == nil {
		return
	}
	return *v, true
}

// ResetUniquePaths60s resets all changes to the "unique_paths_60s" field.
func (m *AbuseTelemetryMutation) ResetUniquePaths60s() {
	m.unique_paths_60s = nil
	m.addunique_paths_60s = nil
}

// SetContextReads60s sets the "context_reads_60s" field.
func (m *AbuseTelemetryMutation) SetContextReads60s(i int) {
	m.context_reads_60s = &i
	m.addcontext_reads_60s = nil
}

// ContextReads60s returns the value of the "context_reads_60s" field in the mutation.
func (m *AbuseTelemetryMutation) ContextReads60s() (r int, exists bool) {
	v := m.context_reads_60s
	if v == nil {
		return
	}
	return *v, true
}

// OldContextReads60s returns the old "context_reads_60s" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldContextReads60s(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextReads60s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextReads60s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextReads60s: %w", err)
	}
	return oldValue.ContextReads60s, nil
}

// AddContextReads60s adds i to the "context_reads_60s" field.
func (m *AbuseTelemetryMutation) AddContextReads60s(i int) {
	if m.addcontext_reads_60s != nil {
		*m.addcontext_reads_60s += i
	} else {
		m.addcontext_reads_60s = &i
	}
}

// AddedContextReads60s returns the value that was added to the "context_reads_60s" field in this mutation.
func (m *AbuseTelemetryMutation) AddedContextReads60s() (r int, exists bool) {
	v := m.addcontext_reads_60s
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextReads60s resets all changes to the "context_reads_60s" field.
func (m *AbuseTelemetryMutation) ResetContextReads60s() {
	m.context_reads_60s = nil
	m.addcontext_reads_60s = nil
}

// SetDeniedRatio60s sets the "denied_ratio_60s" field.
func (m *AbuseTelemetryMutation) SetDeniedRatio60s(f float64) {
	m.denied_ratio_60s = &f
	m.adddenied_ratio_60s = nil
}

// DeniedRatio60s returns the value of the "denied_ratio_60s" field in the mutation.
func (m *AbuseTelemetryMutation) DeniedRatio60s() (r float64, exists bool) {
	v := m.denied_ratio_60s
	if v == nil {
		return
	}
	return *v, true
}

// OldDeniedRatio60s returns the old "denied_ratio_60s" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldDeniedRatio60s(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeniedRatio60s is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeniedRatio60s requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeniedRatio60s: %w", err)
	}
	return oldValue.DeniedRatio60s, nil
}

// AddDeniedRatio60s adds f to the "denied_ratio_60s" field.
func (m *AbuseTelemetryMutation) AddDeniedRatio60s(f float64) {
	if m.adddenied_ratio_60s != nil {
		*m.adddenied_ratio_60s += f
	} else {
		m.adddenied_ratio_60s = &f
	}
}

// AddedDeniedRatio60s returns the value that was added to the "denied_ratio_60s" field in this mutation.
func (m *AbuseTelemetryMutation) AddedDeniedRatio60s() (r float64, exists bool) {
	v := m.adddenied_ratio_60s
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeniedRatio60s resets all changes to the "denied_ratio_60s" field.
func (m *AbuseTelemetryMutation) ResetDeniedRatio60s() {
	m.denied_ratio_60s = nil
	m.adddenied_ratio_60s = nil
}

// SetSignals sets the "signals" field.
func (m *AbuseTelemetryMutation) SetSignals(s []string) {
	m.signals = &s
	m.appendsignals = nil
}

// Signals returns the value of the "signals" field in the mutation.
func (m *AbuseTelemetryMutation) Signals() (r []string, exists bool) {
	v := m.signals
	if v == nil {
		return
	}
	return *v, true
}

// OldSignals returns the old "signals" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldSignals(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignals: %w", err)
	}
	return oldValue.Signals, nil
}

// AppendSignals adds s to the "signals" field.
func (m *AbuseTelemetryMutation) AppendSignals(s []string) {
	m.appendsignals = append(m.appendsignals, s...)
}

// AppendedSignals returns the list of values that were appended to the "signals" field in this mutation.
func (m *AbuseTelemetryMutation) AppendedSignals() ([]string, bool) {
	if len(m.appendsignals) == 0 {
		return nil, false
	}
	return m.appendsignals, true
}

// ResetSignals resets all changes to the "signals" field.
func (m *AbuseTelemetryMutation) ResetSignals() {
	m.signals = nil
	m.appendsignals = nil
}

// SetFalsePositiveHint sets the "false_positive_hint" field.
func (m *AbuseTelemetryMutation) SetFalsePositiveHint(b bool) {
	m.false_positive_hint = &b
}

// FalsePositiveHint returns the value of the "false_positive_hint" field in the mutation.
func (m *AbuseTelemetryMutation) FalsePositiveHint() (r bool, exists bool) {
	v := m.false_positive_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldFalsePositiveHint returns the old "false_positive_hint" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldFalsePositiveHint(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFalsePositiveHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFalsePositiveHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFalsePositiveHint: %w", err)
	}
	return oldValue.FalsePositiveHint, nil
}

// ResetFalsePositiveHint resets all changes to the "false_positive_hint" field.
func (m *AbuseTelemetryMutation) ResetFalsePositiveHint() {
	m.false_positive_hint = nil
}

// SetUxImpactHint sets the "ux_impact_hint" field.
func (m *AbuseTelemetryMutation) SetUxImpactHint(s string) {
	m.ux_impact_hint = &s
}

// UxImpactHint returns the value of the "ux_impact_hint" field in the mutation.
func (m *AbuseTelemetryMutation) UxImpactHint() (r string, exists bool) {
	v := m.ux_impact_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldUxImpactHint returns the old "ux_impact_hint" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldUxImpactHint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUxImpactHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUxImpactHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUxImpactHint: %w", err)
	}
	return oldValue.UxImpactHint, nil
}

// ResetUxImpactHint resets all changes to the "ux_impact_hint" field.
func (m *AbuseTelemetryMutation) ResetUxImpactHint() {
	m.ux_impact_hint = nil
}

// SetResponseStatusCode sets the "response_status_code" field.
func (m *AbuseTelemetryMutation) SetResponseStatusCode(i int) {
	m.response_status_code = &i
	m.addresponse_status_code = nil
}

// ResponseStatusCode returns the value of the "response_status_code" field in the mutation.
func (m *AbuseTelemetryMutation) ResponseStatusCode() (r int, exists bool) {
	v := m.response_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseStatusCode returns the old "response_status_code" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldResponseStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseStatusCode: %w", err)
	}
	return oldValue.ResponseStatusCode, nil
}

// AddResponseStatusCode adds i to the "response_status_code" field.
func (m *AbuseTelemetryMutation) AddResponseStatusCode(i int) {
	if m.addresponse_status_code != nil {
		*m.addresponse_status_code += i
	} else {
		m.addresponse_status_code = &i
	}
}

// AddedResponseStatusCode returns the value that was added to the "response_status_code" field in this mutation.
func (m *AbuseTelemetryMutation) AddedResponseStatusCode() (r int, exists bool) {
	v := m.addresponse_status_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseStatusCode resets all changes to the "response_status_code" field.
func (m *AbuseTelemetryMutation) ResetResponseStatusCode() {
	m.response_status_code = nil
	m.addresponse_status_code = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *AbuseTelemetryMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *AbuseTelemetryMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *AbuseTelemetryMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *AbuseTelemetryMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *AbuseTelemetryMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AbuseTelemetryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AbuseTelemetryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AbuseTelemetry entity.
// If the AbuseTelemetry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbuseTelemetryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AbuseTelemetryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AbuseTelemetryMutation builder.
func (m *AbuseTelemetryMutation) Where(ps ...predicate.AbuseTelemetry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AbuseTelemetryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AbuseTelemetryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AbuseTelemetry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AbuseTelemetryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AbuseTelemetryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AbuseTelemetry).
func (m *AbuseTelemetryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AbuseTelemetryMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.owner_id != nil {
		fields = append(fields, abusetelemetry.FieldOwnerID)
	}
	if m.profile != nil {
		fields = append(fields, abusetelemetry.FieldProfile)
	}
	if m._path != nil {
		fields = append(fields, abusetelemetry.FieldPath)
	}
	if m.method != nil {
		fields = append(fields, abusetelemetry.FieldMethod)
	}
	if m.action != nil {
		fields = append(fields, abusetelemetry.FieldAction)
	}
	if m.risk_score != nil {
		fields = append(fields, abusetelemetry.FieldRiskScore)
	}
	if m.cooldown_active != nil {
		fields = append(fields, abusetelemetry.FieldCooldownActive)
	}
	if m.cooldown_until != nil {
		fields = append(fields, abusetelemetry.FieldCooldownUntil)
	}
	if m.total_requests_60s != nil {
		fields = append(fields, abusetelemetry.FieldTotalRequests60s)
	}
	if m.denied_requests_60s != nil {
		fields = append(fields, abusetelemetry.FieldDeniedRequests60s)
	}
	if m.unique_paths_60s != nil {
		fields = append(fields, abusetelemetry.FieldUniquePaths60s)
	}
	if m.context_reads_60s != nil {
		fields = append(fields, abusetelemetry.FieldContextReads60s)
	}
	if m.denied_ratio_60s != nil {
		fields = append(fields, abusetelemetry.FieldDeniedRatio60s)
	}
	if m.signals != nil {
		fields = append(fields, abusetelemetry.FieldSignals)
	}
	if m.false_positive_hint != nil {
		fields = append(fields, abusetelemetry.FieldFalsePositiveHint)
	}
	if m.ux_impact_hint != nil {
		fields = append(fields, abusetelemetry.FieldUxImpactHint)
	}
	if m.response_status_code != nil {
		fields = append(fields, abusetelemetry.FieldResponseStatusCode)
	}
	if m.response_time_ms != nil {
		fields = append(fields, abusetelemetry.FieldResponseTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, abusetelemetry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AbuseTelemetryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case abusetelemetry.FieldOwnerID:
		return m.OwnerID()
	case abusetelemetry.FieldProfile:
		return m.Profile()
	case abusetelemetry.FieldPath:
		return m.Path()
	case abusetelemetry.FieldMethod:
		return m.Method()
	case abusetelemetry.FieldAction:
		return m.Action()
	case abusetelemetry.FieldRiskScore:
		return m.RiskScore()
	case abusetelemetry.FieldCooldownActive:
		return m.CooldownActive()
	case abusetelemetry.FieldCooldownUntil:
		return m.CooldownUntil()
	case abusetelemetry.FieldTotalRequests60s:
		return m.TotalRequests60s()
	case abusetelemetry.FieldDeniedRequests60s:
		return m.DeniedRequests60s()
	case abusetelemetry.FieldUniquePaths60s:
		return m.UniquePaths60s()
	case abusetelemetry.FieldContextReads60s:
		return m.ContextReads60s()
	case abusetelemetry.FieldDeniedRatio60s:
		return m.DeniedRatio60s()
	case abusetelemetry.FieldSignals:
		return m.Signals()
	case abusetelemetry.FieldFalsePositiveHint:
		return m.FalsePositiveHint()
	case abusetelemetry.FieldUxImpactHint:
		return m.UxImpactHint()
	case abusetelemetry.FieldResponseStatusCode:
		return m.ResponseStatusCode()
	case abusetelemetry.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case abusetelemetry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AbuseTelemetryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case abusetelemetry.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case abusetelemetry.FieldProfile:
		return m.OldProfile(ctx)
	case abusetelemetry.FieldPath:
		return m.OldPath(ctx)
	case abusetelemetry.FieldMethod:
		return m.OldMethod(ctx)
	case abusetelemetry.FieldAction:
		return m.OldAction(ctx)
	case abusetelemetry.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case abusetelemetry.FieldCooldownActive:
		return m.OldCooldownActive(ctx)
	case abusetelemetry.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	case abusetelemetry.FieldTotalRequests60s:
		return m.OldTotalRequests60s(ctx)
	case abusetelemetry.FieldDeniedRequests60s:
		return m.OldDeniedRequests60s(ctx)
	case abusetelemetry.FieldUniquePaths60s:
		return m.OldUniquePaths60s(ctx)
	case abusetelemetry.FieldContextReads60s:
		return m.OldContextReads60s(ctx)
	case abusetelemetry.FieldDeniedRatio60s:
		return m.OldDeniedRatio60s(ctx)
	case abusetelemetry.FieldSignals:
		return m.OldSignals(ctx)
	case abusetelemetry.FieldFalsePositiveHint:
		return m.OldFalsePositiveHint(ctx)
	case abusetelemetry.FieldUxImpactHint:
		return m.OldUxImpactHint(ctx)
	case abusetelemetry.FieldResponseStatusCode:
		return m.OldResponseStatusCode(ctx)
	case abusetelemetry.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case abusetelemetry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AbuseTelemetry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AbuseTelemetryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case abusetelemetry.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case abusetelemetry.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case abusetelemetry.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case abusetelemetry.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case abusetelemetry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case abusetelemetry.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case abusetelemetry.FieldCooldownActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownActive(v)
		return nil
	case abusetelemetry.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	case abusetelemetry.FieldTotalRequests60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRequests60s(v)
		return nil
	case abusetelemetry.FieldDeniedRequests60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeniedRequests60s(v)
		return nil
	case abusetelemetry.FieldUniquePaths60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniquePaths60s(v)
		return nil
	case abusetelemetry.FieldContextReads60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextReads60s(v)
		return nil
	case abusetelemetry.FieldDeniedRatio60s:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeniedRatio60s(v)
		return nil
	case abusetelemetry.FieldSignals:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignals(v)
		return nil
	case abusetelemetry.FieldFalsePositiveHint:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFalsePositiveHint(v)
		return nil
	case abusetelemetry.FieldUxImpactHint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUxImpactHint(v)
		return nil
	case abusetelemetry.FieldResponseStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseStatusCode(v)
		return nil
	case abusetelemetry.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case abusetelemetry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AbuseTelemetry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AbuseTelemetryMutation) AddedFields() []string {
	var fields []string
	if m.addrisk_score != nil {
		fields = append(fields, abusetelemetry.FieldRiskScore)
	}
	if m.addtotal_requests_60s != nil {
		fields = append(fields, abusetelemetry.FieldTotalRequests60s)
	}
	if m.adddenied_requests_60s != nil {
		fields = append(fields, abusetelemetry.FieldDeniedRequests60s)
	}
	if m.addunique_paths_60s != nil {
		fields = append(fields, abusetelemetry.FieldUniquePaths60s)
	}
	if m.addcontext_reads_60s != nil {
		fields = append(fields, abusetelemetry.FieldContextReads60s)
	}
	if m.adddenied_ratio_60s != nil {
		fields = append(fields, abusetelemetry.FieldDeniedRatio60s)
	}
	if m.addresponse_status_code != nil {
		fields = append(fields, abusetelemetry.FieldResponseStatusCode)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, abusetelemetry.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AbuseTelemetryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case abusetelemetry.FieldRiskScore:
		return m.AddedRiskScore()
	case abusetelemetry.FieldTotalRequests60s:
		return m.AddedTotalRequests60s()
	case abusetelemetry.FieldDeniedRequests60s:
		return m.AddedDeniedRequests60s()
	case abusetelemetry.FieldUniquePaths60s:
		return m.AddedUniquePaths60s()
	case abusetelemetry.FieldContextReads60s:
		return m.AddedContextReads60s()
	case abusetelemetry.FieldDeniedRatio60s:
		return m.AddedDeniedRatio60s()
	case abusetelemetry.FieldResponseStatusCode:
		return m.AddedResponseStatusCode()
	case abusetelemetry.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AbuseTelemetryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case abusetelemetry.FieldRiskScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case abusetelemetry.FieldTotalRequests60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRequests60s(v)
		return nil
	case abusetelemetry.FieldDeniedRequests60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeniedRequests60s(v)
		return nil
	case abusetelemetry.FieldUniquePaths60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUniquePaths60s(v)
		return nil
	case abusetelemetry.FieldContextReads60s:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextReads60s(v)
		return nil
	case abusetelemetry.FieldDeniedRatio60s:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeniedRatio60s(v)
		return nil
	case abusetelemetry.FieldResponseStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseStatusCode(v)
		return nil
	case abusetelemetry.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AbuseTelemetry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AbuseTelemetryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(abusetelemetry.FieldCooldownUntil) {
		fields = append(fields, abusetelemetry.FieldCooldownUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AbuseTelemetryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AbuseTelemetryMutation) ClearField(name string) error {
	switch name {
	case abusetelemetry.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	}
	return fmt.Errorf("unknown AbuseTelemetry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AbuseTelemetryMutation) ResetField(name string) error {
	switch name {
	case abusetelemetry.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case abusetelemetry.FieldProfile:
		m.ResetProfile()
		return nil
	case abusetelemetry.FieldPath:
		m.ResetPath()
		return nil
	case abusetelemetry.FieldMethod:
		m.ResetMethod()
		return nil
	case abusetelemetry.FieldAction:
		m.ResetAction()
		return nil
	case abusetelemetry.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case abusetelemetry.FieldCooldownActive:
		m.ResetCooldownActive()
		return nil
	case abusetelemetry.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	case abusetelemetry.FieldTotalRequests60s:
		m.ResetTotalRequests60s()
		return nil
	case abusetelemetry.FieldDeniedRequests60s:
		m.ResetDeniedRequests60s()
		return nil
	case abusetelemetry.FieldUniquePaths60s:
		m.ResetUniquePaths60s()
		return nil
	case abusetelemetry.FieldContextReads60s:
		m.ResetContextReads60s()
		return nil
	case abusetelemetry.FieldDeniedRatio60s:
		m.ResetDeniedRatio60s()
		return nil
	case abusetelemetry.FieldSignals:
		m.ResetSignals()
		return nil
	case abusetelemetry.FieldFalsePositiveHint:
		m.ResetFalsePositiveHint()
		return nil
	case abusetelemetry.FieldUxImpactHint:
		m.ResetUxImpactHint()
		return nil
	case abusetelemetry.FieldResponseStatusCode:
		m.ResetResponseStatusCode()
		return nil
	case abusetelemetry.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case abusetelemetry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AbuseTelemetry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AbuseTelemetryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AbuseTelemetryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AbuseTelemetryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AbuseTelemetryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AbuseTelemetryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AbuseTelemetryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AbuseTelemetryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AbuseTelemetry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AbuseTelemetryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AbuseTelemetry edge %s", name)
}

// AccessLogEntryMutation represents an operation that mutates the AccessLogEntry nodes in the graph.
type AccessLogEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int64
	owner_id            *uuid.UUID
	_path               *string
	method              *string
	status_code         *int
	addstatus_code      *int
	response_time_ms    *int
	addresponse_time_ms *int
	occurred_at         *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AccessLogEntry, error)
	predicates          []predicate.AccessLogEntry
}

var _ ent.Mutation = (*AccessLogEntryMutation)(nil)

// accesslogentryOption allows management of the mutation configuration using functional options.
type accesslogentryOption func(*AccessLogEntryMutation)

// newAccessLogEntryMutation creates new mutation for the AccessLogEntry entity.
func newAccessLogEntryMutation(c config, op Op, opts ...accesslogentryOption) *AccessLogEntryMutation {
	m := &AccessLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAccessLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccessLogEntryID sets the ID field of the mutation.
func withAccessLogEntryID(id int64) accesslogentryOption {
	return func(m *AccessLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AccessLogEntry
		)
		m.oldValue = func(ctx context.Context) (*AccessLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AccessLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccessLogEntry sets the old AccessLogEntry of the mutation.
func withAccessLogEntry(node *AccessLogEntry) accesslogentryOption {
	return func(m *AccessLogEntryMutation) {
		m.oldValue = func(context.Context) (*AccessLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccessLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccessLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AccessLogEntry entities.
func (m *AccessLogEntryMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccessLogEntryMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccessLogEntryMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AccessLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *AccessLogEntryMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AccessLogEntryMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the AccessLogEntry entity.
// If the AccessLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessLogEntryMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AccessLogEntryMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetPath sets the "path" field.
func (m *AccessLogEntryMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *AccessLogEntryMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the AccessLogEntry entity.
// If the AccessLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessLogEntryMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *AccessLogEntryMutation) ResetPath() {
	m._path = nil
}

// SetMethod sets the "method" field.
func (m *AccessLogEntryMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *AccessLogEntryMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the AccessLogEntry entity.
// If the AccessLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessLogEntryMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *AccessLogEntryMutation) ResetMethod() {
	m.method = nil
}

// SetStatusCode sets the "status_code" field.
func (m *AccessLogEntryMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *AccessLogEntryMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the AccessLogEntry entity.
// If the AccessLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessLogEntryMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *AccessLogEntryMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *AccessLogEntryMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *AccessLogEntryMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *AccessLogEntryMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *AccessLogEntryMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the AccessLogEntry entity.
// If the AccessLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessLogEntryMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *AccessLogEntryMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *AccessLogEntryMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *AccessLogEntryMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *AccessLogEntryMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *AccessLogEntryMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the AccessLogEntry entity.
// If the AccessLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccessLogEntryMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *AccessLogEntryMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// Where appends a list predicates to the AccessLogEntryMutation builder.
func (m *AccessLogEntryMutation) Where(ps ...predicate.AccessLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccessLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccessLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AccessLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccessLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccessLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AccessLogEntry).
func (m *AccessLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccessLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, accesslogentry.FieldOwnerID)
	}
	if m._path != nil {
		fields = append(fields, accesslogentry.FieldPath)
	}
	if m.method != nil {
		fields = append(fields, accesslogentry.FieldMethod)
	}
	if m.status_code != nil {
		fields = append(fields, accesslogentry.FieldStatusCode)
	}
	if m.response_time_ms != nil {
		fields = append(fields, accesslogentry.FieldResponseTimeMs)
	}
	if m.occurred_at != nil {
		fields = append(fields, accesslogentry.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccessLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case accesslogentry.FieldOwnerID:
		return m.OwnerID()
	case accesslogentry.FieldPath:
		return m.Path()
	case accesslogentry.FieldMethod:
		return m.Method()
	case accesslogentry.FieldStatusCode:
		return m.StatusCode()
	case accesslogentry.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case accesslogentry.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccessLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case accesslogentry.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case accesslogentry.FieldPath:
		return m.OldPath(ctx)
	case accesslogentry.FieldMethod:
		return m.OldMethod(ctx)
	case accesslogentry.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case accesslogentry.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case accesslogentry.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown AccessLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccessLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case accesslogentry.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case accesslogentry.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case accesslogentry.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case accesslogentry.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case accesslogentry.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case accesslogentry.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown AccessLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccessLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, accesslogentry.FieldStatusCode)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, accesslogentry.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccessLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case accesslogentry.FieldStatusCode:
		return m.AddedStatusCode()
	case accesslogentry.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccessLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case accesslogentry.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case accesslogentry.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AccessLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccessLogEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccessLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccessLogEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AccessLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccessLogEntryMutation) ResetField(name string) error {
	switch name {
	case accesslogentry.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case accesslogentry.FieldPath:
		m.ResetPath()
		return nil
	case accesslogentry.FieldMethod:
		m.ResetMethod()
		return nil
	case accesslogentry.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case accesslogentry.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case accesslogentry.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown AccessLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccessLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccessLogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccessLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccessLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccessLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccessLogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccessLogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AccessLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccessLogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AccessLogEntry edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	owner_id        *uuid.UUID
	occurred_at     *time.Time
	event_type      *string
	data            *map[string]interface{}
	metadata        *map[string]interface{}
	idempotency_key *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id uuid.UUID) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *EventMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *EventMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *EventMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetData sets the "data" field.
func (m *EventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *EventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *EventMutation) ResetData() {
	m.data = nil
}

// SetMetadata sets the "metadata" field.
func (m *EventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EventMutation) ResetMetadata() {
	m.metadata = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *EventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *EventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *EventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner_id != nil {
		fields = append(fields, event.FieldOwnerID)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.data != nil {
		fields = append(fields, event.FieldData)
	}
	if m.metadata != nil {
		fields = append(fields, event.FieldMetadata)
	}
	if m.idempotency_key != nil {
		fields = append(fields, event.FieldIdempotencyKey)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldOwnerID:
		return m.OwnerID()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldData:
		return m.Data()
	case event.FieldMetadata:
		return m.Metadata()
	case event.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldData:
		return m.OldData(ctx)
	case event.FieldMetadata:
		return m.OldMetadata(ctx)
	case event.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case event.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case event.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldData:
		m.ResetData()
		return nil
	case event.FieldMetadata:
		m.ResetMetadata()
		return nil
	case event.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ProjectionSnapshotMutation represents an operation that mutates the ProjectionSnapshot nodes in the graph.
type ProjectionSnapshotMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	owner_id        *uuid.UUID
	projection_type *string
	key             *string
	data            *map[string]interface{}
	version         *int64
	addversion      *int64
	last_event_id   *uuid.UUID
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ProjectionSnapshot, error)
	predicates      []predicate.ProjectionSnapshot
}

var _ ent.Mutation = (*ProjectionSnapshotMutation)(nil)

// projectionsnapshotOption allows management of the mutation configuration using functional options.
type projectionsnapshotOption func(*ProjectionSnapshotMutation)

// newProjectionSnapshotMutation creates new mutation for the ProjectionSnapshot entity.
func newProjectionSnapshotMutation(c config, op Op, opts ...projectionsnapshotOption) *ProjectionSnapshotMutation {
	m := &ProjectionSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectionSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectionSnapshotID sets the ID field of the mutation.
func withProjectionSnapshotID(id int64) projectionsnapshotOption {
	return func(m *ProjectionSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectionSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ProjectionSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectionSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectionSnapshot sets the old ProjectionSnapshot of the mutation.
func withProjectionSnapshot(node *ProjectionSnapshot) projectionsnapshotOption {
	return func(m *ProjectionSnapshotMutation) {
		m.oldValue = func(context.Context) (*ProjectionSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectionSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectionSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectionSnapshot entities.
func (m *ProjectionSnapshotMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectionSnapshotMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectionSnapshotMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectionSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ProjectionSnapshotMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProjectionSnapshotMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProjectionSnapshotMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetProjectionType sets the "projection_type" field.
func (m *ProjectionSnapshotMutation) SetProjectionType(s string) {
	m.projection_type = &s
}

// ProjectionType returns the value of the "projection_type" field in the mutation.
func (m *ProjectionSnapshotMutation) ProjectionType() (r string, exists bool) {
	v := m.projection_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectionType returns the old "projection_type" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldProjectionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectionType: %w", err)
	}
	return oldValue.ProjectionType, nil
}

// ResetProjectionType resets all changes to the "projection_type" field.
func (m *ProjectionSnapshotMutation) ResetProjectionType() {
	m.projection_type = nil
}

// SetKey sets the "key" field.
func (m *ProjectionSnapshotMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ProjectionSnapshotMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ProjectionSnapshotMutation) ResetKey() {
	m.key = nil
}

// SetData sets the "data" field.
func (m *ProjectionSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ProjectionSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ProjectionSnapshotMutation) ResetData() {
	m.data = nil
}

// SetVersion sets the "version" field.
func (m *ProjectionSnapshotMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProjectionSnapshotMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProjectionSnapshotMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProjectionSnapshotMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProjectionSnapshotMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *ProjectionSnapshotMutation) SetLastEventID(u uuid.UUID) {
	m.last_event_id = &u
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *ProjectionSnapshotMutation) LastEventID() (r uuid.UUID, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldLastEventID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ClearLastEventID clears the value of the "last_event_id" field.
func (m *ProjectionSnapshotMutation) ClearLastEventID() {
	m.last_event_id = nil
	m.clearedFields[projectionsnapshot.FieldLastEventID] = struct{}{}
}

// LastEventIDCleared returns if the "last_event_id" field was cleared in this mutation.
func (m *ProjectionSnapshotMutation) LastEventIDCleared() bool {
	_, ok := m.clearedFields[projectionsnapshot.FieldLastEventID]
	return ok
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *ProjectionSnapshotMutation) ResetLastEventID() {
	m.last_event_id = nil
	delete(m.clearedFields, projectionsnapshot.FieldLastEventID)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectionSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectionSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectionSnapshot entity.
// If the ProjectionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectionSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectionSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectionSnapshotMutation builder.
func (m *ProjectionSnapshotMutation) Where(ps ...predicate.ProjectionSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectionSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectionSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectionSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectionSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectionSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectionSnapshot).
func (m *ProjectionSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectionSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner_id != nil {
		fields = append(fields, projectionsnapshot.FieldOwnerID)
	}
	if m.projection_type != nil {
		fields = append(fields, projectionsnapshot.FieldProjectionType)
	}
	if m.key != nil {
		fields = append(fields, projectionsnapshot.FieldKey)
	}
	if m.data != nil {
		fields = append(fields, projectionsnapshot.FieldData)
	}
	if m.version != nil {
		fields = append(fields, projectionsnapshot.FieldVersion)
	}
	if m.last_event_id != nil {
		fields = append(fields, projectionsnapshot.FieldLastEventID)
	}
	if m.updated_at != nil {
		fields = append(fields, projectionsnapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectionSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectionsnapshot.FieldOwnerID:
		return m.OwnerID()
	case projectionsnapshot.FieldProjectionType:
		return m.ProjectionType()
	case projectionsnapshot.FieldKey:
		return m.Key()
	case projectionsnapshot.FieldData:
		return m.Data()
	case projectionsnapshot.FieldVersion:
		return m.Version()
	case projectionsnapshot.FieldLastEventID:
		return m.LastEventID()
	case projectionsnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectionSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectionsnapshot.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case projectionsnapshot.FieldProjectionType:
		return m.OldProjectionType(ctx)
	case projectionsnapshot.FieldKey:
		return m.OldKey(ctx)
	case projectionsnapshot.FieldData:
		return m.OldData(ctx)
	case projectionsnapshot.FieldVersion:
		return m.OldVersion(ctx)
	case projectionsnapshot.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case projectionsnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectionSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectionSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectionsnapshot.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case projectionsnapshot.FieldProjectionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectionType(v)
		return nil
	case projectionsnapshot.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case projectionsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case projectionsnapshot.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case projectionsnapshot.FieldLastEventID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case projectionsnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectionSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectionSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, projectionsnapshot.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectionSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case projectionsnapshot.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectionSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case projectionsnapshot.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectionSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectionSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectionsnapshot.FieldLastEventID) {
		fields = append(fields, projectionsnapshot.FieldLastEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectionSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectionSnapshotMutation) ClearField(name string) error {
	switch name {
	case projectionsnapshot.FieldLastEventID:
		m.ClearLastEventID()
		return nil
	}
	return fmt.Errorf("unknown ProjectionSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectionSnapshotMutation) ResetField(name string) error {
	switch name {
	case projectionsnapshot.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case projectionsnapshot.FieldProjectionType:
		m.ResetProjectionType()
		return nil
	case projectionsnapshot.FieldKey:
		m.ResetKey()
		return nil
	case projectionsnapshot.FieldData:
		m.ResetData()
		return nil
	case projectionsnapshot.FieldVersion:
		m.ResetVersion()
		return nil
	case projectionsnapshot.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case projectionsnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectionSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectionSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectionSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectionSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectionSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectionSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectionSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectionSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProjectionSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectionSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProjectionSnapshot edge %s", name)
}
