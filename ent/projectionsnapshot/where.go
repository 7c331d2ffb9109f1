// Code generated by ent, DO NOT EDIT.

package projectionsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldOwnerID, v))
}

// ProjectionType applies equality check predicate on the "projection_type" field. It's identical to ProjectionTypeEQ.
func ProjectionType(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldProjectionType, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldKey, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldVersion, v))
}

// LastEventID applies equality check predicate on the "last_event_id" field. It's identical to LastEventIDEQ.
func LastEventID(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldLastEventID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldOwnerID, v))
}

// ProjectionTypeEQ applies the EQ predicate on the "projection_type" field.
func ProjectionTypeEQ(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldProjectionType, v))
}

// ProjectionTypeNEQ applies the NEQ predicate on the "projection_type" field.
func ProjectionTypeNEQ(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldProjectionType, v))
}

// ProjectionTypeIn applies the In predicate on the "projection_type" field.
func ProjectionTypeIn(vs ...string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldProjectionType, vs...))
}

// ProjectionTypeNotIn applies the NotIn predicate on the "projection_type" field.
func ProjectionTypeNotIn(vs ...string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldProjectionType, vs...))
}

// ProjectionTypeGT applies the GT predicate on the "projection_type" field.
func ProjectionTypeGT(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldProjectionType, v))
}

// ProjectionTypeGTE applies the GTE predicate on the "projection_type" field.
func ProjectionTypeGTE(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldProjectionType, v))
}

// ProjectionTypeLT applies the LT predicate on the "projection_type" field.
func ProjectionTypeLT(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldProjectionType, v))
}

// ProjectionTypeLTE applies the LTE predicate on the "projection_type" field.
func ProjectionTypeLTE(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldProjectionType, v))
}

// ProjectionTypeContains applies the Contains predicate on the "projection_type" field.
func ProjectionTypeContains(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldContains(FieldProjectionType, v))
}

// ProjectionTypeHasPrefix applies the HasPrefix predicate on the "projection_type" field.
func ProjectionTypeHasPrefix(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldHasPrefix(FieldProjectionType, v))
}

// ProjectionTypeHasSuffix applies the HasSuffix predicate on the "projection_type" field.
func ProjectionTypeHasSuffix(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldHasSuffix(FieldProjectionType, v))
}

// ProjectionTypeEqualFold applies the EqualFold predicate on the "projection_type" field.
func ProjectionTypeEqualFold(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEqualFold(FieldProjectionType, v))
}

// ProjectionTypeContainsFold applies the ContainsFold predicate on the "projection_type" field.
func ProjectionTypeContainsFold(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldContainsFold(FieldProjectionType, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldContainsFold(FieldKey, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldVersion, v))
}

// LastEventIDEQ applies the EQ predicate on the "last_event_id" field.
func LastEventIDEQ(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldLastEventID, v))
}

// LastEventIDNEQ applies the NEQ predicate on the "last_event_id" field.
func LastEventIDNEQ(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldLastEventID, v))
}

// LastEventIDIn applies the In predicate on the "last_event_id" field.
func LastEventIDIn(vs ...uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldLastEventID, vs...))
}

// LastEventIDNotIn applies the NotIn predicate on the "last_event_id" field.
func LastEventIDNotIn(vs ...uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldLastEventID, vs...))
}

// LastEventIDGT applies the GT predicate on the "last_event_id" field.
func LastEventIDGT(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldLastEventID, v))
}

// LastEventIDGTE applies the GTE predicate on the "last_event_id" field.
func LastEventIDGTE(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldLastEventID, v))
}

// LastEventIDLT applies the LT predicate on the "last_event_id" field.
func LastEventIDLT(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldLastEventID, v))
}

// LastEventIDLTE applies the LTE predicate on the "last_event_id" field.
func LastEventIDLTE(v uuid.UUID) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldLastEventID, v))
}

// LastEventIDIsNil applies the IsNil predicate on the "last_event_id" field.
func LastEventIDIsNil() predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIsNull(FieldLastEventID))
}

// LastEventIDNotNil applies the NotNil predicate on the "last_event_id" field.
func LastEventIDNotNil() predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotNull(FieldLastEventID))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectionSnapshot) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectionSnapshot) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectionSnapshot) predicate.ProjectionSnapshot {
	return predicate.ProjectionSnapshot(sql.NotPredicates(p))
}
