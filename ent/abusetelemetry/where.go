// Code generated by ent, DO NOT EDIT.

package abusetelemetry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldOwnerID, v))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldProfile, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldPath, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldMethod, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldAction, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldRiskScore, v))
}

// CooldownActive applies equality check predicate on the "cooldown_active" field. It's identical to CooldownActiveEQ.
func CooldownActive(v bool) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldCooldownActive, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldCooldownUntil, v))
}

// TotalRequests60s applies equality check predicate on the "total_requests_60s" field. It's identical to TotalRequests60sEQ.
func TotalRequests60s(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldTotalRequests60s, v))
}

// DeniedRequests60s applies equality check predicate on the "denied_requests_60s" field. It's identical to DeniedRequests60sEQ.
func DeniedRequests60s(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldDeniedRequests60s, v))
}

// UniquePaths60s applies equality check predicate on the "unique_paths_60s" field. It's identical to UniquePaths60sEQ.
func UniquePaths60s(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldUniquePaths60s, v))
}

// ContextReads60s applies equality check predicate on the "context_reads_60s" field. It's identical to ContextReads60sEQ.
func ContextReads60s(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldContextReads60s, v))
}

// DeniedRatio60s applies equality check predicate on the "denied_ratio_60s" field. It's identical to DeniedRatio60sEQ.
func DeniedRatio60s(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldDeniedRatio60s, v))
}

// FalsePositiveHint applies equality check predicate on the "false_positive_hint" field. It's identical to FalsePositiveHintEQ.
func FalsePositiveHint(v bool) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldFalsePositiveHint, v))
}

// UxImpactHint applies equality check predicate on the "ux_impact_hint" field. It's identical to UxImpactHintEQ.
func UxImpactHint(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldUxImpactHint, v))
}

// ResponseStatusCode applies equality check predicate on the "response_status_code" field. It's identical to ResponseStatusCodeEQ.
func ResponseStatusCode(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldResponseStatusCode, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldResponseTimeMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldOwnerID, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContainsFold(FieldProfile, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContainsFold(FieldPath, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContainsFold(FieldMethod, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContainsFold(FieldAction, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldRiskScore, v))
}

// CooldownActiveEQ applies the EQ predicate on the "cooldown_active" field.
func CooldownActiveEQ(v bool) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldCooldownActive, v))
}

// CooldownActiveNEQ applies the NEQ predicate on the "cooldown_active" field.
func CooldownActiveNEQ(v bool) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldCooldownActive, v))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotNull(FieldCooldownUntil))
}

// TotalRequests60sEQ applies the EQ predicate on the "total_requests_60s" field.
func TotalRequests60sEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldTotalRequests60s, v))
}

// TotalRequests60sNEQ applies the NEQ predicate on the "total_requests_60s" field.
func TotalRequests60sNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldTotalRequests60s, v))
}

// TotalRequests60sIn applies the In predicate on the "total_requests_60s" field.
func TotalRequests60sIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldTotalRequests60s, vs...))
}

// TotalRequests60sNotIn applies the NotIn predicate on the "total_requests_60s" field.
func TotalRequests60sNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldTotalRequests60s, vs...))
}

// TotalRequests60sGT applies the GT predicate on the "total_requests_60s" field.
func TotalRequests60sGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldTotalRequests60s, v))
}

// TotalRequests60sGTE applies the GTE predicate on the "total_requests_60s" field.
func TotalRequests60sGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldTotalRequests60s, v))
}

// TotalRequests60sLT applies the LT predicate on the "total_requests_60s" field.
func TotalRequests60sLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldTotalRequests60s, v))
}

// TotalRequests60sLTE applies the LTE predicate on the "total_requests_60s" field.
func TotalRequests60sLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldTotalRequests60s, v))
}

// DeniedRequests60sEQ applies the EQ predicate on the "denied_requests_60s" field.
func DeniedRequests60sEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldDeniedRequests60s, v))
}

// DeniedRequests60sNEQ applies the NEQ predicate on the "denied_requests_60s" field.
func DeniedRequests60sNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldDeniedRequests60s, v))
}

// DeniedRequests60sIn applies the In predicate on the "denied_requests_60s" field.
func DeniedRequests60sIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldDeniedRequests60s, vs...))
}

// DeniedRequests60sNotIn applies the NotIn predicate on the "denied_requests_60s" field.
func DeniedRequests60sNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldDeniedRequests60s, vs...))
}

// DeniedRequests60sGT applies the GT predicate on the "denied_requests_60s" field.
func DeniedRequests60sGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldDeniedRequests60s, v))
}

// DeniedRequests60sGTE applies the GTE predicate on the "denied_requests_60s" field.
func DeniedRequests60sGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldDeniedRequests60s, v))
}

// DeniedRequests60sLT applies the LT predicate on the "denied_requests_60s" field.
func DeniedRequests60sLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldDeniedRequests60s, v))
}

// DeniedRequests60sLTE applies the LTE predicate on the "denied_requests_60s" field.
func DeniedRequests60sLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldDeniedRequests60s, v))
}

// UniquePaths60sEQ applies the EQ predicate on the "unique_paths_60s" field.
func UniquePaths60sEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldUniquePaths60s, v))
}

// UniquePaths60sNEQ applies the NEQ predicate on the "unique_paths_60s" field.
func UniquePaths60sNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldUniquePaths60s, v))
}

// UniquePaths60sIn applies the In predicate on the "unique_paths_60s" field.
func UniquePaths60sIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldUniquePaths60s, vs...))
}

// UniquePaths60sNotIn applies the NotIn predicate on the "unique_paths_60s" field.
func UniquePaths60sNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldUniquePaths60s, vs...))
}

// UniquePaths60sGT applies the GT predicate on the "unique_paths_60s" field.
func UniquePaths60sGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldUniquePaths60s, v))
}

// UniquePaths60sGTE applies the GTE predicate on the "unique_paths_60s" field.
func UniquePaths60sGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldUniquePaths60s, v))
}

// UniquePaths60sLT applies the LT predicate on the "unique_paths_60s" field.
func UniquePaths60sLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldUniquePaths60s, v))
}

// UniquePaths60sLTE applies the LTE predicate on the "unique_paths_60s" field.
func UniquePaths60sLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldUniquePaths60s, v))
}

// ContextReads60sEQ applies the EQ predicate on the "context_reads_60s" field.
func ContextReads60sEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldContextReads60s, v))
}

// ContextReads60sNEQ applies the NEQ predicate on the "context_reads_60s" field.
func ContextReads60sNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldContextReads60s, v))
}

// ContextReads60sIn applies the In predicate on the "context_reads_60s" field.
func ContextReads60sIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldContextReads60s, vs...))
}

// ContextReads60sNotIn applies the NotIn predicate on the "context_reads_60s" field.
func ContextReads60sNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldContextReads60s, vs...))
}

// ContextReads60sGT applies the GT predicate on the "context_reads_60s" field.
func ContextReads60sGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldContextReads60s, v))
}

// ContextReads60sGTE applies the GTE predicate on the "context_reads_60s" field.
func ContextReads60sGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldContextReads60s, v))
}

// ContextReads60sLT applies the LT predicate on the "context_reads_60s" field.
func ContextReads60sLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldContextReads60s, v))
}

// ContextReads60sLTE applies the LTE predicate on the "context_reads_60s" field.
func ContextReads60sLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldContextReads60s, v))
}

// DeniedRatio60sEQ applies the EQ predicate on the "denied_ratio_60s" field.
func DeniedRatio60sEQ(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldDeniedRatio60s, v))
}

// DeniedRatio60sNEQ applies the NEQ predicate on the "denied_ratio_60s" field.
func DeniedRatio60sNEQ(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldDeniedRatio60s, v))
}

// DeniedRatio60sIn applies the In predicate on the "denied_ratio_60s" field.
func DeniedRatio60sIn(vs ...float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldDeniedRatio60s, vs...))
}

// DeniedRatio60sNotIn applies the NotIn predicate on the "denied_ratio_60s" field.
func DeniedRatio60sNotIn(vs ...float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldDeniedRatio60s, vs...))
}

// DeniedRatio60sGT applies the GT predicate on the "denied_ratio_60s" field.
func DeniedRatio60sGT(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldDeniedRatio60s, v))
}

// DeniedRatio60sGTE applies the GTE predicate on the "denied_ratio_60s" field.
func DeniedRatio60sGTE(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldDeniedRatio60s, v))
}

// DeniedRatio60sLT applies the LT predicate on the "denied_ratio_60s" field.
func DeniedRatio60sLT(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldDeniedRatio60s, v))
}

// DeniedRatio60sLTE applies the LTE predicate on the "denied_ratio_60s" field.
func DeniedRatio60sLTE(v float64) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldDeniedRatio60s, v))
}

// FalsePositiveHintEQ applies the EQ predicate on the "false_positive_hint" field.
func FalsePositiveHintEQ(v bool) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldFalsePositiveHint, v))
}

// FalsePositiveHintNEQ applies the NEQ predicate on the "false_positive_hint" field.
func FalsePositiveHintNEQ(v bool) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldFalsePositiveHint, v))
}

// UxImpactHintEQ applies the EQ predicate on the "ux_impact_hint" field.
func UxImpactHintEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldUxImpactHint, v))
}

// UxImpactHintNEQ applies the NEQ predicate on the "ux_impact_hint" field.
func UxImpactHintNEQ(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldUxImpactHint, v))
}

// UxImpactHintIn applies the In predicate on the "ux_impact_hint" field.
func UxImpactHintIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldUxImpactHint, vs...))
}

// UxImpactHintNotIn applies the NotIn predicate on the "ux_impact_hint" field.
func UxImpactHintNotIn(vs ...string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldUxImpactHint, vs...))
}

// UxImpactHintGT applies the GT predicate on the "ux_impact_hint" field.
func UxImpactHintGT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldUxImpactHint, v))
}

// UxImpactHintGTE applies the GTE predicate on the "ux_impact_hint" field.
func UxImpactHintGTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldUxImpactHint, v))
}

// UxImpactHintLT applies the LT predicate on the "ux_impact_hint" field.
func UxImpactHintLT(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldUxImpactHint, v))
}

// UxImpactHintLTE applies the LTE predicate on the "ux_impact_hint" field.
func UxImpactHintLTE(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldUxImpactHint, v))
}

// UxImpactHintContains applies the Contains predicate on the "ux_impact_hint" field.
func UxImpactHintContains(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContains(FieldUxImpactHint, v))
}

// UxImpactHintHasPrefix applies the HasPrefix predicate on the "ux_impact_hint" field.
func UxImpactHintHasPrefix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasPrefix(FieldUxImpactHint, v))
}

// UxImpactHintHasSuffix applies the HasSuffix predicate on the "ux_impact_hint" field.
func UxImpactHintHasSuffix(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldHasSuffix(FieldUxImpactHint, v))
}

// UxImpactHintEqualFold applies the EqualFold predicate on the "ux_impact_hint" field.
func UxImpactHintEqualFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEqualFold(FieldUxImpactHint, v))
}

// UxImpactHintContainsFold applies the ContainsFold predicate on the "ux_impact_hint" field.
func UxImpactHintContainsFold(v string) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldContainsFold(FieldUxImpactHint, v))
}

// ResponseStatusCodeEQ applies the EQ predicate on the "response_status_code" field.
func ResponseStatusCodeEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldResponseStatusCode, v))
}

// ResponseStatusCodeNEQ applies the NEQ predicate on the "response_status_code" field.
func ResponseStatusCodeNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldResponseStatusCode, v))
}

// ResponseStatusCodeIn applies the In predicate on the "response_status_code" field.
func ResponseStatusCodeIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldResponseStatusCode, vs...))
}

// ResponseStatusCodeNotIn applies the NotIn predicate on the "response_status_code" field.
func ResponseStatusCodeNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldResponseStatusCode, vs...))
}

// ResponseStatusCodeGT applies the GT predicate on the "response_status_code" field.
func ResponseStatusCodeGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldResponseStatusCode, v))
}

// ResponseStatusCodeGTE applies the GTE predicate on the "response_status_code" field.
func ResponseStatusCodeGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldResponseStatusCode, v))
}

// ResponseStatusCodeLT applies the LT predicate on the "response_status_code" field.
func ResponseStatusCodeLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldResponseStatusCode, v))
}

// ResponseStatusCodeLTE applies the LTE predicate on the "response_status_code" field.
func ResponseStatusCodeLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldResponseStatusCode, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldResponseTimeMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AbuseTelemetry) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AbuseTelemetry) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AbuseTelemetry) predicate.AbuseTelemetry {
	return predicate.AbuseTelemetry(sql.NotPredicates(p))
}
