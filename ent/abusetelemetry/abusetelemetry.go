// Code generated by ent, DO NOT EDIT.

package abusetelemetry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the abusetelemetry type in the database.
	Label = "abuse_telemetry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldCooldownActive holds the string denoting the cooldown_active field in the database.
	FieldCooldownActive = "cooldown_active"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// FieldTotalRequests60s holds the string denoting the total_requests_60s field in the database.
	FieldTotalRequests60s = "total_requests_60s"
	// FieldDeniedRequests60s holds the string denoting the denied_requests_60s field in the database.
	FieldDeniedRequests60s = "denied_requests_60s"
	// FieldUniquePaths60s holds the string denoting the unique_paths_60s field in the database.
	FieldUniquePaths60s = "unique_paths_60s"
	// FieldContextReads60s holds the string denoting the context_reads_60s field in the database.
	FieldContextReads60s = "context_reads_60s"
	// FieldDeniedRatio60s holds the string denoting the denied_ratio_60s field in the database.
	FieldDeniedRatio60s = "denied_ratio_60s"
	// FieldSignals holds the string denoting the signals field in the database.
	FieldSignals = "signals"
	// FieldFalsePositiveHint holds the string denoting the false_positive_hint field in the database.
	FieldFalsePositiveHint = "false_positive_hint"
	// FieldUxImpactHint holds the string denoting the ux_impact_hint field in the database.
	FieldUxImpactHint = "ux_impact_hint"
	// FieldResponseStatusCode holds the string denoting the response_status_code field in the database.
	FieldResponseStatusCode = "response_status_code"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the abusetelemetry in the database.
	Table = "abuse_telemetries"
)

// Columns holds all SQL columns for abusetelemetry fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldProfile,
	FieldPath,
	FieldMethod,
	FieldAction,
	FieldRiskScore,
	FieldCooldownActive,
	FieldCooldownUntil,
	FieldTotalRequests60s,
	FieldDeniedRequests60s,
	FieldUniquePaths60s,
	FieldContextReads60s,
	FieldDeniedRatio60s,
	FieldSignals,
	FieldFalsePositiveHint,
	FieldUxImpactHint,
	FieldResponseStatusCode,
	FieldResponseTimeMs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCooldownActive holds the default value on creation for the "cooldown_active" field.
	DefaultCooldownActive bool
	// DefaultFalsePositiveHint holds the default value on creation for the "false_positive_hint" field.
	DefaultFalsePositiveHint bool
	// DefaultUxImpactHint holds the default value on creation for the "ux_impact_hint" field.
	DefaultUxImpactHint string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AbuseTelemetry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByProfile orders the results by the profile field.
func ByProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfile, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByCooldownActive orders the results by the cooldown_active field.
func ByCooldownActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownActive, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}

// ByTotalRequests60s orders the results by the total_requests_60s field.
func ByTotalRequests60s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRequests60s, opts...).ToFunc()
}

// ByDeniedRequests60s orders the results by the denied_requests_60s field.
func ByDeniedRequests60s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeniedRequests60s, opts...).ToFunc()
}

// ByUniquePaths60s orders the results by the unique_paths_60s field.
func ByUniquePaths60s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniquePaths60s, opts...).ToFunc()
}

// ByContextReads60s orders the results by the context_reads_60s field.
func ByContextReads60s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextReads60s, opts...).ToFunc()
}

// ByDeniedRatio60s orders the results by the denied_ratio_60s field.
func ByDeniedRatio60s(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeniedRatio60s, opts...).ToFunc()
}

// ByFalsePositiveHint orders the results by the false_positive_hint field.
func ByFalsePositiveHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFalsePositiveHint, opts...).ToFunc()
}

// ByUxImpactHint orders the results by the ux_impact_hint field.
func ByUxImpactHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUxImpactHint, opts...).ToFunc()
}

// ByResponseStatusCode orders the results by the response_status_code field.
func ByResponseStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseStatusCode, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
