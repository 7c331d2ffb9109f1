// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
)

// AbuseTelemetry is the model entity for the AbuseTelemetry schema.
type AbuseTelemetry struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Profile holds the value of the "profile" field.
	Profile string `json:"profile,omitempty"`
	// Path holds the value of the "path" field.
	Path string `json:"path,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// allow | throttle | block | recovery
	Action string `json:"action,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore int `json:"risk_score,omitempty"`
	// CooldownActive holds the value of the "cooldown_active" field.
	CooldownActive bool `json:"cooldown_active,omitempty"`
	// CooldownUntil holds the value of the "cooldown_until" field.
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	// TotalRequests60s holds the value of the "total_requests_60s" field.
	TotalRequests60s int `json:"total_requests_60s,omitempty"`
	// DeniedRequests60s holds the value of the "denied_requests_60s" field.
	DeniedRequests60s int `json:"denied_requests_60s,omitempty"`
	// UniquePaths60s holds the value of the "unique_paths_60s" field.
	UniquePaths60s int `json:"unique_paths_60s,omitempty"`
	// ContextReads60s holds the value of the "context_reads_60s" field.
	ContextReads60s int `json:"context_reads_60s,omitempty"`
	// DeniedRatio60s holds the value of the "denied_ratio_60s" field.
	DeniedRatio60s float64 `json:"denied_ratio_60s,omitempty"`
	// Signals holds the value of the "signals" field.
	Signals []string `json:"signals,omitempty"`
	// FalsePositiveHint holds the value of the "false_positive_hint" field.
	FalsePositiveHint bool `json:"false_positive_hint,omitempty"`
	// UxImpactHint holds the value of the "ux_impact_hint" field.
	UxImpactHint string `json:"ux_impact_hint,omitempty"`
	// ResponseStatusCode holds the value of the "response_status_code" field.
	ResponseStatusCode int `json:"response_status_code,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int `json:"response_time_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AbuseTelemetry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case abusetelemetry.FieldSignals:
			values[i] = new([]byte)
		case abusetelemetry.FieldCooldownActive, abusetelemetry.FieldFalsePositiveHint:
			values[i] = new(sql.NullBool)
		case abusetelemetry.FieldDeniedRatio60s:
			values[i] = new(sql.NullFloat64)
		case abusetelemetry.FieldID, abusetelemetry.FieldRiskScore, abusetelemetry.FieldTotalRequests60s, abusetelemetry.FieldDeniedRequests60s, abusetelemetry.FieldUniquePaths60s, abusetelemetry.FieldContextReads60s, abusetelemetry.FieldResponseStatusCode, abusetelemetry.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case abusetelemetry.FieldProfile, abusetelemetry.FieldPath, abusetelemetry.FieldMethod, abusetelemetry.FieldAction, abusetelemetry.FieldUxImpactHint:
			values[i] = new(sql.NullString)
		case abusetelemetry.FieldCooldownUntil, abusetelemetry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case abusetelemetry.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AbuseTelemetry fields.
func (_m *AbuseTelemetry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case abusetelemetry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case abusetelemetry.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case abusetelemetry.FieldProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value.Valid {
				_m.Profile = value.String
			}
		case abusetelemetry.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case abusetelemetry.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case abusetelemetry.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case abusetelemetry.FieldRiskScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = int(value.Int64)
			}
		case abusetelemetry.FieldCooldownActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_active", values[i])
			} else if value.Valid {
				_m.CooldownActive = value.Bool
			}
		case abusetelemetry.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				_m.CooldownUntil = new(time.Time)
				*_m.CooldownUntil = value.Time
			}
		case abusetelemetry.FieldTotalRequests60s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_requests_60s", values[i])
			} else if value.Valid {
				_m.TotalRequests60s = int(value.Int64)
			}
		case abusetelemetry.FieldDeniedRequests60s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field denied_requests_60s", values[i])
			} else if value.Valid {
				_m.DeniedRequests60s = int(value.Int64)
			}
		case abusetelemetry.FieldUniquePaths60s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unique_paths_60s", values[i])
			} else if value.Valid {
				_m.UniquePaths60s = int(value.Int64)
			}
		case abusetelemetry.FieldContextReads60s:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field context_reads_60s", values[i])
			} else if value.Valid {
				_m.ContextReads60s = int(value.Int64)
			}
		case abusetelemetry.FieldDeniedRatio60s:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field denied_ratio_60s", values[i])
			} else if value.Valid {
				_m.DeniedRatio60s = value.Float64
			}
		case abusetelemetry.FieldSignals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Signals); err != nil {
					return fmt.Errorf("unmarshal field signals: %w", err)
				}
			}
		case abusetelemetry.FieldFalsePositiveHint:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field false_positive_hint", values[i])
			} else if value.Valid {
				_m.FalsePositiveHint = value.Bool
			}
		case abusetelemetry.FieldUxImpactHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ux_impact_hint", values[i])
			} else if value.Valid {
				_m.UxImpactHint = value.String
			}
		case abusetelemetry.FieldResponseStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_status_code", values[i])
			} else if value.Valid {
				_m.ResponseStatusCode = int(value.Int64)
			}
		case abusetelemetry.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = int(value.Int64)
			}
		case abusetelemetry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AbuseTelemetry.
// This includes values selected through modifiers, order, etc.
func (_m *AbuseTelemetry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AbuseTelemetry.
// Note that you need to call AbuseTelemetry.Unwrap() before calling this method if this AbuseTelemetry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AbuseTelemetry) Update() *AbuseTelemetryUpdateOne {
	return NewAbuseTelemetryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AbuseTelemetry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AbuseTelemetry) Unwrap() *AbuseTelemetry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AbuseTelemetry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AbuseTelemetry) String() string {
	var builder strings.Builder
	builder.WriteString("AbuseTelemetry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("profile=")
	builder.WriteString(_m.Profile)
	builder.WriteString(", ")
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("cooldown_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.CooldownActive))
	builder.WriteString(", ")
	if v := _m.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_requests_60s=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRequests60s))
	builder.WriteString(", ")
	builder.WriteString("denied_requests_60s=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeniedRequests60s))
	builder.WriteString(", ")
	builder.WriteString("unique_paths_60s=")
	builder.WriteString(fmt.Sprintf("%v", _m.UniquePaths60s))
	builder.WriteString(", ")
	builder.WriteString("context_reads_60s=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextReads60s))
	builder.WriteString(", ")
	builder.WriteString("denied_ratio_60s=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeniedRatio60s))
	builder.WriteString(", ")
	builder.WriteString("signals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Signals))
	builder.WriteString(", ")
	builder.WriteString("false_positive_hint=")
	builder.WriteString(fmt.Sprintf("%v", _m.FalsePositiveHint))
	builder.WriteString(", ")
	builder.WriteString("ux_impact_hint=")
	builder.WriteString(_m.UxImpactHint)
	builder.WriteString(", ")
	builder.WriteString("response_status_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseStatusCode))
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AbuseTelemetries is a parsable slice of AbuseTelemetry.
type AbuseTelemetries []*AbuseTelemetry
