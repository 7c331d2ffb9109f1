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
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
)

// ProjectionSnapshot is the model entity for the ProjectionSnapshot schema.
type ProjectionSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// ProjectionType holds the value of the "projection_type" field.
	ProjectionType string `json:"projection_type,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Data holds the value of the "data" field.
	Data map[string]interface{} `json:"data,omitempty"`
	// Version holds the value of the "version" field.
	Version int64 `json:"version,omitempty"`
	// Highest event id folded into this snapshot
	LastEventID *uuid.UUID `json:"last_event_id,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectionSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectionsnapshot.FieldLastEventID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case projectionsnapshot.FieldData:
			values[i] = new([]byte)
		case projectionsnapshot.FieldID, projectionsnapshot.FieldVersion:
			values[i] = new(sql.NullInt64)
		case projectionsnapshot.FieldProjectionType, projectionsnapshot.FieldKey:
			values[i] = new(sql.NullString)
		case projectionsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case projectionsnapshot.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectionSnapshot fields.
func (_m *ProjectionSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectionsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case projectionsnapshot.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case projectionsnapshot.FieldProjectionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field projection_type", values[i])
			} else if value.Valid {
				_m.ProjectionType = value.String
			}
		case projectionsnapshot.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case projectionsnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case projectionsnapshot.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case projectionsnapshot.FieldLastEventID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field last_event_id", values[i])
			} else if value.Valid {
				_m.LastEventID = new(uuid.UUID)
				*_m.LastEventID = *value.S.(*uuid.UUID)
			}
		case projectionsnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectionSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectionSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProjectionSnapshot.
// Note that you need to call ProjectionSnapshot.Unwrap() before calling this method if this ProjectionSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectionSnapshot) Update() *ProjectionSnapshotUpdateOne {
	return NewProjectionSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectionSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectionSnapshot) Unwrap() *ProjectionSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectionSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectionSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectionSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("projection_type=")
	builder.WriteString(_m.ProjectionType)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.LastEventID; v != nil {
		builder.WriteString("last_event_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectionSnapshots is a parsable slice of ProjectionSnapshot.
type ProjectionSnapshots []*ProjectionSnapshot
