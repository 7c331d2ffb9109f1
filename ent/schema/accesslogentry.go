package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AccessLogEntry holds the schema definition for per-request access
// log rows. The adaptive abuse gate derives its 60-second signal
// snapshot from this table.
type AccessLogEntry struct {
	ent.Schema
}

// Fields of the AccessLogEntry.
func (AccessLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),
		field.String("path").
			Immutable(),
		field.String("method").
			Immutable(),
		field.Int("status_code").
			Immutable(),
		field.Int("response_time_ms").
			Default(0).
			Immutable(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AccessLogEntry.
func (AccessLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Snapshot window scan.
		index.Fields("owner_id", "occurred_at"),
	}
}
