package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Event holds the schema definition for the immutable event log.
// Rows are append-only: there is no update path, and retraction is
// itself an event (event.retracted) referencing the original id.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Immutable().
			Comment("Time-ordered UUIDv7 assigned at append"),
		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),
		field.Time("occurred_at").
			Immutable().
			Comment("Client-supplied domain timestamp"),
		field.String("event_type").
			Immutable().
			Comment("Free-form dotted type, e.g. 'set.logged'"),
		field.JSON("data", map[string]interface{}{}).
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Immutable().
			Comment("source, agent, device, session_id, idempotency_key"),
		field.String("idempotency_key").
			Immutable().
			Comment("Mirrors metadata.idempotency_key for the unique index"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Safe-retry guarantee: one event per (owner, idempotency_key).
		index.Fields("owner_id", "idempotency_key").
			Unique(),
		// Cursor pagination order.
		index.Fields("owner_id", "occurred_at", "id"),
		// Tier aggregates and type-filtered listings.
		index.Fields("owner_id", "event_type", "occurred_at"),
	}
}
