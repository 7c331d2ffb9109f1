package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProjectionSnapshot holds the schema definition for materialized read
// models. External projection workers own the write side; this service
// only reads snapshots for context bundles and read-after-write
// verification.
type ProjectionSnapshot struct {
	ent.Schema
}

// Fields of the ProjectionSnapshot.
func (ProjectionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),
		field.String("projection_type"),
		field.String("key"),
		field.JSON("data", map[string]interface{}{}),
		field.Int64("version").
			Default(0),
		field.UUID("last_event_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Highest event id folded into this snapshot"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProjectionSnapshot.
func (ProjectionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "projection_type", "key").
			Unique(),
	}
}
