package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AbuseTelemetry holds the schema definition for adaptive abuse gate
// decision records. Rows are written on throttle/block/recovery, when
// any risk signal fired, and for a sampled slice of plain allows.
type AbuseTelemetry struct {
	ent.Schema
}

// Fields of the AbuseTelemetry.
func (AbuseTelemetry) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),
		field.String("profile").
			Immutable(),
		field.String("path").
			Immutable(),
		field.String("method").
			Immutable(),
		field.String("action").
			Immutable().
			Comment("allow | throttle | block | recovery"),
		field.Int("risk_score").
			Immutable(),
		field.Bool("cooldown_active").
			Default(false).
			Immutable(),
		field.Time("cooldown_until").
			Optional().
			Nillable().
			Immutable(),
		field.Int("total_requests_60s").
			Immutable(),
		field.Int("denied_requests_60s").
			Immutable(),
		field.Int("unique_paths_60s").
			Immutable(),
		field.Int("context_reads_60s").
			Immutable(),
		field.Float("denied_ratio_60s").
			Immutable(),
		field.JSON("signals", []string{}).
			Immutable(),
		field.Bool("false_positive_hint").
			Default(false).
			Immutable(),
		field.String("ux_impact_hint").
			Default("").
			Immutable(),
		field.Int("response_status_code").
			Immutable(),
		field.Int("response_time_ms").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AbuseTelemetry.
func (AbuseTelemetry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("action", "created_at"),
	}
}
