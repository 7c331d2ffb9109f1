// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
	"github.com/jonzim-cmd/kura/ent/event"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
	"github.com/jonzim-cmd/kura/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	abusetelemetryFields := schema.AbuseTelemetry{}.Fields()
	_ = abusetelemetryFields
	// abusetelemetryDescCooldownActive is the schema descriptor for cooldown_active field.
	abusetelemetryDescCooldownActive := abusetelemetryFields[7].Descriptor()
	// abusetelemetry.DefaultCooldownActive holds the default value on creation for the cooldown_active field.
	abusetelemetry.DefaultCooldownActive = abusetelemetryDescCooldownActive.Default.(bool)
	// abusetelemetryDescFalsePositiveHint is the schema descriptor for false_positive_hint field.
	abusetelemetryDescFalsePositiveHint := abusetelemetryFields[15].Descriptor()
	// abusetelemetry.DefaultFalsePositiveHint holds the default value on creation for the false_positive_hint field.
	abusetelemetry.DefaultFalsePositiveHint = abusetelemetryDescFalsePositiveHint.Default.(bool)
	// abusetelemetryDescUxImpactHint is the schema descriptor for ux_impact_hint field.
	abusetelemetryDescUxImpactHint := abusetelemetryFields[16].Descriptor()
	// abusetelemetry.DefaultUxImpactHint holds the default value on creation for the ux_impact_hint field.
	abusetelemetry.DefaultUxImpactHint = abusetelemetryDescUxImpactHint.Default.(string)
	// abusetelemetryDescCreatedAt is the schema descriptor for created_at field.
	abusetelemetryDescCreatedAt := abusetelemetryFields[19].Descriptor()
	// abusetelemetry.DefaultCreatedAt holds the default value on creation for the created_at field.
	abusetelemetry.DefaultCreatedAt = abusetelemetryDescCreatedAt.Default.(func() time.Time)
	accesslogentryFields := schema.AccessLogEntry{}.Fields()
	_ = accesslogentryFields
	// accesslogentryDescResponseTimeMs is the schema descriptor for response_time_ms field.
	accesslogentryDescResponseTimeMs := accesslogentryFields[5].Descriptor()
	// accesslogentry.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	accesslogentry.DefaultResponseTimeMs = accesslogentryDescResponseTimeMs.Default.(int)
	// accesslogentryDescOccurredAt is the schema descriptor for occurred_at field.
	accesslogentryDescOccurredAt := accesslogentryFields[6].Descriptor()
	// accesslogentry.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	accesslogentry.DefaultOccurredAt = accesslogentryDescOccurredAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[7].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	projectionsnapshotFields := schema.ProjectionSnapshot{}.Fields()
	_ = projectionsnapshotFields
	// projectionsnapshotDescVersion is the schema descriptor for version field.
	projectionsnapshotDescVersion := projectionsnapshotFields[5].Descriptor()
	// projectionsnapshot.DefaultVersion holds the default value on creation for the version field.
	projectionsnapshot.DefaultVersion = projectionsnapshotDescVersion.Default.(int64)
	// projectionsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	projectionsnapshotDescUpdatedAt := projectionsnapshotFields[7].Descriptor()
	// projectionsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectionsnapshot.DefaultUpdatedAt = projectionsnapshotDescUpdatedAt.Default.(func() time.Time)
	// projectionsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectionsnapshot.UpdateDefaultUpdatedAt = projectionsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
