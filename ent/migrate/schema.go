// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AbuseTelemetriesColumns holds the columns for the "abuse_telemetries" table.
	AbuseTelemetriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "profile", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "risk_score", Type: field.TypeInt},
		{Name: "cooldown_active", Type: field.TypeBool, Default: false},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "total_requests_60s", Type: field.TypeInt},
		{Name: "denied_requests_60s", Type: field.TypeInt},
		{Name: "unique_paths_60s", Type: field.TypeInt},
		{Name: "context_reads_60s", Type: field.TypeInt},
		{Name: "denied_ratio_60s", Type: field.TypeFloat64},
		{Name: "signals", Type: field.TypeJSON},
		{Name: "false_positive_hint", Type: field.TypeBool, Default: false},
		{Name: "ux_impact_hint", Type: field.TypeString, Default: ""},
		{Name: "response_status_code", Type: field.TypeInt},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AbuseTelemetriesTable holds the schema information for the "abuse_telemetries" table.
	AbuseTelemetriesTable = &schema.Table{
		Name:       "abuse_telemetries",
		Columns:    AbuseTelemetriesColumns,
		PrimaryKey: []*schema.Column{AbuseTelemetriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "abusetelemetry_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AbuseTelemetriesColumns[1], AbuseTelemetriesColumns[19]},
			},
			{
				Name:    "abusetelemetry_action_created_at",
				Unique:  false,
				Columns: []*schema.Column{AbuseTelemetriesColumns[5], AbuseTelemetriesColumns[19]},
			},
		},
	}
	// AccessLogEntriesColumns holds the columns for the "access_log_entries" table.
	AccessLogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "path", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "response_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// AccessLogEntriesTable holds the schema information for the "access_log_entries" table.
	AccessLogEntriesTable = &schema.Table{
		Name:       "access_log_entries",
		Columns:    AccessLogEntriesColumns,
		PrimaryKey: []*schema.Column{AccessLogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "accesslogentry_owner_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{AccessLogEntriesColumns[1], AccessLogEntriesColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON},
		{Name: "idempotency_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_owner_id_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[6]},
			},
			{
				Name:    "event_owner_id_occurred_at_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_owner_id_event_type_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3], EventsColumns[2]},
			},
		},
	}
	// ProjectionSnapshotsColumns holds the columns for the "projection_snapshots" table.
	ProjectionSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "projection_type", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "last_event_id", Type: field.TypeUUID, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectionSnapshotsTable holds the schema information for the "projection_snapshots" table.
	ProjectionSnapshotsTable = &schema.Table{
		Name:       "projection_snapshots",
		Columns:    ProjectionSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProjectionSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "projectionsnapshot_owner_id_projection_type_key",
				Unique:  true,
				Columns: []*schema.Column{ProjectionSnapshotsColumns[1], ProjectionSnapshotsColumns[2], ProjectionSnapshotsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AbuseTelemetriesTable,
		AccessLogEntriesTable,
		EventsTable,
		ProjectionSnapshotsTable,
	}
)

func init() {
}
