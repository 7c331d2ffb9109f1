// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AbuseTelemetry is the predicate function for abusetelemetry builders.
type AbuseTelemetry func(*sql.Selector)

// AccessLogEntry is the predicate function for accesslogentry builders.
type AccessLogEntry func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ProjectionSnapshot is the predicate function for projectionsnapshot builders.
type ProjectionSnapshot func(*sql.Selector)
