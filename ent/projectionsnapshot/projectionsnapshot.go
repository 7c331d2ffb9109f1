// Code generated by ent, DO NOT EDIT.

package projectionsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the projectionsnapshot type in the database.
	Label = "projection_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldProjectionType holds the string denoting the projection_type field in the database.
	FieldProjectionType = "projection_type"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldLastEventID holds the string denoting the last_event_id field in the database.
	FieldLastEventID = "last_event_id"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the projectionsnapshot in the database.
	Table = "projection_snapshots"
)

// Columns holds all SQL columns for projectionsnapshot fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldProjectionType,
	FieldKey,
	FieldData,
	FieldVersion,
	FieldLastEventID,
	FieldUpdatedAt,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProjectionSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByProjectionType orders the results by the projection_type field.
func ByProjectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectionType, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByLastEventID orders the results by the last_event_id field.
func ByLastEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastEventID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
