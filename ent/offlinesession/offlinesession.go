// Code generated by ent, DO NOT EDIT.

package offlinesession

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the offlinesession type in the database.
	Label = "offline_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldDesiredRetention holds the string denoting the desired_retention field in the database.
	FieldDesiredRetention = "desired_retention"
	// FieldFocusMode holds the string denoting the focus_mode field in the database.
	FieldFocusMode = "focus_mode"
	// FieldCards holds the string denoting the cards field in the database.
	FieldCards = "cards"
	// FieldConsumed holds the string denoting the consumed field in the database.
	FieldConsumed = "consumed"
	// Table holds the table name of the offlinesession in the database.
	Table = "offline_sessions"
)

// Columns holds all SQL columns for offlinesession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCreatedAt,
	FieldExpiresAt,
	FieldDesiredRetention,
	FieldFocusMode,
	FieldCards,
	FieldConsumed,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultFocusMode holds the default value on creation for the "focus_mode" field.
	DefaultFocusMode bool
	// DefaultConsumed holds the default value on creation for the "consumed" field.
	DefaultConsumed bool
)

// OrderOption defines the ordering options for the OfflineSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByDesiredRetention orders the results by the desired_retention field.
func ByDesiredRetention(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesiredRetention, opts...).ToFunc()
}

// ByFocusMode orders the results by the focus_mode field.
func ByFocusMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusMode, opts...).ToFunc()
}

// ByConsumed orders the results by the consumed field.
func ByConsumed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumed, opts...).ToFunc()
}
