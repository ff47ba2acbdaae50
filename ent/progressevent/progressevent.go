// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressevent type in the database.
	Label = "progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldRoadmapTitle holds the string denoting the roadmap_title field in the database.
	FieldRoadmapTitle = "roadmap_title"
	// FieldNsqfLevel holds the string denoting the nsqf_level field in the database.
	FieldNsqfLevel = "nsqf_level"
	// FieldXpDelta holds the string denoting the xp_delta field in the database.
	FieldXpDelta = "xp_delta"
	// FieldBadgeID holds the string denoting the badge_id field in the database.
	FieldBadgeID = "badge_id"
	// Table holds the table name of the progressevent in the database.
	Table = "progress_events"
)

// Columns holds all SQL columns for progressevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEmail,
	FieldAction,
	FieldStepID,
	FieldRoadmapTitle,
	FieldNsqfLevel,
	FieldXpDelta,
	FieldBadgeID,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultNsqfLevel holds the default value on creation for the "nsqf_level" field.
	DefaultNsqfLevel int
	// DefaultXpDelta holds the default value on creation for the "xp_delta" field.
	DefaultXpDelta int
)

// OrderOption defines the ordering options for the ProgressEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByRoadmapTitle orders the results by the roadmap_title field.
func ByRoadmapTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapTitle, opts...).ToFunc()
}

// ByNsqfLevel orders the results by the nsqf_level field.
func ByNsqfLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNsqfLevel, opts...).ToFunc()
}

// ByXpDelta orders the results by the xp_delta field.
func ByXpDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpDelta, opts...).ToFunc()
}

// ByBadgeID orders the results by the badge_id field.
func ByBadgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeID, opts...).ToFunc()
}
