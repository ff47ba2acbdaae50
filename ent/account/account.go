// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldDesignation holds the string denoting the designation field in the database.
	FieldDesignation = "designation"
	// FieldEducationStage holds the string denoting the education_stage field in the database.
	FieldEducationStage = "education_stage"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldPassword holds the string denoting the password field in the database.
	FieldPassword = "password"
	// FieldStats holds the string denoting the stats field in the database.
	FieldStats = "stats"
	// FieldCurrentRoadmap holds the string denoting the current_roadmap field in the database.
	FieldCurrentRoadmap = "current_roadmap"
	// FieldRoadmapHistory holds the string denoting the roadmap_history field in the database.
	FieldRoadmapHistory = "roadmap_history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the account in the database.
	Table = "accounts"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldFirstName,
	FieldLastName,
	FieldDesignation,
	FieldEducationStage,
	FieldAge,
	FieldPassword,
	FieldStats,
	FieldCurrentRoadmap,
	FieldRoadmapHistory,
	FieldCreatedAt,
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
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// DefaultAge holds the default value on creation for the "age" field.
	DefaultAge int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EducationStage defines the type for the "education_stage" enum field.
type EducationStage string

// EducationStageDiscovery is the default value of the EducationStage enum.
const DefaultEducationStage = EducationStageDiscovery

// EducationStage values.
const (
	EducationStageDiscovery   EducationStage = "discovery"
	EducationStageDirection   EducationStage = "direction"
	EducationStageCommitment  EducationStage = "commitment"
	EducationStageProgression EducationStage = "progression"
)

func (es EducationStage) String() string {
	return string(es)
}

// EducationStageValidator is a validator for the "education_stage" field enum values. It is called by the builders before save.
func EducationStageValidator(es EducationStage) error {
	switch es {
	case EducationStageDiscovery, EducationStageDirection, EducationStageCommitment, EducationStageProgression:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for education_stage field: %q", es)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByDesignation orders the results by the designation field.
func ByDesignation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignation, opts...).ToFunc()
}

// ByEducationStage orders the results by the education_stage field.
func ByEducationStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEducationStage, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByPassword orders the results by the password field.
func ByPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassword, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
