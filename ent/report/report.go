// Code generated by ent, DO NOT EDIT.

package report

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldSubcategoryID holds the string denoting the subcategory_id field in the database.
	FieldSubcategoryID = "subcategory_id"
	// FieldLocationAddress holds the string denoting the location_address field in the database.
	FieldLocationAddress = "location_address"
	// FieldLocationLat holds the string denoting the location_lat field in the database.
	FieldLocationLat = "location_lat"
	// FieldLocationLng holds the string denoting the location_lng field in the database.
	FieldLocationLng = "location_lng"
	// FieldImageRefs holds the string denoting the image_refs field in the database.
	FieldImageRefs = "image_refs"
	// FieldAssignedOfficerID holds the string denoting the assigned_officer_id field in the database.
	FieldAssignedOfficerID = "assigned_officer_id"
	// FieldResolutionDetails holds the string denoting the resolution_details field in the database.
	FieldResolutionDetails = "resolution_details"
	// FieldReporterID holds the string denoting the reporter_id field in the database.
	FieldReporterID = "reporter_id"
	// EdgeReporter holds the string denoting the reporter edge name in mutations.
	EdgeReporter = "reporter"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// EdgeSubcategory holds the string denoting the subcategory edge name in mutations.
	EdgeSubcategory = "subcategory"
	// EdgeAssignedOfficer holds the string denoting the assigned_officer edge name in mutations.
	EdgeAssignedOfficer = "assigned_officer"
	// EdgeImages holds the string denoting the images edge name in mutations.
	EdgeImages = "images"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// ReporterTable is the table that holds the reporter relation/edge.
	ReporterTable = "reports"
	// ReporterInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ReporterInverseTable = "users"
	// ReporterColumn is the table column denoting the reporter relation/edge.
	ReporterColumn = "reporter_id"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "reports"
	// CategoryInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoryInverseTable = "categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_id"
	// SubcategoryTable is the table that holds the subcategory relation/edge.
	SubcategoryTable = "reports"
	// SubcategoryInverseTable is the table name for the Subcategory entity.
	// It exists in this package in order to avoid circular dependency with the "subcategory" package.
	SubcategoryInverseTable = "subcategories"
	// SubcategoryColumn is the table column denoting the subcategory relation/edge.
	SubcategoryColumn = "subcategory_id"
	// AssignedOfficerTable is the table that holds the assigned_officer relation/edge.
	AssignedOfficerTable = "reports"
	// AssignedOfficerInverseTable is the table name for the Officer entity.
	// It exists in this package in order to avoid circular dependency with the "officer" package.
	AssignedOfficerInverseTable = "officers"
	// AssignedOfficerColumn is the table column denoting the assigned_officer relation/edge.
	AssignedOfficerColumn = "assigned_officer_id"
	// ImagesTable is the table that holds the images relation/edge.
	ImagesTable = "media"
	// ImagesInverseTable is the table name for the Media entity.
	// It exists in this package in order to avoid circular dependency with the "media" package.
	ImagesInverseTable = "media"
	// ImagesColumn is the table column denoting the images relation/edge.
	ImagesColumn = "report_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldDescription,
	FieldType,
	FieldStatus,
	FieldCategoryID,
	FieldSubcategoryID,
	FieldLocationAddress,
	FieldLocationLat,
	FieldLocationLng,
	FieldImageRefs,
	FieldAssignedOfficerID,
	FieldResolutionDetails,
	FieldReporterID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// LocationAddressValidator is a validator for the "location_address" field. It is called by the builders before save.
	LocationAddressValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeEmergency    Type = "emergency"
	TypeNonEmergency Type = "non_emergency"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeEmergency, TypeNonEmergency:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// BySubcategoryID orders the results by the subcategory_id field.
func BySubcategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategoryID, opts...).ToFunc()
}

// ByLocationAddress orders the results by the location_address field.
func ByLocationAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationAddress, opts...).ToFunc()
}

// ByLocationLat orders the results by the location_lat field.
func ByLocationLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationLat, opts...).ToFunc()
}

// ByLocationLng orders the results by the location_lng field.
func ByLocationLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationLng, opts...).ToFunc()
}

// ByAssignedOfficerID orders the results by the assigned_officer_id field.
func ByAssignedOfficerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedOfficerID, opts...).ToFunc()
}

// ByResolutionDetails orders the results by the resolution_details field.
func ByResolutionDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionDetails, opts...).ToFunc()
}

// ByReporterID orders the results by the reporter_id field.
func ByReporterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReporterID, opts...).ToFunc()
}

// ByReporterField orders the results by reporter field.
func ByReporterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReporterStep(), sql.OrderByField(field, opts...))
	}
}

// ByCategoryField orders the results by category field.
func ByCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryStep(), sql.OrderByField(field, opts...))
	}
}

// BySubcategoryField orders the results by subcategory field.
func BySubcategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubcategoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignedOfficerField orders the results by assigned_officer field.
func ByAssignedOfficerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignedOfficerStep(), sql.OrderByField(field, opts...))
	}
}

// ByImagesCount orders the results by images count.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagesStep(), opts...)
	}
}

// ByImages orders the results by images terms.
func ByImages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReporterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReporterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
	)
}
func newCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
	)
}
func newSubcategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubcategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubcategoryTable, SubcategoryColumn),
	)
}
func newAssignedOfficerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignedOfficerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AssignedOfficerTable, AssignedOfficerColumn),
	)
}
func newImagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
	)
}
