// Code generated by ent, DO NOT EDIT.

package officer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the officer type in the database.
	Label = "officer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldContact holds the string denoting the contact field in the database.
	FieldContact = "contact"
	// EdgeAssignedReports holds the string denoting the assigned_reports edge name in mutations.
	EdgeAssignedReports = "assigned_reports"
	// Table holds the table name of the officer in the database.
	Table = "officers"
	// AssignedReportsTable is the table that holds the assigned_reports relation/edge.
	AssignedReportsTable = "reports"
	// AssignedReportsInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	AssignedReportsInverseTable = "reports"
	// AssignedReportsColumn is the table column denoting the assigned_reports relation/edge.
	AssignedReportsColumn = "assigned_officer_id"
)

// Columns holds all SQL columns for officer fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDepartment,
	FieldContact,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// ContactValidator is a validator for the "contact" field. It is called by the builders before save.
	ContactValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Officer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByContact orders the results by the contact field.
func ByContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContact, opts...).ToFunc()
}

// ByAssignedReportsCount orders the results by assigned_reports count.
func ByAssignedReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignedReportsStep(), opts...)
	}
}

// ByAssignedReports orders the results by assigned_reports terms.
func ByAssignedReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignedReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAssignedReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignedReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignedReportsTable, AssignedReportsColumn),
	)
}
