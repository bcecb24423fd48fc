// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/officer"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Officer is the model entity for the Officer schema.
type Officer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Contact holds the value of the "contact" field.
	Contact *string `json:"contact,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OfficerQuery when eager-loading is set.
	Edges        OfficerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OfficerEdges holds the relations/edges for other nodes in the graph.
type OfficerEdges struct {
	// AssignedReports holds the value of the assigned_reports edge.
	AssignedReports []*Report `json:"assigned_reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AssignedReportsOrErr returns the AssignedReports value or an error if the edge
// was not loaded in eager-loading.
func (e OfficerEdges) AssignedReportsOrErr() ([]*Report, error) {
	if e.loadedTypes[0] {
		return e.AssignedReports, nil
	}
	return nil, &NotLoadedError{edge: "assigned_reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Officer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case officer.FieldName, officer.FieldDepartment, officer.FieldContact:
			values[i] = new(sql.NullString)
		case officer.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Officer fields.
func (_m *Officer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case officer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case officer.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case officer.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case officer.FieldContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact", values[i])
			} else if value.Valid {
				_m.Contact = new(string)
				*_m.Contact = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Officer.
// This includes values selected through modifiers, order, etc.
func (_m *Officer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignedReports queries the "assigned_reports" edge of the Officer entity.
func (_m *Officer) QueryAssignedReports() *ReportQuery {
	return NewOfficerClient(_m.config).QueryAssignedReports(_m)
}

// Update returns a builder for updating this Officer.
// Note that you need to call Officer.Unwrap() before calling this method if this Officer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Officer) Update() *OfficerUpdateOne {
	return NewOfficerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Officer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Officer) Unwrap() *Officer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Officer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Officer) String() string {
	var builder strings.Builder
	builder.WriteString("Officer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	if v := _m.Contact; v != nil {
		builder.WriteString("contact=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Officers is a parsable slice of Officer.
type Officers []*Officer
