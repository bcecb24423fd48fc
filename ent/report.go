// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/ent/subcategory"
	"CivicReportAPI/ent/user"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Type holds the value of the "type" field.
	Type report.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status report.Status `json:"status,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID uuid.UUID `json:"category_id,omitempty"`
	// SubcategoryID holds the value of the "subcategory_id" field.
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	// LocationAddress holds the value of the "location_address" field.
	LocationAddress *string `json:"location_address,omitempty"`
	// LocationLat holds the value of the "location_lat" field.
	LocationLat *float64 `json:"location_lat,omitempty"`
	// LocationLng holds the value of the "location_lng" field.
	LocationLng *float64 `json:"location_lng,omitempty"`
	// ImageRefs holds the value of the "image_refs" field.
	ImageRefs []string `json:"image_refs,omitempty"`
	// AssignedOfficerID holds the value of the "assigned_officer_id" field.
	AssignedOfficerID *uuid.UUID `json:"assigned_officer_id,omitempty"`
	// ResolutionDetails holds the value of the "resolution_details" field.
	ResolutionDetails *string `json:"resolution_details,omitempty"`
	// ReporterID holds the value of the "reporter_id" field.
	ReporterID uuid.UUID `json:"reporter_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportQuery when eager-loading is set.
	Edges        ReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEdges holds the relations/edges for other nodes in the graph.
type ReportEdges struct {
	// Reporter holds the value of the reporter edge.
	Reporter *User `json:"reporter,omitempty"`
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// Subcategory holds the value of the subcategory edge.
	Subcategory *Subcategory `json:"subcategory,omitempty"`
	// AssignedOfficer holds the value of the assigned_officer edge.
	AssignedOfficer *Officer `json:"assigned_officer,omitempty"`
	// Images holds the value of the images edge.
	Images []*Media `json:"images,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ReporterOrErr returns the Reporter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) ReporterOrErr() (*User, error) {
	if e.Reporter != nil {
		return e.Reporter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "reporter"}
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// SubcategoryOrErr returns the Subcategory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) SubcategoryOrErr() (*Subcategory, error) {
	if e.Subcategory != nil {
		return e.Subcategory, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: subcategory.Label}
	}
	return nil, &NotLoadedError{edge: "subcategory"}
}

// AssignedOfficerOrErr returns the AssignedOfficer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReportEdges) AssignedOfficerOrErr() (*Officer, error) {
	if e.AssignedOfficer != nil {
		return e.AssignedOfficer, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: officer.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_officer"}
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) ImagesOrErr() ([]*Media, error) {
	if e.loadedTypes[4] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldSubcategoryID, report.FieldAssignedOfficerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case report.FieldImageRefs:
			values[i] = new([]byte)
		case report.FieldLocationLat, report.FieldLocationLng:
			values[i] = new(sql.NullFloat64)
		case report.FieldTitle, report.FieldDescription, report.FieldType, report.FieldStatus, report.FieldLocationAddress, report.FieldResolutionDetails:
			values[i] = new(sql.NullString)
		case report.FieldCreatedAt, report.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case report.FieldID, report.FieldCategoryID, report.FieldReporterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case report.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case report.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case report.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = report.Type(value.String)
			}
		case report.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = report.Status(value.String)
			}
		case report.FieldCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value != nil {
				_m.CategoryID = *value
			}
		case report.FieldSubcategoryID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory_id", values[i])
			} else if value.Valid {
				_m.SubcategoryID = new(uuid.UUID)
				*_m.SubcategoryID = *value.S.(*uuid.UUID)
			}
		case report.FieldLocationAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_address", values[i])
			} else if value.Valid {
				_m.LocationAddress = new(string)
				*_m.LocationAddress = value.String
			}
		case report.FieldLocationLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field location_lat", values[i])
			} else if value.Valid {
				_m.LocationLat = new(float64)
				*_m.LocationLat = value.Float64
			}
		case report.FieldLocationLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field location_lng", values[i])
			} else if value.Valid {
				_m.LocationLng = new(float64)
				*_m.LocationLng = value.Float64
			}
		case report.FieldImageRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImageRefs); err != nil {
					return fmt.Errorf("unmarshal field image_refs: %w", err)
				}
			}
		case report.FieldAssignedOfficerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_officer_id", values[i])
			} else if value.Valid {
				_m.AssignedOfficerID = new(uuid.UUID)
				*_m.AssignedOfficerID = *value.S.(*uuid.UUID)
			}
		case report.FieldResolutionDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_details", values[i])
			} else if value.Valid {
				_m.ResolutionDetails = new(string)
				*_m.ResolutionDetails = value.String
			}
		case report.FieldReporterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field reporter_id", values[i])
			} else if value != nil {
				_m.ReporterID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReporter queries the "reporter" edge of the Report entity.
func (_m *Report) QueryReporter() *UserQuery {
	return NewReportClient(_m.config).QueryReporter(_m)
}

// QueryCategory queries the "category" edge of the Report entity.
func (_m *Report) QueryCategory() *CategoryQuery {
	return NewReportClient(_m.config).QueryCategory(_m)
}

// QuerySubcategory queries the "subcategory" edge of the Report entity.
func (_m *Report) QuerySubcategory() *SubcategoryQuery {
	return NewReportClient(_m.config).QuerySubcategory(_m)
}

// QueryAssignedOfficer queries the "assigned_officer" edge of the Report entity.
func (_m *Report) QueryAssignedOfficer() *OfficerQuery {
	return NewReportClient(_m.config).QueryAssignedOfficer(_m)
}

// QueryImages queries the "images" edge of the Report entity.
func (_m *Report) QueryImages() *MediaQuery {
	return NewReportClient(_m.config).QueryImages(_m)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	if v := _m.SubcategoryID; v != nil {
		builder.WriteString("subcategory_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LocationAddress; v != nil {
		builder.WriteString("location_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LocationLat; v != nil {
		builder.WriteString("location_lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LocationLng; v != nil {
		builder.WriteString("location_lng=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("image_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageRefs))
	builder.WriteString(", ")
	if v := _m.AssignedOfficerID; v != nil {
		builder.WriteString("assigned_officer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResolutionDetails; v != nil {
		builder.WriteString("resolution_details=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reporter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReporterID))
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report
