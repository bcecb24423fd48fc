// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/media"
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/predicate"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/ent/subcategory"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdate) SetTitle(v string) *ReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTitle(v *string) *ReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReportUpdate) SetDescription(v string) *ReportUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDescription(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v report.Status) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *report.Status) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ReportUpdate) SetCategoryID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCategoryID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetSubcategoryID sets the "subcategory_id" field.
func (_u *ReportUpdate) SetSubcategoryID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetSubcategoryID(v)
	return _u
}

// SetNillableSubcategoryID sets the "subcategory_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSubcategoryID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetSubcategoryID(*v)
	}
	return _u
}

// ClearSubcategoryID clears the value of the "subcategory_id" field.
func (_u *ReportUpdate) ClearSubcategoryID() *ReportUpdate {
	_u.mutation.ClearSubcategoryID()
	return _u
}

// SetLocationAddress sets the "location_address" field.
func (_u *ReportUpdate) SetLocationAddress(v string) *ReportUpdate {
	_u.mutation.SetLocationAddress(v)
	return _u
}

// SetNillableLocationAddress sets the "location_address" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLocationAddress(v *string) *ReportUpdate {
	if v != nil {
		_u.SetLocationAddress(*v)
	}
	return _u
}

// ClearLocationAddress clears the value of the "location_address" field.
func (_u *ReportUpdate) ClearLocationAddress() *ReportUpdate {
	_u.mutation.ClearLocationAddress()
	return _u
}

// SetLocationLat sets the "location_lat" field.
func (_u *ReportUpdate) SetLocationLat(v float64) *ReportUpdate {
	_u.mutation.ResetLocationLat()
	_u.mutation.SetLocationLat(v)
	return _u
}

// SetNillableLocationLat sets the "location_lat" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLocationLat(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLocationLat(*v)
	}
	return _u
}

// AddLocationLat adds value to the "location_lat" field.
func (_u *ReportUpdate) AddLocationLat(v float64) *ReportUpdate {
	_u.mutation.AddLocationLat(v)
	return _u
}

// ClearLocationLat clears the value of the "location_lat" field.
func (_u *ReportUpdate) ClearLocationLat() *ReportUpdate {
	_u.mutation.ClearLocationLat()
	return _u
}

// SetLocationLng sets the "location_lng" field.
func (_u *ReportUpdate) SetLocationLng(v float64) *ReportUpdate {
	_u.mutation.ResetLocationLng()
	_u.mutation.SetLocationLng(v)
	return _u
}

// SetNillableLocationLng sets the "location_lng" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLocationLng(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLocationLng(*v)
	}
	return _u
}

// AddLocationLng adds value to the "location_lng" field.
func (_u *ReportUpdate) AddLocationLng(v float64) *ReportUpdate {
	_u.mutation.AddLocationLng(v)
	return _u
}

// ClearLocationLng clears the value of the "location_lng" field.
func (_u *ReportUpdate) ClearLocationLng() *ReportUpdate {
	_u.mutation.ClearLocationLng()
	return _u
}

// SetImageRefs sets the "image_refs" field.
func (_u *ReportUpdate) SetImageRefs(v []string) *ReportUpdate {
	_u.mutation.SetImageRefs(v)
	return _u
}

// AppendImageRefs appends value to the "image_refs" field.
func (_u *ReportUpdate) AppendImageRefs(v []string) *ReportUpdate {
	_u.mutation.AppendImageRefs(v)
	return _u
}

// ClearImageRefs clears the value of the "image_refs" field.
func (_u *ReportUpdate) ClearImageRefs() *ReportUpdate {
	_u.mutation.ClearImageRefs()
	return _u
}

// SetAssignedOfficerID sets the "assigned_officer_id" field.
func (_u *ReportUpdate) SetAssignedOfficerID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetAssignedOfficerID(v)
	return _u
}

// SetNillableAssignedOfficerID sets the "assigned_officer_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAssignedOfficerID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetAssignedOfficerID(*v)
	}
	return _u
}

// ClearAssignedOfficerID clears the value of the "assigned_officer_id" field.
func (_u *ReportUpdate) ClearAssignedOfficerID() *ReportUpdate {
	_u.mutation.ClearAssignedOfficerID()
	return _u
}

// SetResolutionDetails sets the "resolution_details" field.
func (_u *ReportUpdate) SetResolutionDetails(v string) *ReportUpdate {
	_u.mutation.SetResolutionDetails(v)
	return _u
}

// SetNillableResolutionDetails sets the "resolution_details" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableResolutionDetails(v *string) *ReportUpdate {
	if v != nil {
		_u.SetResolutionDetails(*v)
	}
	return _u
}

// ClearResolutionDetails clears the value of the "resolution_details" field.
func (_u *ReportUpdate) ClearResolutionDetails() *ReportUpdate {
	_u.mutation.ClearResolutionDetails()
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *ReportUpdate) SetCategory(v *Category) *ReportUpdate {
	return _u.SetCategoryID(v.ID)
}

// SetSubcategory sets the "subcategory" edge to the Subcategory entity.
func (_u *ReportUpdate) SetSubcategory(v *Subcategory) *ReportUpdate {
	return _u.SetSubcategoryID(v.ID)
}

// SetAssignedOfficer sets the "assigned_officer" edge to the Officer entity.
func (_u *ReportUpdate) SetAssignedOfficer(v *Officer) *ReportUpdate {
	return _u.SetAssignedOfficerID(v.ID)
}

// AddImageIDs adds the "images" edge to the Media entity by IDs.
func (_u *ReportUpdate) AddImageIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the Media entity.
func (_u *ReportUpdate) AddImages(v ...*Media) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *ReportUpdate) ClearCategory() *ReportUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearSubcategory clears the "subcategory" edge to the Subcategory entity.
func (_u *ReportUpdate) ClearSubcategory() *ReportUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// ClearAssignedOfficer clears the "assigned_officer" edge to the Officer entity.
func (_u *ReportUpdate) ClearAssignedOfficer() *ReportUpdate {
	_u.mutation.ClearAssignedOfficer()
	return _u
}

// ClearImages clears all "images" edges to the Media entity.
func (_u *ReportUpdate) ClearImages() *ReportUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to Media entities by IDs.
func (_u *ReportUpdate) RemoveImageIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to Media entities.
func (_u *ReportUpdate) RemoveImages(v ...*Media) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationAddress(); ok {
		if err := report.LocationAddressValidator(v); err != nil {
			return &ValidationError{Name: "location_address", err: fmt.Errorf(`ent: validator failed for field "Report.location_address": %w`, err)}
		}
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.reporter"`)
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.category"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LocationAddress(); ok {
		_spec.SetField(report.FieldLocationAddress, field.TypeString, value)
	}
	if _u.mutation.LocationAddressCleared() {
		_spec.ClearField(report.FieldLocationAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LocationLat(); ok {
		_spec.SetField(report.FieldLocationLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationLat(); ok {
		_spec.AddField(report.FieldLocationLat, field.TypeFloat64, value)
	}
	if _u.mutation.LocationLatCleared() {
		_spec.ClearField(report.FieldLocationLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LocationLng(); ok {
		_spec.SetField(report.FieldLocationLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationLng(); ok {
		_spec.AddField(report.FieldLocationLng, field.TypeFloat64, value)
	}
	if _u.mutation.LocationLngCleared() {
		_spec.ClearField(report.FieldLocationLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ImageRefs(); ok {
		_spec.SetField(report.FieldImageRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldImageRefs, value)
		})
	}
	if _u.mutation.ImageRefsCleared() {
		_spec.ClearField(report.FieldImageRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolutionDetails(); ok {
		_spec.SetField(report.FieldResolutionDetails, field.TypeString, value)
	}
	if _u.mutation.ResolutionDetailsCleared() {
		_spec.ClearField(report.FieldResolutionDetails, field.TypeString)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubcategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.SubcategoryTable,
			Columns: []string{report.SubcategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubcategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.SubcategoryTable,
			Columns: []string{report.SubcategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedOfficerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.AssignedOfficerTable,
			Columns: []string{report.AssignedOfficerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedOfficerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.AssignedOfficerTable,
			Columns: []string{report.AssignedOfficerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagesTable,
			Columns: []string{report.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagesTable,
			Columns: []string{report.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagesTable,
			Columns: []string{report.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdateOne) SetTitle(v string) *ReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTitle(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReportUpdateOne) SetDescription(v string) *ReportUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDescription(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v report.Status) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *report.Status) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ReportUpdateOne) SetCategoryID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCategoryID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetSubcategoryID sets the "subcategory_id" field.
func (_u *ReportUpdateOne) SetSubcategoryID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetSubcategoryID(v)
	return _u
}

// SetNillableSubcategoryID sets the "subcategory_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSubcategoryID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetSubcategoryID(*v)
	}
	return _u
}

// ClearSubcategoryID clears the value of the "subcategory_id" field.
func (_u *ReportUpdateOne) ClearSubcategoryID() *ReportUpdateOne {
	_u.mutation.ClearSubcategoryID()
	return _u
}

// SetLocationAddress sets the "location_address" field.
func (_u *ReportUpdateOne) SetLocationAddress(v string) *ReportUpdateOne {
	_u.mutation.SetLocationAddress(v)
	return _u
}

// SetNillableLocationAddress sets the "location_address" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLocationAddress(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetLocationAddress(*v)
	}
	return _u
}

// ClearLocationAddress clears the value of the "location_address" field.
func (_u *ReportUpdateOne) ClearLocationAddress() *ReportUpdateOne {
	_u.mutation.ClearLocationAddress()
	return _u
}

// SetLocationLat sets the "location_lat" field.
func (_u *ReportUpdateOne) SetLocationLat(v float64) *ReportUpdateOne {
	_u.mutation.ResetLocationLat()
	_u.mutation.SetLocationLat(v)
	return _u
}

// SetNillableLocationLat sets the "location_lat" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLocationLat(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLocationLat(*v)
	}
	return _u
}

// AddLocationLat adds value to the "location_lat" field.
func (_u *ReportUpdateOne) AddLocationLat(v float64) *ReportUpdateOne {
	_u.mutation.AddLocationLat(v)
	return _u
}

// ClearLocationLat clears the value of the "location_lat" field.
func (_u *ReportUpdateOne) ClearLocationLat() *ReportUpdateOne {
	_u.mutation.ClearLocationLat()
	return _u
}

// SetLocationLng sets the "location_lng" field.
func (_u *ReportUpdateOne) SetLocationLng(v float64) *ReportUpdateOne {
	_u.mutation.ResetLocationLng()
	_u.mutation.SetLocationLng(v)
	return _u
}

// SetNillableLocationLng sets the "location_lng" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLocationLng(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLocationLng(*v)
	}
	return _u
}

// AddLocationLng adds value to the "location_lng" field.
func (_u *ReportUpdateOne) AddLocationLng(v float64) *ReportUpdateOne {
	_u.mutation.AddLocationLng(v)
	return _u
}

// ClearLocationLng clears the value of the "location_lng" field.
func (_u *ReportUpdateOne) ClearLocationLng() *ReportUpdateOne {
	_u.mutation.ClearLocationLng()
	return _u
}

// SetImageRefs sets the "image_refs" field.
func (_u *ReportUpdateOne) SetImageRefs(v []string) *ReportUpdateOne {
	_u.mutation.SetImageRefs(v)
	return _u
}

// AppendImageRefs appends value to the "image_refs" field.
func (_u *ReportUpdateOne) AppendImageRefs(v []string) *ReportUpdateOne {
	_u.mutation.AppendImageRefs(v)
	return _u
}

// ClearImageRefs clears the value of the "image_refs" field.
func (_u *ReportUpdateOne) ClearImageRefs() *ReportUpdateOne {
	_u.mutation.ClearImageRefs()
	return _u
}

// SetAssignedOfficerID sets the "assigned_officer_id" field.
func (_u *ReportUpdateOne) SetAssignedOfficerID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetAssignedOfficerID(v)
	return _u
}

// SetNillableAssignedOfficerID sets the "assigned_officer_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAssignedOfficerID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetAssignedOfficerID(*v)
	}
	return _u
}

// ClearAssignedOfficerID clears the value of the "assigned_officer_id" field.
func (_u *ReportUpdateOne) ClearAssignedOfficerID() *ReportUpdateOne {
	_u.mutation.ClearAssignedOfficerID()
	return _u
}

// SetResolutionDetails sets the "resolution_details" field.
func (_u *ReportUpdateOne) SetResolutionDetails(v string) *ReportUpdateOne {
	_u.mutation.SetResolutionDetails(v)
	return _u
}

// SetNillableResolutionDetails sets the "resolution_details" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableResolutionDetails(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetResolutionDetails(*v)
	}
	return _u
}

// ClearResolutionDetails clears the value of the "resolution_details" field.
func (_u *ReportUpdateOne) ClearResolutionDetails() *ReportUpdateOne {
	_u.mutation.ClearResolutionDetails()
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *ReportUpdateOne) SetCategory(v *Category) *ReportUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// SetSubcategory sets the "subcategory" edge to the Subcategory entity.
func (_u *ReportUpdateOne) SetSubcategory(v *Subcategory) *ReportUpdateOne {
	return _u.SetSubcategoryID(v.ID)
}

// SetAssignedOfficer sets the "assigned_officer" edge to the Officer entity.
func (_u *ReportUpdateOne) SetAssignedOfficer(v *Officer) *ReportUpdateOne {
	return _u.SetAssignedOfficerID(v.ID)
}

// AddImageIDs adds the "images" edge to the Media entity by IDs.
func (_u *ReportUpdateOne) AddImageIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the Media entity.
func (_u *ReportUpdateOne) AddImages(v ...*Media) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *ReportUpdateOne) ClearCategory() *ReportUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearSubcategory clears the "subcategory" edge to the Subcategory entity.
func (_u *ReportUpdateOne) ClearSubcategory() *ReportUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// ClearAssignedOfficer clears the "assigned_officer" edge to the Officer entity.
func (_u *ReportUpdateOne) ClearAssignedOfficer() *ReportUpdateOne {
	_u.mutation.ClearAssignedOfficer()
	return _u
}

// ClearImages clears all "images" edges to the Media entity.
func (_u *ReportUpdateOne) ClearImages() *ReportUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to Media entities by IDs.
func (_u *ReportUpdateOne) RemoveImageIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to Media entities.
func (_u *ReportUpdateOne) RemoveImages(v ...*Media) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationAddress(); ok {
		if err := report.LocationAddressValidator(v); err != nil {
			return &ValidationError{Name: "location_address", err: fmt.Errorf(`ent: validator failed for field "Report.location_address": %w`, err)}
		}
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.reporter"`)
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.category"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LocationAddress(); ok {
		_spec.SetField(report.FieldLocationAddress, field.TypeString, value)
	}
	if _u.mutation.LocationAddressCleared() {
		_spec.ClearField(report.FieldLocationAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LocationLat(); ok {
		_spec.SetField(report.FieldLocationLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationLat(); ok {
		_spec.AddField(report.FieldLocationLat, field.TypeFloat64, value)
	}
	if _u.mutation.LocationLatCleared() {
		_spec.ClearField(report.FieldLocationLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LocationLng(); ok {
		_spec.SetField(report.FieldLocationLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationLng(); ok {
		_spec.AddField(report.FieldLocationLng, field.TypeFloat64, value)
	}
	if _u.mutation.LocationLngCleared() {
		_spec.ClearField(report.FieldLocationLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ImageRefs(); ok {
		_spec.SetField(report.FieldImageRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldImageRefs, value)
		})
	}
	if _u.mutation.ImageRefsCleared() {
		_spec.ClearField(report.FieldImageRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolutionDetails(); ok {
		_spec.SetField(report.FieldResolutionDetails, field.TypeString, value)
	}
	if _u.mutation.ResolutionDetailsCleared() {
		_spec.ClearField(report.FieldResolutionDetails, field.TypeString)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubcategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.SubcategoryTable,
			Columns: []string{report.SubcategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubcategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.SubcategoryTable,
			Columns: []string{report.SubcategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedOfficerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.AssignedOfficerTable,
			Columns: []string{report.AssignedOfficerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedOfficerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.AssignedOfficerTable,
			Columns: []string{report.AssignedOfficerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagesTable,
			Columns: []string{report.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagesTable,
			Columns: []string{report.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImagesTable,
			Columns: []string{report.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
