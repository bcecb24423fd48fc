// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/media"
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/ent/subcategory"
	"CivicReportAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportCreate) SetUpdatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReportCreate) SetTitle(v string) *ReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ReportCreate) SetDescription(v string) *ReportCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ReportCreate) SetType(v report.Type) *ReportCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportCreate) SetStatus(v report.Status) *ReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStatus(v *report.Status) *ReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *ReportCreate) SetCategoryID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetSubcategoryID sets the "subcategory_id" field.
func (_c *ReportCreate) SetSubcategoryID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetSubcategoryID(v)
	return _c
}

// SetNillableSubcategoryID sets the "subcategory_id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableSubcategoryID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetSubcategoryID(*v)
	}
	return _c
}

// SetLocationAddress sets the "location_address" field.
func (_c *ReportCreate) SetLocationAddress(v string) *ReportCreate {
	_c.mutation.SetLocationAddress(v)
	return _c
}

// SetNillableLocationAddress sets the "location_address" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLocationAddress(v *string) *ReportCreate {
	if v != nil {
		_c.SetLocationAddress(*v)
	}
	return _c
}

// SetLocationLat sets the "location_lat" field.
func (_c *ReportCreate) SetLocationLat(v float64) *ReportCreate {
	_c.mutation.SetLocationLat(v)
	return _c
}

// SetNillableLocationLat sets the "location_lat" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLocationLat(v *float64) *ReportCreate {
	if v != nil {
		_c.SetLocationLat(*v)
	}
	return _c
}

// SetLocationLng sets the "location_lng" field.
func (_c *ReportCreate) SetLocationLng(v float64) *ReportCreate {
	_c.mutation.SetLocationLng(v)
	return _c
}

// SetNillableLocationLng sets the "location_lng" field if the given value is not nil.
func (_c *ReportCreate) SetNillableLocationLng(v *float64) *ReportCreate {
	if v != nil {
		_c.SetLocationLng(*v)
	}
	return _c
}

// SetImageRefs sets the "image_refs" field.
func (_c *ReportCreate) SetImageRefs(v []string) *ReportCreate {
	_c.mutation.SetImageRefs(v)
	return _c
}

// SetAssignedOfficerID sets the "assigned_officer_id" field.
func (_c *ReportCreate) SetAssignedOfficerID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetAssignedOfficerID(v)
	return _c
}

// SetNillableAssignedOfficerID sets the "assigned_officer_id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableAssignedOfficerID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetAssignedOfficerID(*v)
	}
	return _c
}

// SetResolutionDetails sets the "resolution_details" field.
func (_c *ReportCreate) SetResolutionDetails(v string) *ReportCreate {
	_c.mutation.SetResolutionDetails(v)
	return _c
}

// SetNillableResolutionDetails sets the "resolution_details" field if the given value is not nil.
func (_c *ReportCreate) SetNillableResolutionDetails(v *string) *ReportCreate {
	if v != nil {
		_c.SetResolutionDetails(*v)
	}
	return _c
}

// SetReporterID sets the "reporter_id" field.
func (_c *ReportCreate) SetReporterID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetReporterID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReporter sets the "reporter" edge to the User entity.
func (_c *ReportCreate) SetReporter(v *User) *ReportCreate {
	return _c.SetReporterID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *ReportCreate) SetCategory(v *Category) *ReportCreate {
	return _c.SetCategoryID(v.ID)
}

// SetSubcategory sets the "subcategory" edge to the Subcategory entity.
func (_c *ReportCreate) SetSubcategory(v *Subcategory) *ReportCreate {
	return _c.SetSubcategoryID(v.ID)
}

// SetAssignedOfficer sets the "assigned_officer" edge to the Officer entity.
func (_c *ReportCreate) SetAssignedOfficer(v *Officer) *ReportCreate {
	return _c.SetAssignedOfficerID(v.ID)
}

// AddImageIDs adds the "images" edge to the Media entity by IDs.
func (_c *ReportCreate) AddImageIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the Media entity.
func (_c *ReportCreate) AddImages(v ...*Media) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := report.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := report.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Report.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Report.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Report.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Report.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := report.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Report.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Report.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "Report.category_id"`)}
	}
	if v, ok := _c.mutation.LocationAddress(); ok {
		if err := report.LocationAddressValidator(v); err != nil {
			return &ValidationError{Name: "location_address", err: fmt.Errorf(`ent: validator failed for field "Report.location_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReporterID(); !ok {
		return &ValidationError{Name: "reporter_id", err: errors.New(`ent: missing required field "Report.reporter_id"`)}
	}
	if len(_c.mutation.ReporterIDs()) == 0 {
		return &ValidationError{Name: "reporter", err: errors.New(`ent: missing required edge "Report.reporter"`)}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required edge "Report.category"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(report.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LocationAddress(); ok {
		_spec.SetField(report.FieldLocationAddress, field.TypeString, value)
		_node.LocationAddress = &value
	}
	if value, ok := _c.mutation.LocationLat(); ok {
		_spec.SetField(report.FieldLocationLat, field.TypeFloat64, value)
		_node.LocationLat = &value
	}
	if value, ok := _c.mutation.LocationLng(); ok {
		_spec.SetField(report.FieldLocationLng, field.TypeFloat64, value)
		_node.LocationLng = &value
	}
	if value, ok := _c.mutation.ImageRefs(); ok {
		_spec.SetField(report.FieldImageRefs, field.TypeJSON, value)
		_node.ImageRefs = value
	}
	if value, ok := _c.mutation.ResolutionDetails(); ok {
		_spec.SetField(report.FieldResolutionDetails, field.TypeString, value)
		_node.ResolutionDetails = &value
	}
	if nodes := _c.mutation.ReporterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.ReporterTable,
			Columns: []string{report.ReporterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReporterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.CategoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubcategoryIDs(); len(nodes) > 0 {
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
		_node.SubcategoryID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignedOfficerIDs(); len(nodes) > 0 {
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
		_node.AssignedOfficerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
