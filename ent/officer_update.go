// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/predicate"
	"CivicReportAPI/ent/report"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// OfficerUpdate is the builder for updating Officer entities.
type OfficerUpdate struct {
	config
	hooks    []Hook
	mutation *OfficerMutation
}

// Where appends a list predicates to the OfficerUpdate builder.
func (_u *OfficerUpdate) Where(ps ...predicate.Officer) *OfficerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OfficerUpdate) SetName(v string) *OfficerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OfficerUpdate) SetNillableName(v *string) *OfficerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *OfficerUpdate) SetDepartment(v string) *OfficerUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *OfficerUpdate) SetNillableDepartment(v *string) *OfficerUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetContact sets the "contact" field.
func (_u *OfficerUpdate) SetContact(v string) *OfficerUpdate {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *OfficerUpdate) SetNillableContact(v *string) *OfficerUpdate {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *OfficerUpdate) ClearContact() *OfficerUpdate {
	_u.mutation.ClearContact()
	return _u
}

// AddAssignedReportIDs adds the "assigned_reports" edge to the Report entity by IDs.
func (_u *OfficerUpdate) AddAssignedReportIDs(ids ...uuid.UUID) *OfficerUpdate {
	_u.mutation.AddAssignedReportIDs(ids...)
	return _u
}

// AddAssignedReports adds the "assigned_reports" edges to the Report entity.
func (_u *OfficerUpdate) AddAssignedReports(v ...*Report) *OfficerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignedReportIDs(ids...)
}

// Mutation returns the OfficerMutation object of the builder.
func (_u *OfficerUpdate) Mutation() *OfficerMutation {
	return _u.mutation
}

// ClearAssignedReports clears all "assigned_reports" edges to the Report entity.
func (_u *OfficerUpdate) ClearAssignedReports() *OfficerUpdate {
	_u.mutation.ClearAssignedReports()
	return _u
}

// RemoveAssignedReportIDs removes the "assigned_reports" edge to Report entities by IDs.
func (_u *OfficerUpdate) RemoveAssignedReportIDs(ids ...uuid.UUID) *OfficerUpdate {
	_u.mutation.RemoveAssignedReportIDs(ids...)
	return _u
}

// RemoveAssignedReports removes "assigned_reports" edges to Report entities.
func (_u *OfficerUpdate) RemoveAssignedReports(v ...*Report) *OfficerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignedReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfficerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfficerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfficerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfficerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfficerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := officer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Officer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := officer.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Officer.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Contact(); ok {
		if err := officer.ContactValidator(v); err != nil {
			return &ValidationError{Name: "contact", err: fmt.Errorf(`ent: validator failed for field "Officer.contact": %w`, err)}
		}
	}
	return nil
}

func (_u *OfficerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(officer.Table, officer.Columns, sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(officer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(officer.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(officer.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(officer.FieldContact, field.TypeString)
	}
	if _u.mutation.AssignedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   officer.AssignedReportsTable,
			Columns: []string{officer.AssignedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignedReportsIDs(); len(nodes) > 0 && !_u.mutation.AssignedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   officer.AssignedReportsTable,
			Columns: []string{officer.AssignedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   officer.AssignedReportsTable,
			Columns: []string{officer.AssignedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{officer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfficerUpdateOne is the builder for updating a single Officer entity.
type OfficerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfficerMutation
}

// SetName sets the "name" field.
func (_u *OfficerUpdateOne) SetName(v string) *OfficerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OfficerUpdateOne) SetNillableName(v *string) *OfficerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *OfficerUpdateOne) SetDepartment(v string) *OfficerUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *OfficerUpdateOne) SetNillableDepartment(v *string) *OfficerUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetContact sets the "contact" field.
func (_u *OfficerUpdateOne) SetContact(v string) *OfficerUpdateOne {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *OfficerUpdateOne) SetNillableContact(v *string) *OfficerUpdateOne {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *OfficerUpdateOne) ClearContact() *OfficerUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// AddAssignedReportIDs adds the "assigned_reports" edge to the Report entity by IDs.
func (_u *OfficerUpdateOne) AddAssignedReportIDs(ids ...uuid.UUID) *OfficerUpdateOne {
	_u.mutation.AddAssignedReportIDs(ids...)
	return _u
}

// AddAssignedReports adds the "assigned_reports" edges to the Report entity.
func (_u *OfficerUpdateOne) AddAssignedReports(v ...*Report) *OfficerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignedReportIDs(ids...)
}

// Mutation returns the OfficerMutation object of the builder.
func (_u *OfficerUpdateOne) Mutation() *OfficerMutation {
	return _u.mutation
}

// ClearAssignedReports clears all "assigned_reports" edges to the Report entity.
func (_u *OfficerUpdateOne) ClearAssignedReports() *OfficerUpdateOne {
	_u.mutation.ClearAssignedReports()
	return _u
}

// RemoveAssignedReportIDs removes the "assigned_reports" edge to Report entities by IDs.
func (_u *OfficerUpdateOne) RemoveAssignedReportIDs(ids ...uuid.UUID) *OfficerUpdateOne {
	_u.mutation.RemoveAssignedReportIDs(ids...)
	return _u
}

// RemoveAssignedReports removes "assigned_reports" edges to Report entities.
func (_u *OfficerUpdateOne) RemoveAssignedReports(v ...*Report) *OfficerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignedReportIDs(ids...)
}

// Where appends a list predicates to the OfficerUpdate builder.
func (_u *OfficerUpdateOne) Where(ps ...predicate.Officer) *OfficerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfficerUpdateOne) Select(field string, fields ...string) *OfficerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Officer entity.
func (_u *OfficerUpdateOne) Save(ctx context.Context) (*Officer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfficerUpdateOne) SaveX(ctx context.Context) *Officer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfficerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfficerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfficerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := officer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Officer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := officer.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Officer.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Contact(); ok {
		if err := officer.ContactValidator(v); err != nil {
			return &ValidationError{Name: "contact", err: fmt.Errorf(`ent: validator failed for field "Officer.contact": %w`, err)}
		}
	}
	return nil
}

func (_u *OfficerUpdateOne) sqlSave(ctx context.Context) (_node *Officer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(officer.Table, officer.Columns, sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Officer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, officer.FieldID)
		for _, f := range fields {
			if !officer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != officer.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(officer.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(officer.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(officer.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(officer.FieldContact, field.TypeString)
	}
	if _u.mutation.AssignedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   officer.AssignedReportsTable,
			Columns: []string{officer.AssignedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignedReportsIDs(); len(nodes) > 0 && !_u.mutation.AssignedReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   officer.AssignedReportsTable,
			Columns: []string{officer.AssignedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   officer.AssignedReportsTable,
			Columns: []string{officer.AssignedReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Officer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{officer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
