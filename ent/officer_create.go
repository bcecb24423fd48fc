// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/report"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// OfficerCreate is the builder for creating a Officer entity.
type OfficerCreate struct {
	config
	mutation *OfficerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *OfficerCreate) SetName(v string) *OfficerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDepartment sets the "department" field.
func (_c *OfficerCreate) SetDepartment(v string) *OfficerCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetContact sets the "contact" field.
func (_c *OfficerCreate) SetContact(v string) *OfficerCreate {
	_c.mutation.SetContact(v)
	return _c
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_c *OfficerCreate) SetNillableContact(v *string) *OfficerCreate {
	if v != nil {
		_c.SetContact(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OfficerCreate) SetID(v uuid.UUID) *OfficerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OfficerCreate) SetNillableID(v *uuid.UUID) *OfficerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAssignedReportIDs adds the "assigned_reports" edge to the Report entity by IDs.
func (_c *OfficerCreate) AddAssignedReportIDs(ids ...uuid.UUID) *OfficerCreate {
	_c.mutation.AddAssignedReportIDs(ids...)
	return _c
}

// AddAssignedReports adds the "assigned_reports" edges to the Report entity.
func (_c *OfficerCreate) AddAssignedReports(v ...*Report) *OfficerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignedReportIDs(ids...)
}

// Mutation returns the OfficerMutation object of the builder.
func (_c *OfficerCreate) Mutation() *OfficerMutation {
	return _c.mutation
}

// Save creates the Officer in the database.
func (_c *OfficerCreate) Save(ctx context.Context) (*Officer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OfficerCreate) SaveX(ctx context.Context) *Officer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfficerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfficerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OfficerCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := officer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OfficerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Officer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := officer.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Officer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Department(); !ok {
		return &ValidationError{Name: "department", err: errors.New(`ent: missing required field "Officer.department"`)}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := officer.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Officer.department": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Contact(); ok {
		if err := officer.ContactValidator(v); err != nil {
			return &ValidationError{Name: "contact", err: fmt.Errorf(`ent: validator failed for field "Officer.contact": %w`, err)}
		}
	}
	return nil
}

func (_c *OfficerCreate) sqlSave(ctx context.Context) (*Officer, error) {
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

func (_c *OfficerCreate) createSpec() (*Officer, *sqlgraph.CreateSpec) {
	var (
		_node = &Officer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(officer.Table, sqlgraph.NewFieldSpec(officer.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(officer.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(officer.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Contact(); ok {
		_spec.SetField(officer.FieldContact, field.TypeString, value)
		_node.Contact = &value
	}
	if nodes := _c.mutation.AssignedReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OfficerCreateBulk is the builder for creating many Officer entities in bulk.
type OfficerCreateBulk struct {
	config
	err      error
	builders []*OfficerCreate
}

// Save creates the Officer entities in the database.
func (_c *OfficerCreateBulk) Save(ctx context.Context) ([]*Officer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Officer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OfficerMutation)
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
func (_c *OfficerCreateBulk) SaveX(ctx context.Context) []*Officer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfficerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfficerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
