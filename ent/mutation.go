// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/media"
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/predicate"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/ent/subcategory"
	"CivicReportAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCategory    = "Category"
	TypeMedia       = "Media"
	TypeOfficer     = "Officer"
	TypeReport      = "Report"
	TypeSubcategory = "Subcategory"
	TypeUser        = "User"
)

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	_type                *category.Type
	clearedFields        map[string]struct{}
	subcategories        map[uuid.UUID]struct{}
	removedsubcategories map[uuid.UUID]struct{}
	clearedsubcategories bool
	reports              map[uuid.UUID]struct{}
	removedreports       map[uuid.UUID]struct{}
	clearedreports       bool
	done                 bool
	oldValue             func(context.Context) (*Category, error)
	predicates           []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id uuid.UUID) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Category entities.
func (m *CategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *CategoryMutation) SetType(c category.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CategoryMutation) GetType() (r category.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldType(ctx context.Context) (v category.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CategoryMutation) ResetType() {
	m._type = nil
}

// AddSubcategoryIDs adds the "subcategories" edge to the Subcategory entity by ids.
func (m *CategoryMutation) AddSubcategoryIDs(ids ...uuid.UUID) {
	if m.subcategories == nil {
		m.subcategories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.subcategories[ids[i]] = struct{}{}
	}
}

// ClearSubcategories clears the "subcategories" edge to the Subcategory entity.
func (m *CategoryMutation) ClearSubcategories() {
	m.clearedsubcategories = true
}

// SubcategoriesCleared reports if the "subcategories" edge to the Subcategory entity was cleared.
func (m *CategoryMutation) SubcategoriesCleared() bool {
	return m.clearedsubcategories
}

// RemoveSubcategoryIDs removes the "subcategories" edge to the Subcategory entity by IDs.
func (m *CategoryMutation) RemoveSubcategoryIDs(ids ...uuid.UUID) {
	if m.removedsubcategories == nil {
		m.removedsubcategories = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.subcategories, ids[i])
		m.removedsubcategories[ids[i]] = struct{}{}
	}
}

// RemovedSubcategories returns the removed IDs of the "subcategories" edge to the Subcategory entity.
func (m *CategoryMutation) RemovedSubcategoriesIDs() (ids []uuid.UUID) {
	for id := range m.removedsubcategories {
		ids = append(ids, id)
	}
	return
}

// SubcategoriesIDs returns the "subcategories" edge IDs in the mutation.
func (m *CategoryMutation) SubcategoriesIDs() (ids []uuid.UUID) {
	for id := range m.subcategories {
		ids = append(ids, id)
	}
	return
}

// ResetSubcategories resets all changes to the "subcategories" edge.
func (m *CategoryMutation) ResetSubcategories() {
	m.subcategories = nil
	m.clearedsubcategories = false
	m.removedsubcategories = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *CategoryMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *CategoryMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *CategoryMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *CategoryMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *CategoryMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *CategoryMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *CategoryMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	if m._type != nil {
		fields = append(fields, category.FieldType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldName:
		return m.Name()
	case category.FieldType:
		return m.GetType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldName:
		return m.OldName(ctx)
	case category.FieldType:
		return m.OldType(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case category.FieldType:
		v, ok := value.(category.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldName:
		m.ResetName()
		return nil
	case category.FieldType:
		m.ResetType()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subcategories != nil {
		edges = append(edges, category.EdgeSubcategories)
	}
	if m.reports != nil {
		edges = append(edges, category.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeSubcategories:
		ids := make([]ent.Value, 0, len(m.subcategories))
		for id := range m.subcategories {
			ids = append(ids, id)
		}
		return ids
	case category.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubcategories != nil {
		edges = append(edges, category.EdgeSubcategories)
	}
	if m.removedreports != nil {
		edges = append(edges, category.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeSubcategories:
		ids := make([]ent.Value, 0, len(m.removedsubcategories))
		for id := range m.removedsubcategories {
			ids = append(ids, id)
		}
		return ids
	case category.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubcategories {
		edges = append(edges, category.EdgeSubcategories)
	}
	if m.clearedreports {
		edges = append(edges, category.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case category.EdgeSubcategories:
		return m.clearedsubcategories
	case category.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	switch name {
	case category.EdgeSubcategories:
		m.ResetSubcategories()
		return nil
	case category.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Category edge %s", name)
}

// MediaMutation represents an operation that mutates the Media nodes in the graph.
type MediaMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	file_name       *string
	original_name   *string
	file_size       *int64
	addfile_size    *int64
	mime_type       *string
	clearedFields   map[string]struct{}
	uploader        *uuid.UUID
	cleareduploader bool
	report          *uuid.UUID
	clearedreport   bool
	done            bool
	oldValue        func(context.Context) (*Media, error)
	predicates      []predicate.Media
}

var _ ent.Mutation = (*MediaMutation)(nil)

// mediaOption allows management of the mutation configuration using functional options.
type mediaOption func(*MediaMutation)

// newMediaMutation creates new mutation for the Media entity.
func newMediaMutation(c config, op Op, opts ...mediaOption) *MediaMutation {
	m := &MediaMutation{
		config:        c,
		op:            op,
		typ:           TypeMedia,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaID sets the ID field of the mutation.
func withMediaID(id uuid.UUID) mediaOption {
	return func(m *MediaMutation) {
		var (
			err   error
			once  sync.Once
			value *Media
		)
		m.oldValue = func(ctx context.Context) (*Media, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Media.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedia sets the old Media of the mutation.
func withMedia(node *Media) mediaOption {
	return func(m *MediaMutation) {
		m.oldValue = func(context.Context) (*Media, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Media entities.
func (m *MediaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Media.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MediaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MediaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MediaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFileName sets the "file_name" field.
func (m *MediaMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *MediaMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *MediaMutation) ResetFileName() {
	m.file_name = nil
}

// SetOriginalName sets the "original_name" field.
func (m *MediaMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *MediaMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *MediaMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetFileSize sets the "file_size" field.
func (m *MediaMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *MediaMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *MediaMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *MediaMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *MediaMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetMimeType sets the "mime_type" field.
func (m *MediaMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *MediaMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *MediaMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetUploadedByID sets the "uploaded_by_id" field.
func (m *MediaMutation) SetUploadedByID(u uuid.UUID) {
	m.uploader = &u
}

// UploadedByID returns the value of the "uploaded_by_id" field in the mutation.
func (m *MediaMutation) UploadedByID() (r uuid.UUID, exists bool) {
	v := m.uploader
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedByID returns the old "uploaded_by_id" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldUploadedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedByID: %w", err)
	}
	return oldValue.UploadedByID, nil
}

// ClearUploadedByID clears the value of the "uploaded_by_id" field.
func (m *MediaMutation) ClearUploadedByID() {
	m.uploader = nil
	m.clearedFields[media.FieldUploadedByID] = struct{}{}
}

// UploadedByIDCleared returns if the "uploaded_by_id" field was cleared in this mutation.
func (m *MediaMutation) UploadedByIDCleared() bool {
	_, ok := m.clearedFields[media.FieldUploadedByID]
	return ok
}

// ResetUploadedByID resets all changes to the "uploaded_by_id" field.
func (m *MediaMutation) ResetUploadedByID() {
	m.uploader = nil
	delete(m.clearedFields, media.FieldUploadedByID)
}

// SetReportID sets the "report_id" field.
func (m *MediaMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *MediaMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldReportID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ClearReportID clears the value of the "report_id" field.
func (m *MediaMutation) ClearReportID() {
	m.report = nil
	m.clearedFields[media.FieldReportID] = struct{}{}
}

// ReportIDCleared returns if the "report_id" field was cleared in this mutation.
func (m *MediaMutation) ReportIDCleared() bool {
	_, ok := m.clearedFields[media.FieldReportID]
	return ok
}

// ResetReportID resets all changes to the "report_id" field.
func (m *MediaMutation) ResetReportID() {
	m.report = nil
	delete(m.clearedFields, media.FieldReportID)
}

// SetUploaderID sets the "uploader" edge to the User entity by id.
func (m *MediaMutation) SetUploaderID(id uuid.UUID) {
	m.uploader = &id
}

// ClearUploader clears the "uploader" edge to the User entity.
func (m *MediaMutation) ClearUploader() {
	m.cleareduploader = true
	m.clearedFields[media.FieldUploadedByID] = struct{}{}
}

// UploaderCleared reports if the "uploader" edge to the User entity was cleared.
func (m *MediaMutation) UploaderCleared() bool {
	return m.UploadedByIDCleared() || m.cleareduploader
}

// UploaderID returns the "uploader" edge ID in the mutation.
func (m *MediaMutation) UploaderID() (id uuid.UUID, exists bool) {
	if m.uploader != nil {
		return *m.uploader, true
	}
	return
}

// UploaderIDs returns the "uploader" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploaderID instead. It exists only for internal usage by the builders.
func (m *MediaMutation) UploaderIDs() (ids []uuid.UUID) {
	if id := m.uploader; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUploader resets all changes to the "uploader" edge.
func (m *MediaMutation) ResetUploader() {
	m.uploader = nil
	m.cleareduploader = false
}

// ClearReport clears the "report" edge to the Report entity.
func (m *MediaMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[media.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *MediaMutation) ReportCleared() bool {
	return m.ReportIDCleared() || m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *MediaMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *MediaMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the MediaMutation builder.
func (m *MediaMutation) Where(ps ...predicate.Media) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Media, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Media).
func (m *MediaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, media.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, media.FieldUpdatedAt)
	}
	if m.file_name != nil {
		fields = append(fields, media.FieldFileName)
	}
	if m.original_name != nil {
		fields = append(fields, media.FieldOriginalName)
	}
	if m.file_size != nil {
		fields = append(fields, media.FieldFileSize)
	}
	if m.mime_type != nil {
		fields = append(fields, media.FieldMimeType)
	}
	if m.uploader != nil {
		fields = append(fields, media.FieldUploadedByID)
	}
	if m.report != nil {
		fields = append(fields, media.FieldReportID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case media.FieldCreatedAt:
		return m.CreatedAt()
	case media.FieldUpdatedAt:
		return m.UpdatedAt()
	case media.FieldFileName:
		return m.FileName()
	case media.FieldOriginalName:
		return m.OriginalName()
	case media.FieldFileSize:
		return m.FileSize()
	case media.FieldMimeType:
		return m.MimeType()
	case media.FieldUploadedByID:
		return m.UploadedByID()
	case media.FieldReportID:
		return m.ReportID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case media.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case media.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case media.FieldFileName:
		return m.OldFileName(ctx)
	case media.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case media.FieldFileSize:
		return m.OldFileSize(ctx)
	case media.FieldMimeType:
		return m.OldMimeType(ctx)
	case media.FieldUploadedByID:
		return m.OldUploadedByID(ctx)
	case media.FieldReportID:
		return m.OldReportID(ctx)
	}
	return nil, fmt.Errorf("unknown Media field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case media.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case media.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case media.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case media.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case media.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case media.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case media.FieldUploadedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedByID(v)
		return nil
	case media.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	}
	return fmt.Errorf("unknown Media field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, media.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case media.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case media.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Media numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(media.FieldUploadedByID) {
		fields = append(fields, media.FieldUploadedByID)
	}
	if m.FieldCleared(media.FieldReportID) {
		fields = append(fields, media.FieldReportID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaMutation) ClearField(name string) error {
	switch name {
	case media.FieldUploadedByID:
		m.ClearUploadedByID()
		return nil
	case media.FieldReportID:
		m.ClearReportID()
		return nil
	}
	return fmt.Errorf("unknown Media nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaMutation) ResetField(name string) error {
	switch name {
	case media.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case media.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case media.FieldFileName:
		m.ResetFileName()
		return nil
	case media.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case media.FieldFileSize:
		m.ResetFileSize()
		return nil
	case media.FieldMimeType:
		m.ResetMimeType()
		return nil
	case media.FieldUploadedByID:
		m.ResetUploadedByID()
		return nil
	case media.FieldReportID:
		m.ResetReportID()
		return nil
	}
	return fmt.Errorf("unknown Media field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.uploader != nil {
		edges = append(edges, media.EdgeUploader)
	}
	if m.report != nil {
		edges = append(edges, media.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case media.EdgeUploader:
		if id := m.uploader; id != nil {
			return []ent.Value{*id}
		}
	case media.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduploader {
		edges = append(edges, media.EdgeUploader)
	}
	if m.clearedreport {
		edges = append(edges, media.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaMutation) EdgeCleared(name string) bool {
	switch name {
	case media.EdgeUploader:
		return m.cleareduploader
	case media.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaMutation) ClearEdge(name string) error {
	switch name {
	case media.EdgeUploader:
		m.ClearUploader()
		return nil
	case media.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Media unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaMutation) ResetEdge(name string) error {
	switch name {
	case media.EdgeUploader:
		m.ResetUploader()
		return nil
	case media.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown Media edge %s", name)
}

// OfficerMutation represents an operation that mutates the Officer nodes in the graph.
type OfficerMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	department              *string
	contact                 *string
	clearedFields           map[string]struct{}
	assigned_reports        map[uuid.UUID]struct{}
	removedassigned_reports map[uuid.UUID]struct{}
	clearedassigned_reports bool
	done                    bool
	oldValue                func(context.Context) (*Officer, error)
	predicates              []predicate.Officer
}

var _ ent.Mutation = (*OfficerMutation)(nil)

// officerOption allows management of the mutation configuration using functional options.
type officerOption func(*OfficerMutation)

// newOfficerMutation creates new mutation for the Officer entity.
func newOfficerMutation(c config, op Op, opts ...officerOption) *OfficerMutation {
	m := &OfficerMutation{
		config:        c,
		op:            op,
		typ:           TypeOfficer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOfficerID sets the ID field of the mutation.
func withOfficerID(id uuid.UUID) officerOption {
	return func(m *OfficerMutation) {
		var (
			err   error
			once  sync.Once
			value *Officer
		)
		m.oldValue = func(ctx context.Context) (*Officer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Officer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOfficer sets the old Officer of the mutation.
func withOfficer(node *Officer) officerOption {
	return func(m *OfficerMutation) {
		m.oldValue = func(context.Context) (*Officer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OfficerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OfficerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Officer entities.
func (m *OfficerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OfficerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OfficerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Officer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OfficerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OfficerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Officer entity.
// If the Officer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfficerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OfficerMutation) ResetName() {
	m.name = nil
}

// SetDepartment sets the "department" field.
func (m *OfficerMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *OfficerMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Officer entity.
// If the Officer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfficerMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ResetDepartment resets all changes to the "department" field.
func (m *OfficerMutation) ResetDepartment() {
	m.department = nil
}

// SetContact sets the "contact" field.
func (m *OfficerMutation) SetContact(s string) {
	m.contact = &s
}

// Contact returns the value of the "contact" field in the mutation.
func (m *OfficerMutation) Contact() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContact returns the old "contact" field's value of the Officer entity.
// If the Officer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfficerMutation) OldContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContact: %w", err)
	}
	return oldValue.Contact, nil
}

// ClearContact clears the value of the "contact" field.
func (m *OfficerMutation) ClearContact() {
	m.contact = nil
	m.clearedFields[officer.FieldContact] = struct{}{}
}

// ContactCleared returns if the "contact" field was cleared in this mutation.
func (m *OfficerMutation) ContactCleared() bool {
	_, ok := m.clearedFields[officer.FieldContact]
	return ok
}

// ResetContact resets all changes to the "contact" field.
func (m *OfficerMutation) ResetContact() {
	m.contact = nil
	delete(m.clearedFields, officer.FieldContact)
}

// AddAssignedReportIDs adds the "assigned_reports" edge to the Report entity by ids.
func (m *OfficerMutation) AddAssignedReportIDs(ids ...uuid.UUID) {
	if m.assigned_reports == nil {
		m.assigned_reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.assigned_reports[ids[i]] = struct{}{}
	}
}

// ClearAssignedReports clears the "assigned_reports" edge to the Report entity.
func (m *OfficerMutation) ClearAssignedReports() {
	m.clearedassigned_reports = true
}

// AssignedReportsCleared reports if the "assigned_reports" edge to the Report entity was cleared.
func (m *OfficerMutation) AssignedReportsCleared() bool {
	return m.clearedassigned_reports
}

// RemoveAssignedReportIDs removes the "assigned_reports" edge to the Report entity by IDs.
func (m *OfficerMutation) RemoveAssignedReportIDs(ids ...uuid.UUID) {
	if m.removedassigned_reports == nil {
		m.removedassigned_reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.assigned_reports, ids[i])
		m.removedassigned_reports[ids[i]] = struct{}{}
	}
}

// RemovedAssignedReports returns the removed IDs of the "assigned_reports" edge to the Report entity.
func (m *OfficerMutation) RemovedAssignedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedassigned_reports {
		ids = append(ids, id)
	}
	return
}

// AssignedReportsIDs returns the "assigned_reports" edge IDs in the mutation.
func (m *OfficerMutation) AssignedReportsIDs() (ids []uuid.UUID) {
	for id := range m.assigned_reports {
		ids = append(ids, id)
	}
	return
}

// ResetAssignedReports resets all changes to the "assigned_reports" edge.
func (m *OfficerMutation) ResetAssignedReports() {
	m.assigned_reports = nil
	m.clearedassigned_reports = false
	m.removedassigned_reports = nil
}

// Where appends a list predicates to the OfficerMutation builder.
func (m *OfficerMutation) Where(ps ...predicate.Officer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OfficerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OfficerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Officer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OfficerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OfficerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Officer).
func (m *OfficerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OfficerMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, officer.FieldName)
	}
	if m.department != nil {
		fields = append(fields, officer.FieldDepartment)
	}
	if m.contact != nil {
		fields = append(fields, officer.FieldContact)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OfficerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case officer.FieldName:
		return m.Name()
	case officer.FieldDepartment:
		return m.Department()
	case officer.FieldContact:
		return m.Contact()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OfficerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case officer.FieldName:
		return m.OldName(ctx)
	case officer.FieldDepartment:
		return m.OldDepartment(ctx)
	case officer.FieldContact:
		return m.OldContact(ctx)
	}
	return nil, fmt.Errorf("unknown Officer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfficerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case officer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case officer.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case officer.FieldContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContact(v)
		return nil
	}
	return fmt.Errorf("unknown Officer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OfficerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OfficerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfficerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Officer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OfficerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(officer.FieldContact) {
		fields = append(fields, officer.FieldContact)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OfficerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OfficerMutation) ClearField(name string) error {
	switch name {
	case officer.FieldContact:
		m.ClearContact()
		return nil
	}
	return fmt.Errorf("unknown Officer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OfficerMutation) ResetField(name string) error {
	switch name {
	case officer.FieldName:
		m.ResetName()
		return nil
	case officer.FieldDepartment:
		m.ResetDepartment()
		return nil
	case officer.FieldContact:
		m.ResetContact()
		return nil
	}
	return fmt.Errorf("unknown Officer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OfficerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assigned_reports != nil {
		edges = append(edges, officer.EdgeAssignedReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OfficerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case officer.EdgeAssignedReports:
		ids := make([]ent.Value, 0, len(m.assigned_reports))
		for id := range m.assigned_reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OfficerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedassigned_reports != nil {
		edges = append(edges, officer.EdgeAssignedReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OfficerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case officer.EdgeAssignedReports:
		ids := make([]ent.Value, 0, len(m.removedassigned_reports))
		for id := range m.removedassigned_reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OfficerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassigned_reports {
		edges = append(edges, officer.EdgeAssignedReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OfficerMutation) EdgeCleared(name string) bool {
	switch name {
	case officer.EdgeAssignedReports:
		return m.clearedassigned_reports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OfficerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Officer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OfficerMutation) ResetEdge(name string) error {
	switch name {
	case officer.EdgeAssignedReports:
		m.ResetAssignedReports()
		return nil
	}
	return fmt.Errorf("unknown Officer edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	title                   *string
	description             *string
	_type                   *report.Type
	status                  *report.Status
	location_address        *string
	location_lat            *float64
	addlocation_lat         *float64
	location_lng            *float64
	addlocation_lng         *float64
	image_refs              *[]string
	appendimage_refs        []string
	resolution_details      *string
	clearedFields           map[string]struct{}
	reporter                *uuid.UUID
	clearedreporter         bool
	category                *uuid.UUID
	clearedcategory         bool
	subcategory             *uuid.UUID
	clearedsubcategory      bool
	assigned_officer        *uuid.UUID
	clearedassigned_officer bool
	images                  map[uuid.UUID]struct{}
	removedimages           map[uuid.UUID]struct{}
	clearedimages           bool
	done                    bool
	oldValue                func(context.Context) (*Report, error)
	predicates              []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ReportMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ReportMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ReportMutation) ResetDescription() {
	m.description = nil
}

// SetType sets the "type" field.
func (m *ReportMutation) SetType(r report.Type) {
	m._type = &r
}

// GetType returns the value of the "type" field in the mutation.
func (m *ReportMutation) GetType() (r report.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldType(ctx context.Context) (v report.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ReportMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *ReportMutation) SetStatus(r report.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportMutation) Status() (r report.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStatus(ctx context.Context) (v report.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReportMutation) ResetStatus() {
	m.status = nil
}

// SetCategoryID sets the "category_id" field.
func (m *ReportMutation) SetCategoryID(u uuid.UUID) {
	m.category = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *ReportMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCategoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *ReportMutation) ResetCategoryID() {
	m.category = nil
}

// SetSubcategoryID sets the "subcategory_id" field.
func (m *ReportMutation) SetSubcategoryID(u uuid.UUID) {
	m.subcategory = &u
}

// SubcategoryID returns the value of the "subcategory_id" field in the mutation.
func (m *ReportMutation) SubcategoryID() (r uuid.UUID, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategoryID returns the old "subcategory_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSubcategoryID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategoryID: %w", err)
	}
	return oldValue.SubcategoryID, nil
}

// ClearSubcategoryID clears the value of the "subcategory_id" field.
func (m *ReportMutation) ClearSubcategoryID() {
	m.subcategory = nil
	m.clearedFields[report.FieldSubcategoryID] = struct{}{}
}

// SubcategoryIDCleared returns if the "subcategory_id" field was cleared in this mutation.
func (m *ReportMutation) SubcategoryIDCleared() bool {
	_, ok := m.clearedFields[report.FieldSubcategoryID]
	return ok
}

// ResetSubcategoryID resets all changes to the "subcategory_id" field.
func (m *ReportMutation) ResetSubcategoryID() {
	m.subcategory = nil
	delete(m.clearedFields, report.FieldSubcategoryID)
}

// SetLocationAddress sets the "location_address" field.
func (m *ReportMutation) SetLocationAddress(s string) {
	m.location_address = &s
}

// LocationAddress returns the value of the "location_address" field in the mutation.
func (m *ReportMutation) LocationAddress() (r string, exists bool) {
	v := m.location_address
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationAddress returns the old "location_address" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLocationAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationAddress: %w", err)
	}
	return oldValue.LocationAddress, nil
}

// ClearLocationAddress clears the value of the "location_address" field.
func (m *ReportMutation) ClearLocationAddress() {
	m.location_address = nil
	m.clearedFields[report.FieldLocationAddress] = struct{}{}
}

// LocationAddressCleared returns if the "location_address" field was cleared in this mutation.
func (m *ReportMutation) LocationAddressCleared() bool {
	_, ok := m.clearedFields[report.FieldLocationAddress]
	return ok
}

// ResetLocationAddress resets all changes to the "location_address" field.
func (m *ReportMutation) ResetLocationAddress() {
	m.location_address = nil
	delete(m.clearedFields, report.FieldLocationAddress)
}

// SetLocationLat sets the "location_lat" field.
func (m *ReportMutation) SetLocationLat(f float64) {
	m.location_lat = &f
	m.addlocation_lat = nil
}

// LocationLat returns the value of the "location_lat" field in the mutation.
func (m *ReportMutation) LocationLat() (r float64, exists bool) {
	v := m.location_lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationLat returns the old "location_lat" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLocationLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationLat: %w", err)
	}
	return oldValue.LocationLat, nil
}

// AddLocationLat adds f to the "location_lat" field.
func (m *ReportMutation) AddLocationLat(f float64) {
	if m.addlocation_lat != nil {
		*m.addlocation_lat += f
	} else {
		m.addlocation_lat = &f
	}
}

// AddedLocationLat returns the value that was added to the "location_lat" field in this mutation.
func (m *ReportMutation) AddedLocationLat() (r float64, exists bool) {
	v := m.addlocation_lat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLocationLat clears the value of the "location_lat" field.
func (m *ReportMutation) ClearLocationLat() {
	m.location_lat = nil
	m.addlocation_lat = nil
	m.clearedFields[report.FieldLocationLat] = struct{}{}
}

// LocationLatCleared returns if the "location_lat" field was cleared in this mutation.
func (m *ReportMutation) LocationLatCleared() bool {
	_, ok := m.clearedFields[report.FieldLocationLat]
	return ok
}

// ResetLocationLat resets all changes to the "location_lat" field.
func (m *ReportMutation) ResetLocationLat() {
	m.location_lat = nil
	m.addlocation_lat = nil
	delete(m.clearedFields, report.FieldLocationLat)
}

// SetLocationLng sets the "location_lng" field.
func (m *ReportMutation) SetLocationLng(f float64) {
	m.location_lng = &f
	m.addlocation_lng = nil
}

// LocationLng returns the value of the "location_lng" field in the mutation.
func (m *ReportMutation) LocationLng() (r float64, exists bool) {
	v := m.location_lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationLng returns the old "location_lng" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLocationLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationLng: %w", err)
	}
	return oldValue.LocationLng, nil
}

// AddLocationLng adds f to the "location_lng" field.
func (m *ReportMutation) AddLocationLng(f float64) {
	if m.addlocation_lng != nil {
		*m.addlocation_lng += f
	} else {
		m.addlocation_lng = &f
	}
}

// AddedLocationLng returns the value that was added to the "location_lng" field in this mutation.
func (m *ReportMutation) AddedLocationLng() (r float64, exists bool) {
	v := m.addlocation_lng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLocationLng clears the value of the "location_lng" field.
func (m *ReportMutation) ClearLocationLng() {
	m.location_lng = nil
	m.addlocation_lng = nil
	m.clearedFields[report.FieldLocationLng] = struct{}{}
}

// LocationLngCleared returns if the "location_lng" field was cleared in this mutation.
func (m *ReportMutation) LocationLngCleared() bool {
	_, ok := m.clearedFields[report.FieldLocationLng]
	return ok
}

// ResetLocationLng resets all changes to the "location_lng" field.
func (m *ReportMutation) ResetLocationLng() {
	m.location_lng = nil
	m.addlocation_lng = nil
	delete(m.clearedFields, report.FieldLocationLng)
}

// SetImageRefs sets the "image_refs" field.
func (m *ReportMutation) SetImageRefs(s []string) {
	m.image_refs = &s
	m.appendimage_refs = nil
}

// ImageRefs returns the value of the "image_refs" field in the mutation.
func (m *ReportMutation) ImageRefs() (r []string, exists bool) {
	v := m.image_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldImageRefs returns the old "image_refs" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldImageRefs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageRefs: %w", err)
	}
	return oldValue.ImageRefs, nil
}

// AppendImageRefs adds s to the "image_refs" field.
func (m *ReportMutation) AppendImageRefs(s []string) {
	m.appendimage_refs = append(m.appendimage_refs, s...)
}

// AppendedImageRefs returns the list of values that were appended to the "image_refs" field in this mutation.
func (m *ReportMutation) AppendedImageRefs() ([]string, bool) {
	if len(m.appendimage_refs) == 0 {
		return nil, false
	}
	return m.appendimage_refs, true
}

// ClearImageRefs clears the value of the "image_refs" field.
func (m *ReportMutation) ClearImageRefs() {
	m.image_refs = nil
	m.appendimage_refs = nil
	m.clearedFields[report.FieldImageRefs] = struct{}{}
}

// ImageRefsCleared returns if the "image_refs" field was cleared in this mutation.
func (m *ReportMutation) ImageRefsCleared() bool {
	_, ok := m.clearedFields[report.FieldImageRefs]
	return ok
}

// ResetImageRefs resets all changes to the "image_refs" field.
func (m *ReportMutation) ResetImageRefs() {
	m.image_refs = nil
	m.appendimage_refs = nil
	delete(m.clearedFields, report.FieldImageRefs)
}

// SetAssignedOfficerID sets the "assigned_officer_id" field.
func (m *ReportMutation) SetAssignedOfficerID(u uuid.UUID) {
	m.assigned_officer = &u
}

// AssignedOfficerID returns the value of the "assigned_officer_id" field in the mutation.
func (m *ReportMutation) AssignedOfficerID() (r uuid.UUID, exists bool) {
	v := m.assigned_officer
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedOfficerID returns the old "assigned_officer_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldAssignedOfficerID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedOfficerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedOfficerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedOfficerID: %w", err)
	}
	return oldValue.AssignedOfficerID, nil
}

// ClearAssignedOfficerID clears the value of the "assigned_officer_id" field.
func (m *ReportMutation) ClearAssignedOfficerID() {
	m.assigned_officer = nil
	m.clearedFields[report.FieldAssignedOfficerID] = struct{}{}
}

// AssignedOfficerIDCleared returns if the "assigned_officer_id" field was cleared in this mutation.
func (m *ReportMutation) AssignedOfficerIDCleared() bool {
	_, ok := m.clearedFields[report.FieldAssignedOfficerID]
	return ok
}

// ResetAssignedOfficerID resets all changes to the "assigned_officer_id" field.
func (m *ReportMutation) ResetAssignedOfficerID() {
	m.assigned_officer = nil
	delete(m.clearedFields, report.FieldAssignedOfficerID)
}

// SetResolutionDetails sets the "resolution_details" field.
func (m *ReportMutation) SetResolutionDetails(s string) {
	m.resolution_details = &s
}

// ResolutionDetails returns the value of the "resolution_details" field in the mutation.
func (m *ReportMutation) ResolutionDetails() (r string, exists bool) {
	v := m.resolution_details
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionDetails returns the old "resolution_details" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldResolutionDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionDetails: %w", err)
	}
	return oldValue.ResolutionDetails, nil
}

// ClearResolutionDetails clears the value of the "resolution_details" field.
func (m *ReportMutation) ClearResolutionDetails() {
	m.resolution_details = nil
	m.clearedFields[report.FieldResolutionDetails] = struct{}{}
}

// ResolutionDetailsCleared returns if the "resolution_details" field was cleared in this mutation.
func (m *ReportMutation) ResolutionDetailsCleared() bool {
	_, ok := m.clearedFields[report.FieldResolutionDetails]
	return ok
}

// ResetResolutionDetails resets all changes to the "resolution_details" field.
func (m *ReportMutation) ResetResolutionDetails() {
	m.resolution_details = nil
	delete(m.clearedFields, report.FieldResolutionDetails)
}

// SetReporterID sets the "reporter_id" field.
func (m *ReportMutation) SetReporterID(u uuid.UUID) {
	m.reporter = &u
}

// ReporterID returns the value of the "reporter_id" field in the mutation.
func (m *ReportMutation) ReporterID() (r uuid.UUID, exists bool) {
	v := m.reporter
	if v == nil {
		return
	}
	return *v, true
}

// OldReporterID returns the old "reporter_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReporterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReporterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReporterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReporterID: %w", err)
	}
	return oldValue.ReporterID, nil
}

// ResetReporterID resets all changes to the "reporter_id" field.
func (m *ReportMutation) ResetReporterID() {
	m.reporter = nil
}

// ClearReporter clears the "reporter" edge to the User entity.
func (m *ReportMutation) ClearReporter() {
	m.clearedreporter = true
	m.clearedFields[report.FieldReporterID] = struct{}{}
}

// ReporterCleared reports if the "reporter" edge to the User entity was cleared.
func (m *ReportMutation) ReporterCleared() bool {
	return m.clearedreporter
}

// ReporterIDs returns the "reporter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReporterID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) ReporterIDs() (ids []uuid.UUID) {
	if id := m.reporter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReporter resets all changes to the "reporter" edge.
func (m *ReportMutation) ResetReporter() {
	m.reporter = nil
	m.clearedreporter = false
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *ReportMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[report.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *ReportMutation) CategoryCleared() bool {
	return m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) CategoryIDs() (ids []uuid.UUID) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *ReportMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// ClearSubcategory clears the "subcategory" edge to the Subcategory entity.
func (m *ReportMutation) ClearSubcategory() {
	m.clearedsubcategory = true
	m.clearedFields[report.FieldSubcategoryID] = struct{}{}
}

// SubcategoryCleared reports if the "subcategory" edge to the Subcategory entity was cleared.
func (m *ReportMutation) SubcategoryCleared() bool {
	return m.SubcategoryIDCleared() || m.clearedsubcategory
}

// SubcategoryIDs returns the "subcategory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubcategoryID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) SubcategoryIDs() (ids []uuid.UUID) {
	if id := m.subcategory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubcategory resets all changes to the "subcategory" edge.
func (m *ReportMutation) ResetSubcategory() {
	m.subcategory = nil
	m.clearedsubcategory = false
}

// ClearAssignedOfficer clears the "assigned_officer" edge to the Officer entity.
func (m *ReportMutation) ClearAssignedOfficer() {
	m.clearedassigned_officer = true
	m.clearedFields[report.FieldAssignedOfficerID] = struct{}{}
}

// AssignedOfficerCleared reports if the "assigned_officer" edge to the Officer entity was cleared.
func (m *ReportMutation) AssignedOfficerCleared() bool {
	return m.AssignedOfficerIDCleared() || m.clearedassigned_officer
}

// AssignedOfficerIDs returns the "assigned_officer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedOfficerID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) AssignedOfficerIDs() (ids []uuid.UUID) {
	if id := m.assigned_officer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedOfficer resets all changes to the "assigned_officer" edge.
func (m *ReportMutation) ResetAssignedOfficer() {
	m.assigned_officer = nil
	m.clearedassigned_officer = false
}

// AddImageIDs adds the "images" edge to the Media entity by ids.
func (m *ReportMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the Media entity.
func (m *ReportMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the Media entity was cleared.
func (m *ReportMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the Media entity by IDs.
func (m *ReportMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the Media entity.
func (m *ReportMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *ReportMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *ReportMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, report.FieldDescription)
	}
	if m._type != nil {
		fields = append(fields, report.FieldType)
	}
	if m.status != nil {
		fields = append(fields, report.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, report.FieldCategoryID)
	}
	if m.subcategory != nil {
		fields = append(fields, report.FieldSubcategoryID)
	}
	if m.location_address != nil {
		fields = append(fields, report.FieldLocationAddress)
	}
	if m.location_lat != nil {
		fields = append(fields, report.FieldLocationLat)
	}
	if m.location_lng != nil {
		fields = append(fields, report.FieldLocationLng)
	}
	if m.image_refs != nil {
		fields = append(fields, report.FieldImageRefs)
	}
	if m.assigned_officer != nil {
		fields = append(fields, report.FieldAssignedOfficerID)
	}
	if m.resolution_details != nil {
		fields = append(fields, report.FieldResolutionDetails)
	}
	if m.reporter != nil {
		fields = append(fields, report.FieldReporterID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	case report.FieldTitle:
		return m.Title()
	case report.FieldDescription:
		return m.Description()
	case report.FieldType:
		return m.GetType()
	case report.FieldStatus:
		return m.Status()
	case report.FieldCategoryID:
		return m.CategoryID()
	case report.FieldSubcategoryID:
		return m.SubcategoryID()
	case report.FieldLocationAddress:
		return m.LocationAddress()
	case report.FieldLocationLat:
		return m.LocationLat()
	case report.FieldLocationLng:
		return m.LocationLng()
	case report.FieldImageRefs:
		return m.ImageRefs()
	case report.FieldAssignedOfficerID:
		return m.AssignedOfficerID()
	case report.FieldResolutionDetails:
		return m.ResolutionDetails()
	case report.FieldReporterID:
		return m.ReporterID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldDescription:
		return m.OldDescription(ctx)
	case report.FieldType:
		return m.OldType(ctx)
	case report.FieldStatus:
		return m.OldStatus(ctx)
	case report.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case report.FieldSubcategoryID:
		return m.OldSubcategoryID(ctx)
	case report.FieldLocationAddress:
		return m.OldLocationAddress(ctx)
	case report.FieldLocationLat:
		return m.OldLocationLat(ctx)
	case report.FieldLocationLng:
		return m.OldLocationLng(ctx)
	case report.FieldImageRefs:
		return m.OldImageRefs(ctx)
	case report.FieldAssignedOfficerID:
		return m.OldAssignedOfficerID(ctx)
	case report.FieldResolutionDetails:
		return m.OldResolutionDetails(ctx)
	case report.FieldReporterID:
		return m.OldReporterID(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case report.FieldType:
		v, ok := value.(report.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case report.FieldStatus:
		v, ok := value.(report.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case report.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case report.FieldSubcategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategoryID(v)
		return nil
	case report.FieldLocationAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationAddress(v)
		return nil
	case report.FieldLocationLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationLat(v)
		return nil
	case report.FieldLocationLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationLng(v)
		return nil
	case report.FieldImageRefs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageRefs(v)
		return nil
	case report.FieldAssignedOfficerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedOfficerID(v)
		return nil
	case report.FieldResolutionDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionDetails(v)
		return nil
	case report.FieldReporterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReporterID(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addlocation_lat != nil {
		fields = append(fields, report.FieldLocationLat)
	}
	if m.addlocation_lng != nil {
		fields = append(fields, report.FieldLocationLng)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldLocationLat:
		return m.AddedLocationLat()
	case report.FieldLocationLng:
		return m.AddedLocationLng()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldLocationLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLocationLat(v)
		return nil
	case report.FieldLocationLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLocationLng(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldSubcategoryID) {
		fields = append(fields, report.FieldSubcategoryID)
	}
	if m.FieldCleared(report.FieldLocationAddress) {
		fields = append(fields, report.FieldLocationAddress)
	}
	if m.FieldCleared(report.FieldLocationLat) {
		fields = append(fields, report.FieldLocationLat)
	}
	if m.FieldCleared(report.FieldLocationLng) {
		fields = append(fields, report.FieldLocationLng)
	}
	if m.FieldCleared(report.FieldImageRefs) {
		fields = append(fields, report.FieldImageRefs)
	}
	if m.FieldCleared(report.FieldAssignedOfficerID) {
		fields = append(fields, report.FieldAssignedOfficerID)
	}
	if m.FieldCleared(report.FieldResolutionDetails) {
		fields = append(fields, report.FieldResolutionDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldSubcategoryID:
		m.ClearSubcategoryID()
		return nil
	case report.FieldLocationAddress:
		m.ClearLocationAddress()
		return nil
	case report.FieldLocationLat:
		m.ClearLocationLat()
		return nil
	case report.FieldLocationLng:
		m.ClearLocationLng()
		return nil
	case report.FieldImageRefs:
		m.ClearImageRefs()
		return nil
	case report.FieldAssignedOfficerID:
		m.ClearAssignedOfficerID()
		return nil
	case report.FieldResolutionDetails:
		m.ClearResolutionDetails()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldDescription:
		m.ResetDescription()
		return nil
	case report.FieldType:
		m.ResetType()
		return nil
	case report.FieldStatus:
		m.ResetStatus()
		return nil
	case report.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case report.FieldSubcategoryID:
		m.ResetSubcategoryID()
		return nil
	case report.FieldLocationAddress:
		m.ResetLocationAddress()
		return nil
	case report.FieldLocationLat:
		m.ResetLocationLat()
		return nil
	case report.FieldLocationLng:
		m.ResetLocationLng()
		return nil
	case report.FieldImageRefs:
		m.ResetImageRefs()
		return nil
	case report.FieldAssignedOfficerID:
		m.ResetAssignedOfficerID()
		return nil
	case report.FieldResolutionDetails:
		m.ResetResolutionDetails()
		return nil
	case report.FieldReporterID:
		m.ResetReporterID()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.reporter != nil {
		edges = append(edges, report.EdgeReporter)
	}
	if m.category != nil {
		edges = append(edges, report.EdgeCategory)
	}
	if m.subcategory != nil {
		edges = append(edges, report.EdgeSubcategory)
	}
	if m.assigned_officer != nil {
		edges = append(edges, report.EdgeAssignedOfficer)
	}
	if m.images != nil {
		edges = append(edges, report.EdgeImages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeReporter:
		if id := m.reporter; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeSubcategory:
		if id := m.subcategory; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeAssignedOfficer:
		if id := m.assigned_officer; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedimages != nil {
		edges = append(edges, report.EdgeImages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedreporter {
		edges = append(edges, report.EdgeReporter)
	}
	if m.clearedcategory {
		edges = append(edges, report.EdgeCategory)
	}
	if m.clearedsubcategory {
		edges = append(edges, report.EdgeSubcategory)
	}
	if m.clearedassigned_officer {
		edges = append(edges, report.EdgeAssignedOfficer)
	}
	if m.clearedimages {
		edges = append(edges, report.EdgeImages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeReporter:
		return m.clearedreporter
	case report.EdgeCategory:
		return m.clearedcategory
	case report.EdgeSubcategory:
		return m.clearedsubcategory
	case report.EdgeAssignedOfficer:
		return m.clearedassigned_officer
	case report.EdgeImages:
		return m.clearedimages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeReporter:
		m.ClearReporter()
		return nil
	case report.EdgeCategory:
		m.ClearCategory()
		return nil
	case report.EdgeSubcategory:
		m.ClearSubcategory()
		return nil
	case report.EdgeAssignedOfficer:
		m.ClearAssignedOfficer()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeReporter:
		m.ResetReporter()
		return nil
	case report.EdgeCategory:
		m.ResetCategory()
		return nil
	case report.EdgeSubcategory:
		m.ResetSubcategory()
		return nil
	case report.EdgeAssignedOfficer:
		m.ResetAssignedOfficer()
		return nil
	case report.EdgeImages:
		m.ResetImages()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// SubcategoryMutation represents an operation that mutates the Subcategory nodes in the graph.
type SubcategoryMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	clearedFields   map[string]struct{}
	category        *uuid.UUID
	clearedcategory bool
	reports         map[uuid.UUID]struct{}
	removedreports  map[uuid.UUID]struct{}
	clearedreports  bool
	done            bool
	oldValue        func(context.Context) (*Subcategory, error)
	predicates      []predicate.Subcategory
}

var _ ent.Mutation = (*SubcategoryMutation)(nil)

// subcategoryOption allows management of the mutation configuration using functional options.
type subcategoryOption func(*SubcategoryMutation)

// newSubcategoryMutation creates new mutation for the Subcategory entity.
func newSubcategoryMutation(c config, op Op, opts ...subcategoryOption) *SubcategoryMutation {
	m := &SubcategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSubcategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubcategoryID sets the ID field of the mutation.
func withSubcategoryID(id uuid.UUID) subcategoryOption {
	return func(m *SubcategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Subcategory
		)
		m.oldValue = func(ctx context.Context) (*Subcategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subcategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubcategory sets the old Subcategory of the mutation.
func withSubcategory(node *Subcategory) subcategoryOption {
	return func(m *SubcategoryMutation) {
		m.oldValue = func(context.Context) (*Subcategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubcategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubcategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subcategory entities.
func (m *SubcategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubcategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubcategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subcategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SubcategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubcategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subcategory entity.
// If the Subcategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubcategoryMutation) ResetName() {
	m.name = nil
}

// SetCategoryID sets the "category_id" field.
func (m *SubcategoryMutation) SetCategoryID(u uuid.UUID) {
	m.category = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *SubcategoryMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Subcategory entity.
// If the Subcategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubcategoryMutation) OldCategoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *SubcategoryMutation) ResetCategoryID() {
	m.category = nil
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *SubcategoryMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[subcategory.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *SubcategoryMutation) CategoryCleared() bool {
	return m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *SubcategoryMutation) CategoryIDs() (ids []uuid.UUID) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *SubcategoryMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *SubcategoryMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *SubcategoryMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *SubcategoryMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *SubcategoryMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *SubcategoryMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *SubcategoryMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *SubcategoryMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the SubcategoryMutation builder.
func (m *SubcategoryMutation) Where(ps ...predicate.Subcategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubcategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubcategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subcategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubcategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubcategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subcategory).
func (m *SubcategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubcategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, subcategory.FieldName)
	}
	if m.category != nil {
		fields = append(fields, subcategory.FieldCategoryID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubcategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subcategory.FieldName:
		return m.Name()
	case subcategory.FieldCategoryID:
		return m.CategoryID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubcategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subcategory.FieldName:
		return m.OldName(ctx)
	case subcategory.FieldCategoryID:
		return m.OldCategoryID(ctx)
	}
	return nil, fmt.Errorf("unknown Subcategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubcategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subcategory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subcategory.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	}
	return fmt.Errorf("unknown Subcategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubcategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubcategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubcategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subcategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubcategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubcategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubcategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subcategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubcategoryMutation) ResetField(name string) error {
	switch name {
	case subcategory.FieldName:
		m.ResetName()
		return nil
	case subcategory.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	}
	return fmt.Errorf("unknown Subcategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubcategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.category != nil {
		edges = append(edges, subcategory.EdgeCategory)
	}
	if m.reports != nil {
		edges = append(edges, subcategory.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubcategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subcategory.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case subcategory.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubcategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreports != nil {
		edges = append(edges, subcategory.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubcategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subcategory.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubcategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcategory {
		edges = append(edges, subcategory.EdgeCategory)
	}
	if m.clearedreports {
		edges = append(edges, subcategory.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubcategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case subcategory.EdgeCategory:
		return m.clearedcategory
	case subcategory.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubcategoryMutation) ClearEdge(name string) error {
	switch name {
	case subcategory.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Subcategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubcategoryMutation) ResetEdge(name string) error {
	switch name {
	case subcategory.EdgeCategory:
		m.ResetCategory()
		return nil
	case subcategory.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Subcategory edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	email                 *string
	name                  *string
	password_hash         *string
	role                  *user.Role
	clearedFields         map[string]struct{}
	reports               map[uuid.UUID]struct{}
	removedreports        map[uuid.UUID]struct{}
	clearedreports        bool
	uploaded_media        map[uuid.UUID]struct{}
	removeduploaded_media map[uuid.UUID]struct{}
	cleareduploaded_media bool
	done                  bool
	oldValue              func(context.Context) (*User, error)
	predicates            []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *UserMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *UserMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *UserMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *UserMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *UserMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *UserMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *UserMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// AddUploadedMediumIDs adds the "uploaded_media" edge to the Media entity by ids.
func (m *UserMutation) AddUploadedMediumIDs(ids ...uuid.UUID) {
	if m.uploaded_media == nil {
		m.uploaded_media = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.uploaded_media[ids[i]] = struct{}{}
	}
}

// ClearUploadedMedia clears the "uploaded_media" edge to the Media entity.
func (m *UserMutation) ClearUploadedMedia() {
	m.cleareduploaded_media = true
}

// UploadedMediaCleared reports if the "uploaded_media" edge to the Media entity was cleared.
func (m *UserMutation) UploadedMediaCleared() bool {
	return m.cleareduploaded_media
}

// RemoveUploadedMediumIDs removes the "uploaded_media" edge to the Media entity by IDs.
func (m *UserMutation) RemoveUploadedMediumIDs(ids ...uuid.UUID) {
	if m.removeduploaded_media == nil {
		m.removeduploaded_media = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.uploaded_media, ids[i])
		m.removeduploaded_media[ids[i]] = struct{}{}
	}
}

// RemovedUploadedMedia returns the removed IDs of the "uploaded_media" edge to the Media entity.
func (m *UserMutation) RemovedUploadedMediaIDs() (ids []uuid.UUID) {
	for id := range m.removeduploaded_media {
		ids = append(ids, id)
	}
	return
}

// UploadedMediaIDs returns the "uploaded_media" edge IDs in the mutation.
func (m *UserMutation) UploadedMediaIDs() (ids []uuid.UUID) {
	for id := range m.uploaded_media {
		ids = append(ids, id)
	}
	return
}

// ResetUploadedMedia resets all changes to the "uploaded_media" edge.
func (m *UserMutation) ResetUploadedMedia() {
	m.uploaded_media = nil
	m.cleareduploaded_media = false
	m.removeduploaded_media = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.reports != nil {
		edges = append(edges, user.EdgeReports)
	}
	if m.uploaded_media != nil {
		edges = append(edges, user.EdgeUploadedMedia)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUploadedMedia:
		ids := make([]ent.Value, 0, len(m.uploaded_media))
		for id := range m.uploaded_media {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreports != nil {
		edges = append(edges, user.EdgeReports)
	}
	if m.removeduploaded_media != nil {
		edges = append(edges, user.EdgeUploadedMedia)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUploadedMedia:
		ids := make([]ent.Value, 0, len(m.removeduploaded_media))
		for id := range m.removeduploaded_media {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreports {
		edges = append(edges, user.EdgeReports)
	}
	if m.cleareduploaded_media {
		edges = append(edges, user.EdgeUploadedMedia)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeReports:
		return m.clearedreports
	case user.EdgeUploadedMedia:
		return m.cleareduploaded_media
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeReports:
		m.ResetReports()
		return nil
	case user.EdgeUploadedMedia:
		m.ResetUploadedMedia()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
