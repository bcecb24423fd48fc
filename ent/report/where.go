// Code generated by ent, DO NOT EDIT.

package report

import (
	"CivicReportAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDescription, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCategoryID, v))
}

// SubcategoryID applies equality check predicate on the "subcategory_id" field. It's identical to SubcategoryIDEQ.
func SubcategoryID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSubcategoryID, v))
}

// LocationAddress applies equality check predicate on the "location_address" field. It's identical to LocationAddressEQ.
func LocationAddress(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLocationAddress, v))
}

// LocationLat applies equality check predicate on the "location_lat" field. It's identical to LocationLatEQ.
func LocationLat(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLocationLat, v))
}

// LocationLng applies equality check predicate on the "location_lng" field. It's identical to LocationLngEQ.
func LocationLng(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLocationLng, v))
}

// AssignedOfficerID applies equality check predicate on the "assigned_officer_id" field. It's identical to AssignedOfficerIDEQ.
func AssignedOfficerID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAssignedOfficerID, v))
}

// ResolutionDetails applies equality check predicate on the "resolution_details" field. It's identical to ResolutionDetailsEQ.
func ResolutionDetails(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolutionDetails, v))
}

// ReporterID applies equality check predicate on the "reporter_id" field. It's identical to ReporterIDEQ.
func ReporterID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDescription, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStatus, vs...))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCategoryID, vs...))
}

// SubcategoryIDEQ applies the EQ predicate on the "subcategory_id" field.
func SubcategoryIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSubcategoryID, v))
}

// SubcategoryIDNEQ applies the NEQ predicate on the "subcategory_id" field.
func SubcategoryIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSubcategoryID, v))
}

// SubcategoryIDIn applies the In predicate on the "subcategory_id" field.
func SubcategoryIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSubcategoryID, vs...))
}

// SubcategoryIDNotIn applies the NotIn predicate on the "subcategory_id" field.
func SubcategoryIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSubcategoryID, vs...))
}

// SubcategoryIDIsNil applies the IsNil predicate on the "subcategory_id" field.
func SubcategoryIDIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldSubcategoryID))
}

// SubcategoryIDNotNil applies the NotNil predicate on the "subcategory_id" field.
func SubcategoryIDNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldSubcategoryID))
}

// LocationAddressEQ applies the EQ predicate on the "location_address" field.
func LocationAddressEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLocationAddress, v))
}

// LocationAddressNEQ applies the NEQ predicate on the "location_address" field.
func LocationAddressNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLocationAddress, v))
}

// LocationAddressIn applies the In predicate on the "location_address" field.
func LocationAddressIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLocationAddress, vs...))
}

// LocationAddressNotIn applies the NotIn predicate on the "location_address" field.
func LocationAddressNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLocationAddress, vs...))
}

// LocationAddressGT applies the GT predicate on the "location_address" field.
func LocationAddressGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLocationAddress, v))
}

// LocationAddressGTE applies the GTE predicate on the "location_address" field.
func LocationAddressGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLocationAddress, v))
}

// LocationAddressLT applies the LT predicate on the "location_address" field.
func LocationAddressLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLocationAddress, v))
}

// LocationAddressLTE applies the LTE predicate on the "location_address" field.
func LocationAddressLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLocationAddress, v))
}

// LocationAddressContains applies the Contains predicate on the "location_address" field.
func LocationAddressContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldLocationAddress, v))
}

// LocationAddressHasPrefix applies the HasPrefix predicate on the "location_address" field.
func LocationAddressHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldLocationAddress, v))
}

// LocationAddressHasSuffix applies the HasSuffix predicate on the "location_address" field.
func LocationAddressHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldLocationAddress, v))
}

// LocationAddressIsNil applies the IsNil predicate on the "location_address" field.
func LocationAddressIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLocationAddress))
}

// LocationAddressNotNil applies the NotNil predicate on the "location_address" field.
func LocationAddressNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLocationAddress))
}

// LocationAddressEqualFold applies the EqualFold predicate on the "location_address" field.
func LocationAddressEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldLocationAddress, v))
}

// LocationAddressContainsFold applies the ContainsFold predicate on the "location_address" field.
func LocationAddressContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldLocationAddress, v))
}

// LocationLatEQ applies the EQ predicate on the "location_lat" field.
func LocationLatEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLocationLat, v))
}

// LocationLatNEQ applies the NEQ predicate on the "location_lat" field.
func LocationLatNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLocationLat, v))
}

// LocationLatIn applies the In predicate on the "location_lat" field.
func LocationLatIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLocationLat, vs...))
}

// LocationLatNotIn applies the NotIn predicate on the "location_lat" field.
func LocationLatNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLocationLat, vs...))
}

// LocationLatGT applies the GT predicate on the "location_lat" field.
func LocationLatGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLocationLat, v))
}

// LocationLatGTE applies the GTE predicate on the "location_lat" field.
func LocationLatGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLocationLat, v))
}

// LocationLatLT applies the LT predicate on the "location_lat" field.
func LocationLatLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLocationLat, v))
}

// LocationLatLTE applies the LTE predicate on the "location_lat" field.
func LocationLatLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLocationLat, v))
}

// LocationLatIsNil applies the IsNil predicate on the "location_lat" field.
func LocationLatIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLocationLat))
}

// LocationLatNotNil applies the NotNil predicate on the "location_lat" field.
func LocationLatNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLocationLat))
}

// LocationLngEQ applies the EQ predicate on the "location_lng" field.
func LocationLngEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLocationLng, v))
}

// LocationLngNEQ applies the NEQ predicate on the "location_lng" field.
func LocationLngNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLocationLng, v))
}

// LocationLngIn applies the In predicate on the "location_lng" field.
func LocationLngIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLocationLng, vs...))
}

// LocationLngNotIn applies the NotIn predicate on the "location_lng" field.
func LocationLngNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLocationLng, vs...))
}

// LocationLngGT applies the GT predicate on the "location_lng" field.
func LocationLngGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLocationLng, v))
}

// LocationLngGTE applies the GTE predicate on the "location_lng" field.
func LocationLngGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLocationLng, v))
}

// LocationLngLT applies the LT predicate on the "location_lng" field.
func LocationLngLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLocationLng, v))
}

// LocationLngLTE applies the LTE predicate on the "location_lng" field.
func LocationLngLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLocationLng, v))
}

// LocationLngIsNil applies the IsNil predicate on the "location_lng" field.
func LocationLngIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLocationLng))
}

// LocationLngNotNil applies the NotNil predicate on the "location_lng" field.
func LocationLngNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLocationLng))
}

// ImageRefsIsNil applies the IsNil predicate on the "image_refs" field.
func ImageRefsIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldImageRefs))
}

// ImageRefsNotNil applies the NotNil predicate on the "image_refs" field.
func ImageRefsNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldImageRefs))
}

// AssignedOfficerIDEQ applies the EQ predicate on the "assigned_officer_id" field.
func AssignedOfficerIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAssignedOfficerID, v))
}

// AssignedOfficerIDNEQ applies the NEQ predicate on the "assigned_officer_id" field.
func AssignedOfficerIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAssignedOfficerID, v))
}

// AssignedOfficerIDIn applies the In predicate on the "assigned_officer_id" field.
func AssignedOfficerIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAssignedOfficerID, vs...))
}

// AssignedOfficerIDNotIn applies the NotIn predicate on the "assigned_officer_id" field.
func AssignedOfficerIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAssignedOfficerID, vs...))
}

// AssignedOfficerIDIsNil applies the IsNil predicate on the "assigned_officer_id" field.
func AssignedOfficerIDIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldAssignedOfficerID))
}

// AssignedOfficerIDNotNil applies the NotNil predicate on the "assigned_officer_id" field.
func AssignedOfficerIDNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldAssignedOfficerID))
}

// ResolutionDetailsEQ applies the EQ predicate on the "resolution_details" field.
func ResolutionDetailsEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldResolutionDetails, v))
}

// ResolutionDetailsNEQ applies the NEQ predicate on the "resolution_details" field.
func ResolutionDetailsNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldResolutionDetails, v))
}

// ResolutionDetailsIn applies the In predicate on the "resolution_details" field.
func ResolutionDetailsIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldResolutionDetails, vs...))
}

// ResolutionDetailsNotIn applies the NotIn predicate on the "resolution_details" field.
func ResolutionDetailsNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldResolutionDetails, vs...))
}

// ResolutionDetailsGT applies the GT predicate on the "resolution_details" field.
func ResolutionDetailsGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldResolutionDetails, v))
}

// ResolutionDetailsGTE applies the GTE predicate on the "resolution_details" field.
func ResolutionDetailsGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldResolutionDetails, v))
}

// ResolutionDetailsLT applies the LT predicate on the "resolution_details" field.
func ResolutionDetailsLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldResolutionDetails, v))
}

// ResolutionDetailsLTE applies the LTE predicate on the "resolution_details" field.
func ResolutionDetailsLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldResolutionDetails, v))
}

// ResolutionDetailsContains applies the Contains predicate on the "resolution_details" field.
func ResolutionDetailsContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldResolutionDetails, v))
}

// ResolutionDetailsHasPrefix applies the HasPrefix predicate on the "resolution_details" field.
func ResolutionDetailsHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldResolutionDetails, v))
}

// ResolutionDetailsHasSuffix applies the HasSuffix predicate on the "resolution_details" field.
func ResolutionDetailsHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldResolutionDetails, v))
}

// ResolutionDetailsIsNil applies the IsNil predicate on the "resolution_details" field.
func ResolutionDetailsIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldResolutionDetails))
}

// ResolutionDetailsNotNil applies the NotNil predicate on the "resolution_details" field.
func ResolutionDetailsNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldResolutionDetails))
}

// ResolutionDetailsEqualFold applies the EqualFold predicate on the "resolution_details" field.
func ResolutionDetailsEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldResolutionDetails, v))
}

// ResolutionDetailsContainsFold applies the ContainsFold predicate on the "resolution_details" field.
func ResolutionDetailsContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldResolutionDetails, v))
}

// ReporterIDEQ applies the EQ predicate on the "reporter_id" field.
func ReporterIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterID, v))
}

// ReporterIDNEQ applies the NEQ predicate on the "reporter_id" field.
func ReporterIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReporterID, v))
}

// ReporterIDIn applies the In predicate on the "reporter_id" field.
func ReporterIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReporterID, vs...))
}

// ReporterIDNotIn applies the NotIn predicate on the "reporter_id" field.
func ReporterIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReporterID, vs...))
}

// HasReporter applies the HasEdge predicate on the "reporter" edge.
func HasReporter() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReporterWith applies the HasEdge predicate on the "reporter" edge with a given conditions (other predicates).
func HasReporterWith(preds ...predicate.User) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newReporterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubcategory applies the HasEdge predicate on the "subcategory" edge.
func HasSubcategory() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubcategoryTable, SubcategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubcategoryWith applies the HasEdge predicate on the "subcategory" edge with a given conditions (other predicates).
func HasSubcategoryWith(preds ...predicate.Subcategory) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newSubcategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedOfficer applies the HasEdge predicate on the "assigned_officer" edge.
func HasAssignedOfficer() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignedOfficerTable, AssignedOfficerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedOfficerWith applies the HasEdge predicate on the "assigned_officer" edge with a given conditions (other predicates).
func HasAssignedOfficerWith(preds ...predicate.Officer) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newAssignedOfficerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.Media) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
