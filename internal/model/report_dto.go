package model

import (
	"github.com/google/uuid"
)

type SubmitReportRequest struct {
	Title           string     `json:"title" validate:"required,min=3,max=200"`
	Description     string     `json:"description" validate:"required,min=3"`
	Type            string     `json:"type" validate:"required,report_type"`
	CategoryID      uuid.UUID  `json:"category_id" validate:"required"`
	SubcategoryID   *uuid.UUID `json:"subcategory_id,omitempty"`
	LocationAddress *string    `json:"location_address,omitempty" validate:"omitempty,max=500"`
	LocationLat     *float64   `json:"location_lat,omitempty" validate:"omitempty,min=-90,max=90,required_with=LocationLng"`
	LocationLng     *float64   `json:"location_lng,omitempty" validate:"omitempty,min=-180,max=180,required_with=LocationLat"`
	ImageRefs       []string   `json:"image_refs,omitempty" validate:"omitempty,max=5,dive,required"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress resolved"`
}

// AssignOfficerRequest with a null officer_id unassigns.
type AssignOfficerRequest struct {
	OfficerID *uuid.UUID `json:"officer_id"`
}

type AttachResolutionRequest struct {
	Details string `json:"details" validate:"required,min=3"`
}

type ListReportsRequest struct {
	Bucket     string `json:"bucket" validate:"omitempty,status_bucket"`
	Type       string `json:"type" validate:"omitempty,oneof=all emergency non_emergency"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid|eq=all"`
	Limit      int    `json:"limit" validate:"omitempty,gt=0,max=100"`
	Cursor     string `json:"cursor" validate:"omitempty"`
}

type ReportResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Type                string     `json:"type"`
	Status              string     `json:"status"`
	CategoryID          uuid.UUID  `json:"category_id"`
	CategoryName        string     `json:"category_name,omitempty"`
	SubcategoryID       *uuid.UUID `json:"subcategory_id,omitempty"`
	SubcategoryName     string     `json:"subcategory_name,omitempty"`
	LocationAddress     *string    `json:"location_address,omitempty"`
	LocationLat         *float64   `json:"location_lat,omitempty"`
	LocationLng         *float64   `json:"location_lng,omitempty"`
	ImageRefs           []string   `json:"image_refs,omitempty"`
	ImageURLs           []string   `json:"image_urls,omitempty"`
	AssignedOfficerID   *uuid.UUID `json:"assigned_officer_id,omitempty"`
	AssignedOfficerName string     `json:"assigned_officer_name,omitempty"`
	ResolutionDetails   *string    `json:"resolution_details,omitempty"`
	ReporterID          uuid.UUID  `json:"reporter_id"`
	ReporterName        string     `json:"reporter_name,omitempty"`
	CreatedAt           string     `json:"created_at"`
	UpdatedAt           string     `json:"updated_at"`
}

type ReportStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
}
