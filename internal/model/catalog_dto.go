package model

import "github.com/google/uuid"

type ListCategoriesRequest struct {
	Type string `json:"type" validate:"omitempty,report_type"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

type SubcategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
}

type OfficerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Contact    *string   `json:"contact,omitempty"`
}
