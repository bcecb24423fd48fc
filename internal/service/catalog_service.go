package service

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CatalogService struct {
	repo      *repository.Repository
	validator *validator.Validate
}

func NewCatalogService(repo *repository.Repository, validator *validator.Validate) *CatalogService {
	return &CatalogService{
		repo:      repo,
		validator: validator,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context, req model.ListCategoriesRequest) ([]*model.CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	categories, err := s.repo.Catalog.ListCategories(ctx, req.Type)
	if err != nil {
		slog.Error("Failed to list categories", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	out := make([]*model.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &model.CategoryResponse{
			ID:   c.ID,
			Name: c.Name,
			Type: string(c.Type),
		})
	}
	return out, nil
}

func (s *CatalogService) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*model.SubcategoryResponse, error) {
	if _, err := s.repo.Catalog.GetCategory(ctx, categoryID); err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Category not found")
		}
		slog.Error("Failed to query category", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	subcategories, err := s.repo.Catalog.ListSubcategories(ctx, categoryID)
	if err != nil {
		slog.Error("Failed to list subcategories", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	out := make([]*model.SubcategoryResponse, 0, len(subcategories))
	for _, sc := range subcategories {
		out = append(out, &model.SubcategoryResponse{
			ID:         sc.ID,
			Name:       sc.Name,
			CategoryID: sc.CategoryID,
		})
	}
	return out, nil
}
