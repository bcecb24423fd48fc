package repository

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/subcategory"
	"context"

	"github.com/google/uuid"
)

// CatalogRepository reads the administratively seeded classification data.
// There is no write path; seeding happens out of band.
type CatalogRepository struct {
	client *ent.Client
}

func NewCatalogRepository(client *ent.Client) *CatalogRepository {
	return &CatalogRepository{
		client: client,
	}
}

func (r *CatalogRepository) ListCategories(ctx context.Context, categoryType string) ([]*ent.Category, error) {
	query := r.client.Category.Query()

	if categoryType != "" {
		query = query.Where(category.TypeEQ(category.Type(categoryType)))
	}

	return query.
		Order(ent.Asc(category.FieldName)).
		All(ctx)
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id uuid.UUID) (*ent.Category, error) {
	return r.client.Category.Get(ctx, id)
}

func (r *CatalogRepository) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*ent.Subcategory, error) {
	return r.client.Subcategory.Query().
		Where(subcategory.CategoryID(categoryID)).
		Order(ent.Asc(subcategory.FieldName)).
		All(ctx)
}

func (r *CatalogRepository) GetSubcategory(ctx context.Context, id uuid.UUID) (*ent.Subcategory, error) {
	return r.client.Subcategory.Get(ctx, id)
}
