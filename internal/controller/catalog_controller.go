package controller

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CatalogController struct {
	catalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetCategories godoc
// @Summary      Get Categories
// @Description  List report categories, optionally restricted to one report type.
// @Tags         catalog
// @Produce      json
// @Param        type query string false "Filter by report type (emergency, non_emergency)"
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.CategoryResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/categories [get]
func (c *CatalogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	req := model.ListCategoriesRequest{
		Type: r.URL.Query().Get("type"),
	}

	resp, err := c.catalogService.ListCategories(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// GetSubcategories godoc
// @Summary      Get Subcategories
// @Description  List the subcategories of one category.
// @Tags         catalog
// @Produce      json
// @Param        categoryID path string true "Category ID (UUID)"
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.SubcategoryResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/categories/{categoryID}/subcategories [get]
func (c *CatalogController) GetSubcategories(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid category ID"))
		return
	}

	resp, err := c.catalogService.ListSubcategories(r.Context(), categoryID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
