package controller

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/middleware"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReportController struct {
	reportService *service.ReportService
	queryService  *service.QueryService
}

func NewReportController(reportService *service.ReportService, queryService *service.QueryService) *ReportController {
	return &ReportController{
		reportService: reportService,
		queryService:  queryService,
	}
}

func parseListReportsRequest(r *http.Request) model.ListReportsRequest {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	return model.ListReportsRequest{
		Bucket:     q.Get("bucket"),
		Type:       q.Get("type"),
		CategoryID: q.Get("category_id"),
		Limit:      limit,
		Cursor:     q.Get("cursor"),
	}
}

// SubmitReport godoc
// @Summary      Submit Report
// @Description  File a new incident report. Image references must come from a prior media upload by the same user.
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        request body model.SubmitReportRequest true "Report Request"
// @Success      201  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      422  {object}  helper.ResponseError
// @Failure      429  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports [post]
func (c *ReportController) SubmitReport(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	var req model.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.Submit(r.Context(), userContext.ID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}

// GetReports godoc
// @Summary      Get Own Reports
// @Description  List the caller's own reports, newest first, with bucket/type/category filters applied together.
// @Tags         report
// @Produce      json
// @Param        bucket query string false "Status bucket (none, pending, resolved)"
// @Param        type query string false "Report type (all, emergency, non_emergency)"
// @Param        category_id query string false "Category ID (UUID) or 'all'"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        cursor query string false "Cursor for pagination"
// @Success      200  {object}  helper.ResponseWithPagination{data=[]model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports [get]
func (c *ReportController) GetReports(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	req := parseListReportsRequest(r)
	resp, nextCursor, hasNext, err := c.queryService.Query(r.Context(), service.CitizenScope(userContext.ID), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccessWithPagination(w, resp, nextCursor, hasNext)
}

// GetReport godoc
// @Summary      Get Report Detail
// @Description  Fetch one report. Citizens can only fetch their own reports.
// @Tags         report
// @Produce      json
// @Param        reportID path string true "Report ID (UUID)"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      401  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports/{reportID} [get]
func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	resp, err := c.queryService.GetReport(r.Context(), userContext, reportID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
