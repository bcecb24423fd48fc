package controller

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdminController struct {
	reportService  *service.ReportService
	queryService   *service.QueryService
	officerService *service.OfficerService
}

func NewAdminController(reportService *service.ReportService, queryService *service.QueryService, officerService *service.OfficerService) *AdminController {
	return &AdminController{
		reportService:  reportService,
		queryService:   queryService,
		officerService: officerService,
	}
}

// GetReports godoc
// @Summary      Get All Reports
// @Description  List every citizen's reports, newest first, with bucket/type/category filters applied together. Requires Admin privileges.
// @Tags         admin
// @Produce      json
// @Param        bucket query string false "Status bucket (none, pending, resolved)"
// @Param        type query string false "Report type (all, emergency, non_emergency)"
// @Param        category_id query string false "Category ID (UUID) or 'all'"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        cursor query string false "Cursor for pagination"
// @Success      200  {object}  helper.ResponseWithPagination{data=[]model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/reports [get]
func (c *AdminController) GetReports(w http.ResponseWriter, r *http.Request) {
	req := parseListReportsRequest(r)
	resp, nextCursor, hasNext, err := c.queryService.Query(r.Context(), service.AdminScope(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccessWithPagination(w, resp, nextCursor, hasNext)
}

// GetStats godoc
// @Summary      Get Report Stats
// @Description  Count reports by bucket, honoring the same filters as the list endpoint. Requires Admin privileges.
// @Tags         admin
// @Produce      json
// @Param        type query string false "Report type (all, emergency, non_emergency)"
// @Param        category_id query string false "Category ID (UUID) or 'all'"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportStatsResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/reports/stats [get]
func (c *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	req := parseListReportsRequest(r)
	resp, err := c.queryService.Stats(r.Context(), service.AdminScope(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// GetOfficers godoc
// @Summary      Get Officers
// @Description  List officers available for assignment. Requires Admin privileges.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.OfficerResponse}
// @Failure      403  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/officers [get]
func (c *AdminController) GetOfficers(w http.ResponseWriter, r *http.Request) {
	resp, err := c.officerService.ListOfficers(r.Context())
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// AdvanceStatus godoc
// @Summary      Advance Report Status
// @Description  Move a report one step forward in its lifecycle (pending to in_progress, in_progress to resolved). Requires Admin privileges.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        reportID path string true "Report ID (UUID)"
// @Param        request body model.AdvanceStatusRequest true "Status Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      409  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/reports/{reportID}/status [patch]
func (c *AdminController) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	var req model.AdvanceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.AdvanceStatus(r.Context(), reportID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// AssignOfficer godoc
// @Summary      Assign Officer
// @Description  Assign an officer to a report, or pass a null officer_id to unassign. Requires Admin privileges.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        reportID path string true "Report ID (UUID)"
// @Param        request body model.AssignOfficerRequest true "Assignment Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/reports/{reportID}/officer [patch]
func (c *AdminController) AssignOfficer(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	var req model.AssignOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.AssignOfficer(r.Context(), reportID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// AttachResolution godoc
// @Summary      Attach Resolution
// @Description  Record resolution details on a report. Requires Admin privileges.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        reportID path string true "Report ID (UUID)"
// @Param        request body model.AttachResolutionRequest true "Resolution Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportResponse}
// @Failure      400  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/admin/reports/{reportID}/resolution [patch]
func (c *AdminController) AttachResolution(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	var req model.AttachResolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.AttachResolution(r.Context(), reportID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
