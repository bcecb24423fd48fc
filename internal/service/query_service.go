package service

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/constant"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Scope is the role-based visibility restriction applied to a query: citizens
// see their own reports, admins see everything.
type Scope struct {
	ReporterID *uuid.UUID
}

func CitizenScope(userID uuid.UUID) Scope {
	return Scope{ReporterID: &userID}
}

func AdminScope() Scope {
	return Scope{}
}

// QueryService is the single read path for report lists. Views re-run these
// queries on every propagation event instead of patching local state.
type QueryService struct {
	repo      *repository.Repository
	cfg       *config.AppConfig
	validator *validator.Validate
}

func NewQueryService(repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate) *QueryService {
	return &QueryService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

func (s *QueryService) buildFilter(scope Scope, req model.ListReportsRequest) (repository.ReportFilter, error) {
	filter := repository.ReportFilter{
		ReporterID: scope.ReporterID,
		Bucket:     req.Bucket,
		Type:       req.Type,
		Limit:      req.Limit,
		Cursor:     req.Cursor,
	}

	if req.CategoryID != "" && req.CategoryID != "all" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return repository.ReportFilter{}, helper.NewBadRequestError("Invalid category filter")
		}
		filter.CategoryID = &categoryID
	}

	return filter, nil
}

// Query returns the reports matching every filter dimension at once, newest
// first. An empty result is a success, not an error.
func (s *QueryService) Query(ctx context.Context, scope Scope, req model.ListReportsRequest) ([]*model.ReportResponse, string, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, "", false, helper.NewBadRequestError("")
	}

	filter, err := s.buildFilter(scope, req)
	if err != nil {
		return nil, "", false, err
	}

	// Reads are idempotent, so a transient store failure is retried with
	// backoff instead of surfacing immediately.
	type listResult struct {
		reports    []*ent.Report
		nextCursor string
		hasNext    bool
	}

	result, err := helper.RetryWithBackoff(func() (listResult, bool, error) {
		reports, nextCursor, hasNext, err := s.repo.Report.List(ctx, filter)
		if err != nil {
			_, isAppErr := err.(*helper.AppError)
			retryable := ctx.Err() == nil && !isAppErr && !ent.IsNotFound(err)
			return listResult{}, retryable, err
		}
		return listResult{reports, nextCursor, hasNext}, false, nil
	}, 2, 200*time.Millisecond)
	if err != nil {
		if appErr, ok := err.(*helper.AppError); ok {
			return nil, "", false, appErr
		}
		slog.Error("Failed to query reports", "error", err)
		return nil, "", false, helper.NewInternalServerError("")
	}

	return buildReportResponses(s.cfg, result.reports), result.nextCursor, result.hasNext, nil
}

// GetReport returns a single report, visible only to its reporter and to
// admins. Anyone else gets a not-found rather than a hint the id exists.
func (s *QueryService) GetReport(ctx context.Context, viewer *model.UserDTO, reportID uuid.UUID) (*model.ReportResponse, error) {
	r, err := s.repo.Report.GetByID(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to query report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if viewer.Role != constant.RoleAdmin && r.ReporterID != viewer.ID {
		return nil, helper.NewNotFoundError("Report not found")
	}

	return buildReportResponse(s.cfg, r), nil
}

// Stats aggregates counts for the dashboard header: total, active (pending
// plus in_progress) and resolved, under the same type/category scope as the
// list views.
func (s *QueryService) Stats(ctx context.Context, scope Scope, req model.ListReportsRequest) (*model.ReportStatsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	filter, err := s.buildFilter(scope, req)
	if err != nil {
		return nil, err
	}

	total, active, resolved, err := s.repo.Report.Stats(ctx, filter)
	if err != nil {
		slog.Error("Failed to aggregate report stats", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.ReportStatsResponse{
		Total:    total,
		Active:   active,
		Resolved: resolved,
	}, nil
}
