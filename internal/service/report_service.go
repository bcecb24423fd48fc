package service

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/constant"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/repository"
	"CivicReportAPI/internal/websocket"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// reportLockStripes bounds the lock table.
const reportLockStripes = 64

// ReportService owns every mutation of a report. No other component writes
// report fields, so the transition rules here cannot be bypassed.
type ReportService struct {
	client       *ent.Client
	repo         *repository.Repository
	cfg          *config.AppConfig
	validator    *validator.Validate
	hub          *websocket.Hub
	emailAdapter *adapter.EmailAdapter
	reportLocks  [reportLockStripes]sync.Mutex
}

func NewReportService(client *ent.Client, repo *repository.Repository, cfg *config.AppConfig, validator *validator.Validate, hub *websocket.Hub, emailAdapter *adapter.EmailAdapter) *ReportService {
	return &ReportService{
		client:       client,
		repo:         repo,
		cfg:          cfg,
		validator:    validator,
		hub:          hub,
		emailAdapter: emailAdapter,
	}
}

// lockReport serializes write+broadcast for one report so subscribers see
// events in commit order. UUIDv7 keeps the trailing bytes random, so the
// last byte picks the stripe.
func (s *ReportService) lockReport(id uuid.UUID) func() {
	mu := &s.reportLocks[int(id[len(id)-1])%reportLockStripes]
	mu.Lock()
	var once sync.Once
	return func() { once.Do(mu.Unlock) }
}

func (s *ReportService) Submit(ctx context.Context, reporterID uuid.UUID, req model.SubmitReportRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		return nil, helper.NewBadRequestError("Title and description are required")
	}

	category, err := s.repo.Catalog.GetCategory(ctx, req.CategoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Category not found")
		}
		slog.Error("Failed to query category", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if string(category.Type) != req.Type {
		return nil, helper.NewUnprocessableError("Category does not belong to the given report type")
	}

	if req.SubcategoryID != nil {
		subcategory, err := s.repo.Catalog.GetSubcategory(ctx, *req.SubcategoryID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, helper.NewNotFoundError("Subcategory not found")
			}
			slog.Error("Failed to query subcategory", "error", err)
			return nil, helper.NewInternalServerError("")
		}
		if subcategory.CategoryID != req.CategoryID {
			return nil, helper.NewUnprocessableError("Subcategory does not belong to the given category")
		}
	}

	var mediaIDs []uuid.UUID
	if len(req.ImageRefs) > 0 {
		if len(req.ImageRefs) > constant.MaxReportImages {
			return nil, helper.NewBadRequestError(fmt.Sprintf("A report may carry at most %d images", constant.MaxReportImages))
		}

		owned, err := s.repo.Media.GetOwnedByReferences(ctx, reporterID, req.ImageRefs)
		if err != nil {
			slog.Error("Failed to resolve image references", "error", err)
			return nil, helper.NewInternalServerError("")
		}
		if len(owned) != len(req.ImageRefs) {
			return nil, helper.NewBadRequestError("Unknown image reference")
		}
		for _, m := range owned {
			mediaIDs = append(mediaIDs, m.ID)
		}
	}

	create := s.client.Report.Create().
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetType(report.Type(req.Type)).
		SetCategoryID(req.CategoryID).
		SetReporterID(reporterID)

	if req.SubcategoryID != nil {
		create = create.SetSubcategoryID(*req.SubcategoryID)
	}
	if req.LocationAddress != nil && strings.TrimSpace(*req.LocationAddress) != "" {
		create = create.SetLocationAddress(strings.TrimSpace(*req.LocationAddress))
	}
	if req.LocationLat != nil {
		create = create.SetLocationLat(*req.LocationLat)
	}
	if req.LocationLng != nil {
		create = create.SetLocationLng(*req.LocationLng)
	}
	if len(req.ImageRefs) > 0 {
		create = create.SetImageRefs(req.ImageRefs)
	}

	created, err := create.Save(ctx)
	if err != nil {
		slog.Error("Failed to create report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if err := s.repo.Media.AttachToReport(ctx, mediaIDs, created.ID); err != nil {
		slog.Error("Failed to attach media to report", "error", err, "reportID", created.ID)
	}

	full, err := s.repo.Report.GetByID(ctx, created.ID)
	if err != nil {
		slog.Error("Failed to reload created report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := buildReportResponse(s.cfg, full)
	s.emit(websocket.EventReportCreated, full, resp)

	slog.Info("Report submitted", "reportID", full.ID, "type", full.Type, "category", full.CategoryID)
	return resp, nil
}

// AdvanceStatus applies pending->in_progress or in_progress->resolved and
// nothing else. The second check is a compare-and-set in the store, so two
// admins racing on the same report resolve to exactly one recorded
// transition; the loser gets the same conflict error a stale client would.
func (s *ReportService) AdvanceStatus(ctx context.Context, reportID uuid.UUID, req model.AdvanceStatusRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	unlock := s.lockReport(reportID)
	defer unlock()

	current, err := s.repo.Report.GetByID(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to query report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	from := string(current.Status)
	if !helper.CanTransition(from, req.Status) {
		return nil, helper.NewConflictError(fmt.Sprintf("Illegal status transition from %s to %s", from, req.Status))
	}

	affected, err := s.repo.Report.AdvanceStatus(ctx, reportID, from, req.Status)
	if err != nil {
		slog.Error("Failed to advance report status", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if affected == 0 {
		return nil, helper.NewConflictError(fmt.Sprintf("Illegal status transition from %s to %s", from, req.Status))
	}

	full, err := s.repo.Report.GetByID(ctx, reportID)
	if err != nil {
		slog.Error("Failed to reload report after status change", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := buildReportResponse(s.cfg, full)
	s.emit(websocket.EventReportStatus, full, resp)

	slog.Info("Report status advanced", "reportID", reportID, "from", from, "to", req.Status)
	return resp, nil
}

// AssignOfficer sets or clears the assignment; a null officer id unassigns.
// Allowed in any status, and unassigning an unassigned report is a no-op.
func (s *ReportService) AssignOfficer(ctx context.Context, reportID uuid.UUID, req model.AssignOfficerRequest) (*model.ReportResponse, error) {
	unlock := s.lockReport(reportID)
	defer unlock()

	if _, err := s.repo.Report.GetByID(ctx, reportID); err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to query report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if req.OfficerID != nil {
		if _, err := s.repo.Officer.GetByID(ctx, *req.OfficerID); err != nil {
			if ent.IsNotFound(err) {
				return nil, helper.NewNotFoundError("Officer not found")
			}
			slog.Error("Failed to query officer", "error", err)
			return nil, helper.NewInternalServerError("")
		}
	}

	if err := s.repo.Report.SetOfficer(ctx, reportID, req.OfficerID); err != nil {
		slog.Error("Failed to assign officer", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	full, err := s.repo.Report.GetByID(ctx, reportID)
	if err != nil {
		slog.Error("Failed to reload report after assignment", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := buildReportResponse(s.cfg, full)
	s.emit(websocket.EventReportOfficer, full, resp)

	return resp, nil
}

// AttachResolution stores the resolution text in any status; the UI enforces
// ordering, the controller stays permissive so a partial update cannot lock
// an admin out. The reporter is only notified when the report is already
// resolved.
func (s *ReportService) AttachResolution(ctx context.Context, reportID uuid.UUID, req model.AttachResolutionRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	unlock := s.lockReport(reportID)
	defer unlock()

	if _, err := s.repo.Report.GetByID(ctx, reportID); err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to query report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if err := s.repo.Report.SetResolutionDetails(ctx, reportID, strings.TrimSpace(req.Details)); err != nil {
		slog.Error("Failed to attach resolution details", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	full, err := s.repo.Report.GetByID(ctx, reportID)
	if err != nil {
		slog.Error("Failed to reload report after resolution attach", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	resp := buildReportResponse(s.cfg, full)
	s.emit(websocket.EventReportResolution, full, resp)
	unlock()

	if string(full.Status) == constant.StatusResolved {
		s.notifyReporterResolved(full)
	}

	return resp, nil
}

func (s *ReportService) emit(eventType websocket.EventType, r *ent.Report, payload *model.ReportResponse) {
	if s.hub == nil {
		return
	}

	s.hub.BroadcastReport(websocket.Event{
		Type:    eventType,
		Payload: payload,
		Meta: &websocket.EventMeta{
			Timestamp: time.Now().UnixMilli(),
			ReportID:  r.ID,
		},
	}, r.ReporterID)
}

func (s *ReportService) notifyReporterResolved(r *ent.Report) {
	if s.emailAdapter == nil || s.cfg.SMTPHost == "" || r.Edges.Reporter == nil {
		return
	}

	subject := fmt.Sprintf("Your report %q has been resolved", r.Title)
	details := ""
	if r.ResolutionDetails != nil {
		details = *r.ResolutionDetails
	}
	body := fmt.Sprintf("<p>Hello %s,</p><p>Your report <b>%s</b> has been resolved.</p><p>%s</p>",
		r.Edges.Reporter.Name, r.Title, details)

	send := func() {
		if err := s.emailAdapter.Send([]string{r.Edges.Reporter.Email}, subject, body); err != nil {
			slog.Error("Failed to send resolution email", "error", err, "reportID", r.ID)
		}
	}

	if s.cfg.SMTPAsync {
		go send()
	} else {
		send()
	}
}
