package repository

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/constant"
	"CivicReportAPI/internal/helper"
	"context"
	"time"

	"github.com/google/uuid"
)

const reportCursorDelimiter = "|||"

type ReportRepository struct {
	client *ent.Client
}

func NewReportRepository(client *ent.Client) *ReportRepository {
	return &ReportRepository{
		client: client,
	}
}

// ReportFilter combines the role scope with the three filter dimensions. All
// set dimensions apply together (logical AND).
type ReportFilter struct {
	ReporterID *uuid.UUID
	Bucket     string
	Type       string
	CategoryID *uuid.UUID
	Limit      int
	Cursor     string
}

// List returns reports matching the filter, newest first, paged by an opaque
// cursor. Ordering tie-breaks on id so equal timestamps page deterministically.
func (r *ReportRepository) List(ctx context.Context, filter ReportFilter) ([]*ent.Report, string, bool, error) {
	query := r.client.Report.Query()

	if filter.ReporterID != nil {
		query = query.Where(report.ReporterID(*filter.ReporterID))
	}

	if statuses := helper.BucketStatuses(filter.Bucket); statuses != nil {
		converted := make([]report.Status, 0, len(statuses))
		for _, s := range statuses {
			converted = append(converted, report.Status(s))
		}
		query = query.Where(report.StatusIn(converted...))
	}

	if filter.Type == constant.TypeEmergency || filter.Type == constant.TypeNonEmergency {
		query = query.Where(report.TypeEQ(report.Type(filter.Type)))
	}

	if filter.CategoryID != nil {
		query = query.Where(report.CategoryID(*filter.CategoryID))
	}

	if filter.Cursor != "" {
		createdAtStr, idStr, err := helper.DecodeCursor(filter.Cursor, reportCursorDelimiter)
		if err != nil {
			return nil, "", false, helper.NewBadRequestError("Invalid cursor")
		}

		cursorCreatedAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, "", false, helper.NewBadRequestError("Invalid cursor")
		}

		cursorID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, "", false, helper.NewBadRequestError("Invalid cursor")
		}

		query = query.Where(
			report.Or(
				report.CreatedAtLT(cursorCreatedAt),
				report.And(
					report.CreatedAtEQ(cursorCreatedAt),
					report.IDLT(cursorID),
				),
			),
		)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	reports, err := query.
		Order(ent.Desc(report.FieldCreatedAt), ent.Desc(report.FieldID)).
		Limit(limit + 1).
		WithCategory().
		WithSubcategory().
		WithAssignedOfficer().
		WithReporter().
		All(ctx)
	if err != nil {
		return nil, "", false, err
	}

	hasNext := false
	var nextCursor string

	if len(reports) > limit {
		hasNext = true
		reports = reports[:limit]
		last := reports[len(reports)-1]
		nextCursor = helper.EncodeCursor(
			last.CreatedAt.UTC().Format(time.RFC3339Nano),
			last.ID.String(),
			reportCursorDelimiter,
		)
	}

	return reports, nextCursor, hasNext, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	return r.client.Report.Query().
		Where(report.ID(id)).
		WithCategory().
		WithSubcategory().
		WithAssignedOfficer().
		WithReporter().
		Only(ctx)
}

// ListPendingBefore returns reports still sitting in pending that were filed
// before the cutoff, oldest first.
func (r *ReportRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*ent.Report, error) {
	return r.client.Report.Query().
		Where(
			report.StatusEQ(report.StatusPending),
			report.CreatedAtLT(cutoff),
		).
		Order(ent.Asc(report.FieldCreatedAt)).
		All(ctx)
}

// AdvanceStatus performs a compare-and-set on the status column. A zero
// return means the report was not in the expected source status when the
// update ran, which includes losing a race with a concurrent transition.
func (r *ReportRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to string) (int, error) {
	return r.client.Report.Update().
		Where(
			report.ID(id),
			report.StatusEQ(report.Status(from)),
		).
		SetStatus(report.Status(to)).
		Save(ctx)
}

func (r *ReportRepository) SetOfficer(ctx context.Context, id uuid.UUID, officerID *uuid.UUID) error {
	update := r.client.Report.UpdateOneID(id)
	if officerID != nil {
		update = update.SetAssignedOfficerID(*officerID)
	} else {
		update = update.ClearAssignedOfficerID()
	}
	return update.Exec(ctx)
}

func (r *ReportRepository) SetResolutionDetails(ctx context.Context, id uuid.UUID, details string) error {
	return r.client.Report.UpdateOneID(id).
		SetResolutionDetails(details).
		Exec(ctx)
}

// Stats counts reports per bucket under the same type/category scope the
// list uses. Active folds in_progress into pending, matching the triage view.
func (r *ReportRepository) Stats(ctx context.Context, filter ReportFilter) (total, active, resolved int, err error) {
	scoped := func() *ent.ReportQuery {
		q := r.client.Report.Query()
		if filter.ReporterID != nil {
			q = q.Where(report.ReporterID(*filter.ReporterID))
		}
		if filter.Type == constant.TypeEmergency || filter.Type == constant.TypeNonEmergency {
			q = q.Where(report.TypeEQ(report.Type(filter.Type)))
		}
		if filter.CategoryID != nil {
			q = q.Where(report.CategoryID(*filter.CategoryID))
		}
		return q
	}

	total, err = scoped().Count(ctx)
	if err != nil {
		return 0, 0, 0, err
	}

	active, err = scoped().
		Where(report.StatusIn(report.StatusPending, report.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return 0, 0, 0, err
	}

	resolved, err = scoped().
		Where(report.StatusEQ(report.StatusResolved)).
		Count(ctx)
	if err != nil {
		return 0, 0, 0, err
	}

	return total, active, resolved, nil
}
