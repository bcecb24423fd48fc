package repository

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/media"
	"context"
	"time"

	"github.com/google/uuid"
)

type MediaRepository struct {
	client *ent.Client
}

func NewMediaRepository(client *ent.Client) *MediaRepository {
	return &MediaRepository{
		client: client,
	}
}

func (r *MediaRepository) Create(ctx context.Context, fileName, originalName string, fileSize int64, mimeType string, uploaderID uuid.UUID) (*ent.Media, error) {
	return r.client.Media.Create().
		SetFileName(fileName).
		SetOriginalName(originalName).
		SetFileSize(fileSize).
		SetMimeType(mimeType).
		SetUploadedByID(uploaderID).
		Save(ctx)
}

func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Media.DeleteOneID(id).Exec(ctx)
}

// GetOwnedByReferences resolves opaque references back to media rows,
// restricted to the given uploader so one user cannot attach another's files.
func (r *MediaRepository) GetOwnedByReferences(ctx context.Context, uploaderID uuid.UUID, references []string) ([]*ent.Media, error) {
	return r.client.Media.Query().
		Where(
			media.FileNameIn(references...),
			media.UploadedByID(uploaderID),
		).
		All(ctx)
}

func (r *MediaRepository) AttachToReport(ctx context.Context, mediaIDs []uuid.UUID, reportID uuid.UUID) error {
	if len(mediaIDs) == 0 {
		return nil
	}
	return r.client.Media.Update().
		Where(media.IDIn(mediaIDs...)).
		SetReportID(reportID).
		Exec(ctx)
}

// ListOrphanedBefore returns uploads never attached to a report and older
// than the cutoff, for the cleanup job.
func (r *MediaRepository) ListOrphanedBefore(ctx context.Context, cutoff time.Time) ([]*ent.Media, error) {
	return r.client.Media.Query().
		Where(
			media.ReportIDIsNil(),
			media.CreatedAtLT(cutoff),
		).
		All(ctx)
}
