package job

import (
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"
	"path/filepath"
	"time"
)

// RunMediaCleanup deletes uploaded images that were never attached to a
// report within the retention window. The S3 object goes first; the row is
// only removed once the object is gone.
func RunMediaCleanup(ctx context.Context, repo *repository.MediaRepository, storage *adapter.StorageAdapter, cfg *config.AppConfig) error {
	retentionDays := cfg.MediaRetentionDays
	if retentionDays < 0 {
		retentionDays = 7.0
	}

	duration := time.Duration(retentionDays * 24 * float64(time.Hour))
	cutoff := time.Now().UTC().Add(-duration)

	slog.Info("Running Media Cleanup", "retentionDays", retentionDays, "cutoff", cutoff)

	orphans, err := repo.ListOrphanedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to query orphan media", "error", err)
		return err
	}

	slog.Info("Found orphan media candidates", "count", len(orphans))

	for _, m := range orphans {
		path := filepath.Join(cfg.StorageReportImages, m.FileName)
		if err := storage.Delete(path); err != nil {
			slog.Error("Failed to delete S3 object", "mediaID", m.ID, "key", path, "error", err)
			continue
		}

		if err := repo.Delete(ctx, m.ID); err != nil {
			slog.Error("Failed to delete media row", "mediaID", m.ID, "error", err)
		} else {
			slog.Info("Deleted orphan media", "mediaID", m.ID)
		}
	}

	return nil
}
