package job

import (
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"
	"time"
)

// RunStaleReportScan flags reports stuck in pending past the escalation
// threshold so operators notice them. It changes nothing; triage stays a
// human decision.
func RunStaleReportScan(ctx context.Context, repo *repository.ReportRepository, cfg *config.AppConfig) error {
	days := cfg.StalePendingAfterDays
	if days <= 0 {
		days = 3
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	stale, err := repo.ListPendingBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to query stale pending reports", "error", err)
		return err
	}

	for _, r := range stale {
		slog.Warn("Report pending past escalation threshold",
			"reportID", r.ID,
			"title", r.Title,
			"type", r.Type,
			"ageDays", int(time.Since(r.CreatedAt).Hours()/24),
		)
	}

	slog.Info("Stale report scan completed", "thresholdDays", days, "staleCount", len(stale))
	return nil
}
