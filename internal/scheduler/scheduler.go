package scheduler

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/repository"
	"CivicReportAPI/internal/scheduler/job"
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cfg            *config.AppConfig
	cron           *cron.Cron
	storageAdapter *adapter.StorageAdapter
	mediaRepo      *repository.MediaRepository
	reportRepo     *repository.ReportRepository
}

func New(cfg *config.AppConfig, client *ent.Client, s3Client *s3.Client) *Scheduler {
	return &Scheduler{
		cfg:            cfg,
		cron:           cron.New(),
		storageAdapter: adapter.NewStorageAdapter(cfg, s3Client),
		mediaRepo:      repository.NewMediaRepository(client),
		reportRepo:     repository.NewReportRepository(client),
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	s.registerJobs()

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) registerJobs() {
	_, err := s.cron.AddFunc(s.cfg.MediaCleanupCron, func() {
		slog.Info("Starting Media Cleanup Job")
		ctx := context.Background()
		if err := job.RunMediaCleanup(ctx, s.mediaRepo, s.storageAdapter, s.cfg); err != nil {
			slog.Error("Media Cleanup Job failed", "error", err)
		} else {
			slog.Info("Media Cleanup Job completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Media Cleanup job", "error", err)
	} else {
		slog.Info("Registered Media Cleanup Job", "schedule", s.cfg.MediaCleanupCron)
	}

	_, err = s.cron.AddFunc(s.cfg.StaleReportCron, func() {
		slog.Info("Starting Stale Report Scan")
		ctx := context.Background()
		if err := job.RunStaleReportScan(ctx, s.reportRepo, s.cfg); err != nil {
			slog.Error("Stale Report Scan failed", "error", err)
		} else {
			slog.Info("Stale Report Scan completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Stale Report Scan job", "error", err)
	} else {
		slog.Info("Registered Stale Report Scan", "schedule", s.cfg.StaleReportCron)
	}
}
