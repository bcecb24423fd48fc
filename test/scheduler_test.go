package test

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/repository"
	"CivicReportAPI/internal/scheduler/job"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func seedMedia(t *testing.T, uploader *ent.User, createdAt time.Time, reportID interface{}) *ent.Media {
	t.Helper()
	create := testClient.Media.Create().
		SetFileName(fmt.Sprintf("seed-%d.png", time.Now().UnixNano())).
		SetOriginalName("seed.png").
		SetFileSize(128).
		SetMimeType("image/png").
		SetUploadedByID(uploader.ID).
		SetCreatedAt(createdAt)
	if r, ok := reportID.(*ent.Report); ok && r != nil {
		create = create.SetReportID(r.ID)
	}
	return create.SaveX(context.Background())
}

func TestMediaCleanupJob(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "cleanup")

	attached := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Report keeping its media")

	old := time.Now().UTC().AddDate(0, 0, -30)
	staleOrphan := seedMedia(t, citizen, old, nil)
	keptAttachment := seedMedia(t, citizen, old, attached)
	freshOrphan := seedMedia(t, citizen, time.Now().UTC(), nil)

	mediaRepo := repository.NewMediaRepository(testClient)
	storage := adapter.NewStorageAdapter(testConfig, s3Client)

	err := job.RunMediaCleanup(context.Background(), mediaRepo, storage, testConfig)
	assert.NoError(t, err)

	ctx := context.Background()
	_, err = testClient.Media.Get(ctx, staleOrphan.ID)
	assert.True(t, ent.IsNotFound(err), "stale orphan must be deleted")

	_, err = testClient.Media.Get(ctx, keptAttachment.ID)
	assert.NoError(t, err, "attached media must survive")

	_, err = testClient.Media.Get(ctx, freshOrphan.ID)
	assert.NoError(t, err, "media inside the retention window must survive")
}

func TestStaleReportScan(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "stale")

	old := time.Now().UTC().AddDate(0, 0, -10)
	stale := testClient.Report.Create().
		SetTitle("Forgotten pending report").
		SetDescription("Still pending after the escalation window").
		SetType(report.TypeNonEmergency).
		SetCategoryID(fixture.NonEmergencyCategory.ID).
		SetReporterID(citizen.ID).
		SetCreatedAt(old).
		SaveX(context.Background())

	createTestReport(t, citizen, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusPending, "Fresh pending report")

	reportRepo := repository.NewReportRepository(testClient)

	err := job.RunStaleReportScan(context.Background(), reportRepo, testConfig)
	assert.NoError(t, err)

	// the scan only flags, it never mutates
	stored := testClient.Report.GetX(context.Background(), stale.ID)
	assert.Equal(t, report.StatusPending, stored.Status)

	flagged, err := reportRepo.ListPendingBefore(context.Background(), time.Now().UTC().AddDate(0, 0, -3))
	assert.NoError(t, err)
	assert.Len(t, flagged, 1)
	assert.Equal(t, stale.ID, flagged[0].ID)
}
