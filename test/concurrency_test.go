package test

import (
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/model"
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two admins race the same pending->in_progress transition. The store-level
// compare-and-set must let exactly one through; the loser gets a conflict.
func TestConcurrency_AdvanceStatusSingleWinner(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "race")
	admin := createTestAdmin(t, "raceadmin")
	adminToken := tokenFor(t, admin)

	seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Raced report")

	attempts := 8
	codes := make([]int, attempts)

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(idx int) {
			defer wg.Done()
			rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "in_progress"})
			codes[idx] = rr.Code
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			winners++
		case http.StatusConflict:
		default:
			t.Fatalf("unexpected status code %d", code)
		}
	}
	assert.Equal(t, 1, winners)

	stored := testClient.Report.GetX(context.Background(), seeded.ID)
	assert.Equal(t, report.StatusInProgress, stored.Status)
}

// Racing submissions from the same user must each land as an independent
// report; nothing is lost or merged.
func TestConcurrency_ParallelSubmissions(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "parallel")
	token := tokenFor(t, citizen)

	count := 10
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(idx int) {
			defer wg.Done()
			rr := submitReport(t, token, model.SubmitReportRequest{
				Title:       "Parallel submission",
				Description: "One of several racing submissions",
				Type:        "emergency",
				CategoryID:  fixture.EmergencyCategory.ID,
			})
			assert.Equal(t, http.StatusCreated, rr.Code)
		}(i)
	}
	wg.Wait()

	stored, _ := testClient.Report.Query().Count(context.Background())
	assert.Equal(t, count, stored)
}
