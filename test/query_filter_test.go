package test

import (
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/helper"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listReportTitles(t *testing.T, token, query string) ([]string, helper.PaginationMeta) {
	t.Helper()
	req, _ := http.NewRequest("GET", "/api/admin/reports"+query, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := executeRequest(req)
	if !assert.Equal(t, http.StatusOK, rr.Code) {
		printBody(t, rr)
		t.FailNow()
	}

	var resp helper.ResponseWithPagination
	json.Unmarshal(rr.Body.Bytes(), &resp)

	raw, ok := resp.Data.([]interface{})
	assert.True(t, ok)

	titles := make([]string, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		assert.True(t, ok)
		titles = append(titles, entry["title"].(string))
	}
	return titles, resp.Meta
}

func TestReportFilters(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "filters")
	admin := createTestAdmin(t, "filtersadmin")
	adminToken := tokenFor(t, admin)

	createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Pending emergency")
	createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusInProgress, "In progress emergency")
	createTestReport(t, citizen, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusResolved, "Resolved non emergency")
	createTestReport(t, citizen, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusPending, "Pending non emergency")

	t.Run("No Filters Returns Everything", func(t *testing.T) {
		titles, _ := listReportTitles(t, adminToken, "")
		assert.Len(t, titles, 4)
	})

	t.Run("Pending Bucket Includes In Progress", func(t *testing.T) {
		titles, _ := listReportTitles(t, adminToken, "?bucket=pending")
		assert.Len(t, titles, 3)
		assert.NotContains(t, titles, "Resolved non emergency")
	})

	t.Run("Resolved Bucket Is Exact", func(t *testing.T) {
		titles, _ := listReportTitles(t, adminToken, "?bucket=resolved")
		assert.Equal(t, []string{"Resolved non emergency"}, titles)
	})

	t.Run("Type Filter", func(t *testing.T) {
		titles, _ := listReportTitles(t, adminToken, "?type=emergency")
		assert.Len(t, titles, 2)
		assert.Contains(t, titles, "Pending emergency")
		assert.Contains(t, titles, "In progress emergency")
	})

	t.Run("Category Filter", func(t *testing.T) {
		query := fmt.Sprintf("?category_id=%s", fixture.NonEmergencyCategory.ID)
		titles, _ := listReportTitles(t, adminToken, query)
		assert.Len(t, titles, 2)
	})

	t.Run("All Dimensions Combined", func(t *testing.T) {
		query := fmt.Sprintf("?bucket=pending&type=non_emergency&category_id=%s", fixture.NonEmergencyCategory.ID)
		titles, _ := listReportTitles(t, adminToken, query)
		assert.Equal(t, []string{"Pending non emergency"}, titles)
	})

	t.Run("Explicit Sentinels Match Everything", func(t *testing.T) {
		titles, _ := listReportTitles(t, adminToken, "?bucket=none&type=all&category_id=all")
		assert.Len(t, titles, 4)
	})

	t.Run("Category All Sentinel Alone", func(t *testing.T) {
		titles, _ := listReportTitles(t, adminToken, "?category_id=all")
		assert.Len(t, titles, 4)
	})

	t.Run("Category Filter Rejects Garbage", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/reports?category_id=not-a-uuid", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)

		rr := executeRequest(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Bucket", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/reports?bucket=archived", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)

		rr := executeRequest(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReportPagination(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "paging")
	admin := createTestAdmin(t, "pagingadmin")
	adminToken := tokenFor(t, admin)

	for i := 0; i < 5; i++ {
		createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, fmt.Sprintf("Paged report %d", i))
	}

	firstPage, meta := listReportTitles(t, adminToken, "?limit=2")
	assert.Len(t, firstPage, 2)
	assert.True(t, meta.HasNext)
	assert.NotEmpty(t, meta.NextCursor)

	secondPage, meta2 := listReportTitles(t, adminToken, "?limit=2&cursor="+meta.NextCursor)
	assert.Len(t, secondPage, 2)
	assert.True(t, meta2.HasNext)

	thirdPage, meta3 := listReportTitles(t, adminToken, "?limit=2&cursor="+meta2.NextCursor)
	assert.Len(t, thirdPage, 1)
	assert.False(t, meta3.HasNext)

	seen := map[string]bool{}
	for _, title := range append(append(firstPage, secondPage...), thirdPage...) {
		assert.False(t, seen[title], "no report may appear on two pages")
		seen[title] = true
	}
	assert.Len(t, seen, 5)

	t.Run("Garbage Cursor", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/reports?cursor=%21%21garbage", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)

		rr := executeRequest(req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAdminStats(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "stats")
	admin := createTestAdmin(t, "statsadmin")
	adminToken := tokenFor(t, admin)

	createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Stats pending")
	createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusInProgress, "Stats in progress")
	createTestReport(t, citizen, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusResolved, "Stats resolved")

	req, _ := http.NewRequest("GET", "/api/admin/reports/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	rr := executeRequest(req)
	if !assert.Equal(t, http.StatusOK, rr.Code) {
		printBody(t, rr)
	}

	var resp helper.ResponseSuccess
	json.Unmarshal(rr.Body.Bytes(), &resp)

	stats, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(3), stats["total"])
	assert.Equal(t, float64(2), stats["active"])
	assert.Equal(t, float64(1), stats["resolved"])

	t.Run("Scoped By Type", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/reports/stats?type=emergency", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)

		rr := executeRequest(req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		stats, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, float64(2), stats["total"])
		assert.Equal(t, float64(2), stats["active"])
		assert.Equal(t, float64(0), stats["resolved"])
	})
}
