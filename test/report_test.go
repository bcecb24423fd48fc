package test

import (
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func submitReport(t *testing.T, token string, reqBody model.SubmitReportRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/api/reports", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(req)
}

func TestSubmitReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submit")
		token := tokenFor(t, citizen)

		address := "Jl. Merdeka 1"
		lat, lng := -6.2, 106.8
		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:           "Burst water pipe",
			Description:     "Water flooding the street since this morning",
			Type:            "non_emergency",
			CategoryID:      fixture.NonEmergencyCategory.ID,
			SubcategoryID:   &fixture.NonEmergencySub.ID,
			LocationAddress: &address,
			LocationLat:     &lat,
			LocationLng:     &lng,
		})

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		data, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "Burst water pipe", data["title"])
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, "non_emergency", data["type"])
		assert.Equal(t, fixture.NonEmergencyCategory.Name, data["category_name"])
		assert.Equal(t, fixture.NonEmergencySub.Name, data["subcategory_name"])
		assert.Equal(t, citizen.ID.String(), data["reporter_id"])
		assert.Equal(t, address, data["location_address"])

		count, _ := testClient.Report.Query().Count(context.Background())
		assert.Equal(t, 1, count)
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submitbad")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:      "",
			Type:       "emergency",
			CategoryID: fixture.EmergencyCategory.ID,
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Whitespace Only Title", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submitws")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:       "    ",
			Description: "Self-contained description",
			Type:        "emergency",
			CategoryID:  fixture.EmergencyCategory.ID,
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Type String", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submittype")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:       "Hyphenated type must be rejected",
			Description: "non-emergency is not a valid wire value",
			Type:        "non-emergency",
			CategoryID:  fixture.NonEmergencyCategory.ID,
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		clearDatabase(context.Background())
		seedCatalog(t)
		citizen := createTestUser(t, "submitcat")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:       "Unknown category",
			Description: "Category id points nowhere",
			Type:        "emergency",
			CategoryID:  uuid.New(),
		})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Category Type Mismatch", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submitmismatch")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:       "Emergency report on a roads category",
			Description: "Category belongs to the other report type",
			Type:        "emergency",
			CategoryID:  fixture.NonEmergencyCategory.ID,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Subcategory From Different Category", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submitsub")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:       "Crossed references",
			Description: "Subcategory belongs to the roads category",
			Type:        "emergency",
			CategoryID:  fixture.EmergencyCategory.ID,
			SubcategoryID: &fixture.NonEmergencySub.ID,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Unknown Image Reference", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "submitimg")
		token := tokenFor(t, citizen)

		rr := submitReport(t, token, model.SubmitReportRequest{
			Title:       "Report with stolen image ref",
			Description: "The image reference was never uploaded",
			Type:        "emergency",
			CategoryID:  fixture.EmergencyCategory.ID,
			ImageRefs:   []string{"does-not-exist.jpg"},
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetOwnReports(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	aliceToken := tokenFor(t, alice)

	createTestReport(t, alice, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Alice report 1")
	createTestReport(t, alice, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusResolved, "Alice report 2")
	createTestReport(t, bob, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Bob report")

	req, _ := http.NewRequest("GET", "/api/reports", nil)
	req.Header.Set("Authorization", "Bearer "+aliceToken)

	rr := executeRequest(req)

	if !assert.Equal(t, http.StatusOK, rr.Code) {
		printBody(t, rr)
	}

	var resp helper.ResponseWithPagination
	json.Unmarshal(rr.Body.Bytes(), &resp)

	reports, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, reports, 2)

	for _, raw := range reports {
		entry, ok := raw.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, alice.ID.String(), entry["reporter_id"])
	}
}

func TestGetReportDetail(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	alice := createTestUser(t, "detailalice")
	bob := createTestUser(t, "detailbob")
	admin := createTestAdmin(t, "detailadmin")

	seeded := createTestReport(t, alice, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Alice detail report")

	t.Run("Owner Can Read", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/reports/%s", seeded.ID), nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, alice))

		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, seeded.ID.String(), data["id"])
	})

	t.Run("Other Citizen Gets Not Found", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/reports/%s", seeded.ID), nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, bob))

		rr := executeRequest(req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Admin Can Read Any", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/reports/%s", seeded.ID), nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))

		rr := executeRequest(req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown Report", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/reports/%s", uuid.New()), nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, alice))

		rr := executeRequest(req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
