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

func patchReport(t *testing.T, token string, reportID uuid.UUID, segment string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	url := fmt.Sprintf("/api/admin/reports/%s/%s", reportID, segment)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(req)
}

func TestAdvanceStatus(t *testing.T) {
	t.Run("Full Lifecycle", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "lifecycle")
		admin := createTestAdmin(t, "lifecycleadmin")
		adminToken := tokenFor(t, admin)

		seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Lifecycle report")

		rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "in_progress"})
		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		assert.Equal(t, "in_progress", data["status"])

		rr = patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "resolved"})
		assert.Equal(t, http.StatusOK, rr.Code)

		stored := testClient.Report.GetX(context.Background(), seeded.ID)
		assert.Equal(t, report.StatusResolved, stored.Status)
	})

	t.Run("Skipping A Step Is Rejected", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "skipstep")
		admin := createTestAdmin(t, "skipadmin")
		adminToken := tokenFor(t, admin)

		seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Skip report")

		rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "resolved"})
		assert.Equal(t, http.StatusConflict, rr.Code)

		stored := testClient.Report.GetX(context.Background(), seeded.ID)
		assert.Equal(t, report.StatusPending, stored.Status)
	})

	t.Run("Backward Transition Is Rejected", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "backward")
		admin := createTestAdmin(t, "backwardadmin")
		adminToken := tokenFor(t, admin)

		seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusInProgress, "Backward report")

		rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "pending"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Resolved Is Terminal", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "terminal")
		admin := createTestAdmin(t, "terminaladmin")
		adminToken := tokenFor(t, admin)

		seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusResolved, "Terminal report")

		rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "in_progress"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Same Status Is Rejected", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "samestatus")
		admin := createTestAdmin(t, "sameadmin")
		adminToken := tokenFor(t, admin)

		seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Same status report")

		rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "pending"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Unknown Status String", func(t *testing.T) {
		clearDatabase(context.Background())
		fixture := seedCatalog(t)
		citizen := createTestUser(t, "badstatus")
		admin := createTestAdmin(t, "badstatusadmin")
		adminToken := tokenFor(t, admin)

		seeded := createTestReport(t, citizen, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Bad status report")

		rr := patchReport(t, adminToken, seeded.ID, "status", map[string]string{"status": "done"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Report", func(t *testing.T) {
		clearDatabase(context.Background())
		seedCatalog(t)
		admin := createTestAdmin(t, "ghostadmin")
		adminToken := tokenFor(t, admin)

		rr := patchReport(t, adminToken, uuid.New(), "status", model.AdvanceStatusRequest{Status: "in_progress"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAssignOfficer(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "assign")
	admin := createTestAdmin(t, "assignadmin")
	adminToken := tokenFor(t, admin)
	officer := createTestOfficer(t, "Dana Wijaya", "Public Works")

	seeded := createTestReport(t, citizen, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusPending, "Assignment report")

	t.Run("Assign", func(t *testing.T) {
		rr := patchReport(t, adminToken, seeded.ID, "officer", model.AssignOfficerRequest{OfficerID: &officer.ID})
		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		assert.Equal(t, officer.ID.String(), data["assigned_officer_id"])
		assert.Equal(t, officer.Name, data["assigned_officer_name"])
	})

	t.Run("Reassignment Overwrites", func(t *testing.T) {
		second := createTestOfficer(t, "Budi Santoso", "Fire Department")

		rr := patchReport(t, adminToken, seeded.ID, "officer", model.AssignOfficerRequest{OfficerID: &second.ID})
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		assert.Equal(t, second.ID.String(), data["assigned_officer_id"])
	})

	t.Run("Unassign With Null", func(t *testing.T) {
		rr := patchReport(t, adminToken, seeded.ID, "officer", model.AssignOfficerRequest{OfficerID: nil})
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		assert.Nil(t, data["assigned_officer_id"])

		// unassigning an unassigned report is a no-op, not an error
		rr = patchReport(t, adminToken, seeded.ID, "officer", model.AssignOfficerRequest{OfficerID: nil})
		assert.Equal(t, http.StatusOK, rr.Code)

		resp = helper.ResponseSuccess{}
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ = resp.Data.(map[string]interface{})
		assert.Nil(t, data["assigned_officer_id"])
	})

	t.Run("Unknown Officer", func(t *testing.T) {
		ghost := uuid.New()
		rr := patchReport(t, adminToken, seeded.ID, "officer", model.AssignOfficerRequest{OfficerID: &ghost})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAttachResolution(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "resolution")
	admin := createTestAdmin(t, "resolutionadmin")
	adminToken := tokenFor(t, admin)

	seeded := createTestReport(t, citizen, fixture.NonEmergencyCategory.ID, report.TypeNonEmergency, report.StatusInProgress, "Resolution report")

	t.Run("Attach While In Progress", func(t *testing.T) {
		rr := patchReport(t, adminToken, seeded.ID, "resolution", model.AttachResolutionRequest{Details: "Crew dispatched, road patched."})
		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		assert.Equal(t, "Crew dispatched, road patched.", data["resolution_details"])
	})

	t.Run("Overwrite Details", func(t *testing.T) {
		rr := patchReport(t, adminToken, seeded.ID, "resolution", model.AttachResolutionRequest{Details: "Final: verified by supervisor."})
		assert.Equal(t, http.StatusOK, rr.Code)

		stored := testClient.Report.GetX(context.Background(), seeded.ID)
		assert.NotNil(t, stored.ResolutionDetails)
		assert.Equal(t, "Final: verified by supervisor.", *stored.ResolutionDetails)
	})

	t.Run("Empty Details Rejected", func(t *testing.T) {
		rr := patchReport(t, adminToken, seeded.ID, "resolution", model.AttachResolutionRequest{Details: ""})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Report", func(t *testing.T) {
		rr := patchReport(t, adminToken, uuid.New(), "resolution", model.AttachResolutionRequest{Details: "Nothing to resolve"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetOfficers(t *testing.T) {
	clearDatabase(context.Background())
	admin := createTestAdmin(t, "officers")
	adminToken := tokenFor(t, admin)

	createTestOfficer(t, "Citra Dewi", "Sanitation")
	createTestOfficer(t, "Agus Pratama", "Public Works")

	req, _ := http.NewRequest("GET", "/api/admin/officers", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	rr := executeRequest(req)
	if !assert.Equal(t, http.StatusOK, rr.Code) {
		printBody(t, rr)
	}

	var resp helper.ResponseSuccess
	json.Unmarshal(rr.Body.Bytes(), &resp)

	officers, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, officers, 2)

	// directory comes back sorted by department, then name
	first, _ := officers[0].(map[string]interface{})
	assert.Equal(t, "Agus Pratama", first["name"])
}
