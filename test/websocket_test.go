package test

import (
	"CivicReportAPI/ent/report"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/websocket"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dialWS(t *testing.T, server *httptest.Server, token string) *ws.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws?token=" + token
	conn, _, err := ws.DefaultDialer.Dial(wsURL, http.Header{})
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	return conn
}

func readEvent(t *testing.T, conn *ws.Conn, wanted websocket.EventType, timeout time.Duration) (map[string]interface{}, bool) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(timeout))
	for i := 0; i < 10; i++ {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return nil, false
		}
		var event websocket.Event
		json.Unmarshal(message, &event)
		if event.Type == wanted {
			payload, _ := event.Payload.(map[string]interface{})
			return payload, true
		}
	}
	return nil, false
}

func TestWebSocketConnection(t *testing.T) {
	clearDatabase(context.Background())

	citizen := createTestUser(t, "wsconn")
	token := tokenFor(t, citizen)

	server := httptest.NewServer(testRouter)
	defer server.Close()

	conn := dialWS(t, server, token)
	defer conn.Close()
}

func TestWebSocketRejectsMissingToken(t *testing.T) {
	server := httptest.NewServer(testRouter)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws"
	_, resp, err := ws.DefaultDialer.Dial(wsURL, http.Header{})
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestWebSocketReporterReceivesOwnEvents(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)

	reporter := createTestUser(t, "wsreporter")
	bystander := createTestUser(t, "wsbystander")

	server := httptest.NewServer(testRouter)
	defer server.Close()

	reporterConn := dialWS(t, server, tokenFor(t, reporter))
	defer reporterConn.Close()
	bystanderConn := dialWS(t, server, tokenFor(t, bystander))
	defer bystanderConn.Close()

	time.Sleep(100 * time.Millisecond)

	rr := submitReport(t, tokenFor(t, reporter), model.SubmitReportRequest{
		Title:       "Streetlight out",
		Description: "Corner of 5th and Main is dark",
		Type:        "non_emergency",
		CategoryID:  fixture.NonEmergencyCategory.ID,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	payload, found := readEvent(t, reporterConn, websocket.EventReportCreated, 2*time.Second)
	assert.True(t, found, "reporter must receive the created event")
	if found {
		assert.Equal(t, "Streetlight out", payload["title"])
		assert.Equal(t, "pending", payload["status"])
	}

	_, leaked := readEvent(t, bystanderConn, websocket.EventReportCreated, 500*time.Millisecond)
	assert.False(t, leaked, "other citizens must not see someone else's report events")
}

func TestWebSocketAdminReceivesAllEvents(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)

	reporter := createTestUser(t, "wsadmincitizen")
	admin := createTestAdmin(t, "wsadmin")

	server := httptest.NewServer(testRouter)
	defer server.Close()

	adminConn := dialWS(t, server, tokenFor(t, admin))
	defer adminConn.Close()

	time.Sleep(100 * time.Millisecond)

	rr := submitReport(t, tokenFor(t, reporter), model.SubmitReportRequest{
		Title:       "Gas leak on 3rd avenue",
		Description: "Strong smell near the bakery",
		Type:        "emergency",
		CategoryID:  fixture.EmergencyCategory.ID,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	payload, found := readEvent(t, adminConn, websocket.EventReportCreated, 2*time.Second)
	assert.True(t, found, "admin must receive events for every report")
	if found {
		assert.Equal(t, "Gas leak on 3rd avenue", payload["title"])
	}
}

func TestWebSocketStatusEventCarriesNewStatus(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)

	reporter := createTestUser(t, "wsstatus")
	admin := createTestAdmin(t, "wsstatusadmin")

	seeded := createTestReport(t, reporter, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Status event report")

	server := httptest.NewServer(testRouter)
	defer server.Close()

	reporterConn := dialWS(t, server, tokenFor(t, reporter))
	defer reporterConn.Close()

	time.Sleep(100 * time.Millisecond)

	rr := patchReport(t, tokenFor(t, admin), seeded.ID, "status", model.AdvanceStatusRequest{Status: "in_progress"})
	assert.Equal(t, http.StatusOK, rr.Code)

	payload, found := readEvent(t, reporterConn, websocket.EventReportStatus, 2*time.Second)
	assert.True(t, found, "reporter must receive status events for their report")
	if found {
		assert.Equal(t, "in_progress", payload["status"])
		assert.Equal(t, seeded.ID.String(), payload["id"])
	}
}

// A status advance and an officer assignment race on one report. Broadcasts
// follow commit order, so whichever event arrives second was emitted after
// both writes landed and its payload must reflect them both.
func TestWebSocketEventOrderMatchesCommitOrder(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)

	reporter := createTestUser(t, "wsorder")
	admin := createTestAdmin(t, "wsorderadmin")
	adminToken := tokenFor(t, admin)
	officer := createTestOfficer(t, "Citra Lestari", "Public Works")

	seeded := createTestReport(t, reporter, fixture.EmergencyCategory.ID, report.TypeEmergency, report.StatusPending, "Ordered report")

	server := httptest.NewServer(testRouter)
	defer server.Close()

	adminConn := dialWS(t, server, adminToken)
	defer adminConn.Close()

	time.Sleep(100 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		rr := patchReport(t, adminToken, seeded.ID, "status", model.AdvanceStatusRequest{Status: "in_progress"})
		assert.Equal(t, http.StatusOK, rr.Code)
	}()
	go func() {
		defer wg.Done()
		rr := patchReport(t, adminToken, seeded.ID, "officer", model.AssignOfficerRequest{OfficerID: &officer.ID})
		assert.Equal(t, http.StatusOK, rr.Code)
	}()
	wg.Wait()

	seen := map[websocket.EventType]bool{}
	var last map[string]interface{}
	adminConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for len(seen) < 2 {
		_, message, err := adminConn.ReadMessage()
		if err != nil {
			t.Fatalf("expected both events, got %v after %v", err, seen)
		}
		var event websocket.Event
		json.Unmarshal(message, &event)
		if event.Type == websocket.EventReportStatus || event.Type == websocket.EventReportOfficer {
			seen[event.Type] = true
			last, _ = event.Payload.(map[string]interface{})
		}
	}

	assert.Equal(t, "in_progress", last["status"])
	assert.Equal(t, officer.ID.String(), last["assigned_officer_id"])
}
