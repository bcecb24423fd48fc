package websocket

import "github.com/google/uuid"

type EventType string

const (
	EventReportCreated    EventType = "report.created"
	EventReportStatus     EventType = "report.status"
	EventReportOfficer    EventType = "report.officer"
	EventReportResolution EventType = "report.resolution"
)

// Event carries the full report payload so subscribers can re-render without
// an extra fetch; views that prefer strict consistency re-query instead.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	Meta    *EventMeta  `json:"meta,omitempty"`
}

type EventMeta struct {
	Timestamp int64     `json:"timestamp"`
	ReportID  uuid.UUID `json:"report_id"`
}
