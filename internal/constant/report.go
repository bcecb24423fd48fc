package constant

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

const (
	TypeEmergency    = "emergency"
	TypeNonEmergency = "non_emergency"
)

const (
	BucketNone     = "none"
	BucketPending  = "pending"
	BucketResolved = "resolved"
)

const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

// MaxReportImages caps how many media references a single report may carry.
const MaxReportImages = 5
