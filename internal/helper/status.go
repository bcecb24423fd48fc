package helper

import "CivicReportAPI/internal/constant"

// legalTransitions is the full transition set for a report. Anything not
// listed here (same-state, skip-ahead, backward) is rejected.
var legalTransitions = map[string]string{
	constant.StatusPending:    constant.StatusInProgress,
	constant.StatusInProgress: constant.StatusResolved,
}

func IsValidStatus(status string) bool {
	switch status {
	case constant.StatusPending, constant.StatusInProgress, constant.StatusResolved:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	next, ok := legalTransitions[from]
	return ok && next == to
}

// BucketStatuses expands a status bucket into the statuses it matches. The
// pending bucket is a union with in_progress so triage views keep showing
// work that has already been picked up.
func BucketStatuses(bucket string) []string {
	switch bucket {
	case constant.BucketPending:
		return []string{constant.StatusPending, constant.StatusInProgress}
	case constant.BucketResolved:
		return []string{constant.StatusResolved}
	default:
		return nil
	}
}
