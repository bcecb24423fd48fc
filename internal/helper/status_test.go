package helper

import (
	"testing"

	"CivicReportAPI/internal/constant"
)

func TestCanTransitionForward(t *testing.T) {
	if !CanTransition(constant.StatusPending, constant.StatusInProgress) {
		t.Fatal("pending -> in_progress must be allowed")
	}
	if !CanTransition(constant.StatusInProgress, constant.StatusResolved) {
		t.Fatal("in_progress -> resolved must be allowed")
	}
}

func TestCanTransitionRejectsEverythingElse(t *testing.T) {
	statuses := []string{constant.StatusPending, constant.StatusInProgress, constant.StatusResolved}

	for _, from := range statuses {
		for _, to := range statuses {
			legal := (from == constant.StatusPending && to == constant.StatusInProgress) ||
				(from == constant.StatusInProgress && to == constant.StatusResolved)
			if CanTransition(from, to) != legal {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, !legal, legal)
			}
		}
	}
}

func TestCanTransitionResolvedIsTerminal(t *testing.T) {
	for _, to := range []string{constant.StatusPending, constant.StatusInProgress, constant.StatusResolved} {
		if CanTransition(constant.StatusResolved, to) {
			t.Fatalf("resolved -> %s must be rejected", to)
		}
	}
}

func TestBucketStatusesPendingIsUnion(t *testing.T) {
	got := BucketStatuses(constant.BucketPending)
	if len(got) != 2 || got[0] != constant.StatusPending || got[1] != constant.StatusInProgress {
		t.Fatalf("pending bucket = %v, want [pending in_progress]", got)
	}
}

func TestBucketStatusesResolvedIsExact(t *testing.T) {
	got := BucketStatuses(constant.BucketResolved)
	if len(got) != 1 || got[0] != constant.StatusResolved {
		t.Fatalf("resolved bucket = %v, want [resolved]", got)
	}
}

func TestBucketStatusesNoneMatchesAll(t *testing.T) {
	if got := BucketStatuses(constant.BucketNone); got != nil {
		t.Fatalf("none bucket = %v, want nil (no status predicate)", got)
	}
}
