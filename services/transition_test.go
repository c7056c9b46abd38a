package services

import (
	"strings"
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		current ApprovalStatus
		target  ApprovalStatus
		want    bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.current.CanTransitionTo(tc.target); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestEnsureTransitionEmbedsCurrentStatus(t *testing.T) {
	err := EnsureTransition("modification request", StatusApproved, StatusRejected)
	if err == nil {
		t.Fatal("expected an error for approved -> rejected")
	}

	transitionErr, ok := err.(*InvalidTransitionError)
	if !ok {
		t.Fatalf("expected *InvalidTransitionError, got %T", err)
	}
	if transitionErr.Current != StatusApproved {
		t.Errorf("expected current status approved, got %s", transitionErr.Current)
	}
	if !strings.Contains(err.Error(), "approved") {
		t.Errorf("error message should embed the current status: %q", err.Error())
	}
}

func TestEnsureTransitionAllowsPendingDecisions(t *testing.T) {
	if err := EnsureTransition("BRFQ", StatusPending, StatusApproved); err != nil {
		t.Fatalf("pending -> approved should pass: %v", err)
	}
	if err := EnsureTransition("BRFQ", StatusPending, StatusRejected); err != nil {
		t.Fatalf("pending -> rejected should pass: %v", err)
	}
}
