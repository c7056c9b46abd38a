package services

import (
	"errors"
	"fmt"
)

// ApprovalStatus is the tri-state shared by BRFQ approvals, modification
// requests and award approvals. Leaving StatusPending is one-way.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// ErrNotFound marks a missing entity so handlers can answer 404 without
// leaking gorm internals.
var ErrNotFound = errors.New("record not found")

// InvalidTransitionError reports a status-guard failure. The current status
// is embedded so handlers can surface it in the conflict message.
type InvalidTransitionError struct {
	Entity  string
	Current ApprovalStatus
	Target  ApprovalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot transition to %s: current status is %s", e.Entity, e.Target, e.Current)
}

// CanTransitionTo reports whether the target status is reachable from s.
func (s ApprovalStatus) CanTransitionTo(target ApprovalStatus) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

// EnsureTransition validates a status change and returns a typed error when
// the guard fails.
func EnsureTransition(entity string, current, target ApprovalStatus) error {
	if !current.CanTransitionTo(target) {
		return &InvalidTransitionError{Entity: entity, Current: current, Target: target}
	}
	return nil
}
