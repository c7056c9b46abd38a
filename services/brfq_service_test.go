package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"procurement-api/models"
)

func brfqFirstStep(status string, published bool) *queryStep {
	pub := int64(0)
	if published {
		pub = 1
	}
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile(`SELECT \* FROM .brfqs. WHERE brfq_id = \? AND delete_at IS NULL`),
		columns: []string{"brfq_id", "title", "status", "approval_status", "published", "requested_by"},
		rows: [][]driver.Value{
			{"rfq-1", "Warehouse racking", "PUBLISHED", status, pub, "buyer-1"},
		},
	}
}

func TestRejectBRFQClearsPublishFlag(t *testing.T) {
	steps := []*queryStep{
		brfqFirstStep("pending", true),
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .brfqs. SET .* WHERE brfq_id = \?`),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	brfq, err := NewBRFQService(db).Reject("rfq-1", "admin", "budget withdrawn")
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	if brfq.ApprovalStatus != models.BRFQStatusRejected {
		t.Errorf("expected approval status rejected, got %s", brfq.ApprovalStatus)
	}
	if brfq.Published {
		t.Error("rejection must clear the publish flag")
	}
	if brfq.DecidedBy == nil || *brfq.DecidedBy != "admin" {
		t.Errorf("expected decided_by admin, got %v", brfq.DecidedBy)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectBRFQConflictsWhenAlreadyDecided(t *testing.T) {
	steps := []*queryStep{brfqFirstStep("rejected", false)}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewBRFQService(db).Reject("rfq-1", "admin", "")
	if err == nil {
		t.Fatal("expected a second rejection to fail")
	}

	var transitionErr *InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *InvalidTransitionError, got %T: %v", err, err)
	}
	if transitionErr.Current != StatusRejected {
		t.Errorf("error must embed the current status, got %s", transitionErr.Current)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveBRFQRequiresPendingApproval(t *testing.T) {
	steps := []*queryStep{brfqFirstStep("approved", true)}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewBRFQService(db).Approve("rfq-1", "admin", "")
	var transitionErr *InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *InvalidTransitionError, got %T: %v", err, err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
