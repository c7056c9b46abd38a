package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"procurement-api/models"
)

func TestRejectModificationNotPendingWritesNothing(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .modification_requests. WHERE modification_id = \?`),
			columns: []string{"modification_id", "brfq_id", "requested_by", "summary", "status"},
			rows: [][]driver.Value{
				{"mod-7", "rfq-1", "buyer-1", "widen scope", "approved"},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewModificationService(db)

	_, err := svc.Reject("mod-7", "admin", "too late")
	if err == nil {
		t.Fatal("expected rejection of a non-pending request to fail")
	}

	var transitionErr *InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *InvalidTransitionError, got %T: %v", err, err)
	}
	if transitionErr.Current != StatusApproved {
		t.Errorf("expected current status approved, got %s", transitionErr.Current)
	}

	// No update and no history insert may run after the guard fires.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectModificationNotFound(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .modification_requests. WHERE modification_id = \?`),
			columns: []string{"modification_id", "status"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewModificationService(db).Reject("missing", "admin", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectModificationUpdatesStatusAndAppendsHistory(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .modification_requests. WHERE modification_id = \?`),
			columns: []string{"modification_id", "brfq_id", "requested_by", "summary", "status"},
			rows: [][]driver.Value{
				{"mod-1", "rfq-1", "buyer-1", "widen scope", "pending"},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .modification_requests. SET .* WHERE modification_id = \?`),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .modification_actions.`),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	decision, err := NewModificationService(db).Reject("mod-1", "admin", "scope unclear")
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	if decision.Modification.Status != models.ModificationStatusRejected {
		t.Errorf("expected status rejected, got %s", decision.Modification.Status)
	}
	if decision.Modification.ProcessedBy == nil || *decision.Modification.ProcessedBy != "admin" {
		t.Errorf("expected processed_by admin, got %v", decision.Modification.ProcessedBy)
	}
	if decision.History.Action != models.ModificationActionReject {
		t.Errorf("expected history action reject, got %s", decision.History.Action)
	}
	if decision.History.ModificationID != "mod-1" {
		t.Errorf("expected history for mod-1, got %s", decision.History.ModificationID)
	}
	if decision.History.Note == nil || *decision.History.Note != "scope unclear" {
		t.Errorf("expected history note to carry the decision note, got %v", decision.History.Note)
	}

	// Exactly one update and one history insert ran, inside the transaction.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveModificationAppendsApproveAction(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT \* FROM .modification_requests. WHERE modification_id = \?`),
			columns: []string{"modification_id", "brfq_id", "requested_by", "summary", "status"},
			rows: [][]driver.Value{
				{"mod-2", "rfq-1", "buyer-1", "swap line item", "pending"},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .modification_requests. SET .* WHERE modification_id = \?`),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .modification_actions.`),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	decision, err := NewModificationService(db).Approve("mod-2", "admin", "")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	if decision.Modification.Status != models.ModificationStatusApproved {
		t.Errorf("expected status approved, got %s", decision.Modification.Status)
	}
	if decision.History.Action != models.ModificationActionApprove {
		t.Errorf("expected history action approve, got %s", decision.History.Action)
	}
	if decision.History.Note != nil {
		t.Errorf("expected no note on history, got %v", decision.History.Note)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
