package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSubmitQuoteRejectsBadTokenBeforeAnyQuery(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := SignQuoteInvite("rfq-1", "sup-9", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}
	t.Setenv("JWT_SECRET", "rotated-secret")

	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	_, err = NewQuoteService(db).Submit(QuoteInput{Token: token})
	if !errors.Is(err, ErrInvalidQuoteToken) {
		t.Fatalf("expected ErrInvalidQuoteToken, got %v", err)
	}

	// An empty script means any database access would have failed the test.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitQuoteRejectsUnknownBRFQ(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := SignQuoteInvite("rfq-gone", "sup-9", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .brfqs. WHERE brfq_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{"rfq-gone"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err = NewQuoteService(db).Submit(QuoteInput{Token: token})
	if !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitQuoteRejectsUnknownSupplier(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := SignQuoteInvite("rfq-1", "sup-gone", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .brfqs. WHERE brfq_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{"rfq-1"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(1)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .suppliers. WHERE supplier_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{"sup-gone"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err = NewQuoteService(db).Submit(QuoteInput{Token: token})
	if !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitQuoteCreatesQuoteWithItems(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := SignQuoteInvite("rfq-1", "sup-9", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .brfqs. WHERE brfq_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{"rfq-1"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(1)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .suppliers. WHERE supplier_id = \? AND delete_at IS NULL`),
			args:    []driver.Value{"sup-9"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(1)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .quotes.`),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO .quote_items.`),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	quote, err := NewQuoteService(db).Submit(QuoteInput{
		SupplierQuoteNo: "Q-2026-014",
		ValidFor:        30,
		Currency:        "USD",
		Shipping:        "DAP",
		Token:           token,
		Items: []QuoteItemInput{
			{
				Description: "Steel plate 10mm",
				Quantity:    decimal.RequireFromString("2"),
				UOM:         "EA",
				UnitPrice:   decimal.RequireFromString("10.50"),
			},
			{
				Description: "Anchor bolts",
				Quantity:    decimal.RequireFromString("1"),
				UOM:         "SET",
				UnitPrice:   decimal.RequireFromString("3"),
			},
		},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if quote.BRFQID != "rfq-1" || quote.SupplierID != "sup-9" {
		t.Errorf("quote must target the token's references, got brfq=%s supplier=%s", quote.BRFQID, quote.SupplierID)
	}
	if len(quote.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(quote.Items))
	}
	if !quote.Items[0].LineTotal.Equal(decimal.RequireFromString("21.00")) {
		t.Errorf("line total mismatch: %s", quote.Items[0].LineTotal)
	}
	if !quote.TotalAmount.Equal(decimal.RequireFromString("24.00")) {
		t.Errorf("total mismatch: %s", quote.TotalAmount)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
