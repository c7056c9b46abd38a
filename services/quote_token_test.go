package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestQuoteInviteRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignQuoteInvite("rfq-1", "sup-9", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}

	claims, err := ParseQuoteInvite(token)
	if err != nil {
		t.Fatalf("ParseQuoteInvite failed: %v", err)
	}
	if claims.RFQID != "rfq-1" || claims.SupplierID != "sup-9" {
		t.Errorf("claims do not round-trip: %+v", claims)
	}
}

func TestParseQuoteInviteRejectsTamperedSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := SignQuoteInvite("rfq-1", "sup-9", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "a-different-secret")
	if _, err := ParseQuoteInvite(token); !errors.Is(err, ErrInvalidQuoteToken) {
		t.Fatalf("expected ErrInvalidQuoteToken, got %v", err)
	}
}

func TestParseQuoteInviteRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := QuoteInviteClaims{
		RFQID:      "rfq-1",
		SupplierID: "sup-9",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ParseQuoteInvite(token); !errors.Is(err, ErrInvalidQuoteToken) {
		t.Fatalf("expected ErrInvalidQuoteToken, got %v", err)
	}
}

func TestParseQuoteInviteRejectsMissingClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignQuoteInvite("", "sup-9", time.Hour)
	if err != nil {
		t.Fatalf("SignQuoteInvite failed: %v", err)
	}

	if _, err := ParseQuoteInvite(token); !errors.Is(err, ErrInvalidQuoteToken) {
		t.Fatalf("expected ErrInvalidQuoteToken, got %v", err)
	}
}
